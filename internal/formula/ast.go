package formula

import "math"

// env carries the variable bindings for one element-wise evaluation.
type env struct {
	x, y, t float64
}

type node interface {
	eval(e env) float64
}

type nodeNumber struct {
	v float64
}

func (n nodeNumber) eval(env) float64 { return n.v }

// variable indices resolved at compile time.
type varKind uint8

const (
	varX varKind = iota
	varY
	varTime
)

type nodeVar struct {
	kind varKind
}

func (n nodeVar) eval(e env) float64 {
	switch n.kind {
	case varX:
		return e.x
	case varY:
		return e.y
	default:
		return e.t
	}
}

type nodeUnary struct {
	op byte
	x  node
}

func (n nodeUnary) eval(e env) float64 {
	v := n.x.eval(e)
	if n.op == '-' {
		return -v
	}
	return v
}

type nodeBinary struct {
	op          byte
	left, right node
}

func (n nodeBinary) eval(e env) float64 {
	a, b := n.left.eval(e), n.right.eval(e)
	switch n.op {
	case '+':
		return a + b
	case '-':
		return a - b
	case '*':
		return a * b
	case '/':
		return a / b
	case '^':
		return math.Pow(a, b)
	}
	return math.NaN()
}

type nodeCall1 struct {
	fn func(float64) float64
	x  node
}

func (n nodeCall1) eval(e env) float64 { return n.fn(n.x.eval(e)) }

type nodeCall2 struct {
	fn   func(float64, float64) float64
	a, b node
}

func (n nodeCall2) eval(e env) float64 { return n.fn(n.a.eval(e), n.b.eval(e)) }
