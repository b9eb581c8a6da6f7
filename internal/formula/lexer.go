package formula

import (
	"strconv"
	"unicode"
)

type tokenKind uint8

const (
	tokEOF tokenKind = iota
	tokNumber
	tokIdent
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokCaret
	tokLParen
	tokRParen
	tokComma
	tokBad
)

type token struct {
	kind tokenKind
	text string
	num  float64
}

type lexer struct {
	s string
	i int
}

func (l *lexer) next() token {
	for l.i < len(l.s) && unicode.IsSpace(rune(l.s[l.i])) {
		l.i++
	}
	if l.i >= len(l.s) {
		return token{kind: tokEOF}
	}

	switch l.s[l.i] {
	case '+':
		l.i++
		return token{kind: tokPlus, text: "+"}
	case '-':
		l.i++
		return token{kind: tokMinus, text: "-"}
	case '*':
		l.i++
		return token{kind: tokStar, text: "*"}
	case '/':
		l.i++
		return token{kind: tokSlash, text: "/"}
	case '^':
		l.i++
		return token{kind: tokCaret, text: "^"}
	case '(':
		l.i++
		return token{kind: tokLParen, text: "("}
	case ')':
		l.i++
		return token{kind: tokRParen, text: ")"}
	case ',':
		l.i++
		return token{kind: tokComma, text: ","}
	}

	ch := rune(l.s[l.i])
	if isIdentStart(ch) {
		start := l.i
		l.i++
		for l.i < len(l.s) && isIdentContinue(rune(l.s[l.i])) {
			l.i++
		}
		return token{kind: tokIdent, text: l.s[start:l.i]}
	}
	if ch == '.' || unicode.IsDigit(ch) {
		start := l.i
		l.i = scanNumber(l.s, l.i)
		txt := l.s[start:l.i]
		f, err := strconv.ParseFloat(txt, 64)
		if err != nil {
			return token{kind: tokBad, text: txt}
		}
		return token{kind: tokNumber, text: txt, num: f}
	}

	l.i++
	return token{kind: tokBad, text: string(ch)}
}

func scanNumber(s string, i int) int {
	if i < len(s) && s[i] == '.' {
		i++
	}
	for i < len(s) && unicode.IsDigit(rune(s[i])) {
		i++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && unicode.IsDigit(rune(s[i])) {
			i++
		}
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < len(s) && unicode.IsDigit(rune(s[k])) {
			k++
		}
		if k > j {
			i = k
		}
	}
	return i
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentContinue(r rune) bool {
	return isIdentStart(r) || unicode.IsDigit(r)
}
