package formula

import "errors"

// Domain errors for formula compilation and evaluation.
var (
	// ErrParse indicates malformed expression syntax.
	ErrParse = errors.New("formula: parse error")

	// ErrUnknownIdent indicates a reference to a symbol outside X, Y, time_factor.
	ErrUnknownIdent = errors.New("formula: unknown identifier")

	// ErrUnknownFunc indicates a call to a function outside the allow-list.
	ErrUnknownFunc = errors.New("formula: unknown function")

	// ErrArity indicates a call with the wrong number of arguments.
	ErrArity = errors.New("formula: wrong argument count")

	// ErrEmpty indicates an empty source string.
	ErrEmpty = errors.New("formula: empty expression")
)

// Error wraps a compile or evaluation failure with the offending source.
type Error struct {
	Source  string
	Wrapped error
}

func (e *Error) Error() string {
	return e.Wrapped.Error() + " in " + quote(e.Source)
}

func (e *Error) Unwrap() error {
	return e.Wrapped
}

func quote(s string) string {
	if len(s) > 40 {
		s = s[:37] + "..."
	}
	return "\"" + s + "\""
}
