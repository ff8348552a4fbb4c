package calc

import (
	"errors"
	"strconv"
)

// NameError is an error indicating an identifier that names neither a
// variable nor a function in the scope where it appears. It implements
// InputError when it comes from conversion.
type NameError struct {
	// Col is the position of the identifier, or 0 if it was found during
	// evaluation of an already converted expression.
	Col int
	// Name is the unresolved identifier.
	Name string
}

func (err *NameError) Error() string {
	return errpos(err.Col, "undefined name "+strconv.Quote(err.Name))
}

func (err *NameError) Pos() int {
	return err.Col
}

// BracketError is an error indicating unbalanced parentheses. It implements
// InputError.
type BracketError struct {
	// Col is the position of the unmatched parenthesis.
	Col int
	// Paren is the unmatched parenthesis.
	Paren string
}

func (err *BracketError) Error() string {
	if err.Paren == ")" {
		return errpos(err.Col, "close bracket ) with no open bracket")
	}
	return errpos(err.Col, "open bracket "+err.Paren+" with no close bracket")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// SeparatorError is an error indicating a comma outside of any function
// argument list. It implements InputError.
type SeparatorError struct {
	// Col is the position of the separator.
	Col int
}

func (err *SeparatorError) Error() string {
	return errpos(err.Col, "invalid occurrence of separator \",\"")
}

func (err *SeparatorError) Pos() int {
	return err.Col
}

// TokenError is an error indicating a token whose kind is not valid where it
// appears, e.g. a zero Token or a parenthesis in postfix. It implements
// InputError.
type TokenError struct {
	Col  int
	Kind TokenKind
	Text string
}

func (err *TokenError) Error() string {
	return errpos(err.Col, "unexpected "+err.Kind.String()+" token "+strconv.Quote(err.Text))
}

func (err *TokenError) Pos() int {
	return err.Col
}

// NumberError is an error indicating a numeric literal that does not parse.
type NumberError struct {
	Col  int
	Text string
}

func (err *NumberError) Error() string {
	return errpos(err.Col, "invalid number "+strconv.Quote(err.Text))
}

// StackError is an error indicating that an operator or function found fewer
// operands than it needs, or that an expression left other than exactly one
// value.
type StackError struct {
	// Op is the operator or function name. It is empty when the expression
	// as a whole left the wrong number of values.
	Op string
	// Need is the number of values required.
	Need int
	// Have is the number of values available.
	Have int
}

func (err *StackError) Error() string {
	if err.Op == "" {
		return "expression leaves " + strconv.Itoa(err.Have) + " values"
	}
	return err.Op + " needs " + strconv.Itoa(err.Need) + " operands, have " + strconv.Itoa(err.Have)
}

// DepthError is an error indicating that user function calls nested deeper
// than the session allows, usually because a function calls itself.
type DepthError struct {
	// Func is the function whose call exceeded the limit.
	Func string
	// Limit is the session's maximum call depth.
	Limit int
}

func (err *DepthError) Error() string {
	return "calling " + err.Func + ": call depth exceeds " + strconv.Itoa(err.Limit)
}

// ErrEmptyExpression is returned when evaluating an expression with no
// tokens.
var ErrEmptyExpression = errors.New("no expression")

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	if pos <= 0 {
		return msg
	}
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting
// from converting malformed input implements InputError.
type InputError interface {
	error
	// Pos returns the 1-based rune column of the token that caused the
	// error.
	Pos() int
}

var (
	_ InputError = (*NameError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*SeparatorError)(nil)
	_ InputError = (*TokenError)(nil)
)
