package calc

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var (
	// ErrMissingAssign is returned for a variable definition with no '='.
	ErrMissingAssign = errors.New("missing '=' in variable assignment")
	// ErrInvalidDefinition is returned for a function definition missing
	// any of its parentheses or braces, or repeating a parameter name.
	ErrInvalidDefinition = errors.New("invalid function definition")
	// ErrInvalidName is returned when defining a name that is not a plain
	// identifier or that belongs to a built-in function.
	ErrInvalidName = errors.New("invalid name")
)

// Exec runs one line of input. The line may be "vars" or "defs" to list the
// global variables or user functions, "var name=expr" to define a variable,
// "def name(params){expr}" to define a function, or otherwise an expression
// to evaluate. Listings and results are written to w.
func (s *Session) Exec(w io.Writer, line string) error {
	switch {
	case line == "vars":
		for _, k := range s.Vars() {
			if _, err := fmt.Fprintf(w, "%s = %s\n", k, FormatValue(s.vars[k])); err != nil {
				return err
			}
		}
		return nil
	case line == "defs":
		for _, k := range s.Funcs() {
			if _, err := fmt.Fprintln(w, s.funcs[k]); err != nil {
				return err
			}
		}
		return nil
	case strings.HasPrefix(line, "var "):
		return s.execVar(line[len("var "):])
	case strings.HasPrefix(line, "def "):
		return s.execDef(line[len("def "):])
	}
	v, err := s.Eval(line)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, FormatValue(v))
	return err
}

func (s *Session) execVar(decl string) error {
	name, expr, ok := strings.Cut(decl, "=")
	if !ok {
		return ErrMissingAssign
	}
	return s.Define(StripSpace(name), expr)
}

func (s *Session) execDef(decl string) error {
	lp := strings.IndexByte(decl, '(')
	if lp < 0 {
		return ErrInvalidDefinition
	}
	rp := strings.IndexByte(decl[lp:], ')')
	lb := strings.IndexByte(decl, '{')
	if rp < 0 || lb < 0 {
		return ErrInvalidDefinition
	}
	rp += lp
	rb := strings.IndexByte(decl[lb:], '}')
	if rb < 0 {
		return ErrInvalidDefinition
	}
	rb += lb
	var params []string
	if p := StripSpace(decl[lp+1 : rp]); p != "" {
		params = strings.Split(p, ",")
	}
	err := s.DefineFunc(StripSpace(decl[:lp]), params, decl[lb+1:rb])
	if errors.Is(err, ErrInvalidName) {
		return fmt.Errorf("%w: %w", ErrInvalidDefinition, err)
	}
	return err
}

// FormatValue formats a result with 10 significant digits.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', 10, 64)
}

// Message returns the text shown to the user for an error from Exec. An
// invalid name in a variable definition reads as an incorrect expression;
// Exec reports one in a function definition as an invalid definition.
func Message(err error) string {
	switch {
	case errors.Is(err, ErrMissingAssign):
		return "Missing '=' in variable assignment"
	case errors.Is(err, ErrInvalidDefinition):
		return "Invalid function definition"
	default:
		return "Incorrect expression"
	}
}
