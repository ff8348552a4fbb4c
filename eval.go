package calc

import (
	"errors"
	"fmt"
	"strconv"

	"fortio.org/log"
)

// Vars is a variable namespace.
type Vars map[string]float64

// IsVar reports whether name is defined in v.
func (v Vars) IsVar(name string) bool {
	_, ok := v[name]
	return ok
}

// EvalPostfix evaluates a postfix token sequence, resolving variables in vars
// and user functions in the session. vars is not modified. A token that
// cannot appear in postfix results in a *TokenError.
func (s *Session) EvalPostfix(postfix []Token, vars Vars) (float64, error) {
	return s.eval(postfix, vars, 0)
}

// eval evaluates postfix with a single value stack. depth is the number of
// user function calls enclosing this evaluation.
func (s *Session) eval(postfix []Token, vars Vars, depth int) (float64, error) {
	if len(postfix) == 0 {
		return 0, ErrEmptyExpression
	}
	stack := make([]float64, 0, len(postfix))
	for _, tok := range postfix {
		log.LogVf("eval %#v with stack %v", tok, stack)
		switch tok.Kind {
		case TokenNum:
			v, err := strconv.ParseFloat(tok.Text, 64)
			if err != nil && !errors.Is(err, strconv.ErrRange) {
				return 0, &NumberError{Col: tok.Pos, Text: tok.Text}
			}
			stack = append(stack, v)
		case TokenOp:
			var err error
			stack, err = apply(stack, tok.Text, operators[tok.Text])
			if err != nil {
				return 0, err
			}
		case TokenIdent:
			if v, ok := vars[tok.Text]; ok {
				stack = append(stack, v)
				continue
			}
			if b, ok := builtins[tok.Text]; ok {
				var err error
				stack, err = apply(stack, tok.Text, b)
				if err != nil {
					return 0, err
				}
				continue
			}
			f := s.funcs[tok.Text]
			if f == nil {
				return 0, &NameError{Name: tok.Text}
			}
			n := len(f.Params)
			if len(stack) < n {
				return 0, &StackError{Op: f.Name, Need: n, Have: len(stack)}
			}
			if depth >= s.maxDepth {
				return 0, &DepthError{Func: f.Name, Limit: s.maxDepth}
			}
			// The last parameter binds to the top of the stack.
			args := make(Vars, n)
			for i := n - 1; i >= 0; i-- {
				args[f.Params[i]] = stack[len(stack)-1]
				stack = stack[:len(stack)-1]
			}
			log.LogVf("call %s with %v at depth %d", f.Name, args, depth+1)
			r, err := s.eval(f.Body, args, depth+1)
			if err != nil {
				return 0, fmt.Errorf("%s: %w", f.Name, err)
			}
			stack = append(stack, r)
		default:
			// Parentheses and commas never survive conversion.
			return 0, &TokenError{Col: tok.Pos, Kind: tok.Kind, Text: tok.Text}
		}
	}
	if len(stack) != 1 {
		return 0, &StackError{Need: 1, Have: len(stack)}
	}
	return stack[0], nil
}

// apply pops b.arity operands, calls b, and pushes the result. A subtraction
// with only one operand available subtracts from zero.
func apply(stack []float64, name string, b builtin) ([]float64, error) {
	n := b.arity
	if len(stack) < n {
		if name != "-" || len(stack) != 1 {
			return stack, &StackError{Op: name, Need: n, Have: len(stack)}
		}
		stack = append([]float64{0}, stack...)
	}
	var x [2]float64
	copy(x[:n], stack[len(stack)-n:])
	stack = stack[:len(stack)-n]
	return append(stack, b.call(x[:n])), nil
}
