package calc

// Resolver classifies identifiers during conversion to postfix.
type Resolver interface {
	// IsVar reports whether name is a variable.
	IsVar(name string) bool
	// IsFunc reports whether name is a built-in or user function.
	IsFunc(name string) bool
}

// Postfix reorders an infix token sequence into postfix order using the
// shunting-yard algorithm. Numbers and variables go straight to the output.
// Functions wait on the operator stack until the parenthesis closing their
// argument list, so that they follow all their arguments. Operators are
// left-associative.
//
// An identifier that r knows as neither a variable nor a function results in
// a *NameError. Unbalanced parentheses result in a *BracketError, a comma
// outside parentheses in a *SeparatorError, and a token with no valid kind,
// such as the zero Token, in a *TokenError. An empty token sequence converts
// to an empty result without error.
func Postfix(tokens []Token, r Resolver) ([]Token, error) {
	out := make([]Token, 0, len(tokens))
	var stack []Token
	// unwind pops to the output up to but not including the innermost open
	// parenthesis. It returns false if there is no open parenthesis.
	unwind := func() bool {
		for len(stack) > 0 {
			top := stack[len(stack)-1]
			if top.Kind == TokenLParen {
				return true
			}
			out = append(out, top)
			stack = stack[:len(stack)-1]
		}
		return false
	}
	for _, tok := range tokens {
		switch tok.Kind {
		case TokenNum:
			out = append(out, tok)
		case TokenIdent:
			switch {
			case r.IsVar(tok.Text):
				out = append(out, tok)
			case r.IsFunc(tok.Text):
				stack = append(stack, tok)
			default:
				return nil, &NameError{Col: tok.Pos, Name: tok.Text}
			}
		case TokenOp:
			p := precedence[tok.Text]
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.Kind != TokenOp || precedence[top.Text] < p {
					break
				}
				out = append(out, top)
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, tok)
		case TokenComma:
			if !unwind() {
				return nil, &SeparatorError{Col: tok.Pos}
			}
		case TokenLParen:
			stack = append(stack, tok)
		case TokenRParen:
			if !unwind() {
				return nil, &BracketError{Col: tok.Pos, Paren: tok.Text}
			}
			stack = stack[:len(stack)-1]
			if n := len(stack); n > 0 && stack[n-1].Kind == TokenIdent {
				out = append(out, stack[n-1])
				stack = stack[:n-1]
			}
		default:
			return nil, &TokenError{Col: tok.Pos, Kind: tok.Kind, Text: tok.Text}
		}
	}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if top.Kind == TokenLParen {
			return nil, &BracketError{Col: top.Pos, Paren: top.Text}
		}
		out = append(out, top)
		stack = stack[:len(stack)-1]
	}
	return out, nil
}
