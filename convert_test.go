package calc

import (
	"errors"
	"strings"
	"testing"
)

func testSession(t *testing.T) *Session {
	t.Helper()
	s := NewSession(SetVar("x", 1), SetVar("y", 2))
	if err := s.DefineFunc("square", []string{"a"}, "a*a"); err != nil {
		t.Fatal(err)
	}
	if err := s.DefineFunc("five", nil, "5"); err != nil {
		t.Fatal(err)
	}
	return s
}

func TestPostfix(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"empty", "", ""},
		{"num", "1", "1"},
		{"var", "x", "x"},
		{"prec", "3+4*2", "3 4 2 * +"},
		{"prec-rev", "3*4+2", "3 4 * 2 +"},
		{"group", "(3+4)*2", "3 4 + 2 *"},
		{"left-sub", "1-2-3", "1 2 - 3 -"},
		{"left-div", "8/4/2", "8 4 / 2 /"},
		{"mixed", "1+2*3-4/x", "1 2 3 * + 4 x / -"},
		{"neg", "-5", "5 -"},
		{"builtin", "max(1,2)", "1 2 max"},
		{"unary-builtin", "abs(-5)", "5 - abs"},
		{"builtin-expr-args", "pow(x+1,y*2)", "x 1 + y 2 * pow"},
		{"builtin-then-op", "pow(x,2)*3", "x 2 pow 3 *"},
		{"user", "square(4)", "4 square"},
		{"user-then-op", "square(2)+1", "2 square 1 +"},
		{"nested", "max(square(2),square(3))", "2 square 3 square max"},
		{"niladic", "five()", "five"},
		{"niladic-expr", "five()*x", "five x *"},
		{"parens", "((1))", "1"},
	}
	s := testSession(t)
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p, err := Postfix(Tokenize(c.src), s)
			if err != nil {
				t.Fatalf("%q failed to convert: %v", c.src, err)
			}
			if got := strings.Join(texts(p), " "); got != c.want {
				t.Errorf("%q: want %q, got %q", c.src, c.want, got)
			}
		})
	}
}

func TestPostfixErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		err  InputError
		pos  int
	}{
		{"undef", "z+1", &NameError{}, 1},
		{"undef-rhs", "1+zz", &NameError{}, 3},
		{"num-as-name", "x+2y", nil, 0},
		{"unclosed", "(1+2", &BracketError{}, 1},
		{"unclosed-call", "max(1,2", &BracketError{}, 4},
		{"unopened", "1+2)", &BracketError{}, 4},
		{"comma", "1,2", &SeparatorError{}, 2},
	}
	s := testSession(t)
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p, err := Postfix(Tokenize(c.src), s)
			if c.err == nil {
				// Malformed numbers are accepted here and fail later.
				if err != nil {
					t.Errorf("%q gave unexpected error %v", c.src, err)
				}
				return
			}
			if err == nil {
				t.Fatalf("%q gave no error, postfix %v", c.src, p)
			}
			var ie InputError
			if !errors.As(err, &ie) {
				t.Fatalf("%#v is not an InputError", err)
			}
			if want, got := typename(c.err), typename(ie); want != got {
				t.Errorf("%q: want %s, got %s (%v)", c.src, want, got, err)
			}
			if ie.Pos() != c.pos {
				t.Errorf("%q: want position %d, got %d", c.src, c.pos, ie.Pos())
			}
		})
	}
}

func TestPostfixBadTokens(t *testing.T) {
	s := testSession(t)
	cases := [][]Token{
		{{}},
		{{Text: "1", Kind: TokenNum, Pos: 1}, {Text: "?", Kind: TokenKind(42), Pos: 2}},
	}
	for _, c := range cases {
		_, err := Postfix(c, s)
		var te *TokenError
		if !errors.As(err, &te) {
			t.Errorf("%#v: want *TokenError, got %v", c, err)
			continue
		}
		if want := c[len(c)-1].Pos; te.Pos() != want {
			t.Errorf("%#v: want position %d, got %d", c, want, te.Pos())
		}
	}
}

func typename(err error) string {
	switch err.(type) {
	case *NameError:
		return "NameError"
	case *BracketError:
		return "BracketError"
	case *SeparatorError:
		return "SeparatorError"
	case *TokenError:
		return "TokenError"
	default:
		return "other"
	}
}

// texts returns the source text of each token in toks.
func texts(toks []Token) []string {
	r := make([]string, len(toks))
	for i, tok := range toks {
		r[i] = tok.Text
	}
	return r
}
