package calc

import (
	"strings"

	"fortio.org/log"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Func is a user-defined function.
type Func struct {
	// Name is the function's name.
	Name string
	// Params is the list of parameter names in declaration order.
	Params []string
	// Body is the function's expression, already in postfix order.
	Body []Token
}

// String formats the function as its name, parameters, and postfix body.
func (f *Func) String() string {
	var b strings.Builder
	b.WriteString(f.Name)
	b.WriteByte('(')
	b.WriteString(strings.Join(f.Params, ", "))
	b.WriteString(") { ")
	for _, tok := range f.Body {
		b.WriteString(tok.Text)
		b.WriteByte(' ')
	}
	b.WriteByte('}')
	return b.String()
}

// Session holds the global variables and user functions that expressions
// are evaluated against. It is not safe to use a Session concurrently.
type Session struct {
	vars     Vars
	funcs    map[string]*Func
	maxDepth int
}

// Option is an option used when creating a session.
type Option interface {
	sessionOption()
}

type (
	depthopt int
	varopt   struct {
		name string
		val  float64
	}
)

func (depthopt) sessionOption() {}
func (varopt) sessionOption()   {}

// DefaultMaxDepth is the call depth limit of a session created without the
// MaxDepth option.
const DefaultMaxDepth = 256

// MaxDepth sets how deeply user function calls may nest. A call that would
// exceed the limit fails with a *DepthError.
func MaxDepth(n int) Option {
	return depthopt(n)
}

// SetVar sets the value of a global variable in the session.
func SetVar(name string, val float64) Option {
	return varopt{name, val}
}

// NewSession creates a session with no variables or user functions, then
// applies opts in order.
func NewSession(opts ...Option) *Session {
	s := Session{
		vars:     make(Vars),
		funcs:    make(map[string]*Func),
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		switch opt := opt.(type) {
		case nil: // do nothing
		case depthopt:
			s.maxDepth = int(opt)
		case varopt:
			s.vars[opt.name] = opt.val
		default:
			panic("calc: unknown option type")
		}
	}
	return &s
}

// IsVar reports whether name is a global variable.
func (s *Session) IsVar(name string) bool {
	return s.vars.IsVar(name)
}

// IsFunc reports whether name is a built-in or user function.
func (s *Session) IsFunc(name string) bool {
	return IsBuiltin(name) || s.funcs[name] != nil
}

// Compile strips whitespace from src, tokenizes it, and converts it to
// postfix against the global variables.
func (s *Session) Compile(src string) ([]Token, error) {
	return Postfix(Tokenize(StripSpace(src)), s)
}

// Eval compiles and evaluates src against the global variables. It does not
// change the session.
func (s *Session) Eval(src string) (float64, error) {
	postfix, err := s.Compile(src)
	if err != nil {
		return 0, err
	}
	return s.EvalPostfix(postfix, s.vars)
}

// Define evaluates src and assigns the result to the global variable name,
// replacing any previous value. If evaluation fails, the session is
// unchanged.
func (s *Session) Define(name, src string) error {
	if !validName(name) {
		return ErrInvalidName
	}
	v, err := s.Eval(src)
	if err != nil {
		return err
	}
	log.Debugf("define %s = %g", name, v)
	s.vars[name] = v
	return nil
}

// DefineFunc compiles body and stores it as the user function name with the
// given parameters, replacing any previous definition. The body is not
// evaluated. Every identifier in it that is not a parameter is taken to be a
// function and resolved when the function is called, so a body may name
// functions defined later, including itself. Global variables are not visible
// inside the body; naming one fails at call time.
func (s *Session) DefineFunc(name string, params []string, body string) error {
	if !validName(name) {
		return ErrInvalidName
	}
	sc := make(paramScope, len(params))
	for _, p := range params {
		if !validName(p) {
			return ErrInvalidName
		}
		if sc[p] {
			return ErrInvalidDefinition
		}
		sc[p] = true
	}
	postfix, err := Postfix(Tokenize(StripSpace(body)), sc)
	if err != nil {
		return err
	}
	f := &Func{Name: name, Params: append([]string(nil), params...), Body: postfix}
	log.Debugf("define %v", f)
	s.funcs[name] = f
	return nil
}

// paramScope resolves names in a function body: parameters are variables
// and anything else is a call.
type paramScope map[string]bool

func (sc paramScope) IsVar(name string) bool {
	return sc[name]
}

func (sc paramScope) IsFunc(name string) bool {
	return !sc[name]
}

// Lookup returns the value of a global variable.
func (s *Session) Lookup(name string) (float64, bool) {
	v, ok := s.vars[name]
	return v, ok
}

// Func returns the user function with the given name, or nil if there is
// none.
func (s *Session) Func(name string) *Func {
	return s.funcs[name]
}

// Vars returns the names of the global variables in collation order.
func (s *Session) Vars() []string {
	r := make([]string, 0, len(s.vars))
	for k := range s.vars {
		r = append(r, k)
	}
	sortnames(r)
	return r
}

// Funcs returns the names of the user functions in collation order.
func (s *Session) Funcs() []string {
	r := make([]string, 0, len(s.funcs))
	for k := range s.funcs {
		r = append(r, k)
	}
	sortnames(r)
	return r
}

// Names returns every name an expression can use: global variables, user
// functions, and built-in functions.
func (s *Session) Names() []string {
	r := append(s.Vars(), s.Funcs()...)
	r = append(r, Builtins()...)
	sortnames(r)
	return r
}

// sortnames sorts names for display.
func sortnames(names []string) {
	collate.New(language.Und).SortStrings(names)
}

// validName reports whether name can be a variable, function, or parameter.
func validName(name string) bool {
	toks := Tokenize(name)
	return len(toks) == 1 && toks[0].Kind == TokenIdent && !IsBuiltin(name) && StripSpace(name) == name
}
