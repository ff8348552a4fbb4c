package calc_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zephyrtronium/calc"
)

func TestDefine(t *testing.T) {
	s := calc.NewSession()
	require.NoError(t, s.Define("x", "10"))
	r, err := s.Eval("x+5")
	require.NoError(t, err)
	require.Equal(t, 15.0, r)

	require.NoError(t, s.Define("x", "20"))
	r, err = s.Eval("x+5")
	require.NoError(t, err)
	require.Equal(t, 25.0, r)

	require.NoError(t, s.Define("y", "x*2"))
	v, ok := s.Lookup("y")
	require.True(t, ok)
	require.Equal(t, 40.0, v)
	require.Equal(t, []string{"x", "y"}, s.Vars())
}

func TestDefineFailureKeepsValue(t *testing.T) {
	s := calc.NewSession(calc.SetVar("x", 1))
	require.Error(t, s.Define("x", "z+1"))
	require.Error(t, s.Define("w", "1+"))
	v, ok := s.Lookup("x")
	require.True(t, ok)
	require.Equal(t, 1.0, v)
	_, ok = s.Lookup("w")
	require.False(t, ok)
}

func TestDefineInvalidNames(t *testing.T) {
	s := calc.NewSession()
	for _, name := range []string{"", "2x", "a+b", "max", "f(x)", "a b"} {
		require.ErrorIs(t, s.Define(name, "1"), calc.ErrInvalidName, "%q", name)
		require.ErrorIs(t, s.DefineFunc(name, nil, "1"), calc.ErrInvalidName, "%q", name)
	}
	require.ErrorIs(t, s.DefineFunc("f", []string{"1"}, "1"), calc.ErrInvalidName)
	require.ErrorIs(t, s.DefineFunc("f", []string{"a", "a"}, "a"), calc.ErrInvalidDefinition)
	require.Empty(t, s.Vars())
	require.Empty(t, s.Funcs())
}

func TestDefineFunc(t *testing.T) {
	s := calc.NewSession()
	require.NoError(t, s.DefineFunc("sq", []string{"a"}, "a * a"))
	f := s.Func("sq")
	require.NotNil(t, f)
	require.Equal(t, []string{"a"}, f.Params)
	require.Equal(t, "sq(a) { a a * }", f.String())

	require.NoError(t, s.DefineFunc("sq", []string{"b", "c"}, "b*c"))
	require.Equal(t, "sq(b, c) { b c * }", s.Func("sq").String())
	r, err := s.Eval("sq(3,4)")
	require.NoError(t, err)
	require.Equal(t, 12.0, r)
	require.Nil(t, s.Func("nope"))
}

func TestDefineFuncScope(t *testing.T) {
	s := calc.NewSession(calc.SetVar("g", 3))
	require.NoError(t, s.DefineFunc("f", []string{"a"}, "a"))
	// Function bodies see only their own parameters, so the global g is
	// unresolved when f runs, not when it is defined.
	require.NoError(t, s.DefineFunc("f", []string{"a"}, "a+g"))
	require.Equal(t, "f(a) { a g + }", s.Func("f").String())
	_, err := s.Eval("f(1)")
	var ne *calc.NameError
	require.ErrorAs(t, err, &ne)
	require.Equal(t, "g", ne.Name)

	// A parameter shadows a global of the same name.
	require.NoError(t, s.DefineFunc("f", []string{"g"}, "g*2"))
	r, err := s.Eval("f(5)")
	require.NoError(t, err)
	require.Equal(t, 10.0, r)
	v, _ := s.Lookup("g")
	require.Equal(t, 3.0, v)
}

func TestDefineFuncForwardReference(t *testing.T) {
	s := calc.NewSession()
	require.NoError(t, s.DefineFunc("g", []string{"a"}, "h(a)+1"))
	_, err := s.Eval("g(4)")
	var ne *calc.NameError
	require.ErrorAs(t, err, &ne)
	require.Equal(t, "h", ne.Name)

	require.NoError(t, s.DefineFunc("h", []string{"a"}, "a*2"))
	r, err := s.Eval("g(4)")
	require.NoError(t, err)
	require.Equal(t, 9.0, r)
}

func TestDefineFuncBadBrackets(t *testing.T) {
	s := calc.NewSession()
	require.ErrorAs(t, s.DefineFunc("f", []string{"a"}, "(a"), new(*calc.BracketError))
	require.Nil(t, s.Func("f"))
}

func TestNames(t *testing.T) {
	s := calc.NewSession(calc.SetVar("zeta", 1), calc.SetVar("alpha", 2))
	require.NoError(t, s.DefineFunc("beta", nil, "1"))
	require.Equal(t, []string{"alpha", "zeta"}, s.Vars())
	require.Equal(t, []string{"beta"}, s.Funcs())
	require.Equal(t, []string{"abs", "alpha", "beta", "max", "min", "pow", "zeta"}, s.Names())
	require.Equal(t, []string{"abs", "max", "min", "pow"}, calc.Builtins())
}

func TestResolver(t *testing.T) {
	s := calc.NewSession(calc.SetVar("x", 1))
	require.NoError(t, s.DefineFunc("f", nil, "1"))
	require.True(t, s.IsVar("x"))
	require.False(t, s.IsVar("f"))
	require.True(t, s.IsFunc("f"))
	require.True(t, s.IsFunc("pow"))
	require.False(t, s.IsFunc("x"))
}
