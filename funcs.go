package calc

import (
	"math"
	"math/big"

	"github.com/zephyrtronium/bigfloat"
)

// builtin is an operator or predefined function. Arguments are passed in
// source order.
type builtin struct {
	arity int
	call  func(x []float64) float64
}

// precedence gives the binding strength of each operator. Higher binds
// tighter; all operators are left-associative.
var precedence = map[string]int{
	"*": 3,
	"/": 3,
	"+": 2,
	"-": 2,
}

var operators = map[string]builtin{
	"+": {2, func(x []float64) float64 { return x[0] + x[1] }},
	"-": {2, func(x []float64) float64 { return x[0] - x[1] }},
	"*": {2, func(x []float64) float64 { return x[0] * x[1] }},
	"/": {2, func(x []float64) float64 { return x[0] / x[1] }},
}

var builtins = map[string]builtin{
	"pow": {2, func(x []float64) float64 { return pow(x[0], x[1]) }},
	"abs": {1, func(x []float64) float64 { return math.Abs(x[0]) }},
	"max": {2, func(x []float64) float64 { return math.Max(x[0], x[1]) }},
	"min": {2, func(x []float64) float64 { return math.Min(x[0], x[1]) }},
}

// Builtins returns the names of the predefined functions.
func Builtins() []string {
	r := make([]string, 0, len(builtins))
	for k := range builtins {
		r = append(r, k)
	}
	sortstrs(r)
	return r
}

// IsBuiltin reports whether name is a predefined function.
func IsBuiltin(name string) bool {
	_, ok := builtins[name]
	return ok
}

// powprec is the precision at which pow computes non-integral powers before
// rounding to float64.
const powprec = 128

// pow computes a raised to b. Non-integral powers of positive finite bases
// are computed in extended precision so that the result is correctly
// rounded; everything else, including the cases where the result is NaN or
// infinite, follows math.Pow.
func pow(a, b float64) (r float64) {
	if !(a > 0) || math.IsInf(a, 0) || math.IsInf(b, 0) || math.IsNaN(b) || b == math.Trunc(b) {
		return math.Pow(a, b)
	}
	defer func() {
		if recover() != nil {
			r = math.Pow(a, b)
		}
	}()
	x := new(big.Float).SetPrec(powprec).SetFloat64(a)
	y := new(big.Float).SetPrec(powprec).SetFloat64(b)
	z := new(big.Float).SetPrec(powprec)
	bigfloat.Pow(z, x, y)
	r, _ = z.Float64()
	return r
}

// sortstrs sorts a string slice without using package sort because that has
// reflection and allocation problems.
func sortstrs(names []string) {
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && names[j] < names[j-1]; j-- {
			names[j], names[j-1] = names[j-1], names[j]
		}
	}
}
