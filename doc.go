// Package calc implements a calculator for infix arithmetic expressions with
// user-defined variables and functions.
//
// Expressions use the operators + - * / with the usual precedence, the
// functions pow, abs, max, and min, and parentheses. A Session holds global
// variables, set with Define, and user functions, set with DefineFunc. Each
// expression is tokenized, reordered into postfix with the shunting-yard
// algorithm, and evaluated on a stack. User function bodies are compiled to
// postfix once, when they are defined, and see only their own parameters.
//
// Session.Exec implements the line-oriented command language of the calc
// command: "vars", "defs", "var name=expr", "def name(a, b){expr}", and bare
// expressions.
package calc
