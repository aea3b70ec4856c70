// Package veq parses and evaluates equations of the form y = f(x, t).
//
// An expression is parsed once into an immutable Expr and then evaluated
// many times, typically once per plotted column per frame. Evaluation is
// total: division by zero, out-of-domain function arguments, and similar
// conditions produce IEEE-754 infinities and NaNs rather than errors, so a
// renderer can treat non-finite samples as gaps in the curve. "-2^2^n" is
// the same as "-(2^(2^n))", where "a^b" is exponentiation.
//
// All syntax problems are reported at parse time with the rune column at
// which they occurred; an Expr that parses successfully cannot fail to
// evaluate.
package veq
