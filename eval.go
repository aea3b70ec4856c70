package veq

import "math"

// Env is the variable binding for one evaluation. It is owned by the caller;
// the same Env may be reused across calls with different values.
type Env struct {
	X float64
	T float64
}

// Evaluate computes the value of the expression with the given bindings. It
// never fails: the result of a division by zero, an out-of-domain function
// argument, or a negative base raised to a fractional power is the IEEE-754
// infinity or NaN those operations define. Evaluate is pure, so identical
// arguments give bit-identical results, and an Expr may be evaluated from
// any number of goroutines at once.
func (e *Expr) Evaluate(x, t float64) float64 {
	env := Env{X: x, T: t}
	return e.n.eval(&env)
}

// Eval computes the value of the expression with the bindings in env. It is
// Evaluate for callers that already keep an Env.
func (e *Expr) Eval(env *Env) float64 {
	return e.n.eval(env)
}

// eval walks the subtree and returns its value.
func (n *node) eval(env *Env) float64 {
	switch n.kind {
	case nodeNum:
		return n.val
	case nodeVar:
		if n.vr == varT {
			return env.T
		}
		return env.X
	case nodeCall:
		return n.fn.eval(n.left.eval(env))
	case nodeNeg:
		return -n.left.eval(env)
	case nodeAdd:
		return n.left.eval(env) + n.right.eval(env)
	case nodeSub:
		return n.left.eval(env) - n.right.eval(env)
	case nodeMul:
		return n.left.eval(env) * n.right.eval(env)
	case nodeDiv:
		// IEEE division: nonzero/0 is ±Inf with the sign of the numerator,
		// 0/0 is NaN.
		return n.left.eval(env) / n.right.eval(env)
	case nodePow:
		return math.Pow(n.left.eval(env), n.right.eval(env))
	case nodeMod:
		// fmod semantics: the result has the sign of the dividend.
		return math.Mod(n.left.eval(env), n.right.eval(env))
	default:
		panic("veq: invalid AST node " + n.kind.String())
	}
}

// EvalString is a shortcut to parse an equation and evaluate it once.
func EvalString(src string, x, t float64) (float64, error) {
	e, err := Parse(src)
	if err != nil {
		return 0, err
	}
	return e.Evaluate(x, t), nil
}
