package veq

import "math"

// function is a named unary function from reals to reals. Every function is
// total over float64: arguments outside the mathematical domain produce NaN,
// never an error, so that a bad sample is just a gap in the curve.
type function struct {
	name string
	eval func(float64) float64
}

// globalfuncs is the closed set of callable function names. Identifiers
// outside this set, the variables, and the constants are parse errors.
var globalfuncs = map[string]*function{
	"sin":   {"sin", math.Sin},
	"cos":   {"cos", math.Cos},
	"tan":   {"tan", math.Tan},
	"asin":  {"asin", math.Asin},
	"acos":  {"acos", math.Acos},
	"atan":  {"atan", math.Atan},
	"sinh":  {"sinh", math.Sinh},
	"cosh":  {"cosh", math.Cosh},
	"tanh":  {"tanh", math.Tanh},
	"asinh": {"asinh", math.Asinh},
	"acosh": {"acosh", math.Acosh},
	"atanh": {"atanh", math.Atanh},
	"rad":   {"rad", radians},
	"deg":   {"deg", degrees},
	"log":   {"log", math.Log},
	"abs":   {"abs", math.Abs},
	// round rounds half away from zero, like math.Round: round(0.5) is 1
	// and round(-0.5) is -1.
	"round": {"round", math.Round},
	"sign":  {"sign", sign},
}

// Gravity is the value of the constant g, in m/s².
const Gravity = 9.81

// constants is the closed set of named constants. Each is substituted as a
// literal at parse time, so evaluation never looks one up.
var constants = map[string]float64{
	"pi": math.Pi,
	"e":  math.E,
	"g":  Gravity,
}

// radians converts degrees to radians.
func radians(v float64) float64 {
	return v * (math.Pi / 180)
}

// degrees converts radians to degrees.
func degrees(v float64) float64 {
	return v * (180 / math.Pi)
}

// sign returns -1 for negative v, 1 for positive v, and 0 for either zero.
// sign(NaN) is NaN.
func sign(v float64) float64 {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	case math.IsNaN(v):
		return v
	default:
		return 0
	}
}
