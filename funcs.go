package calculator

import "math"

// negName is the internal name of the unary negation pseudo-function. The
// tokenizer only groups letter runes into function names and '_' is not a
// letter, so no input string can spell it; a literal '_' lexes as an unknown
// operator instead.
const negName = "_"

// funcs maps function names to their implementations. Every function takes
// and returns one float64. Trigonometry works in radians, and sqrt of a
// negative returns NaN rather than an error, as math.Sqrt does.
var funcs = map[string]func(float64) float64{
	negName: func(x float64) float64 { return -x },
	"sin":   math.Sin,
	"cos":   math.Cos,
	"tan":   math.Tan,
	"sqrt":  math.Sqrt,
}
