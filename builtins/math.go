package builtins

import (
	"math"
	"math/rand"

	"github.com/go-jsgo/jsgo/runtime"
)

// newMath builds the `Math` global: the standard constant and unary/
// binary function surface, grounded on the teacher's
// createMathObject/mathUnary helper split, adapted to this runtime's
// (this, args) -> (result, thrown) native-call shape.
func newMath() *runtime.Value {
	m := runtime.NewObject()

	m.SetField("PI", runtime.NewNumber(math.Pi))
	m.SetField("E", runtime.NewNumber(math.E))
	m.SetField("LN2", runtime.NewNumber(math.Ln2))
	m.SetField("LN10", runtime.NewNumber(math.Log(10)))
	m.SetField("LOG2E", runtime.NewNumber(math.Log2E))
	m.SetField("LOG10E", runtime.NewNumber(math.Log10E))
	m.SetField("SQRT2", runtime.NewNumber(math.Sqrt2))
	m.SetField("SQRT1_2", runtime.NewNumber(1.0/math.Sqrt2))

	setMethod(m, "abs", mathUnary(math.Abs))
	setMethod(m, "ceil", mathUnary(math.Ceil))
	setMethod(m, "floor", mathUnary(math.Floor))
	setMethod(m, "round", mathUnary(math.Round))
	setMethod(m, "trunc", mathUnary(math.Trunc))
	setMethod(m, "sign", mathSign)
	setMethod(m, "max", mathMax)
	setMethod(m, "min", mathMin)
	setMethod(m, "pow", mathPow)
	setMethod(m, "sqrt", mathUnary(math.Sqrt))
	setMethod(m, "cbrt", mathUnary(math.Cbrt))
	setMethod(m, "hypot", mathHypot)
	setMethod(m, "log", mathUnary(math.Log))
	setMethod(m, "log2", mathUnary(math.Log2))
	setMethod(m, "log10", mathUnary(math.Log10))
	setMethod(m, "exp", mathUnary(math.Exp))
	setMethod(m, "sin", mathUnary(math.Sin))
	setMethod(m, "cos", mathUnary(math.Cos))
	setMethod(m, "tan", mathUnary(math.Tan))
	setMethod(m, "atan2", mathAtan2)
	setMethod(m, "random", mathRandom)

	return runtime.NewObjectValue(m)
}

// mathUnary lifts a float64->float64 host function into a NativeCall
// taking its operand from args[0] (teacher's mathUnary, adapted).
func mathUnary(fn func(float64) float64) runtime.NativeCall {
	return func(_ *runtime.Value, args []*runtime.Value) (*runtime.Value, *runtime.Value) {
		return runtime.NewNumber(fn(runtime.ToNumber(arg(args, 0)))), nil
	}
}

func mathSign(_ *runtime.Value, args []*runtime.Value) (*runtime.Value, *runtime.Value) {
	n := runtime.ToNumber(arg(args, 0))
	switch {
	case math.IsNaN(n):
		return runtime.NewNumber(math.NaN()), nil
	case n > 0:
		return runtime.NewNumber(1), nil
	case n < 0:
		return runtime.NewNumber(-1), nil
	default:
		return runtime.NewNumber(n), nil
	}
}

func mathMax(_ *runtime.Value, args []*runtime.Value) (*runtime.Value, *runtime.Value) {
	result := math.Inf(-1)
	for _, a := range args {
		n := runtime.ToNumber(a)
		if math.IsNaN(n) {
			return runtime.NewNumber(math.NaN()), nil
		}
		result = math.Max(result, n)
	}
	return runtime.NewNumber(result), nil
}

func mathMin(_ *runtime.Value, args []*runtime.Value) (*runtime.Value, *runtime.Value) {
	result := math.Inf(1)
	for _, a := range args {
		n := runtime.ToNumber(a)
		if math.IsNaN(n) {
			return runtime.NewNumber(math.NaN()), nil
		}
		result = math.Min(result, n)
	}
	return runtime.NewNumber(result), nil
}

func mathPow(_ *runtime.Value, args []*runtime.Value) (*runtime.Value, *runtime.Value) {
	return runtime.NewNumber(math.Pow(runtime.ToNumber(arg(args, 0)), runtime.ToNumber(arg(args, 1)))), nil
}

func mathHypot(_ *runtime.Value, args []*runtime.Value) (*runtime.Value, *runtime.Value) {
	sum := 0.0
	for _, a := range args {
		n := runtime.ToNumber(a)
		sum += n * n
	}
	return runtime.NewNumber(math.Sqrt(sum)), nil
}

func mathAtan2(_ *runtime.Value, args []*runtime.Value) (*runtime.Value, *runtime.Value) {
	return runtime.NewNumber(math.Atan2(runtime.ToNumber(arg(args, 0)), runtime.ToNumber(arg(args, 1)))), nil
}

func mathRandom(_ *runtime.Value, _ []*runtime.Value) (*runtime.Value, *runtime.Value) {
	return runtime.NewNumber(rand.Float64()), nil
}
