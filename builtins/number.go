package builtins

import (
	"math"
	"strconv"
	"strings"

	"github.com/go-jsgo/jsgo/runtime"
)

// newNumberGlobal builds the `Number` global: the static constants and
// classification helpers of the teacher's createNumberConstructor,
// trimmed to the static surface since Number values are Value's own
// KindNumber variant rather than a wrapper object with a prototype.
func newNumberGlobal() *runtime.Value {
	ctor := runtime.NewObject()

	ctor.SetField("EPSILON", runtime.NewNumber(math.Nextafter(1, 2)-1))
	ctor.SetField("MAX_SAFE_INTEGER", runtime.NewNumber(9007199254740991))
	ctor.SetField("MIN_SAFE_INTEGER", runtime.NewNumber(-9007199254740991))
	ctor.SetField("MAX_VALUE", runtime.NewNumber(math.MaxFloat64))
	ctor.SetField("MIN_VALUE", runtime.NewNumber(math.SmallestNonzeroFloat64))
	ctor.SetField("NaN", runtime.NewNumber(math.NaN()))
	ctor.SetField("POSITIVE_INFINITY", runtime.NewNumber(math.Inf(1)))
	ctor.SetField("NEGATIVE_INFINITY", runtime.NewNumber(math.Inf(-1)))

	setMethod(ctor, "isInteger", numberIsInteger)
	setMethod(ctor, "isFinite", numberIsFinite)
	setMethod(ctor, "isNaN", numberIsNaN)
	setMethod(ctor, "isSafeInteger", numberIsSafeInteger)
	setMethod(ctor, "parseInt", numberParseInt)
	setMethod(ctor, "parseFloat", numberParseFloat)

	return runtime.NewObjectValue(ctor)
}

// installNumberGlobals mirrors the original evaluator's two-phase
// `number::init(global)` hook: the bare `isNaN`/`parseInt`/`NaN`/
// `Infinity`/`undefined` surface a plain script expects at the top
// level, installed directly on global rather than under a namespace.
func installNumberGlobals(global *runtime.Object) {
	setMethod(global, "isNaN", globalIsNaN)
	setMethod(global, "isFinite", globalIsFinite)
	setMethod(global, "parseInt", numberParseInt)
	setMethod(global, "parseFloat", numberParseFloat)
	global.SetField("NaN", runtime.NewNumber(math.NaN()))
	global.SetField("Infinity", runtime.NewNumber(math.Inf(1)))
	global.SetField("undefined", runtime.Undefined())
}

// globalIsNaN and globalIsFinite coerce their argument with ToNumber
// before classifying it, unlike Number.isNaN/Number.isFinite's strict
// type check — the same loose-vs-strict split the original exposes
// between its global functions and the Number constructor's statics.
func globalIsNaN(_ *runtime.Value, args []*runtime.Value) (*runtime.Value, *runtime.Value) {
	return runtime.NewBool(math.IsNaN(runtime.ToNumber(arg(args, 0)))), nil
}

func globalIsFinite(_ *runtime.Value, args []*runtime.Value) (*runtime.Value, *runtime.Value) {
	n := runtime.ToNumber(arg(args, 0))
	return runtime.NewBool(!math.IsNaN(n) && !math.IsInf(n, 0)), nil
}

func numberIsInteger(_ *runtime.Value, args []*runtime.Value) (*runtime.Value, *runtime.Value) {
	a := arg(args, 0)
	if a.Kind != runtime.KindNumber && a.Kind != runtime.KindInteger {
		return runtime.NewBool(false), nil
	}
	n := runtime.ToNumber(a)
	return runtime.NewBool(!math.IsNaN(n) && !math.IsInf(n, 0) && math.Floor(n) == n), nil
}

func numberIsFinite(_ *runtime.Value, args []*runtime.Value) (*runtime.Value, *runtime.Value) {
	a := arg(args, 0)
	if a.Kind != runtime.KindNumber && a.Kind != runtime.KindInteger {
		return runtime.NewBool(false), nil
	}
	n := runtime.ToNumber(a)
	return runtime.NewBool(!math.IsNaN(n) && !math.IsInf(n, 0)), nil
}

func numberIsNaN(_ *runtime.Value, args []*runtime.Value) (*runtime.Value, *runtime.Value) {
	a := arg(args, 0)
	if a.Kind != runtime.KindNumber {
		return runtime.NewBool(false), nil
	}
	return runtime.NewBool(math.IsNaN(a.Num)), nil
}

func numberIsSafeInteger(_ *runtime.Value, args []*runtime.Value) (*runtime.Value, *runtime.Value) {
	a := arg(args, 0)
	if a.Kind != runtime.KindNumber && a.Kind != runtime.KindInteger {
		return runtime.NewBool(false), nil
	}
	n := runtime.ToNumber(a)
	if math.IsNaN(n) || math.IsInf(n, 0) || math.Floor(n) != n {
		return runtime.NewBool(false), nil
	}
	return runtime.NewBool(math.Abs(n) <= 9007199254740991), nil
}

// numberParseInt implements parseInt's leading-digits-then-stop
// behavior (spec.md's "Tie-breaks and edge cases" treats malformed
// numeric text the same way: best-effort parse, NaN on total failure).
func numberParseInt(_ *runtime.Value, args []*runtime.Value) (*runtime.Value, *runtime.Value) {
	s := strings.TrimSpace(runtime.ToString(arg(args, 0)))
	radix := 10
	if len(args) > 1 && args[1].Kind != runtime.KindUndefined {
		if r := int(runtime.ToNumber(args[1])); r != 0 {
			radix = r
		}
	}
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	} else if strings.HasPrefix(s, "+") {
		s = s[1:]
	}
	if radix == 16 {
		s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	}
	end := 0
	for end < len(s) && isDigitInRadix(s[end], radix) {
		end++
	}
	if end == 0 {
		return runtime.NewNumber(math.NaN()), nil
	}
	n, err := strconv.ParseInt(s[:end], radix, 64)
	if err != nil {
		return runtime.NewNumber(math.NaN()), nil
	}
	if neg {
		n = -n
	}
	return runtime.NewNumber(float64(n)), nil
}

func isDigitInRadix(c byte, radix int) bool {
	var v int
	switch {
	case c >= '0' && c <= '9':
		v = int(c - '0')
	case c >= 'a' && c <= 'z':
		v = int(c-'a') + 10
	case c >= 'A' && c <= 'Z':
		v = int(c-'A') + 10
	default:
		return false
	}
	return v < radix
}

func numberParseFloat(_ *runtime.Value, args []*runtime.Value) (*runtime.Value, *runtime.Value) {
	s := strings.TrimSpace(runtime.ToString(arg(args, 0)))
	end := len(s)
	for i := range s {
		if i == 0 && (s[i] == '+' || s[i] == '-') {
			continue
		}
		if s[i] >= '0' && s[i] <= '9' || s[i] == '.' {
			continue
		}
		end = i
		break
	}
	n, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return runtime.NewNumber(math.NaN()), nil
	}
	return runtime.NewNumber(n), nil
}
