package runtime

import (
	"math"
	"strconv"
	"strings"
)

// IsTrue implements is_true (spec §4.1): false for Null, Undefined,
// Boolean(false), Number(0)/Number(NaN), String(""); true otherwise.
func IsTrue(v *Value) bool {
	switch v.Kind {
	case KindNull, KindUndefined:
		return false
	case KindBoolean:
		return v.Bool
	case KindNumber:
		return v.Num != 0 && !math.IsNaN(v.Num)
	case KindInteger:
		return v.Int != 0
	case KindString:
		return v.Str != ""
	default:
		return true
	}
}

// ToString implements to_string (spec §4.1). An object that owns a
// native toString callable has it invoked with no arguments; a
// user-defined (regular) toString cannot be invoked from this package
// without the evaluator, so it falls back to "[object Object]". Only
// the object's own toString binding is consulted, not its prototype
// chain.
func ToString(v *Value) string {
	switch v.Kind {
	case KindNull:
		return "null"
	case KindUndefined:
		return "undefined"
	case KindBoolean:
		if v.Bool {
			return "true"
		}
		return "false"
	case KindNumber:
		return formatNumber(v.Num)
	case KindInteger:
		return strconv.FormatInt(int64(v.Int), 10)
	case KindString:
		return v.Str
	case KindFunction:
		return "function"
	case KindObject:
		if fn := nativeToString(v.Obj); fn != nil {
			if result, thrown := fn.Native(v, nil); thrown == nil && result != nil {
				return ToString(result)
			}
		}
		return "[object Object]"
	default:
		return "undefined"
	}
}

func nativeToString(o *Object) *Function {
	field, ok := o.Fields["toString"]
	if !ok || field.Kind != KindFunction || field.Fn == nil || field.Fn.Kind != NativeFunc {
		return nil
	}
	return field.Fn
}

func formatNumber(n float64) string {
	switch {
	case math.IsNaN(n):
		return "NaN"
	case math.IsInf(n, 1):
		return "Infinity"
	case math.IsInf(n, -1):
		return "-Infinity"
	case n == 0:
		return "0"
	default:
		return strconv.FormatFloat(n, 'g', -1, 64)
	}
}

// ToNumber implements to_number (spec §4.1): String parsed with leading
// sign and optional fraction, unparsable → NaN; Boolean true→1,
// false→0; Null→0; Undefined→NaN; Object→NaN unless it owns a native
// valueOf returning a primitive (see ToString's note on native-only
// dispatch).
func ToNumber(v *Value) float64 {
	switch v.Kind {
	case KindUndefined:
		return math.NaN()
	case KindNull:
		return 0
	case KindBoolean:
		if v.Bool {
			return 1
		}
		return 0
	case KindNumber:
		return v.Num
	case KindInteger:
		return float64(v.Int)
	case KindString:
		s := strings.TrimSpace(v.Str)
		if s == "" {
			return 0
		}
		n, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return math.NaN()
		}
		return n
	case KindObject:
		if field, ok := v.Obj.Fields["valueOf"]; ok && field.Kind == KindFunction && field.Fn != nil && field.Fn.Kind == NativeFunc {
			if result, thrown := field.Fn.Native(v, nil); thrown == nil && result != nil && result.Kind != KindObject {
				return ToNumber(result)
			}
		}
		return math.NaN()
	default:
		return math.NaN()
	}
}

// ToInt32 implements the ECMAScript-style ToInt32 bit-twiddling used by
// the bitwise operators (spec §4.1).
func ToInt32(v *Value) int32 {
	n := ToNumber(v)
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0
	}
	u := uint32(int64(math.Trunc(n)))
	return int32(u)
}

// Equals implements the spec's equality rule (spec §4.1): same-variant
// structural equality on primitives; Object/Function equality is handle
// identity. Integer and Number compare numerically against each other,
// since Integer coerces to Number everywhere else (spec §3).
func Equals(a, b *Value) bool {
	an, bn := isNumeric(a), isNumeric(b)
	if an && bn {
		x, y := numericValue(a), numericValue(b)
		if math.IsNaN(x) || math.IsNaN(y) {
			return false
		}
		return x == y
	}
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindNull, KindUndefined:
		return true
	case KindBoolean:
		return a.Bool == b.Bool
	case KindString:
		return a.Str == b.Str
	case KindObject:
		return a.Obj == b.Obj
	case KindFunction:
		return a.Fn == b.Fn
	default:
		return false
	}
}

func isNumeric(v *Value) bool { return v.Kind == KindNumber || v.Kind == KindInteger }

func numericValue(v *Value) float64 {
	if v.Kind == KindInteger {
		return float64(v.Int)
	}
	return v.Num
}
