package builtins

import (
	"strconv"

	"github.com/go-jsgo/jsgo/runtime"
)

// invoker lets callback-taking built-ins (Array's forEach/map/filter/
// reduce/find/findIndex/every/some/sort and Array.from) re-enter the
// evaluator to run a
// Function value handed to them (spec.md §4.3's re-entrancy
// requirement). Populated once by RegisterAll.
var invoker runtime.Invoker

// callCallback invokes a callback argument, tolerating a non-Function
// value by treating it as a no-op that yields Undefined — callers that
// must throw on a bad callback check the Kind themselves first.
func callCallback(fn *runtime.Value, this *runtime.Value, args []*runtime.Value) (*runtime.Value, *runtime.Value) {
	if fn == nil || fn.Kind != runtime.KindFunction || fn.Fn == nil || invoker == nil {
		return runtime.Undefined(), nil
	}
	return invoker.CallFunction(fn.Fn, this, args)
}

// newNativeValue wraps a host function as a callable Value, the shape
// every global/prototype method is registered with.
func newNativeValue(name string, fn runtime.NativeCall) *runtime.Value {
	return runtime.NewFunctionValue(runtime.NewNativeFunction(name, fn))
}

// setMethod binds name on obj to a native function (teacher's
// createXObject/setMethod idiom, adapted to this runtime's flat
// Fields map in place of property descriptors).
func setMethod(obj *runtime.Object, name string, fn runtime.NativeCall) {
	obj.SetField(name, newNativeValue(name, fn))
}

// arg returns the i-th argument, or Undefined when the call site left
// it unsupplied (spec.md §4.1's missing-actual rule, reused for native
// calls as well as regular ones).
func arg(args []*runtime.Value, i int) *runtime.Value {
	if i < len(args) {
		return args[i]
	}
	return runtime.Undefined()
}

// newArray builds an array-convention object: numeric string keys
// "0".."n-1" plus an explicit "length" field (spec.md §3's array
// representation, since the Object model has no dedicated array kind).
func newArray(elems []*runtime.Value) *runtime.Value {
	obj := runtime.NewObject()
	if arrayPrototype != nil {
		obj.SetProto(arrayPrototype)
	}
	for i, v := range elems {
		obj.SetField(strconv.Itoa(i), v)
	}
	obj.SetField("length", runtime.NewNumber(float64(len(elems))))
	return runtime.NewObjectValue(obj)
}

// arrayLength reads an array-convention object's "length" field,
// coercing to a non-negative element count.
func arrayLength(v *runtime.Value) int {
	n := runtime.ToNumber(v.GetField("length"))
	if n < 0 {
		return 0
	}
	return int(n)
}

// arrayElements reads back an array-convention object's "0".."n-1"
// slots into a plain Go slice, for built-ins that need to iterate one.
func arrayElements(v *runtime.Value) []*runtime.Value {
	n := arrayLength(v)
	out := make([]*runtime.Value, n)
	for i := 0; i < n; i++ {
		out[i] = v.GetField(strconv.Itoa(i))
	}
	return out
}
