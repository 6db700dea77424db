package builtins

import "github.com/go-jsgo/jsgo/runtime"

// newErrorGlobal builds the `Error` global: a constructible Function
// whose call and construct behave identically (spec.md's Construct
// discards a constructor's normal return and yields the fresh `this`
// instead, so errorConstructorCall populates whichever object it is
// handed), grounded on the teacher's makeErrorValue but trimmed to a
// single Error type — no subtype hierarchy, since spec.md's Value
// model has no distinct Error kind to subtype.
func newErrorGlobal() *runtime.Value {
	proto := runtime.NewObject()
	proto.SetField("name", runtime.NewString("Error"))
	proto.SetField("message", runtime.NewString(""))
	setMethod(proto, "toString", errorToString)

	fn := runtime.NewNativeFunction("Error", errorConstructorCall)
	fn.Prototype = proto
	ctorVal := runtime.NewFunctionValue(fn)
	proto.SetField("constructor", ctorVal)
	return ctorVal
}

// errorConstructorCall fills `this` in place whenever it is an object:
// the fresh instance `new Error(...)` passes, or whatever receiver an
// ordinary call supplies (the global object, for a bare `Error(...)`).
// Only a nil or non-object `this` gets a freestanding error-shaped
// object built for it.
func errorConstructorCall(this *runtime.Value, args []*runtime.Value) (*runtime.Value, *runtime.Value) {
	target := this
	if target == nil || !target.IsObject() {
		target = runtime.NewObjectValue(runtime.NewObject())
	}
	msg := ""
	if m := arg(args, 0); m.Kind != runtime.KindUndefined {
		msg = runtime.ToString(m)
	}
	target.SetField("message", runtime.NewString(msg))
	if target.GetField("name").Kind != runtime.KindString {
		target.SetField("name", runtime.NewString("Error"))
	}
	return target, nil
}

func errorToString(this *runtime.Value, _ []*runtime.Value) (*runtime.Value, *runtime.Value) {
	name := runtime.ToString(this.GetField("name"))
	msg := runtime.ToString(this.GetField("message"))
	if name == "" {
		return runtime.NewString(msg), nil
	}
	if msg == "" {
		return runtime.NewString(name), nil
	}
	return runtime.NewString(name + ": " + msg), nil
}
