package builtins

import "github.com/go-jsgo/jsgo/runtime"

// newObject builds the `Object` global: a constructor-as-namespace
// carrying the handful of static helpers spec.md's object literal and
// field-access semantics make observable (keys/values/entries/assign),
// plus the empty `prototype` object every object literal's __proto__
// links to, grounded on the teacher's createObjectConstructor split
// between constructor call and static methods, adapted away from
// property descriptors to this runtime's flat Fields map.
func newObject() *runtime.Value {
	ctor := runtime.NewObject()
	setMethod(ctor, "keys", objectKeys)
	setMethod(ctor, "values", objectValues)
	setMethod(ctor, "entries", objectEntries)
	setMethod(ctor, "assign", objectAssign)
	ctor.SetField("prototype", runtime.NewObjectValue(runtime.NewObject()))
	return runtime.NewObjectValue(ctor)
}

// ownKeys returns an object's own field names, excluding the internal
// __proto__ slot (spec.md §3's prototype link is not an enumerable
// property of the object it sits on).
func ownKeys(v *runtime.Value) []string {
	if !v.IsObject() {
		return nil
	}
	keys := make([]string, 0, len(v.Obj.Fields))
	for k := range v.Obj.Fields {
		if k == "__proto__" {
			continue
		}
		keys = append(keys, k)
	}
	return keys
}

func objectKeys(_ *runtime.Value, args []*runtime.Value) (*runtime.Value, *runtime.Value) {
	keys := ownKeys(arg(args, 0))
	elems := make([]*runtime.Value, len(keys))
	for i, k := range keys {
		elems[i] = runtime.NewString(k)
	}
	return newArray(elems), nil
}

func objectValues(_ *runtime.Value, args []*runtime.Value) (*runtime.Value, *runtime.Value) {
	obj := arg(args, 0)
	keys := ownKeys(obj)
	elems := make([]*runtime.Value, len(keys))
	for i, k := range keys {
		elems[i] = obj.GetField(k)
	}
	return newArray(elems), nil
}

func objectEntries(_ *runtime.Value, args []*runtime.Value) (*runtime.Value, *runtime.Value) {
	obj := arg(args, 0)
	keys := ownKeys(obj)
	elems := make([]*runtime.Value, len(keys))
	for i, k := range keys {
		elems[i] = newArray([]*runtime.Value{runtime.NewString(k), obj.GetField(k)})
	}
	return newArray(elems), nil
}

func objectAssign(_ *runtime.Value, args []*runtime.Value) (*runtime.Value, *runtime.Value) {
	target := arg(args, 0)
	for _, src := range args[minInt(1, len(args)):] {
		for _, k := range ownKeys(src) {
			target.SetField(k, src.GetField(k))
		}
	}
	return target, nil
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
