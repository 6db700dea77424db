package builtins

import (
	"sort"
	"strconv"
	"strings"

	"github.com/go-jsgo/jsgo/runtime"
)

// arrayPrototype is linked onto every array-convention object newArray
// builds, so `arr.push(...)` resolves through the ordinary GetField
// prototype walk (spec.md §3) rather than needing a dedicated array
// Kind.
var arrayPrototype *runtime.Object

// newArrayGlobal builds the `Array` global: a constructor-as-namespace
// (isArray/from/of) plus the prototype every array literal's backing
// object links to, grounded on the teacher's createArrayConstructor
// split between static and instance methods.
func newArrayGlobal() *runtime.Value {
	proto := runtime.NewObject()
	arrayPrototype = proto

	setMethod(proto, "push", arrayPush)
	setMethod(proto, "pop", arrayPop)
	setMethod(proto, "shift", arrayShift)
	setMethod(proto, "unshift", arrayUnshift)
	setMethod(proto, "slice", arraySlice)
	setMethod(proto, "concat", arrayConcat)
	setMethod(proto, "indexOf", arrayIndexOf)
	setMethod(proto, "lastIndexOf", arrayLastIndexOf)
	setMethod(proto, "includes", arrayIncludes)
	setMethod(proto, "join", arrayJoin)
	setMethod(proto, "reverse", arrayReverse)
	setMethod(proto, "forEach", arrayForEach)
	setMethod(proto, "map", arrayMap)
	setMethod(proto, "filter", arrayFilter)
	setMethod(proto, "reduce", arrayReduce)
	setMethod(proto, "find", arrayFind)
	setMethod(proto, "findIndex", arrayFindIndex)
	setMethod(proto, "every", arrayEvery)
	setMethod(proto, "some", arraySome)
	setMethod(proto, "sort", arraySort)
	setMethod(proto, "toString", arrayToString)

	ctor := runtime.NewObject()
	ctor.SetProto(proto)
	setMethod(ctor, "isArray", arrayIsArray)
	setMethod(ctor, "from", arrayFrom)
	setMethod(ctor, "of", arrayOf)
	ctor.SetField("prototype", runtime.NewObjectValue(proto))

	return runtime.NewObjectValue(ctor)
}

func setLength(v *runtime.Value, n int) {
	v.SetField("length", runtime.NewNumber(float64(n)))
}

func arrayPush(this *runtime.Value, args []*runtime.Value) (*runtime.Value, *runtime.Value) {
	n := arrayLength(this)
	for i, v := range args {
		this.SetField(strconv.Itoa(n+i), v)
	}
	newLen := n + len(args)
	setLength(this, newLen)
	return runtime.NewNumber(float64(newLen)), nil
}

func arrayPop(this *runtime.Value, _ []*runtime.Value) (*runtime.Value, *runtime.Value) {
	n := arrayLength(this)
	if n == 0 {
		return runtime.Undefined(), nil
	}
	last := this.GetField(strconv.Itoa(n - 1))
	this.Obj.SetField(strconv.Itoa(n-1), runtime.Undefined())
	setLength(this, n-1)
	return last, nil
}

func arrayShift(this *runtime.Value, _ []*runtime.Value) (*runtime.Value, *runtime.Value) {
	elems := arrayElements(this)
	if len(elems) == 0 {
		return runtime.Undefined(), nil
	}
	first := elems[0]
	rewriteArray(this, elems[1:])
	return first, nil
}

func arrayUnshift(this *runtime.Value, args []*runtime.Value) (*runtime.Value, *runtime.Value) {
	elems := append(append([]*runtime.Value{}, args...), arrayElements(this)...)
	rewriteArray(this, elems)
	return runtime.NewNumber(float64(len(elems))), nil
}

// rewriteArray replaces this's element slots in place, keeping the
// same backing Object (and therefore the same prototype and any other
// field a caller may have set on it) while resetting its length.
func rewriteArray(this *runtime.Value, elems []*runtime.Value) {
	n := arrayLength(this)
	for i := 0; i < n; i++ {
		this.Obj.SetField(strconv.Itoa(i), runtime.Undefined())
	}
	for i, v := range elems {
		this.Obj.SetField(strconv.Itoa(i), v)
	}
	setLength(this, len(elems))
}

func clampIndex(i, n int) int {
	if i < 0 {
		i += n
	}
	if i < 0 {
		return 0
	}
	if i > n {
		return n
	}
	return i
}

func arraySlice(this *runtime.Value, args []*runtime.Value) (*runtime.Value, *runtime.Value) {
	elems := arrayElements(this)
	n := len(elems)
	start, end := 0, n
	if len(args) > 0 {
		start = clampIndex(int(runtime.ToNumber(args[0])), n)
	}
	if len(args) > 1 {
		end = clampIndex(int(runtime.ToNumber(args[1])), n)
	}
	if start > end {
		return newArray(nil), nil
	}
	return newArray(elems[start:end]), nil
}

func arrayConcat(this *runtime.Value, args []*runtime.Value) (*runtime.Value, *runtime.Value) {
	elems := arrayElements(this)
	for _, a := range args {
		if a.IsObject() && a.Obj.HasOwn("length") {
			elems = append(elems, arrayElements(a)...)
		} else {
			elems = append(elems, a)
		}
	}
	return newArray(elems), nil
}

func arrayIndexOf(this *runtime.Value, args []*runtime.Value) (*runtime.Value, *runtime.Value) {
	target := arg(args, 0)
	for i, v := range arrayElements(this) {
		if runtime.Equals(v, target) {
			return runtime.NewNumber(float64(i)), nil
		}
	}
	return runtime.NewNumber(-1), nil
}

func arrayLastIndexOf(this *runtime.Value, args []*runtime.Value) (*runtime.Value, *runtime.Value) {
	target := arg(args, 0)
	elems := arrayElements(this)
	for i := len(elems) - 1; i >= 0; i-- {
		if runtime.Equals(elems[i], target) {
			return runtime.NewNumber(float64(i)), nil
		}
	}
	return runtime.NewNumber(-1), nil
}

func arrayIncludes(this *runtime.Value, args []*runtime.Value) (*runtime.Value, *runtime.Value) {
	target := arg(args, 0)
	for _, v := range arrayElements(this) {
		if runtime.Equals(v, target) {
			return runtime.NewBool(true), nil
		}
	}
	return runtime.NewBool(false), nil
}

func arrayJoin(this *runtime.Value, args []*runtime.Value) (*runtime.Value, *runtime.Value) {
	sep := ","
	if len(args) > 0 && args[0].Kind != runtime.KindUndefined {
		sep = runtime.ToString(args[0])
	}
	elems := arrayElements(this)
	parts := make([]string, len(elems))
	for i, v := range elems {
		if v.Kind == runtime.KindNull || v.Kind == runtime.KindUndefined {
			parts[i] = ""
			continue
		}
		parts[i] = runtime.ToString(v)
	}
	return runtime.NewString(strings.Join(parts, sep)), nil
}

func arrayToString(this *runtime.Value, _ []*runtime.Value) (*runtime.Value, *runtime.Value) {
	return arrayJoin(this, nil)
}

func arrayReverse(this *runtime.Value, _ []*runtime.Value) (*runtime.Value, *runtime.Value) {
	elems := arrayElements(this)
	for i, j := 0, len(elems)-1; i < j; i, j = i+1, j-1 {
		elems[i], elems[j] = elems[j], elems[i]
	}
	rewriteArray(this, elems)
	return this, nil
}

func arrayForEach(this *runtime.Value, args []*runtime.Value) (*runtime.Value, *runtime.Value) {
	cb := arg(args, 0)
	for i, v := range arrayElements(this) {
		if _, thrown := callCallback(cb, runtime.Undefined(), []*runtime.Value{v, runtime.NewNumber(float64(i)), this}); thrown != nil {
			return nil, thrown
		}
	}
	return runtime.Undefined(), nil
}

func arrayMap(this *runtime.Value, args []*runtime.Value) (*runtime.Value, *runtime.Value) {
	cb := arg(args, 0)
	elems := arrayElements(this)
	out := make([]*runtime.Value, len(elems))
	for i, v := range elems {
		r, thrown := callCallback(cb, runtime.Undefined(), []*runtime.Value{v, runtime.NewNumber(float64(i)), this})
		if thrown != nil {
			return nil, thrown
		}
		out[i] = r
	}
	return newArray(out), nil
}

func arrayFilter(this *runtime.Value, args []*runtime.Value) (*runtime.Value, *runtime.Value) {
	cb := arg(args, 0)
	var out []*runtime.Value
	for i, v := range arrayElements(this) {
		r, thrown := callCallback(cb, runtime.Undefined(), []*runtime.Value{v, runtime.NewNumber(float64(i)), this})
		if thrown != nil {
			return nil, thrown
		}
		if runtime.IsTrue(r) {
			out = append(out, v)
		}
	}
	return newArray(out), nil
}

func arrayReduce(this *runtime.Value, args []*runtime.Value) (*runtime.Value, *runtime.Value) {
	cb := arg(args, 0)
	elems := arrayElements(this)
	i := 0
	var acc *runtime.Value
	if len(args) > 1 {
		acc = args[1]
	} else {
		if len(elems) == 0 {
			return runtime.Undefined(), nil
		}
		acc = elems[0]
		i = 1
	}
	for ; i < len(elems); i++ {
		r, thrown := callCallback(cb, runtime.Undefined(), []*runtime.Value{acc, elems[i], runtime.NewNumber(float64(i)), this})
		if thrown != nil {
			return nil, thrown
		}
		acc = r
	}
	return acc, nil
}

func arrayFind(this *runtime.Value, args []*runtime.Value) (*runtime.Value, *runtime.Value) {
	cb := arg(args, 0)
	for i, v := range arrayElements(this) {
		r, thrown := callCallback(cb, runtime.Undefined(), []*runtime.Value{v, runtime.NewNumber(float64(i)), this})
		if thrown != nil {
			return nil, thrown
		}
		if runtime.IsTrue(r) {
			return v, nil
		}
	}
	return runtime.Undefined(), nil
}

func arrayFindIndex(this *runtime.Value, args []*runtime.Value) (*runtime.Value, *runtime.Value) {
	cb := arg(args, 0)
	for i, v := range arrayElements(this) {
		r, thrown := callCallback(cb, runtime.Undefined(), []*runtime.Value{v, runtime.NewNumber(float64(i)), this})
		if thrown != nil {
			return nil, thrown
		}
		if runtime.IsTrue(r) {
			return runtime.NewNumber(float64(i)), nil
		}
	}
	return runtime.NewNumber(-1), nil
}

func arrayEvery(this *runtime.Value, args []*runtime.Value) (*runtime.Value, *runtime.Value) {
	cb := arg(args, 0)
	for i, v := range arrayElements(this) {
		r, thrown := callCallback(cb, runtime.Undefined(), []*runtime.Value{v, runtime.NewNumber(float64(i)), this})
		if thrown != nil {
			return nil, thrown
		}
		if !runtime.IsTrue(r) {
			return runtime.NewBool(false), nil
		}
	}
	return runtime.NewBool(true), nil
}

func arraySome(this *runtime.Value, args []*runtime.Value) (*runtime.Value, *runtime.Value) {
	cb := arg(args, 0)
	for i, v := range arrayElements(this) {
		r, thrown := callCallback(cb, runtime.Undefined(), []*runtime.Value{v, runtime.NewNumber(float64(i)), this})
		if thrown != nil {
			return nil, thrown
		}
		if runtime.IsTrue(r) {
			return runtime.NewBool(true), nil
		}
	}
	return runtime.NewBool(false), nil
}

func arraySort(this *runtime.Value, args []*runtime.Value) (*runtime.Value, *runtime.Value) {
	cb := arg(args, 0)
	elems := arrayElements(this)
	var thrown *runtime.Value
	sort.SliceStable(elems, func(i, j int) bool {
		if thrown != nil {
			return false
		}
		if cb.Kind == runtime.KindFunction {
			r, th := callCallback(cb, runtime.Undefined(), []*runtime.Value{elems[i], elems[j]})
			if th != nil {
				thrown = th
				return false
			}
			return runtime.ToNumber(r) < 0
		}
		return runtime.ToString(elems[i]) < runtime.ToString(elems[j])
	})
	if thrown != nil {
		return nil, thrown
	}
	rewriteArray(this, elems)
	return this, nil
}

func arrayIsArray(_ *runtime.Value, args []*runtime.Value) (*runtime.Value, *runtime.Value) {
	v := arg(args, 0)
	return runtime.NewBool(v.IsObject() && v.Obj.HasOwn("length")), nil
}

func arrayFrom(_ *runtime.Value, args []*runtime.Value) (*runtime.Value, *runtime.Value) {
	src := arg(args, 0)
	if !src.IsObject() {
		return newArray(nil), nil
	}
	elems := arrayElements(src)
	cb := arg(args, 1)
	if cb.Kind != runtime.KindFunction {
		return newArray(elems), nil
	}
	out := make([]*runtime.Value, len(elems))
	for i, v := range elems {
		r, thrown := callCallback(cb, runtime.Undefined(), []*runtime.Value{v, runtime.NewNumber(float64(i))})
		if thrown != nil {
			return nil, thrown
		}
		out[i] = r
	}
	return newArray(out), nil
}

func arrayOf(_ *runtime.Value, args []*runtime.Value) (*runtime.Value, *runtime.Value) {
	return newArray(args), nil
}
