package builtins

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-jsgo/jsgo/runtime"
)

func nums(vals ...float64) []*runtime.Value {
	out := make([]*runtime.Value, len(vals))
	for i, v := range vals {
		out[i] = runtime.NewNumber(v)
	}
	return out
}

func TestArrayPushPop(t *testing.T) {
	arr := newArray(nums(1, 2, 3))

	length, thrown := arrayPush(arr, []*runtime.Value{runtime.NewNumber(4)})
	require.Nil(t, thrown)
	assert.Equal(t, 4.0, length.Num)

	popped, thrown := arrayPop(arr, nil)
	require.Nil(t, thrown)
	assert.Equal(t, 4.0, popped.Num)
	assert.Equal(t, 3.0, arr.GetField("length").Num)
}

func TestArrayShiftUnshift(t *testing.T) {
	arr := newArray(nums(1, 2, 3))

	first, thrown := arrayShift(arr, nil)
	require.Nil(t, thrown)
	assert.Equal(t, 1.0, first.Num)
	assert.Equal(t, []float64{2, 3}, floats(arrayElements(arr)))

	_, thrown = arrayUnshift(arr, []*runtime.Value{runtime.NewNumber(0)})
	require.Nil(t, thrown)
	assert.Equal(t, []float64{0, 2, 3}, floats(arrayElements(arr)))
}

func floats(vs []*runtime.Value) []float64 {
	out := make([]float64, len(vs))
	for i, v := range vs {
		out[i] = v.Num
	}
	return out
}

func TestArraySlice(t *testing.T) {
	arr := newArray(nums(1, 2, 3, 4, 5))
	result, thrown := arraySlice(arr, []*runtime.Value{runtime.NewNumber(1), runtime.NewNumber(3)})
	require.Nil(t, thrown)
	assert.Equal(t, []float64{2, 3}, floats(arrayElements(result)))
}

func TestArrayIndexOfAndIncludes(t *testing.T) {
	arr := newArray(nums(10, 20, 30))
	idx, _ := arrayIndexOf(arr, []*runtime.Value{runtime.NewNumber(20)})
	assert.Equal(t, 1.0, idx.Num)
	inc, _ := arrayIncludes(arr, []*runtime.Value{runtime.NewNumber(99)})
	assert.False(t, inc.Bool)
}

func TestArrayJoin(t *testing.T) {
	arr := newArray([]*runtime.Value{runtime.NewString("a"), runtime.NewString("b")})
	result, _ := arrayJoin(arr, []*runtime.Value{runtime.NewString("-")})
	assert.Equal(t, "a-b", result.Str)
}

func TestArrayReverse(t *testing.T) {
	arr := newArray(nums(1, 2, 3))
	arrayReverse(arr, nil)
	assert.Equal(t, []float64{3, 2, 1}, floats(arrayElements(arr)))
}

func TestArrayMapWithoutInvoker(t *testing.T) {
	// With no invoker wired, callbacks resolve to Undefined rather
	// than panicking — exercises the callCallback nil-invoker guard.
	arr := newArray(nums(1, 2, 3))
	mapped, thrown := arrayMap(arr, []*runtime.Value{runtime.Undefined()})
	require.Nil(t, thrown)
	assert.Equal(t, 3.0, mapped.GetField("length").Num)
}

func TestArrayIsArray(t *testing.T) {
	arr := newArray(nums(1))
	result, _ := arrayIsArray(nil, []*runtime.Value{arr})
	assert.True(t, result.Bool)
	result, _ = arrayIsArray(nil, []*runtime.Value{runtime.NewNumber(1)})
	assert.False(t, result.Bool)
}

func TestArrayOf(t *testing.T) {
	result, _ := arrayOf(nil, []*runtime.Value{runtime.NewNumber(1), runtime.NewNumber(2)})
	assert.Equal(t, 2.0, result.GetField("length").Num)
}
