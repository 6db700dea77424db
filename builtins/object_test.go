package builtins

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-jsgo/jsgo/runtime"
)

func newTestObject(fields map[string]*runtime.Value) *runtime.Value {
	obj := runtime.NewObject()
	for k, v := range fields {
		obj.SetField(k, v)
	}
	return runtime.NewObjectValue(obj)
}

func TestObjectKeys(t *testing.T) {
	o := newTestObject(map[string]*runtime.Value{"a": runtime.NewNumber(1), "b": runtime.NewNumber(2)})
	result, thrown := objectKeys(nil, []*runtime.Value{o})
	require.Nil(t, thrown)
	assert.Equal(t, 2.0, result.GetField("length").Num)
}

func TestObjectValues(t *testing.T) {
	o := newTestObject(map[string]*runtime.Value{"x": runtime.NewNumber(10), "y": runtime.NewNumber(20)})
	result, thrown := objectValues(nil, []*runtime.Value{o})
	require.Nil(t, thrown)
	sum := 0.0
	for _, v := range arrayElements(result) {
		sum += v.Num
	}
	assert.Equal(t, 30.0, sum)
}

func TestObjectEntriesPairsKeysWithValues(t *testing.T) {
	o := newTestObject(map[string]*runtime.Value{"k": runtime.NewString("v")})
	result, thrown := objectEntries(nil, []*runtime.Value{o})
	require.Nil(t, thrown)
	entries := arrayElements(result)
	require.Len(t, entries, 1)
	pair := arrayElements(entries[0])
	assert.Equal(t, "k", pair[0].Str)
	assert.Equal(t, "v", pair[1].Str)
}

func TestObjectAssignCopiesOwnFieldsOntoTarget(t *testing.T) {
	target := newTestObject(map[string]*runtime.Value{"a": runtime.NewNumber(1)})
	source := newTestObject(map[string]*runtime.Value{"b": runtime.NewNumber(2)})
	result, thrown := objectAssign(nil, []*runtime.Value{target, source})
	require.Nil(t, thrown)
	assert.Equal(t, 1.0, result.GetField("a").Num)
	assert.Equal(t, 2.0, result.GetField("b").Num)
}

func TestObjectKeysExcludesProto(t *testing.T) {
	proto := runtime.NewObject()
	proto.SetField("inherited", runtime.NewNumber(1))
	obj := runtime.NewObject()
	obj.SetProto(proto)
	obj.SetField("own", runtime.NewNumber(2))

	result, _ := objectKeys(nil, []*runtime.Value{runtime.NewObjectValue(obj)})
	assert.Equal(t, 1.0, result.GetField("length").Num)
}
