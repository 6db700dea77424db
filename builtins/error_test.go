package builtins

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-jsgo/jsgo/runtime"
)

func TestErrorConstructorSetsMessageAndDefaultName(t *testing.T) {
	result, thrown := errorConstructorCall(nil, []*runtime.Value{runtime.NewString("boom")})
	assert.Nil(t, thrown)
	assert.Equal(t, "boom", result.GetField("message").Str)
	assert.Equal(t, "Error", result.GetField("name").Str)
}

func TestErrorConstructorFillsExistingThis(t *testing.T) {
	instance := runtime.NewObjectValue(runtime.NewObject())
	instance.SetField("name", runtime.NewString("RangeError"))
	result, _ := errorConstructorCall(instance, []*runtime.Value{runtime.NewString("out of range")})
	assert.Same(t, instance.Obj, result.Obj)
	assert.Equal(t, "RangeError", result.GetField("name").Str)
}

func TestErrorToString(t *testing.T) {
	e := runtime.NewObjectValue(runtime.NewObject())
	e.SetField("name", runtime.NewString("TypeError"))
	e.SetField("message", runtime.NewString("bad"))
	result, _ := errorToString(e, nil)
	assert.Equal(t, "TypeError: bad", result.Str)
}
