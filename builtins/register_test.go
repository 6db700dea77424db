package builtins

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-jsgo/jsgo/runtime"
)

type stubInvoker struct{}

func (stubInvoker) CallFunction(fn *runtime.Function, this *runtime.Value, args []*runtime.Value) (*runtime.Value, *runtime.Value) {
	return fn.Native(this, args)
}

func TestRegisterAllInstallsEveryBuiltinModule(t *testing.T) {
	global := runtime.NewObjectValue(runtime.NewObject())
	RegisterAll(global, stubInvoker{})

	names := []string{
		"console", "Math", "Object", "Array", "Function", "JSON", "Number",
		"Error", "NaN", "Infinity", "undefined",
		"encodeURIComponent", "decodeURIComponent", "encodeURI", "decodeURI",
	}
	for _, name := range names {
		assert.NotEqual(t, runtime.KindUndefined, global.GetField(name).Kind, "missing global %q", name)
	}
}

func TestRegisterAllWiresInvokerForArrayCallbacks(t *testing.T) {
	global := runtime.NewObjectValue(runtime.NewObject())
	RegisterAll(global, stubInvoker{})

	double := runtime.NewFunctionValue(runtime.NewNativeFunction("double", func(_ *runtime.Value, args []*runtime.Value) (*runtime.Value, *runtime.Value) {
		return runtime.NewNumber(runtime.ToNumber(args[0]) * 2), nil
	}))
	arr := newArray([]*runtime.Value{runtime.NewNumber(1), runtime.NewNumber(2)})
	result, thrown := arrayMap(arr, []*runtime.Value{double})
	assert.Nil(t, thrown)
	assert.Equal(t, []float64{2, 4}, floats(arrayElements(result)))
}
