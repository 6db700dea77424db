package builtins

import "github.com/go-jsgo/jsgo/runtime"

// RegisterAll installs every built-in module onto the global object in
// the exact order original_source/src/exec.rs's Interpreter::new()
// does: console, Math, Object, Array, Function, JSON, Number, Error,
// then the number/uri two-phase init hooks that mutate global directly
// instead of returning a namespace value.
func RegisterAll(global *runtime.Value, inv runtime.Invoker) {
	invoker = inv

	global.SetField("console", newConsole())
	global.SetField("Math", newMath())
	global.SetField("Object", newObject())
	global.SetField("Array", newArrayGlobal())
	global.SetField("Function", newFunctionGlobal())
	global.SetField("JSON", newJSONGlobal())
	global.SetField("Number", newNumberGlobal())
	global.SetField("Error", newErrorGlobal())

	installNumberGlobals(global.Obj)
	installURI(global.Obj)
}
