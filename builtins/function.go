package builtins

import "github.com/go-jsgo/jsgo/runtime"

// newFunctionGlobal builds the `Function` global as a minimal
// namespace object, grounded on the teacher's own function::_create()
// stub (original_source/src/exec.rs registers it the same way, ahead
// of any prototype machinery). Function Values are not Objects in this
// runtime (spec.md §3's Value variants keep Function and Object
// separate), so there is no `fn.call`/`fn.apply` surface to hang a
// richer prototype off: a called-as-a-function receiver is already
// bound through the ordinary Call protocol (spec.md §4.3), and
// bind-style partial application has no host the evaluator can invoke
// it through.
func newFunctionGlobal() *runtime.Value {
	return runtime.NewObjectValue(runtime.NewObject())
}
