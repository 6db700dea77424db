// Package interpreter walks an ast.Expr tree against the runtime value
// model, implementing the call protocol runtime/ deliberately cannot
// (see runtime/invoker.go's Invoker doc comment on the import-cycle
// constraint that put call semantics here instead of there).
package interpreter

import (
	"github.com/go-jsgo/jsgo/ast"
	"github.com/go-jsgo/jsgo/builtins"
	"github.com/go-jsgo/jsgo/runtime"
)

// outcome is the unexported half of spec §4.3's three-variant control
// signal (`Normal(Value) | Returned(Value) | Thrown(Value)`); the
// public surface below collapses it to the (value, thrown) pair
// SPEC_FULL §7 specifies.
type outcome int

const (
	outNormal outcome = iota
	outReturn
	outThrow
)

// Interpreter is the evaluator's state: the global object and the
// live scope stack (spec §4.3 "State"). Re-entrant: built-ins call
// back into CallFunction (through runtime.Invoker) to invoke
// user-supplied callbacks.
type Interpreter struct {
	global *runtime.Value
	scopes []*runtime.Scope
}

// New builds an Interpreter with a freshly populated global object,
// registering every built-in module in the same order the original
// driver did (see builtins.RegisterAll).
func New() *Interpreter {
	global := runtime.NewObjectValue(runtime.NewObject())
	it := &Interpreter{global: global}
	builtins.RegisterAll(global, it)
	return it
}

// SetGlobal sets a field directly on the global object.
func (it *Interpreter) SetGlobal(name string, v *runtime.Value) {
	it.global.SetField(name, v)
}

// GetGlobal reads a field directly from the global object.
func (it *Interpreter) GetGlobal(name string) *runtime.Value {
	return it.global.GetField(name)
}

// Global exposes the global object Value for built-ins and embedders
// that need to wire cross-references (e.g. a constructor's .prototype).
func (it *Interpreter) Global() *runtime.Value { return it.global }

// Run evaluates expr and returns (value, thrown) per SPEC_FULL §7: a
// non-nil thrown means expr (or something it called) threw. A
// top-level `return` surfaces as its value rather than as an error
// (spec §9's stated resolution for "return outside a function body").
func (it *Interpreter) Run(expr ast.Expr) (*runtime.Value, *runtime.Value) {
	value, out := it.eval(expr)
	if out == outThrow {
		return nil, value
	}
	return value, nil
}

// ThrownError adapts an in-language thrown Value into a Go error for
// callers that want idiomatic error handling (SPEC_FULL §7).
type ThrownError struct {
	Value *runtime.Value
}

func (e *ThrownError) Error() string {
	return "uncaught: " + runtime.ToString(e.Value)
}

// Eval is the convenience entry point: run expr, adapting a thrown
// value into a *ThrownError.
func (it *Interpreter) Eval(expr ast.Expr) (*runtime.Value, error) {
	value, thrown := it.Run(expr)
	if thrown != nil {
		return nil, &ThrownError{Value: thrown}
	}
	return value, nil
}

// eval is the total function `run(expr) -> Result<Value, Value>` of
// spec §4.3, generalized to the three-variant outcome signal that
// carries `return` through block/if/while/switch boundaries up to the
// nearest function-call frame.
func (it *Interpreter) eval(expr ast.Expr) (*runtime.Value, outcome) {
	switch e := expr.(type) {

	case *ast.NullLiteral:
		return runtime.Null(), outNormal
	case *ast.UndefinedLiteral:
		return runtime.Undefined(), outNormal
	case *ast.NumberLiteral:
		return runtime.NewNumber(e.Value), outNormal
	case *ast.IntegerLiteral:
		return runtime.NewInteger(e.Value), outNormal
	case *ast.StringLiteral:
		return runtime.NewString(e.Value), outNormal
	case *ast.BoolLiteral:
		return runtime.NewBool(e.Value), outNormal
	case *ast.RegExpLiteral:
		return runtime.NewBool(true), outNormal

	case *ast.Block:
		return it.evalBlock(e)

	case *ast.Local:
		return it.lookupLocal(e.Name), outNormal

	case *ast.GetField:
		obj, out := it.eval(e.Object)
		if out != outNormal {
			return obj, out
		}
		return obj.GetField(e.Name), outNormal

	case *ast.GetIndex:
		obj, out := it.eval(e.Object)
		if out != outNormal {
			return obj, out
		}
		idx, out := it.eval(e.Index)
		if out != outNormal {
			return idx, out
		}
		return obj.GetField(runtime.ToString(idx)), outNormal

	case *ast.Call:
		return it.evalCall(e)

	case *ast.While:
		return it.evalWhile(e)

	case *ast.If:
		cond, out := it.eval(e.Cond)
		if out != outNormal {
			return cond, out
		}
		if runtime.IsTrue(cond) {
			return it.eval(e.Then)
		}
		if e.Else != nil {
			return it.eval(e.Else)
		}
		return runtime.Undefined(), outNormal

	case *ast.Switch:
		return it.evalSwitch(e)

	case *ast.ObjectLiteral:
		return it.evalObjectLiteral(e)

	case *ast.ArrayLiteral:
		return it.evalArrayLiteral(e)

	case *ast.FunctionDecl:
		return it.evalFunctionDecl(e), outNormal

	case *ast.NumOp:
		return it.evalNumOp(e)

	case *ast.Shift:
		return it.evalShift(e)

	case *ast.Compare:
		return it.evalCompare(e)

	case *ast.Logical:
		return it.evalLogical(e)

	case *ast.Construct:
		return it.evalConstruct(e)

	case *ast.Return:
		if e.Value == nil {
			return runtime.Undefined(), outReturn
		}
		value, out := it.eval(e.Value)
		if out == outThrow {
			return value, out
		}
		return value, outReturn

	case *ast.Throw:
		value, out := it.eval(e.Value)
		if out != outNormal {
			return value, out
		}
		return value, outThrow

	case *ast.Assign:
		return it.evalAssign(e)

	default:
		return runtime.Undefined(), outNormal
	}
}

func (it *Interpreter) evalBlock(b *ast.Block) (*runtime.Value, outcome) {
	result := runtime.Null()
	for _, child := range b.Children {
		value, out := it.eval(child)
		if out != outNormal {
			return value, out
		}
		result = value
	}
	return result, outNormal
}

// lookupLocal implements spec §4.3 "Local": scopes top-down (innermost
// first), then the global object, then Undefined.
func (it *Interpreter) lookupLocal(name string) *runtime.Value {
	for i := len(it.scopes) - 1; i >= 0; i-- {
		if v, ok := it.scopes[i].Get(name); ok {
			return v
		}
	}
	return it.global.GetField(name)
}

func (it *Interpreter) evalWhile(w *ast.While) (*runtime.Value, outcome) {
	result := runtime.Undefined()
	for {
		cond, out := it.eval(w.Cond)
		if out != outNormal {
			return cond, out
		}
		if !runtime.IsTrue(cond) {
			return result, outNormal
		}
		value, out := it.eval(w.Body)
		if out != outNormal {
			return value, out
		}
		result = value
	}
}

func (it *Interpreter) evalSwitch(s *ast.Switch) (*runtime.Value, outcome) {
	disc, out := it.eval(s.Discriminant)
	if out != outNormal {
		return disc, out
	}
	var defaultCase *ast.SwitchCase
	for _, c := range s.Cases {
		if c.Test == nil {
			defaultCase = c
			continue
		}
		test, out := it.eval(c.Test)
		if out != outNormal {
			return test, out
		}
		if runtime.Equals(disc, test) {
			return it.eval(c.Body)
		}
	}
	if defaultCase != nil {
		return it.eval(defaultCase.Body)
	}
	return runtime.Null(), outNormal
}

func (it *Interpreter) evalObjectLiteral(o *ast.ObjectLiteral) (*runtime.Value, outcome) {
	obj := runtime.NewObject()
	for _, prop := range o.Props {
		value, out := it.eval(prop.Value)
		if out != outNormal {
			return value, out
		}
		obj.SetField(prop.Key, value)
	}
	if proto := it.GetGlobal("Object").GetField("prototype"); proto.IsObject() {
		obj.SetProto(proto.Obj)
	}
	return runtime.NewObjectValue(obj), outNormal
}

func (it *Interpreter) evalArrayLiteral(a *ast.ArrayLiteral) (*runtime.Value, outcome) {
	obj := runtime.NewObject()
	index := 0
	for _, elem := range a.Elements {
		value, out := it.eval(elem)
		if out != outNormal {
			return value, out
		}
		obj.SetField(runtime.ToString(runtime.NewInteger(int32(index))), value)
		index++
	}
	if proto := it.GetGlobal("Array").GetField("prototype"); proto.IsObject() {
		obj.SetProto(proto.Obj)
	}
	obj.SetField("length", runtime.NewNumber(float64(index)))
	return runtime.NewObjectValue(obj), outNormal
}

// evalFunctionDecl builds a regular Function record, capturing the
// live scope stack (spec §9 "Closures and scope chains"); a named
// declaration also binds on the global object.
func (it *Interpreter) evalFunctionDecl(f *ast.FunctionDecl) *runtime.Value {
	captured := make([]*runtime.Scope, len(it.scopes))
	copy(captured, it.scopes)
	fn := runtime.NewRegularFunction(f.Name, f.Params, f.Body, captured)
	val := runtime.NewFunctionValue(fn)
	if f.Name != "" {
		it.SetGlobal(f.Name, val)
	}
	return val
}

// evalCall implements spec §4.3 "Call": a field-access callee binds
// its evaluated object as `this`; anything else binds the global
// object.
func (it *Interpreter) evalCall(c *ast.Call) (*runtime.Value, outcome) {
	var this *runtime.Value
	var callee *runtime.Value

	switch calleeExpr := c.Callee.(type) {
	case *ast.GetField:
		obj, out := it.eval(calleeExpr.Object)
		if out != outNormal {
			return obj, out
		}
		this = obj
		callee = obj.GetField(calleeExpr.Name)
	case *ast.GetIndex:
		obj, out := it.eval(calleeExpr.Object)
		if out != outNormal {
			return obj, out
		}
		idx, out := it.eval(calleeExpr.Index)
		if out != outNormal {
			return idx, out
		}
		this = obj
		callee = obj.GetField(runtime.ToString(idx))
	default:
		this = it.global
		value, out := it.eval(c.Callee)
		if out != outNormal {
			return value, out
		}
		callee = value
	}

	args, signal, out := it.evalArgs(c.Args)
	if out != outNormal {
		return signal, out
	}

	if callee.Kind != runtime.KindFunction || callee.Fn == nil {
		return runtime.Undefined(), outThrow
	}
	value, thrown := it.CallFunction(callee.Fn, this, args)
	if thrown != nil {
		return thrown, outThrow
	}
	return value, outNormal
}

// evalArgs evaluates an argument list left to right (spec §4.3
// "Call"). On a non-Normal outcome mid-list, signal carries the
// interrupting value and args is the partial list evaluated so far.
func (it *Interpreter) evalArgs(exprs []ast.Expr) (args []*runtime.Value, signal *runtime.Value, out outcome) {
	args = make([]*runtime.Value, 0, len(exprs))
	for _, a := range exprs {
		v, out := it.eval(a)
		if out != outNormal {
			return args, v, out
		}
		args = append(args, v)
	}
	return args, nil, outNormal
}

// CallFunction implements the regular-/native-call protocol of spec
// §4.1 "Function record": native callables run directly; regular
// callables push a fresh scope onto the function's captured chain,
// bind parameters and `this`, evaluate the body, and convert a
// `Returned` signal back to `Normal` on the way out (spec §4.3
// "Control-flow signals").
func (it *Interpreter) CallFunction(fn *runtime.Function, this *runtime.Value, args []*runtime.Value) (*runtime.Value, *runtime.Value) {
	if fn.Kind == runtime.NativeFunc {
		result, thrown := fn.Native(this, args)
		return result, thrown
	}

	scope := runtime.NewScope()
	for i, name := range fn.Params {
		var v *runtime.Value
		if i < len(args) {
			v = args[i]
		} else {
			v = runtime.Undefined()
		}
		scope.Define(name, v, true)
	}
	scope.Define("this", this, false)

	savedScopes := it.scopes
	it.scopes = append(append([]*runtime.Scope{}, fn.Captured...), scope)
	value, out := it.eval(fn.Body)
	it.scopes = savedScopes

	if out == outThrow {
		return nil, value
	}
	return value, nil
}

// evalConstruct implements spec §4.3 "Construct": a fresh Object
// linked to callee.prototype, called as `this`, discarding the call's
// normal return.
func (it *Interpreter) evalConstruct(c *ast.Construct) (*runtime.Value, outcome) {
	callee, out := it.eval(c.Callee)
	if out != outNormal {
		return callee, out
	}
	args, signal, out := it.evalArgs(c.Args)
	if out != outNormal {
		return signal, out
	}
	if callee.Kind != runtime.KindFunction || callee.Fn == nil {
		return runtime.Undefined(), outNormal
	}

	instance := runtime.NewObject()
	if proto := callee.GetField("prototype"); proto.IsObject() {
		instance.SetProto(proto.Obj)
	}
	this := runtime.NewObjectValue(instance)

	_, thrown := it.CallFunction(callee.Fn, this, args)
	if thrown != nil {
		return thrown, outThrow
	}
	return this, outNormal
}

func (it *Interpreter) evalNumOp(n *ast.NumOp) (*runtime.Value, outcome) {
	a, out := it.eval(n.Left)
	if out != outNormal {
		return a, out
	}
	b, out := it.eval(n.Right)
	if out != outNormal {
		return b, out
	}
	switch n.Op {
	case "+":
		return runtime.Add(a, b), outNormal
	case "-":
		return runtime.Sub(a, b), outNormal
	case "*":
		return runtime.Mul(a, b), outNormal
	case "/":
		return runtime.Div(a, b), outNormal
	case "%":
		return runtime.Mod(a, b), outNormal
	case "&":
		return runtime.BitAnd(a, b), outNormal
	case "|":
		return runtime.BitOr(a, b), outNormal
	case "^":
		return runtime.BitXor(a, b), outNormal
	default:
		return runtime.Undefined(), outNormal
	}
}

func (it *Interpreter) evalShift(s *ast.Shift) (*runtime.Value, outcome) {
	a, out := it.eval(s.Left)
	if out != outNormal {
		return a, out
	}
	b, out := it.eval(s.Right)
	if out != outNormal {
		return b, out
	}
	if s.Op == "<<" {
		return runtime.Shl(a, b), outNormal
	}
	return runtime.Shr(a, b), outNormal
}

func (it *Interpreter) evalCompare(c *ast.Compare) (*runtime.Value, outcome) {
	a, out := it.eval(c.Left)
	if out != outNormal {
		return a, out
	}
	b, out := it.eval(c.Right)
	if out != outNormal {
		return b, out
	}
	switch c.Op {
	case "==":
		return runtime.NewBool(runtime.Equals(a, b)), outNormal
	case "!=":
		return runtime.NewBool(!runtime.Equals(a, b)), outNormal
	default:
		return runtime.Compare(c.Op, a, b), outNormal
	}
}

// evalLogical implements the supplemented `&&`/`||` (SPEC_FULL §4)
// with short-circuit evaluation: the right operand only runs when
// needed, which is why this lives in the evaluator rather than as an
// eager runtime.Value function like the arithmetic operators.
func (it *Interpreter) evalLogical(l *ast.Logical) (*runtime.Value, outcome) {
	left, out := it.eval(l.Left)
	if out != outNormal {
		return left, out
	}
	if l.Op == "&&" {
		if !runtime.IsTrue(left) {
			return left, outNormal
		}
		return it.eval(l.Right)
	}
	if runtime.IsTrue(left) {
		return left, outNormal
	}
	return it.eval(l.Right)
}

// evalAssign implements spec §4.3 "Assign": a Local target sets the
// nearest scope binding that already holds the name, falling back to
// a global write; a field/index target evaluates its object and calls
// set_field; any other target silently no-ops.
func (it *Interpreter) evalAssign(a *ast.Assign) (*runtime.Value, outcome) {
	value, out := it.eval(a.Value)
	if out != outNormal {
		return value, out
	}

	switch target := a.Target.(type) {
	case *ast.Local:
		for i := len(it.scopes) - 1; i >= 0; i-- {
			found, err := it.scopes[i].Set(target.Name, value)
			if err != nil {
				return runtime.NewString(err.Error()), outThrow
			}
			if found {
				return value, outNormal
			}
		}
		it.SetGlobal(target.Name, value)
	case *ast.GetField:
		obj, out := it.eval(target.Object)
		if out != outNormal {
			return obj, out
		}
		obj.SetField(target.Name, value)
	case *ast.GetIndex:
		obj, out := it.eval(target.Object)
		if out != outNormal {
			return obj, out
		}
		idx, out := it.eval(target.Index)
		if out != outNormal {
			return idx, out
		}
		obj.SetField(runtime.ToString(idx), value)
	}
	return value, outNormal
}
