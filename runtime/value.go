// Package runtime implements the value and object model: the Value sum
// type, prototype-chain objects, lexical scopes, and function records.
package runtime

import "github.com/go-jsgo/jsgo/ast"

// Kind tags the variant a Value carries.
type Kind int

const (
	KindNull Kind = iota
	KindUndefined
	KindBoolean
	KindNumber
	KindInteger
	KindString
	KindObject
	KindFunction
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindUndefined:
		return "undefined"
	case KindBoolean:
		return "boolean"
	case KindNumber:
		return "number"
	case KindInteger:
		return "integer"
	case KindString:
		return "string"
	case KindObject:
		return "object"
	case KindFunction:
		return "function"
	default:
		return "unknown"
	}
}

// Value is the runtime's tagged sum type (spec §3). Only the fields
// relevant to Kind are meaningful.
type Value struct {
	Kind Kind
	Bool bool
	Num  float64
	Int  int32
	Str  string
	Obj  *Object
	Fn   *Function
}

var (
	nullValue      = &Value{Kind: KindNull}
	undefinedValue = &Value{Kind: KindUndefined}
	trueValue      = &Value{Kind: KindBoolean, Bool: true}
	falseValue     = &Value{Kind: KindBoolean, Bool: false}
)

// Null returns the singleton Null value.
func Null() *Value { return nullValue }

// Undefined returns the singleton Undefined value.
func Undefined() *Value { return undefinedValue }

// NewBool lifts a host bool to a Value, per to_value (spec §4.1).
func NewBool(b bool) *Value {
	if b {
		return trueValue
	}
	return falseValue
}

// NewNumber lifts a host float64 to a Number Value.
func NewNumber(n float64) *Value { return &Value{Kind: KindNumber, Num: n} }

// NewInteger lifts a host int32 to an Integer Value (bitwise results).
func NewInteger(i int32) *Value { return &Value{Kind: KindInteger, Int: i} }

// NewString lifts a host string to a Value.
func NewString(s string) *Value { return &Value{Kind: KindString, Str: s} }

// NewObjectValue wraps an Object in a Value.
func NewObjectValue(o *Object) *Value { return &Value{Kind: KindObject, Obj: o} }

// NewFunctionValue wraps a Function record in a Value.
func NewFunctionValue(f *Function) *Value { return &Value{Kind: KindFunction, Fn: f} }

// IsObject reports whether v carries an Object payload.
func (v *Value) IsObject() bool { return v.Kind == KindObject && v.Obj != nil }

// GetField implements get_field (spec §4.1): Undefined on a non-object,
// else the nearest prototype-chain binding or Undefined. A Function
// value exposes only its "prototype" slot this way — the object new
// instances link their __proto__ to (spec §3/§4.3 Construct) — since
// Function values carry no Fields map of their own.
func (v *Value) GetField(key string) *Value {
	if v.Kind == KindFunction && v.Fn != nil {
		if key == "prototype" {
			return NewObjectValue(v.Fn.Prototype)
		}
		return Undefined()
	}
	if !v.IsObject() {
		return Undefined()
	}
	return v.Obj.GetField(key)
}

// SetField implements set_field (spec §4.1): always writes the local
// slot of an object; a no-op on anything else, including a Function
// value's own slots (only its prototype object, reached via GetField,
// is mutable).
func (v *Value) SetField(key string, val *Value) *Value {
	if !v.IsObject() {
		return val
	}
	return v.Obj.SetField(key, val)
}

// Object is an ordered-by-insertion-irrelevant mapping from string keys
// to Values with a __proto__ slot (spec §3's ObjectData).
type Object struct {
	Fields map[string]*Value
}

// NewObject constructs an empty ObjectData with no prototype set.
func NewObject() *Object {
	return &Object{Fields: make(map[string]*Value)}
}

const protoKey = "__proto__"

// GetField walks the prototype chain iteratively, guarding against
// cycles with a visited set (spec §9).
func (o *Object) GetField(key string) *Value {
	visited := make(map[*Object]bool)
	cur := o
	for cur != nil {
		if visited[cur] {
			return Undefined()
		}
		visited[cur] = true
		if v, ok := cur.Fields[key]; ok {
			return v
		}
		proto, ok := cur.Fields[protoKey]
		if !ok || !proto.IsObject() {
			return Undefined()
		}
		cur = proto.Obj
	}
	return Undefined()
}

// SetField always writes the local slot, creating it if absent, and
// returns the written value (spec §4.1).
func (o *Object) SetField(key string, v *Value) *Value {
	o.Fields[key] = v
	return v
}

// HasOwn reports whether key is bound directly on o, not via prototype.
func (o *Object) HasOwn(key string) bool {
	_, ok := o.Fields[key]
	return ok
}

// SetProto sets the __proto__ slot to proto's Object, or clears it when
// proto is nil.
func (o *Object) SetProto(proto *Object) {
	if proto == nil {
		delete(o.Fields, protoKey)
		return
	}
	o.Fields[protoKey] = NewObjectValue(proto)
}

// FuncKind distinguishes a regular (user-defined) function record from
// a native (host-implemented) one (spec §4.1).
type FuncKind int

const (
	RegularFunc FuncKind = iota
	NativeFunc
)

// NativeCall is the Go signature for a host-implemented callable: given
// the receiver and arguments, it returns either a result value or a
// thrown value (never both).
type NativeCall func(this *Value, args []*Value) (result *Value, thrown *Value)

// Function is the shared, mutable function record referenced by a
// Function Value (spec §4.1). A regular function carries its parameter
// names, body expression, and the scope chain captured at declaration
// time; a native function carries a host callback instead.
type Function struct {
	Kind FuncKind
	Name string

	// RegularFunc fields.
	Params   []string
	Body     ast.Expr
	Captured []*Scope

	// NativeFunc fields.
	Native NativeCall

	// Prototype is the object new_target's constructed instances link
	// their __proto__ to ("callee.prototype", spec §3/§4.3 Construct).
	Prototype *Object
}

// NewRegularFunction builds a user-defined Function record, capturing a
// snapshot of the scope stack active at declaration time (spec §9
// "Closures and scope chains").
func NewRegularFunction(name string, params []string, body ast.Expr, captured []*Scope) *Function {
	proto := NewObject()
	return &Function{
		Kind:      RegularFunc,
		Name:      name,
		Params:    params,
		Body:      body,
		Captured:  captured,
		Prototype: proto,
	}
}

// NewNativeFunction builds a host-implemented Function record.
func NewNativeFunction(name string, fn NativeCall) *Function {
	proto := NewObject()
	return &Function{
		Kind:      NativeFunc,
		Name:      name,
		Native:    fn,
		Prototype: proto,
	}
}
