package builtins

import (
	"sort"
	"strconv"
	"strings"

	mjson "github.com/mcvoid/json"

	"github.com/go-jsgo/jsgo/runtime"
)

// newJSONGlobal builds the `JSON` global. parse is grounded directly
// on github.com/mcvoid/json's Parse tree (ParseString plus its
// Type/As*/Index/Key walkers); stringify has no such counterpart to
// build against — the library exposes no public Value constructors,
// only a parser — so it stays a hand-rolled serializer in the
// teacher's stringifyValue style, walking runtime.Value the way the
// teacher's json.go walks its own Object/ArrayData.
func newJSONGlobal() *runtime.Value {
	j := runtime.NewObject()
	setMethod(j, "parse", jsonParse)
	setMethod(j, "stringify", jsonStringify)
	return runtime.NewObjectValue(j)
}

func jsonParse(_ *runtime.Value, args []*runtime.Value) (*runtime.Value, *runtime.Value) {
	text := runtime.ToString(arg(args, 0))
	parsed, err := mjson.ParseString(text)
	if err != nil {
		return nil, runtime.NewString("SyntaxError: " + err.Error())
	}
	return fromJSONValue(parsed), nil
}

func fromJSONValue(v *mjson.Value) *runtime.Value {
	switch v.Type() {
	case mjson.Null:
		return runtime.Null()
	case mjson.Boolean:
		b, _ := v.AsBoolean()
		return runtime.NewBool(b)
	case mjson.Integer:
		n, _ := v.AsInteger()
		return runtime.NewNumber(float64(n))
	case mjson.Number:
		n, _ := v.AsNumber()
		return runtime.NewNumber(n)
	case mjson.String:
		s, _ := v.AsString()
		return runtime.NewString(s)
	case mjson.Array:
		elems, _ := v.AsArray()
		out := make([]*runtime.Value, len(elems))
		for i, e := range elems {
			out[i] = fromJSONValue(e)
		}
		return newArray(out)
	case mjson.Object:
		fields, _ := v.AsObject()
		obj := runtime.NewObject()
		for k, e := range fields {
			obj.SetField(k, fromJSONValue(e))
		}
		return runtime.NewObjectValue(obj)
	default:
		return runtime.Undefined()
	}
}

func jsonStringify(_ *runtime.Value, args []*runtime.Value) (*runtime.Value, *runtime.Value) {
	val := arg(args, 0)
	indent := ""
	if len(args) > 2 {
		switch sp := args[2]; sp.Kind {
		case runtime.KindNumber, runtime.KindInteger:
			n := int(runtime.ToNumber(sp))
			if n > 10 {
				n = 10
			}
			if n > 0 {
				indent = strings.Repeat(" ", n)
			}
		case runtime.KindString:
			indent = sp.Str
			if len(indent) > 10 {
				indent = indent[:10]
			}
		}
	}
	result := stringifyValue(val, indent, "")
	if result == "" {
		return runtime.Undefined(), nil
	}
	return runtime.NewString(result), nil
}

func stringifyValue(val *runtime.Value, indent, currentIndent string) string {
	if val == nil || val.Kind == runtime.KindUndefined || val.Kind == runtime.KindFunction {
		return ""
	}
	switch val.Kind {
	case runtime.KindNull:
		return "null"
	case runtime.KindBoolean:
		if val.Bool {
			return "true"
		}
		return "false"
	case runtime.KindNumber, runtime.KindInteger:
		n := runtime.ToNumber(val)
		if n != n || n > 1e308 || n < -1e308 {
			return "null"
		}
		return runtime.ToString(val)
	case runtime.KindString:
		return strconv.Quote(val.Str)
	case runtime.KindObject:
		if val.Obj.HasOwn("length") {
			return stringifyArray(val, indent, currentIndent)
		}
		return stringifyObject(val, indent, currentIndent)
	default:
		return ""
	}
}

func stringifyArray(val *runtime.Value, indent, currentIndent string) string {
	elems := arrayElements(val)
	if len(elems) == 0 {
		return "[]"
	}
	newIndent := currentIndent + indent
	parts := make([]string, len(elems))
	for i, v := range elems {
		s := stringifyValue(v, indent, newIndent)
		if s == "" {
			s = "null"
		}
		parts[i] = s
	}
	if indent == "" {
		return "[" + strings.Join(parts, ",") + "]"
	}
	return "[\n" + newIndent + strings.Join(parts, ",\n"+newIndent) + "\n" + currentIndent + "]"
}

func stringifyObject(val *runtime.Value, indent, currentIndent string) string {
	keys := ownKeys(val)
	sort.Strings(keys)
	newIndent := currentIndent + indent
	var parts []string
	for _, k := range keys {
		s := stringifyValue(val.GetField(k), indent, newIndent)
		if s == "" {
			continue
		}
		keyStr := strconv.Quote(k)
		if indent == "" {
			parts = append(parts, keyStr+":"+s)
		} else {
			parts = append(parts, keyStr+": "+s)
		}
	}
	if len(parts) == 0 {
		return "{}"
	}
	if indent == "" {
		return "{" + strings.Join(parts, ",") + "}"
	}
	return "{\n" + newIndent + strings.Join(parts, ",\n"+newIndent) + "\n" + currentIndent + "}"
}
