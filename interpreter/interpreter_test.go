package interpreter

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-jsgo/jsgo/parser"
	"github.com/go-jsgo/jsgo/runtime"
)

func evalSource(t *testing.T, source string) (*runtime.Value, error) {
	t.Helper()
	p, err := parser.New(source)
	require.NoError(t, err)
	program, err := p.ParseProgram()
	require.NoError(t, err)
	return New().Eval(program)
}

func evalExpect(t *testing.T, source string) *runtime.Value {
	t.Helper()
	v, err := evalSource(t, source)
	require.NoError(t, err, "Eval error for %q", source)
	return v
}

func TestEvalArithmetic(t *testing.T) {
	assert.Equal(t, 7.0, evalExpect(t, "3 + 4;").Num)
	assert.Equal(t, 1.0, evalExpect(t, "7 % 3;").Num)
	assert.Equal(t, 6.0, evalExpect(t, "2 * 3;").Num)
}

func TestEvalVarAssignAndLookup(t *testing.T) {
	v := evalExpect(t, "var x = 10; x + 5;")
	assert.Equal(t, 15.0, v.Num)
}

func TestEvalFunctionCallAndReturn(t *testing.T) {
	v := evalExpect(t, `
		function square(n) { return n * n; }
		square(6);
	`)
	assert.Equal(t, 36.0, v.Num)
}

func TestEvalClosureCapturesDeclarationScope(t *testing.T) {
	v := evalExpect(t, `
		function makeAdder(x) {
			return function(y) { return x + y; };
		}
		var add5 = makeAdder(5);
		add5(3);
	`)
	assert.Equal(t, 8.0, v.Num)
}

func TestEvalThisBoundOnMethodCall(t *testing.T) {
	v := evalExpect(t, `
		var obj = { value: 42, get: function() { return this.value; } };
		obj.get();
	`)
	assert.Equal(t, 42.0, v.Num)
}

func TestEvalConstructBuildsInstanceLinkedToPrototype(t *testing.T) {
	v := evalExpect(t, `
		function Point(x, y) { this.x = x; this.y = y; }
		Point.prototype.sum = function() { return this.x + this.y; };
		var p = new Point(2, 3);
		p.sum();
	`)
	assert.Equal(t, 5.0, v.Num)
}

func TestEvalAssignToThisThrows(t *testing.T) {
	_, err := evalSource(t, `
		function f() { this = 1; }
		f();
	`)
	require.Error(t, err)
	thrownErr, ok := err.(*ThrownError)
	require.True(t, ok)
	assert.Contains(t, thrownErr.Value.Str, "Assignment to constant variable")
}

func TestEvalWhileLoop(t *testing.T) {
	v := evalExpect(t, `
		var i = 0;
		var total = 0;
		while (i < 5) { total = total + i; i = i + 1; }
		total;
	`)
	assert.Equal(t, 10.0, v.Num)
}

func TestEvalIfElse(t *testing.T) {
	assert.Equal(t, "yes", evalExpect(t, `if (1 < 2) { "yes"; } else { "no"; }`).Str)
	assert.Equal(t, "no", evalExpect(t, `if (2 < 1) { "yes"; } else { "no"; }`).Str)
}

func TestEvalSwitchFirstMatchingCaseWins(t *testing.T) {
	v := evalExpect(t, `
		var x = 2;
		switch (x) {
			case 1: "one";
			case 2: "two";
			default: "other";
		}
	`)
	assert.Equal(t, "two", v.Str)
}

func TestEvalThrowSurfacesAsError(t *testing.T) {
	_, err := evalSource(t, `throw "boom";`)
	require.Error(t, err)
	thrownErr, ok := err.(*ThrownError)
	require.True(t, ok)
	assert.Equal(t, "boom", thrownErr.Value.Str)
}

func TestEvalUncaughtThrowInsideFunctionPropagatesToTopLevel(t *testing.T) {
	_, err := evalSource(t, `
		function fail() { throw "nope"; }
		fail();
	`)
	require.Error(t, err)
}

func TestEvalLogicalShortCircuit(t *testing.T) {
	assert.Equal(t, true, evalExpect(t, "true || (1/0 == 1/0);").Bool)
	assert.Equal(t, false, evalExpect(t, "false && undefined.x;").Bool)
}

func TestEvalFieldAccessOnNullIsUndefinedNotThrow(t *testing.T) {
	v := evalExpect(t, "null.missing;")
	assert.Equal(t, runtime.KindUndefined, v.Kind)
}

func TestEvalDivisionByZeroIsIEEE754(t *testing.T) {
	assert.True(t, math.IsInf(evalExpect(t, "1 / 0;").Num, 1))
	assert.True(t, math.IsNaN(evalExpect(t, "0 / 0;").Num))
}

func TestEvalArrayLiteralUsesLengthConvention(t *testing.T) {
	v := evalExpect(t, "[10, 20, 30];")
	assert.Equal(t, 3.0, v.GetField("length").Num)
	assert.Equal(t, 20.0, v.GetField("1").Num)
}

func TestEvalArrowFunctionDesugarsLikeFunctionDecl(t *testing.T) {
	v := evalExpect(t, "var f = (a, b) => a + b; f(2, 3);")
	assert.Equal(t, 5.0, v.Num)
}

func TestEvalConsoleLogReturnsUndefined(t *testing.T) {
	v := evalExpect(t, `console.log("hi");`)
	assert.Equal(t, runtime.KindUndefined, v.Kind)
}

func TestEvalMathAndJSONBuiltinsAreReachable(t *testing.T) {
	assert.Equal(t, 4.0, evalExpect(t, "Math.sqrt(16);").Num)
	assert.Equal(t, "1", evalExpect(t, `JSON.stringify(1);`).Str)
}

func TestEvalArrayForEachInvokesCallbackThroughInterpreter(t *testing.T) {
	v := evalExpect(t, `
		var total = 0;
		[1, 2, 3].forEach(function(n) { total = total + n; });
		total;
	`)
	assert.Equal(t, 6.0, v.Num)
}
