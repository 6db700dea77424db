package builtins

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-jsgo/jsgo/runtime"
)

func mathField(t *testing.T, name string) *runtime.Value {
	t.Helper()
	m := newMath()
	v := m.GetField(name)
	require.NotEqual(t, runtime.KindUndefined, v.Kind, "Math.%s is undefined", name)
	return v
}

func TestMathConstants(t *testing.T) {
	assert.Equal(t, math.Pi, mathField(t, "PI").Num)
	assert.Equal(t, math.E, mathField(t, "E").Num)
}

func TestMathAbs(t *testing.T) {
	result, _ := mathUnary(math.Abs)(nil, []*runtime.Value{runtime.NewNumber(-5)})
	assert.Equal(t, 5.0, result.Num)
}

func TestMathFloorCeilRound(t *testing.T) {
	floor, _ := mathUnary(math.Floor)(nil, []*runtime.Value{runtime.NewNumber(4.7)})
	assert.Equal(t, 4.0, floor.Num)
	ceil, _ := mathUnary(math.Ceil)(nil, []*runtime.Value{runtime.NewNumber(4.1)})
	assert.Equal(t, 5.0, ceil.Num)
	round, _ := mathUnary(math.Round)(nil, []*runtime.Value{runtime.NewNumber(4.5)})
	assert.Equal(t, 5.0, round.Num)
}

func TestMathMaxMin(t *testing.T) {
	max, _ := mathMax(nil, []*runtime.Value{runtime.NewNumber(1), runtime.NewNumber(5), runtime.NewNumber(3)})
	assert.Equal(t, 5.0, max.Num)
	min, _ := mathMin(nil, []*runtime.Value{runtime.NewNumber(1), runtime.NewNumber(5), runtime.NewNumber(3)})
	assert.Equal(t, 1.0, min.Num)
}

func TestMathPow(t *testing.T) {
	result, _ := mathPow(nil, []*runtime.Value{runtime.NewNumber(2), runtime.NewNumber(10)})
	assert.Equal(t, 1024.0, result.Num)
}

func TestMathSignNaN(t *testing.T) {
	result, _ := mathSign(nil, []*runtime.Value{runtime.NewString("not a number")})
	assert.True(t, math.IsNaN(result.Num))
}
