package runtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScopeSetOverwritesMutableBinding(t *testing.T) {
	s := NewScope()
	s.Define("x", NewNumber(1), true)
	found, err := s.Set("x", NewNumber(2))
	require.NoError(t, err)
	assert.True(t, found)
	v, _ := s.Get("x")
	assert.Equal(t, 2.0, v.Num)
}

func TestScopeSetRejectsImmutableBinding(t *testing.T) {
	s := NewScope()
	s.Define("this", NewNumber(1), false)
	found, err := s.Set("this", NewNumber(2))
	assert.True(t, found)
	require.Error(t, err)
	v, _ := s.Get("this")
	assert.Equal(t, 1.0, v.Num, "rejected assignment must not write through")
}

func TestScopeSetReportsNotFoundForUnknownName(t *testing.T) {
	s := NewScope()
	found, err := s.Set("missing", NewNumber(1))
	require.NoError(t, err)
	assert.False(t, found)
}
