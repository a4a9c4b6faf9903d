package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNameScope(t *testing.T) {
	s := NewNameScope()
	assert.Equal(t, "_foo0_", s.Generate("f", "foo", "_", "_"))
	assert.Equal(t, "_foo1_", s.Generate("f", "foo", "_", "_"))
	assert.Equal(t, "_foo2_", s.Generate("f", "foo", "_", "_"))
}

func TestNameScopeKeysOnTagAndBase(t *testing.T) {
	s := NewNameScope()
	assert.Equal(t, "_foo0_", s.Generate("f", "foo", "_", "_"))
	assert.Equal(t, "_bar0_", s.Generate("f", "bar", "_", "_"))
	assert.Equal(t, "foo0", s.Generate("typedef", "foo", "", ""))
	assert.Equal(t, "_foo1_", s.Generate("f", "foo", "_", "_"))
}

func TestNameScopeDecoration(t *testing.T) {
	s := NewNameScope()
	assert.Equal(t, "loop_i0_end", s.Generate("f", "loop_i", "", "_end"))
	assert.Equal(t, "prefix_x0", s.Generate("f", "x", "prefix_", ""))
}

func TestFreshScopesAreIndependent(t *testing.T) {
	a := NewNameScope()
	b := NewNameScope()
	assert.Equal(t, "_foo0_", a.Generate("f", "foo", "_", "_"))
	assert.Equal(t, "_foo0_", b.Generate("f", "foo", "_", "_"))
}
