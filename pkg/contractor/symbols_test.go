package contractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSymbolGeneratorSequence(t *testing.T) {
	gen := NewSymbolGenerator("t")
	assert.Equal(t, "t1", gen.Next())
	assert.Equal(t, "t2", gen.Next())
	assert.Equal(t, "t3", gen.Next())
	assert.Equal(t, 3, gen.Count())
}

func TestSymbolGeneratorDefaultPrefix(t *testing.T) {
	gen := NewSymbolGenerator("")
	assert.Equal(t, "t1", gen.Next())
}

func TestSymbolGeneratorCustomPrefix(t *testing.T) {
	gen := NewSymbolGenerator("tmp_")
	assert.Equal(t, "tmp_1", gen.Next())
	assert.Equal(t, "tmp_2", gen.Next())
}

func TestSymbolGeneratorUniqueness(t *testing.T) {
	gen := NewSymbolGenerator("t")
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		name := gen.Next()
		assert.False(t, seen[name], "duplicate name %s", name)
		seen[name] = true
	}
}

func TestSymbolGeneratorsAreIndependent(t *testing.T) {
	a := NewSymbolGenerator("t")
	b := NewSymbolGenerator("t")
	assert.Equal(t, "t1", a.Next())
	assert.Equal(t, "t1", b.Next())
	assert.Equal(t, "t2", a.Next())
}
