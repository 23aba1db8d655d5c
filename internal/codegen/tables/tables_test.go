package tables_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/eovim/apigen/internal/codegen/registry"
	"github.com/eovim/apigen/internal/codegen/tables"
)

func TestBuildIsTotal(t *testing.T) {
	reg := registry.New()
	tbl := tables.Build(reg)

	assert.Len(t, tbl.Encoders, reg.Len())
	assert.Len(t, tbl.Decoders, reg.Len())
	assert.Len(t, tbl.Dispatchers, reg.Len())

	for _, b := range reg.Bindings() {
		enc, ok := tbl.Encoders[b.Name]
		assert.True(t, ok, "encoder table misses %s", b.Name)
		assert.Equal(t, b.Encode, enc)

		dec, ok := tbl.Decoders[b.Name]
		assert.True(t, ok, "decoder table misses %s", b.Name)
		assert.Equal(t, b.Decode, dec)

		dis, ok := tbl.Dispatchers[b.Name]
		assert.True(t, ok, "dispatch table misses %s", b.Name)
		assert.Equal(t, b.Dispatch, dis)
	}
}

func TestBuildKeepsNone(t *testing.T) {
	tbl := tables.Build(registry.New())

	assert.True(t, tbl.Encoders["void"].IsNone())
	assert.True(t, tbl.Decoders["void"].IsNone())
	assert.True(t, tbl.Decoders["Dictionary"].IsNone())
	assert.True(t, tbl.Dispatchers["Buffer"].IsNone())
	assert.Equal(t, registry.Symbol("_arg_bool_get"), tbl.Dispatchers["Boolean"])
}

func TestNamesSorted(t *testing.T) {
	names := tables.Build(registry.New()).Names()
	assert.True(t, sort.StringsAreSorted(names))
	assert.Contains(t, names, "ArrayOf(Integer, 2)")
}
