package meta_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eovim/apigen/internal/codegen/meta"
	"github.com/eovim/apigen/internal/codegen/registry"
	"github.com/eovim/apigen/internal/codegen/schema"
	"github.com/eovim/apigen/internal/codegen/tables"
	"github.com/eovim/apigen/internal/codegen/transform"
)

func TestNew(t *testing.T) {
	reg := registry.New()
	in := &schema.Model{
		Functions: []schema.Function{{Name: "get_mode", VoidParameters: true, ReturnType: "Dictionary"}},
		Events:    []schema.Event{{Name: "bell"}},
	}
	res, err := transform.Apply(reg, in, transform.DefaultOptions())
	require.NoError(t, err)

	md := meta.New(reg, res.Model, tables.Build(reg))
	require.Len(t, md.Functions, 1)
	require.Len(t, md.Events, 1)
	assert.Len(t, md.Types, reg.Len())
	assert.Len(t, md.Encoders, reg.Len())
	assert.Equal(t, registry.Symbol("pack_dictionary"), md.Encoders["Dictionary"])
	assert.True(t, md.Decoders["Dictionary"].IsNone())
}
