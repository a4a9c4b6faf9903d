package lang

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/merrows/stencil"
)

func TestNewContext(t *testing.T) {
	tests := []struct {
		name      string
		target    string
		extension string
		wantErr   error
	}{
		{"neither target nor extension", "", "", stencil.ErrConfig},
		{"unknown target", "klingon", "", stencil.ErrUnknownLanguage},
		{"unknown target with extension", "klingon", ".k", stencil.ErrUnknownLanguage},
		{"target only", "c", "", nil},
		{"extension only", "", ".json", nil},
		{"target and extension", "c", ".hh", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, err := NewContext(tt.target, tt.extension)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr))
				assert.Nil(t, ctx)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, ctx)
		})
	}
}

func TestContextExtension(t *testing.T) {
	t.Run("target default", func(t *testing.T) {
		ctx, err := NewContext("c", "")
		require.NoError(t, err)
		assert.Equal(t, ".h", ctx.Extension())
	})
	t.Run("explicit extension wins", func(t *testing.T) {
		ctx, err := NewContext("c", ".hh")
		require.NoError(t, err)
		assert.Equal(t, ".hh", ctx.Extension())
	})
	t.Run("extension only", func(t *testing.T) {
		ctx, err := NewContext("", ".json")
		require.NoError(t, err)
		assert.Equal(t, ".json", ctx.Extension())
		assert.Nil(t, ctx.Target())
	})
}

func TestContextID(t *testing.T) {
	t.Run("strops for the target", func(t *testing.T) {
		ctx, err := NewContext("c", "")
		require.NoError(t, err)
		assert.Equal(t, "if_", ctx.ID("if"))
		assert.Equal(t, "ZX0026because", ctx.ID("&because"))
	})
	t.Run("passthrough without a target", func(t *testing.T) {
		ctx, err := NewContext("", ".json")
		require.NoError(t, err)
		assert.Equal(t, "if", ctx.ID("if"))
		assert.Equal(t, "&because", ctx.ID("&because"))
	})
}

func TestContextIDFor(t *testing.T) {
	ctx, err := NewContext("c", "")
	require.NoError(t, err)

	got, err := ctx.IDFor("py", "class")
	require.NoError(t, err)
	assert.Equal(t, "class_", got)

	_, err = ctx.IDFor("klingon", "class")
	assert.True(t, errors.Is(err, stencil.ErrUnknownLanguage))
}

func TestContextLanguage(t *testing.T) {
	ctx, err := NewContext("", ".json")
	require.NoError(t, err)

	l, err := ctx.Language("go")
	require.NoError(t, err)
	assert.Equal(t, "go", l.Name())

	_, err = ctx.Language("klingon")
	assert.True(t, errors.Is(err, stencil.ErrUnknownLanguage))
}
