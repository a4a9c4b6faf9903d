package stencil

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigError(t *testing.T) {
	err := NewConfigError("TargetLanguage", "klingon", "no such language")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConfig))
	assert.True(t, IsConfigError(err))
	assert.Contains(t, err.Error(), "TargetLanguage")
	assert.Contains(t, err.Error(), "klingon")
	assert.Contains(t, err.Error(), "no such language")

	wrapped := fmt.Errorf("loading config: %w", err)
	assert.True(t, errors.Is(wrapped, ErrConfig))
	assert.True(t, IsConfigError(wrapped))
	assert.False(t, IsStructureError(wrapped))
}

func TestConfigErrorWithoutValue(t *testing.T) {
	err := NewConfigError("Root", nil, "a namespace tree is required")
	assert.NotContains(t, err.Error(), "value:")
	assert.Contains(t, err.Error(), "Root")
}

func TestStructureError(t *testing.T) {
	err := NewStructureError("uavcan.node.Heartbeat", "out/uavcan/node/Heartbeat_1_0.h", "output path collides")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrStructure))
	assert.True(t, IsStructureError(err))
	assert.False(t, IsConfigError(err))
	assert.Contains(t, err.Error(), "uavcan.node.Heartbeat")
	assert.Contains(t, err.Error(), "Heartbeat_1_0.h")
}

func TestGenerationError(t *testing.T) {
	cause := errors.New("template: composite.tmpl: bad range")
	err := NewGenerationError("uavcan.node.Heartbeat_1_0", "render", "template execution failed", cause)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrGeneration))
	assert.True(t, IsGenerationError(err))
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, cause, errors.Unwrap(err))
	assert.Contains(t, err.Error(), "uavcan.node.Heartbeat_1_0")
	assert.Contains(t, err.Error(), "render")
	assert.Contains(t, err.Error(), cause.Error())
}

func TestGenerationErrorCarriesSentinelCause(t *testing.T) {
	err := NewGenerationError("demo.Foo_1_0", "commit", "out/demo/Foo_1_0.h", ErrOverwrite)
	assert.True(t, errors.Is(err, ErrGeneration))
	assert.True(t, errors.Is(err, ErrOverwrite))
}

func TestSentinelsAreDistinct(t *testing.T) {
	sentinels := []error{ErrConfig, ErrStructure, ErrGeneration, ErrOverwrite, ErrUnknownLanguage}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i == j {
				continue
			}
			assert.False(t, errors.Is(a, b))
		}
	}
}
