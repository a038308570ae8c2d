package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChatInput(t *testing.T) {
	in := NewChatInput(nil)

	require.NotNil(t, in)
	assert.Empty(t, in.Value())
}

func TestChatInput_SetValueAndReset(t *testing.T) {
	in := NewChatInput(nil)

	in.SetValue("starke Blutung")
	assert.Equal(t, "starke Blutung", in.Value())

	in.Reset()
	assert.Empty(t, in.Value())
}

func TestChatInput_SetWidthClampsMinimum(t *testing.T) {
	in := NewChatInput(nil)

	in.SetWidth(10)
	// Rendering still works at tiny widths.
	assert.NotEmpty(t, in.View())
}

func TestChatInput_ViewContainsValue(t *testing.T) {
	in := NewChatInput(nil)
	in.SetValue("hello")

	assert.Contains(t, in.View(), "hello")
}
