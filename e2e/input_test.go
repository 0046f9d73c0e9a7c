package e2e

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputFill(t *testing.T) {
	view := openPage(t)

	input := view.InputByName("fill_with_text")

	displayed, err := input.IsDisplayed()
	require.NoError(t, err)
	assert.True(t, displayed)

	require.NoError(t, input.Fill("some text"))
	value, err := input.Value()
	require.NoError(t, err)
	assert.Equal(t, "some text", value)

	require.NoError(t, input.Clear())
	value, err = input.Value()
	require.NoError(t, err)
	assert.Equal(t, "", value)

	readOnly, err := input.IsReadOnly()
	require.NoError(t, err)
	assert.False(t, readOnly)
}

func TestInputHelpBlock(t *testing.T) {
	view := openPage(t)

	help, err := view.InputByID("input1").HelpBlock()
	require.NoError(t, err)
	assert.Equal(t, "help block message", help)

	// The first input has no warning sibling
	warning, err := view.InputByID("input1").Warning()
	require.NoError(t, err)
	assert.Equal(t, "", warning)

	warning, err = view.InputByName("input_with_warning").Warning()
	require.NoError(t, err)
	assert.Equal(t, "warning message", warning)
}
