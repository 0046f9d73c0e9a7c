package e2e

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBootstrapSwitch(t *testing.T) {
	view := openPage(t)

	sw := view.BootstrapSwitchByID("switch1")

	displayed, err := sw.IsDisplayed()
	require.NoError(t, err)
	assert.True(t, displayed)

	selected, err := sw.Selected()
	require.NoError(t, err)
	assert.True(t, selected)

	toggled, err := sw.Fill(false)
	require.NoError(t, err)
	assert.True(t, toggled)

	selected, err = sw.Selected()
	require.NoError(t, err)
	assert.False(t, selected)

	// Filling with the current state is a no-op
	toggled, err = sw.Fill(false)
	require.NoError(t, err)
	assert.False(t, toggled)

	// The same switch is addressable by input name
	byName := view.BootstrapSwitchByName("vm_power")
	toggled, err = byName.Fill(true)
	require.NoError(t, err)
	assert.True(t, toggled)

	selected, err = sw.Read()
	require.NoError(t, err)
	assert.True(t, selected)
}
