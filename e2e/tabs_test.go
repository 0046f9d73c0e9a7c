package e2e

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTabSelect(t *testing.T) {
	view := openPage(t)

	tabOne := view.Tab("Tab One")
	tabTwo := view.Tab("Tab Two")

	active, err := tabOne.IsActive()
	require.NoError(t, err)
	assert.True(t, active)

	active, err = tabTwo.IsActive()
	require.NoError(t, err)
	assert.False(t, active)

	require.NoError(t, tabTwo.Select())

	active, err = tabTwo.IsActive()
	require.NoError(t, err)
	assert.True(t, active)

	active, err = tabOne.IsActive()
	require.NoError(t, err)
	assert.False(t, active)

	// Selecting an already active tab is a no-op
	require.NoError(t, tabTwo.Select())
}

func TestTabDisabled(t *testing.T) {
	view := openPage(t)

	tab := view.Tab("Tab Disabled")

	disabled, err := tab.IsDisabled()
	require.NoError(t, err)
	assert.True(t, disabled)

	// Clicking a disabled tab does not activate it
	require.NoError(t, tab.Click())
	active, err := tab.IsActive()
	require.NoError(t, err)
	assert.False(t, active)

	require.Error(t, tab.Select())
}

func TestTabWithDropdown(t *testing.T) {
	view := openPage(t)

	tab := view.TabWithDropdown("More")

	displayed, err := tab.IsDisplayed()
	require.NoError(t, err)
	assert.True(t, displayed)

	isDropdown, err := tab.IsDropdown()
	require.NoError(t, err)
	assert.True(t, isDropdown)

	require.NoError(t, tab.Open())
	open, err := tab.IsOpen()
	require.NoError(t, err)
	assert.True(t, open)

	require.NoError(t, tab.Close())
	open, err = tab.IsOpen()
	require.NoError(t, err)
	assert.False(t, open)

	require.NoError(t, tab.SelectItem("Sub Tab A"))

	err = tab.SelectItem("Sub Tab Z")
	require.Error(t, err)
}
