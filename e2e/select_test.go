package e2e

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redhatqe/patternfly-go/patternfly"
)

func TestBootstrapSelect(t *testing.T) {
	view := openPage(t)

	sel := view.BootstrapSelect("lunch")

	displayed, err := sel.IsDisplayed()
	require.NoError(t, err)
	assert.True(t, displayed)

	selected, err := sel.SelectedOption()
	require.NoError(t, err)
	assert.Equal(t, "Ham", selected)

	options, err := sel.AllOptions()
	require.NoError(t, err)
	assert.Equal(t, []string{"Ham", "Eggs", "Steak", "Spam"}, options)

	multiple, err := sel.IsMultiple()
	require.NoError(t, err)
	assert.False(t, multiple)

	require.NoError(t, sel.SelectByVisibleText("Steak"))
	selected, err = sel.SelectedOption()
	require.NoError(t, err)
	assert.Equal(t, "Steak", selected)

	allSelected, err := sel.AllSelectedOptions()
	require.NoError(t, err)
	assert.Equal(t, []string{"Steak"}, allSelected)

	open, err := sel.IsOpen()
	require.NoError(t, err)
	assert.False(t, open, "menu should close after selection")

	require.NoError(t, sel.SelectByPartialText("Eg"))
	selected, err = sel.SelectedOption()
	require.NoError(t, err)
	assert.Equal(t, "Eggs", selected)

	changed, err := sel.Fill("Spam")
	require.NoError(t, err)
	assert.True(t, changed)
	changed, err = sel.Fill("Spam")
	require.NoError(t, err)
	assert.False(t, changed)

	// Several options on a single select is an error.
	require.Error(t, sel.SelectByVisibleText("Ham", "Eggs"))
}

func TestBootstrapSelectAddressing(t *testing.T) {
	view := openPage(t)

	byName := view.BootstrapSelectByName("lunch")
	options, err := byName.AllOptions()
	require.NoError(t, err)
	assert.Equal(t, []string{"Ham", "Eggs", "Steak", "Spam"}, options)

	byLocator := view.BootstrapSelectByLocator(`.//div[contains(@class, "bootstrap-select")][./select[@name="lunch"]]`)
	displayed, err := byLocator.IsDisplayed()
	require.NoError(t, err)
	assert.True(t, displayed)

	multiple, err := byLocator.IsMultiple()
	require.NoError(t, err)
	assert.False(t, multiple)
}

func TestBootstrapSelectUnknownOption(t *testing.T) {
	view := openPage(t)

	sel := view.BootstrapSelect("lunch")

	err := sel.SelectByVisibleText("Lobster")
	var notFound *patternfly.SelectItemNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Lobster", notFound.Item)
	assert.Equal(t, []string{"Ham", "Eggs", "Steak", "Spam"}, notFound.Options)
}
