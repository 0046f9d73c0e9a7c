package e2e

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemsList(t *testing.T) {
	view := openPage(t)

	list := view.ItemsList()

	displayed, err := list.IsDisplayed()
	require.NoError(t, err)
	assert.True(t, displayed)

	count, err := list.ItemCount()
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	items, err := list.Items()
	require.NoError(t, err)
	require.Len(t, items, 2)

	desc, err := items[0].Description()
	require.NoError(t, err)
	assert.Equal(t, "Event One", desc)

	desc, err = items[1].Description()
	require.NoError(t, err)
	assert.Equal(t, "Event Two", desc)
}

func TestItemsListExpand(t *testing.T) {
	view := openPage(t)

	item, err := view.ItemsList().ItemByDescription("Event Two")
	require.NoError(t, err)

	require.NoError(t, item.Open())
	text, err := item.Read()
	require.NoError(t, err)
	assert.Contains(t, text, "Details for event two")

	require.NoError(t, item.Close())

	_, err = view.ItemsList().ItemByDescription("Event Nine")
	require.Error(t, err)
}
