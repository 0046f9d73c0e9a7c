package e2e

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccordionOpenClose(t *testing.T) {
	view := openPage(t)

	first := view.Accordion("Collapsible Group Item #1")
	second := view.Accordion("Collapsible Group Item #2")

	opened, err := first.IsOpened()
	require.NoError(t, err)
	assert.True(t, opened)

	opened, err = second.IsOpened()
	require.NoError(t, err)
	assert.False(t, opened)

	require.NoError(t, second.Open())
	opened, err = second.IsOpened()
	require.NoError(t, err)
	assert.True(t, opened)

	content, err := second.Content()
	require.NoError(t, err)
	assert.Equal(t, "Second panel body", content)

	require.NoError(t, second.Close())
	opened, err = second.IsOpened()
	require.NoError(t, err)
	assert.False(t, opened)

	// Opening an already open panel is a no-op
	require.NoError(t, first.Open())
}

func TestAccordionOpenRetriesClick(t *testing.T) {
	view := openPage(t)

	// This panel swallows the first header click; Open has to click again.
	third := view.Accordion("Collapsible Group Item #3")

	opened, err := third.IsOpened()
	require.NoError(t, err)
	assert.False(t, opened)

	require.NoError(t, third.Open())

	opened, err = third.IsOpened()
	require.NoError(t, err)
	assert.True(t, opened)

	content, err := third.Content()
	require.NoError(t, err)
	assert.Equal(t, "Third panel body", content)
}
