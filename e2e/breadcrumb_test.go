package e2e

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBreadCrumb(t *testing.T) {
	view := openPage(t)

	crumb := view.BreadCrumb()

	displayed, err := crumb.IsDisplayed()
	require.NoError(t, err)
	assert.True(t, displayed)

	locations, err := crumb.Locations()
	require.NoError(t, err)
	assert.Equal(t, []string{"Home", "Library", "Data"}, locations)

	active, err := crumb.ActiveLocation()
	require.NoError(t, err)
	assert.Equal(t, "Data", active)

	require.NoError(t, crumb.ClickLocation("Home"))
	require.Error(t, crumb.ClickLocation("Nowhere"))
}
