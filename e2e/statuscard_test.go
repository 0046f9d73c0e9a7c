package e2e

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redhatqe/patternfly-go/patternfly"
)

func TestAggregateStatusCardWithCountAndIcon(t *testing.T) {
	view := openPage(t)

	card := view.AggregateStatusCard("Ipsum", patternfly.WithActionTitle("Add Ipsum"))

	displayed, err := card.IsDisplayed()
	require.NoError(t, err)
	assert.True(t, displayed)

	info, err := card.Read()
	require.NoError(t, err)
	assert.Equal(t, patternfly.StatusCardInfo{
		Name:  "Ipsum",
		Count: 0,
		Icon:  patternfly.IconHome,
		Notifications: []patternfly.NotificationInfo{
			{Icon: patternfly.IconAdd, Text: ""},
		},
	}, info)

	require.NoError(t, card.ClickTitle())
	require.NoError(t, card.ClickBodyAction())
}

func TestAggregateStatusCardNotifications(t *testing.T) {
	view := openPage(t)

	card := view.AggregateStatusCard("Amet")

	count, err := card.Count()
	require.NoError(t, err)
	assert.Equal(t, 20, count)

	icon, err := card.Icon()
	require.NoError(t, err)
	assert.Equal(t, patternfly.IconNone, icon)

	notes, err := card.Notifications()
	require.NoError(t, err)
	require.Len(t, notes, 2)

	first, err := notes[0].Read()
	require.NoError(t, err)
	assert.Equal(t, patternfly.NotificationInfo{Icon: patternfly.IconError, Text: "4"}, first)

	second, err := notes[1].Read()
	require.NoError(t, err)
	assert.Equal(t, patternfly.NotificationInfo{Icon: patternfly.IconWarning, Text: "1"}, second)

	require.NoError(t, notes[0].Click())

	// No action title configured, so the body action is not clickable
	require.Error(t, card.ClickBodyAction())
}

func TestAggregateStatusMiniCard(t *testing.T) {
	view := openPage(t)

	card := view.AggregateStatusMiniCard("Adipiscing")

	displayed, err := card.IsDisplayed()
	require.NoError(t, err)
	assert.True(t, displayed)

	count, err := card.Count()
	require.NoError(t, err)
	assert.Equal(t, -1, count, "mini card shows no count")

	icon, err := card.Icon()
	require.NoError(t, err)
	assert.Equal(t, patternfly.IconHome, icon)

	notes, err := card.Notifications()
	require.NoError(t, err)
	require.Len(t, notes, 1)

	text, err := notes[0].Text()
	require.NoError(t, err)
	assert.Equal(t, "noclick", text)

	// A notification without an anchor cannot be clicked
	require.Error(t, notes[0].Click())
}
