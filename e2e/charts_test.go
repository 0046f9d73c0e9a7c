package e2e

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSparkLineChartDisplayed(t *testing.T) {
	view := openPage(t)

	chart := view.SparkLineChart("sparklineChart")

	displayed, err := chart.IsDisplayed()
	require.NoError(t, err)
	assert.True(t, displayed)
}

func TestLineChartLegends(t *testing.T) {
	view := openPage(t)

	chart := view.LineChart("lineChart")

	legends, err := chart.Legends()
	require.NoError(t, err)
	assert.Equal(t, []string{"data1", "data2", "data3"}, legends)

	displayed, err := chart.LegendIsDisplayed("data1")
	require.NoError(t, err)
	assert.True(t, displayed)

	displayed, err = chart.LegendIsDisplayed("data3")
	require.NoError(t, err)
	assert.False(t, displayed, "data3 starts hidden")

	displayed, err = chart.LegendIsDisplayed("data9")
	require.NoError(t, err)
	assert.False(t, displayed, "unknown legends read as not displayed")
}

func TestLineChartLegendToggles(t *testing.T) {
	view := openPage(t)

	chart := view.LineChart("lineChart")

	require.NoError(t, chart.DisplayAllLegends())
	for _, name := range []string{"data1", "data2", "data3"} {
		displayed, err := chart.LegendIsDisplayed(name)
		require.NoError(t, err)
		assert.True(t, displayed, name)
	}

	require.NoError(t, chart.HideLegends("data2"))
	displayed, err := chart.LegendIsDisplayed("data2")
	require.NoError(t, err)
	assert.False(t, displayed)

	require.NoError(t, chart.HideAllLegends())
	displayed, err = chart.LegendIsDisplayed("data1")
	require.NoError(t, err)
	assert.False(t, displayed)

	require.NoError(t, chart.DisplayLegends("data1", "data3"))
	displayed, err = chart.LegendIsDisplayed("data1")
	require.NoError(t, err)
	assert.True(t, displayed)
	displayed, err = chart.LegendIsDisplayed("data2")
	require.NoError(t, err)
	assert.False(t, displayed)
}
