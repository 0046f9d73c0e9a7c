package e2e

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatePickerReadWrite(t *testing.T) {
	view := openPage(t)

	picker := view.DatePickerByName("date_readwrite")

	displayed, err := picker.IsDisplayed()
	require.NoError(t, err)
	assert.True(t, displayed)

	readOnly, err := picker.IsReadOnly()
	require.NoError(t, err)
	assert.False(t, readOnly)

	date, err := picker.Read()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2017, time.April, 21, 0, 0, 0, 0, time.UTC), date)

	want := time.Date(2019, time.December, 4, 0, 0, 0, 0, time.UTC)
	require.NoError(t, picker.Fill(want))

	date, err = picker.Read()
	require.NoError(t, err)
	assert.Equal(t, want, date)
}

func TestDatePickerReadOnly(t *testing.T) {
	view := openPage(t)

	picker := view.DatePickerByID("date_readonly")

	readOnly, err := picker.IsReadOnly()
	require.NoError(t, err)
	assert.True(t, readOnly)

	date, err := picker.Read()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2018, time.January, 15, 0, 0, 0, 0, time.UTC), date)

	// A read-only picker is driven through the panel, here paging one
	// decade forward.
	want := time.Date(2025, time.March, 9, 0, 0, 0, 0, time.UTC)
	require.NoError(t, picker.Fill(want))

	date, err = picker.Read()
	require.NoError(t, err)
	assert.Equal(t, want, date)
}
