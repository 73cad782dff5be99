package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("07:30")
	require.NoError(t, err)
	assert.Equal(t, TimeString("07:30"), ts)

	_, err = NewTimeStringFromString("25:00")
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	_, err = NewTimeStringFromString("noon")
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_Minutes(t *testing.T) {
	ts, err := NewTimeStringFromString("10:45")
	require.NoError(t, err)
	assert.Equal(t, 645, ts.Minutes())
}

func TestTimeString_Ordering(t *testing.T) {
	open := TimeString("07:30")
	close := TimeString("19:00")

	assert.True(t, open.IsBefore(close))
	assert.False(t, close.IsBefore(open))
	assert.True(t, close.IsAfter(open))
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts := TimeString("18:30")

	next, err := ts.AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("19:00"), next)

	// Переход через полночь недопустим
	_, err = ts.AddMinutes(6 * 60)
	assert.ErrorIs(t, err, ErrTimeOverflowsDay)
}

func TestTimeString_OnDate(t *testing.T) {
	ts := TimeString("07:30")
	date := time.Date(2025, 6, 2, 15, 44, 59, 0, time.UTC)

	got := ts.OnDate(date)

	assert.Equal(t, time.Date(2025, 6, 2, 7, 30, 0, 0, time.UTC), got)
}
