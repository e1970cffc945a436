package daterange

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForDays(t *testing.T) {
	start := time.Date(2020, time.November, 5, 9, 30, 0, 0, time.UTC)

	dr, err := ForDays(start, 5)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2020, time.November, 10, 9, 30, 0, 0, time.UTC), dr.End)
	assert.Equal(t, 5, dr.Days())

	_, err = ForDays(start, 0)
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestForDaysAcrossDST(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	start := time.Date(2021, time.March, 13, 10, 0, 0, 0, loc)

	dr, err := ForDays(start, 1)
	require.NoError(t, err)
	assert.Equal(t, 10, dr.End.Hour())
	assert.Equal(t, 1, dr.Days())
	assert.Equal(t, 23*time.Hour, dr.End.Sub(dr.Start))
}

func TestNewRejectsEmptyRanges(t *testing.T) {
	base := time.Date(2021, time.January, 1, 0, 0, 0, 0, time.UTC)

	_, err := New(base, base)
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = New(time.Time{}, base)
	assert.ErrorIs(t, err, ErrInvalidRange)

	dr, err := New(base, base.AddDate(0, 1, 0))
	require.NoError(t, err)
	assert.Equal(t, 31, dr.Days())
}
