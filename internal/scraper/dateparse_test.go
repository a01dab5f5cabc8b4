package scraper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate_ISOWithZulu(t *testing.T) {
	got := ParseDate("2024-03-15T10:00:00Z")

	require.NotNil(t, got)
	assert.Equal(t, time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC), got.UTC())
}

func TestParseDate_ISOWithOffset(t *testing.T) {
	got := ParseDate("2024-03-15T10:00:00+02:00")

	require.NotNil(t, got)
	assert.Equal(t, time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC), got.UTC())
}

func TestParseDate_DateOnlyFormats(t *testing.T) {
	cases := []struct {
		input string
		want  time.Time
	}{
		{"2024-03-15", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
		{"15-03-2024", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
		{"15.03.2024", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
	}

	for _, tc := range cases {
		got := ParseDate(tc.input)
		require.NotNil(t, got, "input %q", tc.input)
		assert.Equal(t, tc.want, got.UTC(), "input %q", tc.input)
	}
}

func TestParseDate_Garbage(t *testing.T) {
	assert.Nil(t, ParseDate("not-a-date"))
	assert.Nil(t, ParseDate(""))
	assert.Nil(t, ParseDate("   "))
	assert.Nil(t, ParseDate("32.13.2024"))
}

func TestParseDate_AcceptsImplausibleDates(t *testing.T) {
	// No plausibility validation: far-future dates pass through.
	got := ParseDate("3024-01-01")

	require.NotNil(t, got)
	assert.Equal(t, 3024, got.Year())
}

func TestParseDate_FirstFormatWins(t *testing.T) {
	// 2024-03-15 matches the ISO date layout before the day-first ones.
	got := ParseDate("2024-03-15")

	require.NotNil(t, got)
	assert.Equal(t, time.March, got.Month())
	assert.Equal(t, 15, got.Day())
}
