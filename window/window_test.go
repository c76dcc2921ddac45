package window_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stellabot/stella/window"
)

func TestDay(t *testing.T) {
	testCases := []struct {
		name          string
		date          string
		timezone      string
		expectedStart string
		expectedEnd   string
		expectedHours float64
		expectError   error
	}{
		{
			name:          "regular winter day in New York",
			date:          "2026-01-08",
			timezone:      "America/New_York",
			expectedStart: "2026-01-08T00:00:00-05:00",
			expectedEnd:   "2026-01-09T00:00:00-05:00",
			expectedHours: 24,
		},
		{
			name:          "spring forward day is 23 hours",
			date:          "2026-03-08",
			timezone:      "America/New_York",
			expectedStart: "2026-03-08T00:00:00-05:00",
			expectedEnd:   "2026-03-09T00:00:00-04:00",
			expectedHours: 23,
		},
		{
			name:          "fall back day is 25 hours",
			date:          "2026-11-01",
			timezone:      "America/New_York",
			expectedStart: "2026-11-01T00:00:00-04:00",
			expectedEnd:   "2026-11-02T00:00:00-05:00",
			expectedHours: 25,
		},
		{
			name:          "UTC day",
			date:          "2026-06-15",
			timezone:      "UTC",
			expectedStart: "2026-06-15T00:00:00Z",
			expectedEnd:   "2026-06-16T00:00:00Z",
			expectedHours: 24,
		},
		{
			name:        "malformed date",
			date:        "08-01-2026",
			timezone:    "UTC",
			expectError: window.ErrInvalidDate,
		},
		{
			name:        "empty date",
			date:        "",
			timezone:    "UTC",
			expectError: window.ErrInvalidDate,
		},
		{
			name:        "unknown timezone",
			date:        "2026-01-08",
			timezone:    "America/Gotham",
			expectError: window.ErrInvalidTimezone,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w, err := window.Day(tc.date, tc.timezone)

			if tc.expectError != nil {
				assert.ErrorIs(t, err, tc.expectError)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expectedStart, w.Start.Format(time.RFC3339))
			assert.Equal(t, tc.expectedEnd, w.End.Format(time.RFC3339))
			assert.Equal(t, tc.expectedHours, w.End.Sub(w.Start).Hours())
			assert.True(t, w.End.After(w.Start))
		})
	}
}

func TestDayDefaultsTimezone(t *testing.T) {
	w, err := window.Day("2026-01-08", "")
	require.NoError(t, err)
	assert.Equal(t, window.DefaultTimezone, w.Zone.String())
}

func TestRange(t *testing.T) {
	testCases := []struct {
		name          string
		startDate     string
		endDate       string
		timezone      string
		expectedStart string
		expectedEnd   string
		expectError   error
	}{
		{
			name:          "multi-day range includes the end date",
			startDate:     "2026-01-05",
			endDate:       "2026-01-08",
			timezone:      "America/New_York",
			expectedStart: "2026-01-05T00:00:00-05:00",
			expectedEnd:   "2026-01-09T00:00:00-05:00",
		},
		{
			name:          "single day range equals day window",
			startDate:     "2026-01-08",
			endDate:       "2026-01-08",
			timezone:      "America/New_York",
			expectedStart: "2026-01-08T00:00:00-05:00",
			expectedEnd:   "2026-01-09T00:00:00-05:00",
		},
		{
			name:          "range across month boundary",
			startDate:     "2026-01-30",
			endDate:       "2026-02-02",
			timezone:      "UTC",
			expectedStart: "2026-01-30T00:00:00Z",
			expectedEnd:   "2026-02-03T00:00:00Z",
		},
		{
			name:        "end before start",
			startDate:   "2026-01-08",
			endDate:     "2026-01-05",
			timezone:    "UTC",
			expectError: window.ErrInvalidDate,
		},
		{
			name:        "malformed end date",
			startDate:   "2026-01-05",
			endDate:     "next tuesday",
			timezone:    "UTC",
			expectError: window.ErrInvalidDate,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w, err := window.Range(tc.startDate, tc.endDate, tc.timezone)

			if tc.expectError != nil {
				assert.ErrorIs(t, err, tc.expectError)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expectedStart, w.Start.Format(time.RFC3339))
			assert.Equal(t, tc.expectedEnd, w.End.Format(time.RFC3339))
		})
	}
}

func TestRangeContainsEachDayWindow(t *testing.T) {
	dates := []string{"2026-03-06", "2026-03-07", "2026-03-08", "2026-03-09"}

	r, err := window.Range(dates[0], dates[len(dates)-1], "America/New_York")
	require.NoError(t, err)

	for _, d := range dates {
		day, err := window.Day(d, "America/New_York")
		require.NoError(t, err)

		assert.True(t, r.Contains(day.Start), "range should contain start of %s", d)
		assert.True(t, r.Contains(day.End.Add(-time.Second)), "range should contain last instant of %s", d)
	}

	after, err := window.Day("2026-03-10", "America/New_York")
	require.NoError(t, err)
	assert.False(t, r.Contains(after.Start))
}

func TestWindowContains(t *testing.T) {
	w, err := window.Day("2026-01-08", "UTC")
	require.NoError(t, err)

	assert.True(t, w.Contains(w.Start))
	assert.False(t, w.Contains(w.End), "end is exclusive")
	assert.False(t, w.Contains(w.Start.Add(-time.Nanosecond)))
}
