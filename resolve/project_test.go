package resolve_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stellabot/stella/resolve"
)

func TestProject(t *testing.T) {
	newYork, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	endpoint := func(tp resolve.TimePoint) *resolve.TimePoint { return &tp }

	testCases := []struct {
		name     string
		item     resolve.RemoteItem
		expected resolve.DisplayRecord
	}{
		{
			name: "timed event in its own zone",
			item: resolve.RemoteItem{
				ID:       "evt-1",
				Title:    "Dentist",
				Start:    resolve.InstantPoint(time.Date(2026, 1, 8, 14, 30, 0, 0, newYork)),
				End:      endpoint(resolve.InstantPoint(time.Date(2026, 1, 8, 15, 0, 0, 0, newYork))),
				Location: "42 Main St",
				Link:     "https://calendar.example/evt-1",
			},
			expected: resolve.DisplayRecord{
				Title:        "Dentist",
				StartDisplay: "Thu, Jan 8 2026 2:30 PM EST",
				EndDisplay:   "Thu, Jan 8 2026 3:00 PM EST",
				Location:     "42 Main St",
				Link:         "https://calendar.example/evt-1",
			},
		},
		{
			name: "item zone wins over process zone",
			item: resolve.RemoteItem{
				ID:    "evt-2",
				Title: "Standup",
				Start: resolve.InstantPoint(time.Date(2026, 1, 9, 9, 0, 0, 0, tokyo)),
			},
			expected: resolve.DisplayRecord{
				Title:        "Standup",
				StartDisplay: "Fri, Jan 9 2026 9:00 AM JST",
			},
		},
		{
			name: "whole-day item uses the all day marker for both ends",
			item: resolve.RemoteItem{
				ID:    "evt-3",
				Title: "Company holiday",
				Start: resolve.DayPoint("2026-01-08"),
				End:   endpoint(resolve.DayPoint("2026-01-09")),
			},
			expected: resolve.DisplayRecord{
				Title:        "Company holiday",
				StartDisplay: resolve.AllDayMarker,
				EndDisplay:   resolve.AllDayMarker,
			},
		},
		{
			name: "whole-day start overrides a stray timed end",
			item: resolve.RemoteItem{
				ID:    "evt-4",
				Title: "Offsite",
				Start: resolve.DayPoint("2026-01-08"),
				End:   endpoint(resolve.InstantPoint(time.Date(2026, 1, 8, 17, 0, 0, 0, newYork))),
			},
			expected: resolve.DisplayRecord{
				Title:        "Offsite",
				StartDisplay: resolve.AllDayMarker,
				EndDisplay:   resolve.AllDayMarker,
			},
		},
		{
			name: "missing title gets a placeholder",
			item: resolve.RemoteItem{
				ID:    "msg-1",
				Start: resolve.InstantPoint(time.Date(2026, 1, 8, 0, 5, 0, 0, time.UTC)),
			},
			expected: resolve.DisplayRecord{
				Title:        "(no title)",
				StartDisplay: "Thu, Jan 8 2026 12:05 AM UTC",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, resolve.Project(tc.item))
		})
	}
}

func TestProjectIsPure(t *testing.T) {
	item := resolve.RemoteItem{
		ID:    "evt-1",
		Title: "Dentist",
		Start: resolve.DayPoint("2026-01-08"),
	}

	first := resolve.Project(item)
	second := resolve.Project(item)

	assert.Equal(t, first, second)
}
