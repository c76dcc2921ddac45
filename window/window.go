package window

import (
	"errors"
	"fmt"
	"time"
)

// DefaultTimezone is the zone used when a caller omits one.
const DefaultTimezone = "America/New_York"

var (
	// ErrInvalidDate indicates a date string that is not a well-formed
	// YYYY-MM-DD calendar date, or a range whose end precedes its start.
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidTimezone indicates an unrecognized IANA zone identifier.
	ErrInvalidTimezone = errors.New("invalid timezone")
)

// Window is an absolute, half-open instant range [Start, End) anchored in an
// IANA timezone. End is always computed from calendar dates, never supplied
// directly.
type Window struct {
	Start time.Time
	End   time.Time
	Zone  *time.Location
}

// Day returns the window covering the single calendar date in the given
// timezone: local midnight of date up to local midnight of the following
// calendar day. The end is computed by date arithmetic so days spanning a
// DST transition keep their real 23h or 25h length.
func Day(date, timezone string) (Window, error) {
	return Range(date, date, timezone)
}

// Range returns the window covering startDate through endDate inclusive in
// the given timezone. The window end is local midnight of the day after
// endDate.
func Range(startDate, endDate, timezone string) (Window, error) {
	loc, err := loadZone(timezone)
	if err != nil {
		return Window{}, err
	}

	start, err := parseDate(startDate)
	if err != nil {
		return Window{}, err
	}
	end, err := parseDate(endDate)
	if err != nil {
		return Window{}, err
	}
	if end.Before(start) {
		return Window{}, fmt.Errorf("%w: end date %s before start date %s", ErrInvalidDate, endDate, startDate)
	}

	startInstant := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, loc)
	endInstant := time.Date(end.Year(), end.Month(), end.Day()+1, 0, 0, 0, 0, loc)

	return Window{Start: startInstant, End: endInstant, Zone: loc}, nil
}

// Contains reports whether the instant falls inside the window.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

func parseDate(s string) (time.Time, error) {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q is not a YYYY-MM-DD date", ErrInvalidDate, s)
	}
	return d, nil
}

func loadZone(name string) (*time.Location, error) {
	if name == "" {
		name = DefaultTimezone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTimezone, name)
	}
	return loc, nil
}
