package resolve

import "time"

// TimePoint is either a whole-day calendar date or a timed instant carrying
// its own zone. AllDay selects which representation is populated.
type TimePoint struct {
	AllDay bool
	Date   string
	Time   time.Time
}

// DayPoint builds a whole-day time point for a YYYY-MM-DD date.
func DayPoint(date string) TimePoint {
	return TimePoint{AllDay: true, Date: date}
}

// InstantPoint builds a timed point. The instant keeps whatever zone the
// remote service stated for it.
func InstantPoint(t time.Time) TimePoint {
	return TimePoint{Time: t}
}

// RemoteItem is the uniform summary of a calendar event or mail message as
// returned by a list query. Constructed fresh at the adapter boundary and
// never cached across calls.
type RemoteItem struct {
	ID       string
	Title    string
	Start    TimePoint
	End      *TimePoint
	Location string
	Link     string
}
