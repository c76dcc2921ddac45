package resolve

// AllDayMarker is the fixed display for whole-day items.
const AllDayMarker = "All day"

// untitledPlaceholder keeps downstream rendering non-degenerate when the
// remote item carries no title.
const untitledPlaceholder = "(no title)"

// DisplayRecord is the presentation-only projection of a RemoteItem.
type DisplayRecord struct {
	Title        string `json:"title"`
	StartDisplay string `json:"start_display"`
	EndDisplay   string `json:"end_display"`
	Location     string `json:"location,omitempty"`
	Link         string `json:"link,omitempty"`
}

// Project maps a RemoteItem to its display record. Whole-day items render
// the fixed all-day marker for both ends regardless of any time fields
// erroneously present. Timed items render a 12-hour clock in the item's own
// stated zone, not the process-local one.
func Project(item RemoteItem) DisplayRecord {
	title := item.Title
	if title == "" {
		title = untitledPlaceholder
	}

	record := DisplayRecord{
		Title:        title,
		StartDisplay: displayTime(item.Start),
		Location:     item.Location,
		Link:         item.Link,
	}

	if item.Start.AllDay {
		record.EndDisplay = AllDayMarker
		return record
	}

	if item.End != nil {
		record.EndDisplay = displayTime(*item.End)
	}

	return record
}

func displayTime(tp TimePoint) string {
	if tp.AllDay {
		return AllDayMarker
	}
	return tp.Time.Format("Mon, Jan 2 2006 3:04 PM MST")
}
