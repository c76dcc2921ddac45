package google

import (
	"context"
	"fmt"
	"net/mail"
	"time"

	calendar "google.golang.org/api/calendar/v3"
	gmail "google.golang.org/api/gmail/v1"

	"github.com/stellabot/stella/resolve"
	"github.com/stellabot/stella/window"
)

// EventQuerier adapts the calendar service to the resolver's item-fetching
// strategy.
type EventQuerier struct {
	svc        CalendarService
	calendarID string
}

// NewEventQuerier creates a querier over one calendar
func NewEventQuerier(svc CalendarService, calendarID string) *EventQuerier {
	return &EventQuerier{svc: svc, calendarID: calendarID}
}

// Query lists events matching the free text inside the window. Ordering is
// the remote service's, ascending by start.
func (q *EventQuerier) Query(ctx context.Context, freeText string, w window.Window, max int64) ([]resolve.RemoteItem, error) {
	events, err := q.svc.ListEvents(ctx, q.calendarID, freeText, w.Start, w.End, max)
	if err != nil {
		return nil, err
	}

	items := make([]resolve.RemoteItem, 0, len(events))
	for _, ev := range events {
		items = append(items, EventItem(ev))
	}
	return items, nil
}

// EventItem converts a calendar event into the uniform item shape. All-day
// events carry a date, timed events an RFC 3339 instant in the event's own
// zone.
func EventItem(ev *calendar.Event) resolve.RemoteItem {
	item := resolve.RemoteItem{
		ID:       ev.Id,
		Title:    ev.Summary,
		Location: ev.Location,
		Link:     ev.HtmlLink,
	}

	item.Start = eventTimePoint(ev.Start)
	if ev.End != nil {
		end := eventTimePoint(ev.End)
		item.End = &end
	}

	return item
}

func eventTimePoint(edt *calendar.EventDateTime) resolve.TimePoint {
	if edt == nil {
		return resolve.TimePoint{}
	}
	if edt.Date != "" {
		return resolve.DayPoint(edt.Date)
	}
	t, err := time.Parse(time.RFC3339, edt.DateTime)
	if err != nil {
		return resolve.TimePoint{}
	}
	return resolve.InstantPoint(t)
}

// MessageQuerier adapts the Gmail service to the resolver's item-fetching
// strategy. The window becomes after:/before: epoch terms appended to the
// free-text query, and each listed id is hydrated with metadata so
// candidates carry a subject and date.
type MessageQuerier struct {
	svc GmailService
}

// NewMessageQuerier creates a querier over the authorized mailbox
func NewMessageQuerier(svc GmailService) *MessageQuerier {
	return &MessageQuerier{svc: svc}
}

// Query lists messages matching the free text inside the window
func (q *MessageQuerier) Query(ctx context.Context, freeText string, w window.Window, max int64) ([]resolve.RemoteItem, error) {
	query := fmt.Sprintf("%s after:%d before:%d", freeText, w.Start.Unix(), w.End.Unix())

	resp, err := q.svc.ListMessages(ctx, query, nil, max)
	if err != nil {
		return nil, err
	}

	items := make([]resolve.RemoteItem, 0, len(resp.Messages))
	for _, ref := range resp.Messages {
		msg, err := q.svc.GetMessage(ctx, ref.Id, "metadata")
		if err != nil {
			return nil, fmt.Errorf("hydrating message %s: %w", ref.Id, err)
		}
		items = append(items, MessageItem(msg))
	}
	return items, nil
}

// MessageItem converts a Gmail message into the uniform item shape. The
// start instant comes from the Date header when parseable, else from the
// internal receive time.
func MessageItem(msg *gmail.Message) resolve.RemoteItem {
	headers := HeaderMap(msg.Payload)

	title := headers["subject"]

	var start resolve.TimePoint
	if date, err := mail.ParseDate(headers["date"]); err == nil {
		start = resolve.InstantPoint(date)
	} else if msg.InternalDate > 0 {
		start = resolve.InstantPoint(time.UnixMilli(msg.InternalDate).UTC())
	}

	return resolve.RemoteItem{
		ID:    msg.Id,
		Title: title,
		Start: start,
		Link:  messageLink(msg.Id),
	}
}

func messageLink(id string) string {
	return "https://mail.google.com/mail/u/0/#all/" + id
}
