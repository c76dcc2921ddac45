package google

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// CalendarService represents the interface for interacting with Google Calendar API
type CalendarService interface {
	ListEvents(ctx context.Context, calendarID, query string, timeMin, timeMax time.Time, maxResults int64) ([]*calendar.Event, error)
	InsertEvent(ctx context.Context, calendarID string, event *calendar.Event) (*calendar.Event, error)
	PatchEvent(ctx context.Context, calendarID, eventID string, patch *calendar.Event) (*calendar.Event, error)
	DeleteEvent(ctx context.Context, calendarID, eventID string) error
}

// CalendarServiceImpl implements the calendar service interface for Google Calendar API
type CalendarServiceImpl struct {
	service *calendar.Service
	logger  *zap.Logger
}

// NewCalendarService creates a new Google Calendar service
func NewCalendarService(ctx context.Context, logger *zap.Logger, opts ...option.ClientOption) (CalendarService, error) {
	svc, err := calendar.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("unable to create calendar service: %w", err)
	}
	return &CalendarServiceImpl{service: svc, logger: logger}, nil
}

// ListEvents retrieves events within the time range, recurring series
// expanded into concrete instances and ordered by start time. An empty
// query lists everything in the window.
func (g *CalendarServiceImpl) ListEvents(ctx context.Context, calendarID, query string, timeMin, timeMax time.Time, maxResults int64) ([]*calendar.Event, error) {
	g.logger.Debug("listing events",
		zap.String("component", "google-calendar-service"),
		zap.String("operation", "list-events"),
		zap.String("calendarID", calendarID),
		zap.String("query", query),
		zap.String("timeMinRFC3339", timeMin.Format(time.RFC3339)),
		zap.String("timeMaxRFC3339", timeMax.Format(time.RFC3339)),
		zap.Int64("maxResults", maxResults))

	call := g.service.Events.List(calendarID).
		TimeMin(timeMin.Format(time.RFC3339)).
		TimeMax(timeMax.Format(time.RFC3339)).
		OrderBy("startTime").
		SingleEvents(true).
		MaxResults(maxResults).
		Context(ctx)
	if query != "" {
		call = call.Q(query)
	}

	events, err := call.Do()
	if err != nil {
		g.logger.Error("failed to retrieve events from google calendar api",
			zap.String("component", "google-calendar-service"),
			zap.String("operation", "list-events"),
			zap.String("calendarID", calendarID),
			zap.Error(err))
		return nil, fmt.Errorf("unable to retrieve events: %w", err)
	}

	g.logger.Info("successfully retrieved events",
		zap.String("component", "google-calendar-service"),
		zap.String("operation", "list-events"),
		zap.String("calendarID", calendarID),
		zap.Int("eventCount", len(events.Items)))

	return events.Items, nil
}

// InsertEvent creates a new event in the calendar
func (g *CalendarServiceImpl) InsertEvent(ctx context.Context, calendarID string, event *calendar.Event) (*calendar.Event, error) {
	g.logger.Debug("creating event",
		zap.String("component", "google-calendar-service"),
		zap.String("operation", "insert-event"),
		zap.String("calendarID", calendarID),
		zap.String("eventSummary", event.Summary))

	created, err := g.service.Events.Insert(calendarID, event).Context(ctx).Do()
	if err != nil {
		g.logger.Error("failed to create event in google calendar api",
			zap.String("component", "google-calendar-service"),
			zap.String("operation", "insert-event"),
			zap.String("calendarID", calendarID),
			zap.String("eventSummary", event.Summary),
			zap.Error(err))
		return nil, fmt.Errorf("unable to create event: %w", err)
	}

	g.logger.Info("successfully created event",
		zap.String("component", "google-calendar-service"),
		zap.String("operation", "insert-event"),
		zap.String("calendarID", calendarID),
		zap.String("eventID", created.Id),
		zap.String("eventSummary", created.Summary))

	return created, nil
}

// PatchEvent applies a partial update to an existing event. Only the fields
// present in patch are changed.
func (g *CalendarServiceImpl) PatchEvent(ctx context.Context, calendarID, eventID string, patch *calendar.Event) (*calendar.Event, error) {
	g.logger.Debug("patching event",
		zap.String("component", "google-calendar-service"),
		zap.String("operation", "patch-event"),
		zap.String("calendarID", calendarID),
		zap.String("eventID", eventID))

	updated, err := g.service.Events.Patch(calendarID, eventID, patch).Context(ctx).Do()
	if err != nil {
		g.logger.Error("failed to patch event in google calendar api",
			zap.String("component", "google-calendar-service"),
			zap.String("operation", "patch-event"),
			zap.String("calendarID", calendarID),
			zap.String("eventID", eventID),
			zap.Error(err))
		return nil, fmt.Errorf("unable to patch event: %w", err)
	}

	g.logger.Info("successfully patched event",
		zap.String("component", "google-calendar-service"),
		zap.String("operation", "patch-event"),
		zap.String("calendarID", calendarID),
		zap.String("eventID", updated.Id),
		zap.String("eventSummary", updated.Summary))

	return updated, nil
}

// DeleteEvent removes an event from the calendar
func (g *CalendarServiceImpl) DeleteEvent(ctx context.Context, calendarID, eventID string) error {
	g.logger.Debug("deleting event",
		zap.String("component", "google-calendar-service"),
		zap.String("operation", "delete-event"),
		zap.String("calendarID", calendarID),
		zap.String("eventID", eventID))

	err := g.service.Events.Delete(calendarID, eventID).Context(ctx).Do()
	if err != nil {
		g.logger.Error("failed to delete event from google calendar api",
			zap.String("component", "google-calendar-service"),
			zap.String("operation", "delete-event"),
			zap.String("calendarID", calendarID),
			zap.String("eventID", eventID),
			zap.Error(err))
		return fmt.Errorf("unable to delete event: %w", err)
	}

	g.logger.Info("successfully deleted event",
		zap.String("component", "google-calendar-service"),
		zap.String("operation", "delete-event"),
		zap.String("calendarID", calendarID),
		zap.String("eventID", eventID))

	return nil
}
