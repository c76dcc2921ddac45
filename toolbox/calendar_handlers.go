package toolbox

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	zap "go.uber.org/zap"
	calendar "google.golang.org/api/calendar/v3"

	google "github.com/stellabot/stella/google"
	resolve "github.com/stellabot/stella/resolve"
	window "github.com/stellabot/stella/window"
)

func (t *AssistantTools) calendarID(args map[string]interface{}) string {
	if id := stringArg(args, "calendar_id"); id != "" {
		return id
	}
	return t.config.Google.CalendarID
}

func (t *AssistantTools) timezone(args map[string]interface{}) string {
	if tz := stringArg(args, "timezone"); tz != "" {
		return tz
	}
	return t.config.Google.TimeZone
}

// resolveEvent maps the (event_id | query+start_date+end_date) argument
// combination to a resolution against the requested calendar.
func (t *AssistantTools) resolveEvent(ctx context.Context, args map[string]interface{}) (resolve.Resolution, error) {
	eventID := stringArg(args, "event_id")
	query := stringArg(args, "query")

	var w *window.Window
	startDate := stringArg(args, "start_date")
	endDate := stringArg(args, "end_date")
	if startDate != "" && endDate != "" {
		parsed, err := window.Range(startDate, endDate, t.timezone(args))
		if err != nil {
			return resolve.Resolution{}, err
		}
		w = &parsed
	}

	querier := google.NewEventQuerier(t.calSvc, t.calendarID(args))
	return resolve.Resolve(ctx, querier, eventID, query, w)
}

// handleCreateEvent handles the create event tool call
func (t *AssistantTools) handleCreateEvent(ctx context.Context, args map[string]interface{}) (string, error) {
	t.logger.Info("Tool called: create_event", zap.Any("args", args))

	name := stringArg(args, "event_name")
	if name == "" {
		return "", fmt.Errorf("event_name is required")
	}

	start, err := t.eventDateTime(args, "start")
	if err != nil {
		return "", err
	}
	end, err := t.eventDateTime(args, "end")
	if err != nil {
		return "", err
	}

	event := &calendar.Event{
		Summary:     name,
		Start:       start,
		End:         end,
		Location:    stringArg(args, "location"),
		Description: stringArg(args, "description"),
	}
	for _, email := range stringSliceArg(args, "attendees") {
		event.Attendees = append(event.Attendees, &calendar.EventAttendee{Email: email})
	}

	calendarID := t.calendarID(args)
	result := resolve.Apply(ctx, resolve.OpCreate, resolve.Resolution{State: resolve.StateResolved}, func(ctx context.Context, _ string) (*resolve.RemoteItem, error) {
		created, err := t.calSvc.InsertEvent(ctx, calendarID, event)
		if err != nil {
			return nil, err
		}
		item := google.EventItem(created)
		return &item, nil
	})

	return marshalResponse(mutationResponse(result, fmt.Sprintf("Event %q created", name)))
}

// eventDateTime decodes a start/end argument into the Calendar shape. A
// timed point without an explicit zone inherits the request timezone.
func (t *AssistantTools) eventDateTime(args map[string]interface{}, key string) (*calendar.EventDateTime, error) {
	raw := mapArg(args, key)
	if raw == nil {
		return nil, fmt.Errorf("%s is required and must be an object", key)
	}

	edt := &calendar.EventDateTime{}
	if date, ok := raw["date"].(string); ok && date != "" {
		edt.Date = date
		return edt, nil
	}

	dateTime, ok := raw["dateTime"].(string)
	if !ok || dateTime == "" {
		return nil, fmt.Errorf("%s must carry either a date or a dateTime", key)
	}
	edt.DateTime = dateTime

	if tz, ok := raw["timeZone"].(string); ok && tz != "" {
		edt.TimeZone = tz
	} else {
		edt.TimeZone = t.timezone(args)
	}
	return edt, nil
}

// handleListEventsForDay handles the single-day listing tool call
func (t *AssistantTools) handleListEventsForDay(ctx context.Context, args map[string]interface{}) (string, error) {
	t.logger.Info("Tool called: list_events_for_day", zap.Any("args", args))

	dateStr := stringArg(args, "date_str")
	if dateStr == "" {
		return "", fmt.Errorf("date_str is required")
	}

	w, err := window.Day(dateStr, t.timezone(args))
	if err != nil {
		return "", err
	}

	events, err := t.calSvc.ListEvents(ctx, t.calendarID(args), "", w.Start, w.End, int64Arg(args, "max_results", 50))
	if err != nil {
		return "", fmt.Errorf("failed to list events: %w", err)
	}

	items := make([]resolve.RemoteItem, 0, len(events))
	for _, ev := range events {
		items = append(items, google.EventItem(ev))
	}

	return marshalResponse(ListEventsResponse{
		Success:  true,
		Date:     dateStr,
		Count:    len(items),
		Events:   eventResults(items),
		Message:  fmt.Sprintf("Found %d events on %s", len(items), dateStr),
		Timezone: w.Zone.String(),
	})
}

// handleListEventsBetween handles the date-range listing tool call
func (t *AssistantTools) handleListEventsBetween(ctx context.Context, args map[string]interface{}) (string, error) {
	t.logger.Info("Tool called: list_events_between", zap.Any("args", args))

	startDate := stringArg(args, "start_date")
	endDate := stringArg(args, "end_date")
	if startDate == "" || endDate == "" {
		return "", fmt.Errorf("start_date and end_date are required")
	}

	w, err := window.Range(startDate, endDate, t.timezone(args))
	if err != nil {
		return "", err
	}

	events, err := t.calSvc.ListEvents(ctx, t.calendarID(args), "", w.Start, w.End, int64Arg(args, "max_results", 50))
	if err != nil {
		return "", fmt.Errorf("failed to list events: %w", err)
	}

	items := make([]resolve.RemoteItem, 0, len(events))
	for _, ev := range events {
		items = append(items, google.EventItem(ev))
	}

	return marshalResponse(ListEventsResponse{
		Success: true,
		Range:   &DateRange{StartDate: startDate, EndDate: endDate, Timezone: w.Zone.String()},
		Count:   len(items),
		Events:  eventResults(items),
		Message: fmt.Sprintf("Found %d events between %s and %s", len(items), startDate, endDate),
	})
}

// handleFindEvents handles the free-text search tool call
func (t *AssistantTools) handleFindEvents(ctx context.Context, args map[string]interface{}) (string, error) {
	t.logger.Info("Tool called: find_events", zap.Any("args", args))

	query := stringArg(args, "query")
	startDate := stringArg(args, "start_date")
	endDate := stringArg(args, "end_date")
	if query == "" || startDate == "" || endDate == "" {
		return "", fmt.Errorf("query, start_date and end_date are required")
	}

	w, err := window.Range(startDate, endDate, t.timezone(args))
	if err != nil {
		return "", err
	}

	events, err := t.calSvc.ListEvents(ctx, t.calendarID(args), query, w.Start, w.End, int64Arg(args, "max_results", 25))
	if err != nil {
		return "", fmt.Errorf("failed to find events: %w", err)
	}

	items := make([]resolve.RemoteItem, 0, len(events))
	for _, ev := range events {
		items = append(items, google.EventItem(ev))
	}

	return marshalResponse(ListEventsResponse{
		Success: true,
		Query:   query,
		Range:   &DateRange{StartDate: startDate, EndDate: endDate, Timezone: w.Zone.String()},
		Count:   len(items),
		Events:  eventResults(items),
		Message: fmt.Sprintf("Found %d events matching %q between %s and %s", len(items), query, startDate, endDate),
	})
}

// handleUpdateEvent handles the update event tool call
func (t *AssistantTools) handleUpdateEvent(ctx context.Context, args map[string]interface{}) (string, error) {
	t.logger.Info("Tool called: update_event", zap.Any("args", args))

	patchArg := mapArg(args, "patch")
	if len(patchArg) == 0 {
		return "", fmt.Errorf("patch is required and must be a non-empty object")
	}
	patch, err := decodeEventPatch(patchArg)
	if err != nil {
		return "", err
	}

	res, err := t.resolveEvent(ctx, args)
	if err != nil {
		return "", err
	}

	calendarID := t.calendarID(args)
	result := resolve.Apply(ctx, resolve.OpPatch, res, func(ctx context.Context, targetID string) (*resolve.RemoteItem, error) {
		updated, err := t.calSvc.PatchEvent(ctx, calendarID, targetID, patch)
		if err != nil {
			return nil, err
		}
		item := google.EventItem(updated)
		return &item, nil
	})

	return marshalResponse(mutationResponse(result, "Event updated"))
}

// decodeEventPatch converts the free-form patch argument into the Calendar
// event shape, rejecting fields the API does not know.
func decodeEventPatch(patch map[string]interface{}) (*calendar.Event, error) {
	raw, err := json.Marshal(patch)
	if err != nil {
		return nil, fmt.Errorf("invalid patch: %w", err)
	}
	var event calendar.Event
	if err := json.Unmarshal(raw, &event); err != nil {
		return nil, fmt.Errorf("invalid patch: %w", err)
	}
	return &event, nil
}

// handleDeleteEvent handles the delete event tool call
func (t *AssistantTools) handleDeleteEvent(ctx context.Context, args map[string]interface{}) (string, error) {
	t.logger.Info("Tool called: delete_event", zap.Any("args", args))

	res, err := t.resolveEvent(ctx, args)
	if err != nil {
		return "", err
	}

	calendarID := t.calendarID(args)
	result := resolve.Apply(ctx, resolve.OpDelete, res, func(ctx context.Context, targetID string) (*resolve.RemoteItem, error) {
		return nil, t.calSvc.DeleteEvent(ctx, calendarID, targetID)
	})

	return marshalResponse(mutationResponse(result, "Event deleted"))
}

// handleGetCurrentDatetime handles the clock tool call
func (t *AssistantTools) handleGetCurrentDatetime(ctx context.Context, args map[string]interface{}) (string, error) {
	tz := stringArg(args, "tz")
	if tz == "" {
		tz = t.config.Google.TimeZone
	}

	loc, err := time.LoadLocation(tz)
	if err != nil {
		return "", fmt.Errorf("unknown timezone %q: %w", tz, err)
	}

	now := time.Now().In(loc)
	return marshalResponse(map[string]interface{}{
		"success":  true,
		"datetime": now.Format(time.RFC3339),
		"timezone": loc.String(),
		"weekday":  now.Weekday().String(),
	})
}
