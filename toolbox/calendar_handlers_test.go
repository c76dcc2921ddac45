package toolbox

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	assert "github.com/stretchr/testify/assert"
	require "github.com/stretchr/testify/require"
	zaptest "go.uber.org/zap/zaptest"
	calendar "google.golang.org/api/calendar/v3"
	googleapi "google.golang.org/api/googleapi"

	config "github.com/stellabot/stella/config"
	mocks "github.com/stellabot/stella/google/mocks"
)

func newTestTools(t *testing.T) (*AssistantTools, *mocks.FakeCalendarService, *mocks.FakeGmailService) {
	t.Helper()

	cfg := &config.Config{
		Google: config.GoogleConfig{
			CredentialsPath: "credentials.json",
			TokenPath:       "token.json",
			CalendarID:      "primary",
			TimeZone:        "America/New_York",
		},
	}
	calSvc := &mocks.FakeCalendarService{}
	gmailSvc := &mocks.FakeGmailService{}
	return NewAssistantTools(cfg, zaptest.NewLogger(t), calSvc, gmailSvc), calSvc, gmailSvc
}

func decodeResponse(t *testing.T, raw string) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(raw), &out))
	return out
}

func TestHandleCreateEvent(t *testing.T) {
	tools, calSvc, _ := newTestTools(t)

	calSvc.InsertEventReturns(&calendar.Event{
		Id:      "evt-1",
		Summary: "Dentist",
		Start:   &calendar.EventDateTime{DateTime: "2026-01-08T10:00:00-05:00"},
		End:     &calendar.EventDateTime{DateTime: "2026-01-08T11:00:00-05:00"},
	}, nil)

	raw, err := tools.handleCreateEvent(context.Background(), map[string]interface{}{
		"event_name": "Dentist",
		"start":      map[string]interface{}{"dateTime": "2026-01-08T10:00:00"},
		"end":        map[string]interface{}{"dateTime": "2026-01-08T11:00:00"},
		"attendees":  []interface{}{"alice@example.com"},
	})
	require.NoError(t, err)

	require.Equal(t, 1, calSvc.InsertEventCallCount())
	_, calendarID, event := calSvc.InsertEventArgsForCall(0)
	assert.Equal(t, "primary", calendarID)
	assert.Equal(t, "Dentist", event.Summary)
	assert.Equal(t, "America/New_York", event.Start.TimeZone)
	assert.Equal(t, "America/New_York", event.End.TimeZone)
	require.Len(t, event.Attendees, 1)
	assert.Equal(t, "alice@example.com", event.Attendees[0].Email)

	resp := decodeResponse(t, raw)
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "evt-1", resp["event_id"])
}

func TestHandleCreateEventValidation(t *testing.T) {
	tests := []struct {
		name string
		args map[string]interface{}
	}{
		{
			name: "missing event name",
			args: map[string]interface{}{
				"start": map[string]interface{}{"date": "2026-01-08"},
				"end":   map[string]interface{}{"date": "2026-01-08"},
			},
		},
		{
			name: "missing start",
			args: map[string]interface{}{
				"event_name": "Dentist",
				"end":        map[string]interface{}{"date": "2026-01-08"},
			},
		},
		{
			name: "start with neither date nor dateTime",
			args: map[string]interface{}{
				"event_name": "Dentist",
				"start":      map[string]interface{}{},
				"end":        map[string]interface{}{"date": "2026-01-08"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tools, calSvc, _ := newTestTools(t)
			_, err := tools.handleCreateEvent(context.Background(), tt.args)
			require.Error(t, err)
			assert.Equal(t, 0, calSvc.InsertEventCallCount())
		})
	}
}

func TestHandleCreateEventAllDay(t *testing.T) {
	tools, calSvc, _ := newTestTools(t)

	calSvc.InsertEventReturns(&calendar.Event{
		Id:    "evt-2",
		Start: &calendar.EventDateTime{Date: "2026-01-08"},
		End:   &calendar.EventDateTime{Date: "2026-01-09"},
	}, nil)

	raw, err := tools.handleCreateEvent(context.Background(), map[string]interface{}{
		"event_name": "Conference",
		"start":      map[string]interface{}{"date": "2026-01-08"},
		"end":        map[string]interface{}{"date": "2026-01-09"},
	})
	require.NoError(t, err)

	_, _, event := calSvc.InsertEventArgsForCall(0)
	assert.Equal(t, "2026-01-08", event.Start.Date)
	assert.Empty(t, event.Start.TimeZone)

	resp := decodeResponse(t, raw)
	event2 := resp["event"].(map[string]interface{})
	assert.Equal(t, "All day", event2["start"])
	assert.Equal(t, "All day", event2["end"])
}

func TestHandleListEventsForDay(t *testing.T) {
	tools, calSvc, _ := newTestTools(t)

	calSvc.ListEventsReturns([]*calendar.Event{
		{
			Id:      "evt-1",
			Summary: "Standup",
			Start:   &calendar.EventDateTime{DateTime: "2026-01-08T09:30:00-05:00"},
			End:     &calendar.EventDateTime{DateTime: "2026-01-08T09:45:00-05:00"},
		},
		{
			Id:    "evt-2",
			Start: &calendar.EventDateTime{Date: "2026-01-08"},
		},
	}, nil)

	raw, err := tools.handleListEventsForDay(context.Background(), map[string]interface{}{
		"date_str": "2026-01-08",
	})
	require.NoError(t, err)

	require.Equal(t, 1, calSvc.ListEventsCallCount())
	_, calendarID, query, timeMin, timeMax, maxResults := calSvc.ListEventsArgsForCall(0)
	assert.Equal(t, "primary", calendarID)
	assert.Empty(t, query)
	assert.Equal(t, int64(50), maxResults)

	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	assert.True(t, timeMin.Equal(time.Date(2026, 1, 8, 0, 0, 0, 0, loc)))
	assert.True(t, timeMax.Equal(time.Date(2026, 1, 9, 0, 0, 0, 0, loc)))

	resp := decodeResponse(t, raw)
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, float64(2), resp["count"])

	events := resp["events"].([]interface{})
	require.Len(t, events, 2)
	first := events[0].(map[string]interface{})
	assert.Equal(t, "Standup", first["summary"])
	second := events[1].(map[string]interface{})
	assert.Equal(t, "(no title)", second["summary"])
	assert.Equal(t, "All day", second["start"])
}

func TestHandleListEventsBetween(t *testing.T) {
	tools, calSvc, _ := newTestTools(t)
	calSvc.ListEventsReturns(nil, nil)

	raw, err := tools.handleListEventsBetween(context.Background(), map[string]interface{}{
		"start_date":  "2026-01-05",
		"end_date":    "2026-01-09",
		"max_results": float64(10),
		"timezone":    "UTC",
	})
	require.NoError(t, err)

	_, _, _, timeMin, timeMax, maxResults := calSvc.ListEventsArgsForCall(0)
	assert.True(t, timeMin.Equal(time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)))
	assert.True(t, timeMax.Equal(time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, int64(10), maxResults)

	resp := decodeResponse(t, raw)
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, float64(0), resp["count"])
	assert.NotNil(t, resp["events"])
}

func TestHandleListEventsBetweenInvalidRange(t *testing.T) {
	tools, calSvc, _ := newTestTools(t)

	_, err := tools.handleListEventsBetween(context.Background(), map[string]interface{}{
		"start_date": "2026-01-09",
		"end_date":   "2026-01-05",
	})
	require.Error(t, err)
	assert.Equal(t, 0, calSvc.ListEventsCallCount())
}

func TestHandleFindEvents(t *testing.T) {
	tools, calSvc, _ := newTestTools(t)

	calSvc.ListEventsReturns([]*calendar.Event{
		{Id: "evt-1", Summary: "Dentist", Start: &calendar.EventDateTime{DateTime: "2026-01-08T10:00:00-05:00"}},
	}, nil)

	raw, err := tools.handleFindEvents(context.Background(), map[string]interface{}{
		"query":      "dentist",
		"start_date": "2026-01-05",
		"end_date":   "2026-01-09",
	})
	require.NoError(t, err)

	_, _, query, _, _, maxResults := calSvc.ListEventsArgsForCall(0)
	assert.Equal(t, "dentist", query)
	assert.Equal(t, int64(25), maxResults)

	resp := decodeResponse(t, raw)
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "dentist", resp["query"])
	assert.Equal(t, float64(1), resp["count"])
}

func TestHandleUpdateEventByID(t *testing.T) {
	tools, calSvc, _ := newTestTools(t)

	calSvc.PatchEventReturns(&calendar.Event{
		Id:      "evt-1",
		Summary: "Dentist (rescheduled)",
		Start:   &calendar.EventDateTime{DateTime: "2026-01-09T10:00:00-05:00"},
	}, nil)

	raw, err := tools.handleUpdateEvent(context.Background(), map[string]interface{}{
		"event_id": "evt-1",
		"patch":    map[string]interface{}{"summary": "Dentist (rescheduled)"},
	})
	require.NoError(t, err)

	// a direct id never touches the query path
	assert.Equal(t, 0, calSvc.ListEventsCallCount())
	require.Equal(t, 1, calSvc.PatchEventCallCount())
	_, calendarID, eventID, patch := calSvc.PatchEventArgsForCall(0)
	assert.Equal(t, "primary", calendarID)
	assert.Equal(t, "evt-1", eventID)
	assert.Equal(t, "Dentist (rescheduled)", patch.Summary)

	resp := decodeResponse(t, raw)
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "evt-1", resp["event_id"])
}

func TestHandleUpdateEventByQuery(t *testing.T) {
	tools, calSvc, _ := newTestTools(t)

	calSvc.ListEventsReturns([]*calendar.Event{
		{Id: "evt-7", Summary: "Dentist", Start: &calendar.EventDateTime{DateTime: "2026-01-08T10:00:00-05:00"}},
	}, nil)
	calSvc.PatchEventReturns(&calendar.Event{Id: "evt-7", Summary: "Dentist"}, nil)

	raw, err := tools.handleUpdateEvent(context.Background(), map[string]interface{}{
		"patch":      map[string]interface{}{"location": "Suite 4"},
		"query":      "dentist",
		"start_date": "2026-01-08",
		"end_date":   "2026-01-08",
	})
	require.NoError(t, err)

	require.Equal(t, 1, calSvc.ListEventsCallCount())
	_, _, _, _, _, maxResults := calSvc.ListEventsArgsForCall(0)
	assert.Equal(t, int64(10), maxResults)

	require.Equal(t, 1, calSvc.PatchEventCallCount())
	_, _, eventID, patch := calSvc.PatchEventArgsForCall(0)
	assert.Equal(t, "evt-7", eventID)
	assert.Equal(t, "Suite 4", patch.Location)

	resp := decodeResponse(t, raw)
	assert.Equal(t, true, resp["success"])
}

func TestHandleUpdateEventAmbiguous(t *testing.T) {
	tools, calSvc, _ := newTestTools(t)

	calSvc.ListEventsReturns([]*calendar.Event{
		{Id: "evt-1", Summary: "Dentist AM", Start: &calendar.EventDateTime{DateTime: "2026-01-08T09:00:00-05:00"}},
		{Id: "evt-2", Summary: "Dentist PM", Start: &calendar.EventDateTime{DateTime: "2026-01-08T15:00:00-05:00"}},
	}, nil)

	raw, err := tools.handleUpdateEvent(context.Background(), map[string]interface{}{
		"patch":      map[string]interface{}{"summary": "x"},
		"query":      "dentist",
		"start_date": "2026-01-08",
		"end_date":   "2026-01-08",
	})
	require.NoError(t, err)

	assert.Equal(t, 0, calSvc.PatchEventCallCount())

	resp := decodeResponse(t, raw)
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, "ambiguous", resp["reason"])

	matches := resp["matches"].([]interface{})
	require.Len(t, matches, 2)
	assert.Equal(t, "evt-1", matches[0].(map[string]interface{})["event_id"])
	assert.Equal(t, "evt-2", matches[1].(map[string]interface{})["event_id"])
}

func TestHandleUpdateEventMissingDisambiguator(t *testing.T) {
	tools, calSvc, _ := newTestTools(t)

	_, err := tools.handleUpdateEvent(context.Background(), map[string]interface{}{
		"patch": map[string]interface{}{"summary": "x"},
		"query": "dentist",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must provide an id")
	assert.Equal(t, 0, calSvc.ListEventsCallCount())
	assert.Equal(t, 0, calSvc.PatchEventCallCount())
}

func TestHandleDeleteEventByQuery(t *testing.T) {
	tools, calSvc, _ := newTestTools(t)

	calSvc.ListEventsReturns([]*calendar.Event{
		{Id: "evt-9", Summary: "Old meeting", Start: &calendar.EventDateTime{DateTime: "2026-01-08T13:00:00-05:00"}},
	}, nil)

	raw, err := tools.handleDeleteEvent(context.Background(), map[string]interface{}{
		"query":      "old meeting",
		"start_date": "2026-01-08",
		"end_date":   "2026-01-08",
	})
	require.NoError(t, err)

	require.Equal(t, 1, calSvc.DeleteEventCallCount())
	_, _, eventID := calSvc.DeleteEventArgsForCall(0)
	assert.Equal(t, "evt-9", eventID)

	resp := decodeResponse(t, raw)
	assert.Equal(t, true, resp["success"])
}

func TestHandleDeleteEventNotFound(t *testing.T) {
	tools, calSvc, _ := newTestTools(t)
	calSvc.ListEventsReturns(nil, nil)

	raw, err := tools.handleDeleteEvent(context.Background(), map[string]interface{}{
		"query":      "ghost",
		"start_date": "2026-01-08",
		"end_date":   "2026-01-08",
	})
	require.NoError(t, err)

	assert.Equal(t, 0, calSvc.DeleteEventCallCount())

	resp := decodeResponse(t, raw)
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, "not_found", resp["reason"])
}

func TestHandleDeleteEventTargetGone(t *testing.T) {
	tools, calSvc, _ := newTestTools(t)
	calSvc.DeleteEventReturns(&googleapi.Error{Code: 404, Message: "Not Found"})

	raw, err := tools.handleDeleteEvent(context.Background(), map[string]interface{}{
		"event_id": "evt-stale",
	})
	require.NoError(t, err)

	resp := decodeResponse(t, raw)
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, "target_gone", resp["reason"])
}

func TestHandleGetCurrentDatetime(t *testing.T) {
	tools, _, _ := newTestTools(t)

	raw, err := tools.handleGetCurrentDatetime(context.Background(), map[string]interface{}{
		"tz": "Asia/Tokyo",
	})
	require.NoError(t, err)

	resp := decodeResponse(t, raw)
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "Asia/Tokyo", resp["timezone"])

	parsed, err := time.Parse(time.RFC3339, resp["datetime"].(string))
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), parsed, time.Minute)
}

func TestHandleGetCurrentDatetimeUnknownZone(t *testing.T) {
	tools, _, _ := newTestTools(t)

	_, err := tools.handleGetCurrentDatetime(context.Background(), map[string]interface{}{
		"tz": "Mars/Olympus",
	})
	require.Error(t, err)
}
