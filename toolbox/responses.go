package toolbox

import (
	"encoding/json"
	"fmt"

	"github.com/stellabot/stella/resolve"
)

// EventResult is one calendar event echoed back in a tool response. Start
// and End carry the projected display strings, so whole-day events read
// "All day" and timed events read a 12-hour clock in their own zone.
type EventResult struct {
	EventID  string `json:"event_id"`
	Summary  string `json:"summary"`
	Start    string `json:"start"`
	End      string `json:"end,omitempty"`
	Location string `json:"location,omitempty"`
	HTMLLink string `json:"htmlLink,omitempty"`
}

// ListEventsResponse is the envelope for the calendar list and find tools
type ListEventsResponse struct {
	Success  bool          `json:"success"`
	Query    string        `json:"query,omitempty"`
	Date     string        `json:"date,omitempty"`
	Range    *DateRange    `json:"range,omitempty"`
	Count    int           `json:"count"`
	Events   []EventResult `json:"events"`
	Message  string        `json:"message"`
	Timezone string        `json:"timezone,omitempty"`
}

// DateRange echoes the inclusive date range a query covered
type DateRange struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Timezone  string `json:"timezone"`
}

// MutationResponse is the discriminated envelope for every mutating tool.
// Reason is set only on failure; Matches carries the candidate list when
// the failure is an ambiguous query.
type MutationResponse struct {
	Success   bool          `json:"success"`
	Reason    string        `json:"reason,omitempty"`
	EventID   string        `json:"event_id,omitempty"`
	MessageID string        `json:"message_id,omitempty"`
	DraftID   string        `json:"draft_id,omitempty"`
	ThreadID  string        `json:"thread_id,omitempty"`
	Event     *EventResult  `json:"event,omitempty"`
	Matches   []EventResult `json:"matches,omitempty"`
	Message   string        `json:"message"`
}

// MessageResult is one Gmail message echoed back in a tool response
type MessageResult struct {
	MessageID string `json:"message_id"`
	Subject   string `json:"subject"`
	Date      string `json:"date"`
	Link      string `json:"link,omitempty"`
}

// MailMutationResponse is the discriminated envelope for mutating mail
// tools. Matches carries candidate messages when a query was ambiguous.
type MailMutationResponse struct {
	Success   bool            `json:"success"`
	Reason    string          `json:"reason,omitempty"`
	MessageID string          `json:"message_id,omitempty"`
	DraftID   string          `json:"draft_id,omitempty"`
	ThreadID  string          `json:"thread_id,omitempty"`
	Matches   []MessageResult `json:"matches,omitempty"`
	Message   string          `json:"message"`
}

// eventResult projects a remote item into the response shape
func eventResult(item resolve.RemoteItem) EventResult {
	record := resolve.Project(item)
	return EventResult{
		EventID:  item.ID,
		Summary:  record.Title,
		Start:    record.StartDisplay,
		End:      record.EndDisplay,
		Location: record.Location,
		HTMLLink: record.Link,
	}
}

func eventResults(items []resolve.RemoteItem) []EventResult {
	out := make([]EventResult, 0, len(items))
	for _, item := range items {
		out = append(out, eventResult(item))
	}
	return out
}

// mutationResponse translates a dispatch outcome into the envelope. The
// reason and candidates of a failed resolution pass through unchanged.
func mutationResponse(result resolve.MutationResult, successMessage string) MutationResponse {
	if result.OK {
		resp := MutationResponse{Success: true, EventID: result.ID, Message: successMessage}
		if result.Item != nil {
			ev := eventResult(*result.Item)
			resp.Event = &ev
		}
		return resp
	}

	resp := MutationResponse{
		Success: false,
		Reason:  string(result.Reason),
		Message: result.Detail,
	}
	if len(result.Candidates) > 0 {
		resp.Matches = eventResults(result.Candidates)
	}
	return resp
}

func messageResult(item resolve.RemoteItem) MessageResult {
	record := resolve.Project(item)
	return MessageResult{
		MessageID: item.ID,
		Subject:   record.Title,
		Date:      record.StartDisplay,
		Link:      record.Link,
	}
}

func messageResults(items []resolve.RemoteItem) []MessageResult {
	out := make([]MessageResult, 0, len(items))
	for _, item := range items {
		out = append(out, messageResult(item))
	}
	return out
}

// mailMutationResponse translates a dispatch outcome into the mail envelope
func mailMutationResponse(result resolve.MutationResult, successMessage string) MailMutationResponse {
	if result.OK {
		return MailMutationResponse{Success: true, MessageID: result.ID, Message: successMessage}
	}

	resp := MailMutationResponse{
		Success: false,
		Reason:  string(result.Reason),
		Message: result.Detail,
	}
	if len(result.Candidates) > 0 {
		resp.Matches = messageResults(result.Candidates)
	}
	return resp
}

func marshalResponse(v any) (string, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to marshal response: %w", err)
	}
	return string(raw), nil
}
