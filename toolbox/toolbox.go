package toolbox

import (
	server "github.com/inference-gateway/adk/server"
	zap "go.uber.org/zap"

	config "github.com/stellabot/stella/config"
	google "github.com/stellabot/stella/google"
)

// AssistantTools exposes Google Calendar and Gmail operations as A2A tools
type AssistantTools struct {
	config   *config.Config
	logger   *zap.Logger
	calSvc   google.CalendarService
	gmailSvc google.GmailService
}

// NewAssistantTools creates a new assistant tools instance backed by the
// given Calendar and Gmail services
func NewAssistantTools(cfg *config.Config, logger *zap.Logger, calSvc google.CalendarService, gmailSvc google.GmailService) *AssistantTools {
	return &AssistantTools{
		config:   cfg,
		logger:   logger,
		calSvc:   calSvc,
		gmailSvc: gmailSvc,
	}
}

// RegisterTools registers all calendar and mail tools with the tools handler
func (t *AssistantTools) RegisterTools(toolBox *server.DefaultToolBox) {
	t.logger.Debug("Registering assistant tools")
	t.registerCreateEventTool(toolBox)
	t.registerListEventsForDayTool(toolBox)
	t.registerListEventsBetweenTool(toolBox)
	t.registerFindEventsTool(toolBox)
	t.registerUpdateEventTool(toolBox)
	t.registerDeleteEventTool(toolBox)
	t.registerGetCurrentDatetimeTool(toolBox)
	t.registerListMessagesTool(toolBox)
	t.registerGetMessageTool(toolBox)
	t.registerTrashMessageTool(toolBox)
	t.registerDeleteMessagePermanentlyTool(toolBox)
	t.registerBatchModifyLabelsTool(toolBox)
	t.registerCreateDraftTool(toolBox)
	t.registerUpdateDraftTool(toolBox)
	t.registerSendDraftTool(toolBox)
	t.registerCreateReplyDraftTool(toolBox)
	t.logger.Debug("Assistant tools registered successfully")
}

// registerCreateEventTool registers the create event tool
func (t *AssistantTools) registerCreateEventTool(toolBox *server.DefaultToolBox) {
	tool := server.NewBasicTool(
		"create_event",
		"Create a new event in Google Calendar",
		map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"event_name": map[string]interface{}{
					"type":        "string",
					"description": "Event title (required)",
				},
				"start": map[string]interface{}{
					"type":        "object",
					"description": "Event start. Use {\"dateTime\": \"2026-01-08T10:00:00\", \"timeZone\": \"America/New_York\"} for timed events or {\"date\": \"2026-01-08\"} for all-day events (required)",
				},
				"end": map[string]interface{}{
					"type":        "object",
					"description": "Event end, same shape as start (required)",
				},
				"calendar_id": map[string]interface{}{
					"type":        "string",
					"description": "Calendar to create the event on. Defaults to the primary calendar.",
				},
				"location": map[string]interface{}{
					"type":        "string",
					"description": "Event location. Optional.",
				},
				"description": map[string]interface{}{
					"type":        "string",
					"description": "Event description. Optional.",
				},
				"attendees": map[string]interface{}{
					"type": "array",
					"items": map[string]interface{}{
						"type": "string",
					},
					"description": "List of attendee email addresses. Optional.",
				},
				"timezone": map[string]interface{}{
					"type":        "string",
					"description": "IANA timezone applied when start/end omit one. Optional.",
				},
			},
			"required": []string{"event_name", "start", "end"},
		},
		t.handleCreateEvent,
	)
	toolBox.AddTool(tool)
}

// registerListEventsForDayTool registers the single-day listing tool
func (t *AssistantTools) registerListEventsForDayTool(toolBox *server.DefaultToolBox) {
	tool := server.NewBasicTool(
		"list_events_for_day",
		"List all events on a single calendar day",
		map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"date_str": map[string]interface{}{
					"type":        "string",
					"description": "The day to list, in YYYY-MM-DD format (required)",
				},
				"calendar_id": map[string]interface{}{
					"type":        "string",
					"description": "Calendar to read. Defaults to the primary calendar.",
				},
				"timezone": map[string]interface{}{
					"type":        "string",
					"description": "IANA timezone the day is interpreted in. Optional.",
				},
				"max_results": map[string]interface{}{
					"type":        "integer",
					"description": "Maximum number of events to return (default: 50)",
					"minimum":     1,
					"maximum":     250,
				},
			},
			"required": []string{"date_str"},
		},
		t.handleListEventsForDay,
	)
	toolBox.AddTool(tool)
}

// registerListEventsBetweenTool registers the date-range listing tool
func (t *AssistantTools) registerListEventsBetweenTool(toolBox *server.DefaultToolBox) {
	tool := server.NewBasicTool(
		"list_events_between",
		"List all events between two calendar dates, inclusive",
		map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"start_date": map[string]interface{}{
					"type":        "string",
					"description": "First day of the range, YYYY-MM-DD (required)",
				},
				"end_date": map[string]interface{}{
					"type":        "string",
					"description": "Last day of the range, YYYY-MM-DD (required)",
				},
				"calendar_id": map[string]interface{}{
					"type":        "string",
					"description": "Calendar to read. Defaults to the primary calendar.",
				},
				"timezone": map[string]interface{}{
					"type":        "string",
					"description": "IANA timezone the dates are interpreted in. Optional.",
				},
				"max_results": map[string]interface{}{
					"type":        "integer",
					"description": "Maximum number of events to return (default: 50)",
					"minimum":     1,
					"maximum":     250,
				},
			},
			"required": []string{"start_date", "end_date"},
		},
		t.handleListEventsBetween,
	)
	toolBox.AddTool(tool)
}

// registerFindEventsTool registers the free-text search tool
func (t *AssistantTools) registerFindEventsTool(toolBox *server.DefaultToolBox) {
	tool := server.NewBasicTool(
		"find_events",
		"Search events by free text within a date range",
		map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "Free text matched against event titles, descriptions and locations (required)",
				},
				"start_date": map[string]interface{}{
					"type":        "string",
					"description": "First day of the search range, YYYY-MM-DD (required)",
				},
				"end_date": map[string]interface{}{
					"type":        "string",
					"description": "Last day of the search range, YYYY-MM-DD (required)",
				},
				"calendar_id": map[string]interface{}{
					"type":        "string",
					"description": "Calendar to search. Defaults to the primary calendar.",
				},
				"timezone": map[string]interface{}{
					"type":        "string",
					"description": "IANA timezone the dates are interpreted in. Optional.",
				},
				"max_results": map[string]interface{}{
					"type":        "integer",
					"description": "Maximum number of events to return (default: 25)",
					"minimum":     1,
					"maximum":     100,
				},
			},
			"required": []string{"query", "start_date", "end_date"},
		},
		t.handleFindEvents,
	)
	toolBox.AddTool(tool)
}

// registerUpdateEventTool registers the update event tool
func (t *AssistantTools) registerUpdateEventTool(toolBox *server.DefaultToolBox) {
	tool := server.NewBasicTool(
		"update_event",
		"Update an existing event, located either by its id or by a query within a date range",
		map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"patch": map[string]interface{}{
					"type":        "object",
					"description": "Fields to change, in Google Calendar event shape, e.g. {\"summary\": \"New title\", \"start\": {\"dateTime\": \"...\"}} (required)",
				},
				"event_id": map[string]interface{}{
					"type":        "string",
					"description": "Exact event id. When provided the query fields are ignored.",
				},
				"query": map[string]interface{}{
					"type":        "string",
					"description": "Free text identifying the event. Required when event_id is not given.",
				},
				"start_date": map[string]interface{}{
					"type":        "string",
					"description": "First day of the search range, YYYY-MM-DD. Required with query.",
				},
				"end_date": map[string]interface{}{
					"type":        "string",
					"description": "Last day of the search range, YYYY-MM-DD. Required with query.",
				},
				"calendar_id": map[string]interface{}{
					"type":        "string",
					"description": "Calendar holding the event. Defaults to the primary calendar.",
				},
				"timezone": map[string]interface{}{
					"type":        "string",
					"description": "IANA timezone the dates are interpreted in. Optional.",
				},
			},
			"required": []string{"patch"},
		},
		t.handleUpdateEvent,
	)
	toolBox.AddTool(tool)
}

// registerDeleteEventTool registers the delete event tool
func (t *AssistantTools) registerDeleteEventTool(toolBox *server.DefaultToolBox) {
	tool := server.NewBasicTool(
		"delete_event",
		"Delete an event, located either by its id or by a query within a date range",
		map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"event_id": map[string]interface{}{
					"type":        "string",
					"description": "Exact event id. When provided the query fields are ignored.",
				},
				"query": map[string]interface{}{
					"type":        "string",
					"description": "Free text identifying the event. Required when event_id is not given.",
				},
				"start_date": map[string]interface{}{
					"type":        "string",
					"description": "First day of the search range, YYYY-MM-DD. Required with query.",
				},
				"end_date": map[string]interface{}{
					"type":        "string",
					"description": "Last day of the search range, YYYY-MM-DD. Required with query.",
				},
				"calendar_id": map[string]interface{}{
					"type":        "string",
					"description": "Calendar holding the event. Defaults to the primary calendar.",
				},
				"timezone": map[string]interface{}{
					"type":        "string",
					"description": "IANA timezone the dates are interpreted in. Optional.",
				},
			},
		},
		t.handleDeleteEvent,
	)
	toolBox.AddTool(tool)
}

// registerGetCurrentDatetimeTool registers the clock tool
func (t *AssistantTools) registerGetCurrentDatetimeTool(toolBox *server.DefaultToolBox) {
	tool := server.NewBasicTool(
		"get_current_datetime",
		"Get the current date and time in a given timezone",
		map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"tz": map[string]interface{}{
					"type":        "string",
					"description": "IANA timezone name, e.g. America/New_York. Optional.",
				},
			},
		},
		t.handleGetCurrentDatetime,
	)
	toolBox.AddTool(tool)
}

// registerListMessagesTool registers the Gmail search tool
func (t *AssistantTools) registerListMessagesTool(toolBox *server.DefaultToolBox) {
	tool := server.NewBasicTool(
		"list_messages",
		"Search Gmail messages with the standard Gmail query syntax",
		map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "Gmail search query, e.g. \"from:alice is:unread\". Optional.",
				},
				"label_ids": map[string]interface{}{
					"type": "array",
					"items": map[string]interface{}{
						"type": "string",
					},
					"description": "Restrict the search to messages carrying all of these labels. Optional.",
				},
				"max_results": map[string]interface{}{
					"type":        "integer",
					"description": "Maximum number of messages to return (default: 20)",
					"minimum":     1,
					"maximum":     100,
				},
			},
		},
		t.handleListMessages,
	)
	toolBox.AddTool(tool)
}

// registerGetMessageTool registers the message read tool
func (t *AssistantTools) registerGetMessageTool(toolBox *server.DefaultToolBox) {
	tool := server.NewBasicTool(
		"get_message",
		"Fetch a single Gmail message by id",
		map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"message_id": map[string]interface{}{
					"type":        "string",
					"description": "Gmail message id (required)",
				},
				"format": map[string]interface{}{
					"type":        "string",
					"description": "Payload detail level: metadata, full, raw or minimal (default: metadata)",
					"enum":        []string{"metadata", "full", "raw", "minimal"},
				},
			},
			"required": []string{"message_id"},
		},
		t.handleGetMessage,
	)
	toolBox.AddTool(tool)
}

// registerTrashMessageTool registers the reversible message removal tool
func (t *AssistantTools) registerTrashMessageTool(toolBox *server.DefaultToolBox) {
	tool := server.NewBasicTool(
		"trash_message",
		"Move a Gmail message to the trash, located either by its id or by a query within a date range. Reversible for 30 days.",
		map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"message_id": map[string]interface{}{
					"type":        "string",
					"description": "Exact message id. When provided the query fields are ignored.",
				},
				"query": map[string]interface{}{
					"type":        "string",
					"description": "Gmail search query identifying the message. Required when message_id is not given.",
				},
				"start_date": map[string]interface{}{
					"type":        "string",
					"description": "First day of the search range, YYYY-MM-DD. Required with query.",
				},
				"end_date": map[string]interface{}{
					"type":        "string",
					"description": "Last day of the search range, YYYY-MM-DD. Required with query.",
				},
				"timezone": map[string]interface{}{
					"type":        "string",
					"description": "IANA timezone the dates are interpreted in. Optional.",
				},
			},
		},
		t.handleTrashMessage,
	)
	toolBox.AddTool(tool)
}

// registerDeleteMessagePermanentlyTool registers the permanent delete tool.
// Unlike trash_message this never resolves by query, a message id is the
// only accepted target.
func (t *AssistantTools) registerDeleteMessagePermanentlyTool(toolBox *server.DefaultToolBox) {
	tool := server.NewBasicTool(
		"delete_message_permanently",
		"Permanently delete a Gmail message by id, bypassing the trash. This cannot be undone.",
		map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"message_id": map[string]interface{}{
					"type":        "string",
					"description": "Gmail message id (required)",
				},
			},
			"required": []string{"message_id"},
		},
		t.handleDeleteMessagePermanently,
	)
	toolBox.AddTool(tool)
}

// registerBatchModifyLabelsTool registers the label modification tool
func (t *AssistantTools) registerBatchModifyLabelsTool(toolBox *server.DefaultToolBox) {
	tool := server.NewBasicTool(
		"batch_modify_labels",
		"Add and remove labels on a batch of Gmail messages",
		map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"message_ids": map[string]interface{}{
					"type": "array",
					"items": map[string]interface{}{
						"type": "string",
					},
					"description": "Message ids to modify (required)",
				},
				"add_label_ids": map[string]interface{}{
					"type": "array",
					"items": map[string]interface{}{
						"type": "string",
					},
					"description": "Label ids to add, e.g. [\"STARRED\"]. Optional.",
				},
				"remove_label_ids": map[string]interface{}{
					"type": "array",
					"items": map[string]interface{}{
						"type": "string",
					},
					"description": "Label ids to remove, e.g. [\"UNREAD\"]. Optional.",
				},
			},
			"required": []string{"message_ids"},
		},
		t.handleBatchModifyLabels,
	)
	toolBox.AddTool(tool)
}

// registerCreateDraftTool registers the draft creation tool
func (t *AssistantTools) registerCreateDraftTool(toolBox *server.DefaultToolBox) {
	tool := server.NewBasicTool(
		"create_draft",
		"Create a new Gmail draft. Nothing is sent until send_draft is called.",
		map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"to": map[string]interface{}{
					"type": "array",
					"items": map[string]interface{}{
						"type": "string",
					},
					"description": "Recipient email addresses (required)",
				},
				"subject": map[string]interface{}{
					"type":        "string",
					"description": "Message subject (required)",
				},
				"body_text": map[string]interface{}{
					"type":        "string",
					"description": "Plain text body (required)",
				},
				"cc": map[string]interface{}{
					"type": "array",
					"items": map[string]interface{}{
						"type": "string",
					},
					"description": "Cc email addresses. Optional.",
				},
				"bcc": map[string]interface{}{
					"type": "array",
					"items": map[string]interface{}{
						"type": "string",
					},
					"description": "Bcc email addresses. Optional.",
				},
				"body_html": map[string]interface{}{
					"type":        "string",
					"description": "HTML body sent alongside the plain text. Optional.",
				},
			},
			"required": []string{"to", "subject", "body_text"},
		},
		t.handleCreateDraft,
	)
	toolBox.AddTool(tool)
}

// registerUpdateDraftTool registers the draft replacement tool
func (t *AssistantTools) registerUpdateDraftTool(toolBox *server.DefaultToolBox) {
	tool := server.NewBasicTool(
		"update_draft",
		"Replace the content of an existing Gmail draft. All fields are replaced, not merged.",
		map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"draft_id": map[string]interface{}{
					"type":        "string",
					"description": "Draft id to replace (required)",
				},
				"to": map[string]interface{}{
					"type": "array",
					"items": map[string]interface{}{
						"type": "string",
					},
					"description": "Recipient email addresses (required)",
				},
				"subject": map[string]interface{}{
					"type":        "string",
					"description": "Message subject (required)",
				},
				"body_text": map[string]interface{}{
					"type":        "string",
					"description": "Plain text body (required)",
				},
				"cc": map[string]interface{}{
					"type": "array",
					"items": map[string]interface{}{
						"type": "string",
					},
					"description": "Cc email addresses. Optional.",
				},
				"bcc": map[string]interface{}{
					"type": "array",
					"items": map[string]interface{}{
						"type": "string",
					},
					"description": "Bcc email addresses. Optional.",
				},
				"body_html": map[string]interface{}{
					"type":        "string",
					"description": "HTML body sent alongside the plain text. Optional.",
				},
			},
			"required": []string{"draft_id", "to", "subject", "body_text"},
		},
		t.handleUpdateDraft,
	)
	toolBox.AddTool(tool)
}

// registerSendDraftTool registers the draft send tool
func (t *AssistantTools) registerSendDraftTool(toolBox *server.DefaultToolBox) {
	tool := server.NewBasicTool(
		"send_draft",
		"Send an existing Gmail draft",
		map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"draft_id": map[string]interface{}{
					"type":        "string",
					"description": "Draft id to send (required)",
				},
			},
			"required": []string{"draft_id"},
		},
		t.handleSendDraft,
	)
	toolBox.AddTool(tool)
}

// registerCreateReplyDraftTool registers the threaded reply tool
func (t *AssistantTools) registerCreateReplyDraftTool(toolBox *server.DefaultToolBox) {
	tool := server.NewBasicTool(
		"create_reply_draft",
		"Create a draft reply to an existing message, threaded into its conversation",
		map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"original_message_id": map[string]interface{}{
					"type":        "string",
					"description": "Id of the message being replied to (required)",
				},
				"reply_body_text": map[string]interface{}{
					"type":        "string",
					"description": "Plain text body of the reply (required)",
				},
			},
			"required": []string{"original_message_id", "reply_body_text"},
		},
		t.handleCreateReplyDraft,
	)
	toolBox.AddTool(tool)
}
