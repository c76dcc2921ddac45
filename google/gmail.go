package google

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

// gmailUserID addresses the authorized mailbox.
const gmailUserID = "me"

// metadataHeaders are the headers hydrated on metadata-format gets.
var metadataHeaders = []string{"From", "To", "Cc", "Subject", "Date", "Message-Id", "Reply-To", "References"}

// GmailService represents the interface for interacting with Gmail API
type GmailService interface {
	ListMessages(ctx context.Context, query string, labelIDs []string, maxResults int64) (*gmail.ListMessagesResponse, error)
	GetMessage(ctx context.Context, messageID, format string) (*gmail.Message, error)
	TrashMessage(ctx context.Context, messageID string) (*gmail.Message, error)
	DeleteMessage(ctx context.Context, messageID string) error
	BatchModifyMessages(ctx context.Context, messageIDs, addLabelIDs, removeLabelIDs []string) error
	CreateDraft(ctx context.Context, raw, threadID string) (*gmail.Draft, error)
	UpdateDraft(ctx context.Context, draftID, raw string) (*gmail.Draft, error)
	SendDraft(ctx context.Context, draftID string) (*gmail.Message, error)
}

// GmailServiceImpl implements the Gmail service interface for Gmail API
type GmailServiceImpl struct {
	service *gmail.Service
	logger  *zap.Logger
}

// NewGmailService creates a new Gmail service
func NewGmailService(ctx context.Context, logger *zap.Logger, opts ...option.ClientOption) (GmailService, error) {
	svc, err := gmail.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("unable to create gmail service: %w", err)
	}
	return &GmailServiceImpl{service: svc, logger: logger}, nil
}

// ListMessages lists message ids matching a Gmail search query, optionally
// filtered by label ids.
func (g *GmailServiceImpl) ListMessages(ctx context.Context, query string, labelIDs []string, maxResults int64) (*gmail.ListMessagesResponse, error) {
	g.logger.Debug("listing messages",
		zap.String("component", "gmail-service"),
		zap.String("operation", "list-messages"),
		zap.String("query", query),
		zap.Strings("labelIDs", labelIDs),
		zap.Int64("maxResults", maxResults))

	call := g.service.Users.Messages.List(gmailUserID).MaxResults(maxResults).Context(ctx)
	if query != "" {
		call = call.Q(query)
	}
	if len(labelIDs) > 0 {
		call = call.LabelIds(labelIDs...)
	}

	resp, err := call.Do()
	if err != nil {
		g.logger.Error("failed to list messages from gmail api",
			zap.String("component", "gmail-service"),
			zap.String("operation", "list-messages"),
			zap.String("query", query),
			zap.Error(err))
		return nil, fmt.Errorf("unable to list messages: %w", err)
	}

	g.logger.Info("successfully listed messages",
		zap.String("component", "gmail-service"),
		zap.String("operation", "list-messages"),
		zap.Int("messageCount", len(resp.Messages)))

	return resp, nil
}

// GetMessage retrieves a message. format is "metadata" for key headers plus
// snippet, or "full" for the body structure.
func (g *GmailServiceImpl) GetMessage(ctx context.Context, messageID, format string) (*gmail.Message, error) {
	g.logger.Debug("getting message",
		zap.String("component", "gmail-service"),
		zap.String("operation", "get-message"),
		zap.String("messageID", messageID),
		zap.String("format", format))

	call := g.service.Users.Messages.Get(gmailUserID, messageID).Format(format).Context(ctx)
	if format == "metadata" {
		call = call.MetadataHeaders(metadataHeaders...)
	}

	msg, err := call.Do()
	if err != nil {
		g.logger.Error("failed to get message from gmail api",
			zap.String("component", "gmail-service"),
			zap.String("operation", "get-message"),
			zap.String("messageID", messageID),
			zap.Error(err))
		return nil, fmt.Errorf("unable to get message: %w", err)
	}

	return msg, nil
}

// TrashMessage moves a message to trash. Reversible, and the default way to
// delete.
func (g *GmailServiceImpl) TrashMessage(ctx context.Context, messageID string) (*gmail.Message, error) {
	g.logger.Debug("trashing message",
		zap.String("component", "gmail-service"),
		zap.String("operation", "trash-message"),
		zap.String("messageID", messageID))

	msg, err := g.service.Users.Messages.Trash(gmailUserID, messageID).Context(ctx).Do()
	if err != nil {
		g.logger.Error("failed to trash message",
			zap.String("component", "gmail-service"),
			zap.String("operation", "trash-message"),
			zap.String("messageID", messageID),
			zap.Error(err))
		return nil, fmt.Errorf("unable to trash message: %w", err)
	}

	g.logger.Info("successfully trashed message",
		zap.String("component", "gmail-service"),
		zap.String("operation", "trash-message"),
		zap.String("messageID", messageID))

	return msg, nil
}

// DeleteMessage permanently deletes a message. Not reversible.
func (g *GmailServiceImpl) DeleteMessage(ctx context.Context, messageID string) error {
	g.logger.Debug("permanently deleting message",
		zap.String("component", "gmail-service"),
		zap.String("operation", "delete-message"),
		zap.String("messageID", messageID))

	err := g.service.Users.Messages.Delete(gmailUserID, messageID).Context(ctx).Do()
	if err != nil {
		g.logger.Error("failed to delete message",
			zap.String("component", "gmail-service"),
			zap.String("operation", "delete-message"),
			zap.String("messageID", messageID),
			zap.Error(err))
		return fmt.Errorf("unable to delete message: %w", err)
	}

	g.logger.Info("successfully deleted message permanently",
		zap.String("component", "gmail-service"),
		zap.String("operation", "delete-message"),
		zap.String("messageID", messageID))

	return nil
}

// BatchModifyMessages adds and removes labels on many messages at once
func (g *GmailServiceImpl) BatchModifyMessages(ctx context.Context, messageIDs, addLabelIDs, removeLabelIDs []string) error {
	g.logger.Debug("batch modifying message labels",
		zap.String("component", "gmail-service"),
		zap.String("operation", "batch-modify"),
		zap.Int("messageCount", len(messageIDs)),
		zap.Strings("addLabelIDs", addLabelIDs),
		zap.Strings("removeLabelIDs", removeLabelIDs))

	req := &gmail.BatchModifyMessagesRequest{
		Ids:            messageIDs,
		AddLabelIds:    addLabelIDs,
		RemoveLabelIds: removeLabelIDs,
	}

	err := g.service.Users.Messages.BatchModify(gmailUserID, req).Context(ctx).Do()
	if err != nil {
		g.logger.Error("failed to batch modify messages",
			zap.String("component", "gmail-service"),
			zap.String("operation", "batch-modify"),
			zap.Error(err))
		return fmt.Errorf("unable to batch modify messages: %w", err)
	}

	g.logger.Info("successfully modified message labels",
		zap.String("component", "gmail-service"),
		zap.String("operation", "batch-modify"),
		zap.Int("messageCount", len(messageIDs)))

	return nil
}

// CreateDraft creates a draft from a base64url raw message. A non-empty
// threadID places the draft on an existing thread.
func (g *GmailServiceImpl) CreateDraft(ctx context.Context, raw, threadID string) (*gmail.Draft, error) {
	g.logger.Debug("creating draft",
		zap.String("component", "gmail-service"),
		zap.String("operation", "create-draft"),
		zap.String("threadID", threadID))

	draft := &gmail.Draft{Message: &gmail.Message{Raw: raw, ThreadId: threadID}}

	created, err := g.service.Users.Drafts.Create(gmailUserID, draft).Context(ctx).Do()
	if err != nil {
		g.logger.Error("failed to create draft",
			zap.String("component", "gmail-service"),
			zap.String("operation", "create-draft"),
			zap.Error(err))
		return nil, fmt.Errorf("unable to create draft: %w", err)
	}

	g.logger.Info("successfully created draft",
		zap.String("component", "gmail-service"),
		zap.String("operation", "create-draft"),
		zap.String("draftID", created.Id))

	return created, nil
}

// UpdateDraft replaces the content of an existing draft wholesale
func (g *GmailServiceImpl) UpdateDraft(ctx context.Context, draftID, raw string) (*gmail.Draft, error) {
	g.logger.Debug("updating draft",
		zap.String("component", "gmail-service"),
		zap.String("operation", "update-draft"),
		zap.String("draftID", draftID))

	draft := &gmail.Draft{Id: draftID, Message: &gmail.Message{Raw: raw}}

	updated, err := g.service.Users.Drafts.Update(gmailUserID, draftID, draft).Context(ctx).Do()
	if err != nil {
		g.logger.Error("failed to update draft",
			zap.String("component", "gmail-service"),
			zap.String("operation", "update-draft"),
			zap.String("draftID", draftID),
			zap.Error(err))
		return nil, fmt.Errorf("unable to update draft: %w", err)
	}

	g.logger.Info("successfully updated draft",
		zap.String("component", "gmail-service"),
		zap.String("operation", "update-draft"),
		zap.String("draftID", updated.Id))

	return updated, nil
}

// SendDraft sends a previously created draft by id
func (g *GmailServiceImpl) SendDraft(ctx context.Context, draftID string) (*gmail.Message, error) {
	g.logger.Debug("sending draft",
		zap.String("component", "gmail-service"),
		zap.String("operation", "send-draft"),
		zap.String("draftID", draftID))

	sent, err := g.service.Users.Drafts.Send(gmailUserID, &gmail.Draft{Id: draftID}).Context(ctx).Do()
	if err != nil {
		g.logger.Error("failed to send draft",
			zap.String("component", "gmail-service"),
			zap.String("operation", "send-draft"),
			zap.String("draftID", draftID),
			zap.Error(err))
		return nil, fmt.Errorf("unable to send draft: %w", err)
	}

	g.logger.Info("successfully sent draft",
		zap.String("component", "gmail-service"),
		zap.String("operation", "send-draft"),
		zap.String("draftID", draftID),
		zap.String("messageID", sent.Id))

	return sent, nil
}
