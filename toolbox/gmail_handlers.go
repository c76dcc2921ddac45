package toolbox

import (
	"context"
	"fmt"

	zap "go.uber.org/zap"

	google "github.com/stellabot/stella/google"
	resolve "github.com/stellabot/stella/resolve"
	window "github.com/stellabot/stella/window"
)

// resolveMessage maps the (message_id | query+start_date+end_date) argument
// combination to a resolution against the authorized mailbox.
func (t *AssistantTools) resolveMessage(ctx context.Context, args map[string]interface{}) (resolve.Resolution, error) {
	messageID := stringArg(args, "message_id")
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

	querier := google.NewMessageQuerier(t.gmailSvc)
	return resolve.Resolve(ctx, querier, messageID, query, w)
}

// handleListMessages handles the Gmail search tool call
func (t *AssistantTools) handleListMessages(ctx context.Context, args map[string]interface{}) (string, error) {
	t.logger.Info("Tool called: list_messages", zap.Any("args", args))

	query := stringArg(args, "query")
	labelIDs := stringSliceArg(args, "label_ids")

	resp, err := t.gmailSvc.ListMessages(ctx, query, labelIDs, int64Arg(args, "max_results", 20))
	if err != nil {
		return "", fmt.Errorf("failed to list messages: %w", err)
	}

	messages := make([]map[string]string, 0, len(resp.Messages))
	for _, ref := range resp.Messages {
		messages = append(messages, map[string]string{
			"message_id": ref.Id,
			"thread_id":  ref.ThreadId,
		})
	}

	return marshalResponse(map[string]interface{}{
		"success":           true,
		"count":             len(messages),
		"messages":          messages,
		"next_page_token":   resp.NextPageToken,
		"estimated_matches": resp.ResultSizeEstimate,
		"message":           fmt.Sprintf("Found %d messages", len(messages)),
	})
}

// handleGetMessage handles the message read tool call
func (t *AssistantTools) handleGetMessage(ctx context.Context, args map[string]interface{}) (string, error) {
	t.logger.Info("Tool called: get_message", zap.Any("args", args))

	messageID := stringArg(args, "message_id")
	if messageID == "" {
		return "", fmt.Errorf("message_id is required")
	}
	format := stringArg(args, "format")
	if format == "" {
		format = "metadata"
	}

	msg, err := t.gmailSvc.GetMessage(ctx, messageID, format)
	if err != nil {
		return "", fmt.Errorf("failed to get message: %w", err)
	}

	return marshalResponse(map[string]interface{}{
		"success":    true,
		"message_id": msg.Id,
		"thread_id":  msg.ThreadId,
		"label_ids":  msg.LabelIds,
		"snippet":    msg.Snippet,
		"headers":    google.HeaderMap(msg.Payload),
	})
}

// handleTrashMessage handles the reversible removal tool call
func (t *AssistantTools) handleTrashMessage(ctx context.Context, args map[string]interface{}) (string, error) {
	t.logger.Info("Tool called: trash_message", zap.Any("args", args))

	res, err := t.resolveMessage(ctx, args)
	if err != nil {
		return "", err
	}

	result := resolve.Apply(ctx, resolve.OpDelete, res, func(ctx context.Context, targetID string) (*resolve.RemoteItem, error) {
		_, err := t.gmailSvc.TrashMessage(ctx, targetID)
		return nil, err
	})

	return marshalResponse(mailMutationResponse(result, "Message moved to trash"))
}

// handleDeleteMessagePermanently handles the irreversible delete tool call
func (t *AssistantTools) handleDeleteMessagePermanently(ctx context.Context, args map[string]interface{}) (string, error) {
	t.logger.Info("Tool called: delete_message_permanently", zap.Any("args", args))

	messageID := stringArg(args, "message_id")
	if messageID == "" {
		return "", fmt.Errorf("message_id is required")
	}

	res := resolve.Resolution{State: resolve.StateResolved, ID: messageID}
	result := resolve.Apply(ctx, resolve.OpDelete, res, func(ctx context.Context, targetID string) (*resolve.RemoteItem, error) {
		return nil, t.gmailSvc.DeleteMessage(ctx, targetID)
	})

	return marshalResponse(mailMutationResponse(result, "Message permanently deleted"))
}

// handleBatchModifyLabels handles the label modification tool call
func (t *AssistantTools) handleBatchModifyLabels(ctx context.Context, args map[string]interface{}) (string, error) {
	t.logger.Info("Tool called: batch_modify_labels", zap.Any("args", args))

	messageIDs := stringSliceArg(args, "message_ids")
	if len(messageIDs) == 0 {
		return "", fmt.Errorf("message_ids is required and must be non-empty")
	}

	addLabelIDs := stringSliceArg(args, "add_label_ids")
	removeLabelIDs := stringSliceArg(args, "remove_label_ids")
	if len(addLabelIDs) == 0 && len(removeLabelIDs) == 0 {
		return "", fmt.Errorf("at least one of add_label_ids or remove_label_ids is required")
	}

	if err := t.gmailSvc.BatchModifyMessages(ctx, messageIDs, addLabelIDs, removeLabelIDs); err != nil {
		return "", fmt.Errorf("failed to modify labels: %w", err)
	}

	return marshalResponse(map[string]interface{}{
		"success": true,
		"count":   len(messageIDs),
		"message": fmt.Sprintf("Labels updated on %d messages", len(messageIDs)),
	})
}

// draftFromArgs builds the outgoing message shared by create_draft and
// update_draft.
func draftFromArgs(args map[string]interface{}) (google.MimeMessage, error) {
	to := stringSliceArg(args, "to")
	subject := stringArg(args, "subject")
	bodyText := stringArg(args, "body_text")
	if len(to) == 0 || subject == "" || bodyText == "" {
		return google.MimeMessage{}, fmt.Errorf("to, subject and body_text are required")
	}

	return google.MimeMessage{
		To:       to,
		Cc:       stringSliceArg(args, "cc"),
		Bcc:      stringSliceArg(args, "bcc"),
		Subject:  subject,
		BodyText: bodyText,
		BodyHTML: stringArg(args, "body_html"),
	}, nil
}

// handleCreateDraft handles the draft creation tool call
func (t *AssistantTools) handleCreateDraft(ctx context.Context, args map[string]interface{}) (string, error) {
	t.logger.Info("Tool called: create_draft", zap.Any("args", args))

	msg, err := draftFromArgs(args)
	if err != nil {
		return "", err
	}
	raw, err := msg.EncodeRaw()
	if err != nil {
		return "", err
	}

	var draftID, messageID, threadID string
	result := resolve.Apply(ctx, resolve.OpCreate, resolve.Resolution{State: resolve.StateResolved}, func(ctx context.Context, _ string) (*resolve.RemoteItem, error) {
		draft, err := t.gmailSvc.CreateDraft(ctx, raw, "")
		if err != nil {
			return nil, err
		}
		draftID = draft.Id
		if draft.Message != nil {
			messageID = draft.Message.Id
			threadID = draft.Message.ThreadId
		}
		return nil, nil
	})

	resp := mailMutationResponse(result, "Draft created")
	resp.DraftID = draftID
	resp.MessageID = messageID
	resp.ThreadID = threadID
	return marshalResponse(resp)
}

// handleUpdateDraft handles the draft replacement tool call. The draft's
// content is replaced wholesale, not merged.
func (t *AssistantTools) handleUpdateDraft(ctx context.Context, args map[string]interface{}) (string, error) {
	t.logger.Info("Tool called: update_draft", zap.Any("args", args))

	draftID := stringArg(args, "draft_id")
	if draftID == "" {
		return "", fmt.Errorf("draft_id is required")
	}

	msg, err := draftFromArgs(args)
	if err != nil {
		return "", err
	}
	raw, err := msg.EncodeRaw()
	if err != nil {
		return "", err
	}

	res := resolve.Resolution{State: resolve.StateResolved, ID: draftID}
	result := resolve.Apply(ctx, resolve.OpPatch, res, func(ctx context.Context, targetID string) (*resolve.RemoteItem, error) {
		_, err := t.gmailSvc.UpdateDraft(ctx, targetID, raw)
		return nil, err
	})

	resp := mailMutationResponse(result, "Draft updated")
	if result.OK {
		resp.DraftID = draftID
		resp.MessageID = ""
	}
	return marshalResponse(resp)
}

// handleSendDraft handles the draft send tool call
func (t *AssistantTools) handleSendDraft(ctx context.Context, args map[string]interface{}) (string, error) {
	t.logger.Info("Tool called: send_draft", zap.Any("args", args))

	draftID := stringArg(args, "draft_id")
	if draftID == "" {
		return "", fmt.Errorf("draft_id is required")
	}

	var messageID, threadID string
	res := resolve.Resolution{State: resolve.StateResolved, ID: draftID}
	result := resolve.Apply(ctx, resolve.OpSend, res, func(ctx context.Context, targetID string) (*resolve.RemoteItem, error) {
		sent, err := t.gmailSvc.SendDraft(ctx, targetID)
		if err != nil {
			return nil, err
		}
		messageID = sent.Id
		threadID = sent.ThreadId
		return nil, nil
	})

	resp := mailMutationResponse(result, "Draft sent")
	if result.OK {
		resp.DraftID = draftID
		resp.MessageID = messageID
		resp.ThreadID = threadID
	}
	return marshalResponse(resp)
}

// handleCreateReplyDraft handles the threaded reply tool call. The reply
// draft lands on the original message's thread with the threading headers
// mail clients expect.
func (t *AssistantTools) handleCreateReplyDraft(ctx context.Context, args map[string]interface{}) (string, error) {
	t.logger.Info("Tool called: create_reply_draft", zap.Any("args", args))

	originalID := stringArg(args, "original_message_id")
	if originalID == "" {
		return "", fmt.Errorf("original_message_id is required")
	}
	bodyText := stringArg(args, "reply_body_text")
	if bodyText == "" {
		return "", fmt.Errorf("reply_body_text is required")
	}

	var draftID, messageID, threadID string
	res := resolve.Resolution{State: resolve.StateResolved, ID: originalID}
	result := resolve.Apply(ctx, resolve.OpCreate, res, func(ctx context.Context, _ string) (*resolve.RemoteItem, error) {
		original, err := t.gmailSvc.GetMessage(ctx, originalID, "metadata")
		if err != nil {
			return nil, err
		}

		reply := google.NewReply(original, bodyText)
		raw, err := reply.EncodeRaw()
		if err != nil {
			return nil, err
		}

		draft, err := t.gmailSvc.CreateDraft(ctx, raw, original.ThreadId)
		if err != nil {
			return nil, err
		}
		draftID = draft.Id
		threadID = original.ThreadId
		if draft.Message != nil {
			messageID = draft.Message.Id
		}
		return nil, nil
	})

	resp := mailMutationResponse(result, "Reply draft created")
	if result.OK {
		resp.DraftID = draftID
		resp.MessageID = messageID
		resp.ThreadID = threadID
	}
	return marshalResponse(resp)
}
