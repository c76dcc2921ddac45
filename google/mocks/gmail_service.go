package mocks

import (
	"context"
	"sync"

	"google.golang.org/api/gmail/v1"

	"github.com/stellabot/stella/google"
)

// FakeGmailService is a call-recording test double for google.GmailService.
type FakeGmailService struct {
	ListMessagesStub        func(ctx context.Context, query string, labelIDs []string, maxResults int64) (*gmail.ListMessagesResponse, error)
	listMessagesMutex       sync.RWMutex
	listMessagesArgsForCall []struct {
		ctx        context.Context
		query      string
		labelIDs   []string
		maxResults int64
	}
	listMessagesReturns struct {
		result1 *gmail.ListMessagesResponse
		result2 error
	}
	listMessagesReturnsOnCall map[int]struct {
		result1 *gmail.ListMessagesResponse
		result2 error
	}

	GetMessageStub        func(ctx context.Context, messageID, format string) (*gmail.Message, error)
	getMessageMutex       sync.RWMutex
	getMessageArgsForCall []struct {
		ctx       context.Context
		messageID string
		format    string
	}
	getMessageReturns struct {
		result1 *gmail.Message
		result2 error
	}
	getMessageReturnsOnCall map[int]struct {
		result1 *gmail.Message
		result2 error
	}

	TrashMessageStub        func(ctx context.Context, messageID string) (*gmail.Message, error)
	trashMessageMutex       sync.RWMutex
	trashMessageArgsForCall []struct {
		ctx       context.Context
		messageID string
	}
	trashMessageReturns struct {
		result1 *gmail.Message
		result2 error
	}
	trashMessageReturnsOnCall map[int]struct {
		result1 *gmail.Message
		result2 error
	}

	DeleteMessageStub        func(ctx context.Context, messageID string) error
	deleteMessageMutex       sync.RWMutex
	deleteMessageArgsForCall []struct {
		ctx       context.Context
		messageID string
	}
	deleteMessageReturns struct {
		result1 error
	}
	deleteMessageReturnsOnCall map[int]struct {
		result1 error
	}

	BatchModifyMessagesStub        func(ctx context.Context, messageIDs, addLabelIDs, removeLabelIDs []string) error
	batchModifyMessagesMutex       sync.RWMutex
	batchModifyMessagesArgsForCall []struct {
		ctx            context.Context
		messageIDs     []string
		addLabelIDs    []string
		removeLabelIDs []string
	}
	batchModifyMessagesReturns struct {
		result1 error
	}
	batchModifyMessagesReturnsOnCall map[int]struct {
		result1 error
	}

	CreateDraftStub        func(ctx context.Context, raw, threadID string) (*gmail.Draft, error)
	createDraftMutex       sync.RWMutex
	createDraftArgsForCall []struct {
		ctx      context.Context
		raw      string
		threadID string
	}
	createDraftReturns struct {
		result1 *gmail.Draft
		result2 error
	}
	createDraftReturnsOnCall map[int]struct {
		result1 *gmail.Draft
		result2 error
	}

	UpdateDraftStub        func(ctx context.Context, draftID, raw string) (*gmail.Draft, error)
	updateDraftMutex       sync.RWMutex
	updateDraftArgsForCall []struct {
		ctx     context.Context
		draftID string
		raw     string
	}
	updateDraftReturns struct {
		result1 *gmail.Draft
		result2 error
	}
	updateDraftReturnsOnCall map[int]struct {
		result1 *gmail.Draft
		result2 error
	}

	SendDraftStub        func(ctx context.Context, draftID string) (*gmail.Message, error)
	sendDraftMutex       sync.RWMutex
	sendDraftArgsForCall []struct {
		ctx     context.Context
		draftID string
	}
	sendDraftReturns struct {
		result1 *gmail.Message
		result2 error
	}
	sendDraftReturnsOnCall map[int]struct {
		result1 *gmail.Message
		result2 error
	}
}

func (f *FakeGmailService) ListMessages(ctx context.Context, query string, labelIDs []string, maxResults int64) (*gmail.ListMessagesResponse, error) {
	f.listMessagesMutex.Lock()
	f.listMessagesArgsForCall = append(f.listMessagesArgsForCall, struct {
		ctx        context.Context
		query      string
		labelIDs   []string
		maxResults int64
	}{ctx, query, labelIDs, maxResults})
	callIndex := len(f.listMessagesArgsForCall) - 1
	stub := f.ListMessagesStub
	onCall, hasOnCall := f.listMessagesReturnsOnCall[callIndex]
	returns := f.listMessagesReturns
	f.listMessagesMutex.Unlock()
	if stub != nil {
		return stub(ctx, query, labelIDs, maxResults)
	}
	if hasOnCall {
		return onCall.result1, onCall.result2
	}
	return returns.result1, returns.result2
}

func (f *FakeGmailService) ListMessagesCallCount() int {
	f.listMessagesMutex.RLock()
	defer f.listMessagesMutex.RUnlock()
	return len(f.listMessagesArgsForCall)
}

func (f *FakeGmailService) ListMessagesArgsForCall(i int) (context.Context, string, []string, int64) {
	f.listMessagesMutex.RLock()
	defer f.listMessagesMutex.RUnlock()
	args := f.listMessagesArgsForCall[i]
	return args.ctx, args.query, args.labelIDs, args.maxResults
}

func (f *FakeGmailService) ListMessagesReturns(result1 *gmail.ListMessagesResponse, result2 error) {
	f.listMessagesMutex.Lock()
	defer f.listMessagesMutex.Unlock()
	f.listMessagesReturns = struct {
		result1 *gmail.ListMessagesResponse
		result2 error
	}{result1, result2}
}

func (f *FakeGmailService) ListMessagesReturnsOnCall(i int, result1 *gmail.ListMessagesResponse, result2 error) {
	f.listMessagesMutex.Lock()
	defer f.listMessagesMutex.Unlock()
	if f.listMessagesReturnsOnCall == nil {
		f.listMessagesReturnsOnCall = map[int]struct {
			result1 *gmail.ListMessagesResponse
			result2 error
		}{}
	}
	f.listMessagesReturnsOnCall[i] = struct {
		result1 *gmail.ListMessagesResponse
		result2 error
	}{result1, result2}
}

func (f *FakeGmailService) GetMessage(ctx context.Context, messageID, format string) (*gmail.Message, error) {
	f.getMessageMutex.Lock()
	f.getMessageArgsForCall = append(f.getMessageArgsForCall, struct {
		ctx       context.Context
		messageID string
		format    string
	}{ctx, messageID, format})
	callIndex := len(f.getMessageArgsForCall) - 1
	stub := f.GetMessageStub
	onCall, hasOnCall := f.getMessageReturnsOnCall[callIndex]
	returns := f.getMessageReturns
	f.getMessageMutex.Unlock()
	if stub != nil {
		return stub(ctx, messageID, format)
	}
	if hasOnCall {
		return onCall.result1, onCall.result2
	}
	return returns.result1, returns.result2
}

func (f *FakeGmailService) GetMessageCallCount() int {
	f.getMessageMutex.RLock()
	defer f.getMessageMutex.RUnlock()
	return len(f.getMessageArgsForCall)
}

func (f *FakeGmailService) GetMessageArgsForCall(i int) (context.Context, string, string) {
	f.getMessageMutex.RLock()
	defer f.getMessageMutex.RUnlock()
	args := f.getMessageArgsForCall[i]
	return args.ctx, args.messageID, args.format
}

func (f *FakeGmailService) GetMessageReturns(result1 *gmail.Message, result2 error) {
	f.getMessageMutex.Lock()
	defer f.getMessageMutex.Unlock()
	f.getMessageReturns = struct {
		result1 *gmail.Message
		result2 error
	}{result1, result2}
}

func (f *FakeGmailService) GetMessageReturnsOnCall(i int, result1 *gmail.Message, result2 error) {
	f.getMessageMutex.Lock()
	defer f.getMessageMutex.Unlock()
	if f.getMessageReturnsOnCall == nil {
		f.getMessageReturnsOnCall = map[int]struct {
			result1 *gmail.Message
			result2 error
		}{}
	}
	f.getMessageReturnsOnCall[i] = struct {
		result1 *gmail.Message
		result2 error
	}{result1, result2}
}

func (f *FakeGmailService) TrashMessage(ctx context.Context, messageID string) (*gmail.Message, error) {
	f.trashMessageMutex.Lock()
	f.trashMessageArgsForCall = append(f.trashMessageArgsForCall, struct {
		ctx       context.Context
		messageID string
	}{ctx, messageID})
	callIndex := len(f.trashMessageArgsForCall) - 1
	stub := f.TrashMessageStub
	onCall, hasOnCall := f.trashMessageReturnsOnCall[callIndex]
	returns := f.trashMessageReturns
	f.trashMessageMutex.Unlock()
	if stub != nil {
		return stub(ctx, messageID)
	}
	if hasOnCall {
		return onCall.result1, onCall.result2
	}
	return returns.result1, returns.result2
}

func (f *FakeGmailService) TrashMessageCallCount() int {
	f.trashMessageMutex.RLock()
	defer f.trashMessageMutex.RUnlock()
	return len(f.trashMessageArgsForCall)
}

func (f *FakeGmailService) TrashMessageArgsForCall(i int) (context.Context, string) {
	f.trashMessageMutex.RLock()
	defer f.trashMessageMutex.RUnlock()
	args := f.trashMessageArgsForCall[i]
	return args.ctx, args.messageID
}

func (f *FakeGmailService) TrashMessageReturns(result1 *gmail.Message, result2 error) {
	f.trashMessageMutex.Lock()
	defer f.trashMessageMutex.Unlock()
	f.trashMessageReturns = struct {
		result1 *gmail.Message
		result2 error
	}{result1, result2}
}

func (f *FakeGmailService) TrashMessageReturnsOnCall(i int, result1 *gmail.Message, result2 error) {
	f.trashMessageMutex.Lock()
	defer f.trashMessageMutex.Unlock()
	if f.trashMessageReturnsOnCall == nil {
		f.trashMessageReturnsOnCall = map[int]struct {
			result1 *gmail.Message
			result2 error
		}{}
	}
	f.trashMessageReturnsOnCall[i] = struct {
		result1 *gmail.Message
		result2 error
	}{result1, result2}
}

func (f *FakeGmailService) DeleteMessage(ctx context.Context, messageID string) error {
	f.deleteMessageMutex.Lock()
	f.deleteMessageArgsForCall = append(f.deleteMessageArgsForCall, struct {
		ctx       context.Context
		messageID string
	}{ctx, messageID})
	callIndex := len(f.deleteMessageArgsForCall) - 1
	stub := f.DeleteMessageStub
	onCall, hasOnCall := f.deleteMessageReturnsOnCall[callIndex]
	returns := f.deleteMessageReturns
	f.deleteMessageMutex.Unlock()
	if stub != nil {
		return stub(ctx, messageID)
	}
	if hasOnCall {
		return onCall.result1
	}
	return returns.result1
}

func (f *FakeGmailService) DeleteMessageCallCount() int {
	f.deleteMessageMutex.RLock()
	defer f.deleteMessageMutex.RUnlock()
	return len(f.deleteMessageArgsForCall)
}

func (f *FakeGmailService) DeleteMessageArgsForCall(i int) (context.Context, string) {
	f.deleteMessageMutex.RLock()
	defer f.deleteMessageMutex.RUnlock()
	args := f.deleteMessageArgsForCall[i]
	return args.ctx, args.messageID
}

func (f *FakeGmailService) DeleteMessageReturns(result1 error) {
	f.deleteMessageMutex.Lock()
	defer f.deleteMessageMutex.Unlock()
	f.deleteMessageReturns = struct {
		result1 error
	}{result1}
}

func (f *FakeGmailService) DeleteMessageReturnsOnCall(i int, result1 error) {
	f.deleteMessageMutex.Lock()
	defer f.deleteMessageMutex.Unlock()
	if f.deleteMessageReturnsOnCall == nil {
		f.deleteMessageReturnsOnCall = map[int]struct {
			result1 error
		}{}
	}
	f.deleteMessageReturnsOnCall[i] = struct {
		result1 error
	}{result1}
}

func (f *FakeGmailService) BatchModifyMessages(ctx context.Context, messageIDs, addLabelIDs, removeLabelIDs []string) error {
	f.batchModifyMessagesMutex.Lock()
	f.batchModifyMessagesArgsForCall = append(f.batchModifyMessagesArgsForCall, struct {
		ctx            context.Context
		messageIDs     []string
		addLabelIDs    []string
		removeLabelIDs []string
	}{ctx, messageIDs, addLabelIDs, removeLabelIDs})
	callIndex := len(f.batchModifyMessagesArgsForCall) - 1
	stub := f.BatchModifyMessagesStub
	onCall, hasOnCall := f.batchModifyMessagesReturnsOnCall[callIndex]
	returns := f.batchModifyMessagesReturns
	f.batchModifyMessagesMutex.Unlock()
	if stub != nil {
		return stub(ctx, messageIDs, addLabelIDs, removeLabelIDs)
	}
	if hasOnCall {
		return onCall.result1
	}
	return returns.result1
}

func (f *FakeGmailService) BatchModifyMessagesCallCount() int {
	f.batchModifyMessagesMutex.RLock()
	defer f.batchModifyMessagesMutex.RUnlock()
	return len(f.batchModifyMessagesArgsForCall)
}

func (f *FakeGmailService) BatchModifyMessagesArgsForCall(i int) (context.Context, []string, []string, []string) {
	f.batchModifyMessagesMutex.RLock()
	defer f.batchModifyMessagesMutex.RUnlock()
	args := f.batchModifyMessagesArgsForCall[i]
	return args.ctx, args.messageIDs, args.addLabelIDs, args.removeLabelIDs
}

func (f *FakeGmailService) BatchModifyMessagesReturns(result1 error) {
	f.batchModifyMessagesMutex.Lock()
	defer f.batchModifyMessagesMutex.Unlock()
	f.batchModifyMessagesReturns = struct {
		result1 error
	}{result1}
}

func (f *FakeGmailService) BatchModifyMessagesReturnsOnCall(i int, result1 error) {
	f.batchModifyMessagesMutex.Lock()
	defer f.batchModifyMessagesMutex.Unlock()
	if f.batchModifyMessagesReturnsOnCall == nil {
		f.batchModifyMessagesReturnsOnCall = map[int]struct {
			result1 error
		}{}
	}
	f.batchModifyMessagesReturnsOnCall[i] = struct {
		result1 error
	}{result1}
}

func (f *FakeGmailService) CreateDraft(ctx context.Context, raw, threadID string) (*gmail.Draft, error) {
	f.createDraftMutex.Lock()
	f.createDraftArgsForCall = append(f.createDraftArgsForCall, struct {
		ctx      context.Context
		raw      string
		threadID string
	}{ctx, raw, threadID})
	callIndex := len(f.createDraftArgsForCall) - 1
	stub := f.CreateDraftStub
	onCall, hasOnCall := f.createDraftReturnsOnCall[callIndex]
	returns := f.createDraftReturns
	f.createDraftMutex.Unlock()
	if stub != nil {
		return stub(ctx, raw, threadID)
	}
	if hasOnCall {
		return onCall.result1, onCall.result2
	}
	return returns.result1, returns.result2
}

func (f *FakeGmailService) CreateDraftCallCount() int {
	f.createDraftMutex.RLock()
	defer f.createDraftMutex.RUnlock()
	return len(f.createDraftArgsForCall)
}

func (f *FakeGmailService) CreateDraftArgsForCall(i int) (context.Context, string, string) {
	f.createDraftMutex.RLock()
	defer f.createDraftMutex.RUnlock()
	args := f.createDraftArgsForCall[i]
	return args.ctx, args.raw, args.threadID
}

func (f *FakeGmailService) CreateDraftReturns(result1 *gmail.Draft, result2 error) {
	f.createDraftMutex.Lock()
	defer f.createDraftMutex.Unlock()
	f.createDraftReturns = struct {
		result1 *gmail.Draft
		result2 error
	}{result1, result2}
}

func (f *FakeGmailService) CreateDraftReturnsOnCall(i int, result1 *gmail.Draft, result2 error) {
	f.createDraftMutex.Lock()
	defer f.createDraftMutex.Unlock()
	if f.createDraftReturnsOnCall == nil {
		f.createDraftReturnsOnCall = map[int]struct {
			result1 *gmail.Draft
			result2 error
		}{}
	}
	f.createDraftReturnsOnCall[i] = struct {
		result1 *gmail.Draft
		result2 error
	}{result1, result2}
}

func (f *FakeGmailService) UpdateDraft(ctx context.Context, draftID, raw string) (*gmail.Draft, error) {
	f.updateDraftMutex.Lock()
	f.updateDraftArgsForCall = append(f.updateDraftArgsForCall, struct {
		ctx     context.Context
		draftID string
		raw     string
	}{ctx, draftID, raw})
	callIndex := len(f.updateDraftArgsForCall) - 1
	stub := f.UpdateDraftStub
	onCall, hasOnCall := f.updateDraftReturnsOnCall[callIndex]
	returns := f.updateDraftReturns
	f.updateDraftMutex.Unlock()
	if stub != nil {
		return stub(ctx, draftID, raw)
	}
	if hasOnCall {
		return onCall.result1, onCall.result2
	}
	return returns.result1, returns.result2
}

func (f *FakeGmailService) UpdateDraftCallCount() int {
	f.updateDraftMutex.RLock()
	defer f.updateDraftMutex.RUnlock()
	return len(f.updateDraftArgsForCall)
}

func (f *FakeGmailService) UpdateDraftArgsForCall(i int) (context.Context, string, string) {
	f.updateDraftMutex.RLock()
	defer f.updateDraftMutex.RUnlock()
	args := f.updateDraftArgsForCall[i]
	return args.ctx, args.draftID, args.raw
}

func (f *FakeGmailService) UpdateDraftReturns(result1 *gmail.Draft, result2 error) {
	f.updateDraftMutex.Lock()
	defer f.updateDraftMutex.Unlock()
	f.updateDraftReturns = struct {
		result1 *gmail.Draft
		result2 error
	}{result1, result2}
}

func (f *FakeGmailService) UpdateDraftReturnsOnCall(i int, result1 *gmail.Draft, result2 error) {
	f.updateDraftMutex.Lock()
	defer f.updateDraftMutex.Unlock()
	if f.updateDraftReturnsOnCall == nil {
		f.updateDraftReturnsOnCall = map[int]struct {
			result1 *gmail.Draft
			result2 error
		}{}
	}
	f.updateDraftReturnsOnCall[i] = struct {
		result1 *gmail.Draft
		result2 error
	}{result1, result2}
}

func (f *FakeGmailService) SendDraft(ctx context.Context, draftID string) (*gmail.Message, error) {
	f.sendDraftMutex.Lock()
	f.sendDraftArgsForCall = append(f.sendDraftArgsForCall, struct {
		ctx     context.Context
		draftID string
	}{ctx, draftID})
	callIndex := len(f.sendDraftArgsForCall) - 1
	stub := f.SendDraftStub
	onCall, hasOnCall := f.sendDraftReturnsOnCall[callIndex]
	returns := f.sendDraftReturns
	f.sendDraftMutex.Unlock()
	if stub != nil {
		return stub(ctx, draftID)
	}
	if hasOnCall {
		return onCall.result1, onCall.result2
	}
	return returns.result1, returns.result2
}

func (f *FakeGmailService) SendDraftCallCount() int {
	f.sendDraftMutex.RLock()
	defer f.sendDraftMutex.RUnlock()
	return len(f.sendDraftArgsForCall)
}

func (f *FakeGmailService) SendDraftArgsForCall(i int) (context.Context, string) {
	f.sendDraftMutex.RLock()
	defer f.sendDraftMutex.RUnlock()
	args := f.sendDraftArgsForCall[i]
	return args.ctx, args.draftID
}

func (f *FakeGmailService) SendDraftReturns(result1 *gmail.Message, result2 error) {
	f.sendDraftMutex.Lock()
	defer f.sendDraftMutex.Unlock()
	f.sendDraftReturns = struct {
		result1 *gmail.Message
		result2 error
	}{result1, result2}
}

func (f *FakeGmailService) SendDraftReturnsOnCall(i int, result1 *gmail.Message, result2 error) {
	f.sendDraftMutex.Lock()
	defer f.sendDraftMutex.Unlock()
	if f.sendDraftReturnsOnCall == nil {
		f.sendDraftReturnsOnCall = map[int]struct {
			result1 *gmail.Message
			result2 error
		}{}
	}
	f.sendDraftReturnsOnCall[i] = struct {
		result1 *gmail.Message
		result2 error
	}{result1, result2}
}

var _ google.GmailService = new(FakeGmailService)
