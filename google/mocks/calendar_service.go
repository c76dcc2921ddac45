package mocks

import (
	"context"
	"sync"
	"time"

	"google.golang.org/api/calendar/v3"

	"github.com/stellabot/stella/google"
)

// FakeCalendarService is a call-recording test double for
// google.CalendarService.
type FakeCalendarService struct {
	ListEventsStub        func(ctx context.Context, calendarID, query string, timeMin, timeMax time.Time, maxResults int64) ([]*calendar.Event, error)
	listEventsMutex       sync.RWMutex
	listEventsArgsForCall []struct {
		ctx        context.Context
		calendarID string
		query      string
		timeMin    time.Time
		timeMax    time.Time
		maxResults int64
	}
	listEventsReturns struct {
		result1 []*calendar.Event
		result2 error
	}
	listEventsReturnsOnCall map[int]struct {
		result1 []*calendar.Event
		result2 error
	}

	InsertEventStub        func(ctx context.Context, calendarID string, event *calendar.Event) (*calendar.Event, error)
	insertEventMutex       sync.RWMutex
	insertEventArgsForCall []struct {
		ctx        context.Context
		calendarID string
		event      *calendar.Event
	}
	insertEventReturns struct {
		result1 *calendar.Event
		result2 error
	}
	insertEventReturnsOnCall map[int]struct {
		result1 *calendar.Event
		result2 error
	}

	PatchEventStub        func(ctx context.Context, calendarID, eventID string, patch *calendar.Event) (*calendar.Event, error)
	patchEventMutex       sync.RWMutex
	patchEventArgsForCall []struct {
		ctx        context.Context
		calendarID string
		eventID    string
		patch      *calendar.Event
	}
	patchEventReturns struct {
		result1 *calendar.Event
		result2 error
	}
	patchEventReturnsOnCall map[int]struct {
		result1 *calendar.Event
		result2 error
	}

	DeleteEventStub        func(ctx context.Context, calendarID, eventID string) error
	deleteEventMutex       sync.RWMutex
	deleteEventArgsForCall []struct {
		ctx        context.Context
		calendarID string
		eventID    string
	}
	deleteEventReturns struct {
		result1 error
	}
	deleteEventReturnsOnCall map[int]struct {
		result1 error
	}
}

func (f *FakeCalendarService) ListEvents(ctx context.Context, calendarID, query string, timeMin, timeMax time.Time, maxResults int64) ([]*calendar.Event, error) {
	f.listEventsMutex.Lock()
	f.listEventsArgsForCall = append(f.listEventsArgsForCall, struct {
		ctx        context.Context
		calendarID string
		query      string
		timeMin    time.Time
		timeMax    time.Time
		maxResults int64
	}{ctx, calendarID, query, timeMin, timeMax, maxResults})
	callIndex := len(f.listEventsArgsForCall) - 1
	stub := f.ListEventsStub
	onCall, hasOnCall := f.listEventsReturnsOnCall[callIndex]
	returns := f.listEventsReturns
	f.listEventsMutex.Unlock()
	if stub != nil {
		return stub(ctx, calendarID, query, timeMin, timeMax, maxResults)
	}
	if hasOnCall {
		return onCall.result1, onCall.result2
	}
	return returns.result1, returns.result2
}

func (f *FakeCalendarService) ListEventsCallCount() int {
	f.listEventsMutex.RLock()
	defer f.listEventsMutex.RUnlock()
	return len(f.listEventsArgsForCall)
}

func (f *FakeCalendarService) ListEventsArgsForCall(i int) (context.Context, string, string, time.Time, time.Time, int64) {
	f.listEventsMutex.RLock()
	defer f.listEventsMutex.RUnlock()
	args := f.listEventsArgsForCall[i]
	return args.ctx, args.calendarID, args.query, args.timeMin, args.timeMax, args.maxResults
}

func (f *FakeCalendarService) ListEventsReturns(result1 []*calendar.Event, result2 error) {
	f.listEventsMutex.Lock()
	defer f.listEventsMutex.Unlock()
	f.listEventsReturns = struct {
		result1 []*calendar.Event
		result2 error
	}{result1, result2}
}

func (f *FakeCalendarService) ListEventsReturnsOnCall(i int, result1 []*calendar.Event, result2 error) {
	f.listEventsMutex.Lock()
	defer f.listEventsMutex.Unlock()
	if f.listEventsReturnsOnCall == nil {
		f.listEventsReturnsOnCall = map[int]struct {
			result1 []*calendar.Event
			result2 error
		}{}
	}
	f.listEventsReturnsOnCall[i] = struct {
		result1 []*calendar.Event
		result2 error
	}{result1, result2}
}

func (f *FakeCalendarService) InsertEvent(ctx context.Context, calendarID string, event *calendar.Event) (*calendar.Event, error) {
	f.insertEventMutex.Lock()
	f.insertEventArgsForCall = append(f.insertEventArgsForCall, struct {
		ctx        context.Context
		calendarID string
		event      *calendar.Event
	}{ctx, calendarID, event})
	callIndex := len(f.insertEventArgsForCall) - 1
	stub := f.InsertEventStub
	onCall, hasOnCall := f.insertEventReturnsOnCall[callIndex]
	returns := f.insertEventReturns
	f.insertEventMutex.Unlock()
	if stub != nil {
		return stub(ctx, calendarID, event)
	}
	if hasOnCall {
		return onCall.result1, onCall.result2
	}
	return returns.result1, returns.result2
}

func (f *FakeCalendarService) InsertEventCallCount() int {
	f.insertEventMutex.RLock()
	defer f.insertEventMutex.RUnlock()
	return len(f.insertEventArgsForCall)
}

func (f *FakeCalendarService) InsertEventArgsForCall(i int) (context.Context, string, *calendar.Event) {
	f.insertEventMutex.RLock()
	defer f.insertEventMutex.RUnlock()
	args := f.insertEventArgsForCall[i]
	return args.ctx, args.calendarID, args.event
}

func (f *FakeCalendarService) InsertEventReturns(result1 *calendar.Event, result2 error) {
	f.insertEventMutex.Lock()
	defer f.insertEventMutex.Unlock()
	f.insertEventReturns = struct {
		result1 *calendar.Event
		result2 error
	}{result1, result2}
}

func (f *FakeCalendarService) InsertEventReturnsOnCall(i int, result1 *calendar.Event, result2 error) {
	f.insertEventMutex.Lock()
	defer f.insertEventMutex.Unlock()
	if f.insertEventReturnsOnCall == nil {
		f.insertEventReturnsOnCall = map[int]struct {
			result1 *calendar.Event
			result2 error
		}{}
	}
	f.insertEventReturnsOnCall[i] = struct {
		result1 *calendar.Event
		result2 error
	}{result1, result2}
}

func (f *FakeCalendarService) PatchEvent(ctx context.Context, calendarID, eventID string, patch *calendar.Event) (*calendar.Event, error) {
	f.patchEventMutex.Lock()
	f.patchEventArgsForCall = append(f.patchEventArgsForCall, struct {
		ctx        context.Context
		calendarID string
		eventID    string
		patch      *calendar.Event
	}{ctx, calendarID, eventID, patch})
	callIndex := len(f.patchEventArgsForCall) - 1
	stub := f.PatchEventStub
	onCall, hasOnCall := f.patchEventReturnsOnCall[callIndex]
	returns := f.patchEventReturns
	f.patchEventMutex.Unlock()
	if stub != nil {
		return stub(ctx, calendarID, eventID, patch)
	}
	if hasOnCall {
		return onCall.result1, onCall.result2
	}
	return returns.result1, returns.result2
}

func (f *FakeCalendarService) PatchEventCallCount() int {
	f.patchEventMutex.RLock()
	defer f.patchEventMutex.RUnlock()
	return len(f.patchEventArgsForCall)
}

func (f *FakeCalendarService) PatchEventArgsForCall(i int) (context.Context, string, string, *calendar.Event) {
	f.patchEventMutex.RLock()
	defer f.patchEventMutex.RUnlock()
	args := f.patchEventArgsForCall[i]
	return args.ctx, args.calendarID, args.eventID, args.patch
}

func (f *FakeCalendarService) PatchEventReturns(result1 *calendar.Event, result2 error) {
	f.patchEventMutex.Lock()
	defer f.patchEventMutex.Unlock()
	f.patchEventReturns = struct {
		result1 *calendar.Event
		result2 error
	}{result1, result2}
}

func (f *FakeCalendarService) PatchEventReturnsOnCall(i int, result1 *calendar.Event, result2 error) {
	f.patchEventMutex.Lock()
	defer f.patchEventMutex.Unlock()
	if f.patchEventReturnsOnCall == nil {
		f.patchEventReturnsOnCall = map[int]struct {
			result1 *calendar.Event
			result2 error
		}{}
	}
	f.patchEventReturnsOnCall[i] = struct {
		result1 *calendar.Event
		result2 error
	}{result1, result2}
}

func (f *FakeCalendarService) DeleteEvent(ctx context.Context, calendarID, eventID string) error {
	f.deleteEventMutex.Lock()
	f.deleteEventArgsForCall = append(f.deleteEventArgsForCall, struct {
		ctx        context.Context
		calendarID string
		eventID    string
	}{ctx, calendarID, eventID})
	callIndex := len(f.deleteEventArgsForCall) - 1
	stub := f.DeleteEventStub
	onCall, hasOnCall := f.deleteEventReturnsOnCall[callIndex]
	returns := f.deleteEventReturns
	f.deleteEventMutex.Unlock()
	if stub != nil {
		return stub(ctx, calendarID, eventID)
	}
	if hasOnCall {
		return onCall.result1
	}
	return returns.result1
}

func (f *FakeCalendarService) DeleteEventCallCount() int {
	f.deleteEventMutex.RLock()
	defer f.deleteEventMutex.RUnlock()
	return len(f.deleteEventArgsForCall)
}

func (f *FakeCalendarService) DeleteEventArgsForCall(i int) (context.Context, string, string) {
	f.deleteEventMutex.RLock()
	defer f.deleteEventMutex.RUnlock()
	args := f.deleteEventArgsForCall[i]
	return args.ctx, args.calendarID, args.eventID
}

func (f *FakeCalendarService) DeleteEventReturns(result1 error) {
	f.deleteEventMutex.Lock()
	defer f.deleteEventMutex.Unlock()
	f.deleteEventReturns = struct {
		result1 error
	}{result1}
}

func (f *FakeCalendarService) DeleteEventReturnsOnCall(i int, result1 error) {
	f.deleteEventMutex.Lock()
	defer f.deleteEventMutex.Unlock()
	if f.deleteEventReturnsOnCall == nil {
		f.deleteEventReturnsOnCall = map[int]struct {
			result1 error
		}{}
	}
	f.deleteEventReturnsOnCall[i] = struct {
		result1 error
	}{result1}
}

var _ google.CalendarService = new(FakeCalendarService)
