package resolve

import (
	"context"
	"errors"

	"google.golang.org/api/googleapi"
)

// Operation names the mutation being dispatched.
type Operation string

const (
	OpCreate Operation = "create"
	OpPatch  Operation = "patch"
	OpDelete Operation = "delete"
	OpSend   Operation = "send"
)

// Reason classifies a mutation failure.
type Reason string

const (
	ReasonNotFound  Reason = "not_found"
	ReasonAmbiguous Reason = "ambiguous"
	// ReasonTargetGone means the target vanished between resolve and apply.
	// The race is accepted and surfaced, not masked.
	ReasonTargetGone  Reason = "target_gone"
	ReasonRemoteError Reason = "remote_error"
)

// ApplyFunc performs the single side-effecting remote call against the
// resolved target. For OpCreate targetID is empty. A nil item on success is
// valid for operations with no response body, such as delete.
type ApplyFunc func(ctx context.Context, targetID string) (*RemoteItem, error)

// MutationResult is the envelope returned to the orchestration layer.
type MutationResult struct {
	OK         bool
	ID         string
	Item       *RemoteItem
	Reason     Reason
	Detail     string
	Candidates []RemoteItem
}

// Apply dispatches a mutation against a resolution. A non-resolved
// resolution is propagated as a failure carrying the same reason and
// candidates without calling applyFn; OpCreate is the exception, having no
// target to resolve. The remote call is single-attempt: the remote service
// guarantees no idempotency for creates, so a retry could duplicate side
// effects.
func Apply(ctx context.Context, op Operation, res Resolution, applyFn ApplyFunc) MutationResult {
	if op != OpCreate {
		switch res.State {
		case StateNotFound:
			return MutationResult{Reason: ReasonNotFound, Detail: "no matching items found"}
		case StateAmbiguous:
			return MutationResult{
				Reason:     ReasonAmbiguous,
				Detail:     "ambiguous query: multiple matches",
				Candidates: res.Candidates,
			}
		case StateResolved:
		default:
			return MutationResult{Reason: ReasonRemoteError, Detail: "unresolved target"}
		}
	}

	item, err := applyFn(ctx, res.ID)
	if err != nil {
		return MutationResult{ID: res.ID, Reason: classifyRemoteError(err), Detail: err.Error()}
	}

	result := MutationResult{OK: true, ID: res.ID, Item: item}
	if item != nil {
		result.ID = item.ID
	}
	return result
}

// classifyRemoteError distinguishes a vanished target from a generic remote
// failure.
func classifyRemoteError(err error) Reason {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		if apiErr.Code == 404 || apiErr.Code == 410 {
			return ReasonTargetGone
		}
	}
	return ReasonRemoteError
}
