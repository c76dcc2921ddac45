package resolve

import (
	"context"
	"errors"
	"fmt"

	"github.com/stellabot/stella/window"
)

// ErrMissingDisambiguator indicates the caller supplied neither a direct
// identifier nor the full query-plus-window combination required to resolve
// one. It is a caller protocol error, distinct from a query with no matches.
var ErrMissingDisambiguator = errors.New("must provide an id, or a query with a date window")

// disambiguationCap bounds the list call issued while disambiguating,
// independent of any caller-supplied max.
const disambiguationCap = 10

// Querier is the item-fetching strategy the resolver is parameterized over.
// Implementations exist for calendar events and for mail messages.
type Querier interface {
	Query(ctx context.Context, freeText string, w window.Window, max int64) ([]RemoteItem, error)
}

// State classifies a resolution outcome.
type State string

const (
	StateResolved  State = "resolved"
	StateNotFound  State = "not_found"
	StateAmbiguous State = "ambiguous"
)

// Resolution is the outcome of mapping a partial reference to a target.
// Candidates is populated only for StateAmbiguous, in the order the remote
// service returned them.
type Resolution struct {
	State      State
	ID         string
	Candidates []RemoteItem
}

// Resolve maps a direct identifier or a (freeText, window) pair to at most
// one target. A direct id short-circuits without touching the remote
// service; stale ids surface only at mutation time. With a query, zero
// matches yield StateNotFound, one yields StateResolved, and two or more
// yield StateAmbiguous with every candidate preserved. The resolver never
// guesses among multiple matches.
func Resolve(ctx context.Context, q Querier, directID, freeText string, w *window.Window) (Resolution, error) {
	if directID != "" {
		return Resolution{State: StateResolved, ID: directID}, nil
	}

	if freeText == "" || w == nil {
		return Resolution{}, ErrMissingDisambiguator
	}

	items, err := q.Query(ctx, freeText, *w, disambiguationCap)
	if err != nil {
		return Resolution{}, fmt.Errorf("disambiguation query failed: %w", err)
	}

	switch len(items) {
	case 0:
		return Resolution{State: StateNotFound}, nil
	case 1:
		return Resolution{State: StateResolved, ID: items[0].ID}, nil
	default:
		return Resolution{State: StateAmbiguous, Candidates: items}, nil
	}
}
