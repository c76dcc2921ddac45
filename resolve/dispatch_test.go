package resolve_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/googleapi"

	"github.com/stellabot/stella/resolve"
)

func TestApplyPropagatesNonResolvedWithoutCalling(t *testing.T) {
	candidates := []resolve.RemoteItem{
		{ID: "evt-1", Title: "Dentist"},
		{ID: "evt-2", Title: "Dentist follow-up"},
		{ID: "evt-3", Title: "Dentist reminder"},
	}

	testCases := []struct {
		name           string
		resolution     resolve.Resolution
		expectedReason resolve.Reason
	}{
		{
			name:           "not found",
			resolution:     resolve.Resolution{State: resolve.StateNotFound},
			expectedReason: resolve.ReasonNotFound,
		},
		{
			name:           "ambiguous carries all candidates",
			resolution:     resolve.Resolution{State: resolve.StateAmbiguous, Candidates: candidates},
			expectedReason: resolve.ReasonAmbiguous,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			applyCalls := 0
			applyFn := func(ctx context.Context, targetID string) (*resolve.RemoteItem, error) {
				applyCalls++
				return nil, nil
			}

			result := resolve.Apply(context.Background(), resolve.OpDelete, tc.resolution, applyFn)

			assert.False(t, result.OK)
			assert.Equal(t, tc.expectedReason, result.Reason)
			assert.Equal(t, 0, applyCalls, "a non-resolved target must never reach the remote service")

			if tc.expectedReason == resolve.ReasonAmbiguous {
				require.Len(t, result.Candidates, len(candidates))
				for i, c := range candidates {
					assert.Equal(t, c.ID, result.Candidates[i].ID)
				}
			}
		})
	}
}

func TestApplyResolvedCallsOnce(t *testing.T) {
	applyCalls := 0
	var gotTarget string
	applyFn := func(ctx context.Context, targetID string) (*resolve.RemoteItem, error) {
		applyCalls++
		gotTarget = targetID
		return &resolve.RemoteItem{ID: targetID, Title: "Dentist"}, nil
	}

	res := resolve.Resolution{State: resolve.StateResolved, ID: "evt-42"}
	result := resolve.Apply(context.Background(), resolve.OpPatch, res, applyFn)

	assert.True(t, result.OK)
	assert.Equal(t, "evt-42", result.ID)
	assert.Equal(t, "evt-42", gotTarget)
	assert.Equal(t, 1, applyCalls)
	require.NotNil(t, result.Item)
	assert.Equal(t, "Dentist", result.Item.Title)
}

func TestApplyCreateIgnoresResolution(t *testing.T) {
	applyCalls := 0
	applyFn := func(ctx context.Context, targetID string) (*resolve.RemoteItem, error) {
		applyCalls++
		assert.Empty(t, targetID)
		return &resolve.RemoteItem{ID: "evt-new"}, nil
	}

	result := resolve.Apply(context.Background(), resolve.OpCreate, resolve.Resolution{}, applyFn)

	assert.True(t, result.OK)
	assert.Equal(t, "evt-new", result.ID)
	assert.Equal(t, 1, applyCalls)
}

func TestApplyDeleteWithNilItem(t *testing.T) {
	applyFn := func(ctx context.Context, targetID string) (*resolve.RemoteItem, error) {
		return nil, nil
	}

	res := resolve.Resolution{State: resolve.StateResolved, ID: "evt-7"}
	result := resolve.Apply(context.Background(), resolve.OpDelete, res, applyFn)

	assert.True(t, result.OK)
	assert.Equal(t, "evt-7", result.ID)
	assert.Nil(t, result.Item)
}

func TestApplyClassifiesRemoteErrors(t *testing.T) {
	testCases := []struct {
		name           string
		err            error
		expectedReason resolve.Reason
	}{
		{
			name:           "404 means the target vanished",
			err:            &googleapi.Error{Code: 404, Message: "Not Found"},
			expectedReason: resolve.ReasonTargetGone,
		},
		{
			name:           "410 means the target vanished",
			err:            &googleapi.Error{Code: 410, Message: "Gone"},
			expectedReason: resolve.ReasonTargetGone,
		},
		{
			name:           "wrapped 404 is still target gone",
			err:            errors.Join(errors.New("patch failed"), &googleapi.Error{Code: 404}),
			expectedReason: resolve.ReasonTargetGone,
		},
		{
			name:           "rate limit is a generic remote error",
			err:            &googleapi.Error{Code: 429, Message: "Too Many Requests"},
			expectedReason: resolve.ReasonRemoteError,
		},
		{
			name:           "transport failure is a generic remote error",
			err:            errors.New("connection reset"),
			expectedReason: resolve.ReasonRemoteError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			applyFn := func(ctx context.Context, targetID string) (*resolve.RemoteItem, error) {
				return nil, tc.err
			}

			res := resolve.Resolution{State: resolve.StateResolved, ID: "evt-9"}
			result := resolve.Apply(context.Background(), resolve.OpDelete, res, applyFn)

			assert.False(t, result.OK)
			assert.Equal(t, tc.expectedReason, result.Reason)
			assert.NotEmpty(t, result.Detail)
		})
	}
}
