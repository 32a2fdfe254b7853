package everyaction

//
// The ScoreUpdates service: score update inspection and approval.
//

import (
	"context"
	"net/http"
)

// ScoreUpdatesService holds the operations on score updates. Use it
// through [Client.ScoreUpdates].
type ScoreUpdatesService struct {
	client *Client
}

var scoreUpdatesGetEndpoint = mustEndpoint(&Endpoint{
	Name:       "ScoreUpdates.Get",
	Method:     http.MethodGet,
	Path:       "scoreUpdates/{scoreUpdateId}",
	ResultKind: ScoreUpdate,
})

// Get retrieves a score update by ID.
func (s *ScoreUpdatesService) Get(ctx context.Context, scoreUpdateID int) (*Object, error) {
	return callObject(ctx, s.client, scoreUpdatesGetEndpoint, []any{scoreUpdateID}, nil, nil)
}

var scoreUpdatesListEndpoint = mustEndpoint(&Endpoint{
	Name:   "ScoreUpdates.List",
	Method: http.MethodGet,
	Path:   "scoreUpdates",
	QueryArgs: []string{
		"createdAfter",
		"createdBefore",
		"scoreId",
	},
	Paginated:  true,
	ResultKind: ScoreUpdate,
})

// List lists score updates matching the given criteria.
func (s *ScoreUpdatesService) List(ctx context.Context, args Args) ([]*Object, error) {
	return callList(ctx, s.client, scoreUpdatesListEndpoint, nil, args, nil)
}

var scoreUpdatesPatchEndpoint = mustEndpoint(&Endpoint{
	Name:   "ScoreUpdates.Patch",
	Method: http.MethodPatch,
	Path:   "scoreUpdates/{scoreUpdateId}",
	PropKeys: []string{
		"loadStatus",
	},
	NoResult: true,
})

// Patch updates the load status of a score update, e.g. to approve
// or cancel it.
func (s *ScoreUpdatesService) Patch(ctx context.Context, scoreUpdateID int, args Args) error {
	return callNone(ctx, s.client, scoreUpdatesPatchEndpoint, []any{scoreUpdateID}, args, nil)
}
