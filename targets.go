package everyaction

//
// The Targets service: target universes and their statuses.
//

import (
	"context"
	"net/http"
)

// TargetsService holds the operations on targets. Use it through
// [Client.Targets].
type TargetsService struct {
	client *Client
}

var targetsGetEndpoint = mustEndpoint(&Endpoint{
	Name:       "Targets.Get",
	Method:     http.MethodGet,
	Path:       "targets/{targetId}",
	ResultKind: Target,
})

// Get retrieves a target by ID.
func (s *TargetsService) Get(ctx context.Context, targetID int) (*Object, error) {
	return callObject(ctx, s.client, targetsGetEndpoint, []any{targetID}, nil, nil)
}

var targetsListEndpoint = mustEndpoint(&Endpoint{
	Name:   "Targets.List",
	Method: http.MethodGet,
	Path:   "targets",
	QueryArgs: []string{
		"status",
		"type",
		"$expand",
	},
	Paginated:  true,
	ResultKind: Target,
})

// List lists targets matching the given criteria.
func (s *TargetsService) List(ctx context.Context, args Args) ([]*Object, error) {
	return callList(ctx, s.client, targetsListEndpoint, nil, args, nil)
}
