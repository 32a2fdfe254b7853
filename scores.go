package everyaction

//
// The Scores service: the catalog of scores.
//

import (
	"context"
	"net/http"
)

// ScoresService holds the operations on scores. Use it through
// [Client.Scores].
type ScoresService struct {
	client *Client
}

var scoresGetEndpoint = mustEndpoint(&Endpoint{
	Name:       "Scores.Get",
	Method:     http.MethodGet,
	Path:       "scores/{scoreId}",
	ResultKind: Score,
})

// Get retrieves a score by ID.
func (s *ScoresService) Get(ctx context.Context, scoreID int) (*Object, error) {
	return callObject(ctx, s.client, scoresGetEndpoint, []any{scoreID}, nil, nil)
}

var scoresListEndpoint = mustEndpoint(&Endpoint{
	Name:       "Scores.List",
	Method:     http.MethodGet,
	Path:       "scores",
	Paginated:  true,
	ResultKind: Score,
})

// List lists the available scores.
func (s *ScoresService) List(ctx context.Context, args Args) ([]*Object, error) {
	return callList(ctx, s.client, scoresListEndpoint, nil, args, nil)
}
