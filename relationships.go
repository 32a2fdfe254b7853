package everyaction

//
// The Relationships service: the catalog of relationship types.
//

import (
	"context"
	"net/http"
)

// RelationshipsService holds the operations on relationship types.
// Use it through [Client.Relationships].
type RelationshipsService struct {
	client *Client
}

var relationshipsListEndpoint = mustEndpoint(&Endpoint{
	Name:       "Relationships.List",
	Method:     http.MethodGet,
	Path:       "relationships",
	Paginated:  true,
	ResultKind: Relationship,
})

// List lists the available relationship types.
func (s *RelationshipsService) List(ctx context.Context, args Args) ([]*Object, error) {
	return callList(ctx, s.client, relationshipsListEndpoint, nil, args, nil)
}
