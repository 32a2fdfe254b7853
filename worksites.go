package everyaction

//
// The Worksites service: worksites and their work areas.
//

import (
	"context"
	"net/http"
)

// WorksitesService holds the operations on worksites. Use it through
// [Client.Worksites].
type WorksitesService struct {
	client *Client
}

var worksitesCreateWorkAreaEndpoint = mustEndpoint(&Endpoint{
	Name:       "Worksites.CreateWorkArea",
	Method:     http.MethodPost,
	Path:       "worksites/{worksiteId}/workAreas",
	Data:       WorkArea,
	ResultKind: WorkArea,
})

// CreateWorkArea creates a work area within a worksite.
func (s *WorksitesService) CreateWorkArea(ctx context.Context, worksiteID int, args Args) (*Object, error) {
	return callObject(ctx, s.client, worksitesCreateWorkAreaEndpoint, []any{worksiteID}, args, nil)
}

var worksitesGetEndpoint = mustEndpoint(&Endpoint{
	Name:       "Worksites.Get",
	Method:     http.MethodGet,
	Path:       "worksites/{worksiteId}",
	ResultKind: Worksite,
})

// Get retrieves a worksite by ID.
func (s *WorksitesService) Get(ctx context.Context, worksiteID int) (*Object, error) {
	return callObject(ctx, s.client, worksitesGetEndpoint, []any{worksiteID}, nil, nil)
}

var worksitesListEndpoint = mustEndpoint(&Endpoint{
	Name:   "Worksites.List",
	Method: http.MethodGet,
	Path:   "worksites",
	QueryArgs: []string{
		"employerId",
		"isMyOrganization",
		"$expand",
	},
	Paginated:  true,
	ResultKind: Worksite,
})

// List lists worksites matching the given criteria.
func (s *WorksitesService) List(ctx context.Context, args Args) ([]*Object, error) {
	return callList(ctx, s.client, worksitesListEndpoint, nil, args, nil)
}
