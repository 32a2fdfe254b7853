package everyaction

//
// The Designations service.
//

import (
	"context"
	"net/http"
)

// DesignationsService holds the operations on compliance designations.
// Use it through [Client.Designations].
type DesignationsService struct {
	client *Client
}

var designationsGetEndpoint = mustEndpoint(&Endpoint{
	Name:       "Designations.Get",
	Method:     http.MethodGet,
	Path:       "designations/{designationId}",
	ResultKind: Designation,
})

// Get retrieves a designation by ID.
func (s *DesignationsService) Get(ctx context.Context, designationID int) (*Object, error) {
	return callObject(ctx, s.client, designationsGetEndpoint, []any{designationID}, nil, nil)
}

var designationsListEndpoint = mustEndpoint(&Endpoint{
	Name:           "Designations.List",
	Method:         http.MethodGet,
	Path:           "designations",
	ResultArrayKey: "items",
	ResultKind:     Designation,
})

// List lists the designations.
func (s *DesignationsService) List(ctx context.Context) ([]*Object, error) {
	return callList(ctx, s.client, designationsListEndpoint, nil, nil, nil)
}
