package everyaction

//
// The ShiftTypes service: shift types for organizing events.
//

import (
	"context"
	"net/http"
)

// ShiftTypesService holds the operations on shift types. Use it
// through [Client.ShiftTypes].
type ShiftTypesService struct {
	client *Client
}

var shiftTypesCreateEndpoint = mustEndpoint(&Endpoint{
	Name:       "ShiftTypes.Create",
	Method:     http.MethodPost,
	Path:       "shiftTypes",
	Data:       ShiftType,
	ResultKind: ShiftType,
})

// Create creates a new shift type.
func (s *ShiftTypesService) Create(ctx context.Context, args Args) (*Object, error) {
	return callObject(ctx, s.client, shiftTypesCreateEndpoint, nil, args, nil)
}

var shiftTypesGetEndpoint = mustEndpoint(&Endpoint{
	Name:       "ShiftTypes.Get",
	Method:     http.MethodGet,
	Path:       "shiftTypes/{shiftTypeId}",
	ResultKind: ShiftType,
})

// Get retrieves a shift type by ID.
func (s *ShiftTypesService) Get(ctx context.Context, shiftTypeID int) (*Object, error) {
	return callObject(ctx, s.client, shiftTypesGetEndpoint, []any{shiftTypeID}, nil, nil)
}

var shiftTypesListEndpoint = mustEndpoint(&Endpoint{
	Name:       "ShiftTypes.List",
	Method:     http.MethodGet,
	Path:       "shiftTypes",
	Paginated:  true,
	ResultKind: ShiftType,
})

// List lists the shift types.
func (s *ShiftTypesService) List(ctx context.Context, args Args) ([]*Object, error) {
	return callList(ctx, s.client, shiftTypesListEndpoint, nil, args, nil)
}
