package everyaction

//
// The BargainingUnits service.
//

import (
	"context"
	"net/http"
)

// BargainingUnitsService holds the operations on bargaining units. Use
// it through [Client.BargainingUnits].
type BargainingUnitsService struct {
	client *Client
}

var bargainingUnitsGetEndpoint = mustEndpoint(&Endpoint{
	Name:       "BargainingUnits.Get",
	Method:     http.MethodGet,
	Path:       "bargainingUnits/{bargainingUnitId}",
	ResultKind: BargainingUnit,
})

// Get retrieves a bargaining unit by ID.
func (s *BargainingUnitsService) Get(ctx context.Context, bargainingUnitID int) (*Object, error) {
	return callObject(ctx, s.client, bargainingUnitsGetEndpoint, []any{bargainingUnitID}, nil, nil)
}

var bargainingUnitsListEndpoint = mustEndpoint(&Endpoint{
	Name:       "BargainingUnits.List",
	Method:     http.MethodGet,
	Path:       "bargainingUnits",
	Paginated:  true,
	ResultKind: BargainingUnit,
})

// List lists the bargaining units.
func (s *BargainingUnitsService) List(ctx context.Context, args Args) ([]*Object, error) {
	return callList(ctx, s.client, bargainingUnitsListEndpoint, nil, args, nil)
}
