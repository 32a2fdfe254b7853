package everyaction

//
// The DistrictFields service.
//

import (
	"context"
	"net/http"
)

// DistrictFieldsService holds the operations on district fields. Use
// it through [Client.DistrictFields].
type DistrictFieldsService struct {
	client *Client
}

var districtFieldsGetEndpoint = mustEndpoint(&Endpoint{
	Name:       "DistrictFields.Get",
	Method:     http.MethodGet,
	Path:       "districtFields/{districtFieldId}",
	ResultKind: DistrictField,
})

// Get retrieves a district field by ID.
func (s *DistrictFieldsService) Get(ctx context.Context, districtFieldID int) (*Object, error) {
	return callObject(ctx, s.client, districtFieldsGetEndpoint, []any{districtFieldID}, nil, nil)
}

var districtFieldsListEndpoint = mustEndpoint(&Endpoint{
	Name:        "DistrictFields.List",
	Method:      http.MethodGet,
	Path:        "districtFields",
	QueryArgs:   []string{"custom", "organizeAt"},
	ResultArray: true,
	ResultKind:  DistrictField,
})

// List lists the district fields.
func (s *DistrictFieldsService) List(ctx context.Context, args Args) ([]*Object, error) {
	return callList(ctx, s.client, districtFieldsListEndpoint, nil, args, nil)
}
