package everyaction

//
// The Locations service. Location responses repeat the ID under both
// id and locationId, so the read operations drop the plain id key
// before construction.
//

import (
	"context"
	"net/http"
)

// LocationsService holds the operations on event locations. Use it
// through [Client.Locations].
type LocationsService struct {
	client *Client
}

var locationsCreateEndpoint = mustEndpoint(&Endpoint{
	Name:       "Locations.Create",
	Method:     http.MethodPost,
	Path:       "locations",
	Data:       Location,
	ResultKind: Location,
})

// Create creates a location.
func (s *LocationsService) Create(ctx context.Context, args Args) (*Object, error) {
	return callObject(ctx, s.client, locationsCreateEndpoint, nil, args, nil)
}

var locationsDeleteEndpoint = mustEndpoint(&Endpoint{
	Name:     "Locations.Delete",
	Method:   http.MethodDelete,
	Path:     "locations/{locationId}",
	NoResult: true,
})

// Delete deletes a location by ID.
func (s *LocationsService) Delete(ctx context.Context, locationID int) error {
	return callNone(ctx, s.client, locationsDeleteEndpoint, []any{locationID}, nil, nil)
}

var locationsFindOrCreateEndpoint = mustEndpoint(&Endpoint{
	Name:        "Locations.FindOrCreate",
	Method:      http.MethodPost,
	Path:        "locations/findOrCreate",
	Data:        Location,
	ResultKind:  Location,
	ExcludeKeys: []string{"id"},
})

// FindOrCreate retrieves the location matching the given address,
// creating it when there is no match.
func (s *LocationsService) FindOrCreate(ctx context.Context, args Args) (*Object, error) {
	return callObject(ctx, s.client, locationsFindOrCreateEndpoint, nil, args, nil)
}

var locationsGetEndpoint = mustEndpoint(&Endpoint{
	Name:        "Locations.Get",
	Method:      http.MethodGet,
	Path:        "locations/{locationId}",
	ResultKind:  Location,
	ExcludeKeys: []string{"id"},
})

// Get retrieves a location by ID.
func (s *LocationsService) Get(ctx context.Context, locationID int) (*Object, error) {
	return callObject(ctx, s.client, locationsGetEndpoint, []any{locationID}, nil, nil)
}

var locationsListEndpoint = mustEndpoint(&Endpoint{
	Name:        "Locations.List",
	Method:      http.MethodGet,
	Path:        "locations",
	Paginated:   true,
	QueryArgs:   []string{"name"},
	ResultKind:  Location,
	ExcludeKeys: []string{"id"},
})

// List lists locations, optionally filtered by name.
func (s *LocationsService) List(ctx context.Context, args Args) ([]*Object, error) {
	return callList(ctx, s.client, locationsListEndpoint, nil, args, nil)
}
