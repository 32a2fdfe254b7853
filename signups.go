package everyaction

//
// The Signups service: event signups and their statuses.
//

import (
	"context"
	"net/http"
)

// SignupsService holds the operations on event signups. Use it
// through [Client.Signups].
type SignupsService struct {
	client *Client
}

var signupsCreateOrUpdateEndpoint = mustEndpoint(&Endpoint{
	Name:       "Signups.CreateOrUpdate",
	Method:     http.MethodPost,
	Path:       "signups",
	Data:       Signup,
	ResultKind: Signup,
})

// CreateOrUpdate creates a new signup or updates an existing one.
func (s *SignupsService) CreateOrUpdate(ctx context.Context, args Args) (*Object, error) {
	return callObject(ctx, s.client, signupsCreateOrUpdateEndpoint, nil, args, nil)
}

var signupsDeleteEndpoint = mustEndpoint(&Endpoint{
	Name:     "Signups.Delete",
	Method:   http.MethodDelete,
	Path:     "signups/{eventSignupId}",
	NoResult: true,
})

// Delete deletes a signup by ID.
func (s *SignupsService) Delete(ctx context.Context, eventSignupID int) error {
	return callNone(ctx, s.client, signupsDeleteEndpoint, []any{eventSignupID}, nil, nil)
}

var signupsGetEndpoint = mustEndpoint(&Endpoint{
	Name:       "Signups.Get",
	Method:     http.MethodGet,
	Path:       "signups/{eventSignupId}",
	ResultKind: Signup,
})

// Get retrieves a signup by ID.
func (s *SignupsService) Get(ctx context.Context, eventSignupID int) (*Object, error) {
	return callObject(ctx, s.client, signupsGetEndpoint, []any{eventSignupID}, nil, nil)
}

var signupsListEndpoint = mustEndpoint(&Endpoint{
	Name:   "Signups.List",
	Method: http.MethodGet,
	Path:   "signups",
	QueryArgs: []string{
		"eventId",
		"vanId",
	},
	Paginated:  true,
	ResultKind: Signup,
})

// List lists signups for an event or a person.
func (s *SignupsService) List(ctx context.Context, args Args) ([]*Object, error) {
	return callList(ctx, s.client, signupsListEndpoint, nil, args, nil)
}

var signupsStatusesEndpoint = mustEndpoint(&Endpoint{
	Name:   "Signups.Statuses",
	Method: http.MethodGet,
	Path:   "signups/statuses",
	QueryArgs: []string{
		"eventId",
		"eventTypeId",
	},
	ResultArray: true,
	ResultKind:  Status,
})

// Statuses lists the signup statuses available for an event or an
// event type.
func (s *SignupsService) Statuses(ctx context.Context, args Args) ([]*Object, error) {
	return callList(ctx, s.client, signupsStatusesEndpoint, nil, args, nil)
}

var signupsUpdateEndpoint = mustEndpoint(&Endpoint{
	Name:     "Signups.Update",
	Method:   http.MethodPut,
	Path:     "signups/{eventSignupId}",
	Data:     Signup,
	NoResult: true,
})

// Update replaces a signup by ID.
func (s *SignupsService) Update(ctx context.Context, eventSignupID int, args Args) error {
	return callNone(ctx, s.client, signupsUpdateEndpoint, []any{eventSignupID}, args, nil)
}
