package everyaction

//
// The SavedLists service: saved list retrieval, search, and SMS
// sync configuration.
//

import (
	"context"
	"net/http"
)

// SavedListsService holds the operations on saved lists. Use it
// through [Client.SavedLists].
type SavedListsService struct {
	client *Client
}

var savedListsGetEndpoint = mustEndpoint(&Endpoint{
	Name:       "SavedLists.Get",
	Method:     http.MethodGet,
	Path:       "savedLists/{savedListId}",
	ResultKind: SavedList,
})

// Get retrieves a saved list by ID.
func (s *SavedListsService) Get(ctx context.Context, savedListID int) (*Object, error) {
	return callObject(ctx, s.client, savedListsGetEndpoint, []any{savedListID}, nil, nil)
}

var savedListsListEndpoint = mustEndpoint(&Endpoint{
	Name:   "SavedLists.List",
	Method: http.MethodGet,
	Path:   "savedLists",
	QueryArgs: []string{
		"folderId",
		"maxDoorCount",
		"maxPeopleCount",
	},
	Paginated:  true,
	ResultKind: SavedList,
})

// List lists saved lists matching the given criteria.
func (s *SavedListsService) List(ctx context.Context, args Args) ([]*Object, error) {
	return callList(ctx, s.client, savedListsListEndpoint, nil, args, nil)
}

var savedListsSMSSyncEndpoint = mustEndpoint(&Endpoint{
	Name:   "SavedLists.SMSSync",
	Method: http.MethodPost,
	Path:   "savedLists/smsSync",
	PropKeys: []string{
		"syncPeriodEnd",
		"syncPeriodStart",
	},
	ResultKind: SavedList,
})

// SMSSync configures SMS synchronization for saved lists over the
// given sync period.
func (s *SavedListsService) SMSSync(ctx context.Context, args Args) (*Object, error) {
	return callObject(ctx, s.client, savedListsSMSSyncEndpoint, nil, args, nil)
}
