package everyaction

//
// The SupporterGroups service: supporter groups and their members.
//

import (
	"context"
	"net/http"
)

// SupporterGroupsService holds the operations on supporter groups.
// Use it through [Client.SupporterGroups].
type SupporterGroupsService struct {
	client *Client
}

var supporterGroupsAddPersonEndpoint = mustEndpoint(&Endpoint{
	Name:     "SupporterGroups.AddPerson",
	Method:   http.MethodPut,
	Path:     "supporterGroups/{supporterGroupId}/people/{vanId}",
	NoResult: true,
})

// AddPerson adds a person to a supporter group.
func (s *SupporterGroupsService) AddPerson(ctx context.Context, groupID, vanID int) error {
	return callNone(ctx, s.client, supporterGroupsAddPersonEndpoint, []any{groupID, vanID}, nil, nil)
}

var supporterGroupsCreateEndpoint = mustEndpoint(&Endpoint{
	Name:       "SupporterGroups.Create",
	Method:     http.MethodPost,
	Path:       "supporterGroups",
	Data:       SupporterGroup,
	ResultKind: SupporterGroup,
})

// Create creates a new supporter group.
func (s *SupporterGroupsService) Create(ctx context.Context, args Args) (*Object, error) {
	return callObject(ctx, s.client, supporterGroupsCreateEndpoint, nil, args, nil)
}

var supporterGroupsDeleteEndpoint = mustEndpoint(&Endpoint{
	Name:     "SupporterGroups.Delete",
	Method:   http.MethodDelete,
	Path:     "supporterGroups/{supporterGroupId}",
	NoResult: true,
})

// Delete deletes a supporter group by ID.
func (s *SupporterGroupsService) Delete(ctx context.Context, groupID int) error {
	return callNone(ctx, s.client, supporterGroupsDeleteEndpoint, []any{groupID}, nil, nil)
}

var supporterGroupsGetEndpoint = mustEndpoint(&Endpoint{
	Name:       "SupporterGroups.Get",
	Method:     http.MethodGet,
	Path:       "supporterGroups/{supporterGroupId}",
	ResultKind: SupporterGroup,
})

// Get retrieves a supporter group by ID.
func (s *SupporterGroupsService) Get(ctx context.Context, groupID int) (*Object, error) {
	return callObject(ctx, s.client, supporterGroupsGetEndpoint, []any{groupID}, nil, nil)
}

var supporterGroupsListEndpoint = mustEndpoint(&Endpoint{
	Name:       "SupporterGroups.List",
	Method:     http.MethodGet,
	Path:       "supporterGroups",
	Paginated:  true,
	ResultKind: SupporterGroup,
})

// List lists the supporter groups.
func (s *SupporterGroupsService) List(ctx context.Context, args Args) ([]*Object, error) {
	return callList(ctx, s.client, supporterGroupsListEndpoint, nil, args, nil)
}

var supporterGroupsRemovePersonEndpoint = mustEndpoint(&Endpoint{
	Name:     "SupporterGroups.RemovePerson",
	Method:   http.MethodDelete,
	Path:     "supporterGroups/{supporterGroupId}/people/{vanId}",
	NoResult: true,
})

// RemovePerson removes a person from a supporter group.
func (s *SupporterGroupsService) RemovePerson(ctx context.Context, groupID, vanID int) error {
	return callNone(ctx, s.client, supporterGroupsRemovePersonEndpoint, []any{groupID, vanID}, nil, nil)
}
