package everyaction

//
// The MemberStatuses service.
//

import (
	"context"
	"net/http"
)

// MemberStatusesService holds the operations on member statuses. Use
// it through [Client.MemberStatuses].
type MemberStatusesService struct {
	client *Client
}

var memberStatusesCreateEndpoint = mustEndpoint(&Endpoint{
	Name:       "MemberStatuses.Create",
	Method:     http.MethodPost,
	Path:       "memberStatuses",
	Data:       MemberStatus,
	ResultKind: MemberStatus,
})

// Create creates a member status.
func (s *MemberStatusesService) Create(ctx context.Context, args Args) (*Object, error) {
	return callObject(ctx, s.client, memberStatusesCreateEndpoint, nil, args, nil)
}

var memberStatusesGetEndpoint = mustEndpoint(&Endpoint{
	Name:       "MemberStatuses.Get",
	Method:     http.MethodGet,
	Path:       "memberStatuses/{memberStatusId}",
	ResultKind: MemberStatus,
})

// Get retrieves a member status by ID.
func (s *MemberStatusesService) Get(ctx context.Context, memberStatusID int) (*Object, error) {
	return callObject(ctx, s.client, memberStatusesGetEndpoint, []any{memberStatusID}, nil, nil)
}

var memberStatusesListEndpoint = mustEndpoint(&Endpoint{
	Name:       "MemberStatuses.List",
	Method:     http.MethodGet,
	Path:       "memberStatuses",
	Paginated:  true,
	ResultKind: MemberStatus,
})

// List lists the member statuses.
func (s *MemberStatusesService) List(ctx context.Context, args Args) ([]*Object, error) {
	return callList(ctx, s.client, memberStatusesListEndpoint, nil, args, nil)
}
