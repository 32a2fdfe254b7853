package everyaction

//
// The Ballots service: vote-by-mail request types, return statuses,
// and ballot types.
//

import (
	"context"
	"net/http"
)

// BallotsService holds the operations on ballot metadata. Use it
// through [Client.Ballots].
type BallotsService struct {
	client *Client
}

var ballotsRequestTypeEndpoint = mustEndpoint(&Endpoint{
	Name:       "Ballots.RequestType",
	Method:     http.MethodGet,
	Path:       "ballotRequestTypes/{ballotRequestTypeId}",
	ResultKind: BallotRequestType,
})

// RequestType retrieves a ballot request type by ID.
func (s *BallotsService) RequestType(ctx context.Context, typeID int) (*Object, error) {
	return callObject(ctx, s.client, ballotsRequestTypeEndpoint, []any{typeID}, nil, nil)
}

var ballotsRequestTypesEndpoint = mustEndpoint(&Endpoint{
	Name:       "Ballots.RequestTypes",
	Method:     http.MethodGet,
	Path:       "ballotRequestTypes",
	Paginated:  true,
	ResultKind: BallotRequestType,
})

// RequestTypes lists the ballot request types.
func (s *BallotsService) RequestTypes(ctx context.Context, args Args) ([]*Object, error) {
	return callList(ctx, s.client, ballotsRequestTypesEndpoint, nil, args, nil)
}

var ballotsReturnStatusEndpoint = mustEndpoint(&Endpoint{
	Name:       "Ballots.ReturnStatus",
	Method:     http.MethodGet,
	Path:       "ballotReturnStatuses/{ballotReturnStatusId}",
	ResultKind: BallotReturnStatus,
})

// ReturnStatus retrieves a ballot return status by ID.
func (s *BallotsService) ReturnStatus(ctx context.Context, statusID int) (*Object, error) {
	return callObject(ctx, s.client, ballotsReturnStatusEndpoint, []any{statusID}, nil, nil)
}

var ballotsReturnStatusesEndpoint = mustEndpoint(&Endpoint{
	Name:       "Ballots.ReturnStatuses",
	Method:     http.MethodGet,
	Path:       "ballotReturnStatuses",
	Paginated:  true,
	ResultKind: BallotReturnStatus,
})

// ReturnStatuses lists the ballot return statuses.
func (s *BallotsService) ReturnStatuses(ctx context.Context, args Args) ([]*Object, error) {
	return callList(ctx, s.client, ballotsReturnStatusesEndpoint, nil, args, nil)
}

var ballotsTypeEndpoint = mustEndpoint(&Endpoint{
	Name:       "Ballots.Type",
	Method:     http.MethodGet,
	Path:       "ballotTypes/{ballotTypeId}",
	ResultKind: BallotType,
})

// Type retrieves a ballot type by ID.
func (s *BallotsService) Type(ctx context.Context, typeID int) (*Object, error) {
	return callObject(ctx, s.client, ballotsTypeEndpoint, []any{typeID}, nil, nil)
}

var ballotsTypesEndpoint = mustEndpoint(&Endpoint{
	Name:       "Ballots.Types",
	Method:     http.MethodGet,
	Path:       "ballotTypes",
	Paginated:  true,
	ResultKind: BallotType,
})

// Types lists the ballot types.
func (s *BallotsService) Types(ctx context.Context, args Args) ([]*Object, error) {
	return callList(ctx, s.client, ballotsTypesEndpoint, nil, args, nil)
}
