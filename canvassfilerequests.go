package everyaction

//
// The CanvassFileRequests service.
//

import (
	"context"
	"net/http"
)

// CanvassFileRequestsService holds the operations on canvass file
// requests. Use it through [Client.CanvassFileRequests].
type CanvassFileRequestsService struct {
	client *Client
}

var canvassFileRequestsCreateEndpoint = mustEndpoint(&Endpoint{
	Name:       "CanvassFileRequests.Create",
	Method:     http.MethodPost,
	Path:       "canvassFileRequests",
	PropKeys:   []string{"savedListId", "type", "webhookUrl"},
	ResultKind: CanvassFileRequest,
})

// Create requests the generation of a canvass file for a saved list.
func (s *CanvassFileRequestsService) Create(ctx context.Context, args Args) (*Object, error) {
	return callObject(ctx, s.client, canvassFileRequestsCreateEndpoint, nil, args, nil)
}

var canvassFileRequestsGetEndpoint = mustEndpoint(&Endpoint{
	Name:       "CanvassFileRequests.Get",
	Method:     http.MethodGet,
	Path:       "canvassFileRequests/{canvassFileRequestId}",
	ResultKind: CanvassFileRequest,
})

// Get retrieves a canvass file request by ID.
func (s *CanvassFileRequestsService) Get(ctx context.Context, requestID int) (*Object, error) {
	return callObject(ctx, s.client, canvassFileRequestsGetEndpoint, []any{requestID}, nil, nil)
}
