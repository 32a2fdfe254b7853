package everyaction

//
// The Forms service: online actions forms.
//

import (
	"context"
	"net/http"
)

// FormsService holds the operations on online actions forms. Use it
// through [Client.Forms].
type FormsService struct {
	client *Client
}

var formsGetEndpoint = mustEndpoint(&Endpoint{
	Name:       "Forms.Get",
	Method:     http.MethodGet,
	Path:       "onlineActionsForms/{formTrackingId}",
	ResultKind: OnlineActionsForm,
})

// Get retrieves an online actions form by tracking ID.
func (s *FormsService) Get(ctx context.Context, trackingID int) (*Object, error) {
	return callObject(ctx, s.client, formsGetEndpoint, []any{trackingID}, nil, nil)
}

var formsListEndpoint = mustEndpoint(&Endpoint{
	Name:       "Forms.List",
	Method:     http.MethodGet,
	Path:       "onlineActionsForms",
	Paginated:  true,
	ResultKind: OnlineActionsForm,
})

// List lists the online actions forms.
func (s *FormsService) List(ctx context.Context, args Args) ([]*Object, error) {
	return callList(ctx, s.client, formsListEndpoint, nil, args, nil)
}
