package everyaction

//
// The Email service: messages sent through the targeted email tool.
//

import (
	"context"
	"net/http"
)

// EmailService holds the operations on targeted email messages. Use
// it through [Client.Email].
type EmailService struct {
	client *Client
}

var emailGetEndpoint = mustEndpoint(&Endpoint{
	Name:       "Email.Get",
	Method:     http.MethodGet,
	Path:       "email/messages/{emailId}",
	QueryArgs:  []string{"$expand"},
	ResultKind: EmailMessage,
})

// Get retrieves an email message by ID. The expand argument selects
// additional content sections to include.
func (s *EmailService) Get(ctx context.Context, emailID int, args Args) (*Object, error) {
	return callObject(ctx, s.client, emailGetEndpoint, []any{emailID}, args, nil)
}

var emailListEndpoint = mustEndpoint(&Endpoint{
	Name:           "Email.List",
	Method:         http.MethodGet,
	Path:           "email/messages",
	QueryArgs:      []string{"$orderby"},
	ResultArrayKey: "items",
	ResultKind:     EmailMessage,
})

// List lists the email messages.
func (s *EmailService) List(ctx context.Context, args Args) ([]*Object, error) {
	return callList(ctx, s.client, emailListEndpoint, nil, args, nil)
}
