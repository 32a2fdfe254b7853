package everyaction

//
// The CustomFields service.
//

import (
	"context"
	"net/http"
)

// CustomFieldsService holds the operations on custom fields. Use it
// through [Client.CustomFields].
type CustomFieldsService struct {
	client *Client
}

var customFieldsGetEndpoint = mustEndpoint(&Endpoint{
	Name:       "CustomFields.Get",
	Method:     http.MethodGet,
	Path:       "customFields/{customFieldId}",
	ResultKind: CustomField,
})

// Get retrieves a custom field by ID.
func (s *CustomFieldsService) Get(ctx context.Context, customFieldID int) (*Object, error) {
	return callObject(ctx, s.client, customFieldsGetEndpoint, []any{customFieldID}, nil, nil)
}

var customFieldsListEndpoint = mustEndpoint(&Endpoint{
	Name:        "CustomFields.List",
	Method:      http.MethodGet,
	Path:        "customFields",
	QueryArgs:   []string{"customFieldsGroupType"},
	ResultArray: true,
	ResultKind:  CustomField,
})

// List lists the custom fields, optionally limited to one group type.
func (s *CustomFieldsService) List(ctx context.Context, args Args) ([]*Object, error) {
	return callList(ctx, s.client, customFieldsListEndpoint, nil, args, nil)
}
