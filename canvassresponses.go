package everyaction

//
// The CanvassResponses service: the contact types, input types, and
// result codes canvass responses are recorded with.
//

import (
	"context"
	"net/http"
)

// CanvassResponsesService holds the operations on canvass response
// metadata. Use it through [Client.CanvassResponses].
type CanvassResponsesService struct {
	client *Client
}

var canvassResponsesContactTypesEndpoint = mustEndpoint(&Endpoint{
	Name:        "CanvassResponses.ContactTypes",
	Method:      http.MethodGet,
	Path:        "canvassResponses/contactTypes",
	QueryArgs:   []string{"inputTypeId"},
	ResultArray: true,
	ResultKind:  ContactType,
})

// ContactTypes lists the supported contact types, optionally limited
// to one input type.
func (s *CanvassResponsesService) ContactTypes(ctx context.Context, args Args) ([]*Object, error) {
	return callList(ctx, s.client, canvassResponsesContactTypesEndpoint, nil, args, nil)
}

var canvassResponsesInputTypesEndpoint = mustEndpoint(&Endpoint{
	Name:        "CanvassResponses.InputTypes",
	Method:      http.MethodGet,
	Path:        "canvassResponses/inputTypes",
	ResultArray: true,
	ResultKind:  InputType,
})

// InputTypes lists the supported input types.
func (s *CanvassResponsesService) InputTypes(ctx context.Context) ([]*Object, error) {
	return callList(ctx, s.client, canvassResponsesInputTypesEndpoint, nil, nil, nil)
}

var canvassResponsesResultCodesEndpoint = mustEndpoint(&Endpoint{
	Name:        "CanvassResponses.ResultCodes",
	Method:      http.MethodGet,
	Path:        "canvassResponses/resultCodes",
	QueryArgs:   []string{"contactTypeId", "inputTypeId"},
	ResultArray: true,
	ResultKind:  ResultCode,
})

// ResultCodes lists the supported result codes, optionally limited to
// one contact or input type.
func (s *CanvassResponsesService) ResultCodes(ctx context.Context, args Args) ([]*Object, error) {
	return callList(ctx, s.client, canvassResponsesResultCodesEndpoint, nil, args, nil)
}

// FindContactType retrieves the contact type with the given name,
// matched case-insensitively.
func (s *CanvassResponsesService) FindContactType(ctx context.Context, name string) (*Object, error) {
	types, err := s.ContactTypes(ctx, nil)
	if err != nil {
		return nil, err
	}
	return findByName(types, name, "contact type")
}

// FindInputType retrieves the input type with the given name, matched
// case-insensitively.
func (s *CanvassResponsesService) FindInputType(ctx context.Context, name string) (*Object, error) {
	types, err := s.InputTypes(ctx)
	if err != nil {
		return nil, err
	}
	return findByName(types, name, "input type")
}

// FindResultCode retrieves the result code with the given name,
// matched case-insensitively.
func (s *CanvassResponsesService) FindResultCode(ctx context.Context, name string) (*Object, error) {
	codes, err := s.ResultCodes(ctx, nil)
	if err != nil {
		return nil, err
	}
	return findByName(codes, name, "result code")
}

// NameToContactType retrieves the contact types keyed by name.
func (s *CanvassResponsesService) NameToContactType(ctx context.Context) (map[string]*Object, error) {
	types, err := s.ContactTypes(ctx, nil)
	if err != nil {
		return nil, err
	}
	return namedByName(types), nil
}

// NameToInputType retrieves the input types keyed by name.
func (s *CanvassResponsesService) NameToInputType(ctx context.Context) (map[string]*Object, error) {
	types, err := s.InputTypes(ctx)
	if err != nil {
		return nil, err
	}
	return namedByName(types), nil
}

// NameToResultCode retrieves the result codes keyed by name.
func (s *CanvassResponsesService) NameToResultCode(ctx context.Context) (map[string]*Object, error) {
	codes, err := s.ResultCodes(ctx, nil)
	if err != nil {
		return nil, err
	}
	return namedByName(codes), nil
}
