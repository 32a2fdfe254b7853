package everyaction

//
// The Codes service: source codes and tags, including the batch
// operations that report one result per code.
//

import (
	"context"
	"net/http"
)

// CodesService holds the operations on source codes and tags. Use it
// through [Client.Codes].
type CodesService struct {
	client *Client
}

var codesCreateEndpoint = mustEndpoint(&Endpoint{
	Name:       "Codes.Create",
	Method:     http.MethodPost,
	Path:       "codes",
	Data:       Code,
	ResultKind: Code,
})

// Create creates a source code or tag.
func (s *CodesService) Create(ctx context.Context, args Args) (*Object, error) {
	return callObject(ctx, s.client, codesCreateEndpoint, nil, args, nil)
}

var codesCreateEachEndpoint = mustEndpoint(&Endpoint{
	Name:        "Codes.CreateEach",
	Method:      http.MethodPost,
	Path:        "codes/batch",
	PropKeys:    []string{"codes"},
	ResultArray: true,
	ResultKind:  CodeResult,
})

// CreateEach creates several codes at once, returning one result per
// code.
func (s *CodesService) CreateEach(ctx context.Context, codes ...*Object) ([]*Object, error) {
	return callList(ctx, s.client, codesCreateEachEndpoint, nil, Args{"codes": codes}, nil)
}

var codesDeleteEndpoint = mustEndpoint(&Endpoint{
	Name:     "Codes.Delete",
	Method:   http.MethodDelete,
	Path:     "codes/{codeId}",
	NoResult: true,
})

// Delete deletes a code by ID.
func (s *CodesService) Delete(ctx context.Context, codeID int) error {
	return callNone(ctx, s.client, codesDeleteEndpoint, []any{codeID}, nil, nil)
}

var codesDeleteEachEndpoint = mustEndpoint(&Endpoint{
	Name:        "Codes.DeleteEach",
	Method:      http.MethodDelete,
	Path:        "codes",
	ResultArray: true,
	ResultKind:  CodeResult,
})

// DeleteEach deletes several codes at once, returning one result per
// code.
func (s *CodesService) DeleteEach(ctx context.Context, codeIDs ...int) ([]*Object, error) {
	if codeIDs == nil {
		codeIDs = []int{}
	}
	return callList(ctx, s.client, codesDeleteEachEndpoint, nil, nil, codeIDs)
}

var codesGetEndpoint = mustEndpoint(&Endpoint{
	Name:       "Codes.Get",
	Method:     http.MethodGet,
	Path:       "codes/{codeId}",
	ResultKind: Code,
})

// Get retrieves a code by ID.
func (s *CodesService) Get(ctx context.Context, codeID int) (*Object, error) {
	return callObject(ctx, s.client, codesGetEndpoint, []any{codeID}, nil, nil)
}

var codesListEndpoint = mustEndpoint(&Endpoint{
	Name:      "Codes.List",
	Method:    http.MethodGet,
	Path:      "codes",
	Paginated: true,
	QueryArgs: []string{
		"codeType", "name", "parentCodeId", "supportedEntities",
		"$expand", "$orderby",
	},
	Props:      map[string]*Field{"codeType": prop("type")},
	ResultKind: Code,
})

// List lists codes matching the given filters.
func (s *CodesService) List(ctx context.Context, args Args) ([]*Object, error) {
	return callList(ctx, s.client, codesListEndpoint, nil, args, nil)
}

var codesSupportedEntitiesEndpoint = mustEndpoint(&Endpoint{
	Name:        "Codes.SupportedEntities",
	Method:      http.MethodGet,
	Path:        "codes/supportedEntities",
	ResultArray: true,
})

// SupportedEntities lists the names of the entity types codes can
// apply to.
func (s *CodesService) SupportedEntities(ctx context.Context) ([]string, error) {
	return callStrings(ctx, s.client, codesSupportedEntitiesEndpoint, nil, nil, nil)
}

var codesTypesEndpoint = mustEndpoint(&Endpoint{
	Name:        "Codes.Types",
	Method:      http.MethodGet,
	Path:        "codeTypes",
	ResultArray: true,
})

// Types lists the code type names.
func (s *CodesService) Types(ctx context.Context) ([]string, error) {
	return callStrings(ctx, s.client, codesTypesEndpoint, nil, nil, nil)
}

var codesUpdateEndpoint = mustEndpoint(&Endpoint{
	Name:     "Codes.Update",
	Method:   http.MethodPut,
	Path:     "codes/{codeId}",
	Data:     Code,
	NoResult: true,
})

// Update replaces a code.
func (s *CodesService) Update(ctx context.Context, codeID int, args Args) error {
	return callNone(ctx, s.client, codesUpdateEndpoint, []any{codeID}, args, nil)
}

var codesUpdateEachEndpoint = mustEndpoint(&Endpoint{
	Name:        "Codes.UpdateEach",
	Method:      http.MethodPut,
	Path:        "codes",
	PropKeys:    []string{"codes"},
	ResultArray: true,
	ResultKind:  CodeResult,
})

// UpdateEach replaces several codes at once, returning one result per
// code. Each code must carry its codeId.
func (s *CodesService) UpdateEach(ctx context.Context, codes ...*Object) ([]*Object, error) {
	return callList(ctx, s.client, codesUpdateEachEndpoint, nil, Args{"codes": codes}, nil)
}
