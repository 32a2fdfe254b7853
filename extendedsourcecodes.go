package everyaction

//
// The ExtendedSourceCodes service.
//

import (
	"context"
	"net/http"
)

// ExtendedSourceCodesService holds the operations on extended source
// codes. Use it through [Client.ExtendedSourceCodes].
type ExtendedSourceCodesService struct {
	client *Client
}

var extendedSourceCodesListEndpoint = mustEndpoint(&Endpoint{
	Name:      "ExtendedSourceCodes.List",
	Method:    http.MethodGet,
	Path:      "codes/extendedSourceCodes",
	Paginated: true,
	QueryArgs: []string{"vanId", "extendedSourceCodeName"},
	Props: map[string]*Field{
		"extendedSourceCodeName": prop("name"),
	},
	ResultKind: ExtendedSourceCode,
})

// List lists extended source codes, optionally filtered by person or
// name.
func (s *ExtendedSourceCodesService) List(ctx context.Context, args Args) ([]*Object, error) {
	return callList(ctx, s.client, extendedSourceCodesListEndpoint, nil, args, nil)
}
