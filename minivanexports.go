package everyaction

//
// The MiniVANExports service.
//

import (
	"context"
	"net/http"
)

// MiniVANExportsService holds the operations on MiniVAN exports. Use
// it through [Client.MiniVANExports].
type MiniVANExportsService struct {
	client *Client
}

var miniVANExportsGetEndpoint = mustEndpoint(&Endpoint{
	Name:       "MiniVANExports.Get",
	Method:     http.MethodGet,
	Path:       "minivanExports/{minivanExportId}",
	ResultKind: MiniVANExport,
})

// Get retrieves a MiniVAN export by ID.
func (s *MiniVANExportsService) Get(ctx context.Context, exportID int) (*Object, error) {
	return callObject(ctx, s.client, miniVANExportsGetEndpoint, []any{exportID}, nil, nil)
}

var miniVANExportsListEndpoint = mustEndpoint(&Endpoint{
	Name:      "MiniVANExports.List",
	Method:    http.MethodGet,
	Path:      "minivanExports",
	Paginated: true,
	MaxTop:    50,
	QueryArgs: []string{
		"createdBy", "generatedAfter", "generatedBefore", "name",
		"$expand",
	},
	ResultKind: MiniVANExport,
})

// List lists MiniVAN exports matching the given filters.
func (s *MiniVANExportsService) List(ctx context.Context, args Args) ([]*Object, error) {
	return callList(ctx, s.client, miniVANExportsListEndpoint, nil, args, nil)
}
