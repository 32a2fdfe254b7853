package everyaction

//
// The PrintedLists service: printed list retrieval and search.
//

import (
	"context"
	"net/http"
)

// PrintedListsService holds the operations on printed lists. Use
// it through [Client.PrintedLists].
type PrintedListsService struct {
	client *Client
}

var printedListsGetEndpoint = mustEndpoint(&Endpoint{
	Name:       "PrintedLists.Get",
	Method:     http.MethodGet,
	Path:       "printedLists/{printedListNumber}",
	ResultKind: PrintedList,
})

// Get retrieves a printed list by its list number.
func (s *PrintedListsService) Get(ctx context.Context, listNumber string) (*Object, error) {
	return callObject(ctx, s.client, printedListsGetEndpoint, []any{listNumber}, nil, nil)
}

var printedListsListEndpoint = mustEndpoint(&Endpoint{
	Name:   "PrintedLists.List",
	Method: http.MethodGet,
	Path:   "printedLists",
	QueryArgs: []string{
		"createdBy",
		"folderName",
		"generatedAfter",
		"generatedBefore",
		"turfName",
	},
	ResultArray: true,
	ResultKind:  PrintedList,
})

// List lists printed lists matching the given criteria.
func (s *PrintedListsService) List(ctx context.Context, args Args) ([]*Object, error) {
	return callList(ctx, s.client, printedListsListEndpoint, nil, args, nil)
}
