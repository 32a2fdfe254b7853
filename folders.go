package everyaction

//
// The Folders service.
//

import (
	"context"
	"net/http"
)

// FoldersService holds the operations on list folders. Use it through
// [Client.Folders].
type FoldersService struct {
	client *Client
}

var foldersGetEndpoint = mustEndpoint(&Endpoint{
	Name:       "Folders.Get",
	Method:     http.MethodGet,
	Path:       "folders/{folderId}",
	ResultKind: Folder,
})

// Get retrieves a folder by ID.
func (s *FoldersService) Get(ctx context.Context, folderID int) (*Object, error) {
	return callObject(ctx, s.client, foldersGetEndpoint, []any{folderID}, nil, nil)
}

var foldersListEndpoint = mustEndpoint(&Endpoint{
	Name:       "Folders.List",
	Method:     http.MethodGet,
	Path:       "folders",
	Paginated:  true,
	ResultKind: Folder,
})

// List lists the folders visible to the API user.
func (s *FoldersService) List(ctx context.Context, args Args) ([]*Object, error) {
	return callList(ctx, s.client, foldersListEndpoint, nil, args, nil)
}
