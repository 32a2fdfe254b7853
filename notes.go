package everyaction

//
// The Notes service: note categories and category types. Notes
// themselves hang off people; see [PeopleService.AddNotes].
//

import (
	"context"
	"net/http"
)

// NotesService holds the operations on note categories. Use it
// through [Client.Notes].
type NotesService struct {
	client *Client
}

var notesCategoriesEndpoint = mustEndpoint(&Endpoint{
	Name:        "Notes.Categories",
	Method:      http.MethodGet,
	Path:        "notes/categories",
	ResultArray: true,
	ResultKind:  NoteCategory,
})

// Categories lists the note categories.
func (s *NotesService) Categories(ctx context.Context) ([]*Object, error) {
	return callList(ctx, s.client, notesCategoriesEndpoint, nil, nil, nil)
}

var notesCategoryEndpoint = mustEndpoint(&Endpoint{
	Name:       "Notes.Category",
	Method:     http.MethodGet,
	Path:       "notes/categories/{noteCategoryId}",
	ResultKind: NoteCategory,
})

// Category retrieves a note category by ID.
func (s *NotesService) Category(ctx context.Context, noteCategoryID int) (*Object, error) {
	return callObject(ctx, s.client, notesCategoryEndpoint, []any{noteCategoryID}, nil, nil)
}

var notesCategoryTypesEndpoint = mustEndpoint(&Endpoint{
	Name:        "Notes.CategoryTypes",
	Method:      http.MethodGet,
	Path:        "notes/categoryTypes",
	ResultArray: true,
})

// CategoryTypes lists the note category type names.
func (s *NotesService) CategoryTypes(ctx context.Context) ([]string, error) {
	return callStrings(ctx, s.client, notesCategoryTypesEndpoint, nil, nil, nil)
}
