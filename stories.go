package everyaction

//
// The Stories service: supporter stories.
//

import (
	"context"
	"net/http"
)

// StoriesService holds the operations on stories. Use it through
// [Client.Stories].
type StoriesService struct {
	client *Client
}

var storiesCreateEndpoint = mustEndpoint(&Endpoint{
	Name:       "Stories.Create",
	Method:     http.MethodPost,
	Path:       "stories",
	Data:       Story,
	ResultKind: Story,
})

// Create creates a new story.
func (s *StoriesService) Create(ctx context.Context, args Args) (*Object, error) {
	return callObject(ctx, s.client, storiesCreateEndpoint, nil, args, nil)
}

var storiesGetEndpoint = mustEndpoint(&Endpoint{
	Name:       "Stories.Get",
	Method:     http.MethodGet,
	Path:       "stories/{storyId}",
	ResultKind: Story,
})

// Get retrieves a story by ID.
func (s *StoriesService) Get(ctx context.Context, storyID int) (*Object, error) {
	return callObject(ctx, s.client, storiesGetEndpoint, []any{storyID}, nil, nil)
}
