package everyaction

//
// The Commitments service.
//

import (
	"context"
	"net/http"
)

// CommitmentsService holds the operations on recurring commitments.
// Use it through [Client.Commitments].
type CommitmentsService struct {
	client *Client
}

var commitmentsUpdateEndpoint = mustEndpoint(&Endpoint{
	Name:       "Commitments.Update",
	Method:     http.MethodPatch,
	Path:       "commitments/{commitmentId}",
	Data:       Commitment,
	ResultKind: Commitment,
})

// Update applies the given changes to a commitment.
func (s *CommitmentsService) Update(ctx context.Context, commitmentID int, args Args) (*Object, error) {
	return callObject(ctx, s.client, commitmentsUpdateEndpoint, []any{commitmentID}, args, nil)
}
