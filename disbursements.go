package everyaction

//
// The Disbursements service.
//

import (
	"context"
	"net/http"
)

// DisbursementsService holds the operations on disbursements. Use it
// through [Client.Disbursements].
type DisbursementsService struct {
	client *Client
}

var disbursementsCreateOrUpdateEndpoint = mustEndpoint(&Endpoint{
	Name:     "Disbursements.CreateOrUpdate",
	Method:   http.MethodPost,
	Path:     "disbursements",
	Data:     Disbursement,
	NoResult: true,
})

// CreateOrUpdate records a disbursement, updating it when args
// carries its disbursementId.
func (s *DisbursementsService) CreateOrUpdate(ctx context.Context, args Args) error {
	return callNone(ctx, s.client, disbursementsCreateOrUpdateEndpoint, nil, args, nil)
}

var disbursementsGetEndpoint = mustEndpoint(&Endpoint{
	Name:       "Disbursements.Get",
	Method:     http.MethodGet,
	Path:       "disbursements/{disbursementId}",
	ResultKind: Disbursement,
})

// Get retrieves a disbursement by ID.
func (s *DisbursementsService) Get(ctx context.Context, disbursementID int) (*Object, error) {
	return callObject(ctx, s.client, disbursementsGetEndpoint, []any{disbursementID}, nil, nil)
}
