package everyaction

//
// The FinancialBatches service.
//

import (
	"context"
	"net/http"
)

// FinancialBatchesService holds the operations on financial batches.
// Use it through [Client.FinancialBatches].
type FinancialBatchesService struct {
	client *Client
}

var financialBatchesCreateEndpoint = mustEndpoint(&Endpoint{
	Name:       "FinancialBatches.Create",
	Method:     http.MethodPost,
	Path:       "financialBatches",
	Data:       FinancialBatch,
	ResultKind: FinancialBatch,
})

// Create creates a financial batch.
func (s *FinancialBatchesService) Create(ctx context.Context, args Args) (*Object, error) {
	return callObject(ctx, s.client, financialBatchesCreateEndpoint, nil, args, nil)
}

var financialBatchesGetEndpoint = mustEndpoint(&Endpoint{
	Name:       "FinancialBatches.Get",
	Method:     http.MethodGet,
	Path:       "financialBatches/{financialBatchId}",
	ResultKind: FinancialBatch,
})

// Get retrieves a financial batch by ID.
func (s *FinancialBatchesService) Get(ctx context.Context, financialBatchID int) (*Object, error) {
	return callObject(ctx, s.client, financialBatchesGetEndpoint, []any{financialBatchID}, nil, nil)
}

var financialBatchesListEndpoint = mustEndpoint(&Endpoint{
	Name:   "FinancialBatches.List",
	Method: http.MethodGet,
	Path:   "financialBatches",
	QueryArgs: []string{
		"includeAllAutoGenerated", "includeAllStatuses",
		"includeUnassigned", "searchKeyword",
	},
	ResultArrayKey: "items",
	ResultKind:     FinancialBatch,
})

// List lists financial batches matching the given filters.
func (s *FinancialBatchesService) List(ctx context.Context, args Args) ([]*Object, error) {
	return callList(ctx, s.client, financialBatchesListEndpoint, nil, args, nil)
}
