package everyaction

//
// The VoterRegistrationBatches service: registration batches, their
// registrants, and the related form and program catalogs.
//

import (
	"context"
	"net/http"
)

// VoterRegistrationBatchesService holds the operations on voter
// registration batches. Use it through
// [Client.VoterRegistrationBatches].
type VoterRegistrationBatchesService struct {
	client *Client
}

var voterRegistrationBatchesAddRegistrantsEndpoint = mustEndpoint(&Endpoint{
	Name:        "VoterRegistrationBatches.AddRegistrants",
	Method:      http.MethodPost,
	Path:        "voterRegistrationBatches/{batchId}/people",
	ResultArray: true,
	ResultKind:  AddRegistrantsResponse,
})

// AddRegistrants adds registrants to a batch, returning one response
// per registrant.
func (s *VoterRegistrationBatchesService) AddRegistrants(ctx context.Context, batchID int, registrants ...*Object) ([]*Object, error) {
	if registrants == nil {
		registrants = []*Object{}
	}
	return callList(ctx, s.client, voterRegistrationBatchesAddRegistrantsEndpoint, []any{batchID}, nil, registrants)
}

var voterRegistrationBatchesCreateEndpoint = mustEndpoint(&Endpoint{
	Name:       "VoterRegistrationBatches.Create",
	Method:     http.MethodPost,
	Path:       "voterRegistrationBatches",
	Data:       VoterRegistrationBatch,
	ResultKind: VoterRegistrationBatch,
})

// Create creates a new voter registration batch.
func (s *VoterRegistrationBatchesService) Create(ctx context.Context, args Args) (*Object, error) {
	return callObject(ctx, s.client, voterRegistrationBatchesCreateEndpoint, nil, args, nil)
}

var voterRegistrationBatchesFormsEndpoint = mustEndpoint(&Endpoint{
	Name:       "VoterRegistrationBatches.Forms",
	Method:     http.MethodGet,
	Path:       "voterRegistrationBatches/registrationForms",
	Paginated:  true,
	ResultKind: RegistrationForm,
})

// Forms lists the registration forms.
func (s *VoterRegistrationBatchesService) Forms(ctx context.Context, args Args) ([]*Object, error) {
	return callList(ctx, s.client, voterRegistrationBatchesFormsEndpoint, nil, args, nil)
}

var voterRegistrationBatchesListEndpoint = mustEndpoint(&Endpoint{
	Name:   "VoterRegistrationBatches.List",
	Method: http.MethodGet,
	Path:   "voterRegistrationBatches",
	QueryArgs: []string{
		"createdAfter",
		"createdBefore",
		"onlyMyBatches",
		"personType",
		"programType",
		"stateCode",
		"status",
		"$orderby",
	},
	Paginated:  true,
	ResultKind: VoterRegistrationBatch,
})

// List lists voter registration batches matching the given criteria.
func (s *VoterRegistrationBatchesService) List(ctx context.Context, args Args) ([]*Object, error) {
	return callList(ctx, s.client, voterRegistrationBatchesListEndpoint, nil, args, nil)
}

var voterRegistrationBatchesProgramsEndpoint = mustEndpoint(&Endpoint{
	Name:       "VoterRegistrationBatches.Programs",
	Method:     http.MethodGet,
	Path:       "voterRegistrationBatches/programTypes",
	Paginated:  true,
	ResultKind: ProgramType,
})

// Programs lists the program types.
func (s *VoterRegistrationBatchesService) Programs(ctx context.Context, args Args) ([]*Object, error) {
	return callList(ctx, s.client, voterRegistrationBatchesProgramsEndpoint, nil, args, nil)
}

var voterRegistrationBatchesSupportedFieldsEndpoint = mustEndpoint(&Endpoint{
	Name:       "VoterRegistrationBatches.SupportedFields",
	Method:     http.MethodGet,
	Path:       "voterRegistrationBatches/states/{state}/supportedFields",
	Paginated:  true,
	ResultKind: SupportField,
})

// SupportedFields lists the registration fields supported in the
// given state.
func (s *VoterRegistrationBatchesService) SupportedFields(ctx context.Context, state string, args Args) ([]*Object, error) {
	return callList(ctx, s.client, voterRegistrationBatchesSupportedFieldsEndpoint, []any{state}, args, nil)
}

var voterRegistrationBatchesUpdateStatusEndpoint = mustEndpoint(&Endpoint{
	Name:     "VoterRegistrationBatches.UpdateStatus",
	Method:   http.MethodPatch,
	Path:     "voterRegistrationBatches/{batchId}",
	PropKeys: []string{"status"},
	NoResult: true,
})

// UpdateStatus updates the status of a batch.
func (s *VoterRegistrationBatchesService) UpdateStatus(ctx context.Context, batchID int, args Args) error {
	return callNone(ctx, s.client, voterRegistrationBatchesUpdateStatusEndpoint, []any{batchID}, args, nil)
}
