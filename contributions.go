package everyaction

//
// The Contributions service: contributions, their adjustments, and
// their attributions.
//

import (
	"context"
	"net/http"
)

// ContributionsService holds the operations on contributions. Use it
// through [Client.Contributions].
type ContributionsService struct {
	client *Client
}

var contributionsAdjustEndpoint = mustEndpoint(&Endpoint{
	Name:       "Contributions.Adjust",
	Method:     http.MethodPost,
	Path:       "contributions/{contributionId}/adjustments",
	Data:       Adjustment,
	ResultKind: AdjustmentResponse,
})

// Adjust records an adjustment, such as a refund, against a
// contribution.
func (s *ContributionsService) Adjust(ctx context.Context, contributionID int, args Args) (*Object, error) {
	return callObject(ctx, s.client, contributionsAdjustEndpoint, []any{contributionID}, args, nil)
}

var contributionsAttributionTypesEndpoint = mustEndpoint(&Endpoint{
	Name:        "Contributions.AttributionTypes",
	Method:      http.MethodGet,
	Path:        "contributions/attributionTypes",
	ResultArray: true,
})

// AttributionTypes lists the attribution type names.
func (s *ContributionsService) AttributionTypes(ctx context.Context) ([]string, error) {
	return callStrings(ctx, s.client, contributionsAttributionTypesEndpoint, nil, nil, nil)
}

var contributionsCreateEndpoint = mustEndpoint(&Endpoint{
	Name:       "Contributions.Create",
	Method:     http.MethodPost,
	Path:       "contributions",
	Data:       Contribution,
	ResultKind: Contribution,
})

// Create records a contribution.
func (s *ContributionsService) Create(ctx context.Context, args Args) (*Object, error) {
	return callObject(ctx, s.client, contributionsCreateEndpoint, nil, args, nil)
}

var contributionsCreateOrUpdateAttributionEndpoint = mustEndpoint(&Endpoint{
	Name:     "Contributions.CreateOrUpdateAttribution",
	Method:   http.MethodPut,
	Path:     "contributions/{contributionId}/attributions/{vanId}",
	Data:     Attribution,
	NoResult: true,
})

// CreateOrUpdateAttribution attributes a share of a contribution to a
// person.
func (s *ContributionsService) CreateOrUpdateAttribution(ctx context.Context, contributionID, vanID int, args Args) error {
	return callNone(ctx, s.client, contributionsCreateOrUpdateAttributionEndpoint, []any{contributionID, vanID}, args, nil)
}

var contributionsDeleteAttributionEndpoint = mustEndpoint(&Endpoint{
	Name:     "Contributions.DeleteAttribution",
	Method:   http.MethodDelete,
	Path:     "contributions/{contributionId}/attributions/{vanId}",
	NoResult: true,
})

// DeleteAttribution removes the attribution of a contribution to a
// person.
func (s *ContributionsService) DeleteAttribution(ctx context.Context, contributionID, vanID int) error {
	return callNone(ctx, s.client, contributionsDeleteAttributionEndpoint, []any{contributionID, vanID}, nil, nil)
}

var contributionsGetEndpoint = mustEndpoint(&Endpoint{
	Name:       "Contributions.Get",
	Method:     http.MethodGet,
	Path:       "contributions/{contributionId}",
	ResultKind: Contribution,
})

// Get retrieves a contribution by ID.
func (s *ContributionsService) Get(ctx context.Context, contributionID int) (*Object, error) {
	return callObject(ctx, s.client, contributionsGetEndpoint, []any{contributionID}, nil, nil)
}

var contributionsGetAltEndpoint = mustEndpoint(&Endpoint{
	Name:       "Contributions.GetAlt",
	Method:     http.MethodGet,
	Path:       "contributions/{alternateIdType}:{alternateId}",
	ResultKind: Contribution,
})

// GetAlt retrieves a contribution by an alternate identifier.
func (s *ContributionsService) GetAlt(ctx context.Context, idType, id string) (*Object, error) {
	return callObject(ctx, s.client, contributionsGetAltEndpoint, []any{idType, id}, nil, nil)
}
