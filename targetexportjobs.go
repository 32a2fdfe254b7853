package everyaction

//
// The TargetExportJobs service: asynchronous target exports.
//

import (
	"context"
	"net/http"
)

// TargetExportJobsService holds the operations on target export
// jobs. Use it through [Client.TargetExportJobs].
type TargetExportJobsService struct {
	client *Client
}

var targetExportJobsCreateEndpoint = mustEndpoint(&Endpoint{
	Name:       "TargetExportJobs.Create",
	Method:     http.MethodPost,
	Path:       "targetExportJobs",
	Data:       TargetExportJob,
	ResultKind: TargetExportJob,
})

// Create requests an export of the given target.
func (s *TargetExportJobsService) Create(ctx context.Context, args Args) (*Object, error) {
	return callObject(ctx, s.client, targetExportJobsCreateEndpoint, nil, args, nil)
}

var targetExportJobsGetEndpoint = mustEndpoint(&Endpoint{
	Name:       "TargetExportJobs.Get",
	Method:     http.MethodGet,
	Path:       "targetExportJobs/{exportJobId}",
	ResultKind: TargetExportJob,
})

// Get retrieves a target export job by ID.
func (s *TargetExportJobsService) Get(ctx context.Context, jobID int) (*Object, error) {
	return callObject(ctx, s.client, targetExportJobsGetEndpoint, []any{jobID}, nil, nil)
}
