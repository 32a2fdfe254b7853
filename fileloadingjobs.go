package everyaction

//
// The FileLoadingJobs service.
//

import (
	"context"
	"net/http"
)

// FileLoadingJobsService holds the operations on file loading jobs.
// Use it through [Client.FileLoadingJobs].
type FileLoadingJobsService struct {
	client *Client
}

var fileLoadingJobsCreateEndpoint = mustEndpoint(&Endpoint{
	Name:       "FileLoadingJobs.Create",
	Method:     http.MethodPost,
	Path:       "fileLoadingJobs",
	Data:       FileLoadingJob,
	ResultKind: FileLoadingJob,
})

// Create starts a file loading job.
func (s *FileLoadingJobsService) Create(ctx context.Context, args Args) (*Object, error) {
	return callObject(ctx, s.client, fileLoadingJobsCreateEndpoint, nil, args, nil)
}

var fileLoadingJobsGetEndpoint = mustEndpoint(&Endpoint{
	Name:       "FileLoadingJobs.Get",
	Method:     http.MethodGet,
	Path:       "fileLoadingJobs/{jobId}",
	ResultKind: FileLoadingJob,
})

// Get retrieves a file loading job by ID.
func (s *FileLoadingJobsService) Get(ctx context.Context, jobID int) (*Object, error) {
	return callObject(ctx, s.client, fileLoadingJobsGetEndpoint, []any{jobID}, nil, nil)
}
