package everyaction

//
// The JobClasses service.
//

import (
	"context"
	"net/http"
)

// JobClassesService holds the operations on job classes. Use it
// through [Client.JobClasses].
type JobClassesService struct {
	client *Client
}

var jobClassesCreateEndpoint = mustEndpoint(&Endpoint{
	Name:       "JobClasses.Create",
	Method:     http.MethodPost,
	Path:       "jobClasses",
	Data:       JobClass,
	ResultKind: JobClass,
})

// Create creates a job class.
func (s *JobClassesService) Create(ctx context.Context, args Args) (*Object, error) {
	return callObject(ctx, s.client, jobClassesCreateEndpoint, nil, args, nil)
}

var jobClassesGetEndpoint = mustEndpoint(&Endpoint{
	Name:       "JobClasses.Get",
	Method:     http.MethodGet,
	Path:       "jobClasses/{jobClassId}",
	ResultKind: JobClass,
})

// Get retrieves a job class by ID.
func (s *JobClassesService) Get(ctx context.Context, jobClassID int) (*Object, error) {
	return callObject(ctx, s.client, jobClassesGetEndpoint, []any{jobClassID}, nil, nil)
}

var jobClassesListEndpoint = mustEndpoint(&Endpoint{
	Name:       "JobClasses.List",
	Method:     http.MethodGet,
	Path:       "jobClasses",
	Paginated:  true,
	ResultKind: JobClass,
})

// List lists the job classes.
func (s *JobClassesService) List(ctx context.Context, args Args) ([]*Object, error) {
	return callList(ctx, s.client, jobClassesListEndpoint, nil, args, nil)
}
