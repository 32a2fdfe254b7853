package everyaction

//
// The ExportJobs service.
//

import (
	"context"
	"net/http"
)

// ExportJobsService holds the operations on export jobs. Use it
// through [Client.ExportJobs].
type ExportJobsService struct {
	client *Client
}

var exportJobsCreateEndpoint = mustEndpoint(&Endpoint{
	Name:       "ExportJobs.Create",
	Method:     http.MethodPost,
	Path:       "exportJobs",
	PropKeys:   []string{"savedListId", "type", "webhookUrl"},
	ResultKind: ExportJob,
})

// Create starts an export job for a saved list.
func (s *ExportJobsService) Create(ctx context.Context, args Args) (*Object, error) {
	return callObject(ctx, s.client, exportJobsCreateEndpoint, nil, args, nil)
}

var exportJobsGetEndpoint = mustEndpoint(&Endpoint{
	Name:       "ExportJobs.Get",
	Method:     http.MethodGet,
	Path:       "exportJobs/{exportJobId}",
	ResultKind: ExportJob,
})

// Get retrieves an export job by ID.
func (s *ExportJobsService) Get(ctx context.Context, exportJobID int) (*Object, error) {
	return callObject(ctx, s.client, exportJobsGetEndpoint, []any{exportJobID}, nil, nil)
}

var exportJobsTypesEndpoint = mustEndpoint(&Endpoint{
	Name:       "ExportJobs.Types",
	Method:     http.MethodGet,
	Path:       "exportJobTypes",
	Paginated:  true,
	ResultKind: ExportJobType,
})

// Types lists the export job types.
func (s *ExportJobsService) Types(ctx context.Context, args Args) ([]*Object, error) {
	return callList(ctx, s.client, exportJobsTypesEndpoint, nil, args, nil)
}

// FindType retrieves the export job type with the given name, matched
// case-insensitively.
func (s *ExportJobsService) FindType(ctx context.Context, name string) (*Object, error) {
	types, err := s.Types(ctx, Args{"limit": 0})
	if err != nil {
		return nil, err
	}
	return findByName(types, name, "export job type")
}

// NameToType retrieves the export job types keyed by name.
func (s *ExportJobsService) NameToType(ctx context.Context) (map[string]*Object, error) {
	types, err := s.Types(ctx, Args{"limit": 0})
	if err != nil {
		return nil, err
	}
	return namedByName(types), nil
}
