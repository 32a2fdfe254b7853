package everyaction

//
// The BulkImport service: batch loading of records through bulk
// import jobs and their mapping types.
//

import (
	"context"
	"net/http"
)

// BulkImportService holds the operations on bulk import jobs. Use it
// through [Client.BulkImport].
type BulkImportService struct {
	client *Client
}

var bulkImportCreateEndpoint = mustEndpoint(&Endpoint{
	Name:       "BulkImport.Create",
	Method:     http.MethodPost,
	Path:       "bulkImportJobs",
	Data:       BulkImportJob,
	ResultKind: BulkImportJobData,
})

// Create starts a bulk import job.
func (s *BulkImportService) Create(ctx context.Context, args Args) (*Object, error) {
	return callObject(ctx, s.client, bulkImportCreateEndpoint, nil, args, nil)
}

var bulkImportGetEndpoint = mustEndpoint(&Endpoint{
	Name:       "BulkImport.Get",
	Method:     http.MethodGet,
	Path:       "bulkImportJobs/{jobId}",
	ResultKind: BulkImportJobData,
})

// Get retrieves a bulk import job by ID.
func (s *BulkImportService) Get(ctx context.Context, jobID int) (*Object, error) {
	return callObject(ctx, s.client, bulkImportGetEndpoint, []any{jobID}, nil, nil)
}

var bulkImportMappingTypeEndpoint = mustEndpoint(&Endpoint{
	Name:       "BulkImport.MappingType",
	Method:     http.MethodGet,
	Path:       "bulkImportMappingTypes/{mappingTypeName}",
	ResultKind: MappingTypeData,
})

// MappingType retrieves a bulk import mapping type by name.
func (s *BulkImportService) MappingType(ctx context.Context, name string) (*Object, error) {
	return callObject(ctx, s.client, bulkImportMappingTypeEndpoint, []any{name}, nil, nil)
}

var bulkImportMappingTypesEndpoint = mustEndpoint(&Endpoint{
	Name:       "BulkImport.MappingTypes",
	Method:     http.MethodGet,
	Path:       "bulkImportMappingTypes",
	Paginated:  true,
	ResultKind: MappingTypeData,
})

// MappingTypes lists the bulk import mapping types.
func (s *BulkImportService) MappingTypes(ctx context.Context, args Args) ([]*Object, error) {
	return callList(ctx, s.client, bulkImportMappingTypesEndpoint, nil, args, nil)
}

var bulkImportResourcesEndpoint = mustEndpoint(&Endpoint{
	Name:        "BulkImport.Resources",
	Method:      http.MethodGet,
	Path:        "bulkImportJobs/resources",
	ResultArray: true,
})

// Resources lists the names of the resource types bulk imports can
// load.
func (s *BulkImportService) Resources(ctx context.Context) ([]string, error) {
	return callStrings(ctx, s.client, bulkImportResourcesEndpoint, nil, nil, nil)
}

var bulkImportValuesEndpoint = mustEndpoint(&Endpoint{
	Name:       "BulkImport.Values",
	Method:     http.MethodGet,
	Path:       "bulkImportMappingTypes/{mappingTypeName}/{fieldName}/values",
	Paginated:  true,
	ResultKind: ValueMappingData,
})

// Values lists the acceptable values of a mapping type field.
func (s *BulkImportService) Values(ctx context.Context, mappingTypeName, fieldName string, args Args) ([]*Object, error) {
	return callList(ctx, s.client, bulkImportValuesEndpoint, []any{mappingTypeName, fieldName}, args, nil)
}
