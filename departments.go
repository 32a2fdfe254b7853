package everyaction

//
// The Departments service.
//

import (
	"context"
	"net/http"
)

// DepartmentsService holds the operations on employer departments.
// Use it through [Client.Departments].
type DepartmentsService struct {
	client *Client
}

var departmentsGetEndpoint = mustEndpoint(&Endpoint{
	Name:       "Departments.Get",
	Method:     http.MethodGet,
	Path:       "departments/{departmentId}",
	ResultKind: Department,
})

// Get retrieves a department by ID.
func (s *DepartmentsService) Get(ctx context.Context, departmentID int) (*Object, error) {
	return callObject(ctx, s.client, departmentsGetEndpoint, []any{departmentID}, nil, nil)
}

var departmentsListEndpoint = mustEndpoint(&Endpoint{
	Name:       "Departments.List",
	Method:     http.MethodGet,
	Path:       "departments",
	Paginated:  true,
	QueryArgs:  []string{"employerId", "isMyOrganization"},
	ResultKind: Department,
})

// List lists departments, optionally restricted to one employer or to
// the caller's own organization.
func (s *DepartmentsService) List(ctx context.Context, args Args) ([]*Object, error) {
	return callList(ctx, s.client, departmentsListEndpoint, nil, args, nil)
}
