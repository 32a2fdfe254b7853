package everyaction

//
// The Employers service: employers and the bargaining units, job
// classes, departments, and worksites hanging off them.
//

import (
	"context"
	"net/http"
)

// EmployersService holds the operations on employers. Use it through
// [Client.Employers].
type EmployersService struct {
	client *Client
}

var employersAddBargainingUnitEndpoint = mustEndpoint(&Endpoint{
	Name:       "Employers.AddBargainingUnit",
	Method:     http.MethodPost,
	Path:       "employers/{employerId}/bargainingUnits/{bargainingUnitId}",
	ResultKind: EmployerBargainingUnit,
})

// AddBargainingUnit associates a bargaining unit with an employer.
func (s *EmployersService) AddBargainingUnit(ctx context.Context, employerID, bargainingUnitID int) (*Object, error) {
	return callObject(ctx, s.client, employersAddBargainingUnitEndpoint, []any{employerID, bargainingUnitID}, nil, nil)
}

var employersAddJobClassEndpoint = mustEndpoint(&Endpoint{
	Name:       "Employers.AddJobClass",
	Method:     http.MethodPost,
	Path:       "employers/{employerId}/bargainingUnits/{bargainingUnitId}/jobClasses/{jobClassId}",
	ResultKind: EmployerBargainingUnit,
})

// AddJobClass associates a job class with a bargaining unit of an
// employer.
func (s *EmployersService) AddJobClass(ctx context.Context, employerID, bargainingUnitID, jobClassID int) (*Object, error) {
	return callObject(ctx, s.client, employersAddJobClassEndpoint, []any{employerID, bargainingUnitID, jobClassID}, nil, nil)
}

var employersAddShiftTypeEndpoint = mustEndpoint(&Endpoint{
	Name:       "Employers.AddShiftType",
	Method:     http.MethodPost,
	Path:       "employers/{employerId}/shiftTypes/{shiftTypeId}",
	Data:       ShiftType,
	ResultKind: ShiftType,
})

// AddShiftType associates a shift type with an employer.
func (s *EmployersService) AddShiftType(ctx context.Context, employerID, shiftTypeID int, args Args) (*Object, error) {
	return callObject(ctx, s.client, employersAddShiftTypeEndpoint, []any{employerID, shiftTypeID}, args, nil)
}

var employersCreateEndpoint = mustEndpoint(&Endpoint{
	Name:       "Employers.Create",
	Method:     http.MethodPost,
	Path:       "employers",
	Data:       Employer,
	ResultKind: Employer,
})

// Create creates an employer.
func (s *EmployersService) Create(ctx context.Context, args Args) (*Object, error) {
	return callObject(ctx, s.client, employersCreateEndpoint, nil, args, nil)
}

var employersCreateDepartmentEndpoint = mustEndpoint(&Endpoint{
	Name:       "Employers.CreateDepartment",
	Method:     http.MethodPost,
	Path:       "employers/{employerId}/departments",
	Data:       Department,
	ResultKind: Department,
})

// CreateDepartment creates a department under an employer.
func (s *EmployersService) CreateDepartment(ctx context.Context, employerID int, args Args) (*Object, error) {
	return callObject(ctx, s.client, employersCreateDepartmentEndpoint, []any{employerID}, args, nil)
}

var employersCreateWorksiteEndpoint = mustEndpoint(&Endpoint{
	Name:       "Employers.CreateWorksite",
	Method:     http.MethodPost,
	Path:       "employers/{employerId}/worksites",
	Data:       Worksite,
	ResultKind: Worksite,
})

// CreateWorksite creates a worksite under an employer.
func (s *EmployersService) CreateWorksite(ctx context.Context, employerID int, args Args) (*Object, error) {
	return callObject(ctx, s.client, employersCreateWorksiteEndpoint, []any{employerID}, args, nil)
}

var employersGetEndpoint = mustEndpoint(&Endpoint{
	Name:       "Employers.Get",
	Method:     http.MethodGet,
	Path:       "employers/{employerId}",
	QueryArgs:  []string{"$expand"},
	ResultKind: Employer,
})

// Get retrieves an employer by ID. The expand argument selects
// additional record sections to include.
func (s *EmployersService) Get(ctx context.Context, employerID int, args Args) (*Object, error) {
	return callObject(ctx, s.client, employersGetEndpoint, []any{employerID}, args, nil)
}

var employersListEndpoint = mustEndpoint(&Endpoint{
	Name:       "Employers.List",
	Method:     http.MethodGet,
	Path:       "employers",
	Paginated:  true,
	MaxTop:     500,
	QueryArgs:  []string{"isMyOrganization", "$expand"},
	ResultKind: Employer,
})

// List lists employers.
func (s *EmployersService) List(ctx context.Context, args Args) ([]*Object, error) {
	return callList(ctx, s.client, employersListEndpoint, nil, args, nil)
}

var employersUpdateEndpoint = mustEndpoint(&Endpoint{
	Name:       "Employers.Update",
	Method:     http.MethodPatch,
	Path:       "employers/{employerId}",
	PropKeys:   []string{"isMyOrganization"},
	ResultKind: Employer,
})

// Update applies the given changes to an employer.
func (s *EmployersService) Update(ctx context.Context, employerID int, args Args) (*Object, error) {
	return callObject(ctx, s.client, employersUpdateEndpoint, []any{employerID}, args, nil)
}
