package everyaction

//
// The ScheduleTypes service: schedule types for organizing events.
//

import (
	"context"
	"net/http"
)

// ScheduleTypesService holds the operations on schedule types. Use
// it through [Client.ScheduleTypes].
type ScheduleTypesService struct {
	client *Client
}

var scheduleTypesCreateEndpoint = mustEndpoint(&Endpoint{
	Name:       "ScheduleTypes.Create",
	Method:     http.MethodPost,
	Path:       "scheduleTypes",
	Data:       ScheduleType,
	ResultKind: ScheduleType,
})

// Create creates a new schedule type.
func (s *ScheduleTypesService) Create(ctx context.Context, args Args) (*Object, error) {
	return callObject(ctx, s.client, scheduleTypesCreateEndpoint, nil, args, nil)
}

var scheduleTypesGetEndpoint = mustEndpoint(&Endpoint{
	Name:       "ScheduleTypes.Get",
	Method:     http.MethodGet,
	Path:       "scheduleTypes/{scheduleTypeId}",
	ResultKind: ScheduleType,
})

// Get retrieves a schedule type by ID.
func (s *ScheduleTypesService) Get(ctx context.Context, scheduleTypeID int) (*Object, error) {
	return callObject(ctx, s.client, scheduleTypesGetEndpoint, []any{scheduleTypeID}, nil, nil)
}

var scheduleTypesListEndpoint = mustEndpoint(&Endpoint{
	Name:       "ScheduleTypes.List",
	Method:     http.MethodGet,
	Path:       "scheduleTypes",
	Paginated:  true,
	ResultKind: ScheduleType,
})

// List lists the schedule types.
func (s *ScheduleTypesService) List(ctx context.Context, args Args) ([]*Object, error) {
	return callList(ctx, s.client, scheduleTypesListEndpoint, nil, args, nil)
}
