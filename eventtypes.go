package everyaction

//
// The EventTypes service.
//

import (
	"context"
	"net/http"
)

// EventTypesService holds the operations on event types. Use it
// through [Client.EventTypes].
type EventTypesService struct {
	client *Client
}

var eventTypesGetEndpoint = mustEndpoint(&Endpoint{
	Name:       "EventTypes.Get",
	Method:     http.MethodGet,
	Path:       "events/types/{eventTypeId}",
	ResultKind: EventType,
})

// Get retrieves an event type by ID.
func (s *EventTypesService) Get(ctx context.Context, eventTypeID int) (*Object, error) {
	return callObject(ctx, s.client, eventTypesGetEndpoint, []any{eventTypeID}, nil, nil)
}

var eventTypesListEndpoint = mustEndpoint(&Endpoint{
	Name:        "EventTypes.List",
	Method:      http.MethodGet,
	Path:        "events/types",
	ResultArray: true,
	ResultKind:  EventType,
})

// List lists the event types.
func (s *EventTypesService) List(ctx context.Context) ([]*Object, error) {
	return callList(ctx, s.client, eventTypesListEndpoint, nil, nil, nil)
}
