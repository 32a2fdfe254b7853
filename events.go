package everyaction

//
// The Events service.
//

import (
	"context"
	"net/http"
)

// EventsService holds the operations on events. Use it through
// [Client.Events].
type EventsService struct {
	client *Client
}

var eventsAddShiftEndpoint = mustEndpoint(&Endpoint{
	Name:       "Events.AddShift",
	Method:     http.MethodPost,
	Path:       "events/{eventId}/shifts",
	Data:       EventShift,
	ResultKind: EventShift,
})

// AddShift adds a shift to an event.
func (s *EventsService) AddShift(ctx context.Context, eventID int, args Args) (*Object, error) {
	return callObject(ctx, s.client, eventsAddShiftEndpoint, []any{eventID}, args, nil)
}

var eventsCreateEndpoint = mustEndpoint(&Endpoint{
	Name:       "Events.Create",
	Method:     http.MethodPost,
	Path:       "events",
	Data:       Event,
	ResultKind: Event,
})

// Create creates an event.
func (s *EventsService) Create(ctx context.Context, args Args) (*Object, error) {
	return callObject(ctx, s.client, eventsCreateEndpoint, nil, args, nil)
}

var eventsDeleteEndpoint = mustEndpoint(&Endpoint{
	Name:     "Events.Delete",
	Method:   http.MethodDelete,
	Path:     "events/{eventId}",
	NoResult: true,
})

// Delete deletes an event by ID.
func (s *EventsService) Delete(ctx context.Context, eventID int) error {
	return callNone(ctx, s.client, eventsDeleteEndpoint, []any{eventID}, nil, nil)
}

var eventsGetEndpoint = mustEndpoint(&Endpoint{
	Name:       "Events.Get",
	Method:     http.MethodGet,
	Path:       "events/{eventId}",
	QueryArgs:  []string{"$expand"},
	ResultKind: Event,
})

// Get retrieves an event by ID. The expand argument selects
// additional record sections to include.
func (s *EventsService) Get(ctx context.Context, eventID int, args Args) (*Object, error) {
	return callObject(ctx, s.client, eventsGetEndpoint, []any{eventID}, args, nil)
}

var eventsListEndpoint = mustEndpoint(&Endpoint{
	Name:      "Events.List",
	Method:    http.MethodGet,
	Path:      "events",
	Paginated: true,
	MaxTop:    50,
	QueryArgs: []string{
		"codeIds", "createdByCommitteeId", "districtFieldValue",
		"eventTypeIds", "inRepetitionWithEventId", "startingAfter",
		"startingBefore", "$expand",
	},
	Props:      map[string]*Field{"districtFieldValue": prop()},
	ResultKind: Event,
})

// List lists events matching the given filters.
func (s *EventsService) List(ctx context.Context, args Args) ([]*Object, error) {
	return callList(ctx, s.client, eventsListEndpoint, nil, args, nil)
}

var eventsPatchEndpoint = mustEndpoint(&Endpoint{
	Name:       "Events.Patch",
	Method:     http.MethodPatch,
	Path:       "events/{eventId}",
	QueryArgs:  []string{"recurrenceType"},
	PathToBody: []string{"eventId"},
	PropKeys:   []string{"isActive"},
	NoResult:   true,
})

// Patch applies a partial update, such as toggling isActive, to an
// event. For recurring events recurrenceType selects which instances
// change.
func (s *EventsService) Patch(ctx context.Context, eventID int, args Args) error {
	return callNone(ctx, s.client, eventsPatchEndpoint, []any{eventID}, args, nil)
}

var eventsUpdateEndpoint = mustEndpoint(&Endpoint{
	Name:     "Events.Update",
	Method:   http.MethodPut,
	Path:     "events/{eventId}",
	Data:     Event,
	NoResult: true,
})

// Update replaces an event.
func (s *EventsService) Update(ctx context.Context, eventID int, args Args) error {
	return callNone(ctx, s.client, eventsUpdateEndpoint, []any{eventID}, args, nil)
}
