package everyaction

//
// The People service: finding, creating, and annotating person
// records. Most operations address a person by VAN ID; the Alt
// variants address them by an alternate identifier such as a DWID.
//

import (
	"context"
	"fmt"
	"net/http"
)

// PeopleService holds the operations on person records. Use it
// through [Client.People].
type PeopleService struct {
	client *Client
}

var peopleActivistCodesEndpoint = mustEndpoint(&Endpoint{
	Name:       "People.ActivistCodes",
	Method:     http.MethodGet,
	Path:       "people/{vanId}/activistCodes",
	Paginated:  true,
	ResultKind: ActivistCodeData,
})

// ActivistCodes lists the activist codes applied to a person.
func (s *PeopleService) ActivistCodes(ctx context.Context, vanID int, args Args) ([]*Object, error) {
	return callList(ctx, s.client, peopleActivistCodesEndpoint, []any{vanID}, args, nil)
}

var peopleAddCanvassResponsesEndpoint = mustEndpoint(&Endpoint{
	Name:     "People.AddCanvassResponses",
	Method:   http.MethodPost,
	Path:     "people/{vanId}/canvassResponses",
	Data:     CanvassResponse,
	NoResult: true,
})

// AddCanvassResponses records canvass responses, such as survey
// responses or applied activist codes, for a person.
func (s *PeopleService) AddCanvassResponses(ctx context.Context, vanID int, args Args) error {
	return callNone(ctx, s.client, peopleAddCanvassResponsesEndpoint, []any{vanID}, args, nil)
}

var peopleAddCanvassResponsesAltEndpoint = mustEndpoint(&Endpoint{
	Name:     "People.AddCanvassResponsesAlt",
	Method:   http.MethodPost,
	Path:     "people/{personIdType}:{personId}/canvassResponses",
	Data:     CanvassResponse,
	NoResult: true,
})

// AddCanvassResponsesAlt is [PeopleService.AddCanvassResponses] for a
// person addressed by an alternate identifier.
func (s *PeopleService) AddCanvassResponsesAlt(ctx context.Context, idType, id string, args Args) error {
	return callNone(ctx, s.client, peopleAddCanvassResponsesAltEndpoint, []any{idType, id}, args, nil)
}

var peopleAddCodeEndpoint = mustEndpoint(&Endpoint{
	Name:     "People.AddCode",
	Method:   http.MethodPost,
	Path:     "people/{vanId}/codes",
	Data:     Code,
	NoResult: true,
})

// AddCode applies a source code or tag to a person.
func (s *PeopleService) AddCode(ctx context.Context, vanID int, args Args) error {
	return callNone(ctx, s.client, peopleAddCodeEndpoint, []any{vanID}, args, nil)
}

var peopleAddCodeAltEndpoint = mustEndpoint(&Endpoint{
	Name:     "People.AddCodeAlt",
	Method:   http.MethodPost,
	Path:     "people/{personIdType}:{personId}/codes",
	Data:     Code,
	NoResult: true,
})

// AddCodeAlt is [PeopleService.AddCode] for a person addressed by an
// alternate identifier.
func (s *PeopleService) AddCodeAlt(ctx context.Context, idType, id string, args Args) error {
	return callNone(ctx, s.client, peopleAddCodeAltEndpoint, []any{idType, id}, args, nil)
}

var peopleAddMyActivistFlagEndpoint = mustEndpoint(&Endpoint{
	Name:     "People.AddMyActivistFlag",
	Method:   http.MethodPut,
	Path:     "people/{vanId}/myActivistFlags",
	NoResult: true,
})

// AddMyActivistFlag sets the My Activists flag on a person.
func (s *PeopleService) AddMyActivistFlag(ctx context.Context, vanID int) error {
	return callNone(ctx, s.client, peopleAddMyActivistFlagEndpoint, []any{vanID}, nil, nil)
}

var peopleAddNotesEndpoint = mustEndpoint(&Endpoint{
	Name:     "People.AddNotes",
	Method:   http.MethodPost,
	Path:     "people/{vanId}/notes",
	Data:     Note,
	NoResult: true,
})

// AddNotes attaches a note to a person.
func (s *PeopleService) AddNotes(ctx context.Context, vanID int, args Args) error {
	return callNone(ctx, s.client, peopleAddNotesEndpoint, []any{vanID}, args, nil)
}

var peopleAddNotesAltEndpoint = mustEndpoint(&Endpoint{
	Name:     "People.AddNotesAlt",
	Method:   http.MethodPost,
	Path:     "people/{personIdType}:{personId}/notes",
	Data:     Note,
	NoResult: true,
})

// AddNotesAlt is [PeopleService.AddNotes] for a person addressed by an
// alternate identifier.
func (s *PeopleService) AddNotesAlt(ctx context.Context, idType, id string, args Args) error {
	return callNone(ctx, s.client, peopleAddNotesAltEndpoint, []any{idType, id}, args, nil)
}

var peopleAddRelationshipEndpoint = mustEndpoint(&Endpoint{
	Name:     "People.AddRelationship",
	Method:   http.MethodPost,
	Path:     "people/{vanId}/relationships",
	PropKeys: []string{"relationshipId", "vanId"},
	NoResult: true,
})

// AddRelationship relates a person to another. args carries the
// relationshipId and the vanId of the other person.
func (s *PeopleService) AddRelationship(ctx context.Context, vanID int, args Args) error {
	return callNone(ctx, s.client, peopleAddRelationshipEndpoint, []any{vanID}, args, nil)
}

var peopleFindEndpoint = mustEndpoint(&Endpoint{
	Name:       "People.Find",
	Method:     http.MethodPost,
	Path:       "people/find",
	Data:       Person,
	NilIf404:   true,
	ResultKind: Person,
})

// Find retrieves the person matching the identifying arguments, or
// nil when there is no match.
func (s *PeopleService) Find(ctx context.Context, args Args) (*Object, error) {
	return callObject(ctx, s.client, peopleFindEndpoint, nil, args, nil)
}

var peopleFindByPhoneEndpoint = mustEndpoint(&Endpoint{
	Name:       "People.FindByPhone",
	Method:     http.MethodPost,
	Path:       "people/findByPhone",
	PropKeys:   []string{"phoneNumber"},
	NilIf404:   true,
	ResultKind: Person,
})

// FindByPhone retrieves the person with the given phone number, or nil
// when there is no match.
func (s *PeopleService) FindByPhone(ctx context.Context, phoneNumber string) (*Object, error) {
	return callObject(ctx, s.client, peopleFindByPhoneEndpoint, nil, Args{"phoneNumber": phoneNumber}, nil)
}

var peopleFindOrCreateEndpoint = mustEndpoint(&Endpoint{
	Name:       "People.FindOrCreate",
	Method:     http.MethodPost,
	Path:       "people/findOrCreate",
	Data:       Person,
	ResultKind: Person,
})

// FindOrCreate retrieves the person matching the identifying
// arguments, creating the record when there is no match.
func (s *PeopleService) FindOrCreate(ctx context.Context, args Args) (*Object, error) {
	return callObject(ctx, s.client, peopleFindOrCreateEndpoint, nil, args, nil)
}

var peopleGetEndpoint = mustEndpoint(&Endpoint{
	Name:       "People.Get",
	Method:     http.MethodGet,
	Path:       "people/{vanId}",
	QueryArgs:  []string{"$expand"},
	ResultKind: Person,
})

// Get retrieves a person by VAN ID. The expand argument selects
// additional record sections to include.
func (s *PeopleService) Get(ctx context.Context, vanID int, args Args) (*Object, error) {
	return callObject(ctx, s.client, peopleGetEndpoint, []any{vanID}, args, nil)
}

var peopleGetAltEndpoint = mustEndpoint(&Endpoint{
	Name:       "People.GetAlt",
	Method:     http.MethodGet,
	Path:       "people/{personIdType}:{personId}",
	QueryArgs:  []string{"$expand"},
	ResultKind: Person,
})

// GetAlt is [PeopleService.Get] for a person addressed by an alternate
// identifier.
func (s *PeopleService) GetAlt(ctx context.Context, idType, id string, args Args) (*Object, error) {
	return callObject(ctx, s.client, peopleGetAltEndpoint, []any{idType, id}, args, nil)
}

var peopleListEndpoint = mustEndpoint(&Endpoint{
	Name:      "People.List",
	Method:    http.MethodGet,
	Path:      "people",
	Paginated: true,
	QueryArgs: []string{
		"city", "commonName", "contactMode", "email", "firstName",
		"lastName", "middleName", "officialName", "phoneNumber",
		"stateOrProvince", "streetAddress", "zipOrPostalCode",
		"$expand", "$orderby",
	},
	ResultKind: Person,
})

// List lists people matching the given search arguments.
func (s *PeopleService) List(ctx context.Context, args Args) ([]*Object, error) {
	return callList(ctx, s.client, peopleListEndpoint, nil, args, nil)
}

var peopleMembershipEndpoint = mustEndpoint(&Endpoint{
	Name:       "People.Membership",
	Method:     http.MethodGet,
	Path:       "people/{vanId}/membership",
	ResultKind: Membership,
})

// Membership retrieves the membership record of a person.
func (s *PeopleService) Membership(ctx context.Context, vanID int) (*Object, error) {
	return callObject(ctx, s.client, peopleMembershipEndpoint, []any{vanID}, nil, nil)
}

var peopleMergeIntoEndpoint = mustEndpoint(&Endpoint{
	Name:       "People.MergeInto",
	Method:     http.MethodPut,
	Path:       "people/{vanId}/mergeInto",
	PropKeys:   []string{"vanId"},
	QueryArgs:  []string{"whatIf"},
	ResultKind: Person,
})

// MergeInto merges the person with the given VAN ID into the person
// whose vanId args carries, which survives the merge. Passing whatIf
// previews the merge without performing it.
func (s *PeopleService) MergeInto(ctx context.Context, vanID int, args Args) (*Object, error) {
	return callObject(ctx, s.client, peopleMergeIntoEndpoint, []any{vanID}, args, nil)
}

var peopleNotesEndpoint = mustEndpoint(&Endpoint{
	Name:       "People.Notes",
	Method:     http.MethodGet,
	Path:       "people/{vanId}/notes",
	Paginated:  true,
	MaxTop:     50,
	ResultKind: Note,
})

// Notes lists the notes attached to a person.
func (s *PeopleService) Notes(ctx context.Context, vanID int, args Args) ([]*Object, error) {
	return callList(ctx, s.client, peopleNotesEndpoint, []any{vanID}, args, nil)
}

var peopleRemoveCodeEndpoint = mustEndpoint(&Endpoint{
	Name:     "People.RemoveCode",
	Method:   http.MethodDelete,
	Path:     "people/{vanId}/codes/{codeId}",
	NoResult: true,
})

// RemoveCode removes a source code or tag from a person.
func (s *PeopleService) RemoveCode(ctx context.Context, vanID, codeID int) error {
	return callNone(ctx, s.client, peopleRemoveCodeEndpoint, []any{vanID, codeID}, nil, nil)
}

var peopleRemoveCodeAltEndpoint = mustEndpoint(&Endpoint{
	Name:     "People.RemoveCodeAlt",
	Method:   http.MethodDelete,
	Path:     "people/{personIdType}:{personId}/codes/{codeId}",
	NoResult: true,
})

// RemoveCodeAlt is [PeopleService.RemoveCode] for a person addressed
// by an alternate identifier.
func (s *PeopleService) RemoveCodeAlt(ctx context.Context, idType, id string, codeID int) error {
	return callNone(ctx, s.client, peopleRemoveCodeAltEndpoint, []any{idType, id, codeID}, nil, nil)
}

var peopleRemoveMyActivistFlagEndpoint = mustEndpoint(&Endpoint{
	Name:     "People.RemoveMyActivistFlag",
	Method:   http.MethodDelete,
	Path:     "people/{vanId}/myActivistFlags",
	NoResult: true,
})

// RemoveMyActivistFlag clears the My Activists flag on a person.
func (s *PeopleService) RemoveMyActivistFlag(ctx context.Context, vanID int) error {
	return callNone(ctx, s.client, peopleRemoveMyActivistFlagEndpoint, []any{vanID}, nil, nil)
}

var peopleSetDisclosureFieldsEndpoint = mustEndpoint(&Endpoint{
	Name:     "People.SetDisclosureFields",
	Method:   http.MethodPost,
	Path:     "people/{vanId}/disclosureFieldValues",
	PropKeys: []string{"disclosureFieldValues"},
	NoResult: true,
})

// SetDisclosureFields sets the disclosure field values of a person.
func (s *PeopleService) SetDisclosureFields(ctx context.Context, vanID int, args Args) error {
	return callNone(ctx, s.client, peopleSetDisclosureFieldsEndpoint, []any{vanID}, args, nil)
}

var peopleSetDisclosureFieldsAltEndpoint = mustEndpoint(&Endpoint{
	Name:     "People.SetDisclosureFieldsAlt",
	Method:   http.MethodPost,
	Path:     "people/{personIdType}:{personId}/disclosureFieldValues",
	PropKeys: []string{"disclosureFieldValues"},
	NoResult: true,
})

// SetDisclosureFieldsAlt is [PeopleService.SetDisclosureFields] for a
// person addressed by an alternate identifier.
func (s *PeopleService) SetDisclosureFieldsAlt(ctx context.Context, idType, id string, args Args) error {
	return callNone(ctx, s.client, peopleSetDisclosureFieldsAltEndpoint, []any{idType, id}, args, nil)
}

var peopleUpdateEndpoint = mustEndpoint(&Endpoint{
	Name:       "People.Update",
	Method:     http.MethodPost,
	Path:       "people/{vanId}",
	Data:       Person,
	NilIf404:   true,
	ResultKind: Person,
})

// Update applies the given record changes to a person, returning the
// updated record or nil when no such person exists.
func (s *PeopleService) Update(ctx context.Context, vanID int, args Args) (*Object, error) {
	return callObject(ctx, s.client, peopleUpdateEndpoint, []any{vanID}, args, nil)
}

var peopleUpdateAltEndpoint = mustEndpoint(&Endpoint{
	Name:       "People.UpdateAlt",
	Method:     http.MethodPost,
	Path:       "people/{personIdType}:{personId}",
	Data:       Person,
	NilIf404:   true,
	ResultKind: Person,
})

// UpdateAlt is [PeopleService.Update] for a person addressed by an
// alternate identifier.
func (s *PeopleService) UpdateAlt(ctx context.Context, idType, id string, args Args) (*Object, error) {
	return callObject(ctx, s.client, peopleUpdateAltEndpoint, []any{idType, id}, args, nil)
}

var peopleUpdateNamesEndpoint = mustEndpoint(&Endpoint{
	Name:       "People.UpdateNames",
	Method:     http.MethodPatch,
	Path:       "people/{vanId}/names",
	Data:       Person,
	ResultKind: Person,
})

// UpdateNames updates the name fields of a person.
func (s *PeopleService) UpdateNames(ctx context.Context, vanID int, args Args) (*Object, error) {
	return callObject(ctx, s.client, peopleUpdateNamesEndpoint, []any{vanID}, args, nil)
}

var peopleUpdateNoteEndpoint = mustEndpoint(&Endpoint{
	Name:     "People.UpdateNote",
	Method:   http.MethodPut,
	Path:     "people/{vanId}/notes/{noteId}",
	Data:     Note,
	NoResult: true,
})

// UpdateNote replaces the content of a note attached to a person.
func (s *PeopleService) UpdateNote(ctx context.Context, vanID, noteID int, args Args) error {
	return callNone(ctx, s.client, peopleUpdateNoteEndpoint, []any{vanID, noteID}, args, nil)
}

// vanID resolves identifying arguments to a VAN ID: when args carries
// vanId under any spelling we use that, otherwise we search with
// [PeopleService.Find]. A zero ID with a nil error means no match.
func (s *PeopleService) vanID(ctx context.Context, args Args) (int, error) {
	raw, err := sharedFields.Get("vanId").find("vanId", args, false)
	if err != nil {
		return 0, usageError("People.vanID", err)
	}
	if raw != nil {
		id, ok := asInt(raw)
		if !ok {
			return 0, usageErrorf("People.vanID", "vanId must be an integer, got %T: %v", raw, raw)
		}
		return id, nil
	}
	person, err := s.Find(ctx, args)
	if err != nil || person == nil {
		return 0, err
	}
	return person.GetInt("id")
}

// vanIDOrError is [PeopleService.vanID], but failing to match is a
// [*NotFoundError].
func (s *PeopleService) vanIDOrError(ctx context.Context, args Args) (int, error) {
	id, err := s.vanID(ctx, args)
	if err != nil {
		return 0, err
	}
	if id == 0 {
		name := fmt.Sprint(args)
		if person, err := Person.New(args); err == nil {
			name = person.String()
		}
		return 0, &NotFoundError{What: "person", Name: name}
	}
	return id, nil
}

// updateActivistCode applies or removes an activist code, given by ID
// or name, without creating a contact history.
func (s *PeopleService) updateActivistCode(ctx context.Context, activistCode any, action string, lookup Args) error {
	var codeID int
	switch code := activistCode.(type) {
	case string:
		found, err := s.client.ActivistCodes.Find(ctx, code)
		if err != nil {
			return err
		}
		codeID, err = found.GetInt("id")
		if err != nil {
			return err
		}
	default:
		n, ok := asInt(activistCode)
		if !ok {
			return usageErrorf("People.updateActivistCode",
				"activist code must be an ID or a name, got %T: %v", activistCode, activistCode)
		}
		codeID = n
	}
	vanID, err := s.vanIDOrError(ctx, lookup)
	if err != nil {
		return err
	}
	response, err := ActivistCodeResponse.New(Args{
		"type":   "ActivistCode",
		"id":     codeID,
		"action": action,
	})
	if err != nil {
		return err
	}
	canvassContext, err := CanvassContext.New(Args{"omitActivistCodeContactHistory": true})
	if err != nil {
		return err
	}
	return s.AddCanvassResponses(ctx, vanID, Args{
		"context":  canvassContext,
		"response": response,
	})
}

// ApplyActivistCode applies an activist code, given by ID or name, to
// the person matching lookup. No contact history is created.
func (s *PeopleService) ApplyActivistCode(ctx context.Context, activistCode any, lookup Args) error {
	return s.updateActivistCode(ctx, activistCode, "Apply", lookup)
}

// RemoveActivistCode removes an activist code, given by ID or name,
// from the person matching lookup. No contact history is created.
func (s *PeopleService) RemoveActivistCode(ctx context.Context, activistCode any, lookup Args) error {
	return s.updateActivistCode(ctx, activistCode, "Remove", lookup)
}

// ApplyNotes attaches a note to the person matching lookup.
func (s *PeopleService) ApplyNotes(ctx context.Context, note *Object, lookup Args) error {
	vanID, err := s.vanIDOrError(ctx, lookup)
	if err != nil {
		return err
	}
	return s.AddNotes(ctx, vanID, note.Args())
}

// ApplyResultCode records a canvass result code, given by ID or name,
// for the person matching lookup.
func (s *PeopleService) ApplyResultCode(ctx context.Context, resultCode any, lookup Args) error {
	var codeID int
	switch code := resultCode.(type) {
	case string:
		found, err := s.client.CanvassResponses.FindResultCode(ctx, code)
		if err != nil {
			return err
		}
		codeID, err = found.GetInt("id")
		if err != nil {
			return err
		}
	default:
		n, ok := asInt(resultCode)
		if !ok {
			return usageErrorf("People.ApplyResultCode",
				"result code must be an ID or a name, got %T: %v", resultCode, resultCode)
		}
		codeID = n
	}
	vanID, err := s.vanIDOrError(ctx, lookup)
	if err != nil {
		return err
	}
	return s.AddCanvassResponses(ctx, vanID, Args{"resultCodeId": codeID})
}

// Lookup finds the person matching args and then retrieves their full
// stored record, expanding the named record sections. It returns nil
// when there is no match.
func (s *PeopleService) Lookup(ctx context.Context, args Args, expand ...string) (*Object, error) {
	vanID, err := s.vanID(ctx, args)
	if err != nil || vanID == 0 {
		return nil, err
	}
	getArgs := Args{}
	if len(expand) > 0 {
		getArgs["expand"] = expand
	}
	return s.Get(ctx, vanID, getArgs)
}

// UpdateIfExists updates the person matching lookup with update,
// returning their VAN ID, or zero when there is no match.
func (s *PeopleService) UpdateIfExists(ctx context.Context, lookup, update Args) (int, error) {
	vanID, err := s.vanID(ctx, lookup)
	if err != nil || vanID == 0 {
		return 0, err
	}
	if _, err := s.Update(ctx, vanID, update); err != nil {
		return 0, err
	}
	return vanID, nil
}
