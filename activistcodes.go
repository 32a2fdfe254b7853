package everyaction

//
// The ActivistCodes service.
//

import (
	"context"
	"net/http"
	"strings"
)

// ActivistCodesService holds the operations on activist codes. Use it
// through [Client.ActivistCodes].
type ActivistCodesService struct {
	client *Client
}

var activistCodesGetEndpoint = mustEndpoint(&Endpoint{
	Name:       "ActivistCodes.Get",
	Method:     http.MethodGet,
	Path:       "activistCodes/{activistCodeId}",
	ResultKind: ActivistCode,
})

// Get retrieves an activist code by ID.
func (s *ActivistCodesService) Get(ctx context.Context, activistCodeID int) (*Object, error) {
	return callObject(ctx, s.client, activistCodesGetEndpoint, []any{activistCodeID}, nil, nil)
}

var activistCodesListEndpoint = mustEndpoint(&Endpoint{
	Name:       "ActivistCodes.List",
	Method:     http.MethodGet,
	Path:       "activistCodes",
	Paginated:  true,
	QueryArgs:  []string{"name", "statuses", "type"},
	ResultKind: ActivistCode,
})

// List lists activist codes, optionally filtered by name, status, or
// type.
func (s *ActivistCodesService) List(ctx context.Context, args Args) ([]*Object, error) {
	return callList(ctx, s.client, activistCodesListEndpoint, nil, args, nil)
}

// Find retrieves the single activist code with the given name, matched
// case-insensitively. No match is a [*NotFoundError]; more than one
// match is an error as well.
func (s *ActivistCodesService) Find(ctx context.Context, name string) (*Object, error) {
	listed, err := s.List(ctx, Args{"limit": 0, "name": name})
	if err != nil {
		return nil, err
	}
	var found []*Object
	for _, code := range listed {
		candidate, err := code.GetString("name")
		if err == nil && strings.EqualFold(candidate, name) {
			found = append(found, code)
		}
	}
	switch len(found) {
	case 0:
		return nil, &NotFoundError{What: "activist code", Name: name}
	case 1:
		return found[0], nil
	default:
		return nil, usageErrorf("ActivistCodes.Find", "multiple activist codes named %q", name)
	}
}

// FindEach retrieves the activist codes with the given names, matched
// case-insensitively, keyed by the names as given. Any name without
// exactly one match fails the whole call.
func (s *ActivistCodesService) FindEach(ctx context.Context, names ...string) (map[string]*Object, error) {
	listed, err := s.List(ctx, Args{"limit": 0})
	if err != nil {
		return nil, err
	}
	byName := make(map[string]*Object, len(listed))
	ambiguous := make(map[string]bool)
	for _, code := range listed {
		name, err := code.GetString("name")
		if err != nil || name == "" {
			continue
		}
		lower := strings.ToLower(name)
		if _, ok := byName[lower]; ok {
			ambiguous[lower] = true
		}
		byName[lower] = code
	}
	out := make(map[string]*Object, len(names))
	var missing []string
	for _, name := range names {
		lower := strings.ToLower(name)
		if ambiguous[lower] {
			return nil, usageErrorf("ActivistCodes.FindEach", "multiple activist codes named %q", name)
		}
		code, ok := byName[lower]
		if !ok {
			missing = append(missing, name)
			continue
		}
		out[name] = code
	}
	if len(missing) > 0 {
		return nil, usageErrorf("ActivistCodes.FindEach",
			"the following activist codes could not be found: %s", strings.Join(missing, ", "))
	}
	return out, nil
}
