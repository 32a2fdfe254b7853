package everyaction

//
// Name lookup helpers shared by the services that expose Find* and
// NameTo* convenience methods over list endpoints.
//

import "strings"

// findByName returns the first of objects whose name matches name,
// ignoring case. what describes the objects in the error when none
// matches.
func findByName(objects []*Object, name, what string) (*Object, error) {
	for _, obj := range objects {
		candidate, err := obj.GetString("name")
		if err == nil && strings.EqualFold(candidate, name) {
			return obj, nil
		}
	}
	return nil, &NotFoundError{What: what, Name: name}
}

// namedByName indexes objects by their name. Objects without a name
// are skipped.
func namedByName(objects []*Object) map[string]*Object {
	out := make(map[string]*Object, len(objects))
	for _, obj := range objects {
		name, err := obj.GetString("name")
		if err != nil || name == "" {
			continue
		}
		out[name] = obj
	}
	return out
}
