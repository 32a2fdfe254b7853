package everyaction

//
// The Users service: district field values for users. Each call
// reports the full set of names the user ends up with.
//

import (
	"context"
	"net/http"
)

// UsersService holds the operations on users. Use it through
// [Client.Users].
type UsersService struct {
	client *Client
}

var usersAddDistrictFieldsEndpoint = mustEndpoint(&Endpoint{
	Name:   "Users.AddDistrictFields",
	Method: http.MethodPost,
	Path:   "users/{userId}/districtFieldValues",
	Props: map[string]*Field{
		"districtFieldValues": listProp("value", "field_values", "values"),
	},
	ResultKey: "districtFieldValues",
})

// AddDistrictFields adds district field values to a user and reports
// the names of the values the user now has.
func (s *UsersService) AddDistrictFields(ctx context.Context, userID int, args Args) ([]string, error) {
	return callStrings(ctx, s.client, usersAddDistrictFieldsEndpoint, []any{userID}, args, nil)
}

var usersDistrictFieldsEndpoint = mustEndpoint(&Endpoint{
	Name:      "Users.DistrictFields",
	Method:    http.MethodGet,
	Path:      "users/{userId}/districtFieldValues",
	ResultKey: "districtFieldValues",
})

// DistrictFields reports the names of a user's district field values.
func (s *UsersService) DistrictFields(ctx context.Context, userID int) ([]string, error) {
	return callStrings(ctx, s.client, usersDistrictFieldsEndpoint, []any{userID}, nil, nil)
}

var usersSetDistrictFieldsEndpoint = mustEndpoint(&Endpoint{
	Name:   "Users.SetDistrictFields",
	Method: http.MethodPut,
	Path:   "users/{userId}/districtFieldValues",
	Props: map[string]*Field{
		"districtFieldValues": listProp("value", "field_values", "values"),
	},
	ResultKey: "districtFieldValues",
})

// SetDistrictFields replaces a user's district field values and
// reports the names of the values the user now has.
func (s *UsersService) SetDistrictFields(ctx context.Context, userID int, args Args) ([]string, error) {
	return callStrings(ctx, s.client, usersSetDistrictFieldsEndpoint, []any{userID}, args, nil)
}
