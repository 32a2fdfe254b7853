package everyaction

//
// The Demographics service: the self-reported demographic catalogs.
//

import (
	"context"
	"net/http"
)

// DemographicsService holds the operations on the reported
// demographic catalogs. Use it through [Client.Demographics].
type DemographicsService struct {
	client *Client
}

var demographicsEthnicitiesEndpoint = mustEndpoint(&Endpoint{
	Name:       "Demographics.Ethnicities",
	Method:     http.MethodGet,
	Path:       "reportedEthnicities",
	Paginated:  true,
	ResultKind: ReportedEthnicity,
})

// Ethnicities lists the reported ethnicities.
func (s *DemographicsService) Ethnicities(ctx context.Context, args Args) ([]*Object, error) {
	return callList(ctx, s.client, demographicsEthnicitiesEndpoint, nil, args, nil)
}

var demographicsGendersEndpoint = mustEndpoint(&Endpoint{
	Name:       "Demographics.Genders",
	Method:     http.MethodGet,
	Path:       "reportedGenders",
	Paginated:  true,
	ResultKind: ReportedGender,
})

// Genders lists the reported genders.
func (s *DemographicsService) Genders(ctx context.Context, args Args) ([]*Object, error) {
	return callList(ctx, s.client, demographicsGendersEndpoint, nil, args, nil)
}

var demographicsLanguagePreferencesEndpoint = mustEndpoint(&Endpoint{
	Name:       "Demographics.LanguagePreferences",
	Method:     http.MethodGet,
	Path:       "reportedLanguagePreferences",
	Paginated:  true,
	ResultKind: ReportedLanguagePreference,
})

// LanguagePreferences lists the reported language preferences.
func (s *DemographicsService) LanguagePreferences(ctx context.Context, args Args) ([]*Object, error) {
	return callList(ctx, s.client, demographicsLanguagePreferencesEndpoint, nil, args, nil)
}

var demographicsPronounsEndpoint = mustEndpoint(&Endpoint{
	Name:       "Demographics.Pronouns",
	Method:     http.MethodGet,
	Path:       "pronouns",
	Paginated:  true,
	ResultKind: Pronoun,
})

// Pronouns lists the preferred pronouns.
func (s *DemographicsService) Pronouns(ctx context.Context, args Args) ([]*Object, error) {
	return callList(ctx, s.client, demographicsPronounsEndpoint, nil, args, nil)
}

var demographicsRacesEndpoint = mustEndpoint(&Endpoint{
	Name:       "Demographics.Races",
	Method:     http.MethodGet,
	Path:       "reportedRaces",
	Paginated:  true,
	ResultKind: ReportedRace,
})

// Races lists the reported races.
func (s *DemographicsService) Races(ctx context.Context, args Args) ([]*Object, error) {
	return callList(ctx, s.client, demographicsRacesEndpoint, nil, args, nil)
}

var demographicsSexualOrientationsEndpoint = mustEndpoint(&Endpoint{
	Name:       "Demographics.SexualOrientations",
	Method:     http.MethodGet,
	Path:       "reportedSexualOrientations",
	Paginated:  true,
	ResultKind: ReportedSexualOrientation,
})

// SexualOrientations lists the reported sexual orientations.
func (s *DemographicsService) SexualOrientations(ctx context.Context, args Args) ([]*Object, error) {
	return callList(ctx, s.client, demographicsSexualOrientationsEndpoint, nil, args, nil)
}
