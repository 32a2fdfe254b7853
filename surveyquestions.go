package everyaction

//
// The SurveyQuestions service: survey questions and their responses.
//

import (
	"context"
	"net/http"
)

// SurveyQuestionsService holds the operations on survey questions.
// Use it through [Client.SurveyQuestions].
type SurveyQuestionsService struct {
	client *Client
}

var surveyQuestionsGetEndpoint = mustEndpoint(&Endpoint{
	Name:       "SurveyQuestions.Get",
	Method:     http.MethodGet,
	Path:       "surveyQuestions/{surveyQuestionId}",
	ResultKind: SurveyQuestion,
})

// Get retrieves a survey question by ID.
func (s *SurveyQuestionsService) Get(ctx context.Context, questionID int) (*Object, error) {
	return callObject(ctx, s.client, surveyQuestionsGetEndpoint, []any{questionID}, nil, nil)
}

var surveyQuestionsListEndpoint = mustEndpoint(&Endpoint{
	Name:   "SurveyQuestions.List",
	Method: http.MethodGet,
	Path:   "surveyQuestions",
	QueryArgs: []string{
		"cycle",
		"name",
		"question",
		"statuses",
		"type",
	},
	Paginated:  true,
	ResultKind: SurveyQuestion,
})

// List lists survey questions matching the given criteria.
func (s *SurveyQuestionsService) List(ctx context.Context, args Args) ([]*Object, error) {
	return callList(ctx, s.client, surveyQuestionsListEndpoint, nil, args, nil)
}
