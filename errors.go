package everyaction

//
// The error taxonomy. Declaration mistakes panic through
// internal/runtimex and never reach users; everything here is a
// runtime condition a caller may want to branch on.
//

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Error reports an argument or usage problem detected by the library
// itself, before or while talking to the API.
type Error struct {
	// Op names the endpoint method ("People.Find") or object kind
	// that rejected the input.
	Op string

	// Err is the underlying problem.
	Err error
}

var _ error = &Error{}

// Error implements error.
func (e *Error) Error() string {
	if e.Op == "" {
		return e.Err.Error()
	}
	return e.Op + ": " + e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	return e.Err
}

// usageError wraps err with the operation that rejected the input.
func usageError(op string, err error) error {
	return &Error{Op: op, Err: err}
}

// usageErrorf is usageError with formatting.
func usageErrorf(op string, format string, v ...any) error {
	return &Error{Op: op, Err: fmt.Errorf(format, v...)}
}

// NotFoundError is returned by lookup helpers that expected to find a
// match and found none.
type NotFoundError struct {
	// What describes the kind of object searched ("activist code").
	What string

	// Name is the name that was searched for.
	Name string
}

var _ error = &NotFoundError{}

// Error implements error.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no such %s: %q", e.What, e.Name)
}

// HTTPError is returned when the API answers with a status >= 400. It
// carries the parsed error objects when the response body has the
// standard {"errors": [...]} shape, and always the raw body.
type HTTPError struct {
	// Op names the endpoint method that performed the call.
	Op string

	// StatusCode is the HTTP status of the response.
	StatusCode int

	// URL is the request URL.
	URL string

	// Errors holds the error objects parsed from the body, if any.
	Errors []*Object

	// Body is the raw response body.
	Body []byte
}

var _ error = &HTTPError{}

// Error implements error. A single parsed error renders as
// "Reason: ...", several render as a bulleted "Reasons:" list.
func (e *HTTPError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s: http request failed: %d for %s", e.Op, e.StatusCode, e.URL)
	switch len(e.Errors) {
	case 0:
	case 1:
		fmt.Fprintf(&sb, "\nReason: %s", errorText(e.Errors[0]))
	default:
		sb.WriteString("\nReasons:")
		for _, obj := range e.Errors {
			fmt.Fprintf(&sb, "\n* %s", errorText(obj))
		}
	}
	return sb.String()
}

// errorText extracts the text field of a parsed error object.
func errorText(obj *Object) string {
	text, err := obj.GetString("text")
	if err != nil {
		return obj.String()
	}
	return text
}

// newHTTPError builds an [*HTTPError] from a failed response,
// parsing the error collection out of the body on a best-effort
// basis: a body that is not JSON or not in the documented shape
// leaves Errors empty.
func newHTTPError(op string, statusCode int, url string, body []byte) *HTTPError {
	httpErr := &HTTPError{
		Op:         op,
		StatusCode: statusCode,
		URL:        url,
		Body:       body,
	}
	var parsed struct {
		Errors []map[string]any `json:"errors"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return httpErr
	}
	for _, raw := range parsed.Errors {
		obj, err := errorKind.New(Args(raw))
		if err != nil {
			continue
		}
		httpErr.Errors = append(httpErr.Errors, obj)
	}
	return httpErr
}

// JobFailedError is returned when a changed entity export job
// finishes in the error state.
type JobFailedError struct {
	// Job is the failed export job record as last reported.
	Job *Object
}

var _ error = &JobFailedError{}

// Error implements error.
func (e *JobFailedError) Error() string {
	id, err := e.Job.GetInt("exportJobId")
	if err != nil || id == 0 {
		return "changed entity export job failed"
	}
	return fmt.Sprintf("changed entity export job %d failed", id)
}
