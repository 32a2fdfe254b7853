package everyaction

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/everyaction/everyaction-go/internal/must"
	"github.com/everyaction/everyaction-go/internal/testingx"
	"github.com/google/go-cmp/cmp"
)

// newTestClient starts a server for the given handler and returns a
// client pointed at it.
func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := testingx.MustNewHTTPServer(handler)
	t.Cleanup(srv.Close)
	client, err := New(&Config{
		AppName:  "testapp",
		APIKey:   "testkey",
		Mode:     "VoterFile",
		Endpoint: srv.URL,
	})
	if err != nil {
		t.Fatal(err)
	}
	return client
}

// newGadgetVAN builds a fake server with a gadgets collection holding
// count records identified 1..count.
func newGadgetVAN(count int) *testingx.FakeVAN {
	fake := &testingx.FakeVAN{}
	fake.Register("gadgets", "gadgetId")
	for i := 1; i <= count; i++ {
		fake.Append("gadgets", map[string]any{"gadgetId": i})
	}
	return fake
}

var listGadgetsEndpoint = mustEndpoint(&Endpoint{
	Name:       "Gadgets.List",
	Method:     http.MethodGet,
	Path:       "gadgets",
	Paginated:  true,
	MaxTop:     3,
	ResultKind: gadgetKind,
})

var getGadgetEndpoint = mustEndpoint(&Endpoint{
	Name:       "Gadgets.Get",
	Method:     http.MethodGet,
	Path:       "gadgets/{gadgetId}",
	ResultKind: gadgetKind,
})

// gadgetIDs extracts the ids of the returned gadgets, in order.
func gadgetIDs(t *testing.T, gadgets []*Object) []int {
	t.Helper()
	out := make([]int, 0, len(gadgets))
	for _, g := range gadgets {
		id, err := g.GetInt("gadgetId")
		if err != nil {
			t.Fatal(err)
		}
		out = append(out, id)
	}
	return out
}

func TestEndpointDeclaration(t *testing.T) {
	t.Run("unsupported verbs panic", func(t *testing.T) {
		assertPanics(t, func() {
			mustEndpoint(&Endpoint{Name: "X", Method: "FETCH", Path: "x"})
		})
	})

	t.Run("NoResult excludes result options", func(t *testing.T) {
		assertPanics(t, func() {
			mustEndpoint(&Endpoint{
				Name: "X", Method: http.MethodGet, Path: "x",
				NoResult: true, ResultKind: gadgetKind,
			})
		})
	})

	t.Run("ResultKey excludes ResultKind", func(t *testing.T) {
		assertPanics(t, func() {
			mustEndpoint(&Endpoint{
				Name: "X", Method: http.MethodGet, Path: "x",
				ResultKey: "count", ResultKind: gadgetKind,
			})
		})
	})

	t.Run("at most one array mode", func(t *testing.T) {
		assertPanics(t, func() {
			mustEndpoint(&Endpoint{
				Name: "X", Method: http.MethodGet, Path: "x",
				Paginated: true, ResultArray: true,
			})
		})
	})

	t.Run("PathToBody names must be path parameters", func(t *testing.T) {
		assertPanics(t, func() {
			mustEndpoint(&Endpoint{
				Name: "X", Method: http.MethodGet, Path: "x/{a}",
				PathToBody: []string{"b"},
			})
		})
	})

	t.Run("argument sources must be disjoint", func(t *testing.T) {
		assertPanics(t, func() {
			mustEndpoint(&Endpoint{
				Name: "X", Method: http.MethodGet, Path: "x",
				PropKeys:  []string{"name"},
				QueryArgs: []string{"name"},
			})
		})
	})

	t.Run("a body kind's fields may not be declared again", func(t *testing.T) {
		assertPanics(t, func() {
			mustEndpoint(&Endpoint{
				Name: "X", Method: http.MethodPost, Path: "x",
				Data:     gadgetKind,
				PropKeys: []string{"gadgetId"},
			})
		})
	})
}

func TestEndpointPagination(t *testing.T) {
	t.Run("limit returns that many records in order", func(t *testing.T) {
		client := newTestClient(t, newGadgetVAN(5))
		gadgets, err := callList(context.Background(), client, listGadgetsEndpoint, nil, Args{"limit": 4}, nil)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff([]int{1, 2, 3, 4}, gadgetIDs(t, gadgets)); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("limit zero returns everything", func(t *testing.T) {
		client := newTestClient(t, newGadgetVAN(5))
		gadgets, err := callList(context.Background(), client, listGadgetsEndpoint, nil, Args{"limit": 0}, nil)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff([]int{1, 2, 3, 4, 5}, gadgetIDs(t, gadgets)); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("skip starts at the given offset", func(t *testing.T) {
		client := newTestClient(t, newGadgetVAN(5))
		gadgets, err := callList(context.Background(), client, listGadgetsEndpoint, nil, Args{"skip": 2, "limit": 2}, nil)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff([]int{3, 4}, gadgetIDs(t, gadgets)); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("the client default limit applies when none is given", func(t *testing.T) {
		client := newTestClient(t, newGadgetVAN(5))
		if err := client.SetDefaultLimit(2); err != nil {
			t.Fatal(err)
		}
		gadgets, err := callList(context.Background(), client, listGadgetsEndpoint, nil, nil, nil)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff([]int{1, 2}, gadgetIDs(t, gadgets)); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("a direct page size is rejected", func(t *testing.T) {
		client := newTestClient(t, newGadgetVAN(5))
		_, err := callList(context.Background(), client, listGadgetsEndpoint, nil, Args{"top": 3}, nil)
		var usageErr *Error
		if !errors.As(err, &usageErr) || !strings.Contains(err.Error(), "use limit") {
			t.Fatal("unexpected error", err)
		}
	})

	t.Run("pagination arguments on a non-paginated endpoint are rejected", func(t *testing.T) {
		client := newTestClient(t, newGadgetVAN(5))
		for _, args := range []Args{{"limit": 1}, {"skip": 1}, {"top": 1}} {
			_, err := callObject(context.Background(), client, getGadgetEndpoint, []any{1}, args, nil)
			var usageErr *Error
			if !errors.As(err, &usageErr) || !strings.Contains(err.Error(), "not paginated") {
				t.Fatalf("args %v: unexpected error %v", args, err)
			}
		}
	})

	t.Run("a failing continuation aborts the whole call", func(t *testing.T) {
		fake := newGadgetVAN(5)
		pages := 0
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			pages++
			if pages > 1 {
				testingx.WriteAPIError(w, http.StatusInternalServerError, "INTERNAL", "boom")
				return
			}
			fake.ServeHTTP(w, r)
		})
		client := newTestClient(t, handler)
		_, err := callList(context.Background(), client, listGadgetsEndpoint, nil, Args{"limit": 0}, nil)
		var httpErr *HTTPError
		if !errors.As(err, &httpErr) || httpErr.StatusCode != http.StatusInternalServerError {
			t.Fatal("unexpected error", err)
		}
	})
}

func TestEndpointArguments(t *testing.T) {
	t.Run("unknown arguments name the endpoint", func(t *testing.T) {
		client := newTestClient(t, newGadgetVAN(0))
		_, err := callObject(context.Background(), client, getGadgetEndpoint, []any{1}, Args{"bogus": 1}, nil)
		var usageErr *Error
		if !errors.As(err, &usageErr) || usageErr.Op != "Gadgets.Get" {
			t.Fatal("unexpected error", err)
		}
		if !errors.Is(err, ErrUnknownField) {
			t.Fatal("unexpected error", err)
		}
	})

	t.Run("wrong path argument count is an error", func(t *testing.T) {
		client := newTestClient(t, newGadgetVAN(0))
		_, err := callObject(context.Background(), client, getGadgetEndpoint, nil, nil, nil)
		if err == nil || !strings.Contains(err.Error(), "path arguments") {
			t.Fatal("unexpected error", err)
		}
	})

	t.Run("reserved keys must be integers", func(t *testing.T) {
		client := newTestClient(t, newGadgetVAN(0))
		_, err := callList(context.Background(), client, listGadgetsEndpoint, nil, Args{"limit": "many"}, nil)
		if err == nil || !strings.Contains(err.Error(), "must be an integer") {
			t.Fatal("unexpected error", err)
		}
	})
}

func TestEndpointWireFormat(t *testing.T) {
	// capture records the last request the handler served.
	type capture struct {
		method string
		path   string
		query  url.Values
		body   map[string]any
	}

	newCaptureClient := func(t *testing.T, reply any) (*Client, *capture) {
		captured := &capture{}
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			captured.method = r.Method
			captured.path = r.URL.Path
			captured.query = r.URL.Query()
			captured.body = nil
			if data, _ := io.ReadAll(r.Body); len(data) > 0 {
				captured.body = map[string]any{}
				must.UnmarshalJSON(data, &captured.body)
			}
			w.Write(must.MarshalJSON(reply))
		})
		return newTestClient(t, handler), captured
	}

	t.Run("path parameters bind in declaration order", func(t *testing.T) {
		endpoint := mustEndpoint(&Endpoint{
			Name:     "Wire.PathOrder",
			Method:   http.MethodDelete,
			Path:     "people/{personIdType}:{personId}/codes/{codeId}",
			NoResult: true,
		})
		client, captured := newCaptureClient(t, Args{})
		err := callNone(context.Background(), client, endpoint, []any{"dwid", "A12", 9}, nil, nil)
		if err != nil {
			t.Fatal(err)
		}
		if captured.path != "/people/dwid:A12/codes/9" {
			t.Fatal("unexpected path", captured.path)
		}
	})

	t.Run("path parameters copy into the body when declared", func(t *testing.T) {
		endpoint := mustEndpoint(&Endpoint{
			Name:       "Wire.PathToBody",
			Method:     http.MethodPatch,
			Path:       "events/{eventId}",
			PathToBody: []string{"eventId"},
			PropKeys:   []string{"isActive"},
			NoResult:   true,
		})
		client, captured := newCaptureClient(t, Args{})
		err := callNone(context.Background(), client, endpoint, []any{7}, Args{"isActive": false}, nil)
		if err != nil {
			t.Fatal(err)
		}
		expect := map[string]any{"eventId": float64(7), "isActive": false}
		if diff := cmp.Diff(expect, captured.body); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("query arguments leave the body and keep their marker", func(t *testing.T) {
		endpoint := mustEndpoint(&Endpoint{
			Name:      "Wire.Query",
			Method:    http.MethodGet,
			Path:      "gadgets/{gadgetId}",
			QueryArgs: []string{"$expand", "statuses"},
			NoResult:  true,
		})
		client, captured := newCaptureClient(t, Args{})
		err := callNone(context.Background(), client, endpoint, []any{1}, Args{
			"expand":   []string{"phones", "emails"},
			"statuses": []string{"Active"},
		}, nil)
		if err != nil {
			t.Fatal(err)
		}
		if got := captured.query.Get("$expand"); got != "phones,emails" {
			t.Fatal("unexpected $expand", got)
		}
		if got := captured.query.Get("statuses"); got != `["Active"]` {
			t.Fatal("non-string query values must be JSON-encoded, got", got)
		}
		if captured.body != nil {
			t.Fatal("query arguments leaked into the body:", captured.body)
		}
	})

	t.Run("a raw payload replaces the processed body whole", func(t *testing.T) {
		endpoint := mustEndpoint(&Endpoint{
			Name:     "Wire.Raw",
			Method:   http.MethodPost,
			Path:     "gadgets",
			Data:     gadgetKind,
			NoResult: true,
		})
		client, captured := newCaptureClient(t, Args{})
		raw := map[string]any{"anything": "goes"}
		err := callNone(context.Background(), client, endpoint, nil, Args{"id": 3}, raw)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(map[string]any{"anything": "goes"}, captured.body); diff != "" {
			t.Fatal(diff)
		}
	})
}

func TestEndpointResultShaping(t *testing.T) {
	t.Run("single mapping extraction by key", func(t *testing.T) {
		endpoint := mustEndpoint(&Endpoint{
			Name:      "Shape.Key",
			Method:    http.MethodGet,
			Path:      "counts",
			ResultKey: "count",
		})
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"count": 7}`))
		}))
		value, err := callValue(context.Background(), client, endpoint, nil, nil, nil)
		if err != nil {
			t.Fatal(err)
		}
		if n, _ := asInt(value); n != 7 {
			t.Fatal("unexpected value", value)
		}
	})

	t.Run("whole-body array", func(t *testing.T) {
		endpoint := mustEndpoint(&Endpoint{
			Name:        "Shape.Array",
			Method:      http.MethodGet,
			Path:        "gadgets",
			ResultArray: true,
			ResultKind:  gadgetKind,
		})
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[{"gadgetId": 1}, {"gadgetId": 2}]`))
		}))
		gadgets, err := callList(context.Background(), client, endpoint, nil, nil, nil)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff([]int{1, 2}, gadgetIDs(t, gadgets)); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("keyed array", func(t *testing.T) {
		endpoint := mustEndpoint(&Endpoint{
			Name:           "Shape.KeyedArray",
			Method:         http.MethodGet,
			Path:           "gadgets",
			ResultArrayKey: "items",
			ResultKind:     gadgetKind,
		})
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"items": [{"gadgetId": 1}]}`))
		}))
		gadgets, err := callList(context.Background(), client, endpoint, nil, nil, nil)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff([]int{1}, gadgetIDs(t, gadgets)); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("excluded keys are stripped before construction", func(t *testing.T) {
		endpoint := mustEndpoint(&Endpoint{
			Name:        "Shape.Exclude",
			Method:      http.MethodGet,
			Path:        "gadgets/{gadgetId}",
			ResultKind:  gadgetKind,
			ExcludeKeys: []string{"redundantId"},
		})
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"gadgetId": 1, "redundantId": 1}`))
		}))
		gadget, err := callObject(context.Background(), client, endpoint, []any{1}, nil, nil)
		if err != nil {
			t.Fatal(err)
		}
		if !gadget.Equal(gadgetKind.ID(1)) {
			t.Fatal("unexpected gadget", gadget)
		}
	})

	t.Run("a custom result function wins over construction", func(t *testing.T) {
		endpoint := mustEndpoint(&Endpoint{
			Name:   "Shape.Func",
			Method: http.MethodGet,
			Path:   "counts",
			ResultFunc: func(raw any) (any, error) {
				m, _ := asStringMap(raw)
				return fmt.Sprintf("%v", m["count"]), nil
			},
		})
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"count": 7}`))
		}))
		value, err := callValue(context.Background(), client, endpoint, nil, nil, nil)
		if err != nil {
			t.Fatal(err)
		}
		if value != "7" {
			t.Fatal("unexpected value", value)
		}
	})
}

func TestEndpointFaults(t *testing.T) {
	t.Run("failures carry the parsed error list", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			testingx.WriteAPIError(w, http.StatusBadRequest, "INVALID_PARAMETER", "no such gadget")
		}))
		_, err := callObject(context.Background(), client, getGadgetEndpoint, []any{1}, nil, nil)
		var httpErr *HTTPError
		if !errors.As(err, &httpErr) {
			t.Fatal("unexpected error", err)
		}
		if httpErr.StatusCode != http.StatusBadRequest || len(httpErr.Errors) != 1 {
			t.Fatal("unexpected error", httpErr)
		}
		if !strings.Contains(httpErr.Error(), "Reason: no such gadget") {
			t.Fatal("unexpected message", httpErr.Error())
		}
	})

	t.Run("multiple reasons render as a list", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write(must.MarshalJSON(map[string]any{
				"errors": []map[string]any{
					{"code": "A", "text": "first"},
					{"code": "B", "text": "second"},
				},
			}))
		}))
		_, err := callObject(context.Background(), client, getGadgetEndpoint, []any{1}, nil, nil)
		var httpErr *HTTPError
		if !errors.As(err, &httpErr) || len(httpErr.Errors) != 2 {
			t.Fatal("unexpected error", err)
		}
		message := httpErr.Error()
		if !strings.Contains(message, "Reasons:") || !strings.Contains(message, "* second") {
			t.Fatal("unexpected message", message)
		}
	})

	t.Run("failure bodies without an errors collection still fail", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte("not json at all"))
		}))
		_, err := callObject(context.Background(), client, getGadgetEndpoint, []any{1}, nil, nil)
		var httpErr *HTTPError
		if !errors.As(err, &httpErr) || len(httpErr.Errors) != 0 {
			t.Fatal("unexpected error", err)
		}
		if string(httpErr.Body) != "not json at all" {
			t.Fatal("the raw body must be preserved")
		}
	})

	t.Run("a declared NilIf404 yields nil instead of an error", func(t *testing.T) {
		endpoint := mustEndpoint(&Endpoint{
			Name:       "Fault.Nil",
			Method:     http.MethodGet,
			Path:       "gadgets/{gadgetId}",
			ResultKind: gadgetKind,
			NilIf404:   true,
		})
		client := newTestClient(t, newGadgetVAN(0))
		gadget, err := callObject(context.Background(), client, endpoint, []any{1}, nil, nil)
		if err != nil {
			t.Fatal(err)
		}
		if gadget != nil {
			t.Fatal("expected nil, got", gadget)
		}
	})

	t.Run("other statuses raise even with NilIf404", func(t *testing.T) {
		endpoint := mustEndpoint(&Endpoint{
			Name:       "Fault.NilAuth",
			Method:     http.MethodGet,
			Path:       "gadgets/{gadgetId}",
			ResultKind: gadgetKind,
			NilIf404:   true,
		})
		fake := newGadgetVAN(0)
		fake.AppName = "someoneelse"
		fake.APIKey = "otherkey|0"
		client := newTestClient(t, fake)
		_, err := callObject(context.Background(), client, endpoint, []any{1}, nil, nil)
		var httpErr *HTTPError
		if !errors.As(err, &httpErr) || httpErr.StatusCode != http.StatusUnauthorized {
			t.Fatal("unexpected error", err)
		}
	})
}
