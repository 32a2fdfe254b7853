package everyaction

//
// Endpoint descriptors and the single dispatch path every resource
// method funnels through.
//

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/everyaction/everyaction-go/internal/runtimex"
)

// defaultMaxTop is the page size cap assumed when an [Endpoint] does
// not declare its own.
const defaultMaxTop = 200

// placeholderPattern matches {param} placeholders in a route.
var placeholderPattern = regexp.MustCompile(`\{([^}]*)\}`)

// topPattern matches the $top argument inside a continuation link.
var topPattern = regexp.MustCompile(`\$top=\d*`)

// Endpoint describes one API operation: its route and verb plus the
// shape of its arguments and of its result. Endpoints are declared
// once as package variables through [mustEndpoint], which validates
// the declaration and assembles the alias table.
//
// The zero value is invalid; Name, Method, and Path are mandatory.
type Endpoint struct {
	// Name identifies the operation in error messages, e.g.
	// "People.Find".
	Name string

	// Method is the HTTP verb.
	Method string

	// Path is the route template, relative to the API base, with
	// {param} placeholders bound by the caller's path arguments in
	// declaration order.
	Path string

	// QueryArgs names the arguments sent as query parameters rather
	// than in the body. Names may carry their "$" wire prefix;
	// callers may always omit it.
	QueryArgs []string

	// PathToBody names path parameters that are also copied into the
	// body when the caller did not pass them separately.
	PathToBody []string

	// Paginated marks operations that return pages of items behind
	// $top/$skip and a nextPageLink.
	Paginated bool

	// MaxTop caps the page size; zero means the service default of
	// 200.
	MaxTop int

	// PropKeys names shared fields accepted in the body.
	PropKeys []string

	// Props declares endpoint-specific fields.
	Props map[string]*Field

	// Data optionally references the kind whose schema the body
	// follows.
	Data *Kind

	// NoResult marks operations whose response body is ignored.
	NoResult bool

	// ResultArray marks operations whose whole response is an array.
	ResultArray bool

	// ResultArrayKey names the response key holding the result
	// array.
	ResultArrayKey string

	// ResultKey names the single response key whose value is the
	// result; it applies per element for array results.
	ResultKey string

	// ResultKind constructs the result, or each array element, as an
	// instance of this kind.
	ResultKind *Kind

	// ResultFunc optionally replaces ResultKind with a custom
	// constructor.
	ResultFunc FactoryFunc

	// ExcludeKeys lists response keys dropped before construction,
	// for responses that repeat one value under two names.
	ExcludeKeys []string

	// NilIf404 makes a 404 response produce a nil result instead of
	// an [*HTTPError].
	NilIf404 bool

	// pathParams caches the placeholder names in declaration order.
	pathParams []string

	// fields is the assembled alias table for this operation.
	fields *FieldSet

	// maxTop is MaxTop with the default applied.
	maxTop int
}

// allowedMethods is the verb whitelist for endpoint declarations.
var allowedMethods = map[string]bool{
	http.MethodDelete: true,
	http.MethodGet:    true,
	http.MethodPatch:  true,
	http.MethodPost:   true,
	http.MethodPut:    true,
}

// mustEndpoint validates an endpoint declaration and assembles its
// alias table, panicking on any inconsistency. All endpoints are
// package variables, so mistakes surface at initialization.
func mustEndpoint(e *Endpoint) *Endpoint {
	name := e.Name
	runtimex.PanicIfFalse(name != "", "everyaction: endpoint without a name")
	runtimex.PanicIfFalse(allowedMethods[e.Method],
		fmt.Sprintf("everyaction: %s: unsupported method %q", name, e.Method))

	runtimex.PanicIfTrue(e.ResultKey != "" && (e.ResultKind != nil || e.ResultFunc != nil),
		fmt.Sprintf("everyaction: %s: ResultKey excludes ResultKind and ResultFunc", name))
	runtimex.PanicIfTrue(e.ResultKind != nil && e.ResultFunc != nil,
		fmt.Sprintf("everyaction: %s: at most one of ResultKind and ResultFunc", name))
	if e.NoResult {
		runtimex.PanicIfTrue(
			e.Paginated || e.ResultArray || e.ResultArrayKey != "" || e.ResultKey != "" ||
				e.ResultKind != nil || e.ResultFunc != nil,
			fmt.Sprintf("everyaction: %s: NoResult excludes every result option", name))
	}
	arrayModes := 0
	for _, set := range []bool{e.Paginated, e.ResultArray, e.ResultArrayKey != ""} {
		if set {
			arrayModes++
		}
	}
	runtimex.PanicIfTrue(arrayModes > 1,
		fmt.Sprintf("everyaction: %s: at most one of Paginated, ResultArray, ResultArrayKey", name))

	e.pathParams = parsePathParams(e.Path)
	for _, param := range e.PathToBody {
		runtimex.PanicIfFalse(contains(e.pathParams, param),
			fmt.Sprintf("everyaction: %s: PathToBody name %s is not a path parameter", name, param))
	}

	stripped := make([]string, 0, len(e.QueryArgs))
	for _, q := range e.QueryArgs {
		stripped = append(stripped, strings.TrimLeft(q, "$"))
	}
	allKeys := make(map[string]bool, len(e.PropKeys)+len(stripped)+len(e.PathToBody))
	for _, k := range e.PropKeys {
		allKeys[k] = true
	}
	for _, k := range stripped {
		allKeys[k] = true
	}
	for _, k := range e.PathToBody {
		allKeys[k] = true
	}
	runtimex.PanicIfFalse(len(allKeys) == len(e.PropKeys)+len(stripped)+len(e.PathToBody),
		fmt.Sprintf("everyaction: %s: a key appears in more than one of PropKeys, QueryArgs, PathToBody", name))

	fields := make(map[string]*Field)
	if e.Data != nil {
		for canonical, field := range e.Data.fields.fields {
			runtimex.PanicIfTrue(allKeys[canonical],
				fmt.Sprintf("everyaction: %s: %s belongs to %s and is declared again", name, canonical, e.Data.name))
			_, inProps := e.Props[canonical]
			runtimex.PanicIfTrue(inProps,
				fmt.Sprintf("everyaction: %s: %s belongs to %s and is declared again in Props", name, canonical, e.Data.name))
			fields[canonical] = field
		}
	}
	for _, k := range e.PropKeys {
		_, inProps := e.Props[k]
		runtimex.PanicIfTrue(inProps,
			fmt.Sprintf("everyaction: %s: %s appears in both PropKeys and Props", name, k))
	}
	for k, field := range e.Props {
		fields[k] = field
	}
	for k := range allKeys {
		if _, ok := fields[k]; !ok {
			fields[k] = sharedFields.Get(k)
		}
	}
	e.fields = newFieldSet(fields)

	e.maxTop = e.MaxTop
	if e.maxTop == 0 {
		e.maxTop = defaultMaxTop
	}
	return e
}

// parsePathParams extracts placeholder names in declaration order,
// dropping repeats.
func parsePathParams(path string) []string {
	var out []string
	for _, match := range placeholderPattern.FindAllStringSubmatch(path, -1) {
		if !contains(out, match[1]) {
			out = append(out, match[1])
		}
	}
	return out
}

// reserved argument names handled by the dispatcher itself.
const (
	argLimit = "limit"
	argSkip  = "skip"
	argTop   = "top"
)

// call performs the endpoint against the client.
//
// pathArgs bind the route placeholders in declaration order. args
// carries named arguments under any recognized spelling, plus the
// reserved limit and skip keys on paginated operations. data, when
// not nil, is serialized as the request body in place of the
// processed named arguments.
//
// The untyped result reflects the endpoint's declared shaping; the
// call* helpers below give it a type.
func (e *Endpoint) call(ctx context.Context, c *Client, pathArgs []any, args Args, data any) (any, error) {
	if len(pathArgs) != len(e.pathParams) {
		return nil, usageErrorf(e.Name, "expected %d path arguments, got %d", len(e.pathParams), len(pathArgs))
	}
	args = args.clone()

	limit, limitGiven, err := popIntArg(e.Name, args, argLimit)
	if err != nil {
		return nil, err
	}
	skip, skipGiven, err := popIntArg(e.Name, args, argSkip)
	if err != nil {
		return nil, err
	}
	top, topGiven, err := popIntArg(e.Name, args, argTop)
	if err != nil {
		return nil, err
	}

	pathValue := make(map[string]any, len(e.pathParams))
	for i, param := range e.pathParams {
		pathValue[param] = pathArgs[i]
	}
	for _, param := range e.PathToBody {
		field, err := e.fields.field(param)
		if err != nil {
			return nil, usageError(e.Name, err)
		}
		present, err := field.find(param, args, false)
		if err != nil {
			return nil, usageError(e.Name, err)
		}
		if present == nil {
			args[param] = pathValue[param]
		}
	}
	route := e.Path
	for param, value := range pathValue {
		route = strings.ReplaceAll(route, "{"+param+"}", fmt.Sprintf("%v", value))
	}

	body, err := e.fields.Process(args)
	if err != nil {
		return nil, usageError(e.Name, err)
	}

	query := url.Values{}
	for _, k := range e.QueryArgs {
		strippedKey := strings.TrimLeft(k, "$")
		value, ok := body[strippedKey]
		if !ok {
			continue
		}
		delete(body, strippedKey)
		encoded, err := queryString(value)
		if err != nil {
			return nil, usageError(e.Name, err)
		}
		query.Set(k, encoded)
	}

	if e.Paginated {
		if topGiven {
			return nil, usageErrorf(e.Name, "$top is not supported, use limit instead")
		}
		if !limitGiven {
			limit = c.defaultLimit
		}
		if limit < 0 {
			return nil, usageErrorf(e.Name, "limit must be at least 0, got %d", limit)
		}
		pageTop := e.maxTop
		if limit > 0 && limit < pageTop {
			pageTop = limit
		}
		query.Set("$top", strconv.Itoa(pageTop))
		query.Set("$skip", strconv.Itoa(skip))
	} else {
		if topGiven {
			return nil, usageErrorf(e.Name, "top=%d given for %s, which is not paginated", top, e.Name)
		}
		if skipGiven {
			return nil, usageErrorf(e.Name, "skip=%d given for %s, which is not paginated", skip, e.Name)
		}
		if limitGiven {
			return nil, usageErrorf(e.Name, "limit=%d given for %s, which is not paginated", limit, e.Name)
		}
	}

	var payload []byte
	switch {
	case data != nil:
		payload, err = json.Marshal(data)
	case len(body) > 0:
		payload, err = json.Marshal(body)
	}
	if err != nil {
		return nil, usageErrorf(e.Name, "cannot serialize request body: %v", err)
	}

	status, respURL, respBody, err := c.do(ctx, e.Method, route, query, payload)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", e.Name, err)
	}
	if status >= 400 {
		if status == http.StatusNotFound && e.NilIf404 {
			return nil, nil
		}
		return nil, newHTTPError(e.Name, status, respURL, respBody)
	}
	if e.NoResult {
		return nil, nil
	}

	var parsed any
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("%s: invalid response body: %w", e.Name, err)
	}

	if !e.Paginated && !e.ResultArray && e.ResultArrayKey == "" {
		return e.shapeOne(parsed)
	}

	var items []any
	switch {
	case e.Paginated:
		items, err = e.paginate(ctx, c, parsed, payload, limit)
		if err != nil {
			return nil, err
		}
	case e.ResultArrayKey != "":
		page, ok := asStringMap(parsed)
		if !ok {
			return nil, fmt.Errorf("%s: expected object with key %q, got %T", e.Name, e.ResultArrayKey, parsed)
		}
		items, ok = asSlice(page[e.ResultArrayKey])
		if !ok {
			return nil, fmt.Errorf("%s: expected array under %q", e.Name, e.ResultArrayKey)
		}
	default:
		var ok bool
		items, ok = asSlice(parsed)
		if !ok {
			return nil, fmt.Errorf("%s: expected array response, got %T", e.Name, parsed)
		}
	}
	out := make([]any, 0, len(items))
	for _, item := range items {
		shaped, err := e.shapeOne(item)
		if err != nil {
			return nil, err
		}
		out = append(out, shaped)
	}
	return out, nil
}

// paginate accumulates pages by following nextPageLink until the
// requested limit is reached or the link chain ends. A limit of zero
// means unlimited. When fewer than a full page remains, the $top in
// the continuation link is rewritten to the remaining count. Any
// continuation failure aborts the whole call.
func (e *Endpoint) paginate(ctx context.Context, c *Client, parsed any, payload []byte, limit int) ([]any, error) {
	items, next, err := e.page(parsed)
	if err != nil {
		return nil, err
	}
	for (limit == 0 || len(items) < limit) && next != "" {
		if remaining := limit - len(items); limit > 0 && remaining > 0 && remaining < e.maxTop {
			next = topPattern.ReplaceAllLiteralString(next, "$top="+strconv.Itoa(remaining))
		}
		status, respURL, respBody, err := c.do(ctx, e.Method, next, nil, payload)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", e.Name, err)
		}
		if status >= 400 {
			return nil, newHTTPError(e.Name, status, respURL, respBody)
		}
		var parsedPage any
		if err := json.Unmarshal(respBody, &parsedPage); err != nil {
			return nil, fmt.Errorf("%s: invalid response body: %w", e.Name, err)
		}
		pageItems, pageNext, err := e.page(parsedPage)
		if err != nil {
			return nil, err
		}
		items = append(items, pageItems...)
		next = pageNext
	}
	return items, nil
}

// page pulls the items and continuation link out of one paginated
// response.
func (e *Endpoint) page(parsed any) ([]any, string, error) {
	page, ok := asStringMap(parsed)
	if !ok {
		return nil, "", fmt.Errorf("%s: expected paginated object response, got %T", e.Name, parsed)
	}
	items, ok := asSlice(page["items"])
	if !ok {
		return nil, "", fmt.Errorf("%s: paginated response has no items array", e.Name)
	}
	next, _ := page["nextPageLink"].(string)
	return items, next, nil
}

// shapeOne shapes a single result value, or a single element of an
// array result, according to the endpoint declaration.
func (e *Endpoint) shapeOne(raw any) (any, error) {
	if e.ResultKey != "" {
		m, ok := asStringMap(raw)
		if !ok {
			return nil, fmt.Errorf("%s: expected object with key %q, got %T", e.Name, e.ResultKey, raw)
		}
		return m[e.ResultKey], nil
	}
	if e.ResultKind == nil && e.ResultFunc == nil {
		return raw, nil
	}
	if m, ok := asStringMap(raw); ok && len(e.ExcludeKeys) > 0 {
		for _, k := range e.ExcludeKeys {
			delete(m, k)
		}
	}
	var (
		shaped any
		err    error
	)
	if e.ResultFunc != nil {
		shaped, err = e.ResultFunc(raw)
	} else {
		shaped, err = e.ResultKind.construct(raw)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: cannot shape response: %w", e.Name, err)
	}
	return shaped, nil
}

// popIntArg removes a reserved argument from args, reporting whether
// it was present.
func popIntArg(op string, args Args, key string) (int, bool, error) {
	raw, ok := args[key]
	if !ok {
		return 0, false, nil
	}
	delete(args, key)
	n, isInt := asInt(raw)
	if !isInt {
		return 0, false, usageErrorf(op, "%s must be an integer, got %T: %v", key, raw, raw)
	}
	return n, true, nil
}

// queryString encodes one query argument: strings pass through and
// anything else is serialized as JSON.
func queryString(value any) (string, error) {
	if s, ok := value.(string); ok {
		return s, nil
	}
	encoded, err := json.Marshal(value)
	if err != nil {
		return "", fmt.Errorf("cannot serialize query argument: %w", err)
	}
	return string(encoded), nil
}

// callNone performs an endpoint whose response body is ignored.
func callNone(ctx context.Context, c *Client, e *Endpoint, pathArgs []any, args Args, data any) error {
	_, err := e.call(ctx, c, pathArgs, args, data)
	return err
}

// callObject performs an endpoint whose result is a single object. A
// nil object with a nil error means the endpoint hit its NilIf404
// path.
func callObject(ctx context.Context, c *Client, e *Endpoint, pathArgs []any, args Args, data any) (*Object, error) {
	raw, err := e.call(ctx, c, pathArgs, args, data)
	if err != nil || raw == nil {
		return nil, err
	}
	obj, ok := raw.(*Object)
	if !ok {
		return nil, fmt.Errorf("%s: unexpected result type %T", e.Name, raw)
	}
	return obj, nil
}

// callValue performs an endpoint whose result is a bare value, such
// as an extracted key.
func callValue(ctx context.Context, c *Client, e *Endpoint, pathArgs []any, args Args, data any) (any, error) {
	return e.call(ctx, c, pathArgs, args, data)
}

// callList performs an endpoint whose result is a list of objects.
func callList(ctx context.Context, c *Client, e *Endpoint, pathArgs []any, args Args, data any) ([]*Object, error) {
	raw, err := e.call(ctx, c, pathArgs, args, data)
	if err != nil || raw == nil {
		return nil, err
	}
	items, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("%s: unexpected result type %T", e.Name, raw)
	}
	out := make([]*Object, 0, len(items))
	for _, item := range items {
		obj, ok := item.(*Object)
		if !ok {
			return nil, fmt.Errorf("%s: unexpected element type %T", e.Name, item)
		}
		out = append(out, obj)
	}
	return out, nil
}

// callStrings performs an endpoint whose result is a list of strings.
func callStrings(ctx context.Context, c *Client, e *Endpoint, pathArgs []any, args Args, data any) ([]string, error) {
	raw, err := e.call(ctx, c, pathArgs, args, data)
	if err != nil || raw == nil {
		return nil, err
	}
	items, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("%s: unexpected result type %T", e.Name, raw)
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("%s: unexpected element type %T", e.Name, item)
		}
		out = append(out, s)
	}
	return out, nil
}
