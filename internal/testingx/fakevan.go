package testingx

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/everyaction/everyaction-go/internal/must"
	"github.com/everyaction/everyaction-go/internal/runtimex"
)

// fakeVANDefaultTop is the page size used when a request carries no
// $top argument, matching the live API default.
const fakeVANDefaultTop = 200

// FakeVAN implements enough of the EveryAction API for testing: CRUD
// on registered collections with the exact paginated wire contract
// (items sliced by $skip/$top, a nextPageLink carrying the advanced
// $skip, the total count) plus the person find endpoints.
//
// The zero value serves no collections; call [FakeVAN.Register] and
// [FakeVAN.Append] before use.
//
// This struct's methods panic for several errors. Only use for
// testing purposes!
type FakeVAN struct {
	// AppName is the OPTIONAL basic-auth user name to require. An
	// empty value disables the credential check.
	AppName string

	// APIKey is the OPTIONAL basic-auth password to require,
	// including the mode suffix. An empty value disables the
	// credential check.
	APIKey string

	// EditPage is an OPTIONAL callback to edit a list page before
	// the server sends it to the client.
	EditPage func(route string, page map[string]any)

	// ValidateRequest is an OPTIONAL callback to reject incoming
	// requests; a non-nil error produces a 400 response carrying the
	// error text.
	ValidateRequest func(r *http.Request) error

	// mu provides mutual exclusion.
	mu sync.Mutex

	// collections maps route names to their collections.
	collections map[string]*fakeCollection
}

// fakeCollection is one registered collection.
type fakeCollection struct {
	// idKey is the name of the item key carrying the identifier.
	idKey string

	// items are the stored items in insertion order.
	items []map[string]any

	// nextID is the identifier the next created item receives.
	nextID int
}

// Register declares a collection served under the given route name,
// with items identified by the given key.
func (fv *FakeVAN) Register(name, idKey string) {
	fv.mu.Lock()
	defer fv.mu.Unlock()
	if fv.collections == nil {
		fv.collections = make(map[string]*fakeCollection)
	}
	_, dup := fv.collections[name]
	runtimex.PanicIfTrue(dup, "FakeVAN: collection already registered: "+name)
	fv.collections[name] = &fakeCollection{idKey: idKey, nextID: 1}
}

// Append adds items to a registered collection.
func (fv *FakeVAN) Append(name string, items ...map[string]any) {
	fv.mu.Lock()
	defer fv.mu.Unlock()
	coll := fv.collections[name]
	runtimex.PanicIfTrue(coll == nil, "FakeVAN: no such collection: "+name)
	for _, item := range items {
		coll.items = append(coll.items, item)
		if id, ok := intValue(item[coll.idKey]); ok && id >= coll.nextID {
			coll.nextID = id + 1
		}
	}
}

// Items returns a snapshot of a registered collection.
func (fv *FakeVAN) Items(name string) []map[string]any {
	fv.mu.Lock()
	defer fv.mu.Unlock()
	coll := fv.collections[name]
	runtimex.PanicIfTrue(coll == nil, "FakeVAN: no such collection: "+name)
	return append([]map[string]any{}, coll.items...)
}

// ServeHTTP implements [http.Handler].
//
// This method is safe to call concurrently with other methods.
func (fv *FakeVAN) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// enforce credentials when the fake has them configured
	if fv.AppName != "" || fv.APIKey != "" {
		user, pass, ok := r.BasicAuth()
		if !ok || user != fv.AppName || pass != fv.APIKey {
			log.Printf("FakeVAN: invalid credentials")
			WriteAPIError(w, http.StatusUnauthorized, "UNAUTHORIZED", "invalid credentials")
			return
		}
	}

	// give the user a chance to reject the request
	if fv.ValidateRequest != nil {
		if err := fv.ValidateRequest(r); err != nil {
			log.Printf("FakeVAN: invalid request: %s", err.Error())
			WriteAPIError(w, http.StatusBadRequest, "INVALID_PARAMETER", err.Error())
			return
		}
	}

	segments := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	log.Printf("FakeVAN: %s %s", r.Method, r.URL.String())

	// handle the person find endpoints before generic routing
	if len(segments) == 2 && segments[0] == "people" && r.Method == http.MethodPost {
		switch segments[1] {
		case "find":
			fv.findPerson(w, r, false)
			return
		case "findOrCreate":
			fv.findPerson(w, r, true)
			return
		}
	}

	fv.mu.Lock()
	defer fv.mu.Unlock()
	coll := fv.collections[segments[0]]
	if coll == nil {
		log.Printf("FakeVAN: no such collection: %s", segments[0])
		WriteAPIError(w, http.StatusNotFound, "NOT_FOUND", "no such route: "+r.URL.Path)
		return
	}

	switch {
	case len(segments) == 1 && r.Method == http.MethodGet:
		fv.list(w, r, segments[0], coll)
	case len(segments) == 1 && r.Method == http.MethodPost:
		fv.create(w, r, coll)
	case len(segments) == 2 && r.Method == http.MethodGet:
		fv.get(w, segments[1], coll)
	case len(segments) == 2 &&
		(r.Method == http.MethodPut || r.Method == http.MethodPatch || r.Method == http.MethodPost):
		fv.update(w, r, segments[1], coll)
	case len(segments) == 2 && r.Method == http.MethodDelete:
		fv.delete(w, segments[1], coll)
	default:
		log.Printf("FakeVAN: unsupported route")
		WriteAPIError(w, http.StatusNotFound, "NOT_FOUND", "no such route: "+r.URL.Path)
	}
}

// list serves one page of a collection. The nextPageLink carries a
// literal unencoded $top/$skip pair because that is what the live
// API emits and what clients rewrite.
func (fv *FakeVAN) list(w http.ResponseWriter, r *http.Request, name string, coll *fakeCollection) {
	query := r.URL.Query()
	top := atoiDefault(query.Get("$top"), fakeVANDefaultTop)
	skip := atoiDefault(query.Get("$skip"), 0)
	if top <= 0 {
		top = fakeVANDefaultTop
	}
	total := len(coll.items)
	if skip > total {
		skip = total
	}
	end := skip + top
	if end > total {
		end = total
	}
	page := map[string]any{
		"items":        coll.items[skip:end],
		"count":        total,
		"nextPageLink": nil,
	}
	if end < total {
		page["nextPageLink"] = fmt.Sprintf("http://%s/%s?$top=%d&$skip=%d", r.Host, name, top, end)
	}
	if fv.EditPage != nil {
		fv.EditPage(name, page)
	}
	writeJSON(w, page)
}

// create inserts the posted item, assigning the next identifier when
// the body does not carry one.
func (fv *FakeVAN) create(w http.ResponseWriter, r *http.Request, coll *fakeCollection) {
	item, ok := readItem(w, r)
	if !ok {
		return
	}
	if _, has := item[coll.idKey]; !has {
		item[coll.idKey] = coll.nextID
	}
	if id, ok := intValue(item[coll.idKey]); ok && id >= coll.nextID {
		coll.nextID = id + 1
	}
	coll.items = append(coll.items, item)
	writeJSON(w, item)
}

// get serves a single item by identifier.
func (fv *FakeVAN) get(w http.ResponseWriter, id string, coll *fakeCollection) {
	for _, item := range coll.items {
		if idMatches(item[coll.idKey], id) {
			writeJSON(w, item)
			return
		}
	}
	WriteAPIError(w, http.StatusNotFound, "NOT_FOUND", "no such item: "+id)
}

// update merges the request body into the identified item and serves
// the result back.
func (fv *FakeVAN) update(w http.ResponseWriter, r *http.Request, id string, coll *fakeCollection) {
	body, ok := readItem(w, r)
	if !ok {
		return
	}
	for _, item := range coll.items {
		if idMatches(item[coll.idKey], id) {
			for k, v := range body {
				item[k] = v
			}
			writeJSON(w, item)
			return
		}
	}
	WriteAPIError(w, http.StatusNotFound, "NOT_FOUND", "no such item: "+id)
}

// delete removes the identified item.
func (fv *FakeVAN) delete(w http.ResponseWriter, id string, coll *fakeCollection) {
	for i, item := range coll.items {
		if idMatches(item[coll.idKey], id) {
			coll.items = append(coll.items[:i], coll.items[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	WriteAPIError(w, http.StatusNotFound, "NOT_FOUND", "no such item: "+id)
}

// findPerson implements POST people/find and people/findOrCreate
// against the registered people collection. A person matches by
// vanId, by any email address, or by first plus last name.
func (fv *FakeVAN) findPerson(w http.ResponseWriter, r *http.Request, create bool) {
	body, ok := readItem(w, r)
	if !ok {
		return
	}
	fv.mu.Lock()
	defer fv.mu.Unlock()
	coll := fv.collections["people"]
	if coll == nil {
		log.Printf("FakeVAN: people collection not registered")
		WriteAPIError(w, http.StatusNotFound, "NOT_FOUND", "no such route: "+r.URL.Path)
		return
	}
	for _, item := range coll.items {
		if personMatches(item, body) {
			writeJSON(w, item)
			return
		}
	}
	if !create {
		WriteAPIError(w, http.StatusNotFound, "NOT_FOUND", "no matching person")
		return
	}
	body["vanId"] = coll.nextID
	coll.nextID++
	coll.items = append(coll.items, body)
	writeJSON(w, body)
}

// personMatches reports whether the stored person matches the find
// request.
func personMatches(item, query map[string]any) bool {
	if id, ok := intValue(query["vanId"]); ok {
		stored, _ := intValue(item["vanId"])
		return stored == id
	}
	for _, email := range emailAddresses(query) {
		for _, stored := range emailAddresses(item) {
			if strings.EqualFold(stored, email) {
				return true
			}
		}
	}
	first, _ := query["firstName"].(string)
	last, _ := query["lastName"].(string)
	if first != "" && last != "" {
		storedFirst, _ := item["firstName"].(string)
		storedLast, _ := item["lastName"].(string)
		return strings.EqualFold(storedFirst, first) && strings.EqualFold(storedLast, last)
	}
	return false
}

// emailAddresses extracts the email addresses of a person record.
func emailAddresses(item map[string]any) []string {
	raw, _ := item["emails"].([]any)
	var out []string
	for _, entry := range raw {
		record, _ := entry.(map[string]any)
		if address, _ := record["email"].(string); address != "" {
			out = append(out, address)
		}
	}
	return out
}

// readItem parses a JSON object request body, replying 400 on
// failure.
func readItem(w http.ResponseWriter, r *http.Request) (map[string]any, bool) {
	body := runtimex.Try1(io.ReadAll(r.Body))
	var item map[string]any
	if err := json.Unmarshal(body, &item); err != nil {
		log.Printf("FakeVAN: cannot unmarshal JSON: %s", err.Error())
		WriteAPIError(w, http.StatusBadRequest, "INVALID_PARAMETER", "request body is not a JSON object")
		return nil, false
	}
	return item, true
}

// WriteAPIError replies with the structured error body the live API
// uses for failures.
func WriteAPIError(w http.ResponseWriter, status int, code, text string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(must.MarshalJSON(map[string]any{
		"errors": []map[string]any{{"code": code, "text": text}},
	}))
}

// writeJSON replies 200 with a JSON body.
func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.Write(must.MarshalJSON(v))
}

// atoiDefault parses s falling back to fallback when empty or
// malformed.
func atoiDefault(s string, fallback int) int {
	if s == "" {
		return fallback
	}
	value, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return value
}

// intValue extracts an integer from a stored or decoded JSON value.
func intValue(raw any) (int, bool) {
	switch v := raw.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		if v == float64(int(v)) {
			return int(v), true
		}
	}
	return 0, false
}

// idMatches reports whether an item identifier matches the path
// segment naming it.
func idMatches(value any, pathID string) bool {
	switch v := value.(type) {
	case string:
		return v == pathID
	case int:
		return strconv.Itoa(v) == pathID
	case int64:
		return strconv.FormatInt(v, 10) == pathID
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64) == pathID
	}
	return false
}
