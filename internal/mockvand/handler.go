// Package mockvand implements a fake EveryAction API server.
//
// The server implements enough of the HTTP API to exercise vancli and
// the client library without touching a live committee. The generic
// CRUD surface is served by a seeded [testingx.FakeVAN] and the
// changed-entity export workflow by a [testingx.FakeChangedEntities].
package mockvand

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/apex/log"
	"github.com/everyaction/everyaction-go/internal/testingx"
	"github.com/everyaction/everyaction-go/internal/version"
)

// Handler is an [http.Handler] implementing the fake EveryAction API.
type Handler struct {
	// Exports is the MANDATORY fake changed-entity export service.
	Exports *testingx.FakeChangedEntities

	// Indexer is the MANDATORY atomic integer used to assign an index to requests.
	Indexer *atomic.Int64

	// Logger is the MANDATORY logger to use.
	Logger log.Interface

	// VAN is the MANDATORY fake serving the generic API surface.
	VAN *testingx.FakeVAN
}

var _ http.Handler = &Handler{}

// NewHandler constructs a [Handler] with a seeded committee and a
// ready-to-poll export service.
func NewHandler(logger log.Interface) *Handler {
	return &Handler{
		Exports: newSeededExports(),
		Indexer: &atomic.Int64{},
		Logger:  logger,
		VAN:     newSeededVAN(),
	}
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// track the number of in-flight requests
	metricRequestsInflight.Inc()
	defer metricRequestsInflight.Dec()

	// create and add the Server header
	w.Header().Add("Server", fmt.Sprintf("mockvand/%s", version.Version))

	// assign an index to the request for logging purposes
	index := h.Indexer.Add(1)
	h.Logger.Infof("mockvand: [#%d] %s %s", index, r.Method, r.URL.Path)

	// route to the proper fake and track the response status
	started := time.Now()
	rw := &statusWriter{ResponseWriter: w, code: http.StatusOK}
	h.route(rw, r, index)
	elapsed := time.Since(started)

	// track the response code and the time required to produce it
	metricRequestsCount.WithLabelValues(strconv.Itoa(rw.code), r.Method).Inc()
	metricRequestDurationSeconds.Observe(elapsed.Seconds())
}

// route dispatches the request to the proper fake.
func (h *Handler) route(w http.ResponseWriter, r *http.Request, index int64) {
	switch {
	case strings.HasPrefix(r.URL.Path, "/exports/"):
		// export files are served without credentials like the live service
		h.Exports.ServeHTTP(w, r)
	case strings.HasPrefix(r.URL.Path, "/changedEntityExportJobs"):
		if !h.authorized(r) {
			h.Logger.Warnf("mockvand: [#%d] invalid credentials", index)
			testingx.WriteAPIError(w, http.StatusUnauthorized, "UNAUTHORIZED", "invalid credentials")
			return
		}
		h.Exports.ServeHTTP(w, r)
	default:
		h.VAN.ServeHTTP(w, r)
	}
}

// authorized implements the credential check for the routes that the
// [testingx.FakeVAN] does not serve itself.
func (h *Handler) authorized(r *http.Request) bool {
	if h.VAN.AppName == "" && h.VAN.APIKey == "" {
		return true
	}
	user, pass, ok := r.BasicAuth()
	return ok && user == h.VAN.AppName && pass == h.VAN.APIKey
}

// statusWriter captures the status code the fakes write so we can
// label the requests counter with it.
type statusWriter struct {
	http.ResponseWriter
	code int
}

// WriteHeader implements http.ResponseWriter.
func (w *statusWriter) WriteHeader(code int) {
	w.code = code
	w.ResponseWriter.WriteHeader(code)
}
