package testingx

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// FakeChangedEntities implements the changed-entity export flow for
// testing: job creation, status polling, the field and resource
// catalogs, and the pre-signed download links a completed job hands
// out.
//
// The zero value completes every job on the first status check with
// no files; fill CSVFiles, Fields, and Resources to give jobs
// something to export.
//
// This struct's methods panic for several errors. Only use for
// testing purposes!
type FakeChangedEntities struct {
	// CSVFiles are the file payloads a completed job links to, one
	// download link per element.
	CSVFiles []string

	// ChangeTypes are the change type records served for every
	// resource.
	ChangeTypes []map[string]any

	// Fields are the exportable-field records served for every
	// resource.
	Fields []map[string]any

	// Resources are the resource type names.
	Resources []string

	// PendingPolls is how many status checks report InProcess
	// before a job completes.
	PendingPolls int

	// FailJobs makes every job finish in the Error status.
	FailJobs bool

	// EditJobResponse is an OPTIONAL callback to edit a job status
	// response before the server sends it to the client.
	EditJobResponse func(resp map[string]any)

	// mu provides mutual exclusion.
	mu sync.Mutex

	// nextID is the next job ID to assign.
	nextID int

	// jobs maps job IDs to the resource they export and the number
	// of status checks served so far.
	jobs map[int]*fakeExportJob

	// downloads maps download tokens to file payloads.
	downloads map[string]string
}

// fakeExportJob tracks one created export job.
type fakeExportJob struct {
	resource string
	polls    int
}

// ServeHTTP implements [http.Handler].
//
// This method is safe to call concurrently with other methods.
func (fce *FakeChangedEntities) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := strings.Trim(r.URL.Path, "/")
	log.Printf("FakeChangedEntities: %s %s", r.Method, r.URL.String())

	switch {
	case r.Method == http.MethodPost && path == "changedEntityExportJobs":
		fce.createJob(w, r)
	case r.Method == http.MethodGet && path == "changedEntityExportJobs/resources":
		writeJSON(w, fce.Resources)
	case r.Method == http.MethodGet && strings.HasPrefix(path, "changedEntityExportJobs/fields/"):
		writeJSON(w, fce.Fields)
	case r.Method == http.MethodGet && strings.HasPrefix(path, "changedEntityExportJobs/changeTypes/"):
		writeJSON(w, fce.ChangeTypes)
	case r.Method == http.MethodGet && strings.HasPrefix(path, "changedEntityExportJobs/"):
		fce.jobStatus(w, r, strings.TrimPrefix(path, "changedEntityExportJobs/"))
	case r.Method == http.MethodGet && strings.HasPrefix(path, "exports/"):
		fce.download(w, strings.TrimSuffix(strings.TrimPrefix(path, "exports/"), ".csv"))
	default:
		log.Printf("FakeChangedEntities: unsupported route")
		WriteAPIError(w, http.StatusNotFound, "NOT_FOUND", "no such route: "+r.URL.Path)
	}
}

// createJob registers a new export job in the Pending state.
func (fce *FakeChangedEntities) createJob(w http.ResponseWriter, r *http.Request) {
	body, ok := readItem(w, r)
	if !ok {
		return
	}
	resource, _ := body["resourceType"].(string)
	fce.mu.Lock()
	fce.nextID++
	id := fce.nextID
	if fce.jobs == nil {
		fce.jobs = make(map[int]*fakeExportJob)
	}
	fce.jobs[id] = &fakeExportJob{resource: resource}
	fce.mu.Unlock()
	body["exportJobId"] = id
	writeJSON(w, body)
}

// jobStatus serves one status check for an export job, advancing it
// through InProcess toward Complete or Error.
func (fce *FakeChangedEntities) jobStatus(w http.ResponseWriter, r *http.Request, rawID string) {
	id, err := strconv.Atoi(rawID)
	if err != nil {
		WriteAPIError(w, http.StatusNotFound, "NOT_FOUND", "no such job: "+rawID)
		return
	}
	fce.mu.Lock()
	defer fce.mu.Unlock()
	job := fce.jobs[id]
	if job == nil {
		WriteAPIError(w, http.StatusNotFound, "NOT_FOUND", "no such job: "+rawID)
		return
	}
	resp := map[string]any{"exportJobId": id}
	switch {
	case fce.FailJobs:
		resp["jobStatus"] = "Error"
	case job.polls < fce.PendingPolls:
		job.polls++
		resp["jobStatus"] = "InProcess"
	default:
		resp["jobStatus"] = "Complete"
		files := []map[string]any{}
		for _, payload := range fce.CSVFiles {
			token := uuid.Must(uuid.NewRandom()).String()
			if fce.downloads == nil {
				fce.downloads = make(map[string]string)
			}
			fce.downloads[token] = payload
			files = append(files, map[string]any{
				"downloadUrl": fmt.Sprintf("http://%s/exports/%s.csv", r.Host, token),
			})
		}
		resp["files"] = files
	}
	if fce.EditJobResponse != nil {
		fce.EditJobResponse(resp)
	}
	writeJSON(w, resp)
}

// download serves one pre-signed export file. Like the live service,
// this route requires no credentials.
func (fce *FakeChangedEntities) download(w http.ResponseWriter, token string) {
	fce.mu.Lock()
	payload, ok := fce.downloads[token]
	fce.mu.Unlock()
	if !ok {
		WriteAPIError(w, http.StatusNotFound, "NOT_FOUND", "no such export: "+token)
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Write([]byte(payload))
}
