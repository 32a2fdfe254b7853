package everyaction

//
// The ChangedEntities service: export jobs that report which records
// changed in a time window, and the Changes helper that runs one end
// to end.
//

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// changesPollInterval is how long [ChangedEntitiesService.Changes]
// waits between export job status checks.
const changesPollInterval = 5 * time.Second

// ChangedEntitiesService holds the operations on changed entity
// export jobs. Use it through [Client.ChangedEntities].
type ChangedEntitiesService struct {
	client *Client
}

var changedEntitiesChangeTypesEndpoint = mustEndpoint(&Endpoint{
	Name:        "ChangedEntities.ChangeTypes",
	Method:      http.MethodGet,
	Path:        "changedEntityExportJobs/changeTypes/{resourceType}",
	ResultArray: true,
	ResultKind:  ChangeType,
})

// ChangeTypes lists the change types of a resource.
func (s *ChangedEntitiesService) ChangeTypes(ctx context.Context, resource string) ([]*Object, error) {
	return callList(ctx, s.client, changedEntitiesChangeTypesEndpoint, []any{resource}, nil, nil)
}

var changedEntitiesCreateJobEndpoint = mustEndpoint(&Endpoint{
	Name:       "ChangedEntities.CreateJob",
	Method:     http.MethodPost,
	Path:       "changedEntityExportJobs",
	Data:       ChangedEntityExportRequest,
	PropKeys:   []string{"fileSizeKbLimit"},
	ResultKind: ChangedEntityExportRequest,
})

// CreateJob starts a changed entity export job.
func (s *ChangedEntitiesService) CreateJob(ctx context.Context, args Args) (*Object, error) {
	return callObject(ctx, s.client, changedEntitiesCreateJobEndpoint, nil, args, nil)
}

var changedEntitiesFieldsEndpoint = mustEndpoint(&Endpoint{
	Name:        "ChangedEntities.Fields",
	Method:      http.MethodGet,
	Path:        "changedEntityExportJobs/fields/{resourceType}",
	ResultArray: true,
	ResultKind:  ChangedEntityField,
})

// Fields lists the exportable fields of a resource.
func (s *ChangedEntitiesService) Fields(ctx context.Context, resource string) ([]*Object, error) {
	return callList(ctx, s.client, changedEntitiesFieldsEndpoint, []any{resource}, nil, nil)
}

var changedEntitiesJobEndpoint = mustEndpoint(&Endpoint{
	Name:       "ChangedEntities.Job",
	Method:     http.MethodGet,
	Path:       "changedEntityExportJobs/{exportJobId}",
	ResultKind: ChangedEntityExportJob,
})

// Job retrieves a changed entity export job by ID.
func (s *ChangedEntitiesService) Job(ctx context.Context, jobID int) (*Object, error) {
	return callObject(ctx, s.client, changedEntitiesJobEndpoint, []any{jobID}, nil, nil)
}

var changedEntitiesResourcesEndpoint = mustEndpoint(&Endpoint{
	Name:        "ChangedEntities.Resources",
	Method:      http.MethodGet,
	Path:        "changedEntityExportJobs/resources",
	ResultArray: true,
})

// Resources lists the names of the resource types that report changes.
func (s *ChangedEntitiesService) Resources(ctx context.Context) ([]string, error) {
	return callStrings(ctx, s.client, changedEntitiesResourcesEndpoint, nil, nil, nil)
}

// FindChangeType retrieves the change type of a resource with the
// given name, matched case-insensitively.
func (s *ChangedEntitiesService) FindChangeType(ctx context.Context, resource, name string) (*Object, error) {
	types, err := s.ChangeTypes(ctx, resource)
	if err != nil {
		return nil, err
	}
	return findByName(types, name, "change type")
}

// FindField retrieves the exportable field of a resource with the
// given name, matched case-insensitively.
func (s *ChangedEntitiesService) FindField(ctx context.Context, resource, name string) (*Object, error) {
	fields, err := s.Fields(ctx, resource)
	if err != nil {
		return nil, err
	}
	return findByName(fields, name, "field")
}

// NameToChangeType retrieves the change types of a resource keyed by
// name.
func (s *ChangedEntitiesService) NameToChangeType(ctx context.Context, resource string) (map[string]*Object, error) {
	types, err := s.ChangeTypes(ctx, resource)
	if err != nil {
		return nil, err
	}
	return namedByName(types), nil
}

// NameToField retrieves the exportable fields of a resource keyed by
// name.
func (s *ChangedEntitiesService) NameToField(ctx context.Context, resource string) (map[string]*Object, error) {
	fields, err := s.Fields(ctx, resource)
	if err != nil {
		return nil, err
	}
	return namedByName(fields), nil
}

// Changes starts a changed entity export job with the given arguments,
// waits for it to complete, downloads the files it produced, and
// parses them into one row per change, keyed by field name with values
// converted through [ParseChangedEntityValue].
//
// Passing fieldCache skips fetching the field catalog and restricts
// the parsed columns to the cached fields; columns missing from the
// files are simply absent from the rows.
func (s *ChangedEntitiesService) Changes(ctx context.Context, args Args, fieldCache ...*Object) ([]Args, error) {
	created, err := s.CreateJob(ctx, args)
	if err != nil {
		return nil, err
	}
	jobID, err := created.GetInt("exportJobId")
	if err != nil {
		return nil, fmt.Errorf("ChangedEntities.Changes: created job has no ID: %w", err)
	}
	job, err := s.waitForJob(ctx, jobID)
	if err != nil {
		return nil, err
	}

	var fieldsByName map[string]*Object
	if len(fieldCache) > 0 {
		fieldsByName = namedByName(fieldCache)
	} else {
		resource, err := created.GetString("resourceType")
		if err != nil || resource == "" {
			return nil, fmt.Errorf("ChangedEntities.Changes: created job carries no resource type")
		}
		fieldsByName, err = s.NameToField(ctx, resource)
		if err != nil {
			return nil, err
		}
	}

	rawFiles, err := job.Get("files")
	if err != nil {
		return nil, fmt.Errorf("ChangedEntities.Changes: %w", err)
	}
	files, ok := rawFiles.([]any)
	if !ok || len(files) == 0 {
		return nil, nil
	}

	var (
		header      string
		columnIndex map[string]int
		rows        []Args
	)
	for _, raw := range files {
		file, ok := raw.(*Object)
		if !ok {
			return nil, fmt.Errorf("ChangedEntities.Changes: unexpected file record %T", raw)
		}
		downloadURL, err := file.GetString("downloadUrl")
		if err != nil || downloadURL == "" {
			return nil, fmt.Errorf("ChangedEntities.Changes: export file carries no download URL")
		}
		data, err := s.download(ctx, downloadURL)
		if err != nil {
			return nil, err
		}
		lines := csvLines(data)
		if len(lines) == 0 {
			continue
		}
		if header == "" {
			header = lines[0]
			columnIndex = make(map[string]int)
			for i, column := range strings.Split(header, ",") {
				if _, known := fieldsByName[column]; known {
					columnIndex[column] = i
				}
			}
		}
		rows, err = parseChangesCSV(lines, columnIndex, fieldsByName, header, rows)
		if err != nil {
			return nil, err
		}
	}
	return rows, nil
}

// waitForJob polls an export job until it leaves the InProcess and
// Pending states.
func (s *ChangedEntitiesService) waitForJob(ctx context.Context, jobID int) (*Object, error) {
	for {
		job, err := s.Job(ctx, jobID)
		if err != nil {
			return nil, err
		}
		status, err := job.GetString("jobStatus")
		if err != nil {
			return nil, fmt.Errorf("ChangedEntities.Changes: %w", err)
		}
		switch status {
		case "InProcess", "Pending":
		case "Complete":
			return job, nil
		case "Error":
			return nil, &JobFailedError{Job: job}
		default:
			return nil, fmt.Errorf("ChangedEntities.Changes: unexpected job status %q", status)
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(changesPollInterval):
		}
	}
}

// download fetches one export file. Export URLs are pre-signed, so the
// request carries no credentials.
func (s *ChangedEntitiesService) download(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("ChangedEntities.Changes: %w", err)
	}
	resp, err := s.client.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ChangedEntities.Changes: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))
		return nil, newHTTPError("ChangedEntities.Changes", resp.StatusCode, url, body)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("ChangedEntities.Changes: %w", err)
	}
	return data, nil
}

// csvLines splits a downloaded export file into lines, tolerating
// CRLF endings and a trailing newline.
func csvLines(data []byte) []string {
	text := strings.TrimRight(string(data), "\r\n")
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// parseChangesCSV appends the rows of one export file, skipping the
// header when the file repeats it. Export files do not quote values,
// so rows split on plain commas.
func parseChangesCSV(lines []string, columnIndex map[string]int, fieldsByName map[string]*Object, header string, rows []Args) ([]Args, error) {
	start := 0
	if lines[0] == header {
		start = 1
	}
	for _, line := range lines[start:] {
		values := strings.Split(line, ",")
		row := make(Args, len(columnIndex))
		for column, i := range columnIndex {
			if i >= len(values) {
				continue
			}
			value, err := ParseChangedEntityValue(fieldsByName[column], values[i])
			if err != nil {
				return nil, fmt.Errorf("ChangedEntities.Changes: column %s: %w", column, err)
			}
			row[column] = value
		}
		rows = append(rows, row)
	}
	return rows, nil
}
