package mockvand

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/apex/log"
	"github.com/everyaction/everyaction-go/internal/must"
	"github.com/everyaction/everyaction-go/internal/testingx"
)

func TestHandlerServesSeededPeople(t *testing.T) {
	srv := testingx.MustNewHTTPServer(NewHandler(log.Log))
	defer srv.Close()
	resp, err := http.Get(srv.URL + "/people/101")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		t.Fatalf("unexpected status code: %d", resp.StatusCode)
	}
	if value := resp.Header.Get("Server"); !strings.HasPrefix(value, "mockvand/") {
		t.Fatalf("unexpected Server header: %s", value)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	var person map[string]any
	must.UnmarshalJSON(body, &person)
	if person["firstName"] != "Elaine" {
		t.Fatalf("unexpected person: %+v", person)
	}
}

func TestHandlerRoutesExportJobs(t *testing.T) {
	srv := testingx.MustNewHTTPServer(NewHandler(log.Log))
	defer srv.Close()
	resp, err := http.Post(
		srv.URL+"/changedEntityExportJobs",
		"application/json",
		strings.NewReader(`{"resourceType":"Contacts","requestedFields":["VanID"]}`),
	)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		t.Fatalf("unexpected status code: %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	var job map[string]any
	must.UnmarshalJSON(body, &job)
	if job["resourceType"] != "Contacts" {
		t.Fatalf("unexpected job: %+v", job)
	}
	if _, ok := job["exportJobId"]; !ok {
		t.Fatalf("missing exportJobId: %+v", job)
	}
}

func TestHandlerRejectsUnknownRoutes(t *testing.T) {
	srv := testingx.MustNewHTTPServer(NewHandler(log.Log))
	defer srv.Close()
	resp, err := http.Get(srv.URL + "/nonexistent")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != 404 {
		t.Fatalf("unexpected status code: %d", resp.StatusCode)
	}
}
