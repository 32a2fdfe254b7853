package main

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/everyaction/everyaction-go"
	"github.com/everyaction/everyaction-go/internal/testingx"
)

func TestParsePeopleCSV(t *testing.T) {
	file, err := os.Open("testdata/people.csv")
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()
	people, err := parsePeopleCSV(file)
	if err != nil {
		t.Fatal(err)
	}
	if len(people) != 3 {
		t.Fatalf("expected 3 people, got %d", len(people))
	}
	if people[0]["firstName"] != "Elaine" || people[0]["email"] != "elaine.ramirez@example.org" {
		t.Fatalf("unexpected first person: %+v", people[0])
	}
	if _, ok := people[1]["email"]; ok {
		t.Fatalf("expected no email for the second person: %+v", people[1])
	}
	if people[2]["phone"] != "5125550199" {
		t.Fatalf("unexpected third person: %+v", people[2])
	}
}

func TestParsePeopleCSVRaggedRows(t *testing.T) {
	reader := strings.NewReader("firstName,lastName\nAda\n")
	if _, err := parsePeopleCSV(reader); err == nil {
		t.Fatal("expected an error here")
	}
}

func TestImportAll(t *testing.T) {
	fake := &testingx.FakeVAN{}
	fake.Register("people", "vanId")
	fake.Append("people", map[string]any{
		"vanId":     101,
		"firstName": "Elaine",
		"lastName":  "Ramirez",
		"emails":    []any{map[string]any{"email": "elaine.ramirez@example.org"}},
	})
	srv := testingx.MustNewHTTPServer(fake)
	defer srv.Close()
	client, err := everyaction.New(&everyaction.Config{
		AppName:  "fieldapp",
		APIKey:   "sekrit",
		Endpoint: srv.URL,
		Mode:     "MyCampaign",
	})
	if err != nil {
		t.Fatal(err)
	}
	people := []everyaction.Args{
		{"firstName": "Elaine", "lastName": "Ramirez", "email": "elaine.ramirez@example.org"},
		{"firstName": "Theo", "lastName": "Whitfield", "email": "theo.w@example.org"},
	}
	count, err := importAll(context.Background(), client, everyaction.DiscardLogger, people)
	if err != nil {
		t.Fatal(err)
	}
	if count != 2 {
		t.Fatalf("expected 2 imported people, got %d", count)
	}
	if items := fake.Items("people"); len(items) != 2 {
		t.Fatalf("expected 2 stored people, got %d", len(items))
	}
}

func TestImportAllCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // fail immediately
	count, err := importAll(ctx, nil, everyaction.DiscardLogger, []everyaction.Args{{"first": "Ada"}})
	if err == nil {
		t.Fatal("expected an error here")
	}
	if count != 0 {
		t.Fatal("nothing should be imported here")
	}
}

func TestMainMissingFile(t *testing.T) {
	defer func() {
		s := recover()
		if s == nil {
			t.Fatal("expected a panic here")
		}
		if s != "Cannot open people file" {
			t.Fatalf("unexpected panic message: %v", s)
		}
	}()
	mainWithArgs([]string{"notexist.csv"})
}

func TestMainUsage(t *testing.T) {
	defer func() {
		if s := recover(); s == nil {
			t.Fatal("expected a panic here")
		}
	}()
	mainWithArgs(nil)
}
