package everyaction

import (
	"context"
	"errors"
	"testing"

	"github.com/everyaction/everyaction-go/internal/testingx"
	"github.com/google/go-cmp/cmp"
)

// contactsFieldCatalog is the exportable-field catalog the fake serves
// in these tests.
var contactsFieldCatalog = []map[string]any{
	{"fieldName": "VanID", "fieldType": "N"},
	{"fieldName": "FirstName", "fieldType": "T"},
	{"fieldName": "IsDeceased", "fieldType": "B"},
}

func TestChangedEntitiesCatalogs(t *testing.T) {
	fake := &testingx.FakeChangedEntities{
		Resources: []string{"ActivistCodes", "Contacts"},
		Fields:    contactsFieldCatalog,
		ChangeTypes: []map[string]any{
			{"changeTypeID": 2, "changeTypeName": "ContactAdded"},
			{"changeTypeID": 3, "changeTypeName": "ContactModified"},
		},
	}
	client := newTestClient(t, fake)
	ctx := context.Background()

	t.Run("resources are plain strings", func(t *testing.T) {
		resources, err := client.ChangedEntities.Resources(ctx)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff([]string{"ActivistCodes", "Contacts"}, resources); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("fields construct as typed records", func(t *testing.T) {
		fields, err := client.ChangedEntities.Fields(ctx, "Contacts")
		if err != nil {
			t.Fatal(err)
		}
		if len(fields) != 3 {
			t.Fatal("unexpected field count", len(fields))
		}
		name, err := fields[0].GetString("name")
		if err != nil || name != "VanID" {
			t.Fatal("unexpected field", fields[0])
		}
	})

	t.Run("change type lookup ignores case", func(t *testing.T) {
		found, err := client.ChangedEntities.FindChangeType(ctx, "Contacts", "contactadded")
		if err != nil {
			t.Fatal(err)
		}
		if id, _ := found.GetInt("changeTypeID"); id != 2 {
			t.Fatal("unexpected change type", found)
		}
	})

	t.Run("a missing name is a NotFoundError", func(t *testing.T) {
		_, err := client.ChangedEntities.FindChangeType(ctx, "Contacts", "ContactVaporized")
		var notFound *NotFoundError
		if !errors.As(err, &notFound) {
			t.Fatal("unexpected error", err)
		}
	})

	t.Run("the field index is keyed by name", func(t *testing.T) {
		byName, err := client.ChangedEntities.NameToField(ctx, "Contacts")
		if err != nil {
			t.Fatal(err)
		}
		if len(byName) != 3 || byName["IsDeceased"] == nil {
			t.Fatal("unexpected index", byName)
		}
	})
}

func TestChanges(t *testing.T) {
	args := Args{"resourceType": "Contacts", "dateChangedFrom": "2026-08-01T00:00:00Z"}

	t.Run("runs the export end to end", func(t *testing.T) {
		fake := &testingx.FakeChangedEntities{
			Fields: contactsFieldCatalog,
			CSVFiles: []string{
				"VanID,FirstName,IsDeceased,Junk\n12,Alice,true,x\n15,Bob,false,y\n",
			},
		}
		client := newTestClient(t, fake)
		rows, err := client.ChangedEntities.Changes(context.Background(), args)
		if err != nil {
			t.Fatal(err)
		}
		expect := []Args{
			{"VanID": 12, "FirstName": "Alice", "IsDeceased": true},
			{"VanID": 15, "FirstName": "Bob", "IsDeceased": false},
		}
		if diff := cmp.Diff(expect, rows); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("concatenates files and skips repeated headers", func(t *testing.T) {
		fake := &testingx.FakeChangedEntities{
			Fields: contactsFieldCatalog,
			CSVFiles: []string{
				"VanID,FirstName,IsDeceased\n12,Alice,true\n",
				"VanID,FirstName,IsDeceased\n15,Bob,false\n",
			},
		}
		client := newTestClient(t, fake)
		rows, err := client.ChangedEntities.Changes(context.Background(), args)
		if err != nil {
			t.Fatal(err)
		}
		if len(rows) != 2 {
			t.Fatal("unexpected row count", len(rows))
		}
	})

	t.Run("empty cells parse to nil", func(t *testing.T) {
		fake := &testingx.FakeChangedEntities{
			Fields:   contactsFieldCatalog,
			CSVFiles: []string{"VanID,FirstName,IsDeceased\n12,,true\n"},
		}
		client := newTestClient(t, fake)
		rows, err := client.ChangedEntities.Changes(context.Background(), args)
		if err != nil {
			t.Fatal(err)
		}
		if len(rows) != 1 || rows[0]["FirstName"] != nil {
			t.Fatal("unexpected rows", rows)
		}
	})

	t.Run("a field cache skips the catalog fetch", func(t *testing.T) {
		// the fake serves no field catalog, so reaching for it would fail
		fake := &testingx.FakeChangedEntities{
			CSVFiles: []string{"VanID,FirstName\n12,Alice\n"},
		}
		client := newTestClient(t, fake)
		rows, err := client.ChangedEntities.Changes(context.Background(), args,
			ChangedEntityField.MustNew(Args{"name": "VanID", "type": "N"}),
		)
		if err != nil {
			t.Fatal(err)
		}
		expect := []Args{{"VanID": 12}}
		if diff := cmp.Diff(expect, rows); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("a job without files yields no rows", func(t *testing.T) {
		fake := &testingx.FakeChangedEntities{Fields: contactsFieldCatalog}
		client := newTestClient(t, fake)
		rows, err := client.ChangedEntities.Changes(context.Background(), args)
		if err != nil {
			t.Fatal(err)
		}
		if rows != nil {
			t.Fatal("unexpected rows", rows)
		}
	})

	t.Run("a failed job is a JobFailedError", func(t *testing.T) {
		fake := &testingx.FakeChangedEntities{FailJobs: true}
		client := newTestClient(t, fake)
		_, err := client.ChangedEntities.Changes(context.Background(), args)
		var jobErr *JobFailedError
		if !errors.As(err, &jobErr) {
			t.Fatal("unexpected error", err)
		}
		if id, _ := jobErr.Job.GetInt("exportJobId"); id != 1 {
			t.Fatal("unexpected job", jobErr.Job)
		}
	})
}
