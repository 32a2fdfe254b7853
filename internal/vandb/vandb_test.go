package vandb

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/everyaction/everyaction-go"
)

func TestSyncRunLifecycle(t *testing.T) {
	sess, err := Connect(filepath.Join(t.TempDir(), "vancli.sqlite3"))
	if err != nil {
		t.Fatal(err)
	}
	defer sess.Close()
	run, err := CreateSyncRun(sess, "Contacts")
	if err != nil {
		t.Fatal(err)
	}
	if run.ID <= 0 {
		t.Fatalf("expected a positive run ID, got %d", run.ID)
	}
	rows := []everyaction.Args{{
		"VanID":          101.0,
		"ChangeTypeName": "CreatedContact",
		"DateChanged":    "2024-05-01T10:00:00Z",
		"FirstName":      "Alice",
	}, {
		"VanID":        102.0,
		"ChangeTypeID": 2.0,
		"DateChanged":  "2024-05-01T11:30:00Z",
		"FirstName":    "Bob",
	}}
	count, err := InsertChanges(sess, run, "VanID", rows)
	if err != nil {
		t.Fatal(err)
	}
	if count != 2 {
		t.Fatalf("expected 2 inserted rows, got %d", count)
	}
	if err := FinishSyncRun(sess, run, count); err != nil {
		t.Fatal(err)
	}
	runs, err := ListSyncRuns(sess)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected a single sync run, got %d", len(runs))
	}
	if !runs[0].Done || runs[0].RowCount != 2 {
		t.Fatalf("unexpected sync run state: %+v", runs[0])
	}
	changes, err := ListChanges(sess, run.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(changes) != 2 {
		t.Fatalf("expected 2 changes, got %d", len(changes))
	}
	if changes[0].EntityID != 101 || changes[0].ChangeType != "CreatedContact" {
		t.Fatalf("unexpected first change: %+v", changes[0])
	}
	if changes[1].EntityID != 102 || changes[1].ChangeType != "2" {
		t.Fatalf("unexpected second change: %+v", changes[1])
	}
	var fields map[string]any
	if err := json.Unmarshal([]byte(changes[0].Fields), &fields); err != nil {
		t.Fatal(err)
	}
	if fields["FirstName"] != "Alice" {
		t.Fatalf("unexpected fields payload: %s", changes[0].Fields)
	}
	n, err := CountChanges(sess, "Contacts")
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Fatalf("expected 2 contact changes, got %d", n)
	}
	n, err = CountChanges(sess, "Activities")
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Fatalf("expected no activity changes, got %d", n)
	}
}

func TestConnectFailure(t *testing.T) {
	sess, err := Connect(filepath.Join(t.TempDir(), "missing", "vancli.sqlite3"))
	if err == nil {
		sess.Close()
		t.Fatal("expected an error")
	}
}
