package vandb

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/everyaction/everyaction-go"
	"github.com/pkg/errors"
	"github.com/upper/db/v4"
)

// CreateSyncRun records the start of a sync for the given resource
// and returns a pointer to the SyncRun.
func CreateSyncRun(sess db.Session, resource string) (*SyncRun, error) {
	run := SyncRun{
		Resource:  resource,
		StartTime: time.Now().UTC(),
	}
	res, err := sess.Collection("sync_runs").Insert(run)
	if err != nil {
		return nil, errors.Wrap(err, "creating sync run")
	}
	run.ID = res.ID().(int64)
	return &run, nil
}

// InsertChanges stores the rows produced by one export job under the
// given sync run. The entityKey names the column carrying the entity
// identifier, e.g. "VanID" for the Contacts resource.
func InsertChanges(sess db.Session, run *SyncRun, entityKey string, rows []everyaction.Args) (int, error) {
	count := 0
	for _, row := range rows {
		fields, err := json.Marshal(row)
		if err != nil {
			return count, errors.Wrap(err, "encoding row")
		}
		change := Change{
			SyncRunID:   run.ID,
			Resource:    run.Resource,
			EntityID:    intField(row, entityKey),
			ChangeType:  changeType(row),
			DateChanged: stringField(row, "DateChanged"),
			Fields:      string(fields),
		}
		if _, err := sess.Collection("changes").Insert(change); err != nil {
			return count, errors.Wrap(err, "inserting change")
		}
		count++
	}
	return count, nil
}

// FinishSyncRun marks a sync run as done and sets the runtime and
// row count.
func FinishSyncRun(sess db.Session, run *SyncRun, rowCount int) error {
	run.Runtime = time.Now().UTC().Sub(run.StartTime).Seconds()
	run.RowCount = int64(rowCount)
	run.Done = true
	err := sess.Collection("sync_runs").Find(db.Cond{"id": run.ID}).Update(run)
	return errors.Wrap(err, "updating sync run")
}

// ListSyncRuns returns the recorded sync runs, oldest first.
func ListSyncRuns(sess db.Session) ([]SyncRun, error) {
	runs := []SyncRun{}
	if err := sess.Collection("sync_runs").Find().OrderBy("start_time").All(&runs); err != nil {
		return nil, errors.Wrap(err, "listing sync runs")
	}
	return runs, nil
}

// ListChanges returns the changes recorded by the given sync run, in
// insertion order.
func ListChanges(sess db.Session, runID int64) ([]Change, error) {
	changes := []Change{}
	if err := sess.Collection("changes").Find(db.Cond{"sync_run_id": runID}).OrderBy("id").All(&changes); err != nil {
		return nil, errors.Wrap(err, "listing changes")
	}
	return changes, nil
}

// CountChanges returns how many changes are recorded for a resource
// across all sync runs.
func CountChanges(sess db.Session, resource string) (uint64, error) {
	n, err := sess.Collection("changes").Find(db.Cond{"resource": resource}).Count()
	if err != nil {
		return 0, errors.Wrap(err, "counting changes")
	}
	return n, nil
}

// changeType extracts the change type of a row, preferring the name
// over the numeric ID.
func changeType(row map[string]any) string {
	if name := stringField(row, "ChangeTypeName"); name != "" {
		return name
	}
	if id := intField(row, "ChangeTypeID"); id != 0 {
		return strconv.FormatInt(id, 10)
	}
	return ""
}

// intField extracts an integer column from a parsed row.
func intField(row map[string]any, key string) int64 {
	switch v := row[key].(type) {
	case int:
		return int64(v)
	case int64:
		return v
	case float64:
		return int64(v)
	}
	return 0
}

// stringField extracts a textual column from a parsed row.
func stringField(row map[string]any, key string) string {
	switch v := row[key].(type) {
	case nil:
		return ""
	case string:
		return v
	case time.Time:
		return v.UTC().Format(time.RFC3339)
	default:
		return fmt.Sprint(v)
	}
}
