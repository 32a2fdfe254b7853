package vandb

import "time"

// SyncRun is one execution of the changes sync: one export job for
// one resource, with the rows it produced.
type SyncRun struct {
	ID        int64     `db:"id,omitempty"`
	Resource  string    `db:"resource"`
	StartTime time.Time `db:"start_time"`
	Runtime   float64   `db:"runtime"` // Fractional number of seconds
	RowCount  int64     `db:"row_count"`
	Done      bool      `db:"done"`
}

// Change is one changed-entity row. The identifying columns are
// broken out for querying; Fields keeps the full row as JSON.
type Change struct {
	ID          int64  `db:"id,omitempty"`
	SyncRunID   int64  `db:"sync_run_id"`
	Resource    string `db:"resource"`
	EntityID    int64  `db:"entity_id"`
	ChangeType  string `db:"change_type"`
	DateChanged string `db:"date_changed"`
	Fields      string `db:"fields"`
}
