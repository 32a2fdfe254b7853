// Package vandb is the local sqlite database where vancli stores the
// rows produced by changed-entity export jobs, so that repeated syncs
// can be inspected and diffed offline.
package vandb

import (
	"database/sql"

	"github.com/apex/log"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
	migrate "github.com/rubenv/sql-migrate"
	"github.com/upper/db/v4"
	"github.com/upper/db/v4/adapter/sqlite"
)

// migrations is the migration source. New schema changes append a
// migration here; existing entries never change.
var migrations = &migrate.MemoryMigrationSource{
	Migrations: []*migrate.Migration{{
		Id: "1-initial",
		Up: []string{
			`CREATE TABLE sync_runs (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				resource TEXT NOT NULL,
				start_time DATETIME NOT NULL,
				runtime REAL NOT NULL DEFAULT 0,
				row_count INTEGER NOT NULL DEFAULT 0,
				done INTEGER NOT NULL DEFAULT 0
			)`,
			`CREATE TABLE changes (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				sync_run_id INTEGER NOT NULL,
				resource TEXT NOT NULL,
				entity_id INTEGER NOT NULL,
				change_type TEXT NOT NULL,
				date_changed TEXT NOT NULL,
				fields TEXT NOT NULL,
				FOREIGN KEY(sync_run_id) REFERENCES sync_runs(id)
			)`,
			`CREATE INDEX idx_changes_entity ON changes(resource, entity_id)`,
		},
		Down: []string{
			`DROP INDEX idx_changes_entity`,
			`DROP TABLE changes`,
			`DROP TABLE sync_runs`,
		},
	}},
}

// RunMigrations brings the database schema up to date.
func RunMigrations(sess db.Session) error {
	n, err := migrate.Exec(sess.Driver().(*sql.DB), "sqlite3", migrations, migrate.Up)
	if err != nil {
		return errors.Wrap(err, "running migrations")
	}
	log.Debugf("performed %d migrations", n)
	return nil
}

// Connect opens the database at the given path, creating it and
// migrating its schema as needed.
func Connect(path string) (db.Session, error) {
	settings := sqlite.ConnectionURL{
		Database: path,
	}
	sess, err := sqlite.Open(settings)
	if err != nil {
		return nil, errors.Wrap(err, "opening database")
	}
	if err := RunMigrations(sess); err != nil {
		sess.Close()
		return nil, err
	}
	return sess, nil
}
