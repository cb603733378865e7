package sqlitedb

import (
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
)

const schema = `
CREATE TABLE IF NOT EXISTS message (
	id         TEXT PRIMARY KEY,
	user       TEXT NOT NULL,
	text       TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS assignment (
	id          TEXT PRIMARY KEY,
	title       TEXT NOT NULL,
	subject     TEXT NOT NULL,
	deadline    TEXT NOT NULL,
	description TEXT NOT NULL,
	posted_by   TEXT NOT NULL,
	posted_at   TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS note (
	id          TEXT PRIMARY KEY,
	title       TEXT NOT NULL,
	subject     TEXT NOT NULL,
	description TEXT NOT NULL,
	uploaded_by TEXT NOT NULL,
	uploaded_at TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS announcement (
	id        TEXT PRIMARY KEY,
	title     TEXT NOT NULL,
	content   TEXT NOT NULL,
	posted_by TEXT NOT NULL,
	posted_at TIMESTAMP NOT NULL
);
`

// Open opens (creating if needed) the sqlite database at path and
// bootstraps the schema.
func Open(path string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("sqlite3", path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening sqlite database at %s", path)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "bootstrapping schema")
	}
	return db, nil
}
