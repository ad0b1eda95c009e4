// Package history persists transpilation sessions to a SQLite database.
package history

import (
	"fmt"
	"strings"
	"time"

	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

const transcriptSchema = `CREATE TABLE IF NOT EXISTS transcript (
    id INTEGER PRIMARY KEY,
    timestamp DATETIME,
    source TEXT NOT NULL,
    output TEXT,
    ok INTEGER, -- value will be 1 if the line transpiled cleanly
    error TEXT
	);`

const entrySaveSchema = `INSERT INTO transcript (
	timestamp,
	source,
	output,
	ok,
	error) VALUES (?, ?, ?, ?, ?);`

// Entry is one transpiled line of a session.
type Entry struct {
	When   time.Time
	Source string
	Output string
	Err    string
}

// Ok reports whether the line transpiled without error.
func (e Entry) Ok() bool {
	return e.Err == ""
}

// Log is a SQLite-backed session transcript.
type Log struct {
	conn *sqlite.Conn
	path string
}

// Open creates or opens the transcript database at path, appending a ".db"
// extension when missing, and ensures the transcript table exists.
func Open(path string) (*Log, error) {
	filename := addDBExtension(path)

	conn, err := sqlite.OpenConn(filename, sqlite.OpenCreate, sqlite.OpenReadWrite)
	if err != nil {
		return nil, fmt.Errorf("open history database %q: %w", filename, err)
	}

	if err := sqlitex.Execute(conn, transcriptSchema, &sqlitex.ExecOptions{}); err != nil {
		conn.Close()
		return nil, fmt.Errorf("create transcript table: %w", err)
	}

	return &Log{conn: conn, path: filename}, nil
}

func addDBExtension(filename string) string {
	if strings.HasSuffix(filename, ".db") {
		return filename
	}

	return filename + ".db"
}

// Path returns the database file path, including the enforced extension.
func (l *Log) Path() string {
	return l.path
}

// Record appends one entry to the transcript.
func (l *Log) Record(entry Entry) error {
	when := entry.When
	if when.IsZero() {
		when = time.Now()
	}

	ok := 0
	if entry.Ok() {
		ok = 1
	}

	err := sqlitex.Execute(l.conn, entrySaveSchema, &sqlitex.ExecOptions{
		Args: []any{
			when.Format(time.DateTime),
			entry.Source,
			entry.Output,
			ok,
			entry.Err,
		},
	})
	if err != nil {
		return fmt.Errorf("record history entry: %w", err)
	}

	return nil
}

// Entries returns the whole transcript in insertion order.
func (l *Log) Entries() ([]Entry, error) {
	var entries []Entry

	err := sqlitex.Execute(l.conn, `SELECT timestamp, source, output, error FROM transcript ORDER BY id;`, &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			when, err := time.Parse(time.DateTime, stmt.ColumnText(0))
			if err != nil {
				return fmt.Errorf("parse transcript timestamp: %w", err)
			}

			entries = append(entries, Entry{
				When:   when,
				Source: stmt.ColumnText(1),
				Output: stmt.ColumnText(2),
				Err:    stmt.ColumnText(3),
			})

			return nil
		},
	})
	if err != nil {
		return nil, fmt.Errorf("read transcript: %w", err)
	}

	return entries, nil
}

// Close closes the underlying database connection.
func (l *Log) Close() error {
	return l.conn.Close()
}
