// Package store keeps named resume documents in a local SQLite database.
// Documents are stored as their YAML source, the database is a library
// catalog, not a structured mirror of the model.
package store

import (
	"fmt"
	"sort"
	"time"

	"github.com/maruel/natural"
	yaml "gopkg.in/yaml.v3"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"

	"resumec/resume"
)

const schema = `CREATE TABLE IF NOT EXISTS resumes (
	name       TEXT PRIMARY KEY,
	updated_at TEXT NOT NULL,
	body       BLOB NOT NULL
);`

// Entry describes a stored document in a listing.
type Entry struct {
	Name      string
	UpdatedAt time.Time
}

type Store struct {
	conn *sqlite.Conn
}

// Open opens or creates the database at path.
func Open(path string) (*Store, error) {
	conn, err := sqlite.OpenConn(path, sqlite.OpenReadWrite, sqlite.OpenCreate)
	if err != nil {
		return nil, fmt.Errorf("unable to open resume store: %w", err)
	}
	if err := sqlitex.ExecuteTransient(conn, schema, nil); err != nil {
		conn.Close()
		return nil, fmt.Errorf("unable to initialize resume store: %w", err)
	}
	return &Store{conn: conn}, nil
}

func (s *Store) Close() error {
	return s.conn.Close()
}

// Save stores document under name, replacing any previous revision.
func (s *Store) Save(name string, doc *resume.Document) error {
	if name == "" {
		return fmt.Errorf("empty resume name")
	}
	body, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("unable to marshal resume document: %w", err)
	}
	err = sqlitex.Execute(s.conn,
		`INSERT INTO resumes (name, updated_at, body) VALUES (?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET updated_at=excluded.updated_at, body=excluded.body`,
		&sqlitex.ExecOptions{
			Args: []any{name, time.Now().UTC().Format(time.RFC3339), body},
		})
	if err != nil {
		return fmt.Errorf("unable to store resume %q: %w", name, err)
	}
	return nil
}

// Load retrieves the document stored under name.
func (s *Store) Load(name string) (*resume.Document, error) {
	var body []byte
	err := sqlitex.Execute(s.conn, `SELECT body FROM resumes WHERE name = ?`,
		&sqlitex.ExecOptions{
			Args: []any{name},
			ResultFunc: func(stmt *sqlite.Stmt) error {
				body = make([]byte, stmt.ColumnLen(0))
				stmt.ColumnBytes(0, body)
				return nil
			},
		})
	if err != nil {
		return nil, fmt.Errorf("unable to read resume %q: %w", name, err)
	}
	if body == nil {
		return nil, fmt.Errorf("resume %q not found", name)
	}
	doc, err := resume.Parse(body)
	if err != nil {
		return nil, fmt.Errorf("unable to parse stored resume %q: %w", name, err)
	}
	return doc, nil
}

// Delete removes the document stored under name. Deleting a missing name is
// not an error.
func (s *Store) Delete(name string) error {
	err := sqlitex.Execute(s.conn, `DELETE FROM resumes WHERE name = ?`,
		&sqlitex.ExecOptions{Args: []any{name}})
	if err != nil {
		return fmt.Errorf("unable to delete resume %q: %w", name, err)
	}
	return nil
}

// List returns all stored documents in natural name order, so "resume-2"
// sorts before "resume-10".
func (s *Store) List() ([]Entry, error) {
	var entries []Entry
	err := sqlitex.Execute(s.conn, `SELECT name, updated_at FROM resumes`,
		&sqlitex.ExecOptions{
			ResultFunc: func(stmt *sqlite.Stmt) error {
				e := Entry{Name: stmt.ColumnText(0)}
				if t, err := time.Parse(time.RFC3339, stmt.ColumnText(1)); err == nil {
					e.UpdatedAt = t
				}
				entries = append(entries, e)
				return nil
			},
		})
	if err != nil {
		return nil, fmt.Errorf("unable to list resumes: %w", err)
	}
	sort.Slice(entries, func(i, j int) bool {
		return natural.Less(entries[i].Name, entries[j].Name)
	})
	return entries, nil
}
