// Package sketchbook stores named boards in a SQLite database. Boards are kept
// in the same text encoding used for board files.
package sketchbook

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"git.sr.ht/~rockorager/scrawl"
)

// ErrNotFound is returned for names which aren't in the sketchbook
var ErrNotFound = errors.New("sketchbook: board not found")

// schemaVersion is incremented when the tables change
const schemaVersion = 1

const schema = `
CREATE TABLE IF NOT EXISTS schema_version (
    version INTEGER PRIMARY KEY
);

CREATE TABLE IF NOT EXISTS boards (
    name    TEXT PRIMARY KEY,
    width   INTEGER NOT NULL,
    height  INTEGER NOT NULL,
    data    TEXT NOT NULL,
    updated INTEGER NOT NULL -- UnixNano
);
`

// Entry describes a stored board
type Entry struct {
	Name    string
	Width   int
	Height  int
	Updated time.Time
}

// Book is an open sketchbook. It is safe for concurrent use
type Book struct {
	db *sql.DB
}

// Open opens the sketchbook at path, creating it and its directory when
// needed
func Open(path string) (*Book, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create sketchbook directory: %w", err)
	}
	dsn := path +
		"?_pragma=journal_mode(WAL)" +
		"&_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sketchbook: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect to sketchbook: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create sketchbook schema: %w", err)
	}
	if err := checkSchema(db); err != nil {
		db.Close()
		return nil, err
	}
	return &Book{db: db}, nil
}

// checkSchema records the schema version of a new database, and refuses
// databases written by a newer version
func checkSchema(db *sql.DB) error {
	var version int
	err := db.QueryRow("SELECT version FROM schema_version LIMIT 1").Scan(&version)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		_, err = db.Exec("INSERT INTO schema_version (version) VALUES (?)", schemaVersion)
		if err != nil {
			return fmt.Errorf("set sketchbook schema version: %w", err)
		}
		return nil
	case err != nil:
		return fmt.Errorf("read sketchbook schema version: %w", err)
	case version > schemaVersion:
		return fmt.Errorf("sketchbook schema version %d is newer than %d", version, schemaVersion)
	}
	return nil
}

func checkName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("sketchbook: empty board name")
	}
	return nil
}

// Put stores b under name, replacing any board with the same name
func (bk *Book) Put(ctx context.Context, name string, b *scrawl.Board) error {
	if err := checkName(name); err != nil {
		return err
	}
	buf := &bytes.Buffer{}
	if err := scrawl.Encode(buf, b); err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	_, err := bk.db.ExecContext(ctx, `
		INSERT INTO boards (name, width, height, data, updated) VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			width = excluded.width,
			height = excluded.height,
			data = excluded.data,
			updated = excluded.updated`,
		name, b.Width(), b.Height(), buf.String(), time.Now().UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("put %s: %w", name, err)
	}
	return nil
}

// Get returns a new board decoded from the one stored under name
func (bk *Book) Get(ctx context.Context, name string) (*scrawl.Board, error) {
	var data string
	err := bk.db.QueryRowContext(ctx, "SELECT data FROM boards WHERE name = ?", name).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get %s: %w", name, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", name, err)
	}
	b, err := scrawl.Decode(strings.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return b, nil
}

// List returns every stored board, ordered by name
func (bk *Book) List(ctx context.Context) ([]Entry, error) {
	rows, err := bk.db.QueryContext(ctx, "SELECT name, width, height, updated FROM boards ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("list boards: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e       Entry
			updated int64
		)
		if err := rows.Scan(&e.Name, &e.Width, &e.Height, &updated); err != nil {
			return nil, fmt.Errorf("scan board: %w", err)
		}
		e.Updated = time.Unix(0, updated)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list boards: %w", err)
	}
	return entries, nil
}

// Delete removes the board stored under name
func (bk *Book) Delete(ctx context.Context, name string) error {
	res, err := bk.db.ExecContext(ctx, "DELETE FROM boards WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("delete %s: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete %s: %w", name, err)
	}
	if n == 0 {
		return fmt.Errorf("delete %s: %w", name, ErrNotFound)
	}
	return nil
}

// Close closes the database
func (bk *Book) Close() error {
	return bk.db.Close()
}
