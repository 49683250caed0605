// Package index persists a resolved symbol table to sqlite so that search
// queries do not need the manifests or a live resolution run.
package index

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/CyberFlameGO/alumina/internal/doc"
)

// Entry is one row of the symbol index.
type Entry struct {
	Path      string
	CfgIndex  int
	Kind      string
	DefinedIn string
	Doc       string
	Link      string
	Exported  bool
}

// DB wraps the sqlite connection holding the symbol index.
type DB struct {
	conn *sql.DB
}

// Open opens (creating if necessary) the index database at dbPath.
func Open(dbPath string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}

	dsn := "file:" + dbPath + "?_txlock=immediate&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening index database: %w", err)
	}

	d := &DB{conn: conn}
	if err := d.initSchema(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("initializing index schema: %w", err)
	}
	return d, nil
}

func (d *DB) Close() error {
	return d.conn.Close()
}

func (d *DB) initSchema() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS symbols (
			path TEXT NOT NULL,
			cfg_index INTEGER NOT NULL DEFAULT 0,
			kind TEXT NOT NULL,
			defined_in TEXT NOT NULL,
			doc TEXT NOT NULL DEFAULT '',
			link TEXT NOT NULL DEFAULT '',
			exported INTEGER NOT NULL DEFAULT 1,
			PRIMARY KEY (path, cfg_index)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_symbols_name ON symbols (kind, path)`,
	}
	for _, q := range queries {
		if _, err := d.conn.Exec(q); err != nil {
			return err
		}
	}
	return nil
}

// ReplaceAll rebuilds the index from a resolved bag inside one transaction.
// Only kinds that participate in search are written.
func (d *DB) ReplaceAll(bag *doc.Bag, links *doc.LinkContext) error {
	tx, err := d.conn.Begin()
	if err != nil {
		return fmt.Errorf("beginning index rebuild: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM symbols`); err != nil {
		return fmt.Errorf("clearing symbol index: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT OR REPLACE INTO symbols
		(path, cfg_index, kind, defined_in, doc, link, exported)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing symbol insert: %w", err)
	}
	defer stmt.Close()

	for _, it := range bag.All() {
		if !it.Kind.Indexed() {
			continue
		}
		_, err := stmt.Exec(
			it.Path.String(),
			it.CfgIndex,
			it.Kind.String(),
			it.DefinedIn.String(),
			it.Doc,
			links.LinkForItem(it, false, false),
			it.IsExported(),
		)
		if err != nil {
			return fmt.Errorf("inserting %s: %w", it.Path.String(), err)
		}
	}

	return tx.Commit()
}

// Search returns up to limit entries whose path contains q, exported
// entries first, shorter paths before longer ones.
func (d *DB) Search(q string, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := d.conn.Query(`
		SELECT path, cfg_index, kind, defined_in, doc, link, exported
		FROM symbols
		WHERE path LIKE '%' || ? || '%'
		ORDER BY exported DESC, length(path), path
		LIMIT ?`, q, limit)
	if err != nil {
		return nil, fmt.Errorf("querying symbol index: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Path, &e.CfgIndex, &e.Kind, &e.DefinedIn, &e.Doc, &e.Link, &e.Exported); err != nil {
			return nil, fmt.Errorf("scanning symbol row: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Count reports the number of indexed symbols.
func (d *DB) Count() (int, error) {
	var n int
	err := d.conn.QueryRow(`SELECT COUNT(*) FROM symbols`).Scan(&n)
	return n, err
}
