package resume

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/anatolykoptev/go_resume/internal/engine"
	_ "modernc.org/sqlite"
)

// Version is a stored resume snapshot.
type Version struct {
	ID        int64  `json:"id"`
	Label     string `json:"label"`
	CreatedAt string `json:"created_at"`
}

var (
	storeDB   *sql.DB
	storeOnce sync.Once
	storeErr  error
)

// openStore opens (or creates) the SQLite version store.
func openStore() (*sql.DB, error) {
	storeOnce.Do(func() {
		dbPath := engine.Cfg.StorePath
		if dbPath == "" {
			dir := filepath.Join(os.Getenv("HOME"), ".go_resume")
			if err := os.MkdirAll(dir, 0750); err != nil {
				storeErr = fmt.Errorf("store: mkdir %s: %w", dir, err)
				return
			}
			dbPath = filepath.Join(dir, "resumes.db")
		}
		db, err := sql.Open("sqlite", dbPath)
		if err != nil {
			storeErr = fmt.Errorf("store: open db: %w", err)
			return
		}
		db.SetMaxOpenConns(1) // SQLite: single writer
		if err := initStoreSchema(db); err != nil {
			storeErr = fmt.Errorf("store: init schema: %w", err)
			return
		}
		storeDB = db
	})
	return storeDB, storeErr
}

// initStoreSchema creates the versions table if it doesn't exist.
func initStoreSchema(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS versions (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		label      TEXT NOT NULL,
		record     TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`)
	return err
}

// SaveVersion stores rec as a JSON-serialized snapshot under label.
func SaveVersion(ctx context.Context, label string, rec Record) (int64, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		label = "untitled"
	}

	db, err := openStore()
	if err != nil {
		return 0, err
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return 0, fmt.Errorf("resume_save: marshal: %w", err)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	res, err := db.ExecContext(ctx,
		`INSERT INTO versions (label, record, created_at) VALUES (?, ?, ?)`,
		label, string(data), now,
	)
	if err != nil {
		return 0, fmt.Errorf("resume_save: insert: %w", err)
	}

	engine.IncrStoreWrites()
	id, _ := res.LastInsertId()
	return id, nil
}

// ListVersions returns stored snapshots, newest first, up to limit.
func ListVersions(ctx context.Context, limit int) ([]Version, error) {
	db, err := openStore()
	if err != nil {
		return nil, err
	}
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	rows, err := db.QueryContext(ctx,
		`SELECT id, label, created_at FROM versions ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("resume_versions: query: %w", err)
	}
	defer rows.Close()

	var out []Version
	for rows.Next() {
		var v Version
		if err := rows.Scan(&v.ID, &v.Label, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("resume_versions: scan: %w", err)
		}
		out = append(out, v)
	}
	engine.IncrStoreReads()
	return out, rows.Err()
}

// LoadVersion loads the snapshot with the given id, or the most recent one
// when id is 0.
func LoadVersion(ctx context.Context, id int64) (Record, Version, error) {
	db, err := openStore()
	if err != nil {
		return Record{}, Version{}, err
	}

	var (
		v    Version
		data string
		row  *sql.Row
	)
	if id > 0 {
		row = db.QueryRowContext(ctx,
			`SELECT id, label, record, created_at FROM versions WHERE id = ?`, id)
	} else {
		row = db.QueryRowContext(ctx,
			`SELECT id, label, record, created_at FROM versions ORDER BY id DESC LIMIT 1`)
	}
	if err := row.Scan(&v.ID, &v.Label, &data, &v.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			if id > 0 {
				return Record{}, Version{}, fmt.Errorf("resume_load: version %d not found", id)
			}
			return Record{}, Version{}, errors.New("resume_load: no stored versions")
		}
		return Record{}, Version{}, fmt.Errorf("resume_load: %w", err)
	}

	// Stored snapshots go through the normalizer too: a hand-edited or
	// older-schema row degrades to defaults instead of failing.
	var loose any
	if err := json.Unmarshal([]byte(data), &loose); err != nil {
		return Record{}, Version{}, fmt.Errorf("resume_load: corrupt record %d: %w", v.ID, err)
	}
	engine.IncrStoreReads()
	return Normalize(loose, Record{}), v, nil
}
