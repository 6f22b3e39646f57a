package store

import (
	"database/sql"
	"fmt"
	"os"
)

// MetaStore tracks which source files the cache was built from, keyed
// by a hash of the source path. A cache entry is stale once the file's
// mtime moves past the recorded one.
type MetaStore struct {
	db *sql.DB
}

func NewMetaStore(db *sql.DB) *MetaStore {
	return &MetaStore{db: db}
}

// Touch records the current mtime of filePath under key.
func (m *MetaStore) Touch(key string, filePath string) error {
	info, err := os.Stat(filePath)
	if err != nil {
		return fmt.Errorf("stat error for %s: %w", filePath, err)
	}

	_, err = m.db.Exec(`
		INSERT OR REPLACE INTO meta (key, path, mtime)
		VALUES (?, ?, ?)
	`, key, filePath, info.ModTime().Unix())
	if err != nil {
		return fmt.Errorf("failed to update meta: %w", err)
	}

	return nil
}

// Stale reports whether the cache built from filePath must be rebuilt.
// Unknown keys and unreadable files both count as stale; the caller
// falls back to parsing the source directly.
func (m *MetaStore) Stale(key string, filePath string) bool {
	info, err := os.Stat(filePath)
	if err != nil {
		return true
	}

	var storedMtime int64
	err = m.db.QueryRow(`SELECT mtime FROM meta WHERE key = ?`, key).Scan(&storedMtime)
	if err != nil {
		return true
	}

	return info.ModTime().Unix() > storedMtime
}
