package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/tursodatabase/go-libsql"
)

// OpenDB opens the corpus cache database. An empty path falls back to
// the default location under the user cache dir.
func OpenDB(path string) (*sql.DB, error) {
	if path == "" {
		cacheDir, err := os.UserCacheDir()
		if err != nil {
			return nil, fmt.Errorf("store: resolve user cache dir: %w", err)
		}
		path = filepath.Join(cacheDir, "lexilevel", "lexilevel.db")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("store: create cache dir: %w", err)
	}

	db, err := sql.Open("libsql", path)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}
	return db, nil
}
