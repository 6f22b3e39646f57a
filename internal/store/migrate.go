package store

import (
	"database/sql"
	"fmt"

	_ "github.com/tursodatabase/go-libsql"
)

func Migrate(db *sql.DB) error {
	schema := []string{
		// corpus: parsed rows of the reference corpus. NULL frequency
		// means the measure was absent in the source file.
		`CREATE TABLE IF NOT EXISTS corpus (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			lemma       TEXT NOT NULL,
			cgram       TEXT NOT NULL DEFAULT '',
			genre       TEXT NOT NULL DEFAULT '',
			freq_films  REAL,
			freq_books  REAL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_corpus_lemma ON corpus(lemma);`,
		// meta: staleness tracking for cached source files
		`CREATE TABLE IF NOT EXISTS meta (
			key   TEXT PRIMARY KEY,
			path  TEXT NOT NULL,
			mtime INTEGER NOT NULL
		);`,
	}

	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to run migration statement: %w", err)
		}
	}

	return nil
}
