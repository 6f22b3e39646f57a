package store

import (
	"database/sql"
	"fmt"
	"math"

	"github.com/yumiuse/lexilevel/internal/corpus"
)

// CorpusStore persists parsed corpus rows so repeated invocations skip
// the CSV parse. Row order is preserved (first-match-wins lookups
// depend on it).
type CorpusStore struct {
	db *sql.DB
}

func NewCorpusStore(db *sql.DB) *CorpusStore {
	return &CorpusStore{db: db}
}

// Replace swaps the cached rows for the given records in one
// transaction.
func (s *CorpusStore) Replace(records []corpus.Record) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM corpus`); err != nil {
		return fmt.Errorf("failed to clear corpus cache: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO corpus(lemma, cgram, genre, freq_films, freq_books)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, r := range records {
		if _, err := stmt.Exec(r.Lemma, r.CGram, r.Genre, toNull(r.FreqFilms), toNull(r.FreqBooks)); err != nil {
			return fmt.Errorf("failed to insert lemma %q: %w", r.Lemma, err)
		}
	}

	return tx.Commit()
}

// Load returns the cached rows in insert order.
func (s *CorpusStore) Load() ([]corpus.Record, error) {
	rows, err := s.db.Query(`
		SELECT lemma, cgram, genre, freq_films, freq_books
		FROM corpus
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []corpus.Record
	for rows.Next() {
		var r corpus.Record
		var films, books sql.NullFloat64
		if err := rows.Scan(&r.Lemma, &r.CGram, &r.Genre, &films, &books); err != nil {
			return nil, err
		}
		r.FreqFilms = fromNull(films)
		r.FreqBooks = fromNull(books)
		records = append(records, r)
	}
	return records, rows.Err()
}

// Count returns the number of cached rows.
func (s *CorpusStore) Count() (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM corpus`).Scan(&n)
	return n, err
}

func toNull(v float64) sql.NullFloat64 {
	if math.IsNaN(v) {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: v, Valid: true}
}

func fromNull(v sql.NullFloat64) float64 {
	if !v.Valid {
		return math.NaN()
	}
	return v.Float64
}
