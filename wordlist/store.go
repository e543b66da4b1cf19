package wordlist

import (
	"database/sql"
	"strings"

	_ "modernc.org/sqlite"
)

// Store is a sqlite-backed word list, for lexica too large to keep in flat
// text files.
type Store struct {
	db *sql.DB
}

// OpenStore opens (creating if necessary) a sqlite word store at path.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS words (word TEXT PRIMARY KEY)`)
	if err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// AddAll inserts words into the store, upper-casing them and ignoring
// duplicates.
func (s *Store) AddAll(words []string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	stmt, err := tx.Prepare(`INSERT OR IGNORE INTO words(word) VALUES(?)`)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()
	for _, w := range words {
		w = strings.ToUpper(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		if _, err := stmt.Exec(w); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

// Words returns every word in the store.
func (s *Store) Words() ([]string, error) {
	rows, err := s.db.Query(`SELECT word FROM words ORDER BY word`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var words []string
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, err
		}
		words = append(words, w)
	}
	return words, rows.Err()
}

func (s *Store) Close() error {
	return s.db.Close()
}
