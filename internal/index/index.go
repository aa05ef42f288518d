package index

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/kondziu/fonologia/internal/catalog"
	"github.com/kondziu/fonologia/internal/phoneme"
)

//go:embed schema.sql
var schemaSQL string

// Index is an in-memory SQLite index over the vowel catalog.
type Index struct {
	db *sql.DB
}

// Open builds a fresh in-memory index and loads every catalog vowel into
// it in a single transaction. Callers must Close the index when done.
func Open() (*Index, error) {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// In-memory databases vanish when their last connection closes, so pin
	// the pool to a single connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	if err := load(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	return &Index{db: db}, nil
}

// Close releases the database. The in-memory table is discarded.
func (ix *Index) Close() error {
	if ix.db == nil {
		return nil
	}
	return ix.db.Close()
}

// load inserts the full catalog in one transaction.
func load(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO vowels (symbol, height, backness, rounding, height_ord, backness_ord, rounding_ord)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, v := range catalog.All() {
		_, err := stmt.Exec(
			v.Symbol(),
			string(v.Height()),
			string(v.Backness()),
			string(v.Rounding()),
			v.Height().Ord(),
			v.Backness().Ord(),
			v.Rounding().Ord(),
		)
		if err != nil {
			return fmt.Errorf("insert %q: %w", v.Symbol(), err)
		}
	}

	return tx.Commit()
}

// Filter constrains a Query call. Nil fields match everything.
type Filter struct {
	Height   *phoneme.Height
	Backness *phoneme.Backness
	Rounding *phoneme.Rounding
}

// Query returns the vowels matching every non-nil constraint in f, ordered
// by height, backness, then symbol. Returns an empty slice (not nil) when
// nothing matches. Constraint values outside their closed sets are
// rejected before touching the database.
func (ix *Index) Query(ctx context.Context, f Filter) ([]phoneme.Vowel, error) {
	query := `
		SELECT symbol, height, backness, rounding
		FROM vowels
		WHERE 1=1
	`
	var args []any

	if f.Height != nil {
		if !f.Height.Valid() {
			return nil, fmt.Errorf("invalid height %q", string(*f.Height))
		}
		query += " AND height = ?"
		args = append(args, string(*f.Height))
	}
	if f.Backness != nil {
		if !f.Backness.Valid() {
			return nil, fmt.Errorf("invalid backness %q", string(*f.Backness))
		}
		query += " AND backness = ?"
		args = append(args, string(*f.Backness))
	}
	if f.Rounding != nil {
		if !f.Rounding.Valid() {
			return nil, fmt.Errorf("invalid rounding %q", string(*f.Rounding))
		}
		query += " AND rounding = ?"
		args = append(args, string(*f.Rounding))
	}

	query += " ORDER BY height_ord ASC, backness_ord ASC, symbol ASC"

	rows, err := ix.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query vowels: %w", err)
	}
	defer rows.Close()

	var vowels []phoneme.Vowel
	for rows.Next() {
		v, err := scanVowel(rows)
		if err != nil {
			return nil, err
		}
		vowels = append(vowels, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate vowels: %w", err)
	}

	// Return empty slice instead of nil
	if vowels == nil {
		vowels = []phoneme.Vowel{}
	}
	return vowels, nil
}

// Count returns the number of indexed vowels.
func (ix *Index) Count(ctx context.Context) (int, error) {
	var n int
	if err := ix.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM vowels").Scan(&n); err != nil {
		return 0, fmt.Errorf("count vowels: %w", err)
	}
	return n, nil
}

// scanVowel rebuilds a validated Vowel from an index row.
func scanVowel(rows *sql.Rows) (phoneme.Vowel, error) {
	var symbol, height, backness, rounding string
	if err := rows.Scan(&symbol, &height, &backness, &rounding); err != nil {
		return phoneme.Vowel{}, fmt.Errorf("scan vowel: %w", err)
	}
	v, err := phoneme.NewVowel(symbol, phoneme.Height(height), phoneme.Backness(backness), phoneme.Rounding(rounding))
	if err != nil {
		return phoneme.Vowel{}, fmt.Errorf("row %q: %w", symbol, err)
	}
	return v, nil
}
