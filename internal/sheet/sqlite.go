package sheet

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Simplici0/studio/internal/db"
	"github.com/Simplici0/studio/internal/migrations"
)

// SQLiteRecorder keeps submissions in a local SQLite ledger. It is the
// development stand-in for the shared spreadsheet.
type SQLiteRecorder struct {
	db *sql.DB
}

// OpenSQLiteRecorder opens the ledger at path and applies migrations.
func OpenSQLiteRecorder(ctx context.Context, path string) (*SQLiteRecorder, error) {
	database, err := db.Open(ctx, path)
	if err != nil {
		return nil, err
	}
	if err := migrations.Up(database); err != nil {
		database.Close()
		return nil, err
	}
	return &SQLiteRecorder{db: database}, nil
}

func (s *SQLiteRecorder) Append(ctx context.Context, row Row) error {
	values, err := json.Marshal(row.Values)
	if err != nil {
		return fmt.Errorf("sqlite ledger: encode row: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO intake_submissions (id, submitted_at, name, company, email, site_type, total, row_json)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, row.ID, row.SubmittedAt.UTC().Format(time.RFC3339), row.Name, row.Company, row.Email, row.SiteType, row.Total, string(values))
	if err != nil {
		return fmt.Errorf("sqlite ledger: insert %s: %w", row.ID, err)
	}
	return nil
}

// Has reports whether a submission with id is already stored.
func (s *SQLiteRecorder) Has(ctx context.Context, id string) (bool, error) {
	var exists bool
	if err := s.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM intake_submissions WHERE id = ? LIMIT 1)`, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("sqlite ledger: lookup %s: %w", id, err)
	}
	return exists, nil
}

// Recent returns up to limit rows, newest first.
func (s *SQLiteRecorder) Recent(ctx context.Context, limit int) ([]Row, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, submitted_at, name, company, email, site_type, total, row_json
		FROM intake_submissions
		ORDER BY submitted_at DESC, rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("sqlite ledger: query: %w", err)
	}
	defer rows.Close()

	var out []Row
	for rows.Next() {
		var (
			r         Row
			submitted string
			values    string
		)
		if err := rows.Scan(&r.ID, &submitted, &r.Name, &r.Company, &r.Email, &r.SiteType, &r.Total, &values); err != nil {
			return nil, fmt.Errorf("sqlite ledger: scan: %w", err)
		}
		if r.SubmittedAt, err = time.Parse(time.RFC3339, submitted); err != nil {
			return nil, fmt.Errorf("sqlite ledger: parse time: %w", err)
		}
		if err := json.Unmarshal([]byte(values), &r.Values); err != nil {
			return nil, fmt.Errorf("sqlite ledger: decode row: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *SQLiteRecorder) Close() error {
	return s.db.Close()
}
