package ledger

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/vk/unitgrid/internal/model"
	"github.com/vk/unitgrid/internal/urn"
)

//go:embed schema.sql
var schemaSQL string

// SQLite persists receipts in a SQLite database.
type SQLite struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the ledger database and applies the schema.
func Open(ctx context.Context, path string) (*SQLite, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("ensure ledger directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// A single connection keeps the pragmas in effect for every write.
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.ExecContext(ctx, pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply ledger schema: %w", err)
	}
	return &SQLite{db: db, path: path}, nil
}

// Close closes the underlying database connection.
func (s *SQLite) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *SQLite) Path() string {
	return s.path
}

// Append implements model.Ledger.
func (s *SQLite) Append(ctx context.Context, receipt model.Receipt) error {
	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO receipts (id, created_at, payer, payee, details, points, label)
        VALUES (?, ?, ?, ?, ?, ?, ?)`,
		receipt.ID(),
		receipt.Time().UTC().Format(time.RFC3339Nano),
		receipt.Payer().String(),
		receipt.Payee().String(),
		receipt.Details(),
		receipt.Amount().Points(),
		receipt.Label(),
	)
	if err != nil {
		return fmt.Errorf("insert receipt: %w", err)
	}
	return nil
}

// List returns all receipts in insertion order.
func (s *SQLite) List(ctx context.Context) ([]model.Receipt, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, created_at, payer, payee, details, points, label FROM receipts ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("query receipts: %w", err)
	}
	defer rows.Close()

	var receipts []model.Receipt
	for rows.Next() {
		var (
			id, created, payer, payee, details, label string
			points                                    int64
		)
		if err := rows.Scan(&id, &created, &payer, &payee, &details, &points, &label); err != nil {
			return nil, fmt.Errorf("scan receipt: %w", err)
		}
		at, err := time.Parse(time.RFC3339Nano, created)
		if err != nil {
			return nil, fmt.Errorf("parse receipt time %q: %w", created, err)
		}
		receipts = append(receipts, model.RestoreReceipt(
			id, at, urn.URN(payer), urn.URN(payee), details, model.NewDollars(points), label,
		))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate receipts: %w", err)
	}
	return receipts, nil
}

// Balance returns what id received minus what it paid.
func (s *SQLite) Balance(ctx context.Context, id urn.URN) (model.Dollars, error) {
	var points int64
	err := s.db.QueryRowContext(ctx,
		`SELECT
            COALESCE((SELECT SUM(points) FROM receipts WHERE payee = ?), 0) -
            COALESCE((SELECT SUM(points) FROM receipts WHERE payer = ?), 0)`,
		id.String(), id.String(),
	).Scan(&points)
	if err != nil {
		return model.Dollars{}, fmt.Errorf("query balance: %w", err)
	}
	return model.NewDollars(points), nil
}
