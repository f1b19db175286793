// Package sqlite provides a SQLite-backed implementation of the storage.Store interface.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/mmynk/evensplit/internal/models"
	"github.com/mmynk/evensplit/internal/storage"
)

// Ensure SQLiteStore implements storage.Store
var _ storage.Store = (*SQLiteStore)(nil)

// SQLiteStore implements storage.Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// New creates a new SQLiteStore with the given database path.
// It creates the parent directories and runs migrations automatically.
func New(dbPath string) (*SQLiteStore, error) {
	// Create parent directory if it doesn't exist
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	if err := runMigrations(dbPath); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	// Open database with pure Go driver; foreign keys are enabled per
	// connection through the DSN.
	db, err := sql.Open("sqlite", dbPath+"?_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// A single connection serializes writers, which is what Update promises.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Snapshot loads all participants and expenses in insertion order.
func (s *SQLiteStore) Snapshot(ctx context.Context) (models.State, error) {
	return loadState(ctx, s.db)
}

// Update loads the state, applies fn and writes back the difference, all
// within one transaction.
func (s *SQLiteStore) Update(ctx context.Context, fn storage.UpdateFunc) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	current, err := loadState(ctx, tx)
	if err != nil {
		return err
	}

	next, err := fn(current.Clone())
	if err != nil {
		return err
	}

	if err := applyParticipants(ctx, tx, current.Participants, next.Participants); err != nil {
		return err
	}
	if err := applyExpenses(ctx, tx, current.Expenses, next.Expenses); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func loadState(ctx context.Context, q querier) (models.State, error) {
	state := models.NewState()

	// Get participants
	rows, err := q.QueryContext(ctx, "SELECT id, name FROM participants ORDER BY rowid")
	if err != nil {
		return models.State{}, fmt.Errorf("failed to get participants: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var p models.Participant
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			return models.State{}, fmt.Errorf("failed to scan participant: %w", err)
		}
		state.Participants = append(state.Participants, p)
	}
	if err := rows.Err(); err != nil {
		return models.State{}, fmt.Errorf("failed to iterate participants: %w", err)
	}

	// Get beneficiaries for every expense in one pass
	beneficiaries := make(map[string][]string)
	benRows, err := q.QueryContext(ctx,
		"SELECT expense_id, participant_id FROM expense_beneficiaries ORDER BY expense_id, position",
	)
	if err != nil {
		return models.State{}, fmt.Errorf("failed to get beneficiaries: %w", err)
	}
	defer benRows.Close()

	for benRows.Next() {
		var expenseID, participantID string
		if err := benRows.Scan(&expenseID, &participantID); err != nil {
			return models.State{}, fmt.Errorf("failed to scan beneficiary: %w", err)
		}
		beneficiaries[expenseID] = append(beneficiaries[expenseID], participantID)
	}
	if err := benRows.Err(); err != nil {
		return models.State{}, fmt.Errorf("failed to iterate beneficiaries: %w", err)
	}

	// Get expenses
	expRows, err := q.QueryContext(ctx,
		"SELECT id, description, amount, paid_by, created_at FROM expenses ORDER BY rowid",
	)
	if err != nil {
		return models.State{}, fmt.Errorf("failed to get expenses: %w", err)
	}
	defer expRows.Close()

	for expRows.Next() {
		var e models.Expense
		if err := expRows.Scan(&e.ID, &e.Description, &e.Amount, &e.PaidBy, &e.CreatedAt); err != nil {
			return models.State{}, fmt.Errorf("failed to scan expense: %w", err)
		}
		e.Participants = beneficiaries[e.ID]
		if e.Participants == nil {
			e.Participants = []string{}
		}
		state.Expenses = append(state.Expenses, e)
	}
	if err := expRows.Err(); err != nil {
		return models.State{}, fmt.Errorf("failed to iterate expenses: %w", err)
	}

	return state, nil
}

func applyParticipants(ctx context.Context, tx *sql.Tx, before, after []models.Participant) error {
	old := make(map[string]models.Participant, len(before))
	for _, p := range before {
		old[p.ID] = p
	}
	keep := make(map[string]bool, len(after))
	for _, p := range after {
		keep[p.ID] = true
	}

	for _, p := range before {
		if keep[p.ID] {
			continue
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM participants WHERE id = ?", p.ID); err != nil {
			return fmt.Errorf("failed to delete participant: %w", err)
		}
	}

	for _, p := range after {
		prev, exists := old[p.ID]
		switch {
		case !exists:
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO participants (id, name) VALUES (?, ?)",
				p.ID, p.Name,
			); err != nil {
				return fmt.Errorf("failed to insert participant: %w", err)
			}
		case prev.Name != p.Name:
			if _, err := tx.ExecContext(ctx,
				"UPDATE participants SET name = ? WHERE id = ?",
				p.Name, p.ID,
			); err != nil {
				return fmt.Errorf("failed to update participant: %w", err)
			}
		}
	}
	return nil
}

func applyExpenses(ctx context.Context, tx *sql.Tx, before, after []models.Expense) error {
	old := make(map[string]models.Expense, len(before))
	for _, e := range before {
		old[e.ID] = e
	}
	keep := make(map[string]bool, len(after))
	for _, e := range after {
		keep[e.ID] = true
	}

	// Beneficiary rows go with the expense (ON DELETE CASCADE)
	for _, e := range before {
		if keep[e.ID] {
			continue
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM expenses WHERE id = ?", e.ID); err != nil {
			return fmt.Errorf("failed to delete expense: %w", err)
		}
	}

	for _, e := range after {
		prev, exists := old[e.ID]
		if !exists {
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO expenses (id, description, amount, paid_by, created_at) VALUES (?, ?, ?, ?, ?)",
				e.ID, e.Description, e.Amount, e.PaidBy, e.CreatedAt,
			); err != nil {
				return fmt.Errorf("failed to insert expense: %w", err)
			}
			if err := insertBeneficiaries(ctx, tx, e); err != nil {
				return err
			}
			continue
		}

		if prev.Description != e.Description || prev.Amount != e.Amount ||
			prev.PaidBy != e.PaidBy || prev.CreatedAt != e.CreatedAt {
			if _, err := tx.ExecContext(ctx,
				"UPDATE expenses SET description = ?, amount = ?, paid_by = ?, created_at = ? WHERE id = ?",
				e.Description, e.Amount, e.PaidBy, e.CreatedAt, e.ID,
			); err != nil {
				return fmt.Errorf("failed to update expense: %w", err)
			}
		}

		if !slices.Equal(prev.Participants, e.Participants) {
			if _, err := tx.ExecContext(ctx,
				"DELETE FROM expense_beneficiaries WHERE expense_id = ?", e.ID,
			); err != nil {
				return fmt.Errorf("failed to clear beneficiaries: %w", err)
			}
			if err := insertBeneficiaries(ctx, tx, e); err != nil {
				return err
			}
		}
	}
	return nil
}

func insertBeneficiaries(ctx context.Context, tx *sql.Tx, e models.Expense) error {
	for i, participantID := range e.Participants {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO expense_beneficiaries (expense_id, participant_id, position) VALUES (?, ?, ?)",
			e.ID, participantID, i,
		)
		if err != nil {
			return fmt.Errorf("failed to insert beneficiary: %w", err)
		}
	}
	return nil
}
