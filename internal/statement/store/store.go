package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fiscaladmin/reconcile/internal/statement"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) GetStatement(ctx context.Context, id string) (*statement.Statement, error) {
	query := `
		SELECT st.id, st.account_type, st.bank_id, COALESCE(b.swift_code_bic, ''),
		       st.file_name, st.from_date, st.to_date, st.status,
		       st.row_count, st.duplicate_count, st.total_count,
		       COALESCE(st.error_message, ''), st.created_at, st.updated_at
		FROM statements st
		LEFT JOIN banks b ON st.bank_id = b.id
		WHERE st.id = $1
	`

	var (
		st        statement.Statement
		acctType  string
		statusStr string
	)

	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&st.ID, &acctType, &st.BankID, &st.BankCode,
		&st.FileName, &st.FromDate, &st.ToDate, &statusStr,
		&st.RowCount, &st.DuplicateCount, &st.TotalCount,
		&st.ErrorMessage, &st.CreatedAt, &st.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, statement.ErrNotFound
		}

		return nil, fmt.Errorf("getting statement: %w", err)
	}

	st.AccountType = statement.AccountType(acctType)
	st.Status = statement.Status(statusStr)

	return &st, nil
}

// Transition performs the guarded status update and the audit log insert in
// one transaction. The guard is the WHERE clause: zero rows updated means the
// current status disallows the transition.
func (s *Store) Transition(ctx context.Context, entityType statement.EntityType, id string, allowedFrom []statement.Status, to statement.Status, actor, note string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transition tx: %w", err)
	}
	defer tx.Rollback()

	from := make([]string, len(allowedFrom))
	for i, f := range allowedFrom {
		from[i] = string(f)
	}

	updateQuery := `
		UPDATE statements st
		SET status = $1, updated_at = NOW()
		FROM (SELECT id, status FROM statements WHERE id = $2 FOR UPDATE) prev
		WHERE st.id = prev.id AND prev.status = ANY($3)
		RETURNING prev.status
	`

	var fromStatus string
	if err := tx.QueryRowContext(ctx, updateQuery, to, id, from).Scan(&fromStatus); err != nil {
		if err == sql.ErrNoRows {
			return s.transitionDenied(ctx, id, to)
		}

		return fmt.Errorf("updating status: %w", err)
	}

	logQuery := `
		INSERT INTO statement_status_log (entity_type, entity_id, from_status, to_status, actor, note, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
	`
	if _, err := tx.ExecContext(ctx, logQuery, entityType, id, fromStatus, to, actor, note); err != nil {
		return fmt.Errorf("logging transition: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transition: %w", err)
	}

	return nil
}

// transitionDenied distinguishes a missing statement from a guard rejection.
func (s *Store) transitionDenied(ctx context.Context, id string, to statement.Status) error {
	var current string

	err := s.db.QueryRowContext(ctx, `SELECT status FROM statements WHERE id = $1`, id).Scan(&current)
	if err != nil {
		if err == sql.ErrNoRows {
			return statement.ErrNotFound
		}

		return fmt.Errorf("checking current status: %w", err)
	}

	return fmt.Errorf("%w: %s -> %s", statement.ErrTransitionDenied, current, to)
}

func (s *Store) SetStatusDirect(ctx context.Context, id string, status statement.Status, errorMessage string) error {
	query := `
		UPDATE statements
		SET status = $1, error_message = $2, updated_at = NOW()
		WHERE id = $3
	`

	if _, err := s.db.ExecContext(ctx, query, status, errorMessage, id); err != nil {
		return fmt.Errorf("direct status write: %w", err)
	}

	return nil
}

func (s *Store) SetErrorMessage(ctx context.Context, id string, message string) error {
	query := `UPDATE statements SET error_message = $1, updated_at = NOW() WHERE id = $2`

	if _, err := s.db.ExecContext(ctx, query, message, id); err != nil {
		return fmt.Errorf("setting error message: %w", err)
	}

	return nil
}

func (s *Store) UpdateImportResults(ctx context.Context, id string, rowCount, duplicateCount int) error {
	query := `
		UPDATE statements
		SET row_count = $1, duplicate_count = $2, updated_at = NOW()
		WHERE id = $3
	`

	if _, err := s.db.ExecContext(ctx, query, rowCount, duplicateCount, id); err != nil {
		return fmt.Errorf("updating import results: %w", err)
	}

	return nil
}

func (s *Store) UpdateConsolidationResults(ctx context.Context, id string, totalCount int) error {
	query := `
		UPDATE statements
		SET total_count = $1, updated_at = NOW()
		WHERE id = $2
	`

	if _, err := s.db.ExecContext(ctx, query, totalCount, id); err != nil {
		return fmt.Errorf("updating consolidation results: %w", err)
	}

	return nil
}
