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

func (s *Store) BankRows(ctx context.Context, statementID string) ([]statement.BankRow, error) {
	query := `
		SELECT id, statement_id, sequence_id, account_number, document_nr,
		       payment_date, other_side_account, other_side_name, other_side_bank,
		       debit_credit, payment_amount, reference_number, archival_number,
		       payment_description, transaction_fee, currency, customer_id,
		       other_side_bic, initiator, transaction_reference, provider_reference
		FROM bank_rows
		WHERE statement_id = $1
		ORDER BY sequence_id ASC
	`

	rows, err := s.db.QueryContext(ctx, query, statementID)
	if err != nil {
		return nil, fmt.Errorf("loading bank rows: %w", err)
	}
	defer rows.Close()

	var out []statement.BankRow

	for rows.Next() {
		var r statement.BankRow
		if err := rows.Scan(
			&r.ID, &r.StatementID, &r.SequenceID, &r.AccountNumber, &r.DocumentNr,
			&r.PaymentDate, &r.OtherSideAccount, &r.OtherSideName, &r.OtherSideBank,
			&r.DebitCredit, &r.PaymentAmount, &r.ReferenceNumber, &r.ArchivalNumber,
			&r.PaymentDescription, &r.TransactionFee, &r.Currency, &r.CustomerID,
			&r.OtherSideBIC, &r.Initiator, &r.TransactionReference, &r.ProviderReference,
		); err != nil {
			return nil, fmt.Errorf("scanning bank row: %w", err)
		}

		out = append(out, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating bank rows: %w", err)
	}

	return out, nil
}

func (s *Store) SecuRows(ctx context.Context, statementID string) ([]statement.SecuRow, error) {
	query := `
		SELECT id, statement_id, sequence_id, value_date, transaction_date,
		       type, ticker, description, quantity, price, currency,
		       amount, fee, total_amount, reference, comment
		FROM secu_rows
		WHERE statement_id = $1
		ORDER BY sequence_id ASC
	`

	rows, err := s.db.QueryContext(ctx, query, statementID)
	if err != nil {
		return nil, fmt.Errorf("loading securities rows: %w", err)
	}
	defer rows.Close()

	var out []statement.SecuRow

	for rows.Next() {
		var r statement.SecuRow
		if err := rows.Scan(
			&r.ID, &r.StatementID, &r.SequenceID, &r.ValueDate, &r.TransactionDate,
			&r.Type, &r.Ticker, &r.Description, &r.Quantity, &r.Price, &r.Currency,
			&r.Amount, &r.Fee, &r.TotalAmount, &r.Reference, &r.Comment,
		); err != nil {
			return nil, fmt.Errorf("scanning securities row: %w", err)
		}

		out = append(out, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating securities rows: %w", err)
	}

	return out, nil
}

// ReplaceBankTotals drops and reinserts the statement's consolidated bank
// rows in one transaction, so a failed consolidation never leaves a partial
// result behind.
func (s *Store) ReplaceBankTotals(ctx context.Context, statementID string, totals []statement.ConsolidatedBankRow) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM bank_totals WHERE statement_id = $1`, statementID); err != nil {
		return fmt.Errorf("deleting bank totals: %w", err)
	}

	query := `
		INSERT INTO bank_totals (
			id, statement_id, statement_reference, sequence_id,
			account_number, document_nr, payment_date, other_side_account,
			other_side_name, other_side_bank, debit_credit, payment_description,
			currency, customer_id, other_side_bic, payment_amount,
			transaction_fee, provider_references, status, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, NOW())
	`

	for _, t := range totals {
		if _, err := tx.ExecContext(ctx, query,
			t.ID, t.StatementID, t.StatementReference, t.SequenceID,
			t.AccountNumber, t.DocumentNr, t.PaymentDate, t.OtherSideAccount,
			t.OtherSideName, t.OtherSideBank, t.DebitCredit, t.PaymentDescription,
			t.Currency, t.CustomerID, t.OtherSideBIC, t.PaymentAmount,
			t.TransactionFee, t.ProviderReferences, t.Status,
		); err != nil {
			return fmt.Errorf("inserting bank total %s: %w", t.StatementReference, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing bank totals: %w", err)
	}

	return nil
}

func (s *Store) ReplaceSecuTotals(ctx context.Context, statementID string, totals []statement.ConsolidatedSecuRow) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM secu_totals WHERE statement_id = $1`, statementID); err != nil {
		return fmt.Errorf("deleting securities totals: %w", err)
	}

	query := `
		INSERT INTO secu_totals (
			id, statement_id, statement_reference, sequence_id,
			value_date, transaction_date, type, ticker, description, currency,
			quantity, price, amount, fee, total_amount,
			trade_references, status, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, NOW())
	`

	for _, t := range totals {
		if _, err := tx.ExecContext(ctx, query,
			t.ID, t.StatementID, t.StatementReference, t.SequenceID,
			t.ValueDate, t.TransactionDate, t.Type, t.Ticker, t.Description, t.Currency,
			t.Quantity, t.Price, t.Amount, t.Fee, t.TotalAmount,
			t.References, t.Status,
		); err != nil {
			return fmt.Errorf("inserting securities total %s: %w", t.StatementReference, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing securities totals: %w", err)
	}

	return nil
}
