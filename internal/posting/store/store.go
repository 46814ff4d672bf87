package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fiscaladmin/reconcile/internal/posting"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

const insertPosting = `
	INSERT INTO postings (
		id, statement_id, account_type, acc_post_date, transaction_type,
		ledger_operation, bank_payment_ref, fee_payment_ref, total_in_bank,
		customer_row_id, customer_reference, created_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW())
`

func (s *Store) insert(ctx context.Context, tx *sql.Tx, p *posting.Posting) error {
	if _, err := tx.ExecContext(ctx, insertPosting,
		p.ID, p.StatementID, p.AccountType, p.AccPostDate, p.TransactionType,
		p.LedgerOperation, p.BankPaymentRef, p.FeePaymentRef, p.TotalInBank,
		p.CustomerRowID, p.CustomerReference,
	); err != nil {
		return fmt.Errorf("inserting posting: %w", err)
	}

	return nil
}

// settle stamps one row with the posting. The guard on status and posting_id
// makes settling monotonic: a row settled by a concurrent run is not settled
// again, the whole registration rolls back instead.
func (s *Store) settle(ctx context.Context, tx *sql.Tx, query string, args ...any) error {
	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("settling row: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("settling row: %w", err)
	}

	if affected == 0 {
		return fmt.Errorf("%w: row already settled or missing", posting.ErrOrphanedPosting)
	}

	return nil
}

func (s *Store) CreateSecuritiesPosting(ctx context.Context, p *posting.Posting, secuRowID, paymentRowID string, feeRowID *string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if err := s.insert(ctx, tx, p); err != nil {
		return err
	}

	if err := s.settle(ctx, tx, `
		UPDATE secu_totals
		SET posting_id = $1, transaction_type = $2, status = 'posted',
		    bank_payment_row_id = $3, bank_fee_row_id = $4, updated_at = NOW()
		WHERE id = $5 AND status = 'new' AND posting_id IS NULL`,
		p.ID, p.TransactionType, paymentRowID, feeRowID, secuRowID,
	); err != nil {
		return err
	}

	if err := s.settle(ctx, tx, `
		UPDATE bank_totals
		SET posting_id = $1, transaction_type = $2, type = 'secupmt',
		    status = 'posted', updated_at = NOW()
		WHERE id = $3 AND status = 'new' AND posting_id IS NULL`,
		p.ID, p.TransactionType, paymentRowID,
	); err != nil {
		return err
	}

	if feeRowID != nil {
		if err := s.settle(ctx, tx, `
			UPDATE bank_totals
			SET posting_id = $1, transaction_type = $2, type = 'secufee',
			    main_bank_row_id = $3, status = 'posted', updated_at = NOW()
			WHERE id = $4 AND status = 'new' AND posting_id IS NULL`,
			p.ID, p.TransactionType, paymentRowID, *feeRowID,
		); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing posting: %w", err)
	}

	return nil
}

func (s *Store) CreateSplitPosting(ctx context.Context, p *posting.Posting, minusRowID, plusRowID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if err := s.insert(ctx, tx, p); err != nil {
		return err
	}

	for _, rowID := range []string{minusRowID, plusRowID} {
		if err := s.settle(ctx, tx, `
			UPDATE secu_totals
			SET posting_id = $1, transaction_type = $2, status = 'posted', updated_at = NOW()
			WHERE id = $3 AND status = 'new' AND posting_id IS NULL`,
			p.ID, p.TransactionType, rowID,
		); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing posting: %w", err)
	}

	return nil
}

func (s *Store) CreateBankPosting(ctx context.Context, p *posting.Posting, bankRowID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if err := s.insert(ctx, tx, p); err != nil {
		return err
	}

	if err := s.settle(ctx, tx, `
		UPDATE bank_totals
		SET posting_id = $1, transaction_type = $2, status = 'posted', updated_at = NOW()
		WHERE id = $3 AND status = 'new' AND posting_id IS NULL`,
		p.ID, p.TransactionType, bankRowID,
	); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing posting: %w", err)
	}

	return nil
}
