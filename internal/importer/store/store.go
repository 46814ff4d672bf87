package store

import (
	"context"
	"database/sql"
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/fiscaladmin/reconcile/internal/dedup"
	"github.com/fiscaladmin/reconcile/internal/importer"
	"github.com/fiscaladmin/reconcile/internal/statement"
)

// insertChunkSize caps the rows per multi-row INSERT statement.
const insertChunkSize = 1000

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// importLockKey derives the advisory lock key for a statement's account type
// and date range. Imports of overlapping periods serialize on it.
func importLockKey(st *statement.Statement) int64 {
	h := fnv.New64a()
	h.Write([]byte(st.AccountType))
	h.Write([]byte{0})
	h.Write([]byte(st.FromDate.Format("2006-01-02")))
	h.Write([]byte{0})
	h.Write([]byte(st.ToDate.Format("2006-01-02")))

	return int64(h.Sum64())
}

type importTx struct {
	tx *sql.Tx
	st *statement.Statement
}

func (s *Store) BeginImport(ctx context.Context, st *statement.Statement) (importer.ImportTx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning import tx: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", importLockKey(st)); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("acquiring import lock: %w", err)
	}

	return &importTx{tx: tx, st: st}, nil
}

func (itx *importTx) Commit() error   { return itx.tx.Commit() }
func (itx *importTx) Rollback() error { return itx.tx.Rollback() }

// Purge removes everything a previous import run of this statement produced:
// raw rows, consolidated rows and postings. Rows in other statements that
// were settled against this statement's postings are reopened first, so they
// become matchable again.
func (itx *importTx) Purge(ctx context.Context) error {
	queries := []string{
		`UPDATE bank_totals
		 SET status = 'new', type = NULL, transaction_type = NULL,
		     posting_id = NULL, main_bank_row_id = NULL, updated_at = NOW()
		 WHERE posting_id IN (SELECT id FROM postings WHERE statement_id = $1)`,
		`UPDATE secu_totals
		 SET status = 'new', transaction_type = NULL, posting_id = NULL,
		     bank_payment_row_id = NULL, bank_fee_row_id = NULL, updated_at = NOW()
		 WHERE posting_id IN (SELECT id FROM postings WHERE statement_id = $1)`,
		`DELETE FROM postings WHERE statement_id = $1`,
		`DELETE FROM bank_totals WHERE statement_id = $1`,
		`DELETE FROM secu_totals WHERE statement_id = $1`,
		`DELETE FROM bank_rows WHERE statement_id = $1`,
		`DELETE FROM secu_rows WHERE statement_id = $1`,
	}

	for _, q := range queries {
		if _, err := itx.tx.ExecContext(ctx, q, itx.st.ID); err != nil {
			return fmt.Errorf("purging statement data: %w", err)
		}
	}

	return nil
}

// ExistingBankKeys loads the duplicate keys of bank rows belonging to other
// statements whose period overlaps this one. Statements that never finished
// importing do not contribute keys.
func (itx *importTx) ExistingBankKeys(ctx context.Context) (map[string]struct{}, error) {
	query := `
		SELECT r.provider_reference, r.account_number, r.document_nr,
		       r.payment_date, r.payment_amount, r.currency
		FROM bank_rows r
		JOIN statements s ON s.id = r.statement_id
		WHERE s.id <> $1
		  AND s.account_type = $2
		  AND s.status NOT IN ('new', 'error')
		  AND s.from_date <= $4 AND s.to_date >= $3
	`

	rows, err := itx.tx.QueryContext(ctx, query,
		itx.st.ID, statement.AccountTypeBank, itx.st.FromDate, itx.st.ToDate)
	if err != nil {
		return nil, fmt.Errorf("loading bank keys: %w", err)
	}
	defer rows.Close()

	keys := make(map[string]struct{})

	for rows.Next() {
		var ref, account, docNr, date, amount, currency string
		if err := rows.Scan(&ref, &account, &docNr, &date, &amount, &currency); err != nil {
			return nil, fmt.Errorf("scanning bank key: %w", err)
		}

		keys[dedup.BankKeyFromParts(ref, account, docNr, date, amount, currency)] = struct{}{}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating bank keys: %w", err)
	}

	return keys, nil
}

func (itx *importTx) ExistingSecuKeys(ctx context.Context) (map[string]struct{}, error) {
	query := `
		SELECT r.reference, r.value_date, r.transaction_date,
		       r.type, r.ticker, r.amount, r.currency
		FROM secu_rows r
		JOIN statements s ON s.id = r.statement_id
		WHERE s.id <> $1
		  AND s.account_type = $2
		  AND s.status NOT IN ('new', 'error')
		  AND s.from_date <= $4 AND s.to_date >= $3
	`

	rows, err := itx.tx.QueryContext(ctx, query,
		itx.st.ID, statement.AccountTypeSecurities, itx.st.FromDate, itx.st.ToDate)
	if err != nil {
		return nil, fmt.Errorf("loading securities keys: %w", err)
	}
	defer rows.Close()

	keys := make(map[string]struct{})

	for rows.Next() {
		var ref, valueDate, trxDate, trxType, ticker, amount, currency string
		if err := rows.Scan(&ref, &valueDate, &trxDate, &trxType, &ticker, &amount, &currency); err != nil {
			return nil, fmt.Errorf("scanning securities key: %w", err)
		}

		keys[dedup.SecuKeyFromParts(ref, valueDate, trxDate, trxType, ticker, amount, currency)] = struct{}{}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating securities keys: %w", err)
	}

	return keys, nil
}

var bankRowColumns = []string{
	"id", "statement_id", "sequence_id", "account_number", "document_nr",
	"payment_date", "other_side_account", "other_side_name", "other_side_bank",
	"debit_credit", "payment_amount", "reference_number", "archival_number",
	"payment_description", "transaction_fee", "currency", "customer_id",
	"other_side_bic", "initiator", "transaction_reference", "provider_reference",
}

func (itx *importTx) InsertBankRows(ctx context.Context, batch []statement.BankRow) error {
	for start := 0; start < len(batch); start += insertChunkSize {
		end := min(start+insertChunkSize, len(batch))
		chunk := batch[start:end]

		args := make([]any, 0, len(chunk)*len(bankRowColumns))
		for _, r := range chunk {
			args = append(args,
				r.ID, r.StatementID, r.SequenceID, r.AccountNumber, r.DocumentNr,
				r.PaymentDate, r.OtherSideAccount, r.OtherSideName, r.OtherSideBank,
				r.DebitCredit, r.PaymentAmount, r.ReferenceNumber, r.ArchivalNumber,
				r.PaymentDescription, r.TransactionFee, r.Currency, r.CustomerID,
				r.OtherSideBIC, r.Initiator, r.TransactionReference, r.ProviderReference,
			)
		}

		query := insertQuery("bank_rows", bankRowColumns, len(chunk))
		if _, err := itx.tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("inserting bank rows: %w", err)
		}
	}

	return nil
}

var secuRowColumns = []string{
	"id", "statement_id", "sequence_id", "value_date", "transaction_date",
	"type", "ticker", "description", "quantity", "price", "currency",
	"amount", "fee", "total_amount", "reference", "comment",
}

func (itx *importTx) InsertSecuRows(ctx context.Context, batch []statement.SecuRow) error {
	for start := 0; start < len(batch); start += insertChunkSize {
		end := min(start+insertChunkSize, len(batch))
		chunk := batch[start:end]

		args := make([]any, 0, len(chunk)*len(secuRowColumns))
		for _, r := range chunk {
			args = append(args,
				r.ID, r.StatementID, r.SequenceID, r.ValueDate, r.TransactionDate,
				r.Type, r.Ticker, r.Description, r.Quantity, r.Price, r.Currency,
				r.Amount, r.Fee, r.TotalAmount, r.Reference, r.Comment,
			)
		}

		query := insertQuery("secu_rows", secuRowColumns, len(chunk))
		if _, err := itx.tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("inserting securities rows: %w", err)
		}
	}

	return nil
}

// insertQuery builds a multi-row INSERT with positional placeholders.
func insertQuery(table string, columns []string, rowCount int) string {
	var b strings.Builder

	b.WriteString("INSERT INTO ")
	b.WriteString(table)
	b.WriteString(" (")
	b.WriteString(strings.Join(columns, ", "))
	b.WriteString(", created_at) VALUES ")

	arg := 1

	for row := 0; row < rowCount; row++ {
		if row > 0 {
			b.WriteString(", ")
		}

		b.WriteByte('(')

		for col := 0; col < len(columns); col++ {
			if col > 0 {
				b.WriteString(", ")
			}

			fmt.Fprintf(&b, "$%d", arg)
			arg++
		}

		b.WriteString(", NOW())")
	}

	return b.String()
}
