package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/fiscaladmin/reconcile/internal/recognize"
	"github.com/fiscaladmin/reconcile/internal/statement"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectBankTotalColumns = `
	t.id, t.statement_id, t.statement_reference, t.sequence_id,
	t.account_number, t.document_nr, t.payment_date, t.other_side_account,
	t.other_side_name, t.other_side_bank, t.debit_credit, t.payment_description,
	t.currency, t.customer_id, t.other_side_bic, t.payment_amount,
	t.transaction_fee, t.provider_references, t.status, t.type,
	t.transaction_type, t.posting_id, t.main_bank_row_id
`

func scanBankTotal(s scanner) (*statement.ConsolidatedBankRow, error) {
	var r statement.ConsolidatedBankRow

	var status string

	var rowType, trxType sql.NullString

	if err := s.Scan(
		&r.ID, &r.StatementID, &r.StatementReference, &r.SequenceID,
		&r.AccountNumber, &r.DocumentNr, &r.PaymentDate, &r.OtherSideAccount,
		&r.OtherSideName, &r.OtherSideBank, &r.DebitCredit, &r.PaymentDescription,
		&r.Currency, &r.CustomerID, &r.OtherSideBIC, &r.PaymentAmount,
		&r.TransactionFee, &r.ProviderReferences, &status, &rowType,
		&trxType, &r.PostingID, &r.MainBankRowID,
	); err != nil {
		return nil, err
	}

	r.Status = statement.RowStatus(status)
	r.Type = rowType.String
	r.TransactionType = trxType.String

	return &r, nil
}

const selectSecuTotalColumns = `
	t.id, t.statement_id, t.statement_reference, t.sequence_id,
	t.value_date, t.transaction_date, t.type, t.ticker, t.description,
	t.currency, t.quantity, t.price, t.amount, t.fee, t.total_amount,
	t.trade_references, t.status, t.transaction_type,
	t.posting_id, t.bank_payment_row_id, t.bank_fee_row_id
`

func scanSecuTotal(s scanner) (*statement.ConsolidatedSecuRow, error) {
	var r statement.ConsolidatedSecuRow

	var status string

	var trxType sql.NullString

	if err := s.Scan(
		&r.ID, &r.StatementID, &r.StatementReference, &r.SequenceID,
		&r.ValueDate, &r.TransactionDate, &r.Type, &r.Ticker, &r.Description,
		&r.Currency, &r.Quantity, &r.Price, &r.Amount, &r.Fee, &r.TotalAmount,
		&r.References, &status, &trxType,
		&r.PostingID, &r.BankPaymentRowID, &r.BankFeeRowID,
	); err != nil {
		return nil, err
	}

	r.Status = statement.RowStatus(status)
	r.TransactionType = trxType.String

	return &r, nil
}

func (s *Store) UnpostedSecuTrades(ctx context.Context, statementID string) ([]statement.ConsolidatedSecuRow, error) {
	query := `SELECT ` + selectSecuTotalColumns + `
		FROM secu_totals t
		WHERE t.statement_id = $1 AND t.status = 'new'
		  AND t.type NOT LIKE 'split%'
		ORDER BY t.sequence_id ASC`

	return s.querySecuTotals(ctx, query, statementID)
}

func (s *Store) UnpostedSplitRows(ctx context.Context, statementID string) ([]statement.ConsolidatedSecuRow, error) {
	query := `SELECT ` + selectSecuTotalColumns + `
		FROM secu_totals t
		WHERE t.statement_id = $1 AND t.status = 'new'
		  AND t.type LIKE 'split%'
		ORDER BY t.sequence_id ASC`

	return s.querySecuTotals(ctx, query, statementID)
}

func (s *Store) querySecuTotals(ctx context.Context, query string, args ...any) ([]statement.ConsolidatedSecuRow, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("loading securities totals: %w", err)
	}
	defer rows.Close()

	var out []statement.ConsolidatedSecuRow

	for rows.Next() {
		r, err := scanSecuTotal(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning securities total: %w", err)
		}

		out = append(out, *r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating securities totals: %w", err)
	}

	return out, nil
}

func (s *Store) UnpostedBankRows(ctx context.Context, statementID string) ([]statement.ConsolidatedBankRow, error) {
	query := `SELECT ` + selectBankTotalColumns + `
		FROM bank_totals t
		WHERE t.statement_id = $1 AND t.status = 'new'
		ORDER BY t.sequence_id ASC`

	rows, err := s.db.QueryContext(ctx, query, statementID)
	if err != nil {
		return nil, fmt.Errorf("loading bank totals: %w", err)
	}
	defer rows.Close()

	var out []statement.ConsolidatedBankRow

	for rows.Next() {
		r, err := scanBankTotal(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning bank total: %w", err)
		}

		out = append(out, *r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating bank totals: %w", err)
	}

	return out, nil
}

// FindBankPayment looks across all statements for an unposted bank row with
// the given amount and currency, imported from a statement whose issuing bank
// carries the BIC. Oldest statement first, so a payment settles against its
// earliest appearance.
func (s *Store) FindBankPayment(ctx context.Context, bic string, amount decimal.Decimal, currency string) (*statement.ConsolidatedBankRow, error) {
	query := `SELECT ` + selectBankTotalColumns + `
		FROM bank_totals t
		JOIN statements st ON st.id = t.statement_id
		JOIN banks b ON b.id = st.bank_id
		WHERE b.swift_code_bic = $1
		  AND t.payment_amount = $2
		  AND t.currency = $3
		  AND t.status = 'new'
		  AND t.posting_id IS NULL
		ORDER BY st.from_date ASC, t.sequence_id ASC
		LIMIT 1`

	r, err := scanBankTotal(s.db.QueryRowContext(ctx, query, bic, amount, currency))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}

		return nil, fmt.Errorf("finding bank payment: %w", err)
	}

	return r, nil
}

const selectCustomerColumns = `
	c.id, c.reference, c.name, c.registration_number, c.national_id, c.account_number
`

func scanCustomer(s scanner) (*recognize.Customer, error) {
	var c recognize.Customer

	var regNr, nationalID, account sql.NullString

	if err := s.Scan(&c.ID, &c.Reference, &c.Name, &regNr, &nationalID, &account); err != nil {
		return nil, err
	}

	c.RegistrationNumber = regNr.String
	c.NationalID = nationalID.String
	c.AccountNumber = account.String

	return &c, nil
}

func (s *Store) CustomerByRegistrationNumber(ctx context.Context, registrationNumber string) (*recognize.Customer, error) {
	query := `SELECT ` + selectCustomerColumns + `
		FROM customers c WHERE c.registration_number = $1 LIMIT 1`

	return s.findCustomer(ctx, query, registrationNumber)
}

func (s *Store) CustomerByNationalID(ctx context.Context, nationalID string) (*recognize.Customer, error) {
	query := `SELECT ` + selectCustomerColumns + `
		FROM customers c WHERE c.national_id = $1 LIMIT 1`

	return s.findCustomer(ctx, query, nationalID)
}

func (s *Store) CustomerByAccount(ctx context.Context, accountNumber, name string) (*recognize.Customer, error) {
	query := `SELECT ` + selectCustomerColumns + `
		FROM customers c WHERE c.account_number = $1 AND c.name = $2 LIMIT 1`

	return s.findCustomer(ctx, query, accountNumber, name)
}

// CustomerByBusinessName matches on the registered business name, which sole
// proprietors often use as the account holder name. The account number must
// match as well; a shared name alone never identifies a customer.
func (s *Store) CustomerByBusinessName(ctx context.Context, accountNumber, name string) (*recognize.Customer, error) {
	query := `SELECT ` + selectCustomerColumns + `
		FROM customers c WHERE c.account_number = $1 AND c.business_name = $2 LIMIT 1`

	return s.findCustomer(ctx, query, accountNumber, name)
}

func (s *Store) findCustomer(ctx context.Context, query string, args ...any) (*recognize.Customer, error) {
	c, err := scanCustomer(s.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}

		return nil, fmt.Errorf("finding customer: %w", err)
	}

	return c, nil
}

func (s *Store) TransactionTypes(ctx context.Context) ([]recognize.TransactionType, error) {
	query := `
		SELECT id, code, source, flow, asset_type, is_customer
		FROM transaction_types
		ORDER BY code ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("loading transaction types: %w", err)
	}
	defer rows.Close()

	var out []recognize.TransactionType

	for rows.Next() {
		var t recognize.TransactionType

		var flow string

		if err := rows.Scan(&t.ID, &t.Code, &t.Source, &flow, &t.AssetType, &t.IsCustomer); err != nil {
			return nil, fmt.Errorf("scanning transaction type: %w", err)
		}

		t.Flow = recognize.Flow(flow)

		out = append(out, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating transaction types: %w", err)
	}

	return out, nil
}

// LedgerOpTypes returns the rules in register position order; classification
// takes the first rule that matches.
func (s *Store) LedgerOpTypes(ctx context.Context) ([]recognize.LedgerOpType, error) {
	query := `
		SELECT id, code, basis_code, included_words, excluded_words
		FROM ledger_operation_types
		ORDER BY position ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("loading ledger operation types: %w", err)
	}
	defer rows.Close()

	var out []recognize.LedgerOpType

	for rows.Next() {
		var op recognize.LedgerOpType

		var included, excluded sql.NullString

		if err := rows.Scan(&op.ID, &op.Code, &op.BasisCode, &included, &excluded); err != nil {
			return nil, fmt.Errorf("scanning ledger operation type: %w", err)
		}

		op.IncludedWords = splitWords(included.String)
		op.ExcludedWords = splitWords(excluded.String)

		out = append(out, op)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating ledger operation types: %w", err)
	}

	return out, nil
}

func splitWords(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	parts := strings.Split(s, ",")

	words := make([]string, 0, len(parts))

	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			words = append(words, p)
		}
	}

	return words
}
