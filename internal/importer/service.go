// Package importer reads a statement file from disk, deduplicates its rows
// and stores them as raw statement rows. Re-running an import for the same
// statement first removes everything derived from the previous run.
package importer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/fiscaladmin/reconcile/internal/dedup"
	"github.com/fiscaladmin/reconcile/internal/encoding"
	"github.com/fiscaladmin/reconcile/internal/parser"
	"github.com/fiscaladmin/reconcile/internal/statement"
)

// ErrAccountTypeMismatch is returned when the detected file format belongs to
// a different account type than the statement was registered with.
var ErrAccountTypeMismatch = errors.New("file format does not match statement account type")

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=importer
type Repository interface {
	BeginImport(ctx context.Context, st *statement.Statement) (ImportTx, error)
}

// ImportTx is a single import run. The statement's date range is locked for
// its duration, so overlapping statements never race on duplicate detection.
type ImportTx interface {
	Purge(ctx context.Context) error
	ExistingBankKeys(ctx context.Context) (map[string]struct{}, error)
	ExistingSecuKeys(ctx context.Context) (map[string]struct{}, error)
	InsertBankRows(ctx context.Context, rows []statement.BankRow) error
	InsertSecuRows(ctx context.Context, rows []statement.SecuRow) error
	Commit() error
	Rollback() error
}

// Source opens the raw bytes of a statement file by name.
type Source interface {
	Open(ctx context.Context, fileName string) (io.ReadCloser, error)
}

type Service struct {
	repo   Repository
	source Source
	logger *slog.Logger
}

func NewService(repo Repository, source Source, logger *slog.Logger) *Service {
	return &Service{repo: repo, source: source, logger: logger}
}

// Result summarizes one import run.
type Result struct {
	Format         parser.Format
	RowCount       int
	DuplicateCount int
	TotalCount     int
}

// Run imports the statement's file. Rows already present in overlapping,
// successfully imported statements are counted as duplicates and skipped.
func (s *Service) Run(ctx context.Context, st *statement.Statement) (*Result, error) {
	f, err := s.source.Open(ctx, st.FileName)
	if err != nil {
		return nil, fmt.Errorf("opening statement file: %w", err)
	}
	defer f.Close()

	r, err := encoding.NewUTF8Reader(f)
	if err != nil {
		return nil, fmt.Errorf("detecting file encoding: %w", err)
	}

	profile, rows, err := parser.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing statement file: %w", err)
	}

	if got := profile.Format.AccountType(); got != st.AccountType {
		return nil, fmt.Errorf("%w: file is %s, statement is %s",
			ErrAccountTypeMismatch, got, st.AccountType)
	}

	itx, err := s.repo.BeginImport(ctx, st)
	if err != nil {
		return nil, fmt.Errorf("begin import: %w", err)
	}
	defer itx.Rollback()

	if err := itx.Purge(ctx); err != nil {
		return nil, fmt.Errorf("purging previous import: %w", err)
	}

	existing, err := s.existingKeys(ctx, itx, st.AccountType)
	if err != nil {
		return nil, err
	}

	checked := dedup.Check(rows, st.AccountType, existing)

	if err := s.insert(ctx, itx, st, checked.NonDuplicates); err != nil {
		return nil, err
	}

	if err := itx.Commit(); err != nil {
		return nil, fmt.Errorf("committing import: %w", err)
	}

	s.logger.Info("statement imported",
		"statement_id", st.ID,
		"format", profile.Format,
		"rows", len(checked.NonDuplicates),
		"duplicates", checked.DuplicateCount,
	)

	return &Result{
		Format:         profile.Format,
		RowCount:       len(checked.NonDuplicates),
		DuplicateCount: checked.DuplicateCount,
		TotalCount:     checked.TotalCount,
	}, nil
}

func (s *Service) existingKeys(ctx context.Context, itx ImportTx, accountType statement.AccountType) (map[string]struct{}, error) {
	if accountType == statement.AccountTypeSecurities {
		keys, err := itx.ExistingSecuKeys(ctx)
		if err != nil {
			return nil, fmt.Errorf("loading existing securities keys: %w", err)
		}

		return keys, nil
	}

	keys, err := itx.ExistingBankKeys(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading existing bank keys: %w", err)
	}

	return keys, nil
}

func (s *Service) insert(ctx context.Context, itx ImportTx, st *statement.Statement, rows [][]string) error {
	if st.AccountType == statement.AccountTypeSecurities {
		mapped := make([]statement.SecuRow, len(rows))
		for i, row := range rows {
			mapped[i] = mapSecuRow(st.ID, i+1, row)
		}

		if err := itx.InsertSecuRows(ctx, mapped); err != nil {
			return fmt.Errorf("inserting securities rows: %w", err)
		}

		return nil
	}

	mapped := make([]statement.BankRow, len(rows))
	for i, row := range rows {
		mapped[i] = mapBankRow(st.ID, i+1, row)
	}

	if err := itx.InsertBankRows(ctx, mapped); err != nil {
		return fmt.Errorf("inserting bank rows: %w", err)
	}

	return nil
}

func mapBankRow(statementID string, seq int, row []string) statement.BankRow {
	return statement.BankRow{
		ID:                   uuid.NewString(),
		StatementID:          statementID,
		SequenceID:           statement.FormatSequenceID(seq),
		AccountNumber:        parser.Cell(row, parser.BankColAccountNumber),
		DocumentNr:           parser.Cell(row, parser.BankColDocumentNr),
		PaymentDate:          parser.Cell(row, parser.BankColPaymentDate),
		OtherSideAccount:     parser.Cell(row, parser.BankColOtherSideAccount),
		OtherSideName:        parser.Cell(row, parser.BankColOtherSideName),
		OtherSideBank:        parser.Cell(row, parser.BankColOtherSideBank),
		DebitCredit:          parser.Cell(row, parser.BankColDebitCredit),
		PaymentAmount:        parser.NormalizeAmount(parser.Cell(row, parser.BankColPaymentAmount)),
		ReferenceNumber:      parser.Cell(row, parser.BankColReferenceNumber),
		ArchivalNumber:       parser.Cell(row, parser.BankColArchivalNumber),
		PaymentDescription:   parser.Cell(row, parser.BankColPaymentDescription),
		TransactionFee:       parser.NormalizeAmount(parser.Cell(row, parser.BankColTransactionFee)),
		Currency:             parser.Cell(row, parser.BankColCurrency),
		CustomerID:           parser.Cell(row, parser.BankColCustomerID),
		OtherSideBIC:         parser.Cell(row, parser.BankColOtherSideBIC),
		Initiator:            parser.Cell(row, parser.BankColInitiator),
		TransactionReference: parser.Cell(row, parser.BankColTransactionReference),
		ProviderReference:    parser.Cell(row, parser.BankColProviderReference),
	}
}

func mapSecuRow(statementID string, seq int, row []string) statement.SecuRow {
	return statement.SecuRow{
		ID:              uuid.NewString(),
		StatementID:     statementID,
		SequenceID:      statement.FormatSequenceID(seq),
		ValueDate:       parser.Cell(row, parser.SecuColValueDate),
		TransactionDate: parser.Cell(row, parser.SecuColTransactionDate),
		Type:            parser.Cell(row, parser.SecuColType),
		Ticker:          parser.Cell(row, parser.SecuColTicker),
		Description:     parser.Cell(row, parser.SecuColDescription),
		Quantity:        parser.NormalizeAmount(parser.Cell(row, parser.SecuColQuantity)),
		Price:           parser.NormalizeAmount(parser.Cell(row, parser.SecuColPrice)),
		Currency:        parser.Cell(row, parser.SecuColCurrency),
		Amount:          parser.NormalizeAmount(parser.Cell(row, parser.SecuColAmount)),
		Fee:             parser.NormalizeAmount(parser.Cell(row, parser.SecuColFee)),
		TotalAmount:     parser.NormalizeAmount(parser.Cell(row, parser.SecuColTotalAmount)),
		Reference:       parser.Cell(row, parser.SecuColReference),
		Comment:         parser.Cell(row, parser.SecuColComment),
	}
}
