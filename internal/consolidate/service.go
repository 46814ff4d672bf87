package consolidate

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fiscaladmin/reconcile/internal/statement"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=consolidate
type Repository interface {
	// BankRows and SecuRows return the statement's raw rows in sequence order.
	BankRows(ctx context.Context, statementID string) ([]statement.BankRow, error)
	SecuRows(ctx context.Context, statementID string) ([]statement.SecuRow, error)

	// ReplaceBankTotals and ReplaceSecuTotals atomically drop the statement's
	// previous consolidated rows and insert the new set.
	ReplaceBankTotals(ctx context.Context, statementID string, rows []statement.ConsolidatedBankRow) error
	ReplaceSecuTotals(ctx context.Context, statementID string, rows []statement.ConsolidatedSecuRow) error
}

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

type Result struct {
	TotalCount int
}

// Run rebuilds the statement's consolidated rows from its raw rows.
// Re-running replaces the previous result, so a statement can be
// consolidated again after its raw data changed.
func (s *Service) Run(ctx context.Context, st *statement.Statement) (*Result, error) {
	refPrefix := statement.RefPrefix(st.FromDate)

	if st.AccountType == statement.AccountTypeSecurities {
		rows, err := s.repo.SecuRows(ctx, st.ID)
		if err != nil {
			return nil, fmt.Errorf("loading securities rows: %w", err)
		}

		totals, err := Securities(st.ID, refPrefix, rows)
		if err != nil {
			return nil, fmt.Errorf("consolidating securities rows: %w", err)
		}

		if err := s.repo.ReplaceSecuTotals(ctx, st.ID, totals); err != nil {
			return nil, fmt.Errorf("storing securities totals: %w", err)
		}

		s.logger.Info("statement consolidated",
			"statement_id", st.ID, "rows", len(rows), "totals", len(totals))

		return &Result{TotalCount: len(totals)}, nil
	}

	rows, err := s.repo.BankRows(ctx, st.ID)
	if err != nil {
		return nil, fmt.Errorf("loading bank rows: %w", err)
	}

	totals, err := Bank(st.ID, refPrefix, rows)
	if err != nil {
		return nil, fmt.Errorf("consolidating bank rows: %w", err)
	}

	if err := s.repo.ReplaceBankTotals(ctx, st.ID, totals); err != nil {
		return nil, fmt.Errorf("storing bank totals: %w", err)
	}

	s.logger.Info("statement consolidated",
		"statement_id", st.ID, "rows", len(rows), "totals", len(totals))

	return &Result{TotalCount: len(totals)}, nil
}
