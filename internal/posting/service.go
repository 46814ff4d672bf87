package posting

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/fiscaladmin/reconcile/internal/statement"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=posting
type Repository interface {
	// CreateSecuritiesPosting writes the posting and settles the securities
	// row plus the bank payment row (and fee row, when present) atomically.
	CreateSecuritiesPosting(ctx context.Context, p *Posting, secuRowID, paymentRowID string, feeRowID *string) error

	// CreateSplitPosting writes the posting and settles both sides of a
	// security split atomically.
	CreateSplitPosting(ctx context.Context, p *Posting, minusRowID, plusRowID string) error

	// CreateBankPosting writes the posting and settles one bank row.
	CreateBankPosting(ctx context.Context, p *Posting, bankRowID string) error
}

type Service struct {
	repo   Repository
	logger *slog.Logger
	now    func() time.Time
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger, now: time.Now}
}

const amountScale = 2

// SecuritiesTrade describes a securities row matched to its bank rows.
type SecuritiesTrade struct {
	Statement    *statement.Statement
	Row          statement.ConsolidatedSecuRow
	Payment      statement.ConsolidatedBankRow
	Fee          *statement.ConsolidatedBankRow
	TypeCode     string
	LedgerOpCode string
}

// Split describes a paired security split.
type Split struct {
	Statement *statement.Statement
	Minus     statement.ConsolidatedSecuRow
	Plus      statement.ConsolidatedSecuRow
	TypeCode  string
}

// CustomerPayment describes a bank row matched to a customer.
type CustomerPayment struct {
	Statement         *statement.Statement
	Row               statement.ConsolidatedBankRow
	CustomerRowID     string
	CustomerReference string
	TypeCode          string
	LedgerOpCode      string
}

func (s *Service) RegisterSecuritiesTrade(ctx context.Context, t SecuritiesTrade) (*Posting, error) {
	p := &Posting{
		ID:              uuid.NewString(),
		AccPostDate:     s.now(),
		StatementID:     t.Statement.ID,
		AccountType:     statement.AccountTypeSecurities,
		TransactionType: t.TypeCode,
		LedgerOperation: t.LedgerOpCode,
		BankPaymentRef:  t.Payment.StatementReference,
		TotalInBank:     t.Row.Amount.Add(t.Row.Fee).Round(amountScale),
	}

	var feeRowID *string

	if t.Fee != nil {
		p.FeePaymentRef = t.Fee.StatementReference
		feeRowID = &t.Fee.ID
	}

	if err := s.repo.CreateSecuritiesPosting(ctx, p, t.Row.ID, t.Payment.ID, feeRowID); err != nil {
		return nil, fmt.Errorf("registering securities posting: %w", err)
	}

	s.logger.Info("posting registered",
		"posting_id", p.ID,
		"statement_id", p.StatementID,
		"type", p.TransactionType,
		"reference", t.Row.StatementReference,
	)

	return p, nil
}

func (s *Service) RegisterSplit(ctx context.Context, sp Split) (*Posting, error) {
	p := &Posting{
		ID:              uuid.NewString(),
		AccPostDate:     s.now(),
		StatementID:     sp.Statement.ID,
		AccountType:     statement.AccountTypeSecurities,
		TransactionType: sp.TypeCode,
	}

	if err := s.repo.CreateSplitPosting(ctx, p, sp.Minus.ID, sp.Plus.ID); err != nil {
		return nil, fmt.Errorf("registering split posting: %w", err)
	}

	s.logger.Info("posting registered",
		"posting_id", p.ID,
		"statement_id", p.StatementID,
		"type", p.TransactionType,
		"ticker", sp.Minus.Ticker,
	)

	return p, nil
}

func (s *Service) RegisterCustomerPayment(ctx context.Context, cp CustomerPayment) (*Posting, error) {
	customerRowID := cp.CustomerRowID

	p := &Posting{
		ID:                uuid.NewString(),
		AccPostDate:       s.now(),
		StatementID:       cp.Statement.ID,
		AccountType:       statement.AccountTypeBank,
		TransactionType:   cp.TypeCode,
		LedgerOperation:   cp.LedgerOpCode,
		BankPaymentRef:    cp.Row.StatementReference,
		TotalInBank:       cp.Row.PaymentAmount.Add(cp.Row.TransactionFee).Round(amountScale),
		CustomerRowID:     &customerRowID,
		CustomerReference: cp.CustomerReference,
	}

	if err := s.repo.CreateBankPosting(ctx, p, cp.Row.ID); err != nil {
		return nil, fmt.Errorf("registering bank posting: %w", err)
	}

	s.logger.Info("posting registered",
		"posting_id", p.ID,
		"statement_id", p.StatementID,
		"type", p.TransactionType,
		"reference", cp.Row.StatementReference,
	)

	return p, nil
}
