package recognize

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/fiscaladmin/reconcile/internal/posting"
	"github.com/fiscaladmin/reconcile/internal/statement"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=recognize
type Repository interface {
	// UnpostedSecuTrades returns the statement's consolidated securities
	// rows awaiting a posting, splits excluded, in statement order.
	UnpostedSecuTrades(ctx context.Context, statementID string) ([]statement.ConsolidatedSecuRow, error)

	// UnpostedSplitRows returns the statement's split rows awaiting a posting.
	UnpostedSplitRows(ctx context.Context, statementID string) ([]statement.ConsolidatedSecuRow, error)

	// UnpostedBankRows returns the statement's consolidated bank rows
	// awaiting a posting.
	UnpostedBankRows(ctx context.Context, statementID string) ([]statement.ConsolidatedBankRow, error)

	// FindBankPayment finds an unposted consolidated bank row by counterparty
	// BIC, amount and currency, across all statements. Returns nil when there
	// is no match.
	FindBankPayment(ctx context.Context, bic string, amount decimal.Decimal, currency string) (*statement.ConsolidatedBankRow, error)

	// Customer lookups return nil when no customer matches.
	CustomerByRegistrationNumber(ctx context.Context, registrationNumber string) (*Customer, error)
	CustomerByNationalID(ctx context.Context, nationalID string) (*Customer, error)
	CustomerByAccount(ctx context.Context, accountNumber, name string) (*Customer, error)
	CustomerByBusinessName(ctx context.Context, accountNumber, name string) (*Customer, error)
}

// Registrar writes postings for recognized rows. Satisfied by
// *posting.Service.
type Registrar interface {
	RegisterSecuritiesTrade(ctx context.Context, t posting.SecuritiesTrade) (*posting.Posting, error)
	RegisterSplit(ctx context.Context, sp posting.Split) (*posting.Posting, error)
	RegisterCustomerPayment(ctx context.Context, cp posting.CustomerPayment) (*posting.Posting, error)
}

type Service struct {
	repo      Repository
	resolver  *Resolver
	registrar Registrar
	logger    *slog.Logger
}

func NewService(repo Repository, resolver *Resolver, registrar Registrar, logger *slog.Logger) *Service {
	return &Service{repo: repo, resolver: resolver, registrar: registrar, logger: logger}
}

// Result counts the outcome of one recognition run. Unmatched rows are not
// failures; they stay open for the next run.
type Result struct {
	Posted    int
	Unmatched int
}

// Run recognizes every unposted consolidated row of the statement.
// Unrecognized rows are skipped; infrastructure and configuration failures
// abort the run.
func (s *Service) Run(ctx context.Context, st *statement.Statement) (*Result, error) {
	result := &Result{}

	if st.AccountType == statement.AccountTypeSecurities {
		if err := s.processTrades(ctx, st, result); err != nil {
			return nil, err
		}

		if err := s.processSplits(ctx, st, result); err != nil {
			return nil, err
		}

		return result, nil
	}

	if err := s.processBank(ctx, st, result); err != nil {
		return nil, err
	}

	return result, nil
}

// processTrades matches each securities trade to the bank payment it settled
// against: an unposted bank row with the issuer's BIC and the trade's amount
// and currency. The trade's own numbers must reconcile before posting.
func (s *Service) processTrades(ctx context.Context, st *statement.Statement, result *Result) error {
	rows, err := s.repo.UnpostedSecuTrades(ctx, st.ID)
	if err != nil {
		return fmt.Errorf("loading unposted trades: %w", err)
	}

	if len(rows) == 0 {
		return nil
	}

	ops, err := s.resolver.LedgerOpTypes(ctx)
	if err != nil {
		return err
	}

	for _, row := range rows {
		payment, err := s.repo.FindBankPayment(ctx, st.BankCode, row.Amount, row.Currency)
		if err != nil {
			return fmt.Errorf("finding bank payment for %s: %w", row.StatementReference, err)
		}

		if payment == nil {
			result.Unmatched++
			continue
		}

		var feeRow *statement.ConsolidatedBankRow

		if !row.Fee.IsZero() {
			feeRow, err = s.repo.FindBankPayment(ctx, st.BankCode, row.Fee, row.Currency)
			if err != nil {
				return fmt.Errorf("finding bank fee for %s: %w", row.StatementReference, err)
			}

			// When fee equals the main amount the lookup can land on the
			// payment row itself; a bank row settles only once.
			if feeRow != nil && feeRow.ID == payment.ID {
				feeRow = nil
			}
		}

		// The trade must balance within itself before it may settle:
		// total = amount + fee to the cent.
		difference := row.TotalAmount.Round(amountScale).
			Sub(row.Amount.Add(row.Fee).Round(amountScale))
		if !difference.IsZero() {
			s.logger.Warn("trade does not balance",
				"statement_id", st.ID,
				"reference", row.StatementReference,
				"difference", difference.String(),
			)

			result.Unmatched++

			continue
		}

		trxType, err := s.resolver.SecurityTradeType(ctx, flowOf(row.Amount))
		if err != nil {
			return err
		}

		trade := posting.SecuritiesTrade{
			Statement:    st,
			Row:          row,
			Payment:      *payment,
			Fee:          feeRow,
			TypeCode:     trxType.Code,
			LedgerOpCode: classifyCode(ops, trxType.Code, payment.PaymentDescription),
		}

		if _, err := s.registrar.RegisterSecuritiesTrade(ctx, trade); err != nil {
			return err
		}

		result.Posted++
	}

	return nil
}

// processSplits pairs the two sides of each security split. The provider
// exports a split as one row removing the old position and one adding the
// new, sharing date, ticker, description and currency.
func (s *Service) processSplits(ctx context.Context, st *statement.Statement, result *Result) error {
	rows, err := s.repo.UnpostedSplitRows(ctx, st.ID)
	if err != nil {
		return fmt.Errorf("loading split rows: %w", err)
	}

	type splitKey struct {
		TransactionDate string
		Ticker          string
		Description     string
		Currency        string
	}

	type pair struct {
		minus *statement.ConsolidatedSecuRow
		plus  *statement.ConsolidatedSecuRow
	}

	pairs := make(map[splitKey]*pair)

	var order []splitKey

	for i := range rows {
		row := &rows[i]

		key := splitKey{
			TransactionDate: row.TransactionDate,
			Ticker:          row.Ticker,
			Description:     row.Description,
			Currency:        row.Currency,
		}

		p, ok := pairs[key]
		if !ok {
			p = &pair{}
			pairs[key] = p

			order = append(order, key)
		}

		switch row.Type {
		case secuTypeSplitMinus:
			p.minus = row
		case secuTypeSplitPlus:
			p.plus = row
		}
	}

	for _, key := range order {
		p := pairs[key]

		if p.minus == nil || p.plus == nil {
			s.logger.Warn("unpaired split row",
				"statement_id", st.ID, "ticker", key.Ticker, "date", key.TransactionDate)

			result.Unmatched++

			continue
		}

		trxType, err := s.resolver.SplitType(ctx)
		if err != nil {
			return err
		}

		sp := posting.Split{
			Statement: st,
			Minus:     *p.minus,
			Plus:      *p.plus,
			TypeCode:  trxType.Code,
		}

		if _, err := s.registrar.RegisterSplit(ctx, sp); err != nil {
			return err
		}

		result.Posted++
	}

	return nil
}

// Customer id lengths of the Estonian registers.
const (
	registrationNumberLen = 8
	nationalIDLen         = 11
)

// minAccountNumberLen is the shortest counterparty account considered real;
// shorter values are provider placeholders.
const minAccountNumberLen = 5

func (s *Service) processBank(ctx context.Context, st *statement.Statement, result *Result) error {
	rows, err := s.repo.UnpostedBankRows(ctx, st.ID)
	if err != nil {
		return fmt.Errorf("loading unposted bank rows: %w", err)
	}

	if len(rows) == 0 {
		return nil
	}

	ops, err := s.resolver.LedgerOpTypes(ctx)
	if err != nil {
		return err
	}

	for _, row := range rows {
		customer, err := s.lookupCustomer(ctx, &row)
		if err != nil {
			return fmt.Errorf("looking up customer for %s: %w", row.StatementReference, err)
		}

		if customer == nil {
			result.Unmatched++
			continue
		}

		trxType, err := s.resolver.CustomerPaymentType(ctx, flowOf(row.PaymentAmount))
		if err != nil {
			return err
		}

		cp := posting.CustomerPayment{
			Statement:         st,
			Row:               row,
			CustomerRowID:     customer.ID,
			CustomerReference: customer.Reference,
			TypeCode:          trxType.Code,
			LedgerOpCode:      classifyCode(ops, trxType.Code, row.PaymentDescription),
		}

		if _, err := s.registrar.RegisterCustomerPayment(ctx, cp); err != nil {
			return err
		}

		result.Posted++
	}

	return nil
}

// lookupCustomer resolves the counterparty of a bank row: by registration
// number or national id when the row carries one, otherwise by account number
// and name, falling back to account number and registered business name.
// A row without a usable account number stays unresolved; a name alone never
// identifies a customer.
func (s *Service) lookupCustomer(ctx context.Context, row *statement.ConsolidatedBankRow) (*Customer, error) {
	switch len(row.CustomerID) {
	case registrationNumberLen:
		return s.repo.CustomerByRegistrationNumber(ctx, row.CustomerID)
	case nationalIDLen:
		return s.repo.CustomerByNationalID(ctx, row.CustomerID)
	}

	if len(row.OtherSideAccount) <= minAccountNumberLen {
		return nil, nil
	}

	customer, err := s.repo.CustomerByAccount(ctx, row.OtherSideAccount, row.OtherSideName)
	if err != nil {
		return nil, err
	}

	if customer != nil {
		return customer, nil
	}

	return s.repo.CustomerByBusinessName(ctx, row.OtherSideAccount, row.OtherSideName)
}

const amountScale = 2

func flowOf(amount decimal.Decimal) Flow {
	if amount.Sign() > 0 {
		return FlowIn
	}

	return FlowOut
}

func classifyCode(ops []LedgerOpType, basisCode, freeText string) string {
	if op := Classify(ops, basisCode, freeText); op != nil {
		return op.Code
	}

	return ""
}
