package posting_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/fiscaladmin/reconcile/internal/posting"
	"github.com/fiscaladmin/reconcile/internal/statement"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestService_RegisterSecuritiesTrade(t *testing.T) {
	ctrl := gomock.NewController(t)

	st := &statement.Statement{ID: "st-2", AccountType: statement.AccountTypeSecurities}

	trade := posting.SecuritiesTrade{
		Statement: st,
		Row: statement.ConsolidatedSecuRow{
			ID:                 "secu-1",
			StatementReference: "STMT2024.001",
			Amount:             decimal.RequireFromString("1000.00"),
			Fee:                decimal.RequireFromString("5.00"),
		},
		Payment: statement.ConsolidatedBankRow{
			ID:                 "bank-1",
			StatementReference: "STMT2024.007",
		},
		Fee: &statement.ConsolidatedBankRow{
			ID:                 "bank-2",
			StatementReference: "STMT2024.008",
		},
		TypeCode:     "SCRIN",
		LedgerOpCode: "SCRIN-DIV",
	}

	var captured *posting.Posting

	repo := posting.NewMockRepository(ctrl)
	repo.EXPECT().
		CreateSecuritiesPosting(gomock.Any(), gomock.Any(), "secu-1", "bank-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, p *posting.Posting, _, _ string, feeRowID *string) error {
			captured = p
			require.NotNil(t, feeRowID)
			assert.Equal(t, "bank-2", *feeRowID)
			return nil
		})

	svc := posting.NewService(repo, testLogger())

	p, err := svc.RegisterSecuritiesTrade(context.Background(), trade)
	require.NoError(t, err)
	require.Same(t, captured, p)

	assert.NotEmpty(t, p.ID)
	assert.False(t, p.AccPostDate.IsZero())
	assert.Equal(t, "st-2", p.StatementID)
	assert.Equal(t, "SCRIN", p.TransactionType)
	assert.Equal(t, "STMT2024.007", p.BankPaymentRef)
	assert.Equal(t, "STMT2024.008", p.FeePaymentRef)
	assert.True(t, p.TotalInBank.Equal(decimal.RequireFromString("1005.00")), "got %s", p.TotalInBank)
}

func TestService_RegisterSecuritiesTrade_NoFee(t *testing.T) {
	ctrl := gomock.NewController(t)

	trade := posting.SecuritiesTrade{
		Statement: &statement.Statement{ID: "st-2"},
		Row: statement.ConsolidatedSecuRow{
			ID:     "secu-1",
			Amount: decimal.RequireFromString("-899.50"),
		},
		Payment:  statement.ConsolidatedBankRow{ID: "bank-1", StatementReference: "STMT2024.003"},
		TypeCode: "SCROUT",
	}

	repo := posting.NewMockRepository(ctrl)
	repo.EXPECT().
		CreateSecuritiesPosting(gomock.Any(), gomock.Any(), "secu-1", "bank-1", nil).
		Return(nil)

	svc := posting.NewService(repo, testLogger())

	p, err := svc.RegisterSecuritiesTrade(context.Background(), trade)
	require.NoError(t, err)
	assert.Empty(t, p.FeePaymentRef)
	assert.True(t, p.TotalInBank.Equal(decimal.RequireFromString("-899.50")))
}

func TestService_RegisterSplit(t *testing.T) {
	ctrl := gomock.NewController(t)

	sp := posting.Split{
		Statement: &statement.Statement{ID: "st-2"},
		Minus:     statement.ConsolidatedSecuRow{ID: "secu-1", Ticker: "LHV1T"},
		Plus:      statement.ConsolidatedSecuRow{ID: "secu-2", Ticker: "LHV1T"},
		TypeCode:  "SL",
	}

	repo := posting.NewMockRepository(ctrl)
	repo.EXPECT().
		CreateSplitPosting(gomock.Any(), gomock.Any(), "secu-1", "secu-2").
		DoAndReturn(func(_ context.Context, p *posting.Posting, _, _ string) error {
			assert.Equal(t, "SL", p.TransactionType)
			return nil
		})

	svc := posting.NewService(repo, testLogger())

	_, err := svc.RegisterSplit(context.Background(), sp)
	require.NoError(t, err)
}

func TestService_RegisterCustomerPayment(t *testing.T) {
	ctrl := gomock.NewController(t)

	cp := posting.CustomerPayment{
		Statement: &statement.Statement{ID: "st-1", AccountType: statement.AccountTypeBank},
		Row: statement.ConsolidatedBankRow{
			ID:                 "bank-1",
			StatementReference: "STMT2024.004",
			PaymentAmount:      decimal.RequireFromString("120.00"),
			TransactionFee:     decimal.RequireFromString("0.16"),
		},
		CustomerRowID:     "cust-1",
		CustomerReference: "C-42",
		TypeCode:          "CSHIN",
		LedgerOpCode:      "CSHIN-INV",
	}

	repo := posting.NewMockRepository(ctrl)
	repo.EXPECT().
		CreateBankPosting(gomock.Any(), gomock.Any(), "bank-1").
		DoAndReturn(func(_ context.Context, p *posting.Posting, _ string) error {
			require.NotNil(t, p.CustomerRowID)
			assert.Equal(t, "cust-1", *p.CustomerRowID)
			assert.Equal(t, "C-42", p.CustomerReference)
			assert.True(t, p.TotalInBank.Equal(decimal.RequireFromString("120.16")))
			return nil
		})

	svc := posting.NewService(repo, testLogger())

	p, err := svc.RegisterCustomerPayment(context.Background(), cp)
	require.NoError(t, err)
	assert.Equal(t, "CSHIN", p.TransactionType)
	assert.Equal(t, "CSHIN-INV", p.LedgerOperation)
}

func TestService_RegisterCustomerPayment_RepoError(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := posting.NewMockRepository(ctrl)
	repo.EXPECT().
		CreateBankPosting(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(posting.ErrOrphanedPosting)

	svc := posting.NewService(repo, testLogger())

	_, err := svc.RegisterCustomerPayment(context.Background(), posting.CustomerPayment{
		Statement: &statement.Statement{ID: "st-1"},
		Row:       statement.ConsolidatedBankRow{ID: "bank-1"},
	})
	require.ErrorIs(t, err, posting.ErrOrphanedPosting)
}
