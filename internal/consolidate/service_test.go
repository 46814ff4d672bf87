package consolidate_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/fiscaladmin/reconcile/internal/consolidate"
	"github.com/fiscaladmin/reconcile/internal/statement"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestService_Run_Bank(t *testing.T) {
	ctrl := gomock.NewController(t)

	st := &statement.Statement{
		ID:          "st-1",
		AccountType: statement.AccountTypeBank,
		FromDate:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	rows := []statement.BankRow{
		bankRow("001", "7", "2024-01-02", "ACME", "D", "-100.00", "0", "EUR", "r1"),
		bankRow("002", "7", "2024-01-02", "ACME", "D", "-50.00", "0", "EUR", "r2"),
	}

	var stored []statement.ConsolidatedBankRow

	repo := consolidate.NewMockRepository(ctrl)
	repo.EXPECT().BankRows(gomock.Any(), "st-1").Return(rows, nil)
	repo.EXPECT().
		ReplaceBankTotals(gomock.Any(), "st-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, totals []statement.ConsolidatedBankRow) error {
			stored = totals
			return nil
		})

	svc := consolidate.NewService(repo, testLogger())

	result, err := svc.Run(context.Background(), st)
	require.NoError(t, err)
	assert.Equal(t, 1, result.TotalCount)

	require.Len(t, stored, 1)
	assert.Equal(t, "STMT2024.001", stored[0].StatementReference)
}

func TestService_Run_Securities(t *testing.T) {
	ctrl := gomock.NewController(t)

	st := &statement.Statement{
		ID:          "st-2",
		AccountType: statement.AccountTypeSecurities,
		FromDate:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	repo := consolidate.NewMockRepository(ctrl)
	repo.EXPECT().SecuRows(gomock.Any(), "st-2").Return([]statement.SecuRow{
		secuRow("001", "02.01.2024", "ost", "LHV1T", "257", "3.5", "-899.50", "0", "-899.50", "r1"),
	}, nil)
	repo.EXPECT().ReplaceSecuTotals(gomock.Any(), "st-2", gomock.Any()).Return(nil)

	svc := consolidate.NewService(repo, testLogger())

	result, err := svc.Run(context.Background(), st)
	require.NoError(t, err)
	assert.Equal(t, 1, result.TotalCount)
}

func TestService_Run_LoadError(t *testing.T) {
	ctrl := gomock.NewController(t)

	st := &statement.Statement{ID: "st-1", AccountType: statement.AccountTypeBank}

	repo := consolidate.NewMockRepository(ctrl)
	repo.EXPECT().BankRows(gomock.Any(), "st-1").Return(nil, errors.New("db down"))

	svc := consolidate.NewService(repo, testLogger())

	_, err := svc.Run(context.Background(), st)
	require.Error(t, err)
}
