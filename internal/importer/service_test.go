package importer_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/fiscaladmin/reconcile/internal/importer"
	"github.com/fiscaladmin/reconcile/internal/parser"
	"github.com/fiscaladmin/reconcile/internal/statement"
)

const bankCSV = `"Kliendi konto","Dokumendi number","Kuupäev","Saaja/maksja konto","Saaja/maksja nimi","Saaja panga kood","Tühi","Deebet/Kreedit","Summa","Viitenumber","Arhiveerimistunnus","Selgitus","Teenustasu","Valuuta","Isikukood või registrikood","Saaja panga BIC","Algataja","Ülekande viide","Tehingu viide"
"EE11","1","02.01.2024","EE22","ACME OÜ","689",,"D","-588,74","","A1","Arve 42","0,00","EUR","12345678","HABAEE2X","","","ref-1"
"EE11","2","03.01.2024","EE33","Teine AS","767",,"K","120,00","","A2","Teenus","0,00","EUR","87654321","EEUHEE2X","","","ref-2"
"EE11","1","02.01.2024","EE22","ACME OÜ","689",,"D","-588,74","","A1","Arve 42","0,00","EUR","12345678","HABAEE2X","","","ref-1"
`

const secuCSV = `"Väärtuspäev","Tehingupäev","Tehing","Sümbol","Väärtpaber","Kogus","Hind","Valuuta","Summa","Teenustasu","Kokku","Viide","Kommentaar"
"02.01.2024","02.01.2024","ost","LHV1T","LHV Group","257","3,5","EUR","-899,50","0,00","-899,50","903867200",""
`

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func bankStatement() *statement.Statement {
	return &statement.Statement{
		ID:          "st-1",
		AccountType: statement.AccountTypeBank,
		FileName:    "jaanuar.csv",
		FromDate:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		ToDate:      time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
		Status:      statement.StatusImporting,
	}
}

func TestService_Run_Bank(t *testing.T) {
	ctrl := gomock.NewController(t)

	st := bankStatement()

	var inserted []statement.BankRow

	itx := importer.NewMockImportTx(ctrl)
	itx.EXPECT().Purge(gomock.Any()).Return(nil)
	itx.EXPECT().ExistingBankKeys(gomock.Any()).Return(map[string]struct{}{"ref-2": {}}, nil)
	itx.EXPECT().
		InsertBankRows(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rows []statement.BankRow) error {
			inserted = rows
			return nil
		})
	itx.EXPECT().Commit().Return(nil)
	itx.EXPECT().Rollback().Return(nil).AnyTimes()

	repo := importer.NewMockRepository(ctrl)
	repo.EXPECT().BeginImport(gomock.Any(), st).Return(itx, nil)

	source := importer.NewMockSource(ctrl)
	source.EXPECT().
		Open(gomock.Any(), "jaanuar.csv").
		Return(io.NopCloser(strings.NewReader(bankCSV)), nil)

	svc := importer.NewService(repo, source, testLogger())

	result, err := svc.Run(context.Background(), st)
	require.NoError(t, err)

	// 3 parsed rows: one repeats within the file, one matches an existing key.
	assert.Equal(t, parser.FormatLHVBank, result.Format)
	assert.Equal(t, 1, result.RowCount)
	assert.Equal(t, 2, result.DuplicateCount)
	assert.Equal(t, 3, result.TotalCount)

	require.Len(t, inserted, 1)
	row := inserted[0]
	assert.Equal(t, "st-1", row.StatementID)
	assert.Equal(t, "001", row.SequenceID)
	assert.NotEmpty(t, row.ID)
	assert.Equal(t, "-588.74", row.PaymentAmount)
	assert.Equal(t, "ref-1", row.ProviderReference)
}

func TestService_Run_Securities(t *testing.T) {
	ctrl := gomock.NewController(t)

	st := &statement.Statement{
		ID:          "st-2",
		AccountType: statement.AccountTypeSecurities,
		FileName:    "secu.csv",
		FromDate:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		ToDate:      time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
	}

	var inserted []statement.SecuRow

	itx := importer.NewMockImportTx(ctrl)
	itx.EXPECT().Purge(gomock.Any()).Return(nil)
	itx.EXPECT().ExistingSecuKeys(gomock.Any()).Return(nil, nil)
	itx.EXPECT().
		InsertSecuRows(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rows []statement.SecuRow) error {
			inserted = rows
			return nil
		})
	itx.EXPECT().Commit().Return(nil)
	itx.EXPECT().Rollback().Return(nil).AnyTimes()

	repo := importer.NewMockRepository(ctrl)
	repo.EXPECT().BeginImport(gomock.Any(), st).Return(itx, nil)

	source := importer.NewMockSource(ctrl)
	source.EXPECT().
		Open(gomock.Any(), "secu.csv").
		Return(io.NopCloser(strings.NewReader(secuCSV)), nil)

	svc := importer.NewService(repo, source, testLogger())

	result, err := svc.Run(context.Background(), st)
	require.NoError(t, err)
	assert.Equal(t, 1, result.RowCount)
	assert.Equal(t, 0, result.DuplicateCount)

	require.Len(t, inserted, 1)
	row := inserted[0]
	assert.Equal(t, "257", row.Quantity)
	assert.Equal(t, "3.5", row.Price)
	assert.Equal(t, "-899.50", row.Amount)
	assert.Equal(t, "903867200", row.Reference)
}

func TestService_Run_AccountTypeMismatch(t *testing.T) {
	ctrl := gomock.NewController(t)

	st := bankStatement()
	st.AccountType = statement.AccountTypeSecurities

	repo := importer.NewMockRepository(ctrl)

	source := importer.NewMockSource(ctrl)
	source.EXPECT().
		Open(gomock.Any(), "jaanuar.csv").
		Return(io.NopCloser(strings.NewReader(bankCSV)), nil)

	svc := importer.NewService(repo, source, testLogger())

	_, err := svc.Run(context.Background(), st)
	require.ErrorIs(t, err, importer.ErrAccountTypeMismatch)
}

func TestService_Run_SourceError(t *testing.T) {
	ctrl := gomock.NewController(t)

	st := bankStatement()

	repo := importer.NewMockRepository(ctrl)

	source := importer.NewMockSource(ctrl)
	source.EXPECT().
		Open(gomock.Any(), "jaanuar.csv").
		Return(nil, errors.New("no such file"))

	svc := importer.NewService(repo, source, testLogger())

	_, err := svc.Run(context.Background(), st)
	require.Error(t, err)
}

func TestService_Run_InsertFailureRollsBack(t *testing.T) {
	ctrl := gomock.NewController(t)

	st := bankStatement()

	itx := importer.NewMockImportTx(ctrl)
	itx.EXPECT().Purge(gomock.Any()).Return(nil)
	itx.EXPECT().ExistingBankKeys(gomock.Any()).Return(nil, nil)
	itx.EXPECT().InsertBankRows(gomock.Any(), gomock.Any()).Return(errors.New("db down"))
	itx.EXPECT().Rollback().Return(nil)

	repo := importer.NewMockRepository(ctrl)
	repo.EXPECT().BeginImport(gomock.Any(), st).Return(itx, nil)

	source := importer.NewMockSource(ctrl)
	source.EXPECT().
		Open(gomock.Any(), "jaanuar.csv").
		Return(io.NopCloser(strings.NewReader(bankCSV)), nil)

	svc := importer.NewService(repo, source, testLogger())

	_, err := svc.Run(context.Background(), st)
	require.Error(t, err)
}
