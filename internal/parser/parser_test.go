package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	lhvBankHeader  = `"Kliendi konto","Dokumendi number","Kuupäev","Saaja/maksja konto","Saaja/maksja nimi","Saaja panga kood","Tühi","Deebet/Kreedit","Summa","Viitenumber","Arhiveerimistunnus","Selgitus","Teenustasu","Valuuta","Isikukood või registrikood","Saaja panga BIC","Algataja","Ülekande viide","Tehingu viide"`
	swedbankHeader = `"Kliendi konto";"Dok nr";"Makse kuupäev";"Saaja/maksja konto";"Saaja/maksja nimi";"Saaja panga kood";"Deebet/Kreedit";"Summa";"Viitenumber";"Arhiveerimistunnus";"Selgitus";"Teenustasu";"Valuuta";"Isikukood või registrikood"`
	secuHeader     = `"Väärtuspäev","Tehingupäev","Tehing","Sümbol","Väärtpaber","Kogus","Hind","Valuuta","Summa","Teenustasu","Kokku","Viide","Kommentaar"`
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   Format
		err    error
	}{
		{
			name:   "lhv bank",
			header: lhvBankHeader,
			want:   FormatLHVBank,
		},
		{
			name:   "swedbank",
			header: swedbankHeader,
			want:   FormatSwedbank,
		},
		{
			name:   "lhv securities",
			header: secuHeader,
			want:   FormatLHVSecurities,
		},
		{
			name:   "unknown header",
			header: "Date,Amount,Currency",
			err:    ErrUnrecognizedFormat,
		},
		{
			name:   "empty header",
			header: "",
			err:    ErrUnrecognizedFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile, err := Detect(tt.header)
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, profile.Format)
		})
	}
}

func TestParse_LHVBankDropsEmptyColumn(t *testing.T) {
	input := lhvBankHeader + "\n" +
		`"EE111111111111111111","123","02.01.2024","EE222222222222222222","ACME OÜ","689",,"D","-588,74","","2024010200001","Arve 42","0,00","EUR","12345678","HABAEE2X","","","903867200"` + "\n"

	profile, rows, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, FormatLHVBank, profile.Format)
	require.Len(t, rows, 1)

	row := rows[0]
	require.Len(t, row, 18)

	assert.Equal(t, "EE111111111111111111", Cell(row, BankColAccountNumber))
	assert.Equal(t, "123", Cell(row, BankColDocumentNr))
	assert.Equal(t, "D", Cell(row, BankColDebitCredit))
	assert.Equal(t, "-588,74", Cell(row, BankColPaymentAmount))
	assert.Equal(t, "EUR", Cell(row, BankColCurrency))
	assert.Equal(t, "903867200", Cell(row, BankColProviderReference))
}

func TestParse_SwedbankSemicolon(t *testing.T) {
	input := swedbankHeader + "\n" +
		`"EE333333333333333333";"55";"05.01.2024";"EE444444444444444444";"Maksja AS";"767";"K";"120,00";"";"2024010500007";"Teenus";"0,00";"EUR";"87654321"` + "\n"

	profile, rows, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, FormatSwedbank, profile.Format)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, "EE333333333333333333", Cell(row, BankColAccountNumber))
	assert.Equal(t, "55", Cell(row, BankColDocumentNr))
	assert.Equal(t, "", Cell(row, BankColProviderReference))
}

func TestParse_SkipsEmptyRows(t *testing.T) {
	input := secuHeader + "\n" +
		"\n" +
		`"02.01.2024","02.01.2024","ost","LHV1T","LHV Group","257","3,5","EUR","-899,50","0,00","-899,50","903867200",""` + "\n" +
		`"","","","","","","","","","","","",""` + "\n"

	profile, rows, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, FormatLHVSecurities, profile.Format)
	require.Len(t, rows, 1)
	assert.Equal(t, "ost", Cell(rows[0], SecuColType))
}

func TestParse_UnrecognizedFormat(t *testing.T) {
	_, _, err := Parse(strings.NewReader("Date,Amount\n1,2\n"))
	require.ErrorIs(t, err, ErrUnrecognizedFormat)
}

func TestCell_OutOfRange(t *testing.T) {
	row := []string{"a", " b "}

	assert.Equal(t, "a", Cell(row, 0))
	assert.Equal(t, "b", Cell(row, 1))
	assert.Equal(t, "", Cell(row, 2))
	assert.Equal(t, "", Cell(row, -1))
}

func TestNormalizeAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"-588,74", "-588.74"},
		{"1 234,56", "1234.56"},
		{"1.234,56", "1234.56"},
		{"1000.50", "1000.50"},
		{"0", "0"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeAmount(tt.in))
		})
	}
}
