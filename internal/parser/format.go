package parser

import (
	"github.com/fiscaladmin/reconcile/internal/statement"
)

// Format identifies a supported statement CSV layout.
type Format string

const (
	FormatLHVBank       Format = "lhv_bank"
	FormatSwedbank      Format = "swedbank"
	FormatLHVSecurities Format = "lhv_secu"
)

// AccountType returns the account type a format's rows belong to.
func (f Format) AccountType() statement.AccountType {
	if f == FormatLHVSecurities {
		return statement.AccountTypeSecurities
	}

	return statement.AccountTypeBank
}

// Normalized bank column order, shared by all bank formats. LHV exports carry
// an empty 7th column which is dropped before mapping; Swedbank exports stop
// after BankColCustomerID, so the trailing columns read as empty there.
const (
	BankColAccountNumber = iota
	BankColDocumentNr
	BankColPaymentDate
	BankColOtherSideAccount
	BankColOtherSideName
	BankColOtherSideBank
	BankColDebitCredit
	BankColPaymentAmount
	BankColReferenceNumber
	BankColArchivalNumber
	BankColPaymentDescription
	BankColTransactionFee
	BankColCurrency
	BankColCustomerID
	BankColOtherSideBIC
	BankColInitiator
	BankColTransactionReference
	BankColProviderReference
)

// Securities column order.
const (
	SecuColValueDate = iota
	SecuColTransactionDate
	SecuColType
	SecuColTicker
	SecuColDescription
	SecuColQuantity
	SecuColPrice
	SecuColCurrency
	SecuColAmount
	SecuColFee
	SecuColTotalAmount
	SecuColReference
	SecuColComment
)

// Profile describes the dialect and shape of one statement export format.
// Adding a bank is adding a Profile here plus a column mapping in the importer.
type Profile struct {
	Format      Format
	Separator   rune
	headerWords []string // all must appear, lowercased, in the header line
	dropColumns []int    // raw CSV indices removed from every data row
}

// profiles is the ordered list of formats to try during detection.
// The semicolon-separated format is checked first; the two comma-separated
// formats are distinguished by their header vocabulary.
var profiles = []Profile{
	{
		Format:      FormatSwedbank,
		Separator:   ';',
		headerWords: []string{"kliendi konto", "dok nr", "makse kuupäev"},
	},
	{
		Format:      FormatLHVSecurities,
		Separator:   ',',
		headerWords: []string{"väärtuspäev", "tehingupäev", "tehing"},
	},
	{
		Format:      FormatLHVBank,
		Separator:   ',',
		headerWords: []string{"kliendi konto", "dokumendi number", "kuupäev"},
		dropColumns: []int{6},
	},
}
