package statement

import "github.com/shopspring/decimal"

// RowStatus is the per-row lifecycle, independent of the statement's own
// status machine. Rows move new -> posted exactly once, driven by recognition.
type RowStatus string

const (
	RowStatusNew    RowStatus = "new"
	RowStatusPosted RowStatus = "posted"
)

// BankRow is one raw, as-imported bank statement line.
// Field values are carried as the CSV delivered them, except numeric fields,
// which the importer normalizes to plain decimal strings at the store boundary.
type BankRow struct {
	ID                   string
	StatementID          string
	SequenceID           string // zero-padded per-batch position, "001".."999"
	AccountNumber        string
	DocumentNr           string
	PaymentDate          string
	OtherSideAccount     string
	OtherSideName        string
	OtherSideBank        string
	DebitCredit          string
	PaymentAmount        string
	ReferenceNumber      string
	ArchivalNumber       string
	PaymentDescription   string
	TransactionFee       string
	Currency             string
	CustomerID           string
	OtherSideBIC         string
	Initiator            string
	TransactionReference string
	ProviderReference    string
}

// SecuRow is one raw, as-imported securities statement line.
type SecuRow struct {
	ID              string
	StatementID     string
	SequenceID      string
	ValueDate       string
	TransactionDate string
	Type            string
	Ticker          string
	Description     string
	Quantity        string
	Price           string
	Currency        string
	Amount          string
	Fee             string
	TotalAmount     string
	Reference       string
	Comment         string
}

// ConsolidatedBankRow is an aggregate of raw bank rows sharing the 11-field
// bank identity tuple. Amount fields are summed to 2 decimal places.
type ConsolidatedBankRow struct {
	ID                 string
	StatementID        string
	StatementReference string // {PREFIX}.{seq:03d}
	SequenceID         string
	AccountNumber      string
	DocumentNr         string
	PaymentDate        string
	OtherSideAccount   string
	OtherSideName      string
	OtherSideBank      string
	DebitCredit        string
	PaymentDescription string
	Currency           string
	CustomerID         string
	OtherSideBIC       string
	PaymentAmount      decimal.Decimal
	TransactionFee     decimal.Decimal
	ProviderReferences string // comma-joined, contributing rows in sequence order
	Status             RowStatus
	Type               string  // set to secupmt/secufee when matched to a securities trade
	TransactionType    string  // internal transaction type code, set by recognition
	PostingID          *string // set at most once, never cleared
	MainBankRowID      *string // on fee rows, the matched payment row
}

// ConsolidatedSecuRow is an aggregate of raw securities rows sharing the
// 6-field securities identity tuple. Quantity keeps 6 decimal places; the
// price is an unweighted average of the contributing prices.
type ConsolidatedSecuRow struct {
	ID                 string
	StatementID        string
	StatementReference string
	SequenceID         string
	ValueDate          string
	TransactionDate    string
	Type               string
	Ticker             string
	Description        string
	Currency           string
	Quantity           decimal.Decimal
	Price              decimal.Decimal
	Amount             decimal.Decimal
	Fee                decimal.Decimal
	TotalAmount        decimal.Decimal
	References         string
	Status             RowStatus
	TransactionType    string
	PostingID          *string
	BankPaymentRowID   *string
	BankFeeRowID       *string
}
