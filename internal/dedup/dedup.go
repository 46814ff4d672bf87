// Package dedup filters statement rows that were already imported, either in
// the same file or in an earlier overlapping statement. Rows are identified by
// the provider's transaction reference when present, with a composite key
// fallback for rows the provider exported without one.
package dedup

import (
	"strings"

	"github.com/fiscaladmin/reconcile/internal/parser"
	"github.com/fiscaladmin/reconcile/internal/statement"
)

// Result holds the outcome of a duplicate check over one parsed statement.
// NonDuplicates preserves the input row order.
type Result struct {
	NonDuplicates  [][]string
	DuplicateCount int
	TotalCount     int
}

// Check walks the parsed rows in order and drops every row whose key was
// already seen, either in the existing key set or earlier in the same batch.
func Check(rows [][]string, accountType statement.AccountType, existing map[string]struct{}) Result {
	keyFn := BankKey
	if accountType == statement.AccountTypeSecurities {
		keyFn = SecuKey
	}

	seen := make(map[string]struct{}, len(existing)+len(rows))
	for k := range existing {
		seen[k] = struct{}{}
	}

	result := Result{
		NonDuplicates: make([][]string, 0, len(rows)),
		TotalCount:    len(rows),
	}

	for _, row := range rows {
		key := keyFn(row)

		if _, ok := seen[key]; ok {
			result.DuplicateCount++
			continue
		}

		seen[key] = struct{}{}
		result.NonDuplicates = append(result.NonDuplicates, row)
	}

	return result
}

// BankKey returns the duplicate key for a parsed bank statement row: the
// provider reference when present, otherwise a composite of the fields that
// identify a payment.
func BankKey(row []string) string {
	if ref := parser.Cell(row, parser.BankColProviderReference); ref != "" {
		return ref
	}

	return BankKeyFromParts(
		"",
		parser.Cell(row, parser.BankColAccountNumber),
		parser.Cell(row, parser.BankColDocumentNr),
		parser.Cell(row, parser.BankColPaymentDate),
		parser.NormalizeAmount(parser.Cell(row, parser.BankColPaymentAmount)),
		parser.Cell(row, parser.BankColCurrency),
	)
}

// SecuKey returns the duplicate key for a parsed securities statement row.
func SecuKey(row []string) string {
	if ref := parser.Cell(row, parser.SecuColReference); ref != "" {
		return ref
	}

	return SecuKeyFromParts(
		"",
		parser.Cell(row, parser.SecuColValueDate),
		parser.Cell(row, parser.SecuColTransactionDate),
		parser.Cell(row, parser.SecuColType),
		parser.Cell(row, parser.SecuColTicker),
		parser.NormalizeAmount(parser.Cell(row, parser.SecuColAmount)),
		parser.Cell(row, parser.SecuColCurrency),
	)
}

// BankKeyFromParts builds the key for an already stored bank row. The parts
// must come in normalized form, matching what the importer wrote.
func BankKeyFromParts(providerReference, accountNumber, documentNr, paymentDate, paymentAmount, currency string) string {
	if ref := strings.TrimSpace(providerReference); ref != "" {
		return ref
	}

	return compose(accountNumber, documentNr, paymentDate, paymentAmount, currency)
}

// SecuKeyFromParts builds the key for an already stored securities row.
func SecuKeyFromParts(reference, valueDate, transactionDate, transactionType, ticker, amount, currency string) string {
	if ref := strings.TrimSpace(reference); ref != "" {
		return ref
	}

	return compose(valueDate, transactionDate, transactionType, ticker, amount, currency)
}

func compose(parts ...string) string {
	var b strings.Builder

	for _, p := range parts {
		b.WriteString(strings.TrimSpace(p))
		b.WriteByte('|')
	}

	return b.String()
}
