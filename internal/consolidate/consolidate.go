// Package consolidate aggregates raw statement rows into consolidated totals.
// Provider exports split a single logical transaction over several lines;
// rows sharing an identity tuple are merged into one row carrying summed
// amounts and the concatenated provider references.
package consolidate

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fiscaladmin/reconcile/internal/statement"
)

const (
	amountScale   = 2
	quantityScale = 6
)

type bankIdentity struct {
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
}

// Bank merges raw bank rows sharing the full payment identity. Input rows
// must come in sequence order; reference concatenation follows it. The output
// is ordered by payment date, direction and counterparty name, and numbered
// with statement references {refPrefix}.{seq}.
func Bank(statementID, refPrefix string, rows []statement.BankRow) ([]statement.ConsolidatedBankRow, error) {
	groups := make(map[bankIdentity]*statement.ConsolidatedBankRow)

	var order []bankIdentity

	for _, row := range rows {
		amount, err := parseAmount(row.PaymentAmount)
		if err != nil {
			return nil, fmt.Errorf("payment amount of row %s: %w", row.SequenceID, err)
		}

		fee, err := parseAmount(row.TransactionFee)
		if err != nil {
			return nil, fmt.Errorf("transaction fee of row %s: %w", row.SequenceID, err)
		}

		id := bankIdentity{
			AccountNumber:      row.AccountNumber,
			DocumentNr:         row.DocumentNr,
			PaymentDate:        row.PaymentDate,
			OtherSideAccount:   row.OtherSideAccount,
			OtherSideName:      row.OtherSideName,
			OtherSideBank:      row.OtherSideBank,
			DebitCredit:        row.DebitCredit,
			PaymentDescription: row.PaymentDescription,
			Currency:           row.Currency,
			CustomerID:         row.CustomerID,
			OtherSideBIC:       row.OtherSideBIC,
		}

		total, ok := groups[id]
		if !ok {
			total = &statement.ConsolidatedBankRow{
				ID:                 uuid.NewString(),
				StatementID:        statementID,
				AccountNumber:      id.AccountNumber,
				DocumentNr:         id.DocumentNr,
				PaymentDate:        id.PaymentDate,
				OtherSideAccount:   id.OtherSideAccount,
				OtherSideName:      id.OtherSideName,
				OtherSideBank:      id.OtherSideBank,
				DebitCredit:        id.DebitCredit,
				PaymentDescription: id.PaymentDescription,
				Currency:           id.Currency,
				CustomerID:         id.CustomerID,
				OtherSideBIC:       id.OtherSideBIC,
				Status:             statement.RowStatusNew,
			}
			groups[id] = total

			order = append(order, id)
		}

		total.PaymentAmount = total.PaymentAmount.Add(amount)
		total.TransactionFee = total.TransactionFee.Add(fee)
		total.ProviderReferences = appendRef(total.ProviderReferences, row.ProviderReference)
	}

	out := make([]statement.ConsolidatedBankRow, 0, len(order))

	for _, id := range order {
		total := groups[id]
		total.PaymentAmount = total.PaymentAmount.Round(amountScale)
		total.TransactionFee = total.TransactionFee.Round(amountScale)

		out = append(out, *total)
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.PaymentDate != b.PaymentDate {
			return a.PaymentDate < b.PaymentDate
		}

		if a.DebitCredit != b.DebitCredit {
			return a.DebitCredit < b.DebitCredit
		}

		return a.OtherSideName < b.OtherSideName
	})

	number(refPrefix, out)

	return out, nil
}

type secuIdentity struct {
	ValueDate       string
	TransactionDate string
	Type            string
	Ticker          string
	Description     string
	Currency        string
}

// Securities merges raw securities rows sharing the trade identity. The price
// of the merged row is the unweighted average of the contributing prices.
func Securities(statementID, refPrefix string, rows []statement.SecuRow) ([]statement.ConsolidatedSecuRow, error) {
	type group struct {
		total    *statement.ConsolidatedSecuRow
		priceSum decimal.Decimal
		count    int64
	}

	groups := make(map[secuIdentity]*group)

	var order []secuIdentity

	for _, row := range rows {
		quantity, err := parseAmount(row.Quantity)
		if err != nil {
			return nil, fmt.Errorf("quantity of row %s: %w", row.SequenceID, err)
		}

		price, err := parseAmount(row.Price)
		if err != nil {
			return nil, fmt.Errorf("price of row %s: %w", row.SequenceID, err)
		}

		amount, err := parseAmount(row.Amount)
		if err != nil {
			return nil, fmt.Errorf("amount of row %s: %w", row.SequenceID, err)
		}

		fee, err := parseAmount(row.Fee)
		if err != nil {
			return nil, fmt.Errorf("fee of row %s: %w", row.SequenceID, err)
		}

		totalAmount, err := parseAmount(row.TotalAmount)
		if err != nil {
			return nil, fmt.Errorf("total amount of row %s: %w", row.SequenceID, err)
		}

		id := secuIdentity{
			ValueDate:       row.ValueDate,
			TransactionDate: row.TransactionDate,
			Type:            row.Type,
			Ticker:          row.Ticker,
			Description:     row.Description,
			Currency:        row.Currency,
		}

		g, ok := groups[id]
		if !ok {
			g = &group{
				total: &statement.ConsolidatedSecuRow{
					ID:              uuid.NewString(),
					StatementID:     statementID,
					ValueDate:       id.ValueDate,
					TransactionDate: id.TransactionDate,
					Type:            id.Type,
					Ticker:          id.Ticker,
					Description:     id.Description,
					Currency:        id.Currency,
					Status:          statement.RowStatusNew,
				},
			}
			groups[id] = g

			order = append(order, id)
		}

		g.total.Quantity = g.total.Quantity.Add(quantity)
		g.total.Amount = g.total.Amount.Add(amount)
		g.total.Fee = g.total.Fee.Add(fee)
		g.total.TotalAmount = g.total.TotalAmount.Add(totalAmount)
		g.total.References = appendRef(g.total.References, row.Reference)
		g.priceSum = g.priceSum.Add(price)
		g.count++
	}

	out := make([]statement.ConsolidatedSecuRow, 0, len(order))

	for _, id := range order {
		g := groups[id]
		g.total.Quantity = g.total.Quantity.Round(quantityScale)
		g.total.Amount = g.total.Amount.Round(amountScale)
		g.total.Fee = g.total.Fee.Round(amountScale)
		g.total.TotalAmount = g.total.TotalAmount.Round(amountScale)
		g.total.Price = g.priceSum.DivRound(decimal.NewFromInt(g.count), amountScale)

		out = append(out, *g.total)
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.ValueDate != b.ValueDate {
			return a.ValueDate < b.ValueDate
		}

		if a.Type != b.Type {
			return a.Type < b.Type
		}

		return a.Ticker < b.Ticker
	})

	numberSecu(refPrefix, out)

	return out, nil
}

func number(refPrefix string, rows []statement.ConsolidatedBankRow) {
	for i := range rows {
		seq := statement.FormatSequenceID(i + 1)
		rows[i].SequenceID = seq
		rows[i].StatementReference = refPrefix + "." + seq
	}
}

func numberSecu(refPrefix string, rows []statement.ConsolidatedSecuRow) {
	for i := range rows {
		seq := statement.FormatSequenceID(i + 1)
		rows[i].SequenceID = seq
		rows[i].StatementReference = refPrefix + "." + seq
	}
}

func parseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing %q: %w", s, err)
	}

	return d, nil
}

func appendRef(existing, ref string) string {
	if ref == "" {
		return existing
	}

	if existing == "" {
		return ref
	}

	return existing + "," + ref
}
