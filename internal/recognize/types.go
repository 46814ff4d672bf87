// Package recognize matches consolidated statement rows to their internal
// transaction types and customers, and hands every successful match to the
// posting registrar. Rows it cannot match stay untouched and are retried on
// the next consolidation run.
package recognize

import (
	"strings"
)

// Flow is the money direction relative to the account holder.
type Flow string

const (
	FlowIn  Flow = "in"
	FlowOut Flow = "out"
)

// Asset type codes of the internal chart of accounts.
const (
	AssetTypeCash       = "CSH01"
	AssetTypeSecurities = "SCR01"
)

// Securities trade row types as the provider exports them.
const (
	secuTypeSplitMinus = "split-"
	secuTypeSplitPlus  = "split+"
)

// TransactionType is one row of the internal transaction type register.
// A consolidated row resolves to the type matching its source, direction,
// asset class and counterparty kind.
type TransactionType struct {
	ID         string
	Code       string
	Source     string // "bank" or "secu"
	Flow       Flow
	AssetType  string
	IsCustomer string // "yes" when the counterparty is a registered customer
}

// LedgerOpType refines a resolved transaction type into a display ledger
// operation based on the payment free text.
type LedgerOpType struct {
	ID            string
	Code          string
	BasisCode     string // transaction type code this rule applies to
	IncludedWords []string
	ExcludedWords []string
}

// Customer is the subset of the customer register recognition needs.
type Customer struct {
	ID                 string
	Reference          string
	Name               string
	RegistrationNumber string
	NationalID         string
	AccountNumber      string
}

// Classify picks the first ledger operation rule whose basis matches the
// resolved transaction type code and whose word lists accept the free text.
// A rule with no included words accepts any text; a rule with no excluded
// words excludes nothing. Free text of two characters or fewer is never
// classified.
func Classify(ops []LedgerOpType, basisCode, freeText string) *LedgerOpType {
	if len(freeText) <= 2 {
		return nil
	}

	lower := strings.ToLower(freeText)

	for i := range ops {
		op := &ops[i]

		if op.BasisCode != basisCode {
			continue
		}

		if len(op.IncludedWords) > 0 && !containsAny(lower, op.IncludedWords) {
			continue
		}

		if containsAny(lower, op.ExcludedWords) {
			continue
		}

		return op
	}

	return nil
}

func containsAny(lower string, words []string) bool {
	for _, w := range words {
		if w == "" {
			continue
		}

		if strings.Contains(lower, strings.ToLower(w)) {
			return true
		}
	}

	return false
}
