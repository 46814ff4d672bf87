// Package posting turns recognized statement rows into immutable postings.
// A posting is written exactly once; the rows it settles are stamped with its
// id in the same database transaction, so a row can never be settled twice.
package posting

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fiscaladmin/reconcile/internal/statement"
)

// ErrOrphanedPosting is returned when the rows a posting should settle were
// changed or settled concurrently. The registering transaction rolls back,
// leaving no posting behind.
var ErrOrphanedPosting = errors.New("posting would be orphaned")

// Posting is one immutable ledger posting.
type Posting struct {
	ID                string
	AccPostDate       time.Time // accounting date, the day the posting was made
	StatementID       string
	AccountType       statement.AccountType
	TransactionType   string // internal transaction type code
	LedgerOperation   string // display refinement, empty when no rule matched
	BankPaymentRef    string // statement reference of the settled payment row
	FeePaymentRef     string // statement reference of the settled fee row
	TotalInBank       decimal.Decimal
	CustomerRowID     *string
	CustomerReference string
	CreatedAt         time.Time
}
