package statement

import (
	"errors"
	"fmt"
	"time"
)

// AccountType distinguishes bank statements from securities statements.
type AccountType string

const (
	AccountTypeBank       AccountType = "bank"
	AccountTypeSecurities AccountType = "secu"
)

// Status represents the lifecycle state of a statement. Transitions are
// one-directional; there is no rollback to an earlier state.
type Status string

const (
	StatusNew           Status = "new"
	StatusImporting     Status = "importing"
	StatusImported      Status = "imported"
	StatusConsolidating Status = "consolidating"
	StatusConsolidated  Status = "consolidated"
	StatusError         Status = "error"
)

// EntityType identifies the kind of record a status transition applies to.
type EntityType string

const EntityTypeStatement EntityType = "statement"

var (
	ErrNotFound         = errors.New("statement not found")
	ErrTransitionDenied = errors.New("status transition denied")
)

// maxErrorMessageLen bounds the error_message column on the statement.
const maxErrorMessageLen = 1000

// Statement represents one uploaded statement file covering a period.
type Statement struct {
	ID             string
	AccountType    AccountType
	BankID         string
	BankCode       string // SWIFT/BIC of the issuing bank
	FileName       string
	FromDate       time.Time
	ToDate         time.Time
	Status         Status
	RowCount       int
	DuplicateCount int
	TotalCount     int
	ErrorMessage   string
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}

// predecessors lists the states a target status may be entered from.
// Settled states (imported, consolidated) may re-enter importing, so a
// statement can run the full pipeline again; the import purge makes the
// re-run idempotent. StatusError is reachable from every state except
// itself.
var predecessors = map[Status][]Status{
	StatusImporting:     {StatusNew, StatusError, StatusImported, StatusConsolidated},
	StatusImported:      {StatusImporting},
	StatusConsolidating: {StatusImported, StatusConsolidated},
	StatusConsolidated:  {StatusConsolidating},
	StatusError: {
		StatusNew, StatusImporting, StatusImported,
		StatusConsolidating, StatusConsolidated,
	},
}

// AllowedFrom returns the states from which a transition to target is legal.
func AllowedFrom(target Status) ([]Status, error) {
	from, ok := predecessors[target]
	if !ok {
		return nil, fmt.Errorf("%w: no transition into %q", ErrTransitionDenied, target)
	}

	return from, nil
}

// CanTransition reports whether from -> to is a legal transition.
func CanTransition(from, to Status) bool {
	allowed, err := AllowedFrom(to)
	if err != nil {
		return false
	}

	for _, s := range allowed {
		if s == from {
			return true
		}
	}

	return false
}

// TruncateErrorMessage bounds a failure message to what the statement
// record can hold. The full cause stays in the logs.
func TruncateErrorMessage(msg string) string {
	if msg == "" {
		return "unknown error"
	}

	if len(msg) > maxErrorMessageLen {
		return msg[:maxErrorMessageLen]
	}

	return msg
}

// RefPrefix derives the statement reference prefix from the period start,
// e.g. 2024-06-01 -> "STMT2024". A zero from-date falls back to the current year.
func RefPrefix(fromDate time.Time) string {
	if fromDate.IsZero() {
		fromDate = time.Now()
	}

	return fmt.Sprintf("STMT%04d", fromDate.Year())
}

// FormatSequenceID renders a per-batch sequence number as a zero-padded
// 3-digit string: 1 -> "001", 161 -> "161".
func FormatSequenceID(seq int) string {
	return fmt.Sprintf("%03d", seq)
}
