package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Common quote statuses. The field is free-form; these are the values the
// notification/mailing collaborator knows about.
const (
	QuoteStatusPending  = "PENDING"
	QuoteStatusReceived = "RECEIVED"
	QuoteStatusApproved = "APPROVED"
)

// QuoteRequest is a customer's request for a price estimate against a budget
// type.
//
// Storage model (MySQL, table quote_requests):
//   - PK: id (uuid)
//   - FK: budget_type_id -> budget_types.id (resolved once at creation time)
//   - deleted_at NULL means active, same semantics as BudgetType.
//
// FeeUsed and EstimatedTotal are snapshots of the rate applied when the quote
// was recorded; they do not follow later changes to the budget type's fee.
// The document fields only reference externally stored content, never the
// content itself.

type QuoteRequest struct {
	ID                   string
	BudgetTypeID         string
	RequesterName        string
	RequesterEmail       string
	DocumentOriginalName string
	DocumentStorageKey   string
	DocumentMimeType     string
	DocumentSizeBytes    int64
	BillingMethodUsed    BillingMethod
	FeeUsed              decimal.Decimal
	CountedUnits         int
	EstimatedTotal       decimal.Decimal
	Status               string
	CreatedAt            time.Time
	UpdatedAt            time.Time
	DeletedAt            *time.Time
}

// Deleted reports whether the record was soft-deleted.
func (q QuoteRequest) Deleted() bool {
	return q.DeletedAt != nil
}
