package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// BudgetType is a billable category of translation work (orçamento type).
//
// Storage model (MySQL, table budget_types):
//   - PK: id (uuid)
//   - deleted_at NULL means the record is active and visible to default reads.
//
// Monetary representation:
//   - Fee is the rate charged per counted unit of the billing method,
//     persisted as decimal(12,2).

type BudgetType struct {
	ID            string
	Name          string
	BillingMethod BillingMethod
	Fee           decimal.Decimal
	Description   string
	TargetEmail   string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     *time.Time
}

// Deleted reports whether the record was soft-deleted.
func (b BudgetType) Deleted() bool {
	return b.DeletedAt != nil
}
