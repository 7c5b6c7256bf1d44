package request

import (
	"orcamento_api/internal/usecase"

	"github.com/shopspring/decimal"
)

// BudgetTypeRequest is the payload for creating or updating a budget type.
// Fee is a pointer so that an explicit zero fee passes the required check.
type BudgetTypeRequest struct {
	Name          string           `json:"budget_type_name" binding:"required,max=100"`
	BillingMethod string           `json:"billing_method" binding:"required,max=10"`
	Fee           *decimal.Decimal `json:"fee" binding:"required"`
	Description   string           `json:"description" binding:"omitempty,max=500"`
	TargetEmail   string           `json:"target_email" binding:"required,email,max=254"`
}

func (r BudgetTypeRequest) ToInput() usecase.BudgetTypeInput {
	fee := decimal.Zero
	if r.Fee != nil {
		fee = *r.Fee
	}

	return usecase.BudgetTypeInput{
		Name:          r.Name,
		BillingMethod: r.BillingMethod,
		Fee:           fee,
		Description:   r.Description,
		TargetEmail:   r.TargetEmail,
	}
}
