package response

import (
	"time"

	"orcamento_api/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type BudgetTypeResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"budget_type_name"`
	BillingMethod string          `json:"billing_method"`
	Fee           decimal.Decimal `json:"fee"`
	Description   string          `json:"description,omitempty"`
	TargetEmail   string          `json:"target_email"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	DeletedAt     *time.Time      `json:"deleted_at,omitempty"`
}

func FromBudgetType(bt entities.BudgetType) BudgetTypeResponse {
	return BudgetTypeResponse{
		ID:            bt.ID,
		Name:          bt.Name,
		BillingMethod: string(bt.BillingMethod),
		Fee:           bt.Fee,
		Description:   bt.Description,
		TargetEmail:   bt.TargetEmail,
		CreatedAt:     bt.CreatedAt,
		UpdatedAt:     bt.UpdatedAt,
		DeletedAt:     bt.DeletedAt,
	}
}

func FromBudgetTypes(bts []entities.BudgetType) []BudgetTypeResponse {
	out := make([]BudgetTypeResponse, 0, len(bts))
	for _, bt := range bts {
		out = append(out, FromBudgetType(bt))
	}
	return out
}
