package response

import (
	"testing"
	"time"

	"orcamento_api/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestFromBudgetType(t *testing.T) {
	now := time.Now().UTC()
	deletedAt := now.Add(time.Hour)
	bt := entities.BudgetType{
		ID:            "bt-1",
		Name:          "Tradução Juramentada",
		BillingMethod: entities.BillingMethodPage,
		Fee:           decimal.RequireFromString("12.50"),
		Description:   "Tradução com fé pública",
		TargetEmail:   "juramentada@orcamento.com",
		CreatedAt:     now,
		UpdatedAt:     now,
		DeletedAt:     &deletedAt,
	}

	res := FromBudgetType(bt)
	if res.ID != "bt-1" || res.Name != "Tradução Juramentada" {
		t.Fatalf("unexpected identity fields: %+v", res)
	}
	if res.BillingMethod != "PAGE" {
		t.Fatalf("expected PAGE, got %q", res.BillingMethod)
	}
	if !res.Fee.Equal(bt.Fee) {
		t.Fatalf("unexpected fee: %s", res.Fee)
	}
	if res.DeletedAt == nil || !res.DeletedAt.Equal(deletedAt) {
		t.Fatalf("expected deleted_at carried through, got %v", res.DeletedAt)
	}
}

func TestFromBudgetTypes_Empty(t *testing.T) {
	res := FromBudgetTypes(nil)
	if res == nil || len(res) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v", res)
	}
}
