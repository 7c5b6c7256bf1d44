package request

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestQuoteRequestRequest_ToInput(t *testing.T) {
	fee := decimal.RequireFromString("0.30")
	total := decimal.RequireFromString("360.00")
	r := QuoteRequestRequest{
		BudgetTypeID:         "5f3a3b9e-9c1d-4be1-9e6c-2b6a3b1f8a10",
		RequesterName:        "Maria Souza",
		DocumentOriginalName: "contrato.pdf",
		DocumentStorageKey:   "quote-documents/x/contrato.pdf",
		DocumentSizeBytes:    2048,
		BillingMethodUsed:    "W",
		FeeUsed:              &fee,
		CountedUnits:         1200,
		EstimatedTotal:       &total,
	}

	in := r.ToInput()
	if in.BudgetTypeID != r.BudgetTypeID || in.RequesterName != "Maria Souza" {
		t.Fatalf("unexpected input: %+v", in)
	}
	if !in.FeeUsed.Equal(fee) || !in.EstimatedTotal.Equal(total) {
		t.Fatalf("unexpected monetary fields: %+v", in)
	}
}

func TestQuoteRequestRequest_ToInput_NilMoney(t *testing.T) {
	in := QuoteRequestRequest{}.ToInput()
	if !in.FeeUsed.Equal(decimal.Zero) || !in.EstimatedTotal.Equal(decimal.Zero) {
		t.Fatalf("expected zero monetary defaults, got %+v", in)
	}
}

func TestBudgetTypeRequest_ToInput(t *testing.T) {
	fee := decimal.RequireFromString("0.30")
	r := BudgetTypeRequest{
		Name:          "Tradução Juramentada",
		BillingMethod: "PG",
		Fee:           &fee,
		TargetEmail:   "juramentada@orcamento.com",
	}

	in := r.ToInput()
	if in.Name != "Tradução Juramentada" || in.BillingMethod != "PG" {
		t.Fatalf("unexpected input: %+v", in)
	}
	if !in.Fee.Equal(fee) {
		t.Fatalf("unexpected fee: %s", in.Fee)
	}

	in2 := BudgetTypeRequest{}.ToInput()
	if !in2.Fee.Equal(decimal.Zero) {
		t.Fatalf("expected zero fee default, got %s", in2.Fee)
	}
}
