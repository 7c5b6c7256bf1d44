package request

import (
	"orcamento_api/internal/usecase"

	"github.com/shopspring/decimal"
)

// QuoteRequestRequest is the payload for creating or updating a quote
// request. Monetary fields are pointers for the same zero-vs-missing reason
// as BudgetTypeRequest.
type QuoteRequestRequest struct {
	BudgetTypeID         string           `json:"budget_type_id" binding:"required,uuid"`
	RequesterName        string           `json:"requester_name" binding:"required,max=150"`
	RequesterEmail       string           `json:"requester_email" binding:"omitempty,email,max=254"`
	DocumentOriginalName string           `json:"document_original_name" binding:"required,max=255"`
	DocumentStorageKey   string           `json:"document_storage_key" binding:"required,max=500"`
	DocumentMimeType     string           `json:"document_mime_type" binding:"omitempty,max=100"`
	DocumentSizeBytes    int64            `json:"document_size_bytes" binding:"required,gt=0"`
	BillingMethodUsed    string           `json:"billing_method_used" binding:"required,max=10"`
	FeeUsed              *decimal.Decimal `json:"fee_used" binding:"required"`
	CountedUnits         int              `json:"counted_units" binding:"required,gte=1"`
	EstimatedTotal       *decimal.Decimal `json:"estimated_total" binding:"required"`
	Status               string           `json:"status" binding:"omitempty,max=30"`
}

func (r QuoteRequestRequest) ToInput() usecase.QuoteRequestInput {
	feeUsed := decimal.Zero
	if r.FeeUsed != nil {
		feeUsed = *r.FeeUsed
	}
	estimatedTotal := decimal.Zero
	if r.EstimatedTotal != nil {
		estimatedTotal = *r.EstimatedTotal
	}

	return usecase.QuoteRequestInput{
		BudgetTypeID:         r.BudgetTypeID,
		RequesterName:        r.RequesterName,
		RequesterEmail:       r.RequesterEmail,
		DocumentOriginalName: r.DocumentOriginalName,
		DocumentStorageKey:   r.DocumentStorageKey,
		DocumentMimeType:     r.DocumentMimeType,
		DocumentSizeBytes:    r.DocumentSizeBytes,
		BillingMethodUsed:    r.BillingMethodUsed,
		FeeUsed:              feeUsed,
		CountedUnits:         r.CountedUnits,
		EstimatedTotal:       estimatedTotal,
		Status:               r.Status,
	}
}

// DocumentUploadRequest asks for a presigned upload slot for a quote
// document.
type DocumentUploadRequest struct {
	FileName    string `json:"file_name" binding:"required,max=255"`
	ContentType string `json:"content_type" binding:"omitempty,max=100"`
}
