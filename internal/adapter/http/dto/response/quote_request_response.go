package response

import (
	"time"

	"orcamento_api/internal/domain/entities"
	"orcamento_api/internal/usecase"
	"orcamento_api/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

type QuoteRequestResponse struct {
	ID                   string          `json:"id"`
	BudgetTypeID         string          `json:"budget_type_id"`
	RequesterName        string          `json:"requester_name"`
	RequesterEmail       string          `json:"requester_email,omitempty"`
	DocumentOriginalName string          `json:"document_original_name"`
	DocumentStorageKey   string          `json:"document_storage_key"`
	DocumentMimeType     string          `json:"document_mime_type,omitempty"`
	DocumentSizeBytes    int64           `json:"document_size_bytes"`
	BillingMethodUsed    string          `json:"billing_method_used"`
	FeeUsed              decimal.Decimal `json:"fee_used"`
	CountedUnits         int             `json:"counted_units"`
	EstimatedTotal       decimal.Decimal `json:"estimated_total"`
	Status               string          `json:"status"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
	DeletedAt            *time.Time      `json:"deleted_at,omitempty"`
}

func FromQuoteRequest(qr entities.QuoteRequest) QuoteRequestResponse {
	return QuoteRequestResponse{
		ID:                   qr.ID,
		BudgetTypeID:         qr.BudgetTypeID,
		RequesterName:        qr.RequesterName,
		RequesterEmail:       qr.RequesterEmail,
		DocumentOriginalName: qr.DocumentOriginalName,
		DocumentStorageKey:   qr.DocumentStorageKey,
		DocumentMimeType:     qr.DocumentMimeType,
		DocumentSizeBytes:    qr.DocumentSizeBytes,
		BillingMethodUsed:    string(qr.BillingMethodUsed),
		FeeUsed:              qr.FeeUsed,
		CountedUnits:         qr.CountedUnits,
		EstimatedTotal:       qr.EstimatedTotal,
		Status:               qr.Status,
		CreatedAt:            qr.CreatedAt,
		UpdatedAt:            qr.UpdatedAt,
		DeletedAt:            qr.DeletedAt,
	}
}

func FromQuoteRequests(qrs []entities.QuoteRequest) []QuoteRequestResponse {
	out := make([]QuoteRequestResponse, 0, len(qrs))
	for _, qr := range qrs {
		out = append(out, FromQuoteRequest(qr))
	}
	return out
}

// QuoteRequestPageResponse mirrors the paginated listing contract: zero-based
// page index, total counts and first/last markers.
type QuoteRequestPageResponse struct {
	Content       []QuoteRequestResponse `json:"content"`
	Page          int                    `json:"page"`
	Size          int                    `json:"size"`
	TotalElements int64                  `json:"total_elements"`
	TotalPages    int                    `json:"total_pages"`
	First         bool                   `json:"first"`
	Last          bool                   `json:"last"`
}

func FromQuoteRequestPage(p usecase.Page) QuoteRequestPageResponse {
	return QuoteRequestPageResponse{
		Content:       FromQuoteRequests(p.Content),
		Page:          p.Page,
		Size:          p.Size,
		TotalElements: p.TotalElements,
		TotalPages:    p.TotalPages,
		First:         p.First,
		Last:          p.Last,
	}
}

// DocumentUploadResponse carries a presigned upload slot back to the caller.
type DocumentUploadResponse struct {
	StorageKey string    `json:"storage_key"`
	URL        string    `json:"url"`
	Method     string    `json:"method"`
	ExpiresAt  time.Time `json:"expires_at"`
}

func FromDocumentUploadTicket(t interfaces.DocumentUploadTicket) DocumentUploadResponse {
	return DocumentUploadResponse{
		StorageKey: t.StorageKey,
		URL:        t.URL,
		Method:     t.Method,
		ExpiresAt:  t.ExpiresAt,
	}
}

// DocumentURLResponse carries a presigned download URL.
type DocumentURLResponse struct {
	URL string `json:"url"`
}
