package interfaces

import (
	"context"

	"orcamento_api/internal/domain/entities"
)

// IQuoteRequestRepository abstracts MySQL persistence for QuoteRequest.
//
// Same conventions as IBudgetTypeRepository: zero-value entity + nil error for
// absent rows, explicit deleted_at filtering inside each read helper.
//
// FindPage returns one page of rows plus the total row count for the given
// visibility. sortBy is a whitelist-mapped API field name; unknown fields fall
// back to creation time. offset/limit are plain SQL offset and page size.

type IQuoteRequestRepository interface {
	Create(ctx context.Context, qr entities.QuoteRequest) (entities.QuoteRequest, error)
	Save(ctx context.Context, qr entities.QuoteRequest) (entities.QuoteRequest, error)
	FindActive(ctx context.Context) ([]entities.QuoteRequest, error)
	FindDeleted(ctx context.Context) ([]entities.QuoteRequest, error)
	FindActiveByID(ctx context.Context, id string) (entities.QuoteRequest, error)
	FindPage(ctx context.Context, deleted bool, offset, limit int, sortBy string, asc bool) ([]entities.QuoteRequest, int64, error)
}
