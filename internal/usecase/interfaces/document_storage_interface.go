package interfaces

import (
	"context"
	"time"
)

// DocumentUploadTicket is a short-lived authorization to upload one document
// to external storage. StorageKey is what the client later records on the
// quote request.
type DocumentUploadTicket struct {
	StorageKey string
	URL        string
	Method     string
	ExpiresAt  time.Time
}

// IDocumentStorage abstracts the external object store holding quote
// documents. The API never stores document content, only the storage key.

type IDocumentStorage interface {
	PresignUpload(ctx context.Context, fileName, contentType string) (DocumentUploadTicket, error)
	PresignDownload(ctx context.Context, storageKey string) (string, error)
}
