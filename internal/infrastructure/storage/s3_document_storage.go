package storage

import (
	"context"
	"errors"
	"os"
	"path"
	"time"

	"orcamento_api/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

const presignExpiry = 15 * time.Minute

// S3DocumentStorage issues presigned URLs for quote documents. The API never
// proxies document bytes; clients upload and download straight against the
// bucket and only the storage key travels through the quote request.

type S3DocumentStorage struct {
	presigner *s3.PresignClient
	bucket    string
}

var _ interfaces.IDocumentStorage = (*S3DocumentStorage)(nil)

func NewS3DocumentStorage(client *s3.Client) (*S3DocumentStorage, error) {
	bucket := os.Getenv("DOCUMENTS_BUCKET")
	if bucket == "" {
		return nil, errors.New("DOCUMENTS_BUCKET is not set")
	}

	return &S3DocumentStorage{
		presigner: s3.NewPresignClient(client),
		bucket:    bucket,
	}, nil
}

func (s *S3DocumentStorage) PresignUpload(ctx context.Context, fileName, contentType string) (interfaces.DocumentUploadTicket, error) {
	// The uuid prefix keeps keys collision-free; the original base name is
	// kept so operators can recognize objects in the bucket.
	key := path.Join("quote-documents", uuid.NewString(), path.Base(fileName))

	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	req, err := s.presigner.PresignPutObject(ctx, input, s3.WithPresignExpires(presignExpiry))
	if err != nil {
		return interfaces.DocumentUploadTicket{}, err
	}

	return interfaces.DocumentUploadTicket{
		StorageKey: key,
		URL:        req.URL,
		Method:     req.Method,
		ExpiresAt:  time.Now().UTC().Add(presignExpiry),
	}, nil
}

func (s *S3DocumentStorage) PresignDownload(ctx context.Context, storageKey string) (string, error) {
	req, err := s.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(storageKey),
	}, s3.WithPresignExpires(presignExpiry))
	if err != nil {
		return "", err
	}
	return req.URL, nil
}
