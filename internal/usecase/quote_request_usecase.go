package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"
	"unicode/utf8"

	"orcamento_api/internal/domain/entities"
	"orcamento_api/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrQuoteRequestNotFound       = errors.New("quote request not found or deleted")
	ErrInvalidQuoteRequestID      = errors.New("invalid quote request id")
	ErrInvalidBudgetTypeRef       = errors.New("budget type reference does not resolve")
	ErrInvalidRequesterName       = errors.New("invalid requester name")
	ErrInvalidRequesterEmail      = errors.New("invalid requester email")
	ErrInvalidDocumentName        = errors.New("invalid document original name")
	ErrInvalidDocumentStorageKey  = errors.New("invalid document storage key")
	ErrInvalidDocumentMimeType    = errors.New("invalid document mime type")
	ErrInvalidDocumentSize        = errors.New("invalid document size")
	ErrInvalidFeeUsed             = errors.New("invalid fee used")
	ErrInvalidCountedUnits        = errors.New("invalid counted units")
	ErrInvalidEstimatedTotal      = errors.New("invalid estimated total")
	ErrInvalidStatus              = errors.New("invalid status")
	ErrInvalidPageRequest         = errors.New("invalid page request")
	ErrDocumentStorageUnavailable = errors.New("document storage not configured")
)

const (
	maxRequesterNameLen      = 150
	maxDocumentNameLen       = 255
	maxDocumentStorageKeyLen = 500
	maxDocumentMimeTypeLen   = 100
	maxStatusLen             = 30
)

// QuoteRequestInput carries the mutable fields of a quote request.
// BillingMethodUsed is the raw user-supplied code. EstimatedTotal is accepted
// as given: the caller computes fee_used × counted_units and the service only
// checks non-negativity, it never recomputes the arithmetic.
type QuoteRequestInput struct {
	BudgetTypeID         string
	RequesterName        string
	RequesterEmail       string
	DocumentOriginalName string
	DocumentStorageKey   string
	DocumentMimeType     string
	DocumentSizeBytes    int64
	BillingMethodUsed    string
	FeeUsed              decimal.Decimal
	CountedUnits         int
	EstimatedTotal       decimal.Decimal
	Status               string
}

// PageQuery is a zero-based page request. Direction "asc" (case-insensitive)
// sorts ascending; anything else, including absence, sorts descending.
type PageQuery struct {
	Page      int
	Size      int
	SortBy    string
	Direction string
}

// Page is one page of quote requests plus the totals the listing contract
// requires. First is true on page 0; Last on totalPages-1, or on page 0 when
// there are no elements at all.
type Page struct {
	Content       []entities.QuoteRequest
	Page          int
	Size          int
	TotalElements int64
	TotalPages    int
	First         bool
	Last          bool
}

// IQuoteRequestUseCase exposes the quote request operations.
//
// Create resolves the budget-type reference (without filtering on its
// deleted_at, see the repository interface), persists the quote, and then
// dispatches a "quote created" notification. Notification failures never
// propagate: the quote is already durable and is returned regardless.

type IQuoteRequestUseCase interface {
	List(ctx context.Context) ([]entities.QuoteRequest, error)
	ListDeleted(ctx context.Context) ([]entities.QuoteRequest, error)
	ListPaginated(ctx context.Context, q PageQuery) (Page, error)
	ListDeletedPaginated(ctx context.Context, q PageQuery) (Page, error)
	GetByID(ctx context.Context, id string) (entities.QuoteRequest, error)
	Create(ctx context.Context, in QuoteRequestInput) (entities.QuoteRequest, error)
	Update(ctx context.Context, id string, in QuoteRequestInput) (entities.QuoteRequest, error)
	SoftDelete(ctx context.Context, id string) error
	CreateDocumentUploadURL(ctx context.Context, fileName, contentType string) (interfaces.DocumentUploadTicket, error)
	GetDocumentDownloadURL(ctx context.Context, id string) (string, error)
}

type QuoteRequestUseCase struct {
	repo           interfaces.IQuoteRequestRepository
	budgetTypeRepo interfaces.IBudgetTypeRepository
	publisher      interfaces.INotificationPublisher
	storage        interfaces.IDocumentStorage
}

var _ IQuoteRequestUseCase = (*QuoteRequestUseCase)(nil)

func NewQuoteRequestUseCase(
	repo interfaces.IQuoteRequestRepository,
	budgetTypeRepo interfaces.IBudgetTypeRepository,
	publisher interfaces.INotificationPublisher,
	storage interfaces.IDocumentStorage,
) *QuoteRequestUseCase {
	return &QuoteRequestUseCase{repo: repo, budgetTypeRepo: budgetTypeRepo, publisher: publisher, storage: storage}
}

func (u *QuoteRequestUseCase) List(ctx context.Context) ([]entities.QuoteRequest, error) {
	return u.repo.FindActive(ctx)
}

func (u *QuoteRequestUseCase) ListDeleted(ctx context.Context) ([]entities.QuoteRequest, error) {
	return u.repo.FindDeleted(ctx)
}

func (u *QuoteRequestUseCase) ListPaginated(ctx context.Context, q PageQuery) (Page, error) {
	return u.findPage(ctx, false, q)
}

func (u *QuoteRequestUseCase) ListDeletedPaginated(ctx context.Context, q PageQuery) (Page, error) {
	return u.findPage(ctx, true, q)
}

func (u *QuoteRequestUseCase) findPage(ctx context.Context, deleted bool, q PageQuery) (Page, error) {
	if q.Page < 0 || q.Size < 1 {
		return Page{}, ErrInvalidPageRequest
	}

	asc := strings.EqualFold(q.Direction, "asc")
	items, total, err := u.repo.FindPage(ctx, deleted, q.Page*q.Size, q.Size, q.SortBy, asc)
	if err != nil {
		return Page{}, err
	}

	totalPages := int((total + int64(q.Size) - 1) / int64(q.Size))
	return Page{
		Content:       items,
		Page:          q.Page,
		Size:          q.Size,
		TotalElements: total,
		TotalPages:    totalPages,
		First:         q.Page == 0,
		Last:          q.Page >= totalPages-1,
	}, nil
}

func (u *QuoteRequestUseCase) GetByID(ctx context.Context, id string) (entities.QuoteRequest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.QuoteRequest{}, ErrInvalidQuoteRequestID
	}

	qr, err := u.repo.FindActiveByID(ctx, id)
	if err != nil {
		return entities.QuoteRequest{}, err
	}
	if qr.ID == "" {
		return entities.QuoteRequest{}, ErrQuoteRequestNotFound
	}
	return qr, nil
}

func (u *QuoteRequestUseCase) Create(ctx context.Context, in QuoteRequestInput) (entities.QuoteRequest, error) {
	qr, err := validateQuoteRequestInput(in)
	if err != nil {
		return entities.QuoteRequest{}, err
	}

	budgetType, err := u.resolveBudgetType(ctx, in.BudgetTypeID)
	if err != nil {
		return entities.QuoteRequest{}, err
	}

	now := time.Now().UTC()
	qr.ID = uuid.NewString()
	qr.BudgetTypeID = budgetType.ID
	qr.CreatedAt = now
	qr.UpdatedAt = now
	qr.DeletedAt = nil

	saved, err := u.repo.Create(ctx, qr)
	if err != nil {
		return entities.QuoteRequest{}, err
	}

	u.notifyQuoteCreated(ctx, saved, budgetType)
	return saved, nil
}

func (u *QuoteRequestUseCase) Update(ctx context.Context, id string, in QuoteRequestInput) (entities.QuoteRequest, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.QuoteRequest{}, err
	}

	incoming, err := validateQuoteRequestInput(in)
	if err != nil {
		return entities.QuoteRequest{}, err
	}

	budgetType, err := u.resolveBudgetType(ctx, in.BudgetTypeID)
	if err != nil {
		return entities.QuoteRequest{}, err
	}

	// Identity and created_at are never overwritten. Updates do not
	// re-dispatch a notification.
	current.BudgetTypeID = budgetType.ID
	current.RequesterName = incoming.RequesterName
	current.RequesterEmail = incoming.RequesterEmail
	current.DocumentOriginalName = incoming.DocumentOriginalName
	current.DocumentStorageKey = incoming.DocumentStorageKey
	current.DocumentMimeType = incoming.DocumentMimeType
	current.DocumentSizeBytes = incoming.DocumentSizeBytes
	current.BillingMethodUsed = incoming.BillingMethodUsed
	current.FeeUsed = incoming.FeeUsed
	current.CountedUnits = incoming.CountedUnits
	current.EstimatedTotal = incoming.EstimatedTotal
	current.Status = incoming.Status
	current.UpdatedAt = time.Now().UTC()
	return u.repo.Save(ctx, current)
}

func (u *QuoteRequestUseCase) SoftDelete(ctx context.Context, id string) error {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	current.DeletedAt = &now
	current.UpdatedAt = now
	_, err = u.repo.Save(ctx, current)
	return err
}

func (u *QuoteRequestUseCase) CreateDocumentUploadURL(ctx context.Context, fileName, contentType string) (interfaces.DocumentUploadTicket, error) {
	fileName = strings.TrimSpace(fileName)
	if fileName == "" || utf8.RuneCountInString(fileName) > maxDocumentNameLen {
		return interfaces.DocumentUploadTicket{}, ErrInvalidDocumentName
	}
	if u.storage == nil {
		return interfaces.DocumentUploadTicket{}, ErrDocumentStorageUnavailable
	}
	return u.storage.PresignUpload(ctx, fileName, contentType)
}

func (u *QuoteRequestUseCase) GetDocumentDownloadURL(ctx context.Context, id string) (string, error) {
	qr, err := u.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	if u.storage == nil {
		return "", ErrDocumentStorageUnavailable
	}
	return u.storage.PresignDownload(ctx, qr.DocumentStorageKey)
}

// resolveBudgetType resolves the referenced budget type without filtering on
// its deleted_at: a quote may be created against a soft-deleted budget type.
// This mirrors the observed behavior and is pinned by a test; do not "fix" it
// here without changing the contract.
func (u *QuoteRequestUseCase) resolveBudgetType(ctx context.Context, id string) (entities.BudgetType, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.BudgetType{}, fmt.Errorf("%w: empty id", ErrInvalidBudgetTypeRef)
	}

	bt, err := u.budgetTypeRepo.FindByIDIncludingDeleted(ctx, id)
	if err != nil {
		return entities.BudgetType{}, err
	}
	if bt.ID == "" {
		return entities.BudgetType{}, fmt.Errorf("%w: %s", ErrInvalidBudgetTypeRef, id)
	}
	return bt, nil
}

// notifyQuoteCreated enqueues the quote-created event. Fire-and-forget: any
// publisher error is logged and swallowed so the already-persisted quote is
// returned to the caller no matter what the notification channel does.
func (u *QuoteRequestUseCase) notifyQuoteCreated(ctx context.Context, qr entities.QuoteRequest, bt entities.BudgetType) {
	if u.publisher == nil {
		log.Printf("[quote][usecase] notification publisher not configured quote_id=%s", qr.ID)
		return
	}

	event := entities.NotificationEvent{
		ExternalReferenceID: qr.ID,
		RecipientEmail:      qr.RequesterEmail,
		RecipientName:       qr.RequesterName,
		Subject:             quoteCreatedSubject,
		BodyHTML:            renderQuoteCreatedBody(qr.RequesterName, bt.Name, qr.ID),
	}
	if err := u.publisher.Publish(ctx, event); err != nil {
		log.Printf("[quote][usecase] notification dispatch failed quote_id=%s err=%v", qr.ID, err)
	}
}

func validateQuoteRequestInput(in QuoteRequestInput) (entities.QuoteRequest, error) {
	name := strings.TrimSpace(in.RequesterName)
	if name == "" || utf8.RuneCountInString(name) > maxRequesterNameLen {
		return entities.QuoteRequest{}, ErrInvalidRequesterName
	}

	email := strings.TrimSpace(in.RequesterEmail)
	if email != "" {
		validated, err := validateEmail(email)
		if err != nil {
			return entities.QuoteRequest{}, ErrInvalidRequesterEmail
		}
		email = validated
	}

	docName := strings.TrimSpace(in.DocumentOriginalName)
	if docName == "" || utf8.RuneCountInString(docName) > maxDocumentNameLen {
		return entities.QuoteRequest{}, ErrInvalidDocumentName
	}

	storageKey := strings.TrimSpace(in.DocumentStorageKey)
	if storageKey == "" || utf8.RuneCountInString(storageKey) > maxDocumentStorageKeyLen {
		return entities.QuoteRequest{}, ErrInvalidDocumentStorageKey
	}

	if utf8.RuneCountInString(in.DocumentMimeType) > maxDocumentMimeTypeLen {
		return entities.QuoteRequest{}, ErrInvalidDocumentMimeType
	}

	if in.DocumentSizeBytes <= 0 {
		return entities.QuoteRequest{}, ErrInvalidDocumentSize
	}

	method, err := entities.ParseBillingMethod(in.BillingMethodUsed)
	if err != nil {
		return entities.QuoteRequest{}, err
	}

	if in.FeeUsed.IsNegative() {
		return entities.QuoteRequest{}, ErrInvalidFeeUsed
	}

	if in.CountedUnits < 1 {
		return entities.QuoteRequest{}, ErrInvalidCountedUnits
	}

	if in.EstimatedTotal.IsNegative() {
		return entities.QuoteRequest{}, ErrInvalidEstimatedTotal
	}

	status := strings.TrimSpace(in.Status)
	if status == "" {
		status = entities.QuoteStatusPending
	}
	if utf8.RuneCountInString(status) > maxStatusLen {
		return entities.QuoteRequest{}, ErrInvalidStatus
	}

	return entities.QuoteRequest{
		RequesterName:        name,
		RequesterEmail:       email,
		DocumentOriginalName: docName,
		DocumentStorageKey:   storageKey,
		DocumentMimeType:     strings.TrimSpace(in.DocumentMimeType),
		DocumentSizeBytes:    in.DocumentSizeBytes,
		BillingMethodUsed:    method,
		FeeUsed:              in.FeeUsed,
		CountedUnits:         in.CountedUnits,
		EstimatedTotal:       in.EstimatedTotal,
		Status:               status,
	}, nil
}
