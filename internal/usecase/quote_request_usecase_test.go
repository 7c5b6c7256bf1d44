package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"orcamento_api/internal/domain/entities"
	"orcamento_api/internal/usecase/interfaces"
	mock_interfaces "orcamento_api/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func validQuoteRequestInput() QuoteRequestInput {
	return QuoteRequestInput{
		BudgetTypeID:         "bt-1",
		RequesterName:        "Maria Souza",
		RequesterEmail:       "maria@cliente.com",
		DocumentOriginalName: "contrato.pdf",
		DocumentStorageKey:   "quote-documents/abc/contrato.pdf",
		DocumentMimeType:     "application/pdf",
		DocumentSizeBytes:    2048,
		BillingMethodUsed:    "W",
		FeeUsed:              decimal.RequireFromString("0.30"),
		CountedUnits:         1200,
		EstimatedTotal:       decimal.RequireFromString("360.00"),
	}
}

func activeBudgetType() entities.BudgetType {
	return entities.BudgetType{
		ID:            "bt-1",
		Name:          "Tradução Juramentada",
		BillingMethod: entities.BillingMethodWord,
		Fee:           decimal.RequireFromString("0.30"),
		TargetEmail:   "juramentada@orcamento.com",
	}
}

func TestQuoteRequestUseCase_Create(t *testing.T) {
	t.Run("success publishes notification", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRequestRepository(ctrl)
		btRepo := mock_interfaces.NewMockIBudgetTypeRepository(ctrl)
		pub := mock_interfaces.NewMockINotificationPublisher(ctrl)
		uc := NewQuoteRequestUseCase(repo, btRepo, pub, nil)

		btRepo.EXPECT().FindByIDIncludingDeleted(gomock.Any(), "bt-1").Return(activeBudgetType(), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, qr entities.QuoteRequest) (entities.QuoteRequest, error) {
				return qr, nil
			})

		var event entities.NotificationEvent
		pub.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.NotificationEvent) error {
				event = e
				return nil
			})

		got, err := uc.Create(context.Background(), validQuoteRequestInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if got.ID == "" {
			t.Fatalf("expected generated id")
		}
		if got.BillingMethodUsed != entities.BillingMethodWord {
			t.Fatalf("expected WORD, got %q", got.BillingMethodUsed)
		}
		if got.Status != entities.QuoteStatusPending {
			t.Fatalf("expected default status PENDING, got %q", got.Status)
		}
		if !got.CreatedAt.Equal(got.UpdatedAt) {
			t.Fatalf("expected created_at == updated_at at creation")
		}

		if event.ExternalReferenceID != got.ID {
			t.Fatalf("expected event to reference the quote id, got %q", event.ExternalReferenceID)
		}
		if event.RecipientEmail != "maria@cliente.com" || event.RecipientName != "Maria Souza" {
			t.Fatalf("unexpected recipient: %q %q", event.RecipientEmail, event.RecipientName)
		}
		if event.Subject != "Seu orçamento foi criado!" {
			t.Fatalf("unexpected subject: %q", event.Subject)
		}
		if !strings.Contains(event.BodyHTML, "Maria Souza") || !strings.Contains(event.BodyHTML, "Tradução Juramentada") {
			t.Fatalf("expected body to carry requester and budget type names, got %q", event.BodyHTML)
		}
		if !strings.Contains(event.BodyHTML, got.ID) {
			t.Fatalf("expected body to carry the quote id")
		}
	})

	t.Run("publish failure does not fail creation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRequestRepository(ctrl)
		btRepo := mock_interfaces.NewMockIBudgetTypeRepository(ctrl)
		pub := mock_interfaces.NewMockINotificationPublisher(ctrl)
		uc := NewQuoteRequestUseCase(repo, btRepo, pub, nil)

		btRepo.EXPECT().FindByIDIncludingDeleted(gomock.Any(), "bt-1").Return(activeBudgetType(), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, qr entities.QuoteRequest) (entities.QuoteRequest, error) {
				return qr, nil
			})
		pub.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("queue down"))

		got, err := uc.Create(context.Background(), validQuoteRequestInput())
		if err != nil {
			t.Fatalf("expected creation to survive publish failure, got %v", err)
		}
		if got.ID == "" {
			t.Fatalf("expected persisted quote back")
		}
	})

	t.Run("nil publisher is tolerated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRequestRepository(ctrl)
		btRepo := mock_interfaces.NewMockIBudgetTypeRepository(ctrl)
		uc := NewQuoteRequestUseCase(repo, btRepo, nil, nil)

		btRepo.EXPECT().FindByIDIncludingDeleted(gomock.Any(), "bt-1").Return(activeBudgetType(), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, qr entities.QuoteRequest) (entities.QuoteRequest, error) {
				return qr, nil
			})

		if _, err := uc.Create(context.Background(), validQuoteRequestInput()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("budget type soft-deleted", func(t *testing.T) {
		// The reference lookup deliberately ignores deleted_at: a quote may
		// still be raised against a soft-deleted budget type.
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRequestRepository(ctrl)
		btRepo := mock_interfaces.NewMockIBudgetTypeRepository(ctrl)
		pub := mock_interfaces.NewMockINotificationPublisher(ctrl)
		uc := NewQuoteRequestUseCase(repo, btRepo, pub, nil)

		deletedAt := time.Now().UTC()
		bt := activeBudgetType()
		bt.DeletedAt = &deletedAt

		btRepo.EXPECT().FindByIDIncludingDeleted(gomock.Any(), "bt-1").Return(bt, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, qr entities.QuoteRequest) (entities.QuoteRequest, error) {
				return qr, nil
			})
		pub.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

		got, err := uc.Create(context.Background(), validQuoteRequestInput())
		if err != nil {
			t.Fatalf("expected soft-deleted budget type to be accepted, got %v", err)
		}
		if got.BudgetTypeID != "bt-1" {
			t.Fatalf("expected budget type id bound, got %q", got.BudgetTypeID)
		}
	})

	t.Run("unresolvable budget type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRequestRepository(ctrl)
		btRepo := mock_interfaces.NewMockIBudgetTypeRepository(ctrl)
		uc := NewQuoteRequestUseCase(repo, btRepo, nil, nil)

		btRepo.EXPECT().FindByIDIncludingDeleted(gomock.Any(), "bt-1").Return(entities.BudgetType{}, nil)
		// repo.Create must not be reached.

		_, err := uc.Create(context.Background(), validQuoteRequestInput())
		if !errors.Is(err, ErrInvalidBudgetTypeRef) {
			t.Fatalf("expected ErrInvalidBudgetTypeRef, got %v", err)
		}
	})

	t.Run("validation failures", func(t *testing.T) {
		uc := NewQuoteRequestUseCase(nil, nil, nil, nil)

		cases := []struct {
			name   string
			mutate func(*QuoteRequestInput)
			want   error
		}{
			{"blank requester name", func(in *QuoteRequestInput) { in.RequesterName = "  " }, ErrInvalidRequesterName},
			{"malformed requester email", func(in *QuoteRequestInput) { in.RequesterEmail = "nope" }, ErrInvalidRequesterEmail},
			{"blank document name", func(in *QuoteRequestInput) { in.DocumentOriginalName = "" }, ErrInvalidDocumentName},
			{"blank storage key", func(in *QuoteRequestInput) { in.DocumentStorageKey = "" }, ErrInvalidDocumentStorageKey},
			{"zero document size", func(in *QuoteRequestInput) { in.DocumentSizeBytes = 0 }, ErrInvalidDocumentSize},
			{"unknown billing method", func(in *QuoteRequestInput) { in.BillingMethodUsed = "Z" }, entities.ErrUnknownBillingMethod},
			{"negative fee used", func(in *QuoteRequestInput) { in.FeeUsed = decimal.RequireFromString("-1") }, ErrInvalidFeeUsed},
			{"zero counted units", func(in *QuoteRequestInput) { in.CountedUnits = 0 }, ErrInvalidCountedUnits},
			{"negative estimated total", func(in *QuoteRequestInput) { in.EstimatedTotal = decimal.RequireFromString("-1") }, ErrInvalidEstimatedTotal},
			{"oversized status", func(in *QuoteRequestInput) { in.Status = strings.Repeat("X", 31) }, ErrInvalidStatus},
		}

		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				in := validQuoteRequestInput()
				c.mutate(&in)
				_, err := uc.Create(context.Background(), in)
				if !errors.Is(err, c.want) {
					t.Fatalf("expected %v, got %v", c.want, err)
				}
			})
		}
	})

	t.Run("blank requester email is allowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRequestRepository(ctrl)
		btRepo := mock_interfaces.NewMockIBudgetTypeRepository(ctrl)
		uc := NewQuoteRequestUseCase(repo, btRepo, nil, nil)

		btRepo.EXPECT().FindByIDIncludingDeleted(gomock.Any(), "bt-1").Return(activeBudgetType(), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, qr entities.QuoteRequest) (entities.QuoteRequest, error) {
				return qr, nil
			})

		in := validQuoteRequestInput()
		in.RequesterEmail = ""
		if _, err := uc.Create(context.Background(), in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestQuoteRequestUseCase_Update(t *testing.T) {
	t.Run("no notification on update", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRequestRepository(ctrl)
		btRepo := mock_interfaces.NewMockIBudgetTypeRepository(ctrl)
		pub := mock_interfaces.NewMockINotificationPublisher(ctrl)
		uc := NewQuoteRequestUseCase(repo, btRepo, pub, nil)

		createdAt := time.Date(2025, 2, 1, 12, 0, 0, 0, time.UTC)
		existing := entities.QuoteRequest{
			ID:           "qr-1",
			BudgetTypeID: "bt-old",
			Status:       entities.QuoteStatusPending,
			CreatedAt:    createdAt,
			UpdatedAt:    createdAt,
		}

		repo.EXPECT().FindActiveByID(gomock.Any(), "qr-1").Return(existing, nil)
		btRepo.EXPECT().FindByIDIncludingDeleted(gomock.Any(), "bt-1").Return(activeBudgetType(), nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, qr entities.QuoteRequest) (entities.QuoteRequest, error) {
				return qr, nil
			})
		// pub.Publish must not be called.

		in := validQuoteRequestInput()
		in.Status = "APPROVED"
		got, err := uc.Update(context.Background(), "qr-1", in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if got.ID != "qr-1" {
			t.Fatalf("expected id preserved, got %q", got.ID)
		}
		if !got.CreatedAt.Equal(createdAt) {
			t.Fatalf("expected created_at preserved")
		}
		if got.Status != "APPROVED" {
			t.Fatalf("expected status overwritten, got %q", got.Status)
		}
		if got.BudgetTypeID != "bt-1" {
			t.Fatalf("expected budget type rebound, got %q", got.BudgetTypeID)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRequestRepository(ctrl)
		uc := NewQuoteRequestUseCase(repo, nil, nil, nil)

		repo.EXPECT().FindActiveByID(gomock.Any(), "missing").Return(entities.QuoteRequest{}, nil)

		_, err := uc.Update(context.Background(), "missing", validQuoteRequestInput())
		if !errors.Is(err, ErrQuoteRequestNotFound) {
			t.Fatalf("expected ErrQuoteRequestNotFound, got %v", err)
		}
	})
}

func TestQuoteRequestUseCase_SoftDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIQuoteRequestRepository(ctrl)
	uc := NewQuoteRequestUseCase(repo, nil, nil, nil)

	repo.EXPECT().FindActiveByID(gomock.Any(), "qr-1").Return(entities.QuoteRequest{ID: "qr-1"}, nil)

	var captured entities.QuoteRequest
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, qr entities.QuoteRequest) (entities.QuoteRequest, error) {
			captured = qr
			return qr, nil
		})

	if err := uc.SoftDelete(context.Background(), "qr-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if captured.DeletedAt == nil {
		t.Fatalf("expected deleted_at to be set")
	}
}

func TestQuoteRequestUseCase_ListPaginated(t *testing.T) {
	t.Run("middle of a two page listing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRequestRepository(ctrl)
		uc := NewQuoteRequestUseCase(repo, nil, nil, nil)

		items := make([]entities.QuoteRequest, 10)
		repo.EXPECT().FindPage(gomock.Any(), false, 0, 10, "createdAt", false).Return(items, int64(15), nil)

		page, err := uc.ListPaginated(context.Background(), PageQuery{Page: 0, Size: 10, SortBy: "createdAt", Direction: "DESC"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if page.TotalElements != 15 {
			t.Fatalf("expected 15 total elements, got %d", page.TotalElements)
		}
		if page.TotalPages != 2 {
			t.Fatalf("expected 2 total pages, got %d", page.TotalPages)
		}
		if !page.First || page.Last {
			t.Fatalf("expected first=true last=false, got first=%v last=%v", page.First, page.Last)
		}
	})

	t.Run("last partial page", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRequestRepository(ctrl)
		uc := NewQuoteRequestUseCase(repo, nil, nil, nil)

		items := make([]entities.QuoteRequest, 5)
		repo.EXPECT().FindPage(gomock.Any(), false, 10, 10, "", false).Return(items, int64(15), nil)

		page, err := uc.ListPaginated(context.Background(), PageQuery{Page: 1, Size: 10})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if page.First || !page.Last {
			t.Fatalf("expected first=false last=true, got first=%v last=%v", page.First, page.Last)
		}
		if len(page.Content) != 5 {
			t.Fatalf("expected 5 items, got %d", len(page.Content))
		}
	})

	t.Run("page beyond the data", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRequestRepository(ctrl)
		uc := NewQuoteRequestUseCase(repo, nil, nil, nil)

		repo.EXPECT().FindPage(gomock.Any(), false, 50, 10, "", false).Return(nil, int64(15), nil)

		page, err := uc.ListPaginated(context.Background(), PageQuery{Page: 5, Size: 10})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(page.Content) != 0 {
			t.Fatalf("expected empty content")
		}
		if !page.Last {
			t.Fatalf("expected last=true beyond the data")
		}
	})

	t.Run("empty listing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRequestRepository(ctrl)
		uc := NewQuoteRequestUseCase(repo, nil, nil, nil)

		repo.EXPECT().FindPage(gomock.Any(), false, 0, 10, "", false).Return(nil, int64(0), nil)

		page, err := uc.ListPaginated(context.Background(), PageQuery{Page: 0, Size: 10})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if page.TotalPages != 0 {
			t.Fatalf("expected 0 total pages, got %d", page.TotalPages)
		}
		if !page.First || !page.Last {
			t.Fatalf("expected first and last on an empty listing")
		}
	})

	t.Run("ascending direction is case-insensitive", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRequestRepository(ctrl)
		uc := NewQuoteRequestUseCase(repo, nil, nil, nil)

		repo.EXPECT().FindPage(gomock.Any(), false, 0, 10, "feeUsed", true).Return(nil, int64(0), nil)

		if _, err := uc.ListPaginated(context.Background(), PageQuery{Page: 0, Size: 10, SortBy: "feeUsed", Direction: "AsC"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("invalid page request", func(t *testing.T) {
		uc := NewQuoteRequestUseCase(nil, nil, nil, nil)

		if _, err := uc.ListPaginated(context.Background(), PageQuery{Page: -1, Size: 10}); !errors.Is(err, ErrInvalidPageRequest) {
			t.Fatalf("expected ErrInvalidPageRequest for negative page, got %v", err)
		}
		if _, err := uc.ListPaginated(context.Background(), PageQuery{Page: 0, Size: 0}); !errors.Is(err, ErrInvalidPageRequest) {
			t.Fatalf("expected ErrInvalidPageRequest for zero size, got %v", err)
		}
	})

	t.Run("deleted listing uses deleted visibility", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRequestRepository(ctrl)
		uc := NewQuoteRequestUseCase(repo, nil, nil, nil)

		repo.EXPECT().FindPage(gomock.Any(), true, 0, 10, "", false).Return(nil, int64(0), nil)

		if _, err := uc.ListDeletedPaginated(context.Background(), PageQuery{Page: 0, Size: 10}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestQuoteRequestUseCase_DocumentURLs(t *testing.T) {
	t.Run("upload ticket", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		storage := mock_interfaces.NewMockIDocumentStorage(ctrl)
		uc := NewQuoteRequestUseCase(nil, nil, nil, storage)

		want := interfaces.DocumentUploadTicket{StorageKey: "quote-documents/x/contrato.pdf", URL: "https://bucket/presigned", Method: "PUT"}
		storage.EXPECT().PresignUpload(gomock.Any(), "contrato.pdf", "application/pdf").Return(want, nil)

		got, err := uc.CreateDocumentUploadURL(context.Background(), "contrato.pdf", "application/pdf")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.URL != want.URL || got.StorageKey != want.StorageKey {
			t.Fatalf("unexpected ticket: %+v", got)
		}
	})

	t.Run("upload without storage configured", func(t *testing.T) {
		uc := NewQuoteRequestUseCase(nil, nil, nil, nil)
		_, err := uc.CreateDocumentUploadURL(context.Background(), "contrato.pdf", "")
		if !errors.Is(err, ErrDocumentStorageUnavailable) {
			t.Fatalf("expected ErrDocumentStorageUnavailable, got %v", err)
		}
	})

	t.Run("upload with blank file name", func(t *testing.T) {
		uc := NewQuoteRequestUseCase(nil, nil, nil, nil)
		_, err := uc.CreateDocumentUploadURL(context.Background(), "  ", "")
		if !errors.Is(err, ErrInvalidDocumentName) {
			t.Fatalf("expected ErrInvalidDocumentName, got %v", err)
		}
	})

	t.Run("download url", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRequestRepository(ctrl)
		storage := mock_interfaces.NewMockIDocumentStorage(ctrl)
		uc := NewQuoteRequestUseCase(repo, nil, nil, storage)

		repo.EXPECT().FindActiveByID(gomock.Any(), "qr-1").Return(entities.QuoteRequest{ID: "qr-1", DocumentStorageKey: "quote-documents/x/contrato.pdf"}, nil)
		storage.EXPECT().PresignDownload(gomock.Any(), "quote-documents/x/contrato.pdf").Return("https://bucket/get", nil)

		url, err := uc.GetDocumentDownloadURL(context.Background(), "qr-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if url != "https://bucket/get" {
			t.Fatalf("unexpected url %q", url)
		}
	})

	t.Run("download for missing quote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRequestRepository(ctrl)
		uc := NewQuoteRequestUseCase(repo, nil, nil, nil)

		repo.EXPECT().FindActiveByID(gomock.Any(), "missing").Return(entities.QuoteRequest{}, nil)

		_, err := uc.GetDocumentDownloadURL(context.Background(), "missing")
		if !errors.Is(err, ErrQuoteRequestNotFound) {
			t.Fatalf("expected ErrQuoteRequestNotFound, got %v", err)
		}
	})
}
