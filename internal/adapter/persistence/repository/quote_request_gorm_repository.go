package repository

import (
	"context"
	"errors"
	"time"

	"orcamento_api/internal/domain/entities"
	"orcamento_api/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// quoteRequestRecord is the MySQL row shape for a quote request. The
// association field exists so AutoMigrate emits the foreign key constraint;
// it is never preloaded or written through.
type quoteRequestRecord struct {
	ID                   string           `gorm:"column:id;type:char(36);primaryKey"`
	BudgetTypeID         string           `gorm:"column:budget_type_id;type:char(36);not null;index"`
	BudgetType           budgetTypeRecord `gorm:"foreignKey:BudgetTypeID"`
	RequesterName        string           `gorm:"column:requester_name;type:varchar(150);not null"`
	RequesterEmail       string           `gorm:"column:requester_email;type:varchar(254)"`
	DocumentOriginalName string           `gorm:"column:document_original_name;type:varchar(255);not null"`
	DocumentStorageKey   string           `gorm:"column:document_storage_key;type:varchar(500);not null"`
	DocumentMimeType     string           `gorm:"column:document_mime_type;type:varchar(100)"`
	DocumentSizeBytes    int64            `gorm:"column:document_size_bytes;type:bigint"`
	BillingMethodUsed    string           `gorm:"column:billing_method_used;type:varchar(10);not null"`
	FeeUsed              decimal.Decimal  `gorm:"column:fee_used;type:decimal(12,2);not null"`
	CountedUnits         int              `gorm:"column:counted_units;not null"`
	EstimatedTotal       decimal.Decimal  `gorm:"column:estimated_total;type:decimal(12,2);not null"`
	Status               string           `gorm:"column:status;type:varchar(30);not null"`
	CreatedAt            time.Time        `gorm:"column:created_at;autoCreateTime:false;autoUpdateTime:false"`
	UpdatedAt            time.Time        `gorm:"column:updated_at;autoCreateTime:false;autoUpdateTime:false"`
	DeletedAt            *time.Time       `gorm:"column:deleted_at;index"`
}

func (quoteRequestRecord) TableName() string { return "quote_requests" }

// quoteSortColumns whitelists the API-facing sort fields. Anything else
// sorts by created_at so a hostile sortBy can never reach the ORDER BY as-is.
var quoteSortColumns = map[string]string{
	"createdAt":      "created_at",
	"updatedAt":      "updated_at",
	"requesterName":  "requester_name",
	"feeUsed":        "fee_used",
	"estimatedTotal": "estimated_total",
	"status":         "status",
}

// QuoteRequestGormRepository persists QuoteRequest rows in MySQL, with the
// same explicit soft-delete filtering as the budget type repository.

type QuoteRequestGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IQuoteRequestRepository = (*QuoteRequestGormRepository)(nil)

func NewQuoteRequestGormRepository(db *gorm.DB) *QuoteRequestGormRepository {
	return &QuoteRequestGormRepository{db: db}
}

func (r *QuoteRequestGormRepository) Create(ctx context.Context, qr entities.QuoteRequest) (entities.QuoteRequest, error) {
	rec := toQuoteRequestRecord(qr)
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return entities.QuoteRequest{}, err
	}
	return fromQuoteRequestRecord(rec), nil
}

func (r *QuoteRequestGormRepository) Save(ctx context.Context, qr entities.QuoteRequest) (entities.QuoteRequest, error) {
	rec := toQuoteRequestRecord(qr)
	if err := r.db.WithContext(ctx).Save(&rec).Error; err != nil {
		return entities.QuoteRequest{}, err
	}
	return fromQuoteRequestRecord(rec), nil
}

func (r *QuoteRequestGormRepository) FindActive(ctx context.Context) ([]entities.QuoteRequest, error) {
	return r.findAll(ctx, "deleted_at IS NULL")
}

func (r *QuoteRequestGormRepository) FindDeleted(ctx context.Context) ([]entities.QuoteRequest, error) {
	return r.findAll(ctx, "deleted_at IS NOT NULL")
}

func (r *QuoteRequestGormRepository) findAll(ctx context.Context, visibility string) ([]entities.QuoteRequest, error) {
	var recs []quoteRequestRecord
	if err := r.db.WithContext(ctx).Where(visibility).Find(&recs).Error; err != nil {
		return nil, err
	}
	return fromQuoteRequestRecords(recs), nil
}

func (r *QuoteRequestGormRepository) FindActiveByID(ctx context.Context, id string) (entities.QuoteRequest, error) {
	var rec quoteRequestRecord
	err := r.db.WithContext(ctx).Where("id = ? AND deleted_at IS NULL", id).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.QuoteRequest{}, nil
		}
		return entities.QuoteRequest{}, err
	}
	return fromQuoteRequestRecord(rec), nil
}

func (r *QuoteRequestGormRepository) FindPage(ctx context.Context, deleted bool, offset, limit int, sortBy string, asc bool) ([]entities.QuoteRequest, int64, error) {
	visibility := "deleted_at IS NULL"
	if deleted {
		visibility = "deleted_at IS NOT NULL"
	}

	var total int64
	if err := r.db.WithContext(ctx).Model(&quoteRequestRecord{}).Where(visibility).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	column, ok := quoteSortColumns[sortBy]
	if !ok {
		column = "created_at"
	}
	direction := "DESC"
	if asc {
		direction = "ASC"
	}

	var recs []quoteRequestRecord
	err := r.db.WithContext(ctx).
		Where(visibility).
		Order(column + " " + direction).
		Offset(offset).
		Limit(limit).
		Find(&recs).Error
	if err != nil {
		return nil, 0, err
	}
	return fromQuoteRequestRecords(recs), total, nil
}

func toQuoteRequestRecord(qr entities.QuoteRequest) quoteRequestRecord {
	return quoteRequestRecord{
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

func fromQuoteRequestRecord(rec quoteRequestRecord) entities.QuoteRequest {
	return entities.QuoteRequest{
		ID:                   rec.ID,
		BudgetTypeID:         rec.BudgetTypeID,
		RequesterName:        rec.RequesterName,
		RequesterEmail:       rec.RequesterEmail,
		DocumentOriginalName: rec.DocumentOriginalName,
		DocumentStorageKey:   rec.DocumentStorageKey,
		DocumentMimeType:     rec.DocumentMimeType,
		DocumentSizeBytes:    rec.DocumentSizeBytes,
		BillingMethodUsed:    entities.BillingMethod(rec.BillingMethodUsed),
		FeeUsed:              rec.FeeUsed,
		CountedUnits:         rec.CountedUnits,
		EstimatedTotal:       rec.EstimatedTotal,
		Status:               rec.Status,
		CreatedAt:            rec.CreatedAt,
		UpdatedAt:            rec.UpdatedAt,
		DeletedAt:            rec.DeletedAt,
	}
}

func fromQuoteRequestRecords(recs []quoteRequestRecord) []entities.QuoteRequest {
	out := make([]entities.QuoteRequest, 0, len(recs))
	for _, rec := range recs {
		out = append(out, fromQuoteRequestRecord(rec))
	}
	return out
}
