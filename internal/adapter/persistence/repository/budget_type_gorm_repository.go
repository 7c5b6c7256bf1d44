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

// budgetTypeRecord is the MySQL row shape for a budget type. Timestamps are
// owned by the usecase layer, so GORM's automatic tracking is disabled.
type budgetTypeRecord struct {
	ID            string          `gorm:"column:id;type:char(36);primaryKey"`
	Name          string          `gorm:"column:budget_type_name;type:varchar(100);not null"`
	BillingMethod string          `gorm:"column:billing_method;type:varchar(10);not null"`
	Fee           decimal.Decimal `gorm:"column:fee;type:decimal(12,2);not null"`
	Description   string          `gorm:"column:description;type:varchar(500)"`
	TargetEmail   string          `gorm:"column:target_email;type:varchar(254);not null"`
	CreatedAt     time.Time       `gorm:"column:created_at;autoCreateTime:false;autoUpdateTime:false"`
	UpdatedAt     time.Time       `gorm:"column:updated_at;autoCreateTime:false;autoUpdateTime:false"`
	DeletedAt     *time.Time      `gorm:"column:deleted_at;index"`
}

func (budgetTypeRecord) TableName() string { return "budget_types" }

// BudgetTypeGormRepository persists BudgetType rows in MySQL.
//
// Soft-delete filtering is applied inside each read helper with an explicit
// deleted_at condition rather than gorm.DeletedAt: the store must also serve
// deleted-only listings and one deliberately unfiltered lookup, and implicit
// query rewriting would hide which reads carry the filter.

type BudgetTypeGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IBudgetTypeRepository = (*BudgetTypeGormRepository)(nil)

func NewBudgetTypeGormRepository(db *gorm.DB) *BudgetTypeGormRepository {
	return &BudgetTypeGormRepository{db: db}
}

func (r *BudgetTypeGormRepository) Create(ctx context.Context, bt entities.BudgetType) (entities.BudgetType, error) {
	rec := toBudgetTypeRecord(bt)
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return entities.BudgetType{}, err
	}
	return fromBudgetTypeRecord(rec), nil
}

func (r *BudgetTypeGormRepository) Save(ctx context.Context, bt entities.BudgetType) (entities.BudgetType, error) {
	rec := toBudgetTypeRecord(bt)
	if err := r.db.WithContext(ctx).Save(&rec).Error; err != nil {
		return entities.BudgetType{}, err
	}
	return fromBudgetTypeRecord(rec), nil
}

func (r *BudgetTypeGormRepository) FindActive(ctx context.Context) ([]entities.BudgetType, error) {
	return r.findAll(ctx, "deleted_at IS NULL")
}

func (r *BudgetTypeGormRepository) FindDeleted(ctx context.Context) ([]entities.BudgetType, error) {
	return r.findAll(ctx, "deleted_at IS NOT NULL")
}

func (r *BudgetTypeGormRepository) findAll(ctx context.Context, visibility string) ([]entities.BudgetType, error) {
	var recs []budgetTypeRecord
	if err := r.db.WithContext(ctx).Where(visibility).Find(&recs).Error; err != nil {
		return nil, err
	}

	out := make([]entities.BudgetType, 0, len(recs))
	for _, rec := range recs {
		out = append(out, fromBudgetTypeRecord(rec))
	}
	return out, nil
}

func (r *BudgetTypeGormRepository) FindActiveByID(ctx context.Context, id string) (entities.BudgetType, error) {
	return r.findOne(ctx, r.db.WithContext(ctx).Where("id = ? AND deleted_at IS NULL", id))
}

func (r *BudgetTypeGormRepository) FindByIDIncludingDeleted(ctx context.Context, id string) (entities.BudgetType, error) {
	return r.findOne(ctx, r.db.WithContext(ctx).Where("id = ?", id))
}

func (r *BudgetTypeGormRepository) findOne(_ context.Context, tx *gorm.DB) (entities.BudgetType, error) {
	var rec budgetTypeRecord
	if err := tx.First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.BudgetType{}, nil
		}
		return entities.BudgetType{}, err
	}
	return fromBudgetTypeRecord(rec), nil
}

func toBudgetTypeRecord(bt entities.BudgetType) budgetTypeRecord {
	return budgetTypeRecord{
		ID:            bt.ID,
		Name:          bt.Name,
		BillingMethod: string(bt.BillingMethod),
		Fee:           bt.Fee,
		Description:   bt.Description,
		TargetEmail:   bt.TargetEmail,
		CreatedAt:     bt.CreatedAt,
		UpdatedAt:     bt.UpdatedAt,
		DeletedAt:     bt.DeletedAt,
	}
}

func fromBudgetTypeRecord(rec budgetTypeRecord) entities.BudgetType {
	return entities.BudgetType{
		ID:            rec.ID,
		Name:          rec.Name,
		BillingMethod: entities.BillingMethod(rec.BillingMethod),
		Fee:           rec.Fee,
		Description:   rec.Description,
		TargetEmail:   rec.TargetEmail,
		CreatedAt:     rec.CreatedAt,
		UpdatedAt:     rec.UpdatedAt,
		DeletedAt:     rec.DeletedAt,
	}
}
