package usecase

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"orcamento_api/internal/domain/entities"
	"orcamento_api/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrBudgetTypeNotFound    = errors.New("budget type not found or deleted")
	ErrInvalidBudgetTypeID   = errors.New("invalid budget type id")
	ErrInvalidBudgetTypeName = errors.New("invalid budget type name")
	ErrInvalidFee            = errors.New("invalid fee")
	ErrInvalidDescription    = errors.New("invalid description")
	ErrInvalidTargetEmail    = errors.New("invalid target email")
)

const (
	maxBudgetTypeNameLen = 100
	maxDescriptionLen    = 500
	maxEmailLen          = 254
)

// BudgetTypeInput carries the mutable fields of a budget type. BillingMethod
// is the raw user-supplied code; it is normalized before anything is stored.
type BudgetTypeInput struct {
	Name          string
	BillingMethod string
	Fee           decimal.Decimal
	Description   string
	TargetEmail   string
}

// IBudgetTypeUseCase exposes the budget type CRUD operations.
//
// Visibility rule: soft-deleted records are invisible to List, GetByID,
// Update and SoftDelete; ListDeleted is the only read for them. Soft delete
// is terminal, there is no undelete.

type IBudgetTypeUseCase interface {
	List(ctx context.Context) ([]entities.BudgetType, error)
	ListDeleted(ctx context.Context) ([]entities.BudgetType, error)
	GetByID(ctx context.Context, id string) (entities.BudgetType, error)
	Create(ctx context.Context, in BudgetTypeInput) (entities.BudgetType, error)
	Update(ctx context.Context, id string, in BudgetTypeInput) (entities.BudgetType, error)
	SoftDelete(ctx context.Context, id string) error
}

type BudgetTypeUseCase struct {
	repo interfaces.IBudgetTypeRepository
}

var _ IBudgetTypeUseCase = (*BudgetTypeUseCase)(nil)

func NewBudgetTypeUseCase(repo interfaces.IBudgetTypeRepository) *BudgetTypeUseCase {
	return &BudgetTypeUseCase{repo: repo}
}

func (u *BudgetTypeUseCase) List(ctx context.Context) ([]entities.BudgetType, error) {
	return u.repo.FindActive(ctx)
}

func (u *BudgetTypeUseCase) ListDeleted(ctx context.Context) ([]entities.BudgetType, error) {
	return u.repo.FindDeleted(ctx)
}

func (u *BudgetTypeUseCase) GetByID(ctx context.Context, id string) (entities.BudgetType, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.BudgetType{}, ErrInvalidBudgetTypeID
	}

	bt, err := u.repo.FindActiveByID(ctx, id)
	if err != nil {
		return entities.BudgetType{}, err
	}
	if bt.ID == "" {
		return entities.BudgetType{}, ErrBudgetTypeNotFound
	}
	return bt, nil
}

func (u *BudgetTypeUseCase) Create(ctx context.Context, in BudgetTypeInput) (entities.BudgetType, error) {
	bt, err := validateBudgetTypeInput(in)
	if err != nil {
		return entities.BudgetType{}, err
	}

	now := time.Now().UTC()
	bt.ID = uuid.NewString()
	bt.CreatedAt = now
	bt.UpdatedAt = now
	bt.DeletedAt = nil
	return u.repo.Create(ctx, bt)
}

func (u *BudgetTypeUseCase) Update(ctx context.Context, id string, in BudgetTypeInput) (entities.BudgetType, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.BudgetType{}, err
	}

	incoming, err := validateBudgetTypeInput(in)
	if err != nil {
		return entities.BudgetType{}, err
	}

	// Identity and created_at are never overwritten.
	current.Name = incoming.Name
	current.BillingMethod = incoming.BillingMethod
	current.Fee = incoming.Fee
	current.Description = incoming.Description
	current.TargetEmail = incoming.TargetEmail
	current.UpdatedAt = time.Now().UTC()
	return u.repo.Save(ctx, current)
}

func (u *BudgetTypeUseCase) SoftDelete(ctx context.Context, id string) error {
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

func validateBudgetTypeInput(in BudgetTypeInput) (entities.BudgetType, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || utf8.RuneCountInString(name) > maxBudgetTypeNameLen {
		return entities.BudgetType{}, ErrInvalidBudgetTypeName
	}

	method, err := entities.ParseBillingMethod(in.BillingMethod)
	if err != nil {
		return entities.BudgetType{}, err
	}

	if in.Fee.IsNegative() {
		return entities.BudgetType{}, ErrInvalidFee
	}

	if utf8.RuneCountInString(in.Description) > maxDescriptionLen {
		return entities.BudgetType{}, ErrInvalidDescription
	}

	email, err := validateEmail(in.TargetEmail)
	if err != nil {
		return entities.BudgetType{}, ErrInvalidTargetEmail
	}

	return entities.BudgetType{
		Name:          name,
		BillingMethod: method,
		Fee:           in.Fee,
		Description:   strings.TrimSpace(in.Description),
		TargetEmail:   email,
	}, nil
}

func validateEmail(raw string) (string, error) {
	email := strings.TrimSpace(raw)
	if email == "" || utf8.RuneCountInString(email) > maxEmailLen {
		return "", errors.New("invalid email")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return "", err
	}
	return email, nil
}
