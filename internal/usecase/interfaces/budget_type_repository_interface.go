package interfaces

import (
	"context"

	"orcamento_api/internal/domain/entities"
)

// IBudgetTypeRepository abstracts MySQL persistence for BudgetType.
//
// Absent rows are reported as a zero-value entity with a nil error; callers
// check for an empty ID. Every read helper that claims "active" visibility
// applies the deleted_at IS NULL filter itself; FindByIDIncludingDeleted is
// the single deliberately unfiltered lookup (used to resolve the budget-type
// reference of a quote).

type IBudgetTypeRepository interface {
	Create(ctx context.Context, bt entities.BudgetType) (entities.BudgetType, error)
	Save(ctx context.Context, bt entities.BudgetType) (entities.BudgetType, error)
	FindActive(ctx context.Context) ([]entities.BudgetType, error)
	FindDeleted(ctx context.Context) ([]entities.BudgetType, error)
	FindActiveByID(ctx context.Context, id string) (entities.BudgetType, error)
	FindByIDIncludingDeleted(ctx context.Context, id string) (entities.BudgetType, error)
}
