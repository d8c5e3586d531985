package interfaces

import (
	"context"

	"estetica_pro/internal/domain/entities"
)

// IWorkOrderRepository abstracts object-store persistence for WorkOrder.
//
// The use case must be able to:
//   - create intake and staff orders
//   - read an order back before any status change (drafts have no row)
//   - patch mutable fields, persisting recomputed totals with them
type IWorkOrderRepository interface {
	GetAll(ctx context.Context) ([]entities.WorkOrder, error)
	GetByID(ctx context.Context, id string) (*entities.WorkOrder, error)
	Create(ctx context.Context, w entities.WorkOrder) (entities.WorkOrder, error)
	Update(ctx context.Context, id string, patch map[string]any) (*entities.WorkOrder, error)
	Delete(ctx context.Context, id string) (bool, error)
}
