package interfaces

import (
	"context"

	"estetica_pro/internal/domain/entities"
)

// IFinancialRepository abstracts object-store persistence for
// FinancialTransaction. Payment reversal resolves the row by its explicit
// work_order_id foreign key and deletes it; this is the one hard-delete path
// in the system.
type IFinancialRepository interface {
	GetAll(ctx context.Context) ([]entities.FinancialTransaction, error)
	GetByID(ctx context.Context, id string) (*entities.FinancialTransaction, error)
	ListByWorkOrderID(ctx context.Context, workOrderID string) ([]entities.FinancialTransaction, error)
	Create(ctx context.Context, t entities.FinancialTransaction) (entities.FinancialTransaction, error)
	Delete(ctx context.Context, id string) (bool, error)
}
