package interfaces

import (
	"context"

	"estetica_pro/internal/domain/entities"
)

// IEmployeeRepository abstracts object-store persistence for Employee.
type IEmployeeRepository interface {
	GetAll(ctx context.Context) ([]entities.Employee, error)
	GetByID(ctx context.Context, id string) (*entities.Employee, error)
	Create(ctx context.Context, e entities.Employee) (entities.Employee, error)
	Update(ctx context.Context, id string, patch map[string]any) (*entities.Employee, error)
	Delete(ctx context.Context, id string) (bool, error)
}
