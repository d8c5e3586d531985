package interfaces

import (
	"context"

	"estetica_pro/internal/domain/entities"
)

// IClientRepository abstracts object-store persistence for Client.
//
// Missing records come back as nil, never as an error; callers check for nil
// explicitly.
type IClientRepository interface {
	GetAll(ctx context.Context) ([]entities.Client, error)
	GetByID(ctx context.Context, id string) (*entities.Client, error)
	Create(ctx context.Context, c entities.Client) (entities.Client, error)
	Update(ctx context.Context, id string, patch map[string]any) (*entities.Client, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// IVehicleRepository abstracts object-store persistence for Vehicle.
type IVehicleRepository interface {
	GetAll(ctx context.Context) ([]entities.Vehicle, error)
	GetByID(ctx context.Context, id string) (*entities.Vehicle, error)
	ListByClientID(ctx context.Context, clientID string) ([]entities.Vehicle, error)
	Create(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error)
	Update(ctx context.Context, id string, patch map[string]any) (*entities.Vehicle, error)
	Delete(ctx context.Context, id string) (bool, error)
}
