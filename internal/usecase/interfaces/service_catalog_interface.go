package interfaces

import (
	"context"

	"estetica_pro/internal/domain/entities"
)

// IServiceCatalog resolves detailing services and their per-size prices.
type IServiceCatalog interface {
	GetAll(ctx context.Context) ([]entities.Service, error)
	GetByID(ctx context.Context, id string) (*entities.Service, error)
	// GetPrice returns 0 for unknown services; pricing gaps are surfaced on
	// the order total, not as errors.
	GetPrice(ctx context.Context, serviceID string, size entities.VehicleSize) (float64, error)
}
