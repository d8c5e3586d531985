package repository

import (
	"context"

	"estetica_pro/internal/adapter/persistence/store"
	"estetica_pro/internal/domain/entities"
	"estetica_pro/internal/usecase/interfaces"
)

type ServiceCatalogStore struct {
	store *store.Store
}

var _ interfaces.IServiceCatalog = (*ServiceCatalogStore)(nil)

func NewServiceCatalogStore(s *store.Store) *ServiceCatalogStore {
	return &ServiceCatalogStore{store: s}
}

func (r *ServiceCatalogStore) GetAll(ctx context.Context) ([]entities.Service, error) {
	return store.GetAll[entities.Service](ctx, r.store, store.CollectionServices)
}

func (r *ServiceCatalogStore) GetByID(ctx context.Context, id string) (*entities.Service, error) {
	return store.GetByID[entities.Service](ctx, r.store, store.CollectionServices, id)
}

func (r *ServiceCatalogStore) GetPrice(ctx context.Context, serviceID string, size entities.VehicleSize) (float64, error) {
	svc, err := r.GetByID(ctx, serviceID)
	if err != nil {
		return 0, err
	}
	if svc == nil {
		return 0, nil
	}
	return svc.PriceFor(size), nil
}
