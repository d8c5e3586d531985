// Package repository provides typed repositories over the generic object
// store, one per aggregate. Secondary lookups (by client, by code) filter in
// memory: the store contract is collection-scoped getAll with no filtering,
// and collections stay shop-sized.
package repository

import (
	"context"

	"estetica_pro/internal/adapter/persistence/store"
	"estetica_pro/internal/domain/entities"
	"estetica_pro/internal/usecase/interfaces"
)

type ClientStoreRepository struct {
	store *store.Store
}

var _ interfaces.IClientRepository = (*ClientStoreRepository)(nil)

func NewClientStoreRepository(s *store.Store) *ClientStoreRepository {
	return &ClientStoreRepository{store: s}
}

func (r *ClientStoreRepository) GetAll(ctx context.Context) ([]entities.Client, error) {
	return store.GetAll[entities.Client](ctx, r.store, store.CollectionClients)
}

func (r *ClientStoreRepository) GetByID(ctx context.Context, id string) (*entities.Client, error) {
	return store.GetByID[entities.Client](ctx, r.store, store.CollectionClients, id)
}

func (r *ClientStoreRepository) Create(ctx context.Context, c entities.Client) (entities.Client, error) {
	return store.Create(ctx, r.store, store.CollectionClients, c)
}

func (r *ClientStoreRepository) Update(ctx context.Context, id string, patch map[string]any) (*entities.Client, error) {
	return store.Update[entities.Client](ctx, r.store, store.CollectionClients, id, patch)
}

func (r *ClientStoreRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.store.Delete(ctx, store.CollectionClients, id)
}

type VehicleStoreRepository struct {
	store *store.Store
}

var _ interfaces.IVehicleRepository = (*VehicleStoreRepository)(nil)

func NewVehicleStoreRepository(s *store.Store) *VehicleStoreRepository {
	return &VehicleStoreRepository{store: s}
}

func (r *VehicleStoreRepository) GetAll(ctx context.Context) ([]entities.Vehicle, error) {
	return store.GetAll[entities.Vehicle](ctx, r.store, store.CollectionVehicles)
}

func (r *VehicleStoreRepository) GetByID(ctx context.Context, id string) (*entities.Vehicle, error) {
	return store.GetByID[entities.Vehicle](ctx, r.store, store.CollectionVehicles, id)
}

func (r *VehicleStoreRepository) ListByClientID(ctx context.Context, clientID string) ([]entities.Vehicle, error) {
	all, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := []entities.Vehicle{}
	for _, v := range all {
		if v.ClientID == clientID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (r *VehicleStoreRepository) Create(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error) {
	return store.Create(ctx, r.store, store.CollectionVehicles, v)
}

func (r *VehicleStoreRepository) Update(ctx context.Context, id string, patch map[string]any) (*entities.Vehicle, error) {
	return store.Update[entities.Vehicle](ctx, r.store, store.CollectionVehicles, id, patch)
}

func (r *VehicleStoreRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.store.Delete(ctx, store.CollectionVehicles, id)
}
