package repository

import (
	"context"

	"estetica_pro/internal/adapter/persistence/store"
	"estetica_pro/internal/domain/entities"
	"estetica_pro/internal/usecase/interfaces"
)

type WorkOrderStoreRepository struct {
	store *store.Store
}

var _ interfaces.IWorkOrderRepository = (*WorkOrderStoreRepository)(nil)

func NewWorkOrderStoreRepository(s *store.Store) *WorkOrderStoreRepository {
	return &WorkOrderStoreRepository{store: s}
}

func (r *WorkOrderStoreRepository) GetAll(ctx context.Context) ([]entities.WorkOrder, error) {
	return store.GetAll[entities.WorkOrder](ctx, r.store, store.CollectionWorkOrders)
}

func (r *WorkOrderStoreRepository) GetByID(ctx context.Context, id string) (*entities.WorkOrder, error) {
	return store.GetByID[entities.WorkOrder](ctx, r.store, store.CollectionWorkOrders, id)
}

func (r *WorkOrderStoreRepository) Create(ctx context.Context, w entities.WorkOrder) (entities.WorkOrder, error) {
	return store.Create(ctx, r.store, store.CollectionWorkOrders, w)
}

func (r *WorkOrderStoreRepository) Update(ctx context.Context, id string, patch map[string]any) (*entities.WorkOrder, error) {
	return store.Update[entities.WorkOrder](ctx, r.store, store.CollectionWorkOrders, id, patch)
}

func (r *WorkOrderStoreRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.store.Delete(ctx, store.CollectionWorkOrders, id)
}
