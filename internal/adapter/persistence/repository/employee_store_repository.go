package repository

import (
	"context"

	"estetica_pro/internal/adapter/persistence/store"
	"estetica_pro/internal/domain/entities"
	"estetica_pro/internal/usecase/interfaces"
)

type EmployeeStoreRepository struct {
	store *store.Store
}

var _ interfaces.IEmployeeRepository = (*EmployeeStoreRepository)(nil)

func NewEmployeeStoreRepository(s *store.Store) *EmployeeStoreRepository {
	return &EmployeeStoreRepository{store: s}
}

func (r *EmployeeStoreRepository) GetAll(ctx context.Context) ([]entities.Employee, error) {
	return store.GetAll[entities.Employee](ctx, r.store, store.CollectionEmployees)
}

func (r *EmployeeStoreRepository) GetByID(ctx context.Context, id string) (*entities.Employee, error) {
	return store.GetByID[entities.Employee](ctx, r.store, store.CollectionEmployees, id)
}

func (r *EmployeeStoreRepository) Create(ctx context.Context, e entities.Employee) (entities.Employee, error) {
	return store.Create(ctx, r.store, store.CollectionEmployees, e)
}

func (r *EmployeeStoreRepository) Update(ctx context.Context, id string, patch map[string]any) (*entities.Employee, error) {
	return store.Update[entities.Employee](ctx, r.store, store.CollectionEmployees, id, patch)
}

func (r *EmployeeStoreRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.store.Delete(ctx, store.CollectionEmployees, id)
}
