package repository

import (
	"context"

	"estetica_pro/internal/adapter/persistence/store"
	"estetica_pro/internal/domain/entities"
	"estetica_pro/internal/usecase/interfaces"
)

type FinancialStoreRepository struct {
	store *store.Store
}

var _ interfaces.IFinancialRepository = (*FinancialStoreRepository)(nil)

func NewFinancialStoreRepository(s *store.Store) *FinancialStoreRepository {
	return &FinancialStoreRepository{store: s}
}

func (r *FinancialStoreRepository) GetAll(ctx context.Context) ([]entities.FinancialTransaction, error) {
	return store.GetAll[entities.FinancialTransaction](ctx, r.store, store.CollectionFinancialTransactions)
}

func (r *FinancialStoreRepository) GetByID(ctx context.Context, id string) (*entities.FinancialTransaction, error) {
	return store.GetByID[entities.FinancialTransaction](ctx, r.store, store.CollectionFinancialTransactions, id)
}

func (r *FinancialStoreRepository) ListByWorkOrderID(ctx context.Context, workOrderID string) ([]entities.FinancialTransaction, error) {
	all, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := []entities.FinancialTransaction{}
	for _, t := range all {
		if t.WorkOrderID == workOrderID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *FinancialStoreRepository) Create(ctx context.Context, t entities.FinancialTransaction) (entities.FinancialTransaction, error) {
	return store.Create(ctx, r.store, store.CollectionFinancialTransactions, t)
}

func (r *FinancialStoreRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.store.Delete(ctx, store.CollectionFinancialTransactions, id)
}
