package repository

import (
	"context"
	"strings"

	"estetica_pro/internal/adapter/persistence/store"
	"estetica_pro/internal/domain/entities"
	"estetica_pro/internal/usecase/interfaces"
)

type LoyaltyStoreRepository struct {
	store *store.Store
}

var _ interfaces.ILoyaltyRepository = (*LoyaltyStoreRepository)(nil)

func NewLoyaltyStoreRepository(s *store.Store) *LoyaltyStoreRepository {
	return &LoyaltyStoreRepository{store: s}
}

func (r *LoyaltyStoreRepository) GetCardByClientID(ctx context.Context, clientID string) (*entities.FidelityCard, error) {
	cards, err := store.GetAll[entities.FidelityCard](ctx, r.store, store.CollectionFidelityCards)
	if err != nil {
		return nil, err
	}
	for _, c := range cards {
		if c.ClientID == clientID {
			card := c
			return &card, nil
		}
	}
	return nil, nil
}

func (r *LoyaltyStoreRepository) CreateCard(ctx context.Context, card entities.FidelityCard) (entities.FidelityCard, error) {
	return store.Create(ctx, r.store, store.CollectionFidelityCards, card)
}

func (r *LoyaltyStoreRepository) UpdateCard(ctx context.Context, id string, patch map[string]any) (*entities.FidelityCard, error) {
	return store.Update[entities.FidelityCard](ctx, r.store, store.CollectionFidelityCards, id, patch)
}

func (r *LoyaltyStoreRepository) AppendPointsEntry(ctx context.Context, entry entities.PointsEntry) (entities.PointsEntry, error) {
	return store.Create(ctx, r.store, store.CollectionPointsHistory, entry)
}

func (r *LoyaltyStoreRepository) ListPointsByClientID(ctx context.Context, clientID string) ([]entities.PointsEntry, error) {
	all, err := store.GetAll[entities.PointsEntry](ctx, r.store, store.CollectionPointsHistory)
	if err != nil {
		return nil, err
	}
	out := []entities.PointsEntry{}
	for _, e := range all {
		if e.ClientID == clientID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *LoyaltyStoreRepository) ListRewards(ctx context.Context) ([]entities.Reward, error) {
	return store.GetAll[entities.Reward](ctx, r.store, store.CollectionRewards)
}

func (r *LoyaltyStoreRepository) GetRewardByID(ctx context.Context, id string) (*entities.Reward, error) {
	return store.GetByID[entities.Reward](ctx, r.store, store.CollectionRewards, id)
}

// GetRedemptionByCode resolves a voucher by its user-typed code,
// case-insensitively.
func (r *LoyaltyStoreRepository) GetRedemptionByCode(ctx context.Context, code string) (*entities.Redemption, error) {
	all, err := store.GetAll[entities.Redemption](ctx, r.store, store.CollectionRedemptions)
	if err != nil {
		return nil, err
	}
	code = strings.ToUpper(strings.TrimSpace(code))
	for _, red := range all {
		if strings.ToUpper(red.Code) == code {
			found := red
			return &found, nil
		}
	}
	return nil, nil
}

func (r *LoyaltyStoreRepository) CreateRedemption(ctx context.Context, red entities.Redemption) (entities.Redemption, error) {
	return store.Create(ctx, r.store, store.CollectionRedemptions, red)
}

func (r *LoyaltyStoreRepository) UpdateRedemption(ctx context.Context, id string, patch map[string]any) (*entities.Redemption, error) {
	return store.Update[entities.Redemption](ctx, r.store, store.CollectionRedemptions, id, patch)
}
