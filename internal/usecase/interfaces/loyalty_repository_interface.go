package interfaces

import (
	"context"

	"estetica_pro/internal/domain/entities"
)

// ILoyaltyRepository abstracts the loyalty ledger collections: fidelity
// cards, the append-only points history, rewards and redemptions.
type ILoyaltyRepository interface {
	GetCardByClientID(ctx context.Context, clientID string) (*entities.FidelityCard, error)
	CreateCard(ctx context.Context, card entities.FidelityCard) (entities.FidelityCard, error)
	UpdateCard(ctx context.Context, id string, patch map[string]any) (*entities.FidelityCard, error)
	AppendPointsEntry(ctx context.Context, entry entities.PointsEntry) (entities.PointsEntry, error)
	ListPointsByClientID(ctx context.Context, clientID string) ([]entities.PointsEntry, error)
	ListRewards(ctx context.Context) ([]entities.Reward, error)
	GetRewardByID(ctx context.Context, id string) (*entities.Reward, error)
	GetRedemptionByCode(ctx context.Context, code string) (*entities.Redemption, error)
	CreateRedemption(ctx context.Context, r entities.Redemption) (entities.Redemption, error)
	UpdateRedemption(ctx context.Context, id string, patch map[string]any) (*entities.Redemption, error)
}
