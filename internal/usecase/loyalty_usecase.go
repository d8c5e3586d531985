package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"estetica_pro/internal/domain/entities"
	"estetica_pro/internal/usecase/interfaces"
)

var (
	ErrRewardNotFound      = errors.New("reward not found")
	ErrRewardTierLocked    = errors.New("client tier does not unlock this reward")
	ErrInsufficientPoints  = errors.New("not enough points for this reward")
	ErrVoucherAlreadyUsed  = errors.New("voucher already consumed")
	ErrVoucherNotFound     = errors.New("voucher not found")
	ErrInvalidClientID     = errors.New("invalid client id")
	ErrInvalidPointsAmount = errors.New("points delta cannot be zero")
)

// ILoyaltyUseCase manages the per-client loyalty ledger: fidelity card,
// append-only points history, reward redemption and voucher consumption.
type ILoyaltyUseCase interface {
	interfaces.ILoyaltyService
	GetCard(ctx context.Context, clientID string) (entities.FidelityCard, error)
	GetHistory(ctx context.Context, clientID string) ([]entities.PointsEntry, error)
	ListRewards(ctx context.Context) ([]entities.Reward, error)
	RedeemReward(ctx context.Context, clientID, rewardID string) (entities.Redemption, error)
}

type LoyaltyUseCase struct {
	repo interfaces.ILoyaltyRepository
}

var _ ILoyaltyUseCase = (*LoyaltyUseCase)(nil)

func NewLoyaltyUseCase(repo interfaces.ILoyaltyRepository) *LoyaltyUseCase {
	return &LoyaltyUseCase{repo: repo}
}

// AddPointsToClient applies a signed points delta: positive deltas accrue
// (and raise lifetime points for tier progression), negative deltas spend.
// Every delta lands in the append-only history.
func (u *LoyaltyUseCase) AddPointsToClient(ctx context.Context, clientID, workOrderID string, points int, description string) (entities.FidelityCard, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return entities.FidelityCard{}, ErrInvalidClientID
	}
	if points == 0 {
		return entities.FidelityCard{}, ErrInvalidPointsAmount
	}

	card, err := u.cardFor(ctx, clientID)
	if err != nil {
		return entities.FidelityCard{}, err
	}

	total := card.TotalPoints + points
	if total < 0 {
		total = 0
	}
	lifetime := card.LifetimePoints
	if points > 0 {
		lifetime += points
	}
	tier := entities.TierForPoints(lifetime)

	updated, err := u.repo.UpdateCard(ctx, card.ID, map[string]any{
		"total_points":    total,
		"lifetime_points": lifetime,
		"tier":            string(tier),
	})
	if err != nil {
		return entities.FidelityCard{}, err
	}
	if updated == nil {
		return entities.FidelityCard{}, fmt.Errorf("fidelity card %s vanished during update", card.ID)
	}

	if _, err := u.repo.AppendPointsEntry(ctx, entities.PointsEntry{
		ClientID:    clientID,
		WorkOrderID: workOrderID,
		Points:      points,
		Description: description,
	}); err != nil {
		return entities.FidelityCard{}, err
	}

	log.Printf("[loyalty][usecase] points applied client=%s delta=%d total=%d tier=%s", clientID, points, total, tier)
	return *updated, nil
}

func (u *LoyaltyUseCase) GetCard(ctx context.Context, clientID string) (entities.FidelityCard, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return entities.FidelityCard{}, ErrInvalidClientID
	}
	return u.cardFor(ctx, clientID)
}

func (u *LoyaltyUseCase) GetHistory(ctx context.Context, clientID string) ([]entities.PointsEntry, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return nil, ErrInvalidClientID
	}
	return u.repo.ListPointsByClientID(ctx, clientID)
}

func (u *LoyaltyUseCase) ListRewards(ctx context.Context) ([]entities.Reward, error) {
	return u.repo.ListRewards(ctx)
}

// RedeemReward spends points on a reward and mints an active voucher with a
// fresh code. Tier gating applies before the points check.
func (u *LoyaltyUseCase) RedeemReward(ctx context.Context, clientID, rewardID string) (entities.Redemption, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return entities.Redemption{}, ErrInvalidClientID
	}

	reward, err := u.repo.GetRewardByID(ctx, rewardID)
	if err != nil {
		return entities.Redemption{}, err
	}
	if reward == nil || !reward.Active {
		return entities.Redemption{}, ErrRewardNotFound
	}

	card, err := u.cardFor(ctx, clientID)
	if err != nil {
		return entities.Redemption{}, err
	}
	if !entities.TierAllows(card.Tier, reward.MinTier) {
		return entities.Redemption{}, ErrRewardTierLocked
	}
	if card.TotalPoints < reward.PointsCost {
		return entities.Redemption{}, ErrInsufficientPoints
	}

	if _, err := u.AddPointsToClient(ctx, clientID, "", -reward.PointsCost, fmt.Sprintf("Resgate: %s", reward.Name)); err != nil {
		return entities.Redemption{}, err
	}

	redemption := entities.Redemption{
		ClientID: clientID,
		RewardID: reward.ID,
		Code:     newVoucherCode(),
		Status:   entities.RedemptionStatusActive,
	}
	return u.repo.CreateRedemption(ctx, redemption)
}

// GetVoucherDetails resolves a voucher code into its redemption and reward.
// Both come back nil when the code is unknown.
func (u *LoyaltyUseCase) GetVoucherDetails(ctx context.Context, code string) (*entities.Redemption, *entities.Reward, error) {
	redemption, err := u.repo.GetRedemptionByCode(ctx, code)
	if err != nil {
		return nil, nil, err
	}
	if redemption == nil {
		return nil, nil, nil
	}
	reward, err := u.repo.GetRewardByID(ctx, redemption.RewardID)
	if err != nil {
		return nil, nil, err
	}
	return redemption, reward, nil
}

// ConsumeVoucher flips an active redemption to used. Consumption happens at
// work-order save time, never at apply time.
func (u *LoyaltyUseCase) ConsumeVoucher(ctx context.Context, redemptionID string) error {
	redemptionID = strings.TrimSpace(redemptionID)
	if redemptionID == "" {
		return ErrVoucherNotFound
	}
	updated, err := u.repo.UpdateRedemption(ctx, redemptionID, map[string]any{
		"status":  string(entities.RedemptionStatusUsed),
		"used_at": time.Now().UTC(),
	})
	if err != nil {
		return err
	}
	if updated == nil {
		return ErrVoucherNotFound
	}
	return nil
}

// cardFor fetches the client's card, creating a bronze one on first touch.
func (u *LoyaltyUseCase) cardFor(ctx context.Context, clientID string) (entities.FidelityCard, error) {
	card, err := u.repo.GetCardByClientID(ctx, clientID)
	if err != nil {
		return entities.FidelityCard{}, err
	}
	if card != nil {
		return *card, nil
	}
	return u.repo.CreateCard(ctx, entities.FidelityCard{
		ClientID: clientID,
		Tier:     entities.TierBronze,
	})
}

func newVoucherCode() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}
