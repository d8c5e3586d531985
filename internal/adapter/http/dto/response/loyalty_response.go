package response

import (
	"time"

	"estetica_pro/internal/domain/entities"
)

type FidelityCardResponse struct {
	ID             string    `json:"id"`
	ClientID       string    `json:"client_id"`
	TotalPoints    int       `json:"total_points"`
	LifetimePoints int       `json:"lifetime_points"`
	Tier           string    `json:"tier"`
	CreatedAt      time.Time `json:"created_at"`
}

type PointsEntryResponse struct {
	ID          string    `json:"id"`
	ClientID    string    `json:"client_id"`
	WorkOrderID string    `json:"work_order_id,omitempty"`
	Points      int       `json:"points"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

type RewardResponse struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	PointsCost  int               `json:"points_cost"`
	MinTier     string            `json:"min_tier"`
	Discount    entities.Discount `json:"discount"`
	Active      bool              `json:"active"`
}

type RedemptionResponse struct {
	ID        string     `json:"id"`
	ClientID  string     `json:"client_id"`
	RewardID  string     `json:"reward_id"`
	Code      string     `json:"code"`
	Status    string     `json:"status"`
	UsedAt    *time.Time `json:"used_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// VoucherDetailsResponse pairs a redemption with its reward so the POS can
// preview the discount before applying the voucher to an order.
type VoucherDetailsResponse struct {
	Redemption RedemptionResponse `json:"redemption"`
	Reward     RewardResponse     `json:"reward"`
}

func FromFidelityCard(c entities.FidelityCard) FidelityCardResponse {
	return FidelityCardResponse{
		ID:             c.ID,
		ClientID:       c.ClientID,
		TotalPoints:    c.TotalPoints,
		LifetimePoints: c.LifetimePoints,
		Tier:           string(c.Tier),
		CreatedAt:      c.CreatedAt,
	}
}

func FromPointsEntry(e entities.PointsEntry) PointsEntryResponse {
	return PointsEntryResponse{
		ID:          e.ID,
		ClientID:    e.ClientID,
		WorkOrderID: e.WorkOrderID,
		Points:      e.Points,
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
	}
}

func FromReward(r entities.Reward) RewardResponse {
	return RewardResponse{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		PointsCost:  r.PointsCost,
		MinTier:     string(r.MinTier),
		Discount:    r.Discount,
		Active:      r.Active,
	}
}

func FromRedemption(r entities.Redemption) RedemptionResponse {
	return RedemptionResponse{
		ID:        r.ID,
		ClientID:  r.ClientID,
		RewardID:  r.RewardID,
		Code:      r.Code,
		Status:    string(r.Status),
		UsedAt:    r.UsedAt,
		CreatedAt: r.CreatedAt,
	}
}
