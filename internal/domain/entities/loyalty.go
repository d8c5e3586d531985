package entities

import "time"

// LoyaltyTier gates which rewards a client may redeem.
type LoyaltyTier string

const (
	TierBronze LoyaltyTier = "bronze"
	TierPrata  LoyaltyTier = "prata"
	TierOuro   LoyaltyTier = "ouro"
)

// Tier thresholds on lifetime points.
const (
	tierPrataMin = 500
	tierOuroMin  = 1500
)

// TierForPoints maps lifetime accrued points to a tier.
func TierForPoints(lifetime int) LoyaltyTier {
	switch {
	case lifetime >= tierOuroMin:
		return TierOuro
	case lifetime >= tierPrataMin:
		return TierPrata
	default:
		return TierBronze
	}
}

// PointsEntry is one signed delta in a client's points history. The history
// is append-only.
//
// Storage model:
//   - collection: points_history
//   - PK: id
type PointsEntry struct {
	ID          string    `json:"id"`
	ClientID    string    `json:"client_id"`
	WorkOrderID string    `json:"work_order_id,omitempty"`
	Points      int       `json:"points"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// FidelityCard is the per-client loyalty summary.
//
// Storage model:
//   - collection: fidelity_cards
//   - PK: id (one card per client, ClientID indexed by scan)
//
// LifetimePoints only grows; TotalPoints is the spendable balance.
type FidelityCard struct {
	ID             string      `json:"id"`
	ClientID       string      `json:"client_id"`
	TotalPoints    int         `json:"total_points"`
	LifetimePoints int         `json:"lifetime_points"`
	Tier           LoyaltyTier `json:"tier"`
	CreatedAt      time.Time   `json:"created_at"`
}

// Reward is a redeemable catalog entry gated by tier and point cost.
//
// Storage model:
//   - collection: rewards
//   - PK: id
type Reward struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	PointsCost  int         `json:"points_cost"`
	MinTier     LoyaltyTier `json:"min_tier"`
	Discount    Discount    `json:"discount"`
	Active      bool        `json:"active"`
	CreatedAt   time.Time   `json:"created_at"`
}

// RedemptionStatus of a claimed voucher.
type RedemptionStatus string

const (
	RedemptionStatusActive  RedemptionStatus = "active"
	RedemptionStatusUsed    RedemptionStatus = "used"
	RedemptionStatusExpired RedemptionStatus = "expired"
)

// Redemption is a claimed reward instance with a unique voucher code,
// consumable exactly once.
//
// Storage model:
//   - collection: redemptions
//   - PK: id (Code resolved by scan; codes are short and user-typed)
type Redemption struct {
	ID        string           `json:"id"`
	ClientID  string           `json:"client_id"`
	RewardID  string           `json:"reward_id"`
	Code      string           `json:"code"`
	Status    RedemptionStatus `json:"status"`
	UsedAt    *time.Time       `json:"used_at,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
}

// TierAllows reports whether a client tier satisfies a reward's minimum.
func TierAllows(clientTier, minTier LoyaltyTier) bool {
	rank := map[LoyaltyTier]int{TierBronze: 0, TierPrata: 1, TierOuro: 2}
	return rank[clientTier] >= rank[minTier]
}
