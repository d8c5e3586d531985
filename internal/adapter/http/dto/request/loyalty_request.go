package request

type RedeemRewardRequest struct {
	ClientID string `json:"client_id" binding:"required"`
	RewardID string `json:"reward_id" binding:"required"`
}

// PointsAdjustRequest applies a manual signed points delta to a client's
// card (e.g. a goodwill credit or a correction).
type PointsAdjustRequest struct {
	ClientID    string `json:"client_id" binding:"required"`
	Points      int    `json:"points" binding:"required"`
	Description string `json:"description"`
}
