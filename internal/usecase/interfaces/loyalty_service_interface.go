package interfaces

import (
	"context"

	"estetica_pro/internal/domain/entities"
)

// ILoyaltyService is the loyalty collaborator consumed by the work-order
// lifecycle: the points-credit trigger on completion and the voucher
// apply/consume pair.
type ILoyaltyService interface {
	AddPointsToClient(ctx context.Context, clientID, workOrderID string, points int, description string) (entities.FidelityCard, error)
	GetVoucherDetails(ctx context.Context, code string) (*entities.Redemption, *entities.Reward, error)
	ConsumeVoucher(ctx context.Context, redemptionID string) error
}
