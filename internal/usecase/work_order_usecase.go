package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"estetica_pro/internal/domain/billing"
	"estetica_pro/internal/domain/entities"
	"estetica_pro/internal/usecase/interfaces"
)

var (
	ErrWorkOrderNotFound     = errors.New("work order not found")
	ErrMissingClient         = errors.New("work order requires a client")
	ErrMissingVehicle        = errors.New("work order requires a vehicle")
	ErrInvalidWorkOrderID    = errors.New("invalid work order id")
	ErrInvalidTargetStatus   = errors.New("invalid target status")
	ErrVoucherInvalid        = errors.New("voucher not found or not active")
	ErrVoucherClientMismatch = errors.New("voucher belongs to another client")
)

// IWorkOrderUseCase drives the service-ticket lifecycle.
//
// Derived totals are recomputed on every save; a stale total can never be
// persisted. Status changes pass through the transition guards, and a draft
// that was never stored is force-saved before its status may change.
type IWorkOrderUseCase interface {
	CreateIntake(ctx context.Context, draft entities.WorkOrder) (entities.WorkOrder, error)
	CreateByStaff(ctx context.Context, draft entities.WorkOrder) (entities.WorkOrder, error)
	Save(ctx context.Context, draft entities.WorkOrder) (entities.WorkOrder, error)
	ChangeStatus(ctx context.Context, draft entities.WorkOrder, target entities.WorkOrderStatus) (entities.WorkOrder, error)
	ApplyVoucher(ctx context.Context, draft *entities.WorkOrder, code string, confirmCrossClient bool) error
	GetByID(ctx context.Context, id string) (entities.WorkOrder, error)
	GetAll(ctx context.Context) ([]entities.WorkOrder, error)
	Delete(ctx context.Context, id string) error
}

type WorkOrderUseCase struct {
	orders   interfaces.IWorkOrderRepository
	clients  interfaces.IClientRepository
	vehicles interfaces.IVehicleRepository
	catalog  interfaces.IServiceCatalog
	loyalty  interfaces.ILoyaltyService
}

var _ IWorkOrderUseCase = (*WorkOrderUseCase)(nil)

func NewWorkOrderUseCase(
	orders interfaces.IWorkOrderRepository,
	clients interfaces.IClientRepository,
	vehicles interfaces.IVehicleRepository,
	catalog interfaces.IServiceCatalog,
	loyalty interfaces.ILoyaltyService,
) *WorkOrderUseCase {
	return &WorkOrderUseCase{orders: orders, clients: clients, vehicles: vehicles, catalog: catalog, loyalty: loyalty}
}

// CreateIntake opens an order from the technician intake flow; it awaits
// staff approval before entering the queue.
func (u *WorkOrderUseCase) CreateIntake(ctx context.Context, draft entities.WorkOrder) (entities.WorkOrder, error) {
	draft.Status = entities.StatusAguardandoAprovacao
	return u.Save(ctx, draft)
}

// CreateByStaff opens an order directly in the queue.
func (u *WorkOrderUseCase) CreateByStaff(ctx context.Context, draft entities.WorkOrder) (entities.WorkOrder, error) {
	draft.Status = entities.StatusAguardando
	return u.Save(ctx, draft)
}

// Save validates the draft, recomputes derived totals and persists. A voucher
// applied during the edit session is consumed here, never earlier, so
// abandoning the edit leaves the voucher active.
func (u *WorkOrderUseCase) Save(ctx context.Context, draft entities.WorkOrder) (entities.WorkOrder, error) {
	if strings.TrimSpace(draft.ClientID) == "" {
		return entities.WorkOrder{}, ErrMissingClient
	}
	if strings.TrimSpace(draft.Vehicle) == "" && strings.TrimSpace(draft.Plate) == "" {
		return entities.WorkOrder{}, ErrMissingVehicle
	}

	var stored *entities.WorkOrder
	if draft.ID != "" {
		var err error
		stored, err = u.orders.GetByID(ctx, draft.ID)
		if err != nil {
			return entities.WorkOrder{}, err
		}
	}

	if err := u.resolveServicePrice(ctx, &draft, stored); err != nil {
		return entities.WorkOrder{}, err
	}

	totals := billing.ComputeTotals(billing.TotalsInput{
		ServicePrice:    draft.ServicePrice,
		AdditionalItems: draft.AdditionalItems,
		Discount:        draft.Discount,
		Insurance:       draft.Insurance,
	})
	draft.TotalValue = totals.Total
	draft.UpdatedAt = time.Now().UTC()
	if draft.Status == "" {
		draft.Status = entities.StatusAguardando
	}
	if draft.PaymentStatus == "" {
		draft.PaymentStatus = entities.PaymentStatusPendente
	}

	saved, err := u.persist(ctx, draft, stored)
	if err != nil {
		return entities.WorkOrder{}, err
	}

	// Deferred voucher consumption: first save carrying this voucher flips it
	// to used.
	if draft.AppliedVoucher != "" && (stored == nil || stored.AppliedVoucher != draft.AppliedVoucher) {
		if err := u.loyalty.ConsumeVoucher(ctx, draft.AppliedVoucher); err != nil {
			log.Printf("[workorder][usecase] voucher consume failed order=%s voucher=%s err=%v", saved.ID, draft.AppliedVoucher, err)
			return entities.WorkOrder{}, err
		}
	}
	return saved, nil
}

// ChangeStatus moves an order through the lifecycle. A draft carrying edits
// is saved before the transition guard runs, so a status change from an
// edited board card cannot lose those edits; drafts with no stored row are
// force-saved. Entering Concluído credits loyalty points to the client
// exactly once per order.
func (u *WorkOrderUseCase) ChangeStatus(ctx context.Context, draft entities.WorkOrder, target entities.WorkOrderStatus) (entities.WorkOrder, error) {
	if !validStatus(target) {
		return entities.WorkOrder{}, ErrInvalidTargetStatus
	}

	var current entities.WorkOrder
	stored, err := u.storedFor(ctx, draft)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	// A bare transition carries only the order id; a draft with a client set
	// is a board-card edit that must land before the guard reads the order.
	if stored == nil || strings.TrimSpace(draft.ClientID) != "" {
		current, err = u.Save(ctx, draft)
		if err != nil {
			return entities.WorkOrder{}, err
		}
	} else {
		current = *stored
	}

	if err := current.TransitionError(target); err != nil {
		return entities.WorkOrder{}, err
	}

	patch := map[string]any{
		"status":     string(target),
		"updated_at": time.Now().UTC(),
	}
	creditPoints := target == entities.StatusConcluido && !current.PointsCredited
	if creditPoints {
		patch["points_credited"] = true
	}

	updated, err := u.orders.Update(ctx, current.ID, patch)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if updated == nil {
		return entities.WorkOrder{}, ErrWorkOrderNotFound
	}

	if creditPoints {
		points := billing.PointsForTotal(updated.TotalValue)
		desc := fmt.Sprintf("Serviço concluído - OS %s", updated.ID)
		if _, err := u.loyalty.AddPointsToClient(ctx, updated.ClientID, updated.ID, points, desc); err != nil {
			log.Printf("[workorder][usecase] points credit failed order=%s client=%s err=%v", updated.ID, updated.ClientID, err)
		}
	}
	return *updated, nil
}

// ApplyVoucher is a side-effecting read: a valid active voucher sets the
// discount fields on the draft and flags it as applied. The voucher itself
// stays active until the order is saved. A voucher owned by another client is
// applied only with explicit confirmation; without it the caller receives
// ErrVoucherClientMismatch to surface the warning.
func (u *WorkOrderUseCase) ApplyVoucher(ctx context.Context, draft *entities.WorkOrder, code string, confirmCrossClient bool) error {
	redemption, reward, err := u.loyalty.GetVoucherDetails(ctx, code)
	if err != nil {
		return err
	}
	if redemption == nil || reward == nil {
		return ErrVoucherInvalid
	}
	if redemption.Status == entities.RedemptionStatusUsed {
		return ErrVoucherAlreadyUsed
	}
	if redemption.Status != entities.RedemptionStatusActive {
		return ErrVoucherInvalid
	}
	if redemption.ClientID != draft.ClientID && !confirmCrossClient {
		return ErrVoucherClientMismatch
	}

	draft.Discount = entities.Discount{
		Type:        reward.Discount.Type,
		Amount:      reward.Discount.Amount,
		Description: fmt.Sprintf("Voucher %s - %s", redemption.Code, reward.Name),
	}
	draft.AppliedVoucher = redemption.ID
	return nil
}

func (u *WorkOrderUseCase) GetByID(ctx context.Context, id string) (entities.WorkOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.WorkOrder{}, ErrInvalidWorkOrderID
	}
	w, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if w == nil {
		return entities.WorkOrder{}, ErrWorkOrderNotFound
	}
	return *w, nil
}

func (u *WorkOrderUseCase) GetAll(ctx context.Context) ([]entities.WorkOrder, error) {
	return u.orders.GetAll(ctx)
}

func (u *WorkOrderUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidWorkOrderID
	}
	_, err := u.orders.Delete(ctx, id)
	return err
}

// resolveServicePrice re-derives the catalog price only when the stored total
// is zero or the selected service set changed; a manual override survives
// every other save.
func (u *WorkOrderUseCase) resolveServicePrice(ctx context.Context, draft *entities.WorkOrder, stored *entities.WorkOrder) error {
	var persistedIDs []string
	currentTotal := draft.TotalValue
	if stored != nil {
		persistedIDs = stored.ServiceIDs
	}
	if !billing.ShouldRecomputeServicePrice(currentTotal, draft.ServiceIDs, persistedIDs) {
		return nil
	}

	size := entities.VehicleSizeMedium
	if v, err := u.vehicleForDraft(ctx, draft); err != nil {
		return err
	} else if v != nil {
		size = v.Size
	}

	price, err := billing.SumServicePrices(draft.ServiceIDs, size, func(serviceID string, size entities.VehicleSize) (float64, error) {
		return u.catalog.GetPrice(ctx, serviceID, size)
	})
	if err != nil {
		return err
	}
	draft.ServicePrice = price
	return nil
}

// vehicleForDraft matches the denormalized plate snapshot back to a stored
// vehicle to pick the pricing size. No match is fine: the order keeps its
// snapshot and prices at the medium bucket.
func (u *WorkOrderUseCase) vehicleForDraft(ctx context.Context, draft *entities.WorkOrder) (*entities.Vehicle, error) {
	if draft.Plate == "" {
		return nil, nil
	}
	owned, err := u.vehicles.ListByClientID(ctx, draft.ClientID)
	if err != nil {
		return nil, err
	}
	for _, v := range owned {
		if v.Plate == draft.Plate {
			found := v
			return &found, nil
		}
	}
	return nil, nil
}

func (u *WorkOrderUseCase) storedFor(ctx context.Context, draft entities.WorkOrder) (*entities.WorkOrder, error) {
	if draft.ID == "" {
		return nil, nil
	}
	return u.orders.GetByID(ctx, draft.ID)
}

// persist creates or fully patches the draft. Updates send every mutable
// field so the stored record always carries the freshly computed totals.
func (u *WorkOrderUseCase) persist(ctx context.Context, draft entities.WorkOrder, stored *entities.WorkOrder) (entities.WorkOrder, error) {
	if stored == nil {
		return u.orders.Create(ctx, draft)
	}

	patch := map[string]any{
		"client_id":         draft.ClientID,
		"vehicle":           draft.Vehicle,
		"plate":             draft.Plate,
		"service":           draft.Service,
		"service_ids":       draft.ServiceIDs,
		"technician":        draft.Technician,
		"total_value":       draft.TotalValue,
		"service_price":     draft.ServicePrice,
		"discount":          draft.Discount,
		"insurance":         draft.Insurance,
		"additional_items":  draft.AdditionalItems,
		"damages":           draft.Damages,
		"vehicle_inventory": draft.Inventory,
		"daily_log":         draft.DailyLog,
		"qa_checklist":      draft.QAChecklist,
		"nps_score":         draft.NPSScore,
		"campaign_id":       draft.CampaignID,
		"applied_voucher":   draft.AppliedVoucher,
		"updated_at":        draft.UpdatedAt,
	}
	updated, err := u.orders.Update(ctx, draft.ID, patch)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if updated == nil {
		return entities.WorkOrder{}, ErrWorkOrderNotFound
	}
	return *updated, nil
}

func validStatus(s entities.WorkOrderStatus) bool {
	switch s {
	case entities.StatusAguardandoAprovacao, entities.StatusAguardando,
		entities.StatusEmAndamento, entities.StatusAguardandoPecas,
		entities.StatusControleQualidade, entities.StatusConcluido,
		entities.StatusEntregue, entities.StatusCancelado:
		return true
	}
	return false
}
