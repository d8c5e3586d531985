package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"estetica_pro/internal/domain/entities"
	"estetica_pro/internal/usecase/interfaces"
)

var (
	ErrClientNotFound    = errors.New("client not found")
	ErrInvalidClientName = errors.New("client name is required")
	ErrVehicleNotFound   = errors.New("vehicle not found")
)

// Engagement thresholds in days since last visit.
const (
	churnRiskAfterDays = 60
	inactiveAfterDays  = 120
)

// Segmentation thresholds.
const (
	vipLTVMin          = 5000
	recurringVisitsMin = 4
)

// IClientUseCase is the CRM surface: clients, their vehicles, and engagement
// reclassification. LTV and visit counters are owned by the payment flow and
// are stripped from any inbound patch.
type IClientUseCase interface {
	Create(ctx context.Context, c entities.Client) (entities.Client, error)
	Update(ctx context.Context, id string, patch map[string]any) (entities.Client, error)
	GetByID(ctx context.Context, id string) (entities.Client, error)
	GetAll(ctx context.Context) ([]entities.Client, error)
	Delete(ctx context.Context, id string) error
	AddVehicle(ctx context.Context, clientID string, v entities.Vehicle) (entities.Vehicle, error)
	ListVehicles(ctx context.Context, clientID string) ([]entities.Vehicle, error)
	RemoveVehicle(ctx context.Context, vehicleID string) error
	RefreshEngagement(ctx context.Context, now time.Time) (int, error)
}

type ClientUseCase struct {
	clients  interfaces.IClientRepository
	vehicles interfaces.IVehicleRepository
}

var _ IClientUseCase = (*ClientUseCase)(nil)

func NewClientUseCase(clients interfaces.IClientRepository, vehicles interfaces.IVehicleRepository) *ClientUseCase {
	return &ClientUseCase{clients: clients, vehicles: vehicles}
}

func (u *ClientUseCase) Create(ctx context.Context, c entities.Client) (entities.Client, error) {
	if strings.TrimSpace(c.Name) == "" {
		return entities.Client{}, ErrInvalidClientName
	}
	c.LTV = 0
	c.VisitCount = 0
	c.Status = entities.ClientStatusActive
	c.Segment = entities.ClientSegmentNew

	nested := c.Vehicles
	c.Vehicles = nil
	created, err := u.clients.Create(ctx, c)
	if err != nil {
		return entities.Client{}, err
	}

	// Vehicles submitted nested on the form are flattened at once.
	for _, v := range nested {
		if _, err := u.AddVehicle(ctx, created.ID, v); err != nil {
			return entities.Client{}, err
		}
	}
	return created, nil
}

func (u *ClientUseCase) Update(ctx context.Context, id string, patch map[string]any) (entities.Client, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Client{}, ErrClientNotFound
	}
	// Payment-owned counters are never user-editable.
	delete(patch, "ltv")
	delete(patch, "visit_count")
	delete(patch, "last_visit")

	updated, err := u.clients.Update(ctx, id, patch)
	if err != nil {
		return entities.Client{}, err
	}
	if updated == nil {
		return entities.Client{}, ErrClientNotFound
	}
	return *updated, nil
}

func (u *ClientUseCase) GetByID(ctx context.Context, id string) (entities.Client, error) {
	c, err := u.clients.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return entities.Client{}, err
	}
	if c == nil {
		return entities.Client{}, ErrClientNotFound
	}
	return *c, nil
}

func (u *ClientUseCase) GetAll(ctx context.Context) ([]entities.Client, error) {
	return u.clients.GetAll(ctx)
}

func (u *ClientUseCase) Delete(ctx context.Context, id string) error {
	_, err := u.clients.Delete(ctx, strings.TrimSpace(id))
	return err
}

func (u *ClientUseCase) AddVehicle(ctx context.Context, clientID string, v entities.Vehicle) (entities.Vehicle, error) {
	client, err := u.clients.GetByID(ctx, clientID)
	if err != nil {
		return entities.Vehicle{}, err
	}
	if client == nil {
		return entities.Vehicle{}, ErrClientNotFound
	}
	v.ClientID = clientID
	if v.Size == "" {
		v.Size = entities.VehicleSizeMedium
	}
	return u.vehicles.Create(ctx, v)
}

func (u *ClientUseCase) ListVehicles(ctx context.Context, clientID string) ([]entities.Vehicle, error) {
	return u.vehicles.ListByClientID(ctx, strings.TrimSpace(clientID))
}

func (u *ClientUseCase) RemoveVehicle(ctx context.Context, vehicleID string) error {
	_, err := u.vehicles.Delete(ctx, strings.TrimSpace(vehicleID))
	return err
}

// RefreshEngagement reclassifies every client's status and segment from
// LastVisit, VisitCount and LTV. Returns how many records changed. The daily
// job calls this; it is also exposed for manual runs.
func (u *ClientUseCase) RefreshEngagement(ctx context.Context, now time.Time) (int, error) {
	clients, err := u.clients.GetAll(ctx)
	if err != nil {
		return 0, err
	}

	changed := 0
	for _, c := range clients {
		status := engagementStatus(c, now)
		segment := engagementSegment(c, status)
		if status == c.Status && segment == c.Segment {
			continue
		}
		if _, err := u.clients.Update(ctx, c.ID, map[string]any{
			"status":  string(status),
			"segment": string(segment),
		}); err != nil {
			return changed, err
		}
		changed++
	}
	if changed > 0 {
		log.Printf("[client][usecase] engagement refresh reclassified %d clients", changed)
	}
	return changed, nil
}

func engagementStatus(c entities.Client, now time.Time) entities.ClientStatus {
	if c.LastVisit == nil {
		return entities.ClientStatusActive
	}
	days := int(now.Sub(*c.LastVisit).Hours() / 24)
	switch {
	case days > inactiveAfterDays:
		return entities.ClientStatusInactive
	case days > churnRiskAfterDays:
		return entities.ClientStatusChurnRisk
	default:
		return entities.ClientStatusActive
	}
}

func engagementSegment(c entities.Client, status entities.ClientStatus) entities.ClientSegment {
	switch {
	case c.LTV >= vipLTVMin:
		return entities.ClientSegmentVIP
	case status != entities.ClientStatusActive:
		return entities.ClientSegmentAtRisk
	case c.VisitCount >= recurringVisitsMin:
		return entities.ClientSegmentRecurring
	default:
		return entities.ClientSegmentNew
	}
}
