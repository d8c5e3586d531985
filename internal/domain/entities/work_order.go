package entities

import (
	"errors"
	"fmt"
	"time"
)

// WorkOrderStatus is the service-ticket lifecycle.
//
// Lifecycle:
//
//	Aguardando Aprovação -> Aguardando -> Em Andamento <-> Aguardando Peças
//	  -> Controle de Qualidade -> Concluído -> Entregue
//
// Cancelado is reachable from any non-terminal state.
type WorkOrderStatus string

const (
	StatusAguardandoAprovacao WorkOrderStatus = "Aguardando Aprovação"
	StatusAguardando          WorkOrderStatus = "Aguardando"
	StatusEmAndamento         WorkOrderStatus = "Em Andamento"
	StatusAguardandoPecas     WorkOrderStatus = "Aguardando Peças"
	StatusControleQualidade   WorkOrderStatus = "Controle de Qualidade"
	StatusConcluido           WorkOrderStatus = "Concluído"
	StatusEntregue            WorkOrderStatus = "Entregue"
	StatusCancelado           WorkOrderStatus = "Cancelado"
)

// PaymentStatus of a work order.
type PaymentStatus string

const (
	PaymentStatusPendente PaymentStatus = "pending"
	PaymentStatusPago     PaymentStatus = "paid"
)

// DiscountType selects how Discount.Amount is interpreted.
type DiscountType string

const (
	DiscountTypePercentage DiscountType = "percentage"
	DiscountTypeValue      DiscountType = "value"
	DiscountTypeService    DiscountType = "service"
)

// Discount applied to a work order. For percentage, Amount is 0-100; for
// value and service it is an absolute amount.
type Discount struct {
	Type        DiscountType `json:"type"`
	Amount      float64      `json:"amount"`
	Description string       `json:"description"`
}

// Insurance billing data. When IsInsurance is set the discount mechanism is
// bypassed entirely and the insurance fields are authoritative.
type Insurance struct {
	IsInsurance            bool    `json:"is_insurance"`
	Company                string  `json:"company"`
	ClaimNumber            string  `json:"claim_number"`
	DeductibleAmount       float64 `json:"deductible_amount"`
	InsuranceCoveredAmount float64 `json:"insurance_covered_amount"`
}

// AdditionalItem is a free-form billed line besides catalog services.
type AdditionalItem struct {
	Description string  `json:"description"`
	Value       float64 `json:"value"`
}

// DamageArea is a fixed vehicle zone for intake damage marking.
type DamageArea string

const (
	DamageAreaCapo           DamageArea = "capo"
	DamageAreaTeto           DamageArea = "teto"
	DamageAreaPortaMalas     DamageArea = "porta_malas"
	DamageAreaParachoqueDian DamageArea = "parachoque_dianteiro"
	DamageAreaParachoqueTras DamageArea = "parachoque_traseiro"
	DamageAreaLateralEsq     DamageArea = "lateral_esquerda"
	DamageAreaLateralDir     DamageArea = "lateral_direita"
	DamageAreaRodas          DamageArea = "rodas"
	DamageAreaVidros         DamageArea = "vidros"
	DamageAreaInterior       DamageArea = "interior"
)

// DamagePhotoPending is the PhotoURL sentinel until a photo is attached.
const DamagePhotoPending = "pending"

// DamagePoint records pre-existing damage found at intake.
type DamagePoint struct {
	ID          string     `json:"id"`
	Area        DamageArea `json:"area"`
	Type        string     `json:"type"`
	Description string     `json:"description"`
	PhotoURL    string     `json:"photo_url"`
}

// VehicleInventory is the intake checklist of items found in the vehicle.
type VehicleInventory struct {
	Documents   bool   `json:"documents"`
	SpareTire   bool   `json:"spare_tire"`
	Jack        bool   `json:"jack"`
	Triangle    bool   `json:"triangle"`
	FloorMats   bool   `json:"floor_mats"`
	SoundSystem bool   `json:"sound_system"`
	Belongings  string `json:"belongings"`
}

// DailyLogEntry is an ordered progress note with optional photos.
type DailyLogEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Note      string    `json:"note"`
	Photos    []string  `json:"photos,omitempty"`
	Author    string    `json:"author"`
}

// QAItem is a quality gate entry. Required items block delivery until checked.
type QAItem struct {
	Label    string `json:"label"`
	Required bool   `json:"required"`
	Checked  bool   `json:"checked"`
}

// WorkOrder is the service ticket (OS) persisted in "work_orders".
//
// Storage model:
//   - collection: work_orders
//   - PK: id
//
// Vehicle/Plate are a denormalized snapshot taken at creation, not a live
// reference. TotalValue must always equal the last computed derived total at
// save time; the use case recomputes before every persist.
type WorkOrder struct {
	ID              string           `json:"id"`
	ClientID        string           `json:"client_id"`
	Vehicle         string           `json:"vehicle"`
	Plate           string           `json:"plate"`
	Service         string           `json:"service"`
	ServiceIDs      []string         `json:"service_ids"`
	Status          WorkOrderStatus  `json:"status"`
	Technician      string           `json:"technician"`
	TotalValue      float64          `json:"total_value"`
	ServicePrice    float64          `json:"service_price"`
	Discount        Discount         `json:"discount"`
	Insurance       Insurance        `json:"insurance"`
	AdditionalItems []AdditionalItem `json:"additional_items,omitempty"`
	Damages         []DamagePoint    `json:"damages,omitempty"`
	Inventory       VehicleInventory `json:"vehicle_inventory"`
	DailyLog        []DailyLogEntry  `json:"daily_log,omitempty"`
	QAChecklist     []QAItem         `json:"qa_checklist,omitempty"`
	PaymentStatus   PaymentStatus    `json:"payment_status"`
	PaymentMethod   string           `json:"payment_method,omitempty"`
	PaidAt          *time.Time       `json:"paid_at,omitempty"`
	NPSScore        *int             `json:"nps_score,omitempty"`
	CampaignID      string           `json:"campaign_id,omitempty"`
	AppliedVoucher  string           `json:"applied_voucher,omitempty"`
	PointsCredited  bool             `json:"points_credited"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

var ErrQAChecklistIncomplete = errors.New("required quality checklist items not completed")

// QAComplete reports whether every required checklist item is checked.
func (w WorkOrder) QAComplete() bool {
	for _, item := range w.QAChecklist {
		if item.Required && !item.Checked {
			return false
		}
	}
	return true
}

// Terminal reports whether the order reached a final state.
func (w WorkOrder) Terminal() bool {
	return w.Status == StatusEntregue || w.Status == StatusCancelado
}

// CanTransition reports whether the order may move to target. Entering
// Entregue is the only hard guard (full required QA); Cancelado is always
// legal from a non-terminal state; everything else is unguarded.
func (w WorkOrder) CanTransition(target WorkOrderStatus) bool {
	return w.TransitionError(target) == nil
}

// TransitionError returns the guard violation blocking a move to target, or
// nil when the transition is allowed. No state is mutated.
func (w WorkOrder) TransitionError(target WorkOrderStatus) error {
	if w.Terminal() {
		return fmt.Errorf("work order already %s", w.Status)
	}
	if target == StatusEntregue && !w.QAComplete() {
		return ErrQAChecklistIncomplete
	}
	return nil
}
