package response

import (
	"time"

	"estetica_pro/internal/domain/entities"
)

// WorkOrderResponse mirrors the persisted ticket. Monetary fields carry the
// derived totals recomputed on the last save.
type WorkOrderResponse struct {
	ID              string                    `json:"id"`
	ClientID        string                    `json:"client_id"`
	Vehicle         string                    `json:"vehicle"`
	Plate           string                    `json:"plate"`
	Service         string                    `json:"service"`
	ServiceIDs      []string                  `json:"service_ids"`
	Status          string                    `json:"status"`
	Technician      string                    `json:"technician"`
	TotalValue      float64                   `json:"total_value"`
	ServicePrice    float64                   `json:"service_price"`
	Discount        entities.Discount         `json:"discount"`
	Insurance       entities.Insurance        `json:"insurance"`
	AdditionalItems []entities.AdditionalItem `json:"additional_items,omitempty"`
	Damages         []entities.DamagePoint    `json:"damages,omitempty"`
	Inventory       entities.VehicleInventory `json:"vehicle_inventory"`
	DailyLog        []entities.DailyLogEntry  `json:"daily_log,omitempty"`
	QAChecklist     []entities.QAItem         `json:"qa_checklist,omitempty"`
	PaymentStatus   string                    `json:"payment_status"`
	PaymentMethod   string                    `json:"payment_method,omitempty"`
	PaidAt          *time.Time                `json:"paid_at,omitempty"`
	NPSScore        *int                      `json:"nps_score,omitempty"`
	CampaignID      string                    `json:"campaign_id,omitempty"`
	AppliedVoucher  string                    `json:"applied_voucher,omitempty"`
	PointsCredited  bool                      `json:"points_credited"`
	CreatedAt       time.Time                 `json:"created_at"`
	UpdatedAt       time.Time                 `json:"updated_at"`
}

func FromWorkOrder(w entities.WorkOrder) WorkOrderResponse {
	return WorkOrderResponse{
		ID:              w.ID,
		ClientID:        w.ClientID,
		Vehicle:         w.Vehicle,
		Plate:           w.Plate,
		Service:         w.Service,
		ServiceIDs:      w.ServiceIDs,
		Status:          string(w.Status),
		Technician:      w.Technician,
		TotalValue:      w.TotalValue,
		ServicePrice:    w.ServicePrice,
		Discount:        w.Discount,
		Insurance:       w.Insurance,
		AdditionalItems: w.AdditionalItems,
		Damages:         w.Damages,
		Inventory:       w.Inventory,
		DailyLog:        w.DailyLog,
		QAChecklist:     w.QAChecklist,
		PaymentStatus:   string(w.PaymentStatus),
		PaymentMethod:   w.PaymentMethod,
		PaidAt:          w.PaidAt,
		NPSScore:        w.NPSScore,
		CampaignID:      w.CampaignID,
		AppliedVoucher:  w.AppliedVoucher,
		PointsCredited:  w.PointsCredited,
		CreatedAt:       w.CreatedAt,
		UpdatedAt:       w.UpdatedAt,
	}
}
