package request

import (
	"strings"
	"time"

	"estetica_pro/internal/domain/entities"
)

type DiscountRequest struct {
	Type        string  `json:"type" binding:"omitempty,discounttype"`
	Amount      float64 `json:"amount" binding:"omitempty,gte=0"`
	Description string  `json:"description"`
}

type InsuranceRequest struct {
	IsInsurance            bool    `json:"is_insurance"`
	Company                string  `json:"company"`
	ClaimNumber            string  `json:"claim_number"`
	DeductibleAmount       float64 `json:"deductible_amount" binding:"omitempty,gte=0"`
	InsuranceCoveredAmount float64 `json:"insurance_covered_amount" binding:"omitempty,gte=0"`
}

type AdditionalItemRequest struct {
	Description string  `json:"description" binding:"required"`
	Value       float64 `json:"value" binding:"gte=0"`
}

type DamagePointRequest struct {
	ID          string `json:"id"`
	Area        string `json:"area" binding:"required"`
	Type        string `json:"type"`
	Description string `json:"description"`
	PhotoURL    string `json:"photo_url"`
}

type VehicleInventoryRequest struct {
	Documents   bool   `json:"documents"`
	SpareTire   bool   `json:"spare_tire"`
	Jack        bool   `json:"jack"`
	Triangle    bool   `json:"triangle"`
	FloorMats   bool   `json:"floor_mats"`
	SoundSystem bool   `json:"sound_system"`
	Belongings  string `json:"belongings"`
}

type DailyLogEntryRequest struct {
	Timestamp *time.Time `json:"timestamp"`
	Note      string     `json:"note" binding:"required"`
	Photos    []string   `json:"photos"`
	Author    string     `json:"author"`
}

type QAItemRequest struct {
	Label    string `json:"label" binding:"required"`
	Required bool   `json:"required"`
	Checked  bool   `json:"checked"`
}

// WorkOrderRequest is the create/save payload for a service ticket. It is
// shared by the public intake endpoint and the staff endpoints; intake
// ignores the status-sensitive fields.
type WorkOrderRequest struct {
	ClientID        string                  `json:"client_id" binding:"required"`
	Vehicle         string                  `json:"vehicle"`
	Plate           string                  `json:"plate"`
	Service         string                  `json:"service"`
	ServiceIDs      []string                `json:"service_ids"`
	Technician      string                  `json:"technician"`
	TotalValue      float64                 `json:"total_value" binding:"omitempty,gte=0"`
	ServicePrice    float64                 `json:"service_price" binding:"omitempty,gte=0"`
	Discount        DiscountRequest         `json:"discount"`
	Insurance       InsuranceRequest        `json:"insurance"`
	AdditionalItems []AdditionalItemRequest `json:"additional_items"`
	Damages         []DamagePointRequest    `json:"damages"`
	Inventory       VehicleInventoryRequest `json:"vehicle_inventory"`
	DailyLog        []DailyLogEntryRequest  `json:"daily_log"`
	QAChecklist     []QAItemRequest         `json:"qa_checklist"`
	NPSScore        *int                    `json:"nps_score" binding:"omitempty,gte=0,lte=10"`
	CampaignID      string                  `json:"campaign_id"`
}

// StatusChangeRequest moves a work order through its lifecycle. The draft
// fields, when present, are saved along with the transition so a status
// change from an edited board card cannot lose edits.
type StatusChangeRequest struct {
	Status string           `json:"status" binding:"required,workorderstatus"`
	Draft  *WorkOrderRequest `json:"draft"`
}

type ApplyVoucherRequest struct {
	Code               string `json:"code" binding:"required"`
	ConfirmCrossClient bool   `json:"confirm_cross_client"`
}

func (r WorkOrderRequest) ToEntity() entities.WorkOrder {
	w := entities.WorkOrder{
		ClientID:     strings.TrimSpace(r.ClientID),
		Vehicle:      strings.TrimSpace(r.Vehicle),
		Plate:        strings.ToUpper(strings.TrimSpace(r.Plate)),
		Service:      strings.TrimSpace(r.Service),
		ServiceIDs:   r.ServiceIDs,
		Technician:   r.Technician,
		TotalValue:   r.TotalValue,
		ServicePrice: r.ServicePrice,
		Discount: entities.Discount{
			Type:        entities.DiscountType(r.Discount.Type),
			Amount:      r.Discount.Amount,
			Description: r.Discount.Description,
		},
		Insurance: entities.Insurance{
			IsInsurance:            r.Insurance.IsInsurance,
			Company:                r.Insurance.Company,
			ClaimNumber:            r.Insurance.ClaimNumber,
			DeductibleAmount:       r.Insurance.DeductibleAmount,
			InsuranceCoveredAmount: r.Insurance.InsuranceCoveredAmount,
		},
		Inventory: entities.VehicleInventory{
			Documents:   r.Inventory.Documents,
			SpareTire:   r.Inventory.SpareTire,
			Jack:        r.Inventory.Jack,
			Triangle:    r.Inventory.Triangle,
			FloorMats:   r.Inventory.FloorMats,
			SoundSystem: r.Inventory.SoundSystem,
			Belongings:  r.Inventory.Belongings,
		},
		NPSScore:   r.NPSScore,
		CampaignID: strings.TrimSpace(r.CampaignID),
	}

	for _, item := range r.AdditionalItems {
		w.AdditionalItems = append(w.AdditionalItems, entities.AdditionalItem{
			Description: item.Description,
			Value:       item.Value,
		})
	}
	for _, d := range r.Damages {
		photoURL := d.PhotoURL
		if photoURL == "" {
			photoURL = entities.DamagePhotoPending
		}
		w.Damages = append(w.Damages, entities.DamagePoint{
			ID:          d.ID,
			Area:        entities.DamageArea(d.Area),
			Type:        d.Type,
			Description: d.Description,
			PhotoURL:    photoURL,
		})
	}
	for _, entry := range r.DailyLog {
		ts := time.Now().UTC()
		if entry.Timestamp != nil {
			ts = *entry.Timestamp
		}
		w.DailyLog = append(w.DailyLog, entities.DailyLogEntry{
			Timestamp: ts,
			Note:      entry.Note,
			Photos:    entry.Photos,
			Author:    entry.Author,
		})
	}
	for _, item := range r.QAChecklist {
		w.QAChecklist = append(w.QAChecklist, entities.QAItem{
			Label:    item.Label,
			Required: item.Required,
			Checked:  item.Checked,
		})
	}
	return w
}
