package response

import (
	"time"

	"estetica_pro/internal/domain/entities"
)

type ClientResponse struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Phone      string            `json:"phone"`
	Email      string            `json:"email"`
	Address    entities.Address  `json:"address"`
	Notes      string            `json:"notes"`
	LTV        float64           `json:"ltv"`
	VisitCount int               `json:"visit_count"`
	LastVisit  *time.Time        `json:"last_visit,omitempty"`
	Status     string            `json:"status"`
	Segment    string            `json:"segment"`
	Vehicles   []VehicleResponse `json:"vehicles,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
}

type VehicleResponse struct {
	ID        string    `json:"id"`
	ClientID  string    `json:"client_id"`
	Model     string    `json:"model"`
	Plate     string    `json:"plate"`
	Color     string    `json:"color"`
	Year      int       `json:"year"`
	Size      string    `json:"size"`
	CreatedAt time.Time `json:"created_at"`
}

func FromClient(c entities.Client) ClientResponse {
	resp := ClientResponse{
		ID:         c.ID,
		Name:       c.Name,
		Phone:      c.Phone,
		Email:      c.Email,
		Address:    c.Address,
		Notes:      c.Notes,
		LTV:        c.LTV,
		VisitCount: c.VisitCount,
		LastVisit:  c.LastVisit,
		Status:     string(c.Status),
		Segment:    string(c.Segment),
		CreatedAt:  c.CreatedAt,
	}
	for _, v := range c.Vehicles {
		resp.Vehicles = append(resp.Vehicles, FromVehicle(v))
	}
	return resp
}

func FromVehicle(v entities.Vehicle) VehicleResponse {
	return VehicleResponse{
		ID:        v.ID,
		ClientID:  v.ClientID,
		Model:     v.Model,
		Plate:     v.Plate,
		Color:     v.Color,
		Year:      v.Year,
		Size:      string(v.Size),
		CreatedAt: v.CreatedAt,
	}
}
