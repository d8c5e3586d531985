package entities

import "time"

// VehicleSize buckets a vehicle for catalog pricing.
type VehicleSize string

const (
	VehicleSizeSmall  VehicleSize = "pequeno"
	VehicleSizeMedium VehicleSize = "medio"
	VehicleSizeLarge  VehicleSize = "grande"
	VehicleSizeExtra  VehicleSize = "extra_grande"
)

// Vehicle belongs to exactly one client.
//
// Storage model:
//   - collection: vehicles
//   - PK: id
//   - ClientID back-reference set when vehicles are flattened out of clients
//
// Plate uniqueness is not enforced; identity is the id.
type Vehicle struct {
	ID        string      `json:"id"`
	ClientID  string      `json:"client_id"`
	Model     string      `json:"model"`
	Plate     string      `json:"plate"`
	Color     string      `json:"color"`
	Year      int         `json:"year"`
	Size      VehicleSize `json:"size"`
	CreatedAt time.Time   `json:"created_at"`
}
