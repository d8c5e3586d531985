package entities

import "time"

// Service is a detailing catalog entry priced per vehicle size.
//
// Storage model:
//   - collection: services
//   - PK: id
type Service struct {
	ID          string                  `json:"id"`
	Name        string                  `json:"name"`
	Description string                  `json:"description"`
	Prices      map[VehicleSize]float64 `json:"prices"`
	Points      int                     `json:"points"`
	Active      bool                    `json:"active"`
	CreatedAt   time.Time               `json:"created_at"`
}

// PriceFor returns the catalog price for a vehicle size, falling back to the
// medium price when the size has no explicit entry.
func (s Service) PriceFor(size VehicleSize) float64 {
	if p, ok := s.Prices[size]; ok {
		return p
	}
	return s.Prices[VehicleSizeMedium]
}

// InventoryItem is a consumable tracked in the "inventory" collection.
type InventoryItem struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Quantity  int       `json:"quantity"`
	MinStock  int       `json:"min_stock"`
	Unit      string    `json:"unit"`
	CreatedAt time.Time `json:"created_at"`
}
