package request

import (
	"strings"

	"estetica_pro/internal/domain/entities"
)

type AddressRequest struct {
	Street       string `json:"street"`
	Number       string `json:"number"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
	CEP          string `json:"cep"`
}

type VehicleRequest struct {
	Model string `json:"model" binding:"required"`
	Plate string `json:"plate"`
	Color string `json:"color"`
	Year  int    `json:"year"`
	Size  string `json:"size" binding:"omitempty,vehiclesize"`
}

// ClientRequest is the create/intake payload for a CRM client. Vehicles may
// come nested; the use case flattens them into their own collection.
type ClientRequest struct {
	Name     string           `json:"name" binding:"required"`
	Phone    string           `json:"phone"`
	Email    string           `json:"email" binding:"omitempty,email"`
	Address  AddressRequest   `json:"address"`
	Notes    string           `json:"notes"`
	Vehicles []VehicleRequest `json:"vehicles"`
}

func (r ClientRequest) ToEntity() entities.Client {
	c := entities.Client{
		Name:  strings.TrimSpace(r.Name),
		Phone: strings.TrimSpace(r.Phone),
		Email: strings.TrimSpace(r.Email),
		Notes: r.Notes,
		Address: entities.Address{
			Street:       r.Address.Street,
			Number:       r.Address.Number,
			Neighborhood: r.Address.Neighborhood,
			City:         r.Address.City,
			State:        r.Address.State,
			CEP:          r.Address.CEP,
		},
	}
	for _, v := range r.Vehicles {
		c.Vehicles = append(c.Vehicles, v.ToEntity())
	}
	return c
}

func (r VehicleRequest) ToEntity() entities.Vehicle {
	size := entities.VehicleSize(r.Size)
	if size == "" {
		size = entities.VehicleSizeMedium
	}
	return entities.Vehicle{
		Model: strings.TrimSpace(r.Model),
		Plate: strings.ToUpper(strings.TrimSpace(r.Plate)),
		Color: r.Color,
		Year:  r.Year,
		Size:  size,
	}
}
