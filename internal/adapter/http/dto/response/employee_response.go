package response

import (
	"time"

	"estetica_pro/internal/domain/entities"
)

// EmployeeResponse never carries the PIN hash.
type EmployeeResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Role       string    `json:"role"`
	SalaryType string    `json:"salary_type"`
	Active     bool      `json:"active"`
	Balance    float64   `json:"balance"`
	CreatedAt  time.Time `json:"created_at"`
}

type LoginResponse struct {
	Token    string           `json:"token"`
	Employee EmployeeResponse `json:"employee"`
}

func FromEmployee(e entities.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:         e.ID,
		Name:       e.Name,
		Role:       e.Role,
		SalaryType: string(e.SalaryType),
		Active:     e.Active,
		Balance:    e.Balance,
		CreatedAt:  e.CreatedAt,
	}
}
