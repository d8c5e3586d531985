package request

import (
	"strings"

	"estetica_pro/internal/domain/entities"
)

type EmployeeRequest struct {
	Name       string `json:"name" binding:"required"`
	Role       string `json:"role"`
	SalaryType string `json:"salary_type" binding:"omitempty,oneof=fixed commission"`
	PIN        string `json:"pin" binding:"required,len=4,numeric"`
}

type SetPINRequest struct {
	PIN string `json:"pin" binding:"required,len=4,numeric"`
}

// PINLoginRequest is the kiosk-style login: the PIN alone identifies the
// employee.
type PINLoginRequest struct {
	PIN string `json:"pin" binding:"required,len=4,numeric"`
}

func (r EmployeeRequest) ToEntity() entities.Employee {
	salaryType := entities.SalaryType(r.SalaryType)
	if salaryType == "" {
		salaryType = entities.SalaryTypeFixed
	}
	return entities.Employee{
		Name:       strings.TrimSpace(r.Name),
		Role:       strings.TrimSpace(r.Role),
		SalaryType: salaryType,
		Active:     true,
	}
}
