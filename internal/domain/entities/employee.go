package entities

import "time"

// SalaryType of an employee.
type SalaryType string

const (
	SalaryTypeFixed      SalaryType = "fixed"
	SalaryTypeCommission SalaryType = "commission"
)

// Employee is a shop worker able to log in with a 4-digit PIN.
//
// Storage model:
//   - collection: employees
//   - PK: id
//
// PINHash is a bcrypt hash of the 4-digit PIN; the raw PIN is never stored.
type Employee struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Role       string     `json:"role"`
	PINHash    string     `json:"pin_hash"`
	SalaryType SalaryType `json:"salary_type"`
	Active     bool       `json:"active"`
	Balance    float64    `json:"balance"`
	CreatedAt  time.Time  `json:"created_at"`
}

// EmployeeTransaction is a commission/advance row on an employee's balance.
//
// Storage model:
//   - collection: employee_transactions
//   - PK: id
type EmployeeTransaction struct {
	ID          string    `json:"id"`
	EmployeeID  string    `json:"employee_id"`
	WorkOrderID string    `json:"work_order_id,omitempty"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}
