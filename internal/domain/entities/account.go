package entities

import "time"

// User is an application login account.
//
// Storage model:
//   - collection: users
//   - PK: id
//
// The store treats an empty "users" collection as the signal that the store
// was never initialized (seeding trigger).
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	TenantID  string    `json:"tenant_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Tenant is a shop account in the "tenants" collection.
type Tenant struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Document  string    `json:"document"`
	CreatedAt time.Time `json:"created_at"`
}
