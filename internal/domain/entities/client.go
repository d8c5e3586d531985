package entities

import "time"

// ClientStatus classifies how recently engaged a client is. It is recomputed
// from LastVisit, never edited directly.
type ClientStatus string

const (
	ClientStatusActive    ClientStatus = "active"
	ClientStatusChurnRisk ClientStatus = "churn_risk"
	ClientStatusInactive  ClientStatus = "inactive"
)

// ClientSegment is the marketing segment derived from LTV and visit count.
type ClientSegment string

const (
	ClientSegmentNew       ClientSegment = "new"
	ClientSegmentVIP       ClientSegment = "vip"
	ClientSegmentRecurring ClientSegment = "recurring"
	ClientSegmentAtRisk    ClientSegment = "at_risk"
)

// Address is the Brazilian postal address embedded in Client.
type Address struct {
	Street       string `json:"street"`
	Number       string `json:"number"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
	CEP          string `json:"cep"`
}

// Client is a CRM client persisted in the "clients" collection.
//
// Storage model:
//   - collection: clients
//   - PK: id
//
// Invariant: LTV and VisitCount are only mutated by payment registration and
// manual points operations. Vehicles is accepted nested on intake but the
// store flattens vehicles into their own collection at seed/migration time;
// after that, the "vehicles" collection is authoritative.
type Client struct {
	ID         string        `json:"id"`
	Name       string        `json:"name"`
	Phone      string        `json:"phone"`
	Email      string        `json:"email"`
	Address    Address       `json:"address"`
	Notes      string        `json:"notes"`
	Vehicles   []Vehicle     `json:"vehicles,omitempty"`
	LTV        float64       `json:"ltv"`
	VisitCount int           `json:"visit_count"`
	LastVisit  *time.Time    `json:"last_visit,omitempty"`
	Status     ClientStatus  `json:"status"`
	Segment    ClientSegment `json:"segment"`
	CreatedAt  time.Time     `json:"created_at"`
}
