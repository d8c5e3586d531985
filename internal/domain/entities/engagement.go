package entities

import "time"

// MarketingCampaign tags work orders brought in by a campaign.
type MarketingCampaign struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Channel   string    `json:"channel"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// Alert is an operational notice surfaced on the dashboard.
type Alert struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// Reminder is a scheduled client follow-up.
type Reminder struct {
	ID        string    `json:"id"`
	ClientID  string    `json:"client_id"`
	Message   string    `json:"message"`
	DueAt     time.Time `json:"due_at"`
	Done      bool      `json:"done"`
	CreatedAt time.Time `json:"created_at"`
}

// MessageLog records an outbound client message (e.g. a WhatsApp send owned
// by an external integration).
type MessageLog struct {
	ID        string    `json:"id"`
	ClientID  string    `json:"client_id"`
	Channel   string    `json:"channel"`
	Body      string    `json:"body"`
	SentAt    time.Time `json:"sent_at"`
	CreatedAt time.Time `json:"created_at"`
}
