package response

import (
	"time"

	"estetica_pro/internal/domain/entities"
)

type TransactionResponse struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Amount      float64   `json:"amount"`
	NetAmount   float64   `json:"net_amount"`
	Fee         float64   `json:"fee"`
	Status      string    `json:"status"`
	Date        time.Time `json:"date"`
	Method      string    `json:"method"`
	Desc        string    `json:"desc"`
	WorkOrderID string    `json:"work_order_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromTransaction(t entities.FinancialTransaction) TransactionResponse {
	return TransactionResponse{
		ID:          t.ID,
		Type:        string(t.Type),
		Amount:      t.Amount,
		NetAmount:   t.NetAmount,
		Fee:         t.Fee,
		Status:      string(t.Status),
		Date:        t.Date,
		Method:      t.Method,
		Desc:        t.Desc,
		WorkOrderID: t.WorkOrderID,
		CreatedAt:   t.CreatedAt,
	}
}
