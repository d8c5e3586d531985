package entities

import "time"

// TransactionType of a financial ledger row.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// TransactionStatus of a financial ledger row.
type TransactionStatus string

const (
	TransactionStatusPaid    TransactionStatus = "paid"
	TransactionStatusPending TransactionStatus = "pending"
)

// FinancialTransaction is a cash ledger row persisted in
// "financial_transactions".
//
// Storage model:
//   - collection: financial_transactions
//   - PK: id
//
// WorkOrderID is the explicit foreign key to the originating work order for
// payment rows; the legacy convention of correlating through the order id
// embedded in Desc is kept for display only. Fee is the gateway cut;
// NetAmount = Amount - Fee.
type FinancialTransaction struct {
	ID          string            `json:"id"`
	Type        TransactionType   `json:"type"`
	Amount      float64           `json:"amount"`
	NetAmount   float64           `json:"net_amount"`
	Fee         float64           `json:"fee"`
	Status      TransactionStatus `json:"status"`
	Date        time.Time         `json:"date"`
	Method      string            `json:"method"`
	Desc        string            `json:"desc"`
	WorkOrderID string            `json:"work_order_id,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
}
