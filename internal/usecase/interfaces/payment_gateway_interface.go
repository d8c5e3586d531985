package interfaces

import (
	"context"
	"encoding/json"
)

// CardCharge is the result of charging a card through the external provider.
// Fee is the provider's cut; the ledger stores net = amount - fee.
type CardCharge struct {
	ProviderPaymentID string
	Status            string
	Fee               float64
	Response          json.RawMessage
}

// IPaymentGateway abstracts external payment providers (e.g. Mercado Pago).
//
// Only card payments go through the gateway; cash and pix are registered
// directly with zero fee.
type IPaymentGateway interface {
	ChargeCard(ctx context.Context, amount float64, description string, payload json.RawMessage) (CardCharge, error)
}
