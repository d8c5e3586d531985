package request

import "encoding/json"

// PaymentRequest registers a payment against a work order. CardPayload is
// forwarded to the card gateway untouched for card methods and ignored for
// cash and pix.
type PaymentRequest struct {
	Method      string          `json:"method" binding:"required,oneof=cartao credito debito pix dinheiro"`
	CardPayload json.RawMessage `json:"card_payload"`
}
