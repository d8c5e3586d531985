package payments

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"

	"estetica_pro/internal/usecase/interfaces"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// defaultMockFeePercent approximates the acquirer card fee in mock mode.
const defaultMockFeePercent = 3.5

// MercadoPagoGateway settles card payments through Mercado Pago. In mock mode
// (PAYMENT_GATEWAY_MOCK / MERCADOPAGO_MOCK) no external call is made and the
// fee is simulated from MOCK_CARD_FEE_PERCENT.
type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true}, nil
	}

	if accessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg)}, nil
}

func (g *MercadoPagoGateway) ChargeCard(ctx context.Context, amount float64, description string, payload json.RawMessage) (interfaces.CardCharge, error) {
	if g != nil && g.mockMode {
		return g.mockCharge(amount, description, payload)
	}
	if g == nil || g.client == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return interfaces.CardCharge{}, ErrMercadoPagoGatewayNotConfigured
	}
	log.Printf("[payment][gateway] charge start amount=%.2f payload_len=%d", amount, len(payload))

	var req payment.Request
	if len(payload) > 0 {
		if err := json.Unmarshal(payload, &req); err != nil {
			log.Printf("[payment][gateway] payload unmarshal failed err=%v", err)
			return interfaces.CardCharge{}, err
		}
	}
	// The amount charged is the order total computed server side, never the
	// amount the caller payload carries.
	req.TransactionAmount = amount
	if req.Description == "" {
		req.Description = description
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		log.Printf("[payment][gateway] sdk create failed err=%v", err)
		return interfaces.CardCharge{}, err
	}

	fee := 0.0
	for _, fd := range resp.FeeDetails {
		fee += fd.Amount
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		log.Printf("[payment][gateway] response marshal failed err=%v", err)
		return interfaces.CardCharge{}, err
	}
	log.Printf("[payment][gateway] charge success provider_payment_id=%d provider_status=%s fee=%.2f", resp.ID, resp.Status, fee)

	return interfaces.CardCharge{
		ProviderPaymentID: strconv.Itoa(resp.ID),
		Status:            resp.Status,
		Fee:               fee,
		Response:          raw,
	}, nil
}

func (g *MercadoPagoGateway) mockCharge(amount float64, description string, payload json.RawMessage) (interfaces.CardCharge, error) {
	log.Printf("[payment][gateway] mock charge start amount=%.2f payload_len=%d", amount, len(payload))

	resp := map[string]any{}
	if len(payload) > 0 && json.Valid(payload) {
		if err := json.Unmarshal(payload, &resp); err != nil {
			resp = map[string]any{"request_payload_raw": string(payload)}
		}
	}

	id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
	now := time.Now().UTC().Format(time.RFC3339Nano)
	fee := amount * mockFeePercent() / 100

	resp["id"] = id
	resp["status"] = "approved"
	resp["status_detail"] = "accredited"
	resp["description"] = description
	resp["transaction_amount"] = amount
	resp["fee_details"] = []map[string]any{{"type": "mercadopago_fee", "amount": fee}}
	if _, ok := resp["date_created"]; !ok {
		resp["date_created"] = now
	}
	if _, ok := resp["date_approved"]; !ok {
		resp["date_approved"] = now
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		log.Printf("[payment][gateway] mock response marshal failed err=%v", err)
		return interfaces.CardCharge{}, err
	}

	log.Printf("[payment][gateway] mock charge success provider_payment_id=%s fee=%.2f", id, fee)
	return interfaces.CardCharge{
		ProviderPaymentID: id,
		Status:            "approved",
		Fee:               fee,
		Response:          raw,
	}, nil
}

func mockFeePercent() float64 {
	raw := strings.TrimSpace(os.Getenv("MOCK_CARD_FEE_PERCENT"))
	if raw == "" {
		return defaultMockFeePercent
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		log.Printf("[payment][gateway] invalid MOCK_CARD_FEE_PERCENT=%q, using default", raw)
		return defaultMockFeePercent
	}
	return v
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
