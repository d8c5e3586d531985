package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"estetica_pro/internal/domain/entities"
	"estetica_pro/internal/usecase/interfaces"
)

var (
	ErrPaymentAlreadyRegistered = errors.New("work order already paid")
	ErrPaymentNotFound          = errors.New("no payment registered for this work order")
	ErrPaymentGatewayRequired   = errors.New("payment gateway not configured for card payments")
)

// Payment methods that settle through the external card gateway.
const (
	PaymentMethodCartao   = "cartao"
	PaymentMethodCredito  = "credito"
	PaymentMethodDebito   = "debito"
	PaymentMethodPix      = "pix"
	PaymentMethodDinheiro = "dinheiro"
)

// IPaymentUseCase registers and reverses work-order payments.
//
// Registration creates exactly one income transaction carrying the explicit
// work_order_id foreign key and atomically (from the caller's point of view)
// bumps the client's lifetime value. Reversal deletes that transaction and
// decrements the LTV by the stored transaction amount — never by the current
// derived total, which may have drifted since payment.
type IPaymentUseCase interface {
	RegisterPayment(ctx context.Context, workOrderID, method string, cardPayload json.RawMessage) (entities.FinancialTransaction, error)
	UndoPayment(ctx context.Context, workOrderID string) error
	ListByWorkOrder(ctx context.Context, workOrderID string) ([]entities.FinancialTransaction, error)
}

type PaymentUseCase struct {
	ledger  interfaces.IFinancialRepository
	orders  interfaces.IWorkOrderRepository
	clients interfaces.IClientRepository
	gateway interfaces.IPaymentGateway
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(
	ledger interfaces.IFinancialRepository,
	orders interfaces.IWorkOrderRepository,
	clients interfaces.IClientRepository,
	gateway interfaces.IPaymentGateway,
) *PaymentUseCase {
	return &PaymentUseCase{ledger: ledger, orders: orders, clients: clients, gateway: gateway}
}

func (u *PaymentUseCase) RegisterPayment(ctx context.Context, workOrderID, method string, cardPayload json.RawMessage) (entities.FinancialTransaction, error) {
	workOrderID = strings.TrimSpace(workOrderID)
	if workOrderID == "" {
		return entities.FinancialTransaction{}, ErrInvalidWorkOrderID
	}

	order, err := u.orders.GetByID(ctx, workOrderID)
	if err != nil {
		return entities.FinancialTransaction{}, err
	}
	if order == nil {
		return entities.FinancialTransaction{}, ErrWorkOrderNotFound
	}
	if order.PaymentStatus == entities.PaymentStatusPago {
		return entities.FinancialTransaction{}, ErrPaymentAlreadyRegistered
	}

	amount := order.TotalValue
	fee := 0.0
	if isCardMethod(method) {
		if u.gateway == nil {
			return entities.FinancialTransaction{}, ErrPaymentGatewayRequired
		}
		charge, err := u.gateway.ChargeCard(ctx, amount, fmt.Sprintf("OS %s", order.ID), cardPayload)
		if err != nil {
			log.Printf("[payment][usecase] card charge failed order=%s err=%v", order.ID, err)
			return entities.FinancialTransaction{}, err
		}
		fee = charge.Fee
		log.Printf("[payment][usecase] card charged order=%s provider_id=%s fee=%.2f", order.ID, charge.ProviderPaymentID, fee)
	}

	now := time.Now().UTC()
	tx := entities.FinancialTransaction{
		Type:      entities.TransactionTypeIncome,
		Amount:    amount,
		Fee:       fee,
		NetAmount: amount - fee,
		Status:    entities.TransactionStatusPaid,
		Date:      now,
		Method:    method,
		// Desc keeps the legacy display convention of embedding the order id;
		// correlation uses the WorkOrderID field.
		Desc:        fmt.Sprintf("Pagamento OS %s - %s", order.ID, order.Vehicle),
		WorkOrderID: order.ID,
	}
	created, err := u.ledger.Create(ctx, tx)
	if err != nil {
		return entities.FinancialTransaction{}, err
	}

	if _, err := u.orders.Update(ctx, order.ID, map[string]any{
		"payment_status": string(entities.PaymentStatusPago),
		"payment_method": method,
		"paid_at":        now,
	}); err != nil {
		return entities.FinancialTransaction{}, err
	}

	if err := u.bumpClient(ctx, order.ClientID, amount, now); err != nil {
		return entities.FinancialTransaction{}, err
	}

	log.Printf("[payment][usecase] payment registered order=%s tx=%s amount=%.2f", order.ID, created.ID, amount)
	return created, nil
}

func (u *PaymentUseCase) UndoPayment(ctx context.Context, workOrderID string) error {
	workOrderID = strings.TrimSpace(workOrderID)
	if workOrderID == "" {
		return ErrInvalidWorkOrderID
	}

	order, err := u.orders.GetByID(ctx, workOrderID)
	if err != nil {
		return err
	}
	if order == nil {
		return ErrWorkOrderNotFound
	}

	txs, err := u.ledger.ListByWorkOrderID(ctx, workOrderID)
	if err != nil {
		return err
	}
	var paid *entities.FinancialTransaction
	for i := range txs {
		if txs[i].Type == entities.TransactionTypeIncome {
			paid = &txs[i]
			break
		}
	}
	if paid == nil {
		return ErrPaymentNotFound
	}

	if _, err := u.ledger.Delete(ctx, paid.ID); err != nil {
		return err
	}
	if _, err := u.orders.Update(ctx, order.ID, map[string]any{
		"payment_status": string(entities.PaymentStatusPendente),
		"payment_method": "",
		"paid_at":        nil,
	}); err != nil {
		return err
	}

	// Reverse by the stored amount so an order edited after payment cannot
	// drift the client's LTV.
	if err := u.bumpClient(ctx, order.ClientID, -paid.Amount, time.Time{}); err != nil {
		return err
	}

	log.Printf("[payment][usecase] payment reversed order=%s tx=%s amount=%.2f", order.ID, paid.ID, paid.Amount)
	return nil
}

func (u *PaymentUseCase) ListByWorkOrder(ctx context.Context, workOrderID string) ([]entities.FinancialTransaction, error) {
	workOrderID = strings.TrimSpace(workOrderID)
	if workOrderID == "" {
		return nil, ErrInvalidWorkOrderID
	}
	return u.ledger.ListByWorkOrderID(ctx, workOrderID)
}

// bumpClient adjusts LTV by delta; a positive delta also counts a visit.
// These fields are only ever mutated here and by manual points operations.
func (u *PaymentUseCase) bumpClient(ctx context.Context, clientID string, delta float64, visitAt time.Time) error {
	client, err := u.clients.GetByID(ctx, clientID)
	if err != nil {
		return err
	}
	if client == nil {
		log.Printf("[payment][usecase] client %s missing, skipping ltv adjustment", clientID)
		return nil
	}

	patch := map[string]any{
		"ltv": client.LTV + delta,
	}
	if delta > 0 {
		patch["visit_count"] = client.VisitCount + 1
		patch["last_visit"] = visitAt
	} else if client.VisitCount > 0 {
		patch["visit_count"] = client.VisitCount - 1
	}
	_, err = u.clients.Update(ctx, clientID, patch)
	return err
}

func isCardMethod(method string) bool {
	switch strings.ToLower(strings.TrimSpace(method)) {
	case PaymentMethodCartao, PaymentMethodCredito, PaymentMethodDebito:
		return true
	}
	return false
}
