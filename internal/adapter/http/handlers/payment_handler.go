package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	request "estetica_pro/internal/adapter/http/dto/request"
	response "estetica_pro/internal/adapter/http/dto/response"
	"estetica_pro/internal/usecase"
	"estetica_pro/pkg"
)

// PaymentHandler registers and reverses work-order payments.
type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// Register settles a work order: card methods go through the gateway for the
// fee, cash and pix settle directly. One income row per order.
func (h *PaymentHandler) Register(c *gin.Context) {
	workOrderID := c.Param("id")

	var payload request.PaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_PAYMENT_INPUT", "Invalid payment payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	cardPayload := payload.CardPayload
	if len(cardPayload) == 0 {
		cardPayload = json.RawMessage("{}")
	}

	log.Printf("[payment][handler] register start work_order_id=%s method=%s", workOrderID, payload.Method)
	tx, err := h.usecase.RegisterPayment(c.Request.Context(), workOrderID, payload.Method, cardPayload)
	if err != nil {
		log.Printf("[payment][handler] register failed work_order_id=%s err=%v", workOrderID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] register success work_order_id=%s tx_id=%s amount=%.2f", workOrderID, tx.ID, tx.Amount)

	c.JSON(http.StatusCreated, response.FromTransaction(tx))
}

// Undo deletes the payment row and restores the order and the client's LTV
// to their pre-payment values.
func (h *PaymentHandler) Undo(c *gin.Context) {
	workOrderID := c.Param("id")

	log.Printf("[payment][handler] undo start work_order_id=%s", workOrderID)
	if err := h.usecase.UndoPayment(c.Request.Context(), workOrderID); err != nil {
		log.Printf("[payment][handler] undo failed work_order_id=%s err=%v", workOrderID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// ListByWorkOrder returns the ledger rows tied to one order.
func (h *PaymentHandler) ListByWorkOrder(c *gin.Context) {
	txs, err := h.usecase.ListByWorkOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	out := make([]response.TransactionResponse, 0, len(txs))
	for _, tx := range txs {
		out = append(out, response.FromTransaction(tx))
	}
	c.JSON(http.StatusOK, out)
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidWorkOrderID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrWorkOrderNotFound):
		return pkg.NewDomainErrorSimple("WORK_ORDER_NOT_FOUND", "Work order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentAlreadyRegistered):
		return pkg.NewDomainErrorSimple("PAYMENT_ALREADY_REGISTERED", "Work order already paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "No payment registered for this work order", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentGatewayRequired):
		return pkg.NewDomainErrorSimple("PAYMENT_GATEWAY_REQUIRED", "Payment gateway not configured for card payments", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
