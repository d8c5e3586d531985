package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	request "estetica_pro/internal/adapter/http/dto/request"
	response "estetica_pro/internal/adapter/http/dto/response"
	"estetica_pro/internal/domain/entities"
	"estetica_pro/internal/usecase"
	"estetica_pro/pkg"
)

var (
	errInvalidWorkOrderPayload = pkg.NewDomainErrorSimple("INVALID_WORK_ORDER_INPUT", "Invalid work order payload", http.StatusBadRequest)
)

// WorkOrderHandler exposes the service-ticket lifecycle: intake, staff
// creation, edits, status transitions and voucher application.
type WorkOrderHandler struct {
	usecase usecase.IWorkOrderUseCase
}

func NewWorkOrderHandler(uc usecase.IWorkOrderUseCase) *WorkOrderHandler {
	return &WorkOrderHandler{usecase: uc}
}

// CreateIntake is the public self-service entry point. Whatever status the
// payload suggests, the created order starts in approval.
func (h *WorkOrderHandler) CreateIntake(c *gin.Context) {
	var payload request.WorkOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWorkOrderPayload.HTTPStatus, errInvalidWorkOrderPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateIntake(c.Request.Context(), payload.ToEntity())
	if err != nil {
		log.Printf("[workorder][handler] intake failed client_id=%s err=%v", payload.ClientID, err)
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[workorder][handler] intake success id=%s client_id=%s", created.ID, created.ClientID)

	c.JSON(http.StatusCreated, response.FromWorkOrder(created))
}

// Create opens a staff-created order, skipping the approval queue.
func (h *WorkOrderHandler) Create(c *gin.Context) {
	var payload request.WorkOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWorkOrderPayload.HTTPStatus, errInvalidWorkOrderPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateByStaff(c.Request.Context(), payload.ToEntity())
	if err != nil {
		log.Printf("[workorder][handler] create failed client_id=%s err=%v", payload.ClientID, err)
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromWorkOrder(created))
}

// Save persists an edited draft, recomputing the derived totals first.
func (h *WorkOrderHandler) Save(c *gin.Context) {
	id := c.Param("id")

	var payload request.WorkOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWorkOrderPayload.HTTPStatus, errInvalidWorkOrderPayload.ToHTTPError())
		return
	}

	draft := payload.ToEntity()
	draft.ID = id

	saved, err := h.usecase.Save(c.Request.Context(), draft)
	if err != nil {
		log.Printf("[workorder][handler] save failed id=%s err=%v", id, err)
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWorkOrder(saved))
}

// ChangeStatus moves an order through the lifecycle. A draft in the payload
// is saved as part of the transition so board-card edits cannot be lost.
func (h *WorkOrderHandler) ChangeStatus(c *gin.Context) {
	id := c.Param("id")

	var payload request.StatusChangeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWorkOrderPayload.HTTPStatus, errInvalidWorkOrderPayload.ToHTTPError())
		return
	}

	draft := entities.WorkOrder{ID: id}
	if payload.Draft != nil {
		draft = payload.Draft.ToEntity()
		draft.ID = id
	}

	updated, err := h.usecase.ChangeStatus(c.Request.Context(), draft, entities.WorkOrderStatus(payload.Status))
	if err != nil {
		log.Printf("[workorder][handler] status change failed id=%s target=%s err=%v", id, payload.Status, err)
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[workorder][handler] status change success id=%s status=%s", updated.ID, updated.Status)

	c.JSON(http.StatusOK, response.FromWorkOrder(updated))
}

// ApplyVoucher attaches a redemption voucher's discount to an order draft
// and saves it. Consumption happens on save, not here.
func (h *WorkOrderHandler) ApplyVoucher(c *gin.Context) {
	id := c.Param("id")

	var payload request.ApplyVoucherRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWorkOrderPayload.HTTPStatus, errInvalidWorkOrderPayload.ToHTTPError())
		return
	}

	draft, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if err := h.usecase.ApplyVoucher(c.Request.Context(), &draft, payload.Code, payload.ConfirmCrossClient); err != nil {
		log.Printf("[workorder][handler] voucher apply failed id=%s code=%s err=%v", id, payload.Code, err)
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	saved, err := h.usecase.Save(c.Request.Context(), draft)
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWorkOrder(saved))
}

func (h *WorkOrderHandler) GetByID(c *gin.Context) {
	order, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromWorkOrder(order))
}

func (h *WorkOrderHandler) List(c *gin.Context) {
	orders, err := h.usecase.GetAll(c.Request.Context())
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	out := make([]response.WorkOrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, response.FromWorkOrder(o))
	}
	c.JSON(http.StatusOK, out)
}

func (h *WorkOrderHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapWorkOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidWorkOrderID), errors.Is(err, usecase.ErrMissingClient),
		errors.Is(err, usecase.ErrMissingVehicle), errors.Is(err, usecase.ErrInvalidTargetStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrWorkOrderNotFound):
		return pkg.NewDomainErrorSimple("WORK_ORDER_NOT_FOUND", "Work order not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrQAChecklistIncomplete):
		return pkg.NewDomainErrorSimple("QA_CHECKLIST_INCOMPLETE", "Required quality checklist items not completed", http.StatusConflict)
	case errors.Is(err, usecase.ErrVoucherAlreadyUsed):
		return pkg.NewDomainErrorSimple("VOUCHER_ALREADY_USED", "Voucher already consumed", http.StatusConflict)
	case errors.Is(err, usecase.ErrVoucherClientMismatch):
		return pkg.NewDomainErrorSimple("VOUCHER_CLIENT_MISMATCH", "Voucher belongs to another client", http.StatusConflict)
	case errors.Is(err, usecase.ErrVoucherInvalid):
		return pkg.NewDomainErrorSimple("VOUCHER_INVALID", "Voucher not found or not active", http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
