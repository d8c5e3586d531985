package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	request "estetica_pro/internal/adapter/http/dto/request"
	response "estetica_pro/internal/adapter/http/dto/response"
	"estetica_pro/internal/adapter/http/middleware"
	"estetica_pro/internal/usecase"
	"estetica_pro/pkg"
)

var (
	errInvalidEmployeePayload = pkg.NewDomainErrorSimple("INVALID_EMPLOYEE_INPUT", "Invalid employee payload", http.StatusBadRequest)
)

type EmployeeHandler struct {
	usecase usecase.IEmployeeUseCase
}

func NewEmployeeHandler(uc usecase.IEmployeeUseCase) *EmployeeHandler {
	return &EmployeeHandler{usecase: uc}
}

func (h *EmployeeHandler) Create(c *gin.Context) {
	var payload request.EmployeeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEmployeePayload.HTTPStatus, errInvalidEmployeePayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToEntity(), payload.PIN)
	if err != nil {
		log.Printf("[employee][handler] create failed err=%v", err)
		appErr := mapEmployeeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromEmployee(created))
}

func (h *EmployeeHandler) Update(c *gin.Context) {
	var patch map[string]any
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(errInvalidEmployeePayload.HTTPStatus, errInvalidEmployeePayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		appErr := mapEmployeeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEmployee(updated))
}

func (h *EmployeeHandler) GetByID(c *gin.Context) {
	employee, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapEmployeeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEmployee(employee))
}

func (h *EmployeeHandler) List(c *gin.Context) {
	employees, err := h.usecase.GetAll(c.Request.Context())
	if err != nil {
		appErr := mapEmployeeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	out := make([]response.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		out = append(out, response.FromEmployee(e))
	}
	c.JSON(http.StatusOK, out)
}

func (h *EmployeeHandler) SetPIN(c *gin.Context) {
	var payload request.SetPINRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEmployeePayload.HTTPStatus, errInvalidEmployeePayload.ToHTTPError())
		return
	}

	if err := h.usecase.SetPIN(c.Request.Context(), c.Param("id"), payload.PIN); err != nil {
		appErr := mapEmployeeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// Deactivate soft-disables the employee; the record and its balance history
// survive.
func (h *EmployeeHandler) Deactivate(c *gin.Context) {
	if err := h.usecase.Deactivate(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapEmployeeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// LoginWithPIN authenticates an employee by 4-digit PIN and issues the staff
// session token.
func (h *EmployeeHandler) LoginWithPIN(c *gin.Context) {
	var payload request.PINLoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEmployeePayload.HTTPStatus, errInvalidEmployeePayload.ToHTTPError())
		return
	}

	employee, err := h.usecase.LoginWithPIN(c.Request.Context(), payload.PIN)
	if err != nil {
		log.Printf("[employee][handler] pin login rejected err=%v", err)
		appErr := mapEmployeeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	token, err := middleware.IssueStaffToken(employee)
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[employee][handler] pin login success employee_id=%s", employee.ID)

	c.JSON(http.StatusOK, response.LoginResponse{
		Token:    token,
		Employee: response.FromEmployee(employee),
	})
}

func mapEmployeeError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPIN):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPINRejected):
		return pkg.NewDomainErrorSimple("PIN_REJECTED", "No active employee matches this pin", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrEmployeeNotFound):
		return pkg.NewDomainErrorSimple("EMPLOYEE_NOT_FOUND", "Employee not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
