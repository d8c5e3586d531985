package handlers

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"estetica_pro/pkg"
)

// StoreAdmin is the slice of the object store exposed over HTTP.
type StoreAdmin interface {
	Reset(ctx context.Context, skipSeeding bool) error
	Init(ctx context.Context) error
}

// StoreAdminHandler wipes and re-initializes the object store. Destructive;
// staff-only.
type StoreAdminHandler struct {
	store StoreAdmin
}

func NewStoreAdminHandler(store StoreAdmin) *StoreAdminHandler {
	return &StoreAdminHandler{store: store}
}

type resetRequest struct {
	SkipSeeding bool `json:"skip_seeding"`
	Reinit      bool `json:"reinit"`
}

// Reset deletes every record. With skip_seeding the flag file is persisted so
// later boots start from an empty store instead of demo data. With reinit the
// init path (and possibly seeding) runs again immediately.
func (h *StoreAdminHandler) Reset(c *gin.Context) {
	var payload resetRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			appErr := pkg.NewDomainErrorSimple("INVALID_RESET_INPUT", "Invalid reset payload", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}

	log.Printf("[store][admin] reset start skip_seeding=%t reinit=%t", payload.SkipSeeding, payload.Reinit)
	if err := h.store.Reset(c.Request.Context(), payload.SkipSeeding); err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if payload.Reinit {
		if err := h.store.Init(c.Request.Context()); err != nil {
			appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}
	log.Printf("[store][admin] reset done")

	c.Status(http.StatusNoContent)
}
