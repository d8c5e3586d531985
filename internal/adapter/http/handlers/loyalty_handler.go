package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	request "estetica_pro/internal/adapter/http/dto/request"
	response "estetica_pro/internal/adapter/http/dto/response"
	"estetica_pro/internal/usecase"
	"estetica_pro/pkg"
)

var (
	errInvalidLoyaltyPayload = pkg.NewDomainErrorSimple("INVALID_LOYALTY_INPUT", "Invalid loyalty payload", http.StatusBadRequest)
)

// LoyaltyHandler exposes fidelity cards, points history, the reward catalog,
// redemptions and voucher lookup.
type LoyaltyHandler struct {
	usecase usecase.ILoyaltyUseCase
}

func NewLoyaltyHandler(uc usecase.ILoyaltyUseCase) *LoyaltyHandler {
	return &LoyaltyHandler{usecase: uc}
}

func (h *LoyaltyHandler) GetCard(c *gin.Context) {
	card, err := h.usecase.GetCard(c.Request.Context(), c.Param("client_id"))
	if err != nil {
		appErr := mapLoyaltyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromFidelityCard(card))
}

func (h *LoyaltyHandler) GetHistory(c *gin.Context) {
	entries, err := h.usecase.GetHistory(c.Request.Context(), c.Param("client_id"))
	if err != nil {
		appErr := mapLoyaltyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	out := make([]response.PointsEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, response.FromPointsEntry(e))
	}
	c.JSON(http.StatusOK, out)
}

func (h *LoyaltyHandler) ListRewards(c *gin.Context) {
	rewards, err := h.usecase.ListRewards(c.Request.Context())
	if err != nil {
		appErr := mapLoyaltyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	out := make([]response.RewardResponse, 0, len(rewards))
	for _, r := range rewards {
		out = append(out, response.FromReward(r))
	}
	c.JSON(http.StatusOK, out)
}

// RedeemReward exchanges points for a voucher code. Tier gate first, then
// balance.
func (h *LoyaltyHandler) RedeemReward(c *gin.Context) {
	var payload request.RedeemRewardRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLoyaltyPayload.HTTPStatus, errInvalidLoyaltyPayload.ToHTTPError())
		return
	}

	redemption, err := h.usecase.RedeemReward(c.Request.Context(), payload.ClientID, payload.RewardID)
	if err != nil {
		log.Printf("[loyalty][handler] redeem failed client_id=%s reward_id=%s err=%v", payload.ClientID, payload.RewardID, err)
		appErr := mapLoyaltyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[loyalty][handler] redeem success client_id=%s code=%s", payload.ClientID, redemption.Code)

	c.JSON(http.StatusCreated, response.FromRedemption(redemption))
}

// GetVoucher previews a voucher before the POS applies it to an order.
func (h *LoyaltyHandler) GetVoucher(c *gin.Context) {
	redemption, reward, err := h.usecase.GetVoucherDetails(c.Request.Context(), c.Param("code"))
	if err != nil {
		appErr := mapLoyaltyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if redemption == nil || reward == nil {
		appErr := pkg.NewDomainErrorSimple("VOUCHER_NOT_FOUND", "Voucher not found", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.VoucherDetailsResponse{
		Redemption: response.FromRedemption(*redemption),
		Reward:     response.FromReward(*reward),
	})
}

// AdjustPoints applies a manual signed delta to a client's card.
func (h *LoyaltyHandler) AdjustPoints(c *gin.Context) {
	var payload request.PointsAdjustRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLoyaltyPayload.HTTPStatus, errInvalidLoyaltyPayload.ToHTTPError())
		return
	}

	card, err := h.usecase.AddPointsToClient(c.Request.Context(), payload.ClientID, "", payload.Points, payload.Description)
	if err != nil {
		appErr := mapLoyaltyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromFidelityCard(card))
}

func mapLoyaltyError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidClientID), errors.Is(err, usecase.ErrInvalidPointsAmount):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRewardNotFound):
		return pkg.NewDomainErrorSimple("REWARD_NOT_FOUND", "Reward not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrVoucherNotFound):
		return pkg.NewDomainErrorSimple("VOUCHER_NOT_FOUND", "Voucher not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRewardTierLocked):
		return pkg.NewDomainErrorSimple("REWARD_TIER_LOCKED", "Client tier does not unlock this reward", http.StatusConflict)
	case errors.Is(err, usecase.ErrInsufficientPoints):
		return pkg.NewDomainErrorSimple("INSUFFICIENT_POINTS", "Not enough points for this reward", http.StatusConflict)
	case errors.Is(err, usecase.ErrVoucherAlreadyUsed):
		return pkg.NewDomainErrorSimple("VOUCHER_ALREADY_USED", "Voucher already consumed", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
