package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"trimly/middleware"
	"trimly/services/booking"
	"trimly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CheckoutHandler exposes the multi-service checkout session endpoints.
type CheckoutHandler struct {
	Service booking.CheckoutService
	Logger  *zap.Logger
}

func NewCheckoutHandler(svc booking.CheckoutService, logger *zap.Logger) *CheckoutHandler {
	return &CheckoutHandler{Service: svc, Logger: logger}
}

// StartSession creates a new checkout session from a list of service ids.
func (h *CheckoutHandler) StartSession(c *gin.Context) {
	var input struct {
		ServiceIDs []string `json:"serviceIds" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	cart, err := h.Service.StartSession(c.Request.Context(), input.ServiceIDs)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to start checkout session", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": cart})
}

// GetSession returns the current cart for a session.
func (h *CheckoutHandler) GetSession(c *gin.Context) {
	cart, err := h.Service.GetSession(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, booking.ErrSessionNotFound) {
			status = http.StatusNotFound
		}
		utils.JSONError(c, status, "failed to load checkout session", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": cart})
}

// UpdateLine applies an employee/date/time change to one cart line and
// returns the updated cart with recomputed slots.
func (h *CheckoutHandler) UpdateLine(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid line index", c.Param("index"))
		return
	}

	var upd booking.LineUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	cart, err := h.Service.UpdateLine(c.Request.Context(), c.Param("sessionID"), index, upd)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, booking.ErrSessionNotFound) {
			status = http.StatusNotFound
		}
		utils.JSONError(c, status, "failed to update cart line", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": cart})
}

// Confirm submits the cart. Partial failure is a 207: the body names the
// created appointments and the line that failed.
func (h *CheckoutHandler) Confirm(c *gin.Context) {
	var input struct {
		AccountID string `json:"accountId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	customerID := middleware.CustomerID(c)
	result, err := h.Service.Confirm(c.Request.Context(), c.Param("sessionID"), customerID, input.AccountID)
	if err != nil {
		var incomplete *booking.IncompleteSelectionError
		switch {
		case errors.Is(err, booking.ErrAuthRequired):
			utils.JSONError(c, http.StatusUnauthorized, "authentication required", err.Error())
		case errors.As(err, &incomplete):
			c.JSON(http.StatusBadRequest, gin.H{
				"error":     "incomplete selection",
				"serviceId": incomplete.ServiceID,
				"line":      incomplete.Index,
			})
		case errors.Is(err, booking.ErrSessionNotFound):
			utils.JSONError(c, http.StatusNotFound, "checkout session not found", err.Error())
		default:
			utils.JSONError(c, http.StatusInternalServerError, "failed to confirm booking", err.Error())
		}
		return
	}

	if !result.FullySucceeded() {
		h.Logger.Warn("checkout confirmed partially",
			zap.String("sessionID", c.Param("sessionID")),
			zap.Int("succeeded", len(result.Succeeded)),
			zap.Int("failedLine", result.Failed.Index))
		c.JSON(http.StatusMultiStatus, gin.H{"result": result})
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": result})
}

// CancelSession discards the cart.
func (h *CheckoutHandler) CancelSession(c *gin.Context) {
	if err := h.Service.CancelSession(c.Request.Context(), c.Param("sessionID")); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to cancel checkout session", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}
