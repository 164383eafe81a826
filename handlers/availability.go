package handlers

import (
	"net/http"

	"trimly/models"
	"trimly/services/availability"
	"trimly/utils"

	"github.com/gin-gonic/gin"
)

// AvailabilityHandler exposes day-level slot queries.
type AvailabilityHandler struct {
	Service availability.AvailabilityService
}

func NewAvailabilityHandler(svc availability.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{Service: svc}
}

// DaySlots returns the bookable slots for a service on a date, for a specific
// employee or merged across all eligible ones. Slots are sorted
// chronologically for presentation; the merge itself preserves
// first-appearance order.
func (h *AvailabilityHandler) DaySlots(c *gin.Context) {
	serviceID := c.Query("serviceId")
	if serviceID == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing serviceId", "")
		return
	}
	date, err := models.ParseDate(c.Query("date"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid date", err.Error())
		return
	}
	employee := c.DefaultQuery("employee", models.AnyEmployee)

	slots, err := h.Service.DaySlots(c.Request.Context(), serviceID, date, employee)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to compute availability", err.Error())
		return
	}
	availability.SortSlots(slots)
	c.JSON(http.StatusOK, gin.H{
		"serviceId": serviceID,
		"date":      date,
		"slots":     slots,
	})
}
