package handlers

import (
	"net/http"
	"time"

	"trimly/models"
	"trimly/services/schedule"
	"trimly/utils"

	"github.com/gin-gonic/gin"
)

// TimeOffHandler exposes staff time-off exceptions and their calendar
// expansion.
type TimeOffHandler struct {
	Service schedule.TimeOffService
}

func NewTimeOffHandler(svc schedule.TimeOffService) *TimeOffHandler {
	return &TimeOffHandler{Service: svc}
}

// MonthOccurrences expands an employee's time-off onto the days of one month.
func (h *TimeOffHandler) MonthOccurrences(c *gin.Context) {
	employeeID := c.Query("employeeId")
	if employeeID == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing employeeId", "")
		return
	}
	month, err := time.Parse("2006-01", c.Query("month"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid month, expected YYYY-MM", err.Error())
		return
	}

	occurrences, err := h.Service.MonthOccurrences(c.Request.Context(), employeeID, month.Year(), month.Month())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to expand time off", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"occurrences": occurrences})
}

// CreateException records a new time-off exception.
func (h *TimeOffHandler) CreateException(c *gin.Context) {
	var exc models.TimeOffException
	if err := c.ShouldBindJSON(&exc); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if exc.EmployeeID == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing employee_id", "")
		return
	}

	created, err := h.Service.AddException(c.Request.Context(), exc)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to create time off", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"timeOff": created})
}

// DeleteException removes a time-off exception.
func (h *TimeOffHandler) DeleteException(c *gin.Context) {
	if err := h.Service.RemoveException(c.Request.Context(), c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusNotFound, "failed to delete time off", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
