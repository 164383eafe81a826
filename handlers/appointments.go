package handlers

import (
	"net/http"

	appointmentRepo "trimly/database/repository/appointment"
	"trimly/middleware"
	"trimly/utils"

	"github.com/gin-gonic/gin"
)

// AppointmentsHandler exposes the authenticated caller's booked appointments.
type AppointmentsHandler struct {
	Repo appointmentRepo.AppointmentRepository
}

func NewAppointmentsHandler(repo appointmentRepo.AppointmentRepository) *AppointmentsHandler {
	return &AppointmentsHandler{Repo: repo}
}

// ListMine returns the caller's appointments, ordered by start time.
func (h *AppointmentsHandler) ListMine(c *gin.Context) {
	customerID := middleware.CustomerID(c)
	appointments, err := h.Repo.ListForCustomer(c.Request.Context(), customerID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list appointments", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appointments})
}
