package handlers

import (
	"net/http"

	catalogRepo "trimly/database/repository/catalog"
	"trimly/utils"

	"github.com/gin-gonic/gin"
)

// CatalogHandler exposes the read-only service catalog.
type CatalogHandler struct {
	Repo catalogRepo.CatalogRepository
}

func NewCatalogHandler(repo catalogRepo.CatalogRepository) *CatalogHandler {
	return &CatalogHandler{Repo: repo}
}

// ListServices returns every bookable service.
func (h *CatalogHandler) ListServices(c *gin.Context) {
	services, err := h.Repo.ListServices(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list services", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

// ListEmployees returns the staff members who offer a service.
func (h *CatalogHandler) ListEmployees(c *gin.Context) {
	serviceID := c.Query("serviceId")
	if serviceID == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing serviceId", "")
		return
	}
	employees, err := h.Repo.ListEmployeesForService(c.Request.Context(), serviceID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list employees", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"employees": employees})
}
