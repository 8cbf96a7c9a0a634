package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ryuk2345/raffussclietos/internal/entities"
)

func (h *Handler) ListServices(c *gin.Context) {
	services, err := h.serviceRepo.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching services"})
		return
	}
	c.JSON(http.StatusOK, services)
}

func (h *Handler) CreateService(c *gin.Context) {
	var svc entities.ServicePackage
	if err := c.ShouldBindJSON(&svc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Solicitud inválida"})
		return
	}
	if svc.Status == "" {
		svc.Status = entities.StatusActivo
	}
	svc.Name = SanitizeString(TruncateString(svc.Name, MaxNameLength))

	if err := h.serviceRepo.Create(&svc); err != nil {
		h.log.Error().Err(err).Msg("create service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating service"})
		return
	}
	c.JSON(http.StatusOK, svc)
}

func (h *Handler) UpdateService(c *gin.Context) {
	var patch entities.ServicePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Solicitud inválida"})
		return
	}

	svc, err := h.serviceRepo.Update(c.Param("id"), &patch)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating service"})
		return
	}
	if svc == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
		return
	}
	c.JSON(http.StatusOK, svc)
}

func (h *Handler) DeleteService(c *gin.Context) {
	if err := h.serviceRepo.Delete(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting service"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
