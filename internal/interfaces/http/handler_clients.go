package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/ryuk2345/raffussclietos/internal/entities"
)

// ListClients returns all clients, or a single one when ?id= is given.
func (h *Handler) ListClients(c *gin.Context) {
	if id := c.Query("id"); id != "" {
		client, err := h.clientRepo.GetByID(id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching client"})
			return
		}
		c.JSON(http.StatusOK, client)
		return
	}

	clients, err := h.clientRepo.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching clients"})
		return
	}
	c.JSON(http.StatusOK, clients)
}

// CreateClient registers a client, derives its renewal date from the billing
// cycle and generates the plan checklist. A checklist failure does not roll
// the client back; that matches how registration has always behaved.
func (h *Handler) CreateClient(c *gin.Context) {
	var client entities.Client
	if err := c.ShouldBindJSON(&client); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Solicitud inválida"})
		return
	}

	today := time.Now()
	cycleDays, err := strconv.Atoi(client.BillingCycle)
	if err != nil || cycleDays <= 0 {
		cycleDays = 30
		client.BillingCycle = "30"
	}
	if client.StartDate == "" {
		client.StartDate = today.Format("2006-01-02")
	}
	client.RenewalDate = today.AddDate(0, 0, cycleDays).Format("2006-01-02")
	client.Metrics = entities.Metrics{}
	if client.Status == "" {
		client.Status = entities.StatusActivo
	}
	client.Company = SanitizeString(TruncateString(client.Company, MaxNameLength))

	if err := h.clientRepo.Create(&client); err != nil {
		h.log.Error().Err(err).Msg("create client")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating client"})
		return
	}

	if err := h.generator.GenerateTasksForPlan(c.Request.Context(), &client); err != nil {
		h.log.Error().Err(err).Str("client_id", client.ID).Msg("generate plan checklist")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating client"})
		return
	}

	c.JSON(http.StatusOK, client)
}

func (h *Handler) GetClient(c *gin.Context) {
	client, err := h.clientRepo.GetByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching client"})
		return
	}
	if client == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}
	c.JSON(http.StatusOK, client)
}

func (h *Handler) UpdateClient(c *gin.Context) {
	var patch entities.ClientPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Solicitud inválida"})
		return
	}

	client, err := h.clientRepo.Update(c.Param("id"), &patch)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating client"})
		return
	}
	if client == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}
	c.JSON(http.StatusOK, client)
}

// DeleteClient removes the client; its tasks go with it.
func (h *Handler) DeleteClient(c *gin.Context) {
	if err := h.clientRepo.Delete(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting client"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ClientAccessQR renders the client's portal access code as a QR PNG for
// onboarding handoff.
func (h *Handler) ClientAccessQR(c *gin.Context) {
	client, err := h.clientRepo.GetByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching client"})
		return
	}
	if client == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}
	if client.AccessCode == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cliente sin código de acceso"})
		return
	}

	png, err := qrcode.Encode(client.AccessCode, qrcode.Medium, 256)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error generando QR"})
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}
