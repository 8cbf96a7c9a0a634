package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// DashboardSummary returns the viewer's visible clients with progress
// aggregates, already filtered by the role-scoped visibility rules.
func (h *Handler) DashboardSummary(c *gin.Context) {
	summary, err := h.dashboard.Summary(CurrentSession(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching dashboard"})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// DashboardWorkload returns per-member task buckets; admins also get the
// unassigned inbox.
func (h *Handler) DashboardWorkload(c *gin.Context) {
	workload, err := h.dashboard.Workload(CurrentSession(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching workload"})
		return
	}
	c.JSON(http.StatusOK, workload)
}
