package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ryuk2345/raffussclietos/internal/entities"
	"github.com/ryuk2345/raffussclietos/internal/usecases"
)

// Team member handlers serve both /api/team and /api/users; the two
// surfaces share one store.

func (h *Handler) ListTeam(c *gin.Context) {
	team, err := h.userRepo.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching team"})
		return
	}
	c.JSON(http.StatusOK, team)
}

func (h *Handler) CreateTeamMember(c *gin.Context) {
	var payload struct {
		Name         string `json:"name"`
		Role         string `json:"role"`
		Email        string `json:"email"`
		PasswordHash string `json:"passwordHash"`
		Status       string `json:"status"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Solicitud inválida"})
		return
	}

	member := entities.User{
		Name:   strings.TrimSpace(SanitizeString(payload.Name)),
		Role:   payload.Role,
		Email:  strings.TrimSpace(payload.Email),
		Status: payload.Status,
	}
	if member.Status == "" {
		member.Status = entities.StatusActivo
	}
	if payload.PasswordHash != "" {
		hashed, err := usecases.HashPassword(payload.PasswordHash)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating team member"})
			return
		}
		member.PasswordHash = hashed
	}

	if err := h.userRepo.Create(&member); err != nil {
		h.log.Error().Err(err).Msg("create team member")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating team member"})
		return
	}
	c.JSON(http.StatusOK, member)
}

func (h *Handler) UpdateTeamMember(c *gin.Context) {
	var patch entities.UserPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Solicitud inválida"})
		return
	}

	if patch.Name != nil {
		trimmed := strings.TrimSpace(SanitizeString(*patch.Name))
		patch.Name = &trimmed
	}
	// An empty password keeps the current credential.
	if patch.PasswordHash != nil {
		if *patch.PasswordHash == "" {
			patch.PasswordHash = nil
		} else {
			hashed, err := usecases.HashPassword(*patch.PasswordHash)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating team member"})
				return
			}
			patch.PasswordHash = &hashed
		}
	}

	member, err := h.userRepo.Update(c.Param("id"), &patch)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating team member"})
		return
	}
	if member == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Team member not found"})
		return
	}
	c.JSON(http.StatusOK, member)
}

func (h *Handler) DeleteTeamMember(c *gin.Context) {
	if err := h.userRepo.Delete(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting team member"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
