package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ryuk2345/raffussclietos/internal/usecases"
)

// Login authenticates any of the three actor kinds and sets the session
// cookie.
func (h *Handler) Login(c *gin.Context) {
	var payload struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Solicitud inválida"})
		return
	}

	result, err := h.auth.Login(payload.Email, payload.Password)
	if err != nil {
		if errors.Is(err, usecases.ErrWrongPassword) || errors.Is(err, usecases.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		h.log.Error().Err(err).Msg("auth error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error interno"})
		return
	}

	setSessionCookie(c, result.Token)
	c.JSON(http.StatusOK, gin.H{"success": true, "redirectTo": result.RedirectTo})
}

// LogoutQuery handles the legacy GET /api/auth?logout=true logout link.
func (h *Handler) LogoutQuery(c *gin.Context) {
	if c.Query("logout") == "true" {
		clearSessionCookie(c)
		c.JSON(http.StatusOK, gin.H{"success": true})
		return
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
}

func (h *Handler) Logout(c *gin.Context) {
	clearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Me returns the resolved identity behind the session cookie.
func (h *Handler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, CurrentSession(c))
}

// PortalLogin authenticates a client by access code only. It issues the same
// session cookie as the main login.
func (h *Handler) PortalLogin(c *gin.Context) {
	var payload struct {
		AccessCode string `json:"accessCode"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Solicitud inválida"})
		return
	}

	result, err := h.auth.PortalLogin(payload.AccessCode)
	if err != nil {
		if errors.Is(err, usecases.ErrInvalidAccessCode) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		h.log.Error().Err(err).Msg("portal login error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error interno"})
		return
	}

	setSessionCookie(c, result.Token)
	c.JSON(http.StatusOK, gin.H{"success": true, "clientId": result.Session.ID})
}
