package http

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/ryuk2345/raffussclietos/internal/entities"
	"github.com/ryuk2345/raffussclietos/internal/usecases"
)

// SessionCookie carries the signed session token for all three actor kinds.
const SessionCookie = "session_token"

const sessionMaxAge = 60 * 60 * 24 * 7

const sessionKey = "session"

type Middleware struct {
	auth         *usecases.AuthUsecase
	rateLimiters map[string]*rate.Limiter
	mu           sync.Mutex
}

func NewMiddleware(auth *usecases.AuthUsecase) *Middleware {
	return &Middleware{
		auth:         auth,
		rateLimiters: make(map[string]*rate.Limiter),
	}
}

// SessionRequired resolves the session cookie and stores the identity in the
// request context. Missing or invalid cookies get a 401.
func (m *Middleware) SessionRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No autenticado"})
			return
		}

		session, err := m.auth.Resolve(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No autenticado"})
			return
		}

		c.Set(sessionKey, *session)
		c.Next()
	}
}

// AdminRequired must follow SessionRequired.
func (m *Middleware) AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := CurrentSession(c)
		if !session.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Acceso restringido"})
			return
		}
		c.Next()
	}
}

// RateLimitPerIP throttles anonymous endpoints (the login paths) by client IP.
func (m *Middleware) RateLimitPerIP(r rate.Limit, b int) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()

		m.mu.Lock()
		limiter, exists := m.rateLimiters[key]
		if !exists {
			limiter = rate.NewLimiter(r, b)
			m.rateLimiters[key] = limiter
		}
		m.mu.Unlock()

		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Demasiados intentos"})
			return
		}

		c.Next()
	}
}

// CurrentSession returns the identity stored by SessionRequired.
func CurrentSession(c *gin.Context) entities.Session {
	if v, ok := c.Get(sessionKey); ok {
		if s, ok := v.(entities.Session); ok {
			return s
		}
	}
	return entities.Session{}
}

// CORSMiddleware allows Cross-Origin requests
func (m *Middleware) CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, PATCH, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// SecurityHeaders adds security headers to prevent common attacks
func SecurityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("X-Content-Type-Options", "nosniff")
		c.Writer.Header().Set("X-Frame-Options", "DENY")
		c.Writer.Header().Set("X-XSS-Protection", "1; mode=block")
		c.Writer.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

		c.Next()
	}
}

// RequestSizeLimiter limits request body size to prevent DoS
func RequestSizeLimiter(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

func setSessionCookie(c *gin.Context, token string) {
	c.SetCookie(SessionCookie, token, sessionMaxAge, "/", "", false, true)
}

func clearSessionCookie(c *gin.Context) {
	c.SetCookie(SessionCookie, "", -1, "/", "", false, true)
}
