package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/ryuk2345/raffussclietos/internal/entities"
	"github.com/ryuk2345/raffussclietos/internal/usecases"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func sessionRouter(t *testing.T) (*gin.Engine, *usecases.AuthUsecase) {
	t.Helper()
	auth := usecases.NewAuthUsecase(nil, nil, "test-secret", "")
	m := NewMiddleware(auth)

	r := gin.New()
	r.GET("/protected", m.SessionRequired(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": CurrentSession(c).ID})
	})
	return r, auth
}

func TestSessionRequired(t *testing.T) {
	t.Run("missing cookie gets 401", func(t *testing.T) {
		r, _ := sessionRouter(t)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "No autenticado")
	})

	t.Run("tampered cookie gets 401", func(t *testing.T) {
		r, _ := sessionRouter(t)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "admin"})
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("signed token passes and exposes the session", func(t *testing.T) {
		r, auth := sessionRouter(t)
		result, err := auth.Login("", "admin123")
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookie, Value: result.Token})
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"id":"admin"`)
	})
}

func TestAdminRequired(t *testing.T) {
	m := NewMiddleware(nil)

	router := func(session entities.Session) *gin.Engine {
		r := gin.New()
		r.GET("/admin", func(c *gin.Context) {
			c.Set(sessionKey, session)
		}, m.AdminRequired(), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})
		return r
	}

	t.Run("member is rejected", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		router(entities.Session{ID: "u1", Role: "Diseñador", Type: entities.SessionUser}).ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("admin passes", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		router(entities.Session{ID: "admin", Role: "Administrador", Type: entities.SessionAdmin}).ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestRateLimitPerIP(t *testing.T) {
	m := NewMiddleware(nil)
	r := gin.New()
	r.POST("/login", m.RateLimitPerIP(rate.Limit(1), 2), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	codes := []int{}
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestSanitizeString(t *testing.T) {
	assert.Equal(t, "hola", SanitizeString("ho\x00la"))
	assert.Equal(t, "año", SanitizeString("año"))
	assert.Equal(t, "ab", SanitizeString("a\xffb"))
}

func TestValidateLength(t *testing.T) {
	assert.True(t, ValidateLength("abc", 1, 3))
	assert.False(t, ValidateLength("", 1, 3))
	assert.False(t, ValidateLength("abcd", 1, 3))
}

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "abc", TruncateString("abcdef", 3))
	assert.Equal(t, "ab", TruncateString("ab", 3))
}
