package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendops/backend/internal/infrastructure/auth"
	"github.com/vendops/backend/internal/infrastructure/config"
)

const testJWTSecret = "test-secret-key-at-least-32-chars!!"

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestValidator() *auth.TokenValidator {
	return auth.NewTokenValidator(config.JWTConfig{
		Secret: testJWTSecret,
		Issuer: "test-issuer",
	})
}

// mintTestToken signs a token the way the identity service would
func mintTestToken(t *testing.T, mutate func(*auth.Claims)) (string, *auth.Claims) {
	t.Helper()

	now := time.Now()
	claims := &auth.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Issuer:    "test-issuer",
			ExpiresAt: jwt.NewNumericDate(now.Add(15 * time.Minute)),
			NotBefore: jwt.NewNumericDate(now),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: uuid.New().String(),
		Email:  "ops@example.com",
		Name:   "Ops User",
		Role:   "pricing_admin",
	}
	if mutate != nil {
		mutate(claims)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	return signed, claims
}

func TestJWTAuthMiddleware_ValidToken(t *testing.T) {
	validator := newTestValidator()
	signed, minted := mintTestToken(t, nil)

	router := gin.New()
	router.Use(JWTAuthMiddleware(validator))
	router.GET("/test", func(c *gin.Context) {
		claims := GetJWTClaims(c)
		assert.NotNil(t, claims)
		assert.Equal(t, minted.UserID, claims.UserID)
		assert.Equal(t, minted.Email, claims.Email)
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestJWTAuthMiddleware_MissingHeader(t *testing.T) {
	validator := newTestValidator()

	router := gin.New()
	router.Use(JWTAuthMiddleware(validator))
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthMiddleware_InvalidHeaderFormat(t *testing.T) {
	validator := newTestValidator()

	router := gin.New()
	router.Use(JWTAuthMiddleware(validator))
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Authorization", "InvalidFormat token123")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthMiddleware_EmptyToken(t *testing.T) {
	validator := newTestValidator()

	router := gin.New()
	router.Use(JWTAuthMiddleware(validator))
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Authorization", "Bearer ")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthMiddleware_InvalidToken(t *testing.T) {
	validator := newTestValidator()

	router := gin.New()
	router.Use(JWTAuthMiddleware(validator))
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Authorization", "Bearer invalid-token")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthMiddleware_ExpiredToken(t *testing.T) {
	validator := newTestValidator()
	signed, _ := mintTestToken(t, func(c *auth.Claims) {
		c.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))
	})

	router := gin.New()
	router.Use(JWTAuthMiddleware(validator))
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthMiddleware_MalformedUserID(t *testing.T) {
	validator := newTestValidator()
	signed, _ := mintTestToken(t, func(c *auth.Claims) {
		c.UserID = "not-a-uuid"
	})

	router := gin.New()
	router.Use(JWTAuthMiddleware(validator))
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthMiddleware_SkipPaths(t *testing.T) {
	validator := newTestValidator()

	cfg := DefaultJWTConfig(validator)
	cfg.SkipPaths = append(cfg.SkipPaths, "/public")

	router := gin.New()
	router.Use(JWTAuthMiddlewareWithConfig(cfg))
	router.GET("/public", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodGet, "/public", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestJWTAuthMiddleware_SkipPathPrefixes(t *testing.T) {
	validator := newTestValidator()

	cfg := DefaultJWTConfig(validator)
	cfg.SkipPathPrefixes = append(cfg.SkipPathPrefixes, "/static")

	router := gin.New()
	router.Use(JWTAuthMiddlewareWithConfig(cfg))
	router.GET("/static/assets/image.png", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodGet, "/static/assets/image.png", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestJWTAuthMiddleware_DefaultSkipPaths(t *testing.T) {
	validator := newTestValidator()

	router := gin.New()
	router.Use(JWTAuthMiddleware(validator))

	defaultSkipPaths := []string{
		"/health",
		"/healthz",
		"/ready",
		"/api/v1/health",
	}

	for _, path := range defaultSkipPaths {
		router.GET(path, func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})
	}

	for _, path := range defaultSkipPaths {
		t.Run("SkipPath_"+path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, path, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code, "Path %s should be skipped", path)
		})
	}
}

func TestJWTAuthMiddleware_ActorInContext(t *testing.T) {
	validator := newTestValidator()
	userID := uuid.New()
	signed, _ := mintTestToken(t, func(c *auth.Claims) {
		c.UserID = userID.String()
	})

	var capturedOK bool
	var capturedUserID uuid.UUID
	var capturedEmail, capturedRole string

	router := gin.New()
	router.Use(JWTAuthMiddleware(validator))
	router.GET("/test", func(c *gin.Context) {
		actor, ok := GetActor(c)
		capturedOK = ok
		capturedUserID = actor.UserID
		capturedEmail = actor.Email
		capturedRole = actor.Role
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.True(t, capturedOK)
	assert.Equal(t, userID, capturedUserID)
	assert.Equal(t, "ops@example.com", capturedEmail)
	assert.Equal(t, "pricing_admin", capturedRole)
}

func TestRequestMeta(t *testing.T) {
	var captured bool

	router := gin.New()
	router.GET("/api/v1/price-overrides", func(c *gin.Context) {
		meta := RequestMeta(c)
		assert.Equal(t, "/api/v1/price-overrides", meta.RequestPath)
		assert.Equal(t, "curl/8.0", meta.UserAgent)
		assert.NotEmpty(t, meta.IPAddress)
		captured = true
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/price-overrides", nil)
	req.Header.Set("User-Agent", "curl/8.0")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.True(t, captured)
}

func TestGetJWTClaims_NotFound(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	claims := GetJWTClaims(c)

	assert.Nil(t, claims)
}

func TestGetJWTUserID_NotFound(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	userID := GetJWTUserID(c)

	assert.Empty(t, userID)
}

func TestGetActor_NotFound(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, ok := GetActor(c)

	assert.False(t, ok)
}

func TestOptionalJWTAuthMiddleware_NoToken(t *testing.T) {
	validator := newTestValidator()

	var capturedClaims *auth.Claims

	router := gin.New()
	router.Use(OptionalJWTAuthMiddleware(validator))
	router.GET("/test", func(c *gin.Context) {
		capturedClaims = GetJWTClaims(c)
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, capturedClaims)
}

func TestOptionalJWTAuthMiddleware_ValidToken(t *testing.T) {
	validator := newTestValidator()
	signed, minted := mintTestToken(t, nil)

	var capturedClaims *auth.Claims

	router := gin.New()
	router.Use(OptionalJWTAuthMiddleware(validator))
	router.GET("/test", func(c *gin.Context) {
		capturedClaims = GetJWTClaims(c)
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, capturedClaims)
	assert.Equal(t, minted.UserID, capturedClaims.UserID)
}

func TestOptionalJWTAuthMiddleware_InvalidToken(t *testing.T) {
	validator := newTestValidator()

	var capturedClaims *auth.Claims

	router := gin.New()
	router.Use(OptionalJWTAuthMiddleware(validator))
	router.GET("/test", func(c *gin.Context) {
		capturedClaims = GetJWTClaims(c)
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Authorization", "Bearer invalid-token")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, capturedClaims) // Invalid token, no claims
}

func TestJWTAuthMiddleware_CustomOnError(t *testing.T) {
	validator := newTestValidator()

	customErrorCalled := false
	cfg := DefaultJWTConfig(validator)
	cfg.OnError = func(c *gin.Context, err error) {
		customErrorCalled = true
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"custom": "error"})
	}

	router := gin.New()
	router.Use(JWTAuthMiddlewareWithConfig(cfg))
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.True(t, customErrorCalled)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
