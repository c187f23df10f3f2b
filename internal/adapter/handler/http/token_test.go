package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/autoluxe/luxury_cars_backend/internal/core/domain"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTTokenRoundTrip(t *testing.T) {
	svc := NewJWTTokenService("test-secret", time.Hour, nopLogger{})

	token, err := svc.IssueToken("admin@autoluxe.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	payload, err := svc.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin@autoluxe.com", payload.Email)
	assert.Equal(t, domain.Admin, payload.Role)
}

func TestVerifyTokenRejectsWrongSecret(t *testing.T) {
	issuer := NewJWTTokenService("secret-a", time.Hour, nopLogger{})
	verifier := NewJWTTokenService("secret-b", time.Hour, nopLogger{})

	token, err := issuer.IssueToken("admin@autoluxe.com")
	require.NoError(t, err)

	_, err = verifier.VerifyToken(token)
	assert.Error(t, err)
}

func TestAuthMiddleware(t *testing.T) {
	svc := NewJWTTokenService("test-secret", time.Hour, nopLogger{})

	engine := gin.New()
	engine.GET("/protected", AuthMiddleware(svc), func(c *gin.Context) {
		payload, ok := getAuthPayload(c, authorizationPayloadKey)
		require.True(t, ok)
		newSuccessResponse(c, http.StatusOK, "", gin.H{"email": payload.Email})
	})

	tests := []struct {
		name       string
		authHeader string
		wantCode   int
	}{
		{name: "missing header", authHeader: "", wantCode: http.StatusUnauthorized},
		{name: "not a bearer scheme", authHeader: "Basic abc123", wantCode: http.StatusUnauthorized},
		{name: "garbage token", authHeader: "Bearer not-a-token", wantCode: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()
			engine.ServeHTTP(rec, req)
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}

	token, err := svc.IssueToken("admin@autoluxe.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestExpiredTokenRejected(t *testing.T) {
	svc := NewJWTTokenService("test-secret", -time.Minute, nopLogger{})

	token, err := svc.IssueToken("admin@autoluxe.com")
	require.NoError(t, err)

	_, err = svc.VerifyToken(token)
	assert.Error(t, err)
}
