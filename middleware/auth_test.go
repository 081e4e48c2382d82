package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"basketly-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/o1egl/paseto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testKey = []byte("0123456789abcdef0123456789abcdef")

func TestIssueAndParseToken(t *testing.T) {
	token, err := IssueToken(testKey, "user-123", models.RoleCustomer)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, role, err := ParseToken(testKey, token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
	assert.Equal(t, models.RoleCustomer, role)
}

func TestParseToken_WrongKey(t *testing.T) {
	token, err := IssueToken(testKey, "user-123", models.RoleAdmin)
	require.NoError(t, err)

	otherKey := []byte("ffffffffffffffffffffffffffffffff")
	_, _, err = ParseToken(otherKey, token)
	assert.Error(t, err)
}

func TestParseToken_Expired(t *testing.T) {
	now := time.Now()
	jsonToken := paseto.JSONToken{
		Subject:    "user-123",
		IssuedAt:   now.Add(-48 * time.Hour),
		Expiration: now.Add(-24 * time.Hour),
	}
	jsonToken.Set(roleClaim, models.RoleAdmin)

	token, err := paseto.NewV2().Encrypt(testKey, jsonToken, tokenFooter)
	require.NoError(t, err)

	_, _, err = ParseToken(testKey, token)
	assert.Error(t, err)
}

func TestParseToken_WrongFooter(t *testing.T) {
	jsonToken := paseto.JSONToken{
		Subject:    "user-123",
		IssuedAt:   time.Now(),
		Expiration: time.Now().Add(time.Hour),
	}

	token, err := paseto.NewV2().Encrypt(testKey, jsonToken, "someone-else")
	require.NoError(t, err)

	_, _, err = ParseToken(testKey, token)
	assert.Error(t, err)
}

func newAuthTestRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userID": c.GetString(ContextUserID),
			"role":   c.GetString(ContextRole),
		})
	})
	r.GET("/protected", handlers...)
	return r
}

func doRequest(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthenticate_MissingToken(t *testing.T) {
	r := newAuthTestRouter(Authenticate(testKey))
	w := doRequest(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticate_MalformedHeader(t *testing.T) {
	r := newAuthTestRouter(Authenticate(testKey))
	w := doRequest(r, "Token abc")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticate_ValidToken(t *testing.T) {
	token, err := IssueToken(testKey, "user-123", models.RoleAdmin)
	require.NoError(t, err)

	r := newAuthTestRouter(Authenticate(testKey))
	w := doRequest(r, "Bearer "+token)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-123")
	assert.Contains(t, w.Body.String(), models.RoleAdmin)
}

func TestAdminOnly_RejectsCustomer(t *testing.T) {
	token, err := IssueToken(testKey, "user-123", models.RoleCustomer)
	require.NoError(t, err)

	r := newAuthTestRouter(Authenticate(testKey), AdminOnly())
	w := doRequest(r, "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminOnly_AllowsAdmin(t *testing.T) {
	token, err := IssueToken(testKey, "admin-1", models.RoleAdmin)
	require.NoError(t, err)

	r := newAuthTestRouter(Authenticate(testKey), AdminOnly())
	w := doRequest(r, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCustomerOnly_AcceptsLegacyRole(t *testing.T) {
	token, err := IssueToken(testKey, "user-9", models.RoleLegacyUser)
	require.NoError(t, err)

	r := newAuthTestRouter(Authenticate(testKey), CustomerOnly())
	w := doRequest(r, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthenticateOptional(t *testing.T) {
	r := newAuthTestRouter(AuthenticateOptional(testKey))

	// Tanpa token tetap lewat, context kosong.
	w := doRequest(r, "")
	assert.Equal(t, http.StatusOK, w.Code)

	// Token valid mengisi context.
	token, err := IssueToken(testKey, "user-7", models.RoleCustomer)
	require.NoError(t, err)
	w = doRequest(r, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-7")

	// Token rusak diabaikan, bukan ditolak.
	w = doRequest(r, "Bearer garbage")
	assert.Equal(t, http.StatusOK, w.Code)
}
