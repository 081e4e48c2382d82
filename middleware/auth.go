// Package middleware berisi middleware gin untuk otentikasi bearer token
// dan pembatasan role.
package middleware

import (
	"net/http"
	"strings"

	"basketly-backend/models"

	"github.com/gin-gonic/gin"
)

// Kunci context yang diisi setelah otentikasi berhasil.
const (
	ContextUserID = "userID"
	ContextRole   = "role"
)

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}
	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == authHeader {
		return "", false
	}
	return token, true
}

// Authenticate memvalidasi bearer token paseto dan mengisi id user serta
// role ke context. Request tanpa token yang valid ditolak 401.
func Authenticate(secretKey []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authorized, token missing"})
			return
		}

		userID, role, err := ParseToken(secretKey, token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token invalid or expired"})
			return
		}

		c.Set(ContextUserID, userID)
		c.Set(ContextRole, role)
		c.Next()
	}
}

// AuthenticateOptional mengisi context bila ada token yang valid, tapi
// tetap meneruskan request tanpa token. Dipakai rute keranjang yang juga
// melayani pengunjung tanpa akun.
func AuthenticateOptional(secretKey []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, ok := bearerToken(c); ok {
			if userID, role, err := ParseToken(secretKey, token); err == nil {
				c.Set(ContextUserID, userID)
				c.Set(ContextRole, role)
			}
		}
		c.Next()
	}
}

// AdminOnly menolak request yang bukan dari admin. Harus dipasang
// setelah Authenticate.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ContextRole) != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied: Admins only"})
			return
		}
		c.Next()
	}
}

// CustomerOnly menolak request yang bukan dari customer.
func CustomerOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(ContextRole)
		if role != models.RoleCustomer && role != models.RoleLegacyUser {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied: Customers only"})
			return
		}
		c.Next()
	}
}
