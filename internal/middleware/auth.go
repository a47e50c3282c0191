package middleware

import (
	"net/http"
	"os"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/Yasinqurni/m-app-server/internal/response"
)

var (
	jwtSecretOnce sync.Once
	jwtSecretVal  []byte
)

// JWTSecret returns the signing key from JWT_SECRET, resolved once.
func JWTSecret() []byte {
	jwtSecretOnce.Do(func() {
		secret := os.Getenv("JWT_SECRET")
		if secret == "" {
			secret = "secret"
		}
		jwtSecretVal = []byte(secret)
	})
	return jwtSecretVal
}

type Claims struct {
	jwt.RegisteredClaims
}

// AuthMiddleware verifies a Bearer token and stores the subject under "userId".
// No route mounts it today; it is kept alongside the token utilities.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Error(c, http.StatusUnauthorized, "Authorization header required", "authentication")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Error(c, http.StatusUnauthorized, "Invalid authorization header format", "authentication")
			c.Abort()
			return
		}

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (any, error) {
			return JWTSecret(), nil
		})
		if err != nil || !token.Valid {
			response.Error(c, http.StatusUnauthorized, "Invalid or expired token", "authentication")
			c.Abort()
			return
		}

		c.Set("userId", claims.Subject)
		c.Next()
	}
}

func GetUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get("userId")
	if !exists {
		return "", false
	}
	return userID.(string), true
}
