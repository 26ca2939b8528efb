package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"roam/pkg/utils"
)

// JWTAuthMiddleware resolves the caller identity. Handlers read it with
// c.GetString("user_id").
func JWTAuthMiddleware(secret []byte) gin.HandlerFunc {

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Not authenticated")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ValidateToken(secret, tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("user_id", claims.CallerID())
		c.Set("Role", claims.Role)
		c.Next()
	}
}
