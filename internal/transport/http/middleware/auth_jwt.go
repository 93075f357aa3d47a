package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"medsystem/internal/core/auth"
	resp "medsystem/internal/transport/http/response"
)

const KeyUserID = "userId"

// AuthJWT verifies the bearer token and exposes the doctor id under
// KeyUserID. Handlers pass that id into every domain call.
func AuthJWT(j *auth.JWTer) gin.HandlerFunc {
	return func(c *gin.Context) {
		ah := c.GetHeader("Authorization")
		if !strings.HasPrefix(ah, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusOK, resp.Error(resp.CodeUnauthorized, "missing token"))
			return
		}
		claims, err := j.Parse(strings.TrimPrefix(ah, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusOK, resp.Error(resp.CodeUnauthorized, "invalid token"))
			return
		}
		c.Set(KeyUserID, claims.UID)
		c.Next()
	}
}
