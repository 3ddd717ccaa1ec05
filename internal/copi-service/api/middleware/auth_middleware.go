package middleware

import (
	"CoPI_Backend/internal/copi-service/api/dto/response"
	"CoPI_Backend/internal/copi-service/session"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// UserIDContextKey is where RequireSession stores the resolved caller id.
const UserIDContextKey = "user_id"

type AuthMiddleware interface {
	RequireSession() gin.HandlerFunc
}

type authMiddleware struct {
	resolver session.Resolver
}

// RequireSession resolves the bearer credential into a caller identity and
// injects it into the request context. Every failure mode answers with the
// same 401 body so the response does not reveal why resolution failed.
func (a *authMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		token, found := strings.CutPrefix(auth, "Bearer ")
		if !found || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{
				Error: "Unauthorized",
			})
			return
		}
		userID, err := a.resolver.Resolve(c, token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{
				Error: "Unauthorized",
			})
			return
		}
		c.Set(UserIDContextKey, userID)
		c.Next()
	}
}

func NewAuthMiddleware(resolver session.Resolver) AuthMiddleware {
	return &authMiddleware{
		resolver: resolver,
	}
}
