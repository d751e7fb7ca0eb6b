package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Shutko92/TaskManagerApp/internal/core/domain"
	"github.com/Shutko92/TaskManagerApp/internal/core/ports"
	"github.com/Shutko92/TaskManagerApp/pkg/apierrors"
)

const identityKey = "identity"

const bearerPrefix = "Bearer "

// Identity is the authenticated principal attached to the request
// context once a bearer token has been validated.
type Identity struct {
	User        domain.User
	Authorities []string
}

// AuthenticationMiddleware runs once per request, before business
// logic. It never rejects a request: a missing, malformed, expired or
// mismatched token simply leaves the request without an identity, and
// downstream gates decide whether that blocks the operation.
func AuthenticationMiddleware(users ports.UserRepository, tokens ports.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			c.Next()
			return
		}
		raw := strings.TrimPrefix(header, bearerPrefix)

		if _, attached := c.Get(identityKey); attached {
			c.Next()
			return
		}

		username, err := tokens.ExtractUsername(raw)
		if err != nil {
			c.Next()
			return
		}

		user, err := users.FindByUsername(c.Request.Context(), username)
		if err != nil {
			c.Next()
			return
		}

		if tokens.ValidateToken(raw, user.Username) {
			c.Set(identityKey, Identity{
				User:        user,
				Authorities: []string{string(user.Role)},
			})
		}

		c.Next()
	}
}

// RequireAuthenticated rejects requests that reached a protected route
// without an identity attached by the authentication middleware.
func RequireAuthenticated() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentIdentity(c); !ok {
			lang := GetLang(c)
			c.AbortWithStatusJSON(
				http.StatusForbidden,
				apierrors.CreateError(http.StatusForbidden, apierrors.MsgAccessDenied, lang),
			)
			return
		}
		c.Next()
	}
}

func CurrentIdentity(c *gin.Context) (Identity, bool) {
	value, exists := c.Get(identityKey)
	if !exists {
		return Identity{}, false
	}
	identity, ok := value.(Identity)
	return identity, ok
}
