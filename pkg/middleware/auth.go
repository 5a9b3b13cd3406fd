package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	userIDKey   = "user_id"
	tokenIDKey  = "token_id"
	identityKey = "identity"
)

// Identity is the authenticated caller resolved from a bearer token.
type Identity struct {
	UserID  uint
	TokenID string
}

// Authenticator resolves a raw bearer token into the caller identity.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (Identity, error)
}

func AuthMiddleware(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			abortUnauthenticated(c)
			return
		}

		identity, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			abortUnauthenticated(c)
			return
		}

		SetIdentity(c, identity)
		c.Next()
	}
}

// CurrentIdentity returns the identity stored by AuthMiddleware.
func CurrentIdentity(c *gin.Context) (Identity, bool) {
	value, exists := c.Get(identityKey)
	if !exists {
		return Identity{}, false
	}
	identity, ok := value.(Identity)
	return identity, ok
}

// SetIdentity stores an identity on the context, as AuthMiddleware would.
func SetIdentity(c *gin.Context, identity Identity) {
	c.Set(identityKey, identity)
	c.Set(userIDKey, identity.UserID)
	c.Set(tokenIDKey, identity.TokenID)
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func abortUnauthenticated(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"status":  false,
		"message": "Unauthenticated.",
		"errors":  []any{},
	})
}
