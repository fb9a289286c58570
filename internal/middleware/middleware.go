package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/franciscosanchezn/gin-recipe-api/internal/auth"
	"github.com/franciscosanchezn/gin-recipe-api/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/go-oauth2/oauth2/v4"
)

// ContextCaller is the gin context key holding the auth.Caller
const ContextCaller = "caller"

// TokenLookup finds stored client tokens. A client token missing from the store
// has been revoked, for instance because its client was deleted.
type TokenLookup interface {
	LookupToken(ctx context.Context, access string) (oauth2.TokenInfo, error)
}

// OAuth2Auth validates bearer JWTs, both the ones issued by the login endpoint and
// the ones issued to API clients, and stores the caller in the context.
// With a nil lookup client tokens are trusted until they expire.
func OAuth2Auth(jwtSecret []byte, tokens TokenLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		// RFC 6750: Extract Bearer token from Authorization header
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			respondWithOAuth2Error(c, http.StatusUnauthorized, "authorization_required",
				"Missing Authorization header. A valid Bearer token is required.")
			return
		}

		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found {
			respondWithOAuth2Error(c, http.StatusUnauthorized, models.ErrInvalidRequest,
				"Authorization header must use Bearer scheme. Format: 'Bearer <token>'")
			return
		}
		tokenString = strings.TrimSpace(tokenString)
		if tokenString == "" {
			respondWithOAuth2Error(c, http.StatusUnauthorized, "invalid_token", "Bearer token is empty")
			return
		}

		caller, err := auth.ParseToken(tokenString, jwtSecret)
		if err != nil {
			respondWithOAuth2Error(c, http.StatusUnauthorized, "invalid_token", err.Error())
			return
		}

		if caller.IsClient() && tokens != nil {
			if _, err := tokens.LookupToken(c.Request.Context(), tokenString); err != nil {
				respondWithOAuth2Error(c, http.StatusUnauthorized, "invalid_token", "token has been revoked")
				return
			}
		}

		c.Set(ContextCaller, caller)
		c.Next()
	}
}

// CurrentCaller returns the caller stored by OAuth2Auth
func CurrentCaller(c *gin.Context) (auth.Caller, bool) {
	value, exists := c.Get(ContextCaller)
	if !exists {
		return auth.Caller{}, false
	}
	caller, ok := value.(auth.Caller)
	return caller, ok && caller.UserID != 0
}

// CallerID returns the authenticated user id.
// ok is false when the route is not behind OAuth2Auth.
func CallerID(c *gin.Context) (uint, bool) {
	caller, ok := CurrentCaller(c)
	return caller.UserID, ok
}

// respondWithOAuth2Error responds with RFC 6750 compliant error format
func respondWithOAuth2Error(c *gin.Context, status int, errorCode, description string) {
	c.Header("WWW-Authenticate", `Bearer error="`+errorCode+`"`)
	c.AbortWithStatusJSON(status, models.NewOAuth2Error(errorCode, description))
}
