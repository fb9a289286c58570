package auth

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/franciscosanchezn/gin-recipe-api/internal/models"
	"github.com/golang-jwt/jwt/v5"
)

// Claim names shared by login tokens and client tokens
const (
	claimUserID   = "uid"
	claimRole     = "role"
	claimAudience = "aud"
	claimScope    = "scope"
)

// clockSkew is how far iat may lie in the future
const clockSkew = 30 * time.Second

// Caller is the identity carried by a verified access token
type Caller struct {
	UserID uint
	Role   string
	// ClientID is only set on tokens issued through the client_credentials grant
	ClientID string
	Scopes   []string
}

// IsClient reports whether the token was issued to an API client
func (c Caller) IsClient() bool {
	return c.ClientID != ""
}

// HasScope reports whether the caller may use scope. Login tokens are not scoped.
func (c Caller) HasScope(scope string) bool {
	if !c.IsClient() {
		return true
	}
	return slices.Contains(c.Scopes, scope)
}

// userClaims builds the claims every access token carries for user
func userClaims(user *models.User, issued time.Time, ttl time.Duration) jwt.MapClaims {
	return jwt.MapClaims{
		claimUserID: strconv.FormatUint(uint64(user.ID), 10),
		claimRole:   user.Role(),
		"iat":       issued.Unix(),
		"exp":       issued.Add(ttl).Unix(),
	}
}

// ParseToken verifies an HMAC signed access token and returns its caller.
// exp is mandatory, uid must be a positive id and role a known role.
func ParseToken(tokenString string, secret []byte) (Caller, error) {
	token, err := jwt.Parse(tokenString,
		func(*jwt.Token) (interface{}, error) { return secret, nil },
		jwt.WithValidMethods([]string{"HS256", "HS384", "HS512"}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithLeeway(clockSkew),
	)
	if err != nil {
		return Caller{}, fmt.Errorf("token parsing failed: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Caller{}, errors.New("invalid token claims format")
	}

	var caller Caller
	if caller.UserID, err = userIDClaim(claims); err != nil {
		return Caller{}, err
	}
	if caller.Role, err = roleClaim(claims); err != nil {
		return Caller{}, err
	}

	aud, err := claims.GetAudience()
	if err != nil {
		return Caller{}, fmt.Errorf("invalid aud claim: %w", err)
	}
	if len(aud) > 0 {
		caller.ClientID = aud[0]
	}
	if scope, ok := claims[claimScope].(string); ok {
		caller.Scopes = strings.Fields(scope)
	}

	return caller, nil
}

// userIDClaim accepts the uid as a numeric string or a JSON number
func userIDClaim(claims jwt.MapClaims) (uint, error) {
	switch uid := claims[claimUserID].(type) {
	case string:
		id, err := strconv.ParseUint(uid, 10, 32)
		if err != nil || id == 0 {
			return 0, fmt.Errorf("invalid uid claim %q", uid)
		}
		return uint(id), nil
	case float64:
		if uid < 1 {
			return 0, fmt.Errorf("invalid uid claim %v", uid)
		}
		return uint(uid), nil
	default:
		return 0, errors.New("token missing required 'uid' claim")
	}
}

func roleClaim(claims jwt.MapClaims) (string, error) {
	role, _ := claims[claimRole].(string)
	switch role {
	case models.RoleAdmin, models.RoleUser:
		return role, nil
	case "":
		return "", errors.New("token missing required 'role' claim")
	default:
		return "", fmt.Errorf("invalid role %q", role)
	}
}
