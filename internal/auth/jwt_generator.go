package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/franciscosanchezn/gin-recipe-api/internal/models"
	"github.com/go-oauth2/oauth2/v4"
	oauthErrors "github.com/go-oauth2/oauth2/v4/errors"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
)

// UserFinder loads the user an API client acts for
type UserFinder interface {
	GetUserByID(ctx context.Context, id uint) (*models.User, error)
}

// ClientTokenGenerator is the oauth2.AccessGenerate used for API clients.
// A client token carries the same uid and role claims as a login token for the
// client's owner, plus the client id as audience and the granted scope.
type ClientTokenGenerator struct {
	secret []byte
	method jwt.SigningMethod
	users  UserFinder
}

func NewClientTokenGenerator(secret []byte, users UserFinder) *ClientTokenGenerator {
	return &ClientTokenGenerator{secret: secret, method: jwt.SigningMethodHS512, users: users}
}

// Token signs the access token. Refresh tokens are never issued for client_credentials.
func (g *ClientTokenGenerator) Token(ctx context.Context, data *oauth2.GenerateBasic, _ bool) (string, string, error) {
	ownerID := data.Client.GetUserID()
	id, err := strconv.ParseUint(ownerID, 10, 32)
	if err != nil || id == 0 {
		return "", "", oauthErrors.ErrInvalidClient
	}

	owner, err := g.users.GetUserByID(ctx, uint(id))
	if errors.Is(err, models.ErrNotFoundError) {
		return "", "", oauthErrors.ErrInvalidClient
	}
	if err != nil {
		return "", "", fmt.Errorf("loading client owner: %w", err)
	}
	// role is read at issue time so a demoted user stops getting admin tokens
	if !owner.IsActive {
		log.WithFields(logrus.Fields{
			"client_id": data.Client.GetID(),
			"user_id":   owner.ID,
		}).Warn("Token refused for inactive user")
		return "", "", oauthErrors.ErrAccessDenied
	}

	// recorded by the token store, used to revoke tokens with their owner
	data.TokenInfo.SetUserID(ownerID)

	claims := userClaims(owner, data.TokenInfo.GetAccessCreateAt(), data.TokenInfo.GetAccessExpiresIn())
	claims[claimAudience] = data.Client.GetID()
	if scope := data.TokenInfo.GetScope(); scope != "" {
		claims[claimScope] = scope
	}

	access, err := jwt.NewWithClaims(g.method, claims).SignedString(g.secret)
	if err != nil {
		return "", "", err
	}
	return access, "", nil
}
