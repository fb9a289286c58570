package auth

import (
	"context"
	"time"

	"github.com/go-oauth2/oauth2/v4"
	"github.com/go-oauth2/oauth2/v4/manage"
	"gorm.io/gorm"
)

// DefaultClientTokenTTL applies when OAuthConfig leaves TokenTTL unset
const DefaultClientTokenTTL = 2 * time.Hour

// OAuthConfig configures tokens issued to API clients
type OAuthConfig struct {
	Secret   string
	TokenTTL time.Duration
}

// OAuthService issues access tokens to registered API clients
type OAuthService struct {
	manager *manage.Manager
	db      *gorm.DB
}

// NewOAuthService wires the go-oauth2 manager to the gorm client and token stores.
// Tokens are signed with the login secret so one middleware validates both kinds.
func NewOAuthService(db *gorm.DB, users UserFinder, cfg OAuthConfig) *OAuthService {
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = DefaultClientTokenTTL
	}

	manager := manage.NewDefaultManager()
	manager.SetClientTokenCfg(&manage.Config{AccessTokenExp: cfg.TokenTTL})
	manager.MapAccessGenerate(NewClientTokenGenerator([]byte(cfg.Secret), users))
	manager.MustTokenStorage(NewGormTokenStore(db), nil)
	manager.MapClientStorage(NewGormClientStore(db))

	return &OAuthService{manager: manager, db: db}
}

// IssueClientToken runs the client_credentials grant for an authenticated client
func (o *OAuthService) IssueClientToken(ctx context.Context, clientID, secret, scope string) (oauth2.TokenInfo, error) {
	return o.manager.GenerateAccessToken(ctx, oauth2.ClientCredentials, &oauth2.TokenGenerateRequest{
		ClientID:     clientID,
		ClientSecret: secret,
		Scope:        scope,
	})
}

// LookupToken returns a stored, unexpired client token
func (o *OAuthService) LookupToken(ctx context.Context, access string) (oauth2.TokenInfo, error) {
	return o.manager.LoadAccessToken(ctx, access)
}
