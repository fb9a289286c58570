package auth

import (
	"context"
	"errors"
	"time"

	"github.com/franciscosanchezn/gin-recipe-api/internal/models"
	"github.com/go-oauth2/oauth2/v4"
	oauthErrors "github.com/go-oauth2/oauth2/v4/errors"
	oauthModels "github.com/go-oauth2/oauth2/v4/models"
	"gorm.io/gorm"
)

// GormClientStore serves oauth2.ClientStore from the oauth_clients table
type GormClientStore struct {
	db *gorm.DB
}

func NewGormClientStore(db *gorm.DB) *GormClientStore {
	return &GormClientStore{db: db}
}

// GetByID returns the client, which verifies secrets against its bcrypt hash
func (s *GormClientStore) GetByID(ctx context.Context, id string) (oauth2.ClientInfo, error) {
	var client models.OAuthClient
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&client).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, oauthErrors.ErrInvalidClient
	}
	if err != nil {
		return nil, err
	}
	return &client, nil
}

// GormTokenStore serves oauth2.TokenStore from the oauth_tokens table.
// Only access tokens exist: there are no authorization codes and no refresh tokens.
type GormTokenStore struct {
	db  *gorm.DB
	now func() time.Time
}

func NewGormTokenStore(db *gorm.DB) *GormTokenStore {
	return &GormTokenStore{db: db, now: time.Now}
}

// Create stores info and drops the client's tokens that have already expired
func (s *GormTokenStore) Create(ctx context.Context, info oauth2.TokenInfo) error {
	token := &models.OAuthToken{
		ClientID:    info.GetClientID(),
		UserID:      info.GetUserID(),
		AccessToken: info.GetAccess(),
		Scopes:      info.GetScope(),
		ExpiresAt:   info.GetAccessCreateAt().Add(info.GetAccessExpiresIn()),
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("client_id = ? AND expires_at <= ?", token.ClientID, s.now()).
			Delete(&models.OAuthToken{}).Error
		if err != nil {
			return err
		}
		return tx.Create(token).Error
	})
}

func (s *GormTokenStore) RemoveByCode(context.Context, string) error {
	return nil
}

func (s *GormTokenStore) RemoveByAccess(ctx context.Context, access string) error {
	return s.db.WithContext(ctx).Where("access_token = ?", access).Delete(&models.OAuthToken{}).Error
}

func (s *GormTokenStore) RemoveByRefresh(context.Context, string) error {
	return nil
}

func (s *GormTokenStore) GetByCode(context.Context, string) (oauth2.TokenInfo, error) {
	return nil, oauthErrors.ErrInvalidAuthorizeCode
}

// GetByAccess returns a live token; unknown and expired tokens are both errors
func (s *GormTokenStore) GetByAccess(ctx context.Context, access string) (oauth2.TokenInfo, error) {
	var token models.OAuthToken
	err := s.db.WithContext(ctx).Where("access_token = ?", access).First(&token).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, oauthErrors.ErrInvalidAccessToken
	}
	if err != nil {
		return nil, err
	}
	if token.Expired(s.now()) {
		return nil, oauthErrors.ErrExpiredAccessToken
	}
	return toTokenInfo(token), nil
}

func (s *GormTokenStore) GetByRefresh(context.Context, string) (oauth2.TokenInfo, error) {
	return nil, oauthErrors.ErrInvalidRefreshToken
}

func toTokenInfo(token models.OAuthToken) *oauthModels.Token {
	return &oauthModels.Token{
		ClientID:        token.ClientID,
		UserID:          token.UserID,
		Access:          token.AccessToken,
		AccessCreateAt:  token.CreatedAt,
		AccessExpiresIn: max(token.ExpiresAt.Sub(token.CreatedAt), 0),
		Scope:           token.Scopes,
	}
}
