package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/franciscosanchezn/gin-recipe-api/internal/models"
	"github.com/franciscosanchezn/gin-recipe-api/internal/validation"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ClientInput describes an API client to register
type ClientInput struct {
	Name        string `json:"name" validate:"required,max=255"`
	Domain      string `json:"domain" validate:"omitempty,url"`
	Scopes      string `json:"scopes"`
	RedirectURI string `json:"redirect_uri" validate:"omitempty,url"`
}

type ClientService interface {
	// CreateClient registers a client for userID and returns it with its plain secret.
	// The secret is only ever available here; the stored copy is a bcrypt hash.
	CreateClient(ctx context.Context, userID uint, input ClientInput) (*models.OAuthClient, string, error)
	GetClientsByUserID(ctx context.Context, userID uint) ([]models.OAuthClient, error)
	GetClientByID(ctx context.Context, id string) (*models.OAuthClient, error)
	DeleteClient(ctx context.Context, clientID string, userID uint) error
}

type clientService struct {
	db        *gorm.DB
	validator *validation.Validator
}

func NewClientService(db *gorm.DB) ClientService {
	return &clientService{db: db, validator: validation.New()}
}

func (s *clientService) CreateClient(ctx context.Context, userID uint, input ClientInput) (*models.OAuthClient, string, error) {
	input.Name = strings.TrimSpace(input.Name)
	if err := s.validator.Validate(input); err != nil {
		return nil, "", err
	}

	secret := uuid.New().String()
	hashedSecret, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("hashing client secret: %w", err)
	}

	scopes, err := normalizeScopes(input.Scopes)
	if err != nil {
		return nil, "", err
	}

	client := &models.OAuthClient{
		ID:          uuid.New().String(),
		Secret:      string(hashedSecret),
		Name:        input.Name,
		Domain:      input.Domain,
		UserID:      userID,
		Scopes:      scopes,
		GrantTypes:  "client_credentials",
		RedirectURI: input.RedirectURI,
	}
	if err := s.db.WithContext(ctx).Create(client).Error; err != nil {
		return nil, "", fmt.Errorf("creating client: %w", err)
	}

	log.WithFields(logrus.Fields{
		"client_id": client.ID,
		"user_id":   userID,
	}).Info("API client registered")
	return client, secret, nil
}

func (s *clientService) GetClientsByUserID(ctx context.Context, userID uint) ([]models.OAuthClient, error) {
	clients := []models.OAuthClient{}
	if err := s.db.WithContext(ctx).Scopes(OwnedBy(userID)).Order("created_at").Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

func (s *clientService) GetClientByID(ctx context.Context, id string) (*models.OAuthClient, error) {
	var client models.OAuthClient
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&client).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NotFoundError("client not found")
		}
		return nil, err
	}
	return &client, nil
}

func (s *clientService) DeleteClient(ctx context.Context, clientID string, userID uint) error {
	result := s.db.WithContext(ctx).Scopes(OwnedBy(userID)).Where("id = ?", clientID).Delete(&models.OAuthClient{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return models.NotFoundError("client not found")
	}
	return s.db.WithContext(ctx).Where("client_id = ?", clientID).Delete(&models.OAuthToken{}).Error
}

// knownScopes are the scopes a client may be granted
var knownScopes = []string{"read", "write"}

// normalizeScopes checks a space separated scope list, defaulting to every known scope
func normalizeScopes(raw string) (string, error) {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return strings.Join(knownScopes, " "), nil
	}
	for _, scope := range fields {
		if !slices.Contains(knownScopes, scope) {
			return "", models.ValidationError("validation failed", map[string]string{
				"scopes": fmt.Sprintf("unknown scope %q, allowed: %s", scope, strings.Join(knownScopes, ", ")),
			})
		}
	}
	return strings.Join(slices.Compact(slices.Sorted(slices.Values(fields))), " "), nil
}
