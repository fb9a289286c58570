package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/franciscosanchezn/gin-recipe-api/internal/models"
	"github.com/franciscosanchezn/gin-recipe-api/internal/validation"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ListOptions refines an attribute listing
type ListOptions struct {
	// AssignedOnly keeps rows used by at least one recipe
	AssignedOnly bool
}

// AttributeInput is the payload for creating a tag or an ingredient
type AttributeInput struct {
	Name string `json:"name" validate:"required,max=255"`
}

// AttributeService lists and creates the tags or ingredients of a user
type AttributeService interface {
	// Kind tells which attribute table the service works on
	Kind() models.AttributeKind
	// List returns the caller's rows, see ListOptions
	List(ctx context.Context, userID uint, opts ListOptions) ([]models.Attribute, error)
	// Create stores a new row owned by userID
	Create(ctx context.Context, userID uint, input AttributeInput) (models.Attribute, error)
}

type attributeService struct {
	db        *gorm.DB
	kind      models.AttributeKind
	validator *validation.Validator
}

// NewTagService creates the AttributeService backed by the tags table
func NewTagService(db *gorm.DB) AttributeService {
	return &attributeService{db: db, kind: models.TagKind, validator: validation.New()}
}

// NewIngredientService creates the AttributeService backed by the ingredients table
func NewIngredientService(db *gorm.DB) AttributeService {
	return &attributeService{db: db, kind: models.IngredientKind, validator: validation.New()}
}

func (s *attributeService) Kind() models.AttributeKind {
	return s.kind
}

func (s *attributeService) List(ctx context.Context, userID uint, opts ListOptions) ([]models.Attribute, error) {
	query := s.db.WithContext(ctx).Table(s.kind.Table).Scopes(OwnedBy(userID))
	if opts.AssignedOnly {
		query = query.Scopes(AssignedOnly(s.kind))
	} else {
		query = query.Scopes(OrderByNameDesc)
	}

	rows := []models.Attribute{}
	if err := query.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("listing %ss: %w", s.kind.Label, err)
	}
	return rows, nil
}

func (s *attributeService) Create(ctx context.Context, userID uint, input AttributeInput) (models.Attribute, error) {
	input.Name = strings.TrimSpace(input.Name)
	if err := s.validator.Validate(input); err != nil {
		return models.Attribute{}, err
	}

	row := models.Attribute{Name: input.Name, UserID: userID}
	if err := s.db.WithContext(ctx).Table(s.kind.Table).Create(&row).Error; err != nil {
		return models.Attribute{}, fmt.Errorf("creating %s: %w", s.kind.Label, err)
	}

	log.WithFields(logrus.Fields{
		"kind":    s.kind.Label,
		"id":      row.ID,
		"user_id": userID,
	}).Debug("Attribute created")
	return row, nil
}
