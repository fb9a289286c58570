package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/franciscosanchezn/gin-recipe-api/internal/models"
	"github.com/franciscosanchezn/gin-recipe-api/internal/validation"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Price bounds: decimal(5,2) leaves three integer digits.
var maxPrice = decimal.NewFromInt(1000)

// RecipeInput is the payload for creating a recipe
type RecipeInput struct {
	Name        string           `json:"name" validate:"required,max=255"`
	TimeMinutes *int             `json:"time_minutes" validate:"required,gte=0"`
	Price       *decimal.Decimal `json:"price" validate:"required"`
	Link        string           `json:"link" validate:"max=255"`
	Tags        []uint           `json:"tags" validate:"dive,gt=0"`
	Ingredients []uint           `json:"ingredients" validate:"dive,gt=0"`
}

// RecipeService reads and writes recipes together with their tag and ingredient edges
type RecipeService interface {
	// ListRecipes returns the caller's recipes, newest first, with associations loaded
	ListRecipes(ctx context.Context, userID uint) ([]models.Recipe, error)
	// GetRecipe returns one of the caller's recipes or a not found error
	GetRecipe(ctx context.Context, userID, recipeID uint) (*models.Recipe, error)
	// CreateRecipe stores a recipe and its edges in one transaction
	CreateRecipe(ctx context.Context, userID uint, input RecipeInput) (*models.Recipe, error)
}

type recipeService struct {
	db        *gorm.DB
	validator *validation.Validator
}

// NewRecipeService creates a new instance of RecipeService
func NewRecipeService(db *gorm.DB) RecipeService {
	return &recipeService{db: db, validator: validation.New()}
}

func (s *recipeService) ListRecipes(ctx context.Context, userID uint) ([]models.Recipe, error) {
	recipes := []models.Recipe{}
	err := s.db.WithContext(ctx).
		Scopes(OwnedBy(userID), NewestFirst).
		Preload("Tags").
		Preload("Ingredients").
		Find(&recipes).Error
	if err != nil {
		return nil, fmt.Errorf("listing recipes: %w", err)
	}
	return recipes, nil
}

func (s *recipeService) GetRecipe(ctx context.Context, userID, recipeID uint) (*models.Recipe, error) {
	var recipe models.Recipe
	err := s.db.WithContext(ctx).
		Scopes(OwnedBy(userID)).
		Preload("Tags", OrderByNameDesc).
		Preload("Ingredients", OrderByNameDesc).
		First(&recipe, recipeID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.NotFoundError("recipe not found")
	}
	if err != nil {
		return nil, fmt.Errorf("loading recipe %d: %w", recipeID, err)
	}
	return &recipe, nil
}

func (s *recipeService) CreateRecipe(ctx context.Context, userID uint, input RecipeInput) (*models.Recipe, error) {
	input.Name = strings.TrimSpace(input.Name)
	if err := s.validate(input); err != nil {
		return nil, err
	}

	recipe := models.Recipe{
		UserID:      userID,
		Name:        input.Name,
		TimeMinutes: *input.TimeMinutes,
		Price:       *input.Price,
		Link:        input.Link,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tags := []models.Tag{}
		if err := findAll(tx, models.TagKind, uniqueIDs(input.Tags), &tags); err != nil {
			return err
		}
		ingredients := []models.Ingredient{}
		if err := findAll(tx, models.IngredientKind, uniqueIDs(input.Ingredients), &ingredients); err != nil {
			return err
		}
		recipe.Tags = tags
		recipe.Ingredients = ingredients

		// Only the join rows are written for associations, the referenced rows stay untouched.
		return tx.Omit("Tags.*", "Ingredients.*").Create(&recipe).Error
	})
	if err != nil {
		var domainErr *models.Error
		if errors.As(err, &domainErr) {
			return nil, err
		}
		return nil, fmt.Errorf("creating recipe: %w", err)
	}

	log.WithFields(logrus.Fields{
		"recipe_id":   recipe.ID,
		"user_id":     userID,
		"tags":        len(recipe.Tags),
		"ingredients": len(recipe.Ingredients),
	}).Info("Recipe created")
	return &recipe, nil
}

// validate runs the struct rules and the fixed-point checks the tags cannot express
func (s *recipeService) validate(input RecipeInput) error {
	err := s.validator.Validate(input)
	var domainErr *models.Error
	if err != nil && !errors.As(err, &domainErr) {
		return err
	}

	if input.Price != nil {
		if msg := checkPrice(*input.Price); msg != "" {
			if domainErr == nil {
				domainErr = models.ValidationError("validation failed", nil)
			}
			domainErr.Details["price"] = msg
		}
	}

	if domainErr != nil {
		return domainErr
	}
	return nil
}

func checkPrice(price decimal.Decimal) string {
	switch {
	case price.IsNegative():
		return "ensure this value is greater than or equal to 0"
	case !price.Equal(price.Truncate(2)):
		return "ensure that there are no more than 2 decimal places"
	case price.GreaterThanOrEqual(maxPrice):
		return "ensure that there are no more than 3 digits before the decimal point"
	}
	return ""
}

// findAll loads every id into dest or fails with a validation error listing the
// missing ids. Existence is checked across all users.
func findAll(tx *gorm.DB, kind models.AttributeKind, ids []uint, dest any) error {
	if len(ids) == 0 {
		return nil
	}

	var found []uint
	if err := tx.Table(kind.Table).Where("id IN ?", ids).Pluck("id", &found).Error; err != nil {
		return fmt.Errorf("resolving %s ids: %w", kind.Label, err)
	}
	if missing := difference(ids, found); len(missing) > 0 {
		return models.ValidationError("validation failed", map[string]string{
			kind.Table: fmt.Sprintf("invalid pk %s - object does not exist", joinIDs(missing)),
		})
	}

	return tx.Where("id IN ?", ids).Order("id").Find(dest).Error
}

// uniqueIDs drops repeated ids, keeping first occurrence order
func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func difference(want, have []uint) []uint {
	present := make(map[uint]struct{}, len(have))
	for _, id := range have {
		present[id] = struct{}{}
	}
	var missing []uint
	for _, id := range want {
		if _, ok := present[id]; !ok {
			missing = append(missing, id)
		}
	}
	sort.Slice(missing, func(i, j int) bool { return missing[i] < missing[j] })
	return missing
}

func joinIDs(ids []uint) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatUint(uint64(id), 10)
	}
	return strings.Join(parts, ", ")
}
