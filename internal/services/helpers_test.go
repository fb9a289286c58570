package services

import (
	"context"
	"testing"

	"github.com/franciscosanchezn/gin-recipe-api/internal/database"
	"github.com/franciscosanchezn/gin-recipe-api/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := database.Open(database.DatabaseConfig{Driver: "sqlite", Path: ":memory:"})
	require.NoError(t, err)

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func createUser(t *testing.T, db *gorm.DB, email string) *models.User {
	user, err := models.NewUser(email, "test123456", "Test Name")
	require.NoError(t, err)
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTag(t *testing.T, db *gorm.DB, user *models.User, name string) models.Tag {
	tag := models.Tag{Name: name, UserID: user.ID}
	require.NoError(t, db.Create(&tag).Error)
	return tag
}

func createIngredient(t *testing.T, db *gorm.DB, user *models.User, name string) models.Ingredient {
	ingredient := models.Ingredient{Name: name, UserID: user.ID}
	require.NoError(t, db.Create(&ingredient).Error)
	return ingredient
}

// createRecipe stores a recipe directly, bypassing the service's validation
func createRecipe(t *testing.T, db *gorm.DB, user *models.User, name string, tags []models.Tag, ingredients []models.Ingredient) models.Recipe {
	recipe := models.Recipe{
		UserID:      user.ID,
		Name:        name,
		TimeMinutes: 30,
		Price:       decimal.RequireFromString("18.00"),
		Tags:        tags,
		Ingredients: ingredients,
	}
	require.NoError(t, db.Omit("Tags.*", "Ingredients.*").Create(&recipe).Error)
	return recipe
}

func names(rows []models.Attribute) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Name
	}
	return out
}

func ids(rows []models.Attribute) []uint {
	out := make([]uint, len(rows))
	for i, r := range rows {
		out[i] = r.ID
	}
	return out
}

func countRows(t *testing.T, db *gorm.DB, table string) int64 {
	var n int64
	require.NoError(t, db.Table(table).Count(&n).Error)
	return n
}

func intPtr(i int) *int { return &i }

func pricePtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

var bg = context.Background()
