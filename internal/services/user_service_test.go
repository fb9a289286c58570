package services

import (
	"testing"

	"github.com/franciscosanchezn/gin-recipe-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUser(t *testing.T) {
	db := setupTestDB(t)
	service := NewUserService(db)

	t.Run("creates an active user with a hashed password", func(t *testing.T) {
		user, err := service.CreateUser(bg, CreateUserInput{Email: "test@GMAIL.com", Password: "test123456", Name: "Test Name"})
		require.NoError(t, err)
		assert.Equal(t, "test@gmail.com", user.Email)
		assert.True(t, user.IsActive)
		assert.False(t, user.IsStaff)
		assert.True(t, user.CheckPassword("test123456"))
	})

	t.Run("rejects a duplicate email", func(t *testing.T) {
		_, err := service.CreateUser(bg, CreateUserInput{Email: "test@gmail.com", Password: "test123456"})
		assert.ErrorIs(t, err, models.ErrConflictError)
	})

	t.Run("rejects a short password", func(t *testing.T) {
		_, err := service.CreateUser(bg, CreateUserInput{Email: "short@gmail.com", Password: "pw"})
		assert.ErrorIs(t, err, models.ErrValidationError)
	})

	t.Run("rejects an invalid email", func(t *testing.T) {
		_, err := service.CreateUser(bg, CreateUserInput{Email: "", Password: "test123456"})
		assert.ErrorIs(t, err, models.ErrValidationError)
	})
}

func TestCreateSuperuser(t *testing.T) {
	db := setupTestDB(t)
	user, err := NewUserService(db).CreateSuperuser(bg, "admin@gmail.com", "test123456")
	require.NoError(t, err)
	assert.True(t, user.IsStaff)
	assert.Equal(t, models.RoleAdmin, user.Role())
}

func TestAuthenticate(t *testing.T) {
	db := setupTestDB(t)
	service := NewUserService(db)
	createUser(t, db, "test@gmail.com")

	user, err := service.Authenticate(bg, "test@GMAIL.COM", "test123456")
	require.NoError(t, err)
	assert.Equal(t, "test@gmail.com", user.Email)

	_, err = service.Authenticate(bg, "test@gmail.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = service.Authenticate(bg, "nobody@gmail.com", "test123456")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	require.NoError(t, db.Model(&models.User{}).Where("id = ?", user.ID).Update("is_active", false).Error)
	_, err = service.Authenticate(bg, "test@gmail.com", "test123456")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUpdateUser(t *testing.T) {
	db := setupTestDB(t)
	service := NewUserService(db)
	user := createUser(t, db, "test@gmail.com")
	createUser(t, db, "taken@gmail.com")

	t.Run("without a password keeps the credential", func(t *testing.T) {
		name := "New Name"
		updated, err := service.UpdateUser(bg, user.ID, UpdateUserInput{Name: &name})
		require.NoError(t, err)
		assert.Equal(t, "New Name", updated.Name)

		_, err = service.Authenticate(bg, "test@gmail.com", "test123456")
		assert.NoError(t, err)
	})

	t.Run("with a password re-hashes it", func(t *testing.T) {
		password := "newpassword123"
		updated, err := service.UpdateUser(bg, user.ID, UpdateUserInput{Password: &password})
		require.NoError(t, err)
		assert.NotEqual(t, password, updated.Password)

		_, err = service.Authenticate(bg, "test@gmail.com", "newpassword123")
		assert.NoError(t, err)
		_, err = service.Authenticate(bg, "test@gmail.com", "test123456")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("email collision is a conflict", func(t *testing.T) {
		email := "taken@gmail.com"
		_, err := service.UpdateUser(bg, user.ID, UpdateUserInput{Email: &email})
		assert.ErrorIs(t, err, models.ErrConflictError)
	})

	t.Run("unknown user is not found", func(t *testing.T) {
		name := "x"
		_, err := service.UpdateUser(bg, 4242, UpdateUserInput{Name: &name})
		assert.ErrorIs(t, err, models.ErrNotFoundError)
	})
}

func TestDeleteUserCascades(t *testing.T) {
	db := setupTestDB(t)
	service := NewUserService(db)
	user := createUser(t, db, "test@gmail.com")
	other := createUser(t, db, "other@gmail.com")

	myTag := createTag(t, db, user, "Mine")
	myIngredient := createIngredient(t, db, user, "Mine")
	theirTag := createTag(t, db, other, "Theirs")
	theirIngredient := createIngredient(t, db, other, "Theirs")

	createRecipe(t, db, user, "My dish", []models.Tag{myTag, theirTag}, []models.Ingredient{myIngredient})
	// the other user's recipe references one of my tags; that edge must go too
	kept := createRecipe(t, db, other, "Their dish", []models.Tag{myTag, theirTag}, []models.Ingredient{theirIngredient})

	_, _, err := NewClientService(db).CreateClient(bg, user.ID, ClientInput{Name: "cli"})
	require.NoError(t, err)

	require.NoError(t, service.DeleteUser(bg, user.ID))

	for _, model := range []interface{}{&models.Recipe{}, &models.Tag{}, &models.Ingredient{}, &models.OAuthClient{}} {
		var n int64
		require.NoError(t, db.Model(model).Where("user_id = ?", user.ID).Count(&n).Error)
		assert.Zero(t, n)
	}

	var recipeTags []struct {
		RecipeID uint
		TagID    uint
	}
	require.NoError(t, db.Table("recipe_tags").Find(&recipeTags).Error)
	require.Len(t, recipeTags, 1)
	assert.Equal(t, kept.ID, recipeTags[0].RecipeID)
	assert.Equal(t, theirTag.ID, recipeTags[0].TagID)
	assert.Equal(t, int64(1), countRows(t, db, "recipe_ingredients"))

	_, err = service.GetUserByID(bg, user.ID)
	assert.ErrorIs(t, err, models.ErrNotFoundError)
	_, err = service.GetUserByID(bg, other.ID)
	assert.NoError(t, err)

	assert.ErrorIs(t, service.DeleteUser(bg, user.ID), models.ErrNotFoundError)
}
