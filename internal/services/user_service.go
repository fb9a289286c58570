package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/franciscosanchezn/gin-recipe-api/internal/models"
	"github.com/franciscosanchezn/gin-recipe-api/internal/validation"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ErrInvalidCredentials is returned by Authenticate for unknown emails, wrong passwords and inactive accounts
var ErrInvalidCredentials = errors.New("unable to authenticate with provided credentials")

// CreateUserInput is the signup payload
type CreateUserInput struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Name     string `json:"name" validate:"max=255"`
}

// UpdateUserInput carries the fields to overwrite; nil means not supplied
type UpdateUserInput struct {
	Email    *string `json:"email" validate:"omitempty,email,max=255"`
	Name     *string `json:"name" validate:"omitempty,max=255"`
	Password *string `json:"password" validate:"omitempty,min=8,max=72"`
}

type UserService interface {
	CreateUser(ctx context.Context, input CreateUserInput) (*models.User, error)
	CreateSuperuser(ctx context.Context, email, password string) (*models.User, error)
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id uint) (*models.User, error)
	UpdateUser(ctx context.Context, id uint, input UpdateUserInput) (*models.User, error)
	// DeleteUser removes the user and everything they own, including association edges
	DeleteUser(ctx context.Context, id uint) error
}

type userService struct {
	db        *gorm.DB
	validator *validation.Validator
}

func NewUserService(db *gorm.DB) UserService {
	return &userService{db: db, validator: validation.New()}
}

func (s *userService) CreateUser(ctx context.Context, input CreateUserInput) (*models.User, error) {
	if err := s.validator.Validate(input); err != nil {
		return nil, err
	}

	user, err := models.NewUser(input.Email, input.Password, strings.TrimSpace(input.Name))
	if errors.Is(err, models.ErrEmailRequired) {
		return nil, models.ValidationError("validation failed", map[string]string{"email": err.Error()})
	}
	if err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}
	if err := s.insert(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) CreateSuperuser(ctx context.Context, email, password string) (*models.User, error) {
	user, err := models.NewUser(email, password, "")
	if err != nil {
		return nil, err
	}
	user.IsStaff = true
	if err := s.insert(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) insert(ctx context.Context, user *models.User) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).Where("email = ?", user.Email).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return models.ConflictError("user with this email already exists")
		}
		return tx.Create(user).Error
	})
	if err != nil {
		if errors.Is(err, models.ErrConflictError) {
			return err
		}
		return fmt.Errorf("creating user: %w", err)
	}

	log.WithFields(logrus.Fields{
		"user_id":  user.ID,
		"is_staff": user.IsStaff,
	}).Info("User created")
	return nil
}

func (s *userService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.GetUserByEmail(ctx, email)
	if errors.Is(err, models.ErrNotFoundError) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !user.IsActive || !user.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (s *userService) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("email = ?", models.NormalizeEmail(email)).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.NotFoundError("user not found")
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *userService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.NotFoundError("user not found")
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *userService) UpdateUser(ctx context.Context, id uint, input UpdateUserInput) (*models.User, error) {
	if err := s.validator.Validate(input); err != nil {
		return nil, err
	}

	var user *models.User
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current models.User
		if err := tx.First(&current, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NotFoundError("user not found")
			}
			return err
		}

		if input.Email != nil {
			email := models.NormalizeEmail(*input.Email)
			if email != current.Email {
				var count int64
				if err := tx.Model(&models.User{}).Where("email = ? AND id <> ?", email, id).Count(&count).Error; err != nil {
					return err
				}
				if count > 0 {
					return models.ConflictError("user with this email already exists")
				}
			}
			current.Email = email
		}
		if input.Name != nil {
			current.Name = strings.TrimSpace(*input.Name)
		}
		if input.Password != nil {
			if err := current.SetPassword(*input.Password); err != nil {
				return err
			}
		}

		if err := tx.Save(&current).Error; err != nil {
			return err
		}
		user = &current
		return nil
	})
	if err != nil {
		var domainErr *models.Error
		if errors.As(err, &domainErr) {
			return nil, err
		}
		return nil, fmt.Errorf("updating user %d: %w", id, err)
	}
	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, id uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.User{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return models.NotFoundError("user not found")
		}

		for _, kind := range []models.AttributeKind{models.TagKind, models.IngredientKind} {
			recipes := tx.Model(&models.Recipe{}).Select("id").Where("user_id = ?", id)
			owned := tx.Table(kind.Table).Select("id").Where("user_id = ?", id)
			err := tx.Exec(
				fmt.Sprintf("DELETE FROM %s WHERE recipe_id IN (?) OR %s IN (?)", kind.JoinTable, kind.JoinColumn),
				recipes, owned,
			).Error
			if err != nil {
				return err
			}
		}

		for _, model := range []interface{}{&models.Recipe{}, &models.Tag{}, &models.Ingredient{}, &models.OAuthClient{}} {
			if err := tx.Where("user_id = ?", id).Delete(model).Error; err != nil {
				return err
			}
		}
		return tx.Where("user_id = ?", fmt.Sprint(id)).Delete(&models.OAuthToken{}).Error
	})
	if err != nil {
		if errors.Is(err, models.ErrNotFoundError) {
			return err
		}
		return fmt.Errorf("deleting user %d: %w", id, err)
	}

	log.WithField("user_id", id).Info("User and owned records deleted")
	return nil
}
