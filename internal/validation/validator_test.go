package validation

import (
	"errors"
	"testing"

	"github.com/franciscosanchezn/gin-recipe-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name     string `json:"name" validate:"required,max=5"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
	Minutes  *int   `json:"time_minutes" validate:"required,gte=0"`
	Tags     []uint `json:"tags" validate:"dive,gt=0"`
	Internal string `validate:"max=1"`
}

func TestValidate(t *testing.T) {
	v := New()
	minutes := 10

	t.Run("valid struct passes", func(t *testing.T) {
		err := v.Validate(sample{Name: "abc", Minutes: &minutes, Tags: []uint{1}})
		assert.NoError(t, err)
	})

	t.Run("errors are keyed by json name", func(t *testing.T) {
		negative := -1
		err := v.Validate(sample{Name: "", Email: "nope", Minutes: &negative, Internal: "xx"})
		require.Error(t, err)

		var domainErr *models.Error
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, models.ErrValidationFailed, domainErr.Code)
		assert.Equal(t, "this field is required", domainErr.Details["name"])
		assert.Equal(t, "enter a valid email address", domainErr.Details["email"])
		assert.Contains(t, domainErr.Details, "time_minutes")
		assert.Contains(t, domainErr.Details, "Internal")
		assert.True(t, errors.Is(err, models.ErrValidationError))
	})

	t.Run("missing pointer field is required", func(t *testing.T) {
		err := v.Validate(sample{Name: "abc"})
		var domainErr *models.Error
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, "this field is required", domainErr.Details["time_minutes"])
	})

	t.Run("slice elements report their index", func(t *testing.T) {
		err := v.Validate(sample{Name: "abc", Minutes: &minutes, Tags: []uint{3, 0}})
		var domainErr *models.Error
		require.True(t, errors.As(err, &domainErr))
		assert.Contains(t, domainErr.Details, "tags[1]")
	})

	t.Run("max on strings mentions characters", func(t *testing.T) {
		err := v.Validate(sample{Name: "toolong", Minutes: &minutes})
		var domainErr *models.Error
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, "ensure this field has no more than 5 characters", domainErr.Details["name"])
	})
}
