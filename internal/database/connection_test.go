package database

import (
	"testing"
	"time"

	"github.com/franciscosanchezn/gin-recipe-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDSN(t *testing.T) {
	testCases := []struct {
		name     string
		cfg      DatabaseConfig
		expected string
	}{
		{
			name:     "sqlite uses the path",
			cfg:      DatabaseConfig{Driver: "sqlite", Path: "recipes.sqlite"},
			expected: "recipes.sqlite",
		},
		{
			name:     "empty driver defaults to sqlite",
			cfg:      DatabaseConfig{Path: ":memory:"},
			expected: ":memory:",
		},
		{
			name: "postgres builds a keyword DSN",
			cfg: DatabaseConfig{Driver: "postgres", Host: "db", Port: "5432", User: "app",
				Password: "pw", Name: "recipes", SSLMode: "disable"},
			expected: "host=db user=app password=pw dbname=recipes port=5432 sslmode=disable",
		},
		{
			name:     "postgres prefers a full URL",
			cfg:      DatabaseConfig{Driver: "postgres", URL: "postgres://app:pw@db/recipes", Host: "ignored"},
			expected: "postgres://app:pw@db/recipes",
		},
		{
			name:     "unknown driver has no DSN",
			cfg:      DatabaseConfig{Driver: "mysql"},
			expected: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.cfg.DSN())
		})
	}
}

func TestStringMasksSecrets(t *testing.T) {
	cfg := DatabaseConfig{Driver: "postgres", URL: "postgres://app:secret@db/recipes", Password: "secret"}
	assert.NotContains(t, cfg.String(), "secret")
}

func TestInitDatabaseRejectsUnknownDriver(t *testing.T) {
	db, err := InitDatabase(DatabaseConfig{Driver: "mysql"})
	assert.Error(t, err)
	assert.Nil(t, db)
}

func TestOpenInMemory(t *testing.T) {
	db, err := Open(DatabaseConfig{Driver: "sqlite", Path: ":memory:"})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)

	for _, table := range []string{"users", "tags", "ingredients", "recipes", "recipe_tags", "recipe_ingredients", "oauth_clients", "oauth_tokens"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}

	require.NoError(t, db.Create(&models.User{Email: "a@b.com", Password: "x", IsActive: true}).Error)
	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestRetryPolicy(t *testing.T) {
	inMemory := DatabaseConfig{Path: ":memory:", ConnectAttempts: 9}
	attempts, delay := inMemory.retryPolicy()
	assert.Equal(t, 1, attempts)
	assert.Zero(t, delay)

	defaults := DatabaseConfig{Driver: "postgres"}
	attempts, delay = defaults.retryPolicy()
	assert.Equal(t, defaultConnectAttempts, attempts)
	assert.Equal(t, defaultRetryDelay, delay)

	custom := DatabaseConfig{Driver: "postgres", ConnectAttempts: 2, RetryDelay: 10 * time.Millisecond}
	attempts, delay = custom.retryPolicy()
	assert.Equal(t, 2, attempts)
	assert.Equal(t, 10*time.Millisecond, delay)
}
