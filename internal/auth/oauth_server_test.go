package auth

import (
	"context"
	"testing"
	"time"

	"github.com/franciscosanchezn/gin-recipe-api/internal/database"
	"github.com/franciscosanchezn/gin-recipe-api/internal/models"
	"github.com/franciscosanchezn/gin-recipe-api/internal/services"
	oauthErrors "github.com/go-oauth2/oauth2/v4/errors"
	oauthModels "github.com/go-oauth2/oauth2/v4/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const testSecret = "test-jwt-secret-key-32-characters"

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

func newTestService(db *gorm.DB) *OAuthService {
	return NewOAuthService(db, services.NewUserService(db), OAuthConfig{Secret: testSecret})
}

func createTestUser(t *testing.T, db *gorm.DB, email string, staff bool) *models.User {
	user, err := models.NewUser(email, "test123456", "Test User")
	require.NoError(t, err)
	user.IsStaff = staff
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestClient(t *testing.T, db *gorm.DB, id, secret string, userID uint) *models.OAuthClient {
	hashedSecret, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.MinCost)
	require.NoError(t, err)

	client := &models.OAuthClient{
		ID:         id,
		Secret:     string(hashedSecret),
		Name:       "test client",
		Domain:     "http://localhost",
		Scopes:     "read write",
		UserID:     userID,
		GrantTypes: "client_credentials",
	}
	require.NoError(t, db.Create(client).Error)
	return client
}

func parseClaims(t *testing.T, token string) jwt.MapClaims {
	parsed, err := jwt.Parse(token, func(*jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	return claims
}

func TestIssueClientToken(t *testing.T) {
	db := setupTestDB(t)
	oauthService := newTestService(db)

	staff := createTestUser(t, db, "staff@example.com", true)
	createTestClient(t, db, "test_client", "test_secret", staff.ID)

	tokenInfo, err := oauthService.IssueClientToken(context.Background(), "test_client", "test_secret", "read")
	require.NoError(t, err)
	require.NotEmpty(t, tokenInfo.GetAccess())
	assert.Equal(t, DefaultClientTokenTTL, tokenInfo.GetAccessExpiresIn())

	claims := parseClaims(t, tokenInfo.GetAccess())
	assert.Equal(t, "1", claims["uid"])
	assert.Equal(t, models.RoleAdmin, claims["role"])
	assert.Equal(t, "test_client", claims["aud"])
	assert.Equal(t, "read", claims["scope"])

	var stored models.OAuthToken
	require.NoError(t, db.Where("access_token = ?", tokenInfo.GetAccess()).First(&stored).Error)
	assert.Equal(t, "test_client", stored.ClientID)
	assert.Equal(t, "1", stored.UserID)

	caller, err := ParseToken(tokenInfo.GetAccess(), []byte(testSecret))
	require.NoError(t, err)
	assert.Equal(t, Caller{UserID: staff.ID, Role: models.RoleAdmin, ClientID: "test_client", Scopes: []string{"read"}}, caller)

	_, err = oauthService.LookupToken(context.Background(), tokenInfo.GetAccess())
	assert.NoError(t, err)
}

func TestIssueClientTokenRejectsWrongSecret(t *testing.T) {
	db := setupTestDB(t)
	oauthService := newTestService(db)
	user := createTestUser(t, db, "user@example.com", false)
	createTestClient(t, db, "test_client", "test_secret", user.ID)

	_, err := oauthService.IssueClientToken(context.Background(), "test_client", "wrong", "")
	assert.ErrorIs(t, err, oauthErrors.ErrInvalidClient)
}

func TestIssueClientTokenRejectsInactiveOwner(t *testing.T) {
	db := setupTestDB(t)
	oauthService := newTestService(db)
	user := createTestUser(t, db, "user@example.com", false)
	require.NoError(t, db.Model(user).Update("is_active", false).Error)
	createTestClient(t, db, "test_client", "test_secret", user.ID)

	_, err := oauthService.IssueClientToken(context.Background(), "test_client", "test_secret", "")
	assert.ErrorIs(t, err, oauthErrors.ErrAccessDenied)
}

func TestClientStore(t *testing.T) {
	db := setupTestDB(t)
	createTestClient(t, db, "integration_test_client", "integration_test_secret", 7)

	clientStore := NewGormClientStore(db)
	retrievedClient, err := clientStore.GetByID(context.Background(), "integration_test_client")
	require.NoError(t, err)
	assert.Equal(t, "7", retrievedClient.GetUserID())

	_, err = clientStore.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, oauthErrors.ErrInvalidClient)
}

func TestTokenStore(t *testing.T) {
	db := setupTestDB(t)
	store := NewGormTokenStore(db)
	now := time.Now()
	store.now = func() time.Time { return now }
	ctx := context.Background()

	newToken := func(access string, created time.Time) *oauthModels.Token {
		return &oauthModels.Token{
			ClientID:        "c1",
			UserID:          "3",
			Access:          access,
			AccessCreateAt:  created,
			AccessExpiresIn: time.Hour,
		}
	}

	require.NoError(t, store.Create(ctx, newToken("stale", now.Add(-2*time.Hour))))

	_, err := store.GetByAccess(ctx, "stale")
	assert.ErrorIs(t, err, oauthErrors.ErrExpiredAccessToken)

	require.NoError(t, store.Create(ctx, newToken("fresh", now)))

	var accesses []string
	require.NoError(t, db.Model(&models.OAuthToken{}).Pluck("access_token", &accesses).Error)
	assert.Equal(t, []string{"fresh"}, accesses)

	info, err := store.GetByAccess(ctx, "fresh")
	require.NoError(t, err)
	assert.Equal(t, "3", info.GetUserID())

	require.NoError(t, store.RemoveByAccess(ctx, "fresh"))
	_, err = store.GetByAccess(ctx, "fresh")
	assert.ErrorIs(t, err, oauthErrors.ErrInvalidAccessToken)

	_, err = store.GetByRefresh(ctx, "anything")
	assert.Error(t, err)
	_, err = store.GetByCode(ctx, "anything")
	assert.Error(t, err)
}

func TestTokenIssuer(t *testing.T) {
	issuer := NewTokenIssuer(testSecret, time.Hour)
	user := &models.User{ID: 42}

	token, err := issuer.Issue(user)
	require.NoError(t, err)

	claims := parseClaims(t, token)
	assert.Equal(t, "42", claims["uid"])
	assert.Equal(t, models.RoleUser, claims["role"])
	assert.NotContains(t, claims, "aud")

	exp, err := claims.GetExpirationTime()
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp.Time, 5*time.Second)
	assert.Equal(t, time.Hour, issuer.TTL())

	caller, err := ParseToken(token, []byte(testSecret))
	require.NoError(t, err)
	assert.False(t, caller.IsClient())
	assert.True(t, caller.HasScope("write"))
}

func TestParseTokenRejects(t *testing.T) {
	sign := func(method jwt.SigningMethod, claims jwt.MapClaims) string {
		token, err := jwt.NewWithClaims(method, claims).SignedString([]byte(testSecret))
		require.NoError(t, err)
		return token
	}
	base := func() jwt.MapClaims {
		return jwt.MapClaims{"uid": "5", "role": "user", "exp": time.Now().Add(time.Hour).Unix()}
	}

	noExp := base()
	delete(noExp, "exp")
	negativeUID := base()
	negativeUID["uid"] = -3.0
	badRole := base()
	badRole["role"] = "owner"
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, base()).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	for name, token := range map[string]string{
		"missing exp":  sign(jwt.SigningMethodHS256, noExp),
		"negative uid": sign(jwt.SigningMethodHS256, negativeUID),
		"bad role":     sign(jwt.SigningMethodHS256, badRole),
		"none alg":     unsigned,
	} {
		_, err := ParseToken(token, []byte(testSecret))
		assert.Error(t, err, name)
	}
}

func TestGrantedScope(t *testing.T) {
	scope, ok := grantedScope("", "read write")
	assert.True(t, ok)
	assert.Equal(t, "read write", scope)

	scope, ok = grantedScope(" read ", "read write")
	assert.True(t, ok)
	assert.Equal(t, "read", scope)

	_, ok = grantedScope("read admin", "read write")
	assert.False(t, ok)
}
