package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenRouter(o *OAuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/oauth/token", o.HandleToken)
	return router
}

func postForm(router *gin.Engine, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/oauth/token", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestClientCredentialsFlow(t *testing.T) {
	db := setupTestDB(t)
	oauthService := newTestService(db)
	user := createTestUser(t, db, "user@example.com", false)
	createTestClient(t, db, "test_client_id", "test_secret", user.ID)

	w := postForm(tokenRouter(oauthService), url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {"test_client_id"},
		"client_secret": {"test_secret"},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Bearer", response["token_type"])
	assert.Equal(t, "read write", response["scope"])
	assert.Equal(t, float64(7200), response["expires_in"])

	claims := parseClaims(t, response["access_token"].(string))
	assert.Equal(t, "1", claims["uid"])
	assert.Equal(t, "user", claims["role"])
}

func TestClientCredentialsBasicAuth(t *testing.T) {
	db := setupTestDB(t)
	oauthService := newTestService(db)
	user := createTestUser(t, db, "user@example.com", false)
	createTestClient(t, db, "basic_client", "basic_secret", user.ID)

	req := httptest.NewRequest(http.MethodPost, "/oauth/token", strings.NewReader("grant_type=client_credentials"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth("basic_client", "basic_secret")
	w := httptest.NewRecorder()
	tokenRouter(oauthService).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestClientCredentialsInvalidSecret(t *testing.T) {
	db := setupTestDB(t)
	oauthService := newTestService(db)
	user := createTestUser(t, db, "user@example.com", false)
	createTestClient(t, db, "test_client_id", "correct_secret", user.ID)

	w := postForm(tokenRouter(oauthService), url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {"test_client_id"},
		"client_secret": {"wrong_secret"},
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_client")
}

func TestTokenEndpointErrors(t *testing.T) {
	db := setupTestDB(t)
	router := tokenRouter(newTestService(db))

	w := postForm(router, url.Values{"grant_type": {"password"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "unsupported_grant_type")

	w = postForm(router, url.Values{"grant_type": {"client_credentials"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postForm(router, url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {"nope"},
		"client_secret": {"nope"},
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestClientCredentialsScope(t *testing.T) {
	db := setupTestDB(t)
	router := tokenRouter(newTestService(db))
	user := createTestUser(t, db, "user@example.com", false)
	client := createTestClient(t, db, "reader", "reader_secret", user.ID)
	require.NoError(t, db.Model(client).Update("scopes", "read").Error)

	w := postForm(router, url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {"reader"},
		"client_secret": {"reader_secret"},
		"scope":         {"read write"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_scope")

	w = postForm(router, url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {"reader"},
		"client_secret": {"reader_secret"},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"scope":"read"`)
}

func TestClientCredentialsInactiveOwner(t *testing.T) {
	db := setupTestDB(t)
	router := tokenRouter(newTestService(db))
	user := createTestUser(t, db, "user@example.com", false)
	require.NoError(t, db.Model(user).Update("is_active", false).Error)
	createTestClient(t, db, "test_client_id", "test_secret", user.ID)

	w := postForm(router, url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {"test_client_id"},
		"client_secret": {"test_secret"},
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "access_denied")
}
