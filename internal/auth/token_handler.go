package auth

import (
	"errors"
	"net/http"
	"slices"
	"strings"

	"github.com/franciscosanchezn/gin-recipe-api/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/go-oauth2/oauth2/v4"
	oauthErrors "github.com/go-oauth2/oauth2/v4/errors"
	"github.com/sirupsen/logrus"
)

// HandleToken handles the token endpoint for API clients
// @Summary Token Endpoint
// @Description Obtain an access token with the client credentials grant
// @Tags OAuth2
// @Accept application/x-www-form-urlencoded
// @Produce json
// @Param grant_type formData string true "Grant type: client_credentials"
// @Param client_id formData string true "Client ID"
// @Param client_secret formData string true "Client Secret"
// @Param scope formData string false "Requested scope, defaults to the client's scopes"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.OAuth2Error
// @Failure 401 {object} models.OAuth2Error
// @Router /api/v1/oauth/token [post]
func (o *OAuthService) HandleToken(c *gin.Context) {
	if grantType := c.PostForm("grant_type"); grantType != string(oauth2.ClientCredentials) {
		c.JSON(http.StatusBadRequest, models.NewOAuth2Error(models.ErrUnsupportedGrantType,
			"only the client_credentials grant is supported"))
		return
	}

	clientID, clientSecret, ok := c.Request.BasicAuth()
	if !ok {
		clientID = c.PostForm("client_id")
		clientSecret = c.PostForm("client_secret")
	}
	if clientID == "" || clientSecret == "" {
		c.JSON(http.StatusBadRequest, models.NewOAuth2Error(models.ErrInvalidRequest,
			"client_id and client_secret are required"))
		return
	}

	var client models.OAuthClient
	if err := o.db.WithContext(c.Request.Context()).Where("id = ?", clientID).First(&client).Error; err != nil {
		c.JSON(http.StatusUnauthorized, models.NewOAuth2Error(models.ErrInvalidClient, "unknown client"))
		return
	}

	scope, ok := grantedScope(c.PostForm("scope"), client.Scopes)
	if !ok {
		c.JSON(http.StatusBadRequest, models.NewOAuth2Error(models.ErrInvalidScope,
			"requested scope exceeds the client's scopes"))
		return
	}

	ti, err := o.IssueClientToken(c.Request.Context(), clientID, clientSecret, scope)
	switch {
	case errors.Is(err, oauthErrors.ErrInvalidClient):
		c.JSON(http.StatusUnauthorized, models.NewOAuth2Error(models.ErrInvalidClient, "client authentication failed"))
		return
	case errors.Is(err, oauthErrors.ErrAccessDenied):
		c.JSON(http.StatusForbidden, models.NewOAuth2Error("access_denied", "the client's owner is inactive"))
		return
	case err != nil:
		log.WithError(err).WithField("client_id", clientID).Error("Token generation failed")
		c.JSON(http.StatusInternalServerError, models.NewOAuth2Error("server_error", "token generation failed"))
		return
	}

	log.WithFields(logrus.Fields{
		"client_id": clientID,
		"user_id":   client.UserID,
		"scope":     ti.GetScope(),
	}).Info("Client access token issued")

	c.JSON(http.StatusOK, gin.H{
		"access_token": ti.GetAccess(),
		"token_type":   "Bearer",
		"expires_in":   int64(ti.GetAccessExpiresIn().Seconds()),
		"scope":        ti.GetScope(),
	})
}

// grantedScope returns the scope to put in the token: the requested one when it is
// a subset of allowed, or all of allowed when nothing was requested
func grantedScope(requested, allowed string) (string, bool) {
	if strings.TrimSpace(requested) == "" {
		return allowed, true
	}

	permitted := strings.Fields(allowed)
	for _, scope := range strings.Fields(requested) {
		if !slices.Contains(permitted, scope) {
			return "", false
		}
	}
	return strings.Join(strings.Fields(requested), " "), true
}
