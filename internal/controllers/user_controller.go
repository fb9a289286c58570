package controllers

import (
	"errors"
	"net/http"

	"github.com/franciscosanchezn/gin-recipe-api/internal/auth"
	"github.com/franciscosanchezn/gin-recipe-api/internal/dto"
	"github.com/franciscosanchezn/gin-recipe-api/internal/models"
	"github.com/franciscosanchezn/gin-recipe-api/internal/services"
	"github.com/gin-gonic/gin"
)

// UserController handles signup, login and the caller's own profile
type UserController struct {
	userService services.UserService
	issuer      *auth.TokenIssuer
}

func NewUserController(userService services.UserService, issuer *auth.TokenIssuer) *UserController {
	return &UserController{
		userService: userService,
		issuer:      issuer,
	}
}

// Register godoc
// @Summary Create a user
// @Tags user
// @Accept json
// @Produce json
// @Param user body services.CreateUserInput true "New user"
// @Success 201 {object} dto.User
// @Failure 400 {object} models.APIError
// @Failure 409 {object} models.APIError
// @Router /api/v1/user/create [post]
func (uc *UserController) Register(c *gin.Context) {
	var input services.CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}

	user, err := uc.userService.CreateUser(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewUser(user))
}

// Login godoc
// @Summary Obtain a bearer token
// @Tags user
// @Accept json
// @Produce json
// @Param credentials body object{email=string,password=string} true "Credentials"
// @Success 200 {object} dto.Token
// @Failure 400 {object} models.APIError
// @Router /api/v1/user/token [post]
func (uc *UserController) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}

	user, err := uc.userService.Authenticate(c.Request.Context(), req.Email, req.Password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		c.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrInvalidCredentials, err.Error()))
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := uc.issuer.Issue(user)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Token{
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: int64(uc.issuer.TTL().Seconds()),
	})
}

// Me godoc
// @Summary Get the authenticated user
// @Tags user
// @Produce json
// @Success 200 {object} dto.User
// @Failure 401 {object} models.OAuth2Error
// @Security BearerAuth
// @Router /api/v1/user/me [get]
func (uc *UserController) Me(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	user, err := uc.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewUser(user))
}

// UpdateMe godoc
// @Summary Update the authenticated user
// @Description PUT requires email and name, PATCH accepts any subset. The password is only changed when supplied.
// @Tags user
// @Accept json
// @Produce json
// @Param user body services.UpdateUserInput true "Fields to update"
// @Success 200 {object} dto.User
// @Failure 400 {object} models.APIError
// @Failure 409 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/user/me [put]
// @Router /api/v1/user/me [patch]
func (uc *UserController) UpdateMe(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var input services.UpdateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}

	if c.Request.Method == http.MethodPut {
		missing := map[string]string{}
		if input.Email == nil {
			missing["email"] = "this field is required"
		}
		if input.Name == nil {
			missing["name"] = "this field is required"
		}
		if len(missing) > 0 {
			respondError(c, models.ValidationError("validation failed", missing))
			return
		}
	}

	user, err := uc.userService.UpdateUser(c.Request.Context(), userID, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewUser(user))
}

// DeleteUser godoc
// @Summary Delete a user and everything they own
// @Tags admin
// @Param id path int true "User ID"
// @Success 204
// @Failure 403 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/admin/users/{id} [delete]
func (uc *UserController) DeleteUser(c *gin.Context) {
	userID, ok := pathID(c)
	if !ok {
		return
	}

	if err := uc.userService.DeleteUser(c.Request.Context(), userID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
