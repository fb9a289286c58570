package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/gin-recipe-api/internal/dto"
	"github.com/franciscosanchezn/gin-recipe-api/internal/services"
	"github.com/gin-gonic/gin"
)

// RecipeController handles HTTP requests related to recipes
type RecipeController struct {
	service services.RecipeService
}

// NewRecipeController creates a new instance of RecipeController
func NewRecipeController(service services.RecipeService) *RecipeController {
	return &RecipeController{service: service}
}

// ListRecipes godoc
// @Summary List recipes
// @Description List the caller's recipes, newest first, with tag and ingredient ids
// @Tags recipe
// @Produce json
// @Success 200 {array} dto.Recipe
// @Failure 401 {object} models.OAuth2Error
// @Security BearerAuth
// @Router /api/v1/recipe/recipes [get]
func (c *RecipeController) ListRecipes(ctx *gin.Context) {
	userID, ok := callerID(ctx)
	if !ok {
		return
	}

	recipes, err := c.service.ListRecipes(ctx.Request.Context(), userID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewRecipes(recipes))
}

// GetRecipe godoc
// @Summary Get a recipe
// @Description Get one of the caller's recipes with nested tags and ingredients
// @Tags recipe
// @Produce json
// @Param id path int true "Recipe ID"
// @Success 200 {object} dto.RecipeDetail
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/recipe/recipes/{id} [get]
func (c *RecipeController) GetRecipe(ctx *gin.Context) {
	userID, ok := callerID(ctx)
	if !ok {
		return
	}
	recipeID, ok := pathID(ctx)
	if !ok {
		return
	}

	recipe, err := c.service.GetRecipe(ctx.Request.Context(), userID, recipeID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewRecipeDetail(recipe))
}

// CreateRecipe godoc
// @Summary Create a recipe
// @Description Create a recipe and attach existing tags and ingredients in one step
// @Tags recipe
// @Accept json
// @Produce json
// @Param recipe body services.RecipeInput true "Recipe"
// @Success 201 {object} dto.Recipe
// @Failure 400 {object} models.APIError
// @Failure 401 {object} models.OAuth2Error
// @Security BearerAuth
// @Router /api/v1/recipe/recipes [post]
func (c *RecipeController) CreateRecipe(ctx *gin.Context) {
	userID, ok := callerID(ctx)
	if !ok {
		return
	}

	var input services.RecipeInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		badRequest(ctx, "Invalid request body", err)
		return
	}

	recipe, err := c.service.CreateRecipe(ctx.Request.Context(), userID, input)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewRecipe(recipe))
}
