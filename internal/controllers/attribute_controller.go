package controllers

import (
	"net/http"
	"strconv"

	"github.com/franciscosanchezn/gin-recipe-api/internal/dto"
	"github.com/franciscosanchezn/gin-recipe-api/internal/models"
	"github.com/franciscosanchezn/gin-recipe-api/internal/services"
	"github.com/gin-gonic/gin"
)

// AttributeController serves the list and create endpoints of tags or ingredients
type AttributeController struct {
	service services.AttributeService
}

// NewAttributeController creates a controller for the attribute type the service handles
func NewAttributeController(service services.AttributeService) *AttributeController {
	return &AttributeController{service: service}
}

// List godoc
// @Summary List tags or ingredients
// @Description List the caller's rows ordered by name descending. With assigned_only=1 only rows used by at least one recipe are returned, in no particular order.
// @Tags recipe
// @Produce json
// @Param assigned_only query int false "1 keeps only rows assigned to a recipe" Enums(0, 1)
// @Success 200 {array} dto.Attribute
// @Failure 400 {object} models.APIError
// @Failure 401 {object} models.OAuth2Error
// @Security BearerAuth
// @Router /api/v1/recipe/tags [get]
// @Router /api/v1/recipe/ingredients [get]
func (c *AttributeController) List(ctx *gin.Context) {
	userID, ok := callerID(ctx)
	if !ok {
		return
	}

	assignedOnly, err := parseAssignedOnly(ctx.DefaultQuery("assigned_only", "0"))
	if err != nil {
		respondError(ctx, models.ValidationError("invalid query parameter", map[string]string{
			"assigned_only": "must be 0 or 1",
		}))
		return
	}

	rows, err := c.service.List(ctx.Request.Context(), userID, services.ListOptions{AssignedOnly: assignedOnly})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAttributes(rows))
}

// Create godoc
// @Summary Create a tag or an ingredient
// @Tags recipe
// @Accept json
// @Produce json
// @Param attribute body services.AttributeInput true "Name"
// @Success 201 {object} dto.Attribute
// @Failure 400 {object} models.APIError
// @Failure 401 {object} models.OAuth2Error
// @Security BearerAuth
// @Router /api/v1/recipe/tags [post]
// @Router /api/v1/recipe/ingredients [post]
func (c *AttributeController) Create(ctx *gin.Context) {
	userID, ok := callerID(ctx)
	if !ok {
		return
	}

	var input services.AttributeInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		badRequest(ctx, "Invalid request body", err)
		return
	}

	row, err := c.service.Create(ctx.Request.Context(), userID, input)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewAttribute(row))
}

// parseAssignedOnly reads an integer flag, any non-zero value enables the filter
func parseAssignedOnly(raw string) (bool, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return false, err
	}
	return n != 0, nil
}
