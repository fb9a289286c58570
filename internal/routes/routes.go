package routes

import (
	"net/http"
	"time"

	"github.com/franciscosanchezn/gin-recipe-api/internal/auth"
	"github.com/franciscosanchezn/gin-recipe-api/internal/controllers"
	"github.com/franciscosanchezn/gin-recipe-api/internal/middleware"
	"github.com/franciscosanchezn/gin-recipe-api/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Dependencies is everything the router needs to mount its handlers
type Dependencies struct {
	Logger    logrus.FieldLogger
	JWTSecret []byte

	Tags        *controllers.AttributeController
	Ingredients *controllers.AttributeController
	Recipes     *controllers.RecipeController
	Users       *controllers.UserController
	Clients     *controllers.ClientController
	OAuth       *auth.OAuthService
}

// NewRouter builds the gin engine with every public route mounted under /api/v1
func NewRouter(deps Dependencies) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger(deps.Logger))

	router.GET("/health", healthCheckHandler)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	requireAuth := middleware.OAuth2Auth(deps.JWTSecret, deps.OAuth)
	read, write := middleware.RequireScope("read"), middleware.RequireScope("write")

	v1 := router.Group("/api/v1")
	{
		v1.POST("/oauth/token", deps.OAuth.HandleToken)

		user := v1.Group("/user")
		{
			user.POST("/create", deps.Users.Register)
			user.POST("/token", deps.Users.Login)

			me := user.Group("")
			me.Use(requireAuth)
			{
				me.GET("/me", deps.Users.Me)
				me.PUT("/me", deps.Users.UpdateMe)
				me.PATCH("/me", deps.Users.UpdateMe)

				me.POST("/clients", deps.Clients.CreateClient)
				me.GET("/clients", deps.Clients.ListClients)
				me.DELETE("/clients/:id", deps.Clients.DeleteClient)
			}
		}

		recipe := v1.Group("/recipe")
		recipe.Use(requireAuth)
		{
			recipe.GET("/tags", read, deps.Tags.List)
			recipe.POST("/tags", write, deps.Tags.Create)

			recipe.GET("/ingredients", read, deps.Ingredients.List)
			recipe.POST("/ingredients", write, deps.Ingredients.Create)

			recipe.GET("/recipes", read, deps.Recipes.ListRecipes)
			recipe.POST("/recipes", write, deps.Recipes.CreateRecipe)
			recipe.GET("/recipes/:id", read, deps.Recipes.GetRecipe)
		}

		admin := v1.Group("/admin")
		admin.Use(requireAuth, middleware.RequireRole(models.RoleAdmin))
		{
			admin.DELETE("/users/:id", deps.Users.DeleteUser)
		}
	}

	return router
}

// healthCheckHandler handles the health check endpoint
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "gin-recipe-api",
	})
}
