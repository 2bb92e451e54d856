// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers
package router

import (
	"net/http"

	"github.com/deppfellow/cookbook/internal/handler"
	"github.com/deppfellow/cookbook/internal/middleware"
	"github.com/deppfellow/cookbook/internal/model"
	"github.com/deppfellow/cookbook/internal/server"
	"github.com/labstack/echo/v4"
)

// NewRouter builds the Echo instance with the global middleware chain, the
// system routes and the /api routes.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	// Order matters: the request id feeds the tracing attributes and the
	// request logger; the New Relic transaction must exist before the
	// context logger reads its trace ids.
	router.Use(
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Metrics.Instrument(),
		middlewares.Global.RequestLogger(),
		middlewares.RateLimit.Limit(),
		middlewares.Global.Recover(),
	)

	registerSystemRoutes(router, s, h)

	api := router.Group("/api")
	registerRecipeRoutes(api, h)

	return router
}

// registerRecipeRoutes mounts the recipe endpoints. Echo matches static
// segments before params, so /favorites and /search never reach /:id.
func registerRecipeRoutes(api *echo.Group, h *handler.Handlers) {
	recipes := api.Group("/recipes")

	recipes.POST("", handler.Handle(h.Recipe.Handler, h.Recipe.CreateRecipe, http.StatusOK, &model.CreateRecipePayload{}))
	recipes.GET("", handler.Handle(h.Recipe.Handler, h.Recipe.GetRecipes, http.StatusOK, &model.GetRecipesPayload{}))
	recipes.GET("/favorites", handler.Handle(h.Recipe.Handler, h.Recipe.GetFavoriteRecipes, http.StatusOK, &model.GetRecipesPayload{}))
	recipes.GET("/search", handler.Handle(h.Recipe.Handler, h.Recipe.SearchRecipes, http.StatusOK, &model.SearchRecipesPayload{}))
	recipes.GET("/:id", handler.Handle(h.Recipe.Handler, h.Recipe.GetRecipeByID, http.StatusOK, &model.GetRecipeByIDPayload{}))
	recipes.PATCH("/:id/favorite", handler.Handle(h.Recipe.Handler, h.Recipe.ToggleFavorite, http.StatusOK, &model.ToggleFavoritePayload{}))
}
