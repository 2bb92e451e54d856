package handler

import (
	"github.com/deppfellow/cookbook/internal/server"
	"github.com/deppfellow/cookbook/internal/service"
)

// Handlers is a container that groups all HTTP handlers, so router setup
// passes one object around instead of many.
type Handlers struct {
	Health  *HealthHandler
	OpenAPI *OpenAPIHandler
	Recipe  *RecipeHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:  NewHealthHandler(s),
		OpenAPI: NewOpenAPIHandler(s),
		Recipe:  NewRecipeHandler(s, services.Recipe),
	}
}
