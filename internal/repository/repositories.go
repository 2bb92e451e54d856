package repository

import (
	"github.com/deppfellow/cookbook/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Recipe *RecipeRepository
}

// NewRepositories constructs the repository container on top of the
// server's database handle.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Recipe: NewRecipeRepository(s),
	}
}
