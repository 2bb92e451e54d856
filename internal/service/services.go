package service

import (
	"github.com/deppfellow/cookbook/internal/repository"
	"github.com/deppfellow/cookbook/internal/server"
)

type Services struct {
	Recipe *RecipeService
}

func NewService(s *server.Server, repos *repository.Repositories) (*Services, error) {
	return &Services{
		Recipe: NewRecipeService(s, repos.Recipe),
	}, nil
}
