package handler

import (
	"github.com/deppfellow/cookbook/internal/model"
	"github.com/deppfellow/cookbook/internal/server"
	"github.com/deppfellow/cookbook/internal/service"
	"github.com/labstack/echo/v4"
)

type RecipeHandler struct {
	Handler
	recipeService *service.RecipeService
}

func NewRecipeHandler(s *server.Server, recipeService *service.RecipeService) *RecipeHandler {
	return &RecipeHandler{
		Handler:       NewHandler(s),
		recipeService: recipeService,
	}
}

func (h *RecipeHandler) CreateRecipe(c echo.Context, payload *model.CreateRecipePayload) (*model.RecipeResponse, error) {
	recipe, err := h.recipeService.CreateRecipe(c, payload)
	if err != nil {
		return nil, err
	}
	return model.NewRecipeResponse(recipe), nil
}

func (h *RecipeHandler) GetRecipes(c echo.Context, _ *model.GetRecipesPayload) ([]model.RecipeResponse, error) {
	recipes, err := h.recipeService.GetRecipes(c)
	if err != nil {
		return nil, err
	}
	return model.NewRecipeResponses(recipes), nil
}

func (h *RecipeHandler) GetRecipeByID(c echo.Context, payload *model.GetRecipeByIDPayload) (*model.RecipeResponse, error) {
	recipe, err := h.recipeService.GetRecipeByID(c, payload.ID)
	if err != nil {
		return nil, err
	}
	return model.NewRecipeResponse(recipe), nil
}

func (h *RecipeHandler) ToggleFavorite(c echo.Context, payload *model.ToggleFavoritePayload) (*model.RecipeResponse, error) {
	recipe, err := h.recipeService.ToggleFavorite(c, payload.ID)
	if err != nil {
		return nil, err
	}
	return model.NewRecipeResponse(recipe), nil
}

func (h *RecipeHandler) GetFavoriteRecipes(c echo.Context, _ *model.GetRecipesPayload) ([]model.RecipeResponse, error) {
	recipes, err := h.recipeService.GetFavoriteRecipes(c)
	if err != nil {
		return nil, err
	}
	return model.NewRecipeResponses(recipes), nil
}

func (h *RecipeHandler) SearchRecipes(c echo.Context, payload *model.SearchRecipesPayload) ([]model.RecipeResponse, error) {
	recipes, err := h.recipeService.SearchRecipes(c, payload)
	if err != nil {
		return nil, err
	}
	return model.NewRecipeResponses(recipes), nil
}
