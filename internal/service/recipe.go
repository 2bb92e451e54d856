package service

import (
	"database/sql"
	"errors"

	"github.com/deppfellow/cookbook/internal/errs"
	"github.com/deppfellow/cookbook/internal/middleware"
	"github.com/deppfellow/cookbook/internal/model"
	"github.com/deppfellow/cookbook/internal/repository"
	"github.com/deppfellow/cookbook/internal/server"
	"github.com/labstack/echo/v4"
)

// recipeNotFoundCode is the error code clients see for an unknown recipe id.
var recipeNotFoundCode = "RECIPE_NOT_FOUND"

type RecipeService struct {
	server     *server.Server
	recipeRepo *repository.RecipeRepository
}

func NewRecipeService(s *server.Server, recipeRepo *repository.RecipeRepository) *RecipeService {
	return &RecipeService{
		server:     s,
		recipeRepo: recipeRepo,
	}
}

func (s *RecipeService) CreateRecipe(ctx echo.Context, payload *model.CreateRecipePayload) (*model.Recipe, error) {
	logger := middleware.GetLogger(ctx)

	recipe, err := s.recipeRepo.CreateRecipe(ctx.Request().Context(), payload.ToRecipe())
	if err != nil {
		logger.Error().Err(err).Msg("failed to create recipe")
		return nil, err
	}

	logger.Info().
		Str("event", "recipe_created").
		Int64("recipe_id", recipe.ID).
		Str("name", recipe.Name).
		Msg("Recipe created successfully")

	return recipe, nil
}

func (s *RecipeService) GetRecipes(ctx echo.Context) ([]model.Recipe, error) {
	recipes, err := s.recipeRepo.GetRecipes(ctx.Request().Context())
	if err != nil {
		middleware.GetLogger(ctx).Error().Err(err).Msg("failed to get recipes")
		return nil, err
	}
	return recipes, nil
}

func (s *RecipeService) GetRecipeByID(ctx echo.Context, id int64) (*model.Recipe, error) {
	recipe, err := s.recipeRepo.GetRecipeByID(ctx.Request().Context(), id)
	if err != nil {
		return nil, s.recipeError(ctx, err, id, "failed to get recipe")
	}
	return recipe, nil
}

func (s *RecipeService) ToggleFavorite(ctx echo.Context, id int64) (*model.Recipe, error) {
	recipe, err := s.recipeRepo.ToggleFavorite(ctx.Request().Context(), id)
	if err != nil {
		return nil, s.recipeError(ctx, err, id, "failed to toggle favorite")
	}

	middleware.GetLogger(ctx).Info().
		Str("event", "recipe_favorite_toggled").
		Int64("recipe_id", recipe.ID).
		Bool("is_favorite", recipe.IsFavorite).
		Msg("Recipe favorite toggled")

	return recipe, nil
}

func (s *RecipeService) GetFavoriteRecipes(ctx echo.Context) ([]model.Recipe, error) {
	recipes, err := s.recipeRepo.GetFavoriteRecipes(ctx.Request().Context())
	if err != nil {
		middleware.GetLogger(ctx).Error().Err(err).Msg("failed to get favorite recipes")
		return nil, err
	}
	return recipes, nil
}

func (s *RecipeService) SearchRecipes(ctx echo.Context, payload *model.SearchRecipesPayload) ([]model.Recipe, error) {
	recipes, err := s.recipeRepo.SearchRecipes(ctx.Request().Context(), payload.Name, payload.Ingredient)
	if err != nil {
		middleware.GetLogger(ctx).Error().
			Err(err).
			Str("name", payload.Name).
			Str("ingredient", payload.Ingredient).
			Msg("failed to search recipes")
		return nil, err
	}
	return recipes, nil
}

// recipeError maps a missing row to a 404 and logs anything else.
func (s *RecipeService) recipeError(ctx echo.Context, err error, id int64, msg string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return errs.NewNotFoundError("Recipe not found", true, &recipeNotFoundCode)
	}

	middleware.GetLogger(ctx).Error().Err(err).Int64("recipe_id", id).Msg(msg)
	return err
}
