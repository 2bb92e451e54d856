package service

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/deppfellow/cookbook/internal/errs"
	"github.com/deppfellow/cookbook/internal/model"
	"github.com/deppfellow/cookbook/internal/repository"
	"github.com/deppfellow/cookbook/internal/testutil"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRecipeService(t *testing.T) *RecipeService {
	t.Helper()

	s := testutil.NewServer(t, nil)
	services, err := NewService(s, repository.NewRepositories(s))
	require.NoError(t, err)
	return services.Recipe
}

func newContext() echo.Context {
	return echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
}

func TestRecipeServiceNotFound(t *testing.T) {
	svc := newRecipeService(t)

	for name, call := range map[string]func() error{
		"get": func() error {
			_, err := svc.GetRecipeByID(newContext(), 7)
			return err
		},
		"toggle": func() error {
			_, err := svc.ToggleFavorite(newContext(), 7)
			return err
		},
	} {
		t.Run(name, func(t *testing.T) {
			var httpErr *errs.HTTPError
			require.ErrorAs(t, call(), &httpErr)
			assert.Equal(t, http.StatusNotFound, httpErr.Status)
			assert.Equal(t, "RECIPE_NOT_FOUND", httpErr.Code)
			assert.Equal(t, "Recipe not found", httpErr.Message)
		})
	}
}

func TestRecipeServiceLifecycle(t *testing.T) {
	svc := newRecipeService(t)
	c := newContext()

	created, err := svc.CreateRecipe(c, &model.CreateRecipePayload{
		Name:        "Pasta",
		Description: "Tasty",
		Ingredients: []string{"noodles"},
	})
	require.NoError(t, err)
	assert.Equal(t, model.StringList{}, created.Instructions)

	toggled, err := svc.ToggleFavorite(c, created.ID)
	require.NoError(t, err)
	assert.True(t, toggled.IsFavorite)

	favorites, err := svc.GetFavoriteRecipes(c)
	require.NoError(t, err)
	require.Len(t, favorites, 1)

	found, err := svc.SearchRecipes(c, &model.SearchRecipesPayload{Ingredient: "noodle"})
	require.NoError(t, err)
	require.Len(t, found, 1)

	all, err := svc.GetRecipes(c)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
