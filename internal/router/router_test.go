package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/deppfellow/cookbook/internal/handler"
	"github.com/deppfellow/cookbook/internal/repository"
	"github.com/deppfellow/cookbook/internal/service"
	"github.com/deppfellow/cookbook/internal/testutil"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recipeBody struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Ingredients  []string `json:"ingredients"`
	Instructions []string `json:"instructions"`
	ImageURL     *string  `json:"image_url"`
	IsFavorite   bool     `json:"isFavorite"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
	Errors  []struct {
		Field string `json:"field"`
		Error string `json:"error"`
	} `json:"errors"`
}

func newTestRouter(t *testing.T) *echo.Echo {
	t.Helper()

	s := testutil.NewServer(t, nil)
	services, err := service.NewService(s, repository.NewRepositories(s))
	require.NoError(t, err)

	return NewRouter(s, handler.NewHandlers(s, services))
}

func do(t *testing.T, e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func createRecipe(t *testing.T, e *echo.Echo, body string) recipeBody {
	t.Helper()

	rec := do(t, e, http.MethodPost, "/api/recipes", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	return decode[recipeBody](t, rec)
}

func TestRecipeScenario(t *testing.T) {
	e := newTestRouter(t)

	created := createRecipe(t, e, `{"name":"Pasta","description":"Tasty","ingredients":["noodles","salt"],"instructions":["boil"],"imageUrl":null}`)
	assert.Equal(t, recipeBody{
		ID:           1,
		Name:         "Pasta",
		Description:  "Tasty",
		Ingredients:  []string{"noodles", "salt"},
		Instructions: []string{"boil"},
	}, created)

	rec := do(t, e, http.MethodGet, "/api/recipes/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, created, decode[recipeBody](t, rec))

	rec = do(t, e, http.MethodPatch, "/api/recipes/1/favorite", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decode[recipeBody](t, rec).IsFavorite)

	rec = do(t, e, http.MethodGet, "/api/recipes/favorites", "")
	require.Equal(t, http.StatusOK, rec.Code)
	favorites := decode[[]recipeBody](t, rec)
	require.Len(t, favorites, 1)
	assert.Equal(t, int64(1), favorites[0].ID)

	// Toggling twice restores the original flag.
	rec = do(t, e, http.MethodPatch, "/api/recipes/1/favorite", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, decode[recipeBody](t, rec).IsFavorite)

	rec = do(t, e, http.MethodGet, "/api/recipes/favorites", "")
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestRecipeJSONFieldOrder(t *testing.T) {
	e := newTestRouter(t)
	createRecipe(t, e, `{"name":"Tea","description":"Hot"}`)

	rec := do(t, e, http.MethodGet, "/api/recipes/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t,
		`{"id":1,"name":"Tea","description":"Hot","ingredients":[],"instructions":[],"image_url":null,"isFavorite":false}`,
		strings.TrimSpace(rec.Body.String()),
	)
}

func TestListRecipes(t *testing.T) {
	e := newTestRouter(t)

	rec := do(t, e, http.MethodGet, "/api/recipes", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))

	createRecipe(t, e, `{"name":"A","description":"a"}`)
	createRecipe(t, e, `{"name":"B","description":"b","isFavorite":true}`)

	rec = do(t, e, http.MethodGet, "/api/recipes", "")
	recipes := decode[[]recipeBody](t, rec)
	require.Len(t, recipes, 2)
	assert.Equal(t, "A", recipes[0].Name)
	assert.True(t, recipes[1].IsFavorite)
}

func TestRecipeNotFound(t *testing.T) {
	e := newTestRouter(t)

	for _, tt := range []struct{ method, path string }{
		{http.MethodGet, "/api/recipes/99"},
		{http.MethodPatch, "/api/recipes/99/favorite"},
	} {
		rec := do(t, e, tt.method, tt.path, "")
		assert.Equal(t, http.StatusNotFound, rec.Code)

		body := decode[errorBody](t, rec)
		assert.Equal(t, "RECIPE_NOT_FOUND", body.Code)
		assert.Equal(t, "Recipe not found", body.Message)
	}
}

func TestInvalidRecipeID(t *testing.T) {
	e := newTestRouter(t)

	rec := do(t, e, http.MethodGet, "/api/recipes/abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_PARAMETER", decode[errorBody](t, rec).Code)
}

func TestCreateRecipeValidation(t *testing.T) {
	e := newTestRouter(t)

	tests := []struct {
		name      string
		body      string
		wantField string
	}{
		{name: "missing name", body: `{"description":"x"}`, wantField: "name"},
		{name: "empty description", body: `{"name":"x","description":""}`, wantField: "description"},
		{name: "name too long", body: `{"name":"` + strings.Repeat("a", 201) + `","description":"x"}`, wantField: "name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, e, http.MethodPost, "/api/recipes", tt.body)
			require.Equal(t, http.StatusBadRequest, rec.Code)

			body := decode[errorBody](t, rec)
			require.Len(t, body.Errors, 1)
			assert.Equal(t, tt.wantField, body.Errors[0].Field)
		})
	}

	rec := do(t, e, http.MethodPost, "/api/recipes", `{"name":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Nothing was stored.
	rec = do(t, e, http.MethodGet, "/api/recipes", "")
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestSearchRecipes(t *testing.T) {
	e := newTestRouter(t)
	createRecipe(t, e, `{"name":"Tomato Soup","description":"d","ingredients":["tomato","salt"]}`)
	createRecipe(t, e, `{"name":"Pasta","description":"d","ingredients":["noodles","tomato"]}`)
	createRecipe(t, e, `{"name":"Salad","description":"d","ingredients":["lettuce"]}`)

	tests := []struct {
		name  string
		query url.Values
		want  []string
	}{
		{name: "no filters", query: url.Values{}, want: []string{"Tomato Soup", "Pasta", "Salad"}},
		{name: "empty filters", query: url.Values{"name": {""}, "ingredient": {""}}, want: []string{"Tomato Soup", "Pasta", "Salad"}},
		{name: "name", query: url.Values{"name": {"sOuP"}}, want: []string{"Tomato Soup"}},
		{name: "ingredient", query: url.Values{"ingredient": {"tomato"}}, want: []string{"Tomato Soup", "Pasta"}},
		{name: "both", query: url.Values{"name": {"pasta"}, "ingredient": {"tomato"}}, want: []string{"Pasta"}},
		{name: "quoted ingredient", query: url.Values{"ingredient": {`"salt"`}}, want: []string{"Tomato Soup"}},
		{name: "no match", query: url.Values{"ingredient": {"beef"}}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, e, http.MethodGet, "/api/recipes/search?"+tt.query.Encode(), "")
			require.Equal(t, http.StatusOK, rec.Code)

			names := []string{}
			for _, r := range decode[[]recipeBody](t, rec) {
				names = append(names, r.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestSystemRoutes(t *testing.T) {
	e := newTestRouter(t)

	rec := do(t, e, http.MethodGet, "/status", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"healthy"`)

	do(t, e, http.MethodGet, "/api/recipes", "")
	rec = do(t, e, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "cookbook_http_requests_total")
	assert.Contains(t, rec.Body.String(), "cookbook_db_query_duration_seconds")

	rec = do(t, e, http.MethodGet, "/docs", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/static/openapi.json")

	rec = do(t, e, http.MethodGet, "/static/openapi.json", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"openapi"`)
}

func TestUnknownRouteAndRequestID(t *testing.T) {
	e := newTestRouter(t)

	rec := do(t, e, http.MethodGet, "/api/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", decode[errorBody](t, rec).Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}
