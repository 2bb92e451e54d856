package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/deppfellow/cookbook/internal/middleware"
	"github.com/deppfellow/cookbook/internal/model"
	"github.com/deppfellow/cookbook/internal/server"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// recipeColumns is the select list every query scans with scanRecipe.
// Rows written before isFavorite had a default may hold NULL there.
const recipeColumns = `id, name, description, ingredients, instructions, image_url, COALESCE("isFavorite", FALSE)`

type RecipeRepository struct {
	server        *server.Server
	queryDuration *prometheus.HistogramVec
}

func NewRecipeRepository(s *server.Server) *RecipeRepository {
	return &RecipeRepository{
		server: s,
		queryDuration: promauto.With(s.Registry).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "cookbook_db_query_duration_seconds",
			Help:    "Duration of recipe repository queries.",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"}),
	}
}

func (r *RecipeRepository) CreateRecipe(ctx context.Context, recipe *model.Recipe) (*model.Recipe, error) {
	stmt := `
		INSERT INTO recipe (name, description, ingredients, instructions, image_url, "isFavorite")
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + recipeColumns

	defer r.observe(ctx, "create_recipe", time.Now())

	row := r.queryRow(ctx, stmt,
		recipe.Name,
		recipe.Description,
		recipe.Ingredients,
		recipe.Instructions,
		nullString(recipe.ImageURL),
		recipe.IsFavorite,
	)

	created, err := scanRecipe(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create recipe: %w", err)
	}
	return created, nil
}

func (r *RecipeRepository) GetRecipes(ctx context.Context) ([]model.Recipe, error) {
	stmt := `SELECT ` + recipeColumns + ` FROM recipe ORDER BY id`

	defer r.observe(ctx, "get_recipes", time.Now())

	recipes, err := r.queryRecipes(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("failed to get recipes: %w", err)
	}
	return recipes, nil
}

// GetRecipeByID returns sql.ErrNoRows (wrapped) when the id is unknown.
func (r *RecipeRepository) GetRecipeByID(ctx context.Context, id int64) (*model.Recipe, error) {
	stmt := `SELECT ` + recipeColumns + ` FROM recipe WHERE id = $1`

	defer r.observe(ctx, "get_recipe_by_id", time.Now())

	recipe, err := scanRecipe(r.queryRow(ctx, stmt, id))
	if err != nil {
		return nil, fmt.Errorf("failed to get recipe by id=%d: %w", id, err)
	}
	return recipe, nil
}

// ToggleFavorite flips isFavorite in a single statement and returns the
// updated row, or sql.ErrNoRows (wrapped) when the id is unknown.
func (r *RecipeRepository) ToggleFavorite(ctx context.Context, id int64) (*model.Recipe, error) {
	stmt := `
		UPDATE recipe
		SET "isFavorite" = NOT COALESCE("isFavorite", FALSE)
		WHERE id = $1
		RETURNING ` + recipeColumns

	defer r.observe(ctx, "toggle_favorite", time.Now())

	recipe, err := scanRecipe(r.queryRow(ctx, stmt, id))
	if err != nil {
		return nil, fmt.Errorf("failed to toggle favorite for recipe id=%d: %w", id, err)
	}
	return recipe, nil
}

func (r *RecipeRepository) GetFavoriteRecipes(ctx context.Context) ([]model.Recipe, error) {
	stmt := `SELECT ` + recipeColumns + ` FROM recipe WHERE "isFavorite" = TRUE ORDER BY id`

	defer r.observe(ctx, "get_favorite_recipes", time.Now())

	recipes, err := r.queryRecipes(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("failed to get favorite recipes: %w", err)
	}
	return recipes, nil
}

// SearchRecipes filters by a case-insensitive substring of the name and a
// substring of the stored ingredients text. Empty filters are skipped;
// with none, every recipe is returned.
//
// The ingredient filter runs against the encoded list, so it can match
// quote characters or across items, and follows the engine's LIKE case
// rules (case-insensitive for ASCII on SQLite, case-sensitive on PostgreSQL).
func (r *RecipeRepository) SearchRecipes(ctx context.Context, name, ingredient string) ([]model.Recipe, error) {
	var (
		conditions []string
		args       []any
	)

	if name != "" {
		args = append(args, containsPattern(name))
		conditions = append(conditions, fmt.Sprintf(`lower(name) LIKE lower($%d) ESCAPE '\'`, len(args)))
	}

	if ingredient != "" {
		args = append(args, containsPattern(ingredient))
		conditions = append(conditions, fmt.Sprintf(`ingredients LIKE $%d ESCAPE '\'`, len(args)))
	}

	stmt := `SELECT ` + recipeColumns + ` FROM recipe`
	if len(conditions) > 0 {
		stmt += ` WHERE ` + strings.Join(conditions, ` AND `)
	}
	stmt += ` ORDER BY id`

	defer r.observe(ctx, "search_recipes", time.Now())

	recipes, err := r.queryRecipes(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to search recipes: %w", err)
	}
	return recipes, nil
}

// ------------------------------------------------------------

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds a LIKE pattern matching value literally anywhere.
func containsPattern(value string) string {
	return "%" + likeEscaper.Replace(value) + "%"
}

func (r *RecipeRepository) queryRow(ctx context.Context, stmt string, args ...any) *sql.Row {
	return r.server.DB.DB.QueryRowContext(ctx, r.server.DB.Dialect.Rebind(stmt), args...)
}

func (r *RecipeRepository) queryRecipes(ctx context.Context, stmt string, args ...any) ([]model.Recipe, error) {
	rows, err := r.server.DB.DB.QueryContext(ctx, r.server.DB.Dialect.Rebind(stmt), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	recipes := []model.Recipe{}
	for rows.Next() {
		recipe, err := scanRecipe(rows)
		if err != nil {
			return nil, err
		}
		recipes = append(recipes, *recipe)
	}
	return recipes, rows.Err()
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecipe(row scanner) (*model.Recipe, error) {
	var recipe model.Recipe
	err := row.Scan(
		&recipe.ID,
		&recipe.Name,
		&recipe.Description,
		&recipe.Ingredients,
		&recipe.Instructions,
		&recipe.ImageURL,
		&recipe.IsFavorite,
	)
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *RecipeRepository) observe(ctx context.Context, operation string, start time.Time) {
	elapsed := time.Since(start)
	r.queryDuration.WithLabelValues(operation).Observe(elapsed.Seconds())

	threshold := r.server.Config.Observability.Logging.SlowQueryThreshold
	if threshold > 0 && elapsed > threshold {
		middleware.LoggerFromContext(ctx, r.server.Logger).Warn().
			Str("operation", operation).
			Dur("duration", elapsed).
			Dur("threshold", threshold).
			Msg("slow query")
	}
}
