package sqlerr

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/deppfellow/cookbook/internal/errs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func TestHandleErrorPostgres(t *testing.T) {
	tests := []struct {
		name       string
		pgErr      *pgconn.PgError
		wantStatus int
		wantCode   string
		wantMsg    string
		wantFields []errs.FieldError
	}{
		{
			name:       "not null",
			pgErr:      &pgconn.PgError{Code: "23502", Severity: "ERROR", TableName: "recipe", ColumnName: "description"},
			wantStatus: http.StatusBadRequest,
			wantCode:   "RECIPE_REQUIRED",
			wantMsg:    "The Description is required",
			wantFields: []errs.FieldError{{Field: "description", Error: "is required"}},
		},
		{
			name:       "unique with constraint name",
			pgErr:      &pgconn.PgError{Code: "23505", TableName: "recipes", ConstraintName: "recipes_name_key"},
			wantStatus: http.StatusBadRequest,
			wantCode:   "RECIPE_ALREADY_EXISTS",
			wantMsg:    "A Recipe with this Name already exists",
		},
		{
			name:       "string too long",
			pgErr:      &pgconn.PgError{Code: "22001", TableName: "recipe", ColumnName: "name"},
			wantStatus: http.StatusBadRequest,
			wantCode:   "RECIPE_INVALID",
			wantMsg:    "The Name value does not meet required conditions",
		},
		{
			name:       "unknown sqlstate",
			pgErr:      &pgconn.PgError{Code: "53300", Message: "too many connections"},
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_SERVER_ERROR",
			wantMsg:    "Internal Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := HandleError(fmt.Errorf("failed to create recipe: %w", tt.pgErr))

			var httpErr *errs.HTTPError
			require.ErrorAs(t, err, &httpErr)
			assert.Equal(t, tt.wantStatus, httpErr.Status)
			assert.Equal(t, tt.wantCode, httpErr.Code)
			assert.Equal(t, tt.wantMsg, httpErr.Message)
			assert.Equal(t, tt.wantFields, httpErr.Errors)
		})
	}
}

func TestHandleErrorSQLite(t *testing.T) {
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`CREATE TABLE recipe (id INTEGER PRIMARY KEY, name TEXT NOT NULL)`)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO recipe (id, name) VALUES (1, NULL)`)
	require.Error(t, err)
	assert.Equal(t, NotNullViolation, ErrCode(err))

	var httpErr *errs.HTTPError
	require.ErrorAs(t, HandleError(err), &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "RECIPE_REQUIRED", httpErr.Code)
	assert.Equal(t, []errs.FieldError{{Field: "name", Error: "is required"}}, httpErr.Errors)

	_, err = db.Exec(`INSERT INTO recipe (id, name) VALUES (2, 'a')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO recipe (id, name) VALUES (2, 'b')`)
	require.Error(t, err)
	assert.Equal(t, UniqueViolation, ErrCode(err))
}

func TestHandleErrorPassThroughAndFallbacks(t *testing.T) {
	notFound := errs.NewNotFoundError("Recipe not found", true, nil)
	assert.Same(t, notFound, HandleError(notFound))

	for _, err := range []error{sql.ErrNoRows, pgx.ErrNoRows, fmt.Errorf("get: %w", sql.ErrNoRows)} {
		var httpErr *errs.HTTPError
		require.ErrorAs(t, HandleError(err), &httpErr)
		assert.Equal(t, http.StatusNotFound, httpErr.Status)
	}

	var httpErr *errs.HTTPError
	require.ErrorAs(t, HandleError(errors.New("connection reset")), &httpErr)
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
}

func TestErrCode(t *testing.T) {
	assert.Equal(t, Other, ErrCode(errors.New("plain")))
	assert.Equal(t, CheckViolation, ErrCode(&pgconn.PgError{Code: "23514"}))
	assert.Equal(t, UniqueViolation, ErrCode(&Error{Code: UniqueViolation}))
}

func TestMapSeverity(t *testing.T) {
	assert.Equal(t, SeverityFatal, MapSeverity("FATAL"))
	assert.Equal(t, SeverityError, MapSeverity("something else"))
}

func TestExtractColumnForUniqueViolation(t *testing.T) {
	assert.Equal(t, "email", extractColumnForUniqueViolation("unique_users_email"))
	assert.Equal(t, "name", extractColumnForUniqueViolation("recipe_name_key"))
	assert.Equal(t, "", extractColumnForUniqueViolation("recipe_pkey"))
	assert.Equal(t, "", extractColumnForUniqueViolation(""))
}
