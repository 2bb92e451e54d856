package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructors(t *testing.T) {
	code := "RECIPE_NOT_FOUND"

	tests := []struct {
		name       string
		err        *HTTPError
		wantStatus int
		wantCode   string
	}{
		{"bad request", NewBadRequestError("bad", false, nil, nil), http.StatusBadRequest, "BAD_REQUEST"},
		{"not found", NewNotFoundError("missing", false, nil), http.StatusNotFound, "NOT_FOUND"},
		{"not found custom code", NewNotFoundError("missing", true, &code), http.StatusNotFound, code},
		{"internal", NewInternalServerError(), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
		{"validation", ValidationError(errors.New("boom")), http.StatusBadRequest, "BAD_REQUEST"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantStatus, tt.err.Status)
			assert.Equal(t, tt.wantCode, tt.err.Code)
		})
	}
}

func TestHTTPErrorIs(t *testing.T) {
	wrapped := fmt.Errorf("service: %w", NewNotFoundError("Recipe not found", true, nil))

	assert.True(t, errors.Is(wrapped, &HTTPError{}))
	assert.False(t, errors.Is(errors.New("plain"), &HTTPError{}))

	var httpErr *HTTPError
	assert.True(t, errors.As(wrapped, &httpErr))
	assert.Equal(t, "Recipe not found", httpErr.Error())
}

func TestWithMessage(t *testing.T) {
	base := NewBadRequestError("original", true, nil, []FieldError{{Field: "name", Error: "is required"}})
	copied := base.WithMessage("replaced")

	assert.Equal(t, "original", base.Message)
	assert.Equal(t, "replaced", copied.Message)
	assert.Equal(t, base.Errors, copied.Errors)
	assert.Equal(t, base.Status, copied.Status)
}

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	assert.Equal(t, "BAD_REQUEST", MakeUpperCaseWithUnderscores("Bad Request"))
	assert.Equal(t, "METHOD_NOT_ALLOWED", MakeUpperCaseWithUnderscores(http.StatusText(http.StatusMethodNotAllowed)))
}
