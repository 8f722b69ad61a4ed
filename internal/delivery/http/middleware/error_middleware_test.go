package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	domainerrors "gatekeeper/internal/domain/errors"
)

func handleError(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	m.HandleHTTPError(err, c)

	return rec
}

func TestErrorMiddleware_AppError(t *testing.T) {
	rec := handleError(t, errors.Wrap(domainerrors.ErrUsernameExists, "registration"))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"error":"Username already exists"}`, rec.Body.String())
}

func TestErrorMiddleware_HTTPError(t *testing.T) {
	t.Run("forwards the error's own message", func(t *testing.T) {
		rec := handleError(t, echo.NewHTTPError(http.StatusBadRequest, "malformed request body"))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"malformed request body"}`, rec.Body.String())
	})

	t.Run("falls back to status text for non-string messages", func(t *testing.T) {
		rec := handleError(t, echo.NewHTTPError(http.StatusNotFound, map[string]string{"reason": "gone"}))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"Not Found"}`, rec.Body.String())
	})
}

func TestErrorMiddleware_UnknownError(t *testing.T) {
	rec := handleError(t, errors.New("boom"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, rec.Body.String())
}
