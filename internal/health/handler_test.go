package health_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"student-service/internal/health"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) PingContext(ctx context.Context) error { return f(ctx) }

func serve(h *health.Handler, path string) *httptest.ResponseRecorder {
	router := chi.NewRouter()
	h.RegisterRoutes(router)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestHandler(t *testing.T) {
	t.Run("Health", func(t *testing.T) {
		w := serve(health.NewHandler(nil), "/health")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	})

	t.Run("Ready", func(t *testing.T) {
		db := pingerFunc(func(ctx context.Context) error { return nil })
		w := serve(health.NewHandler(db), "/ready")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"ready"}`, w.Body.String())
	})

	t.Run("Ready_DatabaseDown", func(t *testing.T) {
		db := pingerFunc(func(ctx context.Context) error { return errors.New("connection refused") })
		w := serve(health.NewHandler(db), "/ready")
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}
