package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMiddlewarePathLabel(t *testing.T) {

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/cart/items/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	handler := Middleware(mux)

	t.Run("Id-bearing URLs collapse onto the route pattern", func(t *testing.T) {
		// Act
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/cart/items/42", nil))
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/cart/items/43", nil))

		// Assert: one label value for both requests, no raw ids
		counter := httpRequestsTotal.WithLabelValues("200", http.MethodGet, "/api/v1/cart/items/{id}")
		assert.Equal(t, float64(2), testutil.ToFloat64(counter))

		raw := httpRequestsTotal.WithLabelValues("200", http.MethodGet, "/api/v1/cart/items/42")
		assert.Equal(t, float64(0), testutil.ToFloat64(raw))
	})

	t.Run("Unknown routes share one label", func(t *testing.T) {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/definitely/not/registered", nil))

		counter := httpRequestsTotal.WithLabelValues("404", http.MethodGet, "unmatched")
		assert.Equal(t, float64(1), testutil.ToFloat64(counter))
	})
}
