package controllers

import (
	"net/http"
	"testing"
	"time"

	"github.com/franciscosanchezn/pizza-order-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoot(t *testing.T) {
	router, _ := setupRouter(t, false)

	w := performRequest(router, http.MethodGet, "/", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Pizza API running"}`, w.Body.String())
}

func TestDiagnostics(t *testing.T) {
	t.Run("with database", func(t *testing.T) {
		router, _ := setupRouter(t, true)
		performRequest(router, http.MethodPost, "/api/pizzas/seed", "")

		w := performRequest(router, http.MethodGet, "/test", "")
		require.Equal(t, http.StatusOK, w.Code)

		var report services.DiagnosticsReport
		decodeBody(t, w, &report)
		assert.Equal(t, "✅ Running", report.Backend)
		assert.Equal(t, "✅ Connected & Working", report.Database)
		assert.Equal(t, "Connected", report.ConnectionStatus)
		assert.Equal(t, []string{"pizza"}, report.Collections)
	})

	t.Run("without database", func(t *testing.T) {
		router, _ := setupRouter(t, false)

		w := performRequest(router, http.MethodGet, "/test", "")
		require.Equal(t, http.StatusOK, w.Code)

		var body map[string]interface{}
		decodeBody(t, w, &body)
		for _, key := range []string{"backend", "database", "database_url", "database_name", "connection_status", "collections"} {
			assert.Contains(t, body, key)
		}
		assert.Equal(t, "Not Connected", body["connection_status"])
		assert.Equal(t, []interface{}{}, body["collections"])
	})
}

func TestHealth(t *testing.T) {
	controller := NewSystemController(services.NewDiagnosticsService(nil, "", "")).(*systemController)
	controller.now = func() time.Time { return time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC) }

	router := gin.New()
	router.GET("/health", controller.Health)
	w := performRequest(router, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"healthy","timestamp":"2026-10-17T12:00:00Z","service":"pizza-order-api"}`, w.Body.String())
}
