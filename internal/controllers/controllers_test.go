package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/franciscosanchezn/pizza-order-api/internal/database"
	"github.com/franciscosanchezn/pizza-order-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// testContext mirrors testing.T.Context (Go 1.24+): a context canceled
// just before the test's Cleanup-registered functions run.
func testContext(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	return ctx
}

func init() {
	gin.SetMode(gin.TestMode)
}

// setupRouter wires the controllers on a fresh in-memory SQLite store.
// A nil store is passed through to simulate a missing DATABASE_URL.
func setupRouter(t *testing.T, withStore bool) (*gin.Engine, database.Store) {
	t.Helper()

	var store database.Store
	if withStore {
		cfg, err := database.NewDatabaseConfig("file:"+uuid.New().String()+"?mode=memory&cache=shared", "test")
		require.NoError(t, err)
		store, err = database.InitDatabase(context.Background(), cfg)
		require.NoError(t, err)
		t.Cleanup(func() { _ = store.Close(context.Background()) })
	}

	pizzas := NewPizzaController(services.NewPizzaService(store))
	orders := NewOrderController(services.NewOrderService(store, nil))
	system := NewSystemController(services.NewDiagnosticsService(store, "sqlite::memory:", "test"))

	router := gin.New()
	router.GET("/", system.Root)
	router.GET("/test", system.Diagnostics)
	router.GET("/health", system.Health)
	router.GET("/api/pizzas", pizzas.GetAllPizzas)
	router.POST("/api/pizzas", pizzas.CreatePizza)
	router.POST("/api/pizzas/seed", pizzas.SeedPizzas)
	router.GET("/api/orders", orders.GetAllOrders)
	router.POST("/api/orders", orders.CreateOrder)
	return router, store
}

func performRequest(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out), w.Body.String())
}
