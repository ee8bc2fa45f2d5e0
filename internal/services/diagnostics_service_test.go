package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/franciscosanchezn/pizza-order-api/internal/database"
	"github.com/stretchr/testify/assert"
)

func TestDiagnosticsReport(t *testing.T) {
	ctx := context.Background()

	t.Run("no database configured", func(t *testing.T) {
		report := NewDiagnosticsService(nil, "", "").Report(ctx)

		assert.Equal(t, DiagnosticsReport{
			Backend:          "✅ Running",
			Database:         "⚠️  Available but not initialized",
			DatabaseURL:      "❌ Not Set",
			DatabaseName:     "❌ Not Set",
			ConnectionStatus: "Not Connected",
			Collections:      []string{},
		}, report)
	})

	t.Run("working database", func(t *testing.T) {
		store := setupSQLiteStore(t)
		_, err := store.CreateDocument(ctx, "pizza", map[string]interface{}{"name": "Margherita"})
		assert.NoError(t, err)

		report := NewDiagnosticsService(store, "sqlite::memory:", "test").Report(ctx)

		assert.Equal(t, "✅ Connected & Working", report.Database)
		assert.Equal(t, "Connected", report.ConnectionStatus)
		assert.Equal(t, "✅ Set", report.DatabaseURL)
		assert.Equal(t, "✅ Set", report.DatabaseName)
		assert.Equal(t, []string{"pizza"}, report.Collections)
	})

	t.Run("collections are capped", func(t *testing.T) {
		store := newFakeStore()
		for i := 0; i < 15; i++ {
			store.docs[fmt.Sprintf("c%02d", i)] = nil
		}

		report := NewDiagnosticsService(store, "mongodb://localhost", "").Report(ctx)

		assert.Len(t, report.Collections, 10)
		assert.Equal(t, "❌ Not Set", report.DatabaseName)
	})

	t.Run("database error is reported inline and truncated", func(t *testing.T) {
		store := newFakeStore()
		store.err = &database.StoreError{
			Op:  "list collections",
			Err: errors.New(strings.Repeat("x", 200)),
		}

		report := NewDiagnosticsService(store, "mongodb://localhost", "pizza").Report(ctx)

		prefix := "⚠️  Connected but Error: "
		assert.True(t, strings.HasPrefix(report.Database, prefix))
		assert.Len(t, []rune(strings.TrimPrefix(report.Database, prefix)), 50)
		assert.Equal(t, "Connected", report.ConnectionStatus)
		assert.Equal(t, []string{}, report.Collections)
	})
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 50))
	assert.Equal(t, "abc", truncate("abcdef", 3))
	assert.Equal(t, "héé", truncate("héééé", 3))
}
