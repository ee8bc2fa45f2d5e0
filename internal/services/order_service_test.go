package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/franciscosanchezn/pizza-order-api/internal/database"
	"github.com/franciscosanchezn/pizza-order-api/internal/messaging"
	"github.com/franciscosanchezn/pizza-order-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	events []messaging.OrderPlacedEvent
	err    error
}

func (p *recordingPublisher) PublishOrderPlaced(_ context.Context, event messaging.OrderPlacedEvent) error {
	p.events = append(p.events, event)
	return p.err
}

func (p *recordingPublisher) Close() error { return nil }

func sampleOrder() models.Order {
	return models.Order{
		CustomerName:    "Jane Doe",
		CustomerPhone:   "555-0100",
		CustomerAddress: "1 Main St",
		Items: []models.OrderItem{{
			PizzaID:   "abc123",
			Size:      "large",
			Quantity:  2,
			UnitPrice: 12,
			Name:      "Margherita",
		}},
		Subtotal:    24,
		DeliveryFee: 2.5,
		Total:       26.5,
		Status:      models.OrderStatusPending,
	}
}

func TestCreateOrderThenList(t *testing.T) {
	service := NewOrderService(setupSQLiteStore(t), nil)
	ctx := context.Background()

	id, err := service.CreateOrder(ctx, sampleOrder())
	require.NoError(t, err)
	require.False(t, id.IsZero())

	orders, err := service.GetAllOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)

	doc := orders[0]
	assert.Equal(t, id.String(), doc["_id"])
	assert.Equal(t, "pending", doc["status"])
	assert.Equal(t, 26.5, doc["total"])

	items, ok := doc["items"].([]interface{})
	require.True(t, ok)
	require.Len(t, items, 1)
	item := items[0].(map[string]interface{})
	assert.Equal(t, "Margherita", item["name"])
	assert.Equal(t, 12.0, item["unit_price"])
	assert.Equal(t, 2.0, item["quantity"])
}

func TestCreateOrderRejectsEmptyItems(t *testing.T) {
	store := newFakeStore()
	publisher := &recordingPublisher{}
	service := NewOrderService(store, publisher)

	order := sampleOrder()
	order.Items = []models.OrderItem{}

	_, err := service.CreateOrder(context.Background(), order)

	var invariantErr *models.InvariantError
	require.True(t, errors.As(err, &invariantErr))
	assert.Equal(t, "Order must contain at least one item", invariantErr.Message)
	assert.Equal(t, 0, store.inserts)
	assert.Equal(t, 0, store.finds)
	assert.Empty(t, publisher.events)
}

func TestCreateOrderPublishesEvent(t *testing.T) {
	store := newFakeStore()
	publisher := &recordingPublisher{}
	service := NewOrderService(store, publisher).(*orderService)
	placedAt := time.Date(2026, 10, 17, 18, 30, 0, 0, time.UTC)
	service.now = func() time.Time { return placedAt }

	id, err := service.CreateOrder(context.Background(), sampleOrder())
	require.NoError(t, err)

	require.Len(t, publisher.events, 1)
	assert.Equal(t, messaging.OrderPlacedEvent{
		OrderID:      id.String(),
		CustomerName: "Jane Doe",
		ItemCount:    1,
		Total:        26.5,
		Status:       "pending",
		PlacedAt:     placedAt,
	}, publisher.events[0])
}

func TestCreateOrderIgnoresPublishFailures(t *testing.T) {
	store := newFakeStore()
	publisher := &recordingPublisher{err: errors.New("broker down")}
	service := NewOrderService(store, publisher)

	id, err := service.CreateOrder(context.Background(), sampleOrder())
	require.NoError(t, err)
	assert.False(t, id.IsZero())
	assert.Equal(t, 1, store.inserts)
}

func TestOrderServiceErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("no store configured", func(t *testing.T) {
		service := NewOrderService(nil, nil)

		_, err := service.CreateOrder(ctx, sampleOrder())
		assert.ErrorIs(t, err, database.ErrStoreUnavailable)
		_, err = service.GetAllOrders(ctx)
		assert.ErrorIs(t, err, database.ErrStoreUnavailable)
	})

	t.Run("empty order is rejected before the store is consulted", func(t *testing.T) {
		service := NewOrderService(nil, nil)
		order := sampleOrder()
		order.Items = nil

		_, err := service.CreateOrder(ctx, order)
		assert.ErrorIs(t, err, models.ErrEmptyOrder)
	})

	t.Run("insert failure is not published", func(t *testing.T) {
		store := newFakeStore()
		store.err = errors.New("write conflict")
		publisher := &recordingPublisher{}
		service := NewOrderService(store, publisher)

		_, err := service.CreateOrder(ctx, sampleOrder())
		assert.Error(t, err)
		assert.Empty(t, publisher.events)
	})
}
