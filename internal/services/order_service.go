package services

import (
	"context"
	"time"

	"github.com/franciscosanchezn/pizza-order-api/internal/database"
	"github.com/franciscosanchezn/pizza-order-api/internal/messaging"
	"github.com/franciscosanchezn/pizza-order-api/internal/models"
	log "github.com/sirupsen/logrus"
)

var orderCollection = models.CollectionName(models.Order{})

// OrderService places and lists customer orders
type OrderService interface {
	// CreateOrder stores an order and returns its identifier; orders without items are rejected
	CreateOrder(ctx context.Context, order models.Order) (database.DocumentID, error)
	// GetAllOrders retrieves every order, identifiers rendered as strings
	GetAllOrders(ctx context.Context) ([]database.Document, error)
}

type orderService struct {
	store     database.Store
	publisher messaging.OrderPublisher
	now       func() time.Time
}

// NewOrderService creates a new instance of OrderService.
// A nil publisher disables order events.
func NewOrderService(store database.Store, publisher messaging.OrderPublisher) OrderService {
	if publisher == nil {
		publisher = messaging.NewNoopPublisher()
	}
	return &orderService{store: store, publisher: publisher, now: time.Now}
}

func (s *orderService) CreateOrder(ctx context.Context, order models.Order) (database.DocumentID, error) {
	if len(order.Items) == 0 {
		return database.DocumentID{}, models.ErrEmptyOrder
	}
	if s.store == nil {
		return database.DocumentID{}, database.ErrStoreUnavailable
	}

	id, err := s.store.CreateDocument(ctx, orderCollection, order)
	if err != nil {
		return database.DocumentID{}, err
	}

	event := messaging.OrderPlacedEvent{
		OrderID:      id.String(),
		CustomerName: order.CustomerName,
		ItemCount:    len(order.Items),
		Total:        order.Total,
		Status:       order.Status,
		PlacedAt:     s.now().UTC(),
	}
	// The order is already stored, a lost event must not fail the request
	if err := s.publisher.PublishOrderPlaced(ctx, event); err != nil {
		log.WithError(err).WithField("order_id", event.OrderID).Warn("Failed to publish order event")
	}
	return id, nil
}

func (s *orderService) GetAllOrders(ctx context.Context) ([]database.Document, error) {
	if s.store == nil {
		return nil, database.ErrStoreUnavailable
	}
	orders, err := s.store.GetDocuments(ctx, orderCollection, nil, 0)
	if err != nil {
		return nil, err
	}
	return stringifyIDs(orders), nil
}
