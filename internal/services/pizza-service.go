package services

import (
	"context"

	"github.com/franciscosanchezn/pizza-order-api/internal/database"
	"github.com/franciscosanchezn/pizza-order-api/internal/models"
	log "github.com/sirupsen/logrus"
)

var pizzaCollection = models.CollectionName(models.Pizza{})

// SeedResult reports the outcome of seeding the menu
type SeedResult struct {
	Seeded  bool   `json:"seeded"`
	Message string `json:"message,omitempty"`
	Count   int    `json:"count,omitempty"`
}

// PizzaService provides methods to interact with the pizza menu
type PizzaService interface {
	// GetAllPizzas retrieves every pizza, identifiers rendered as strings
	GetAllPizzas(ctx context.Context) ([]database.Document, error)
	// CreatePizza stores a validated pizza and returns its identifier
	CreatePizza(ctx context.Context, pizza models.Pizza) (database.DocumentID, error)
	// SeedPizzas inserts the default menu when no pizza exists yet
	SeedPizzas(ctx context.Context) (SeedResult, error)
}

// pizzaService is the implementation of the PizzaService interface
type pizzaService struct {
	store database.Store
}

// NewPizzaService creates a new instance of PizzaService
func NewPizzaService(store database.Store) PizzaService {
	return &pizzaService{store: store}
}

func (s *pizzaService) GetAllPizzas(ctx context.Context) ([]database.Document, error) {
	if s.store == nil {
		return nil, database.ErrStoreUnavailable
	}
	pizzas, err := s.store.GetDocuments(ctx, pizzaCollection, nil, 0)
	if err != nil {
		return nil, err
	}
	return stringifyIDs(pizzas), nil
}

func (s *pizzaService) CreatePizza(ctx context.Context, pizza models.Pizza) (database.DocumentID, error) {
	if s.store == nil {
		return database.DocumentID{}, database.ErrStoreUnavailable
	}
	return s.store.CreateDocument(ctx, pizzaCollection, pizza)
}

// SeedPizzas checks for existing pizzas and then inserts the defaults.
// The check and the inserts are not atomic: concurrent calls on an empty menu may both seed it.
func (s *pizzaService) SeedPizzas(ctx context.Context) (SeedResult, error) {
	if s.store == nil {
		return SeedResult{}, database.ErrStoreUnavailable
	}

	existing, err := s.store.GetDocuments(ctx, pizzaCollection, nil, 1)
	if err != nil {
		return SeedResult{}, err
	}
	if len(existing) > 0 {
		log.Info("Menu already seeded, skipping")
		return SeedResult{Seeded: false, Message: "Menu already has items"}, nil
	}

	defaults := DefaultPizzas()
	for _, pizza := range defaults {
		if _, err := s.store.CreateDocument(ctx, pizzaCollection, pizza); err != nil {
			return SeedResult{}, err
		}
	}
	log.WithField("count", len(defaults)).Info("Menu seeded with default pizzas")
	return SeedResult{Seeded: true, Count: len(defaults)}, nil
}

// DefaultPizzas returns the menu inserted by SeedPizzas
func DefaultPizzas() []models.Pizza {
	return []models.Pizza{
		{
			Name:        "Margherita",
			Description: strPtr("Classic tomato, mozzarella, basil"),
			PriceSmall:  7.0,
			PriceMedium: 9.5,
			PriceLarge:  12.0,
			Vegetarian:  true,
			Image:       strPtr("https://images.unsplash.com/photo-1548366086-7a0f1f1a557d?q=80&w=1200&auto=format&fit=crop"),
		},
		{
			Name:        "Pepperoni",
			Description: strPtr("Loaded with pepperoni and mozzarella"),
			PriceSmall:  8.0,
			PriceMedium: 11.0,
			PriceLarge:  13.5,
			Vegetarian:  false,
			Image:       strPtr("https://images.unsplash.com/photo-1604068549290-de188494b9a6?q=80&w=1200&auto=format&fit=crop"),
		},
		{
			Name:        "Veggie Supreme",
			Description: strPtr("Bell peppers, onions, olives, mushrooms"),
			PriceSmall:  8.5,
			PriceMedium: 11.5,
			PriceLarge:  14.0,
			Vegetarian:  true,
			Image:       strPtr("https://images.unsplash.com/photo-1506354666786-959d6d497f1a?q=80&w=1200&auto=format&fit=crop"),
		},
		{
			Name:        "BBQ Chicken",
			Description: strPtr("BBQ sauce, chicken, red onions, cilantro"),
			PriceSmall:  9.0,
			PriceMedium: 12.5,
			PriceLarge:  15.0,
			Vegetarian:  false,
			Image:       strPtr("https://images.unsplash.com/photo-1548365328-9f547fb09530?q=80&w=1200&auto=format&fit=crop"),
		},
	}
}

func strPtr(s string) *string {
	return &s
}

func stringifyIDs(docs []database.Document) []database.Document {
	for _, doc := range docs {
		models.StringifyID(doc)
	}
	return docs
}
