package models

// Pizza represents a menu item as it is stored in the "pizza" collection
type Pizza struct {
	Name        string  `json:"name" bson:"name"`
	Description *string `json:"description" bson:"description"`
	PriceSmall  float64 `json:"price_small" bson:"price_small"`
	PriceMedium float64 `json:"price_medium" bson:"price_medium"`
	PriceLarge  float64 `json:"price_large" bson:"price_large"`
	Vegetarian  bool    `json:"vegetarian" bson:"vegetarian"`
	Image       *string `json:"image" bson:"image"`
}

// PizzaInput is the request payload used to create a Pizza
type PizzaInput struct {
	Name        *string  `json:"name" validate:"required" example:"Margherita"`
	Description *string  `json:"description" example:"Classic tomato, mozzarella, basil"`
	PriceSmall  *float64 `json:"price_small" validate:"required,gte=0" example:"7"`
	PriceMedium *float64 `json:"price_medium" validate:"required,gte=0" example:"9.5"`
	PriceLarge  *float64 `json:"price_large" validate:"required,gte=0" example:"12"`
	Vegetarian  *bool    `json:"vegetarian" nullable:"false" example:"true"`
	Image       *string  `json:"image" example:"https://images.unsplash.com/photo-1548366086-7a0f1f1a557d"`
}

// Validate checks the input and returns the Pizza with defaults applied
func (in PizzaInput) Validate() (Pizza, error) {
	if err := validateStruct(in); err != nil {
		return Pizza{}, err
	}
	return Pizza{
		Name:        *in.Name,
		Description: in.Description,
		PriceSmall:  *in.PriceSmall,
		PriceMedium: *in.PriceMedium,
		PriceLarge:  *in.PriceLarge,
		Vegetarian:  valueOr(in.Vegetarian, false),
		Image:       in.Image,
	}, nil
}
