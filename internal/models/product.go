package models

// Product is a generic catalogue entry stored in the "product" collection
type Product struct {
	Title       string  `json:"title" bson:"title"`
	Description *string `json:"description" bson:"description"`
	Price       float64 `json:"price" bson:"price"`
	Category    string  `json:"category" bson:"category"`
	InStock     bool    `json:"in_stock" bson:"in_stock"`
}

// ProductInput is the payload accepted for a Product
type ProductInput struct {
	Title       *string  `json:"title" validate:"required"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	Category    *string  `json:"category" validate:"required"`
	InStock     *bool    `json:"in_stock" nullable:"false"`
}

func (in ProductInput) Validate() (Product, error) {
	if err := validateStruct(in); err != nil {
		return Product{}, err
	}
	return Product{
		Title:       *in.Title,
		Description: in.Description,
		Price:       *in.Price,
		Category:    *in.Category,
		InStock:     valueOr(in.InStock, true),
	}, nil
}
