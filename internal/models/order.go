package models

// Order statuses. The stored status is not restricted to these values.
const (
	OrderStatusPending    = "pending"
	OrderStatusPreparing  = "preparing"
	OrderStatusDelivering = "delivering"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)

// OrderItem is one line of an order.
// UnitPrice and Name are snapshots of the pizza at the time the order was placed.
type OrderItem struct {
	PizzaID   string  `json:"pizza_id" bson:"pizza_id"`
	Size      string  `json:"size" bson:"size"`
	Quantity  int     `json:"quantity" bson:"quantity"`
	UnitPrice float64 `json:"unit_price" bson:"unit_price"`
	Name      string  `json:"name" bson:"name"`
}

// Order is a customer order stored in the "order" collection
type Order struct {
	CustomerName    string      `json:"customer_name" bson:"customer_name"`
	CustomerPhone   string      `json:"customer_phone" bson:"customer_phone"`
	CustomerAddress string      `json:"customer_address" bson:"customer_address"`
	Items           []OrderItem `json:"items" bson:"items"`
	Subtotal        float64     `json:"subtotal" bson:"subtotal"`
	DeliveryFee     float64     `json:"delivery_fee" bson:"delivery_fee"`
	Total           float64     `json:"total" bson:"total"`
	Status          string      `json:"status" bson:"status"`
}

// OrderItemInput is one line of an OrderInput
type OrderItemInput struct {
	PizzaID   *string  `json:"pizza_id" validate:"required" example:"665f1c2e8b3e4a0012345678"`
	Size      *string  `json:"size" validate:"required" example:"medium"`
	Quantity  *int     `json:"quantity" validate:"omitempty,gte=1" nullable:"false" example:"2"`
	UnitPrice *float64 `json:"unit_price" validate:"required,gte=0" example:"9.5"`
	Name      *string  `json:"name" validate:"required" example:"Margherita"`
}

// OrderInput is the request payload used to place an order.
// An empty items list passes schema validation, it is rejected when the order is placed.
type OrderInput struct {
	CustomerName    *string          `json:"customer_name" validate:"required" example:"Jane Doe"`
	CustomerPhone   *string          `json:"customer_phone" validate:"required" example:"+1 555 0100"`
	CustomerAddress *string          `json:"customer_address" validate:"required" example:"1 Main St"`
	Items           []OrderItemInput `json:"items" validate:"required,dive"`
	Subtotal        *float64         `json:"subtotal" validate:"required,gte=0" example:"19"`
	DeliveryFee     *float64         `json:"delivery_fee" validate:"omitempty,gte=0" nullable:"false" example:"2.5"`
	Total           *float64         `json:"total" validate:"required,gte=0" example:"21.5"`
	Status          *string          `json:"status" nullable:"false" example:"pending"`
}

// Validate checks the input and returns the Order with defaults applied
func (in OrderInput) Validate() (Order, error) {
	if err := validateStruct(in); err != nil {
		return Order{}, err
	}

	items := make([]OrderItem, 0, len(in.Items))
	for _, item := range in.Items {
		items = append(items, OrderItem{
			PizzaID:   *item.PizzaID,
			Size:      *item.Size,
			Quantity:  valueOr(item.Quantity, 1),
			UnitPrice: *item.UnitPrice,
			Name:      *item.Name,
		})
	}

	return Order{
		CustomerName:    *in.CustomerName,
		CustomerPhone:   *in.CustomerPhone,
		CustomerAddress: *in.CustomerAddress,
		Items:           items,
		Subtotal:        *in.Subtotal,
		DeliveryFee:     valueOr(in.DeliveryFee, 0),
		Total:           *in.Total,
		Status:          valueOr(in.Status, OrderStatusPending),
	}, nil
}
