package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/pizza-order-api/internal/models"
	"github.com/franciscosanchezn/pizza-order-api/internal/services"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// OrderReceivedStatus acknowledges an accepted order. It is unrelated to the stored order status.
const OrderReceivedStatus = "received"

// OrderController handles HTTP requests related to orders
type OrderController interface {
	// CreateOrder places a new order
	CreateOrder(c *gin.Context)
	// GetAllOrders retrieves all orders
	GetAllOrders(c *gin.Context)
}

type orderController struct {
	service services.OrderService
}

// NewOrderController creates a new instance of OrderController
func NewOrderController(service services.OrderService) OrderController {
	return &orderController{service: service}
}

// OrderReceivedResponse is returned once an order has been stored
type OrderReceivedResponse struct {
	ID     string `json:"id" example:"665f1c2e8b3e4a0012345678"`
	Status string `json:"status" example:"received"`
}

// CreateOrder godoc
// @Summary Place an order
// @Description Store a customer order. Orders without items are rejected.
// @Tags orders
// @Accept json
// @Produce json
// @Param order body models.OrderInput true "Order object"
// @Success 200 {object} OrderReceivedResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Failure 503 {object} models.ErrorResponse
// @Router /api/orders [post]
func (c *orderController) CreateOrder(ctx *gin.Context) {
	var input models.OrderInput
	if err := bindInput(ctx, &input); err != nil {
		respondWithError(ctx, err)
		return
	}

	order, err := input.Validate()
	if err != nil {
		respondWithError(ctx, err)
		return
	}

	id, err := c.service.CreateOrder(ctx.Request.Context(), order)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	log.WithField("order_id", id.String()).Info("Order received")
	ctx.JSON(http.StatusOK, OrderReceivedResponse{ID: id.String(), Status: OrderReceivedStatus})
}

// GetAllOrders godoc
// @Summary Get all orders
// @Description Get every order that has been placed
// @Tags orders
// @Produce json
// @Success 200 {array} models.Order
// @Failure 500 {object} models.ErrorResponse
// @Failure 503 {object} models.ErrorResponse
// @Router /api/orders [get]
func (c *orderController) GetAllOrders(ctx *gin.Context) {
	orders, err := c.service.GetAllOrders(ctx.Request.Context())
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, orders)
}
