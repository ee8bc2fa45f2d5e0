package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/pizza-order-api/internal/models"
	"github.com/franciscosanchezn/pizza-order-api/internal/services"
	"github.com/gin-gonic/gin"
)

// PizzaController handles HTTP requests related to pizzas
type PizzaController interface {
	// GetAllPizzas retrieves all pizzas
	GetAllPizzas(c *gin.Context)
	// CreatePizza creates a new pizza
	CreatePizza(c *gin.Context)
	// SeedPizzas fills an empty menu with the default pizzas
	SeedPizzas(c *gin.Context)
}

type pizzaController struct {
	service services.PizzaService
}

// NewPizzaController creates a new instance of PizzaController
func NewPizzaController(service services.PizzaService) PizzaController {
	return &pizzaController{service: service}
}

// CreatedResponse is returned when a document has been stored
type CreatedResponse struct {
	ID string `json:"id" example:"665f1c2e8b3e4a0012345678"`
}

// GetAllPizzas godoc
// @Summary Get all pizzas
// @Description Get every pizza on the menu
// @Tags pizzas
// @Produce json
// @Success 200 {array} models.Pizza
// @Failure 500 {object} models.ErrorResponse
// @Failure 503 {object} models.ErrorResponse
// @Router /api/pizzas [get]
func (c *pizzaController) GetAllPizzas(ctx *gin.Context) {
	pizzas, err := c.service.GetAllPizzas(ctx.Request.Context())
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, pizzas)
}

// CreatePizza godoc
// @Summary Create a new pizza
// @Description Create a new pizza with the input payload
// @Tags pizzas
// @Accept json
// @Produce json
// @Param pizza body models.PizzaInput true "Pizza object"
// @Success 200 {object} CreatedResponse
// @Failure 422 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Failure 503 {object} models.ErrorResponse
// @Router /api/pizzas [post]
func (c *pizzaController) CreatePizza(ctx *gin.Context) {
	var input models.PizzaInput
	if err := bindInput(ctx, &input); err != nil {
		respondWithError(ctx, err)
		return
	}

	pizza, err := input.Validate()
	if err != nil {
		respondWithError(ctx, err)
		return
	}

	id, err := c.service.CreatePizza(ctx.Request.Context(), pizza)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, CreatedResponse{ID: id.String()})
}

// SeedPizzas godoc
// @Summary Seed the menu
// @Description Insert the default pizzas when the menu is empty
// @Tags pizzas
// @Produce json
// @Success 200 {object} services.SeedResult
// @Failure 500 {object} models.ErrorResponse
// @Failure 503 {object} models.ErrorResponse
// @Router /api/pizzas/seed [post]
func (c *pizzaController) SeedPizzas(ctx *gin.Context) {
	result, err := c.service.SeedPizzas(ctx.Request.Context())
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}
