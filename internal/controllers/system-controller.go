package controllers

import (
	"net/http"
	"time"

	"github.com/franciscosanchezn/pizza-order-api/internal/services"
	"github.com/gin-gonic/gin"
)

const serviceName = "pizza-order-api"

// SystemController serves the root banner, diagnostics and health endpoints
type SystemController interface {
	// Root reports that the API is running
	Root(c *gin.Context)
	// Diagnostics reports backend and database reachability
	Diagnostics(c *gin.Context)
	// Health is a liveness probe
	Health(c *gin.Context)
}

type systemController struct {
	diagnostics services.DiagnosticsService
	now         func() time.Time
}

// NewSystemController creates a new instance of SystemController
func NewSystemController(diagnostics services.DiagnosticsService) SystemController {
	return &systemController{diagnostics: diagnostics, now: time.Now}
}

// Root godoc
// @Summary API banner
// @Tags system
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func (c *systemController) Root(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"message": "Pizza API running"})
}

// Diagnostics godoc
// @Summary Environment diagnostics
// @Description Report backend status, database reachability and up to 10 collection names.
// @Description Database errors are reported inline and never fail the request.
// @Tags system
// @Produce json
// @Success 200 {object} services.DiagnosticsReport
// @Router /test [get]
func (c *systemController) Diagnostics(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.diagnostics.Report(ctx.Request.Context()))
}

// Health godoc
// @Summary Health check
// @Description Check if the service is running
// @Tags system
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (c *systemController) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": c.now().UTC().Format(time.RFC3339),
		"service":   serviceName,
	})
}
