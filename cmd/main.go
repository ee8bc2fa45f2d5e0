package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/franciscosanchezn/pizza-order-api/docs" // Import generated docs
	"github.com/franciscosanchezn/pizza-order-api/internal/config"
	"github.com/franciscosanchezn/pizza-order-api/internal/controllers"
	"github.com/franciscosanchezn/pizza-order-api/internal/database"
	"github.com/franciscosanchezn/pizza-order-api/internal/messaging"
	"github.com/franciscosanchezn/pizza-order-api/internal/middleware"
	"github.com/franciscosanchezn/pizza-order-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const shutdownTimeout = 10 * time.Second

// dependencies groups everything the router needs. It is built once at startup and read-only afterwards.
type dependencies struct {
	pizzaController  controllers.PizzaController
	orderController  controllers.OrderController
	systemController controllers.SystemController
	enableSwagger    bool
}

// @title Pizza Order API
// @version 1.0
// @description Menu and order backend for a pizza shop, persisted in a document store
// @host localhost:8000
// @BasePath /
func main() {
	// Load environment variables
	loadDotenvFile()

	// Initialize logger
	setUpLogger()

	// Load configuration
	configuration := loadConfig()
	applyLogLevel(configuration.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize database connection, the API still starts without one
	store := setupDatabase(ctx, configuration)
	if store != nil {
		defer closeStore(store)
	}

	// Initialize order events
	publisher := setupPublisher(configuration)
	defer publisher.Close()

	// Initialize services and controllers
	deps := dependencies{
		pizzaController:  controllers.NewPizzaController(services.NewPizzaService(store)),
		orderController:  controllers.NewOrderController(services.NewOrderService(store, publisher)),
		systemController: controllers.NewSystemController(services.NewDiagnosticsService(store, configuration.DatabaseURL, configuration.DatabaseName)),
		enableSwagger:    config.GetEnvAsType("ENABLE_SWAGGER", true),
	}

	// Initialize Gin router
	router := setupRouter(deps)

	// Start the server
	addr := fmt.Sprintf("%v:%d", configuration.Host, configuration.Port)
	if err := runServer(ctx, addr, router); err != nil {
		log.WithError(err).Error("Server stopped with error")
		os.Exit(1)
	}
	log.Info("Server stopped gracefully")
}

// checkPanicErr checks if an error occurred and panics if it did
func checkPanicErr(err error) {
	if err != nil {
		panic(err)
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger initializes the logger with a JSON formatter and sets the log level based on the environment
func setUpLogger() {
	log.SetFormatter(&log.JSONFormatter{})
	environment := config.GetEnvWithDefault("APP_ENV", "development")
	switch environment {
	case "development":
		log.SetLevel(log.DebugLevel)
	case "production":
		log.SetLevel(log.ErrorLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
}

// applyLogLevel overrides the environment based level when LOG_LEVEL is explicitly set
func applyLogLevel(level string) {
	if os.Getenv("LOG_LEVEL") == "" {
		return
	}
	parsed, err := log.ParseLevel(level)
	if err != nil {
		log.WithField("log_level", level).Warn("Invalid LOG_LEVEL, keeping the environment default")
		return
	}
	log.SetLevel(parsed)
}

// loadConfig loads the application configuration from environment variables
// It returns a Config struct or panics if there is an error
func loadConfig() *config.Config {
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	return conf
}

// setupDatabase opens the document store. Failures are logged and leave the store nil,
// in which case the API answers 503 on data routes and /test reports it.
func setupDatabase(ctx context.Context, conf *config.Config) database.Store {
	if !conf.HasDatabase() {
		return nil
	}

	dbConfig, err := database.NewDatabaseConfig(conf.DatabaseURL, conf.DatabaseName)
	if err != nil {
		log.WithError(err).Error("Invalid database configuration, continuing without database")
		return nil
	}

	store, err := database.InitDatabase(ctx, dbConfig)
	if err != nil {
		log.WithError(err).Error("Failed to initialize database, continuing without database")
		return nil
	}
	log.WithField("db_name", store.Name()).Info("Database initialized")
	return store
}

func closeStore(store database.Store) {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := store.Close(ctx); err != nil {
		log.WithError(err).Warn("Failed to close database connection")
	}
}

// setupPublisher connects to RabbitMQ when RABBITMQ_URL is set, otherwise order events are dropped
func setupPublisher(conf *config.Config) messaging.OrderPublisher {
	if conf.RabbitMQURL == "" {
		log.Info("RABBITMQ_URL not set, order events are disabled")
		return messaging.NewNoopPublisher()
	}

	publisher, err := messaging.NewRabbitPublisher(conf.RabbitMQURL, conf.OrderEventsExchange)
	if err != nil {
		log.WithError(err).Warn("Failed to connect to RabbitMQ, order events are disabled")
		return messaging.NewNoopPublisher()
	}
	return publisher
}

// setupRouter initializes the Gin router and sets up the routes
// It returns the configured router
func setupRouter(deps dependencies) *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestLogger(log.StandardLogger()),
		middleware.CORS(),
	)

	setupRoutes(router, deps)

	return router
}

// setupRoutes defines the routes for the Gin router
func setupRoutes(router *gin.Engine, deps dependencies) {
	router.GET("/", deps.systemController.Root)
	router.GET("/test", deps.systemController.Diagnostics)
	router.GET("/health", deps.systemController.Health)

	api := router.Group("/api")
	{
		api.GET("/pizzas", deps.pizzaController.GetAllPizzas)
		api.POST("/pizzas", deps.pizzaController.CreatePizza)
		api.POST("/pizzas/seed", deps.pizzaController.SeedPizzas)

		api.GET("/orders", deps.orderController.GetAllOrders)
		api.POST("/orders", deps.orderController.CreateOrder)
	}

	// Swagger documentation
	if deps.enableSwagger {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}

// runServer serves until ctx is cancelled, then drains in-flight requests
func runServer(ctx context.Context, addr string, handler http.Handler) error {
	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("Starting server on %s", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("Received shutdown signal")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
