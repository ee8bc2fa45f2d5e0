package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
}

// pingTimeout bounds the reachability check done when a store is opened
const pingTimeout = 5 * time.Second

// InitDatabase opens the document store selected by the configuration driver.
// A single attempt is made; callers decide how to degrade when it fails.
func InitDatabase(ctx context.Context, cfg DatabaseConfig) (Store, error) {
	log.WithFields(logrus.Fields{
		"db_driver": cfg.Driver,
		"db_name":   cfg.Name,
		"db_url":    MaskURL(cfg.URL),
	}).Info("Initializing database connection")

	switch cfg.Driver {
	case DriverMongo:
		store, err := NewMongoStore(ctx, cfg)
		if err != nil {
			return nil, err
		}
		// The driver connects lazily, an unreachable server only degrades the diagnostics report
		pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
		defer cancel()
		if err := store.Ping(pingCtx); err != nil {
			log.WithError(err).Warn("MongoDB is not reachable yet")
		} else {
			log.WithField("db_name", store.Name()).Info("MongoDB connected")
		}
		return store, nil

	case DriverPostgres, DriverSQLite:
		store, err := openSQLStore(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return store, nil

	default:
		return nil, fmt.Errorf("unsupported database driver: %s (supported: mongodb, postgres, sqlite)", cfg.Driver)
	}
}

func openSQLStore(ctx context.Context, cfg DatabaseConfig) (*SQLStore, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case DriverPostgres:
		log.WithField("db_name", cfg.Name).Debug("Connecting to PostgreSQL")
		dialector = postgres.Open(cfg.DSN())
	default:
		log.WithField("db_path", cfg.Path).Debug("Connecting to SQLite")
		dialector = sqlite.Open(cfg.DSN())
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", cfg.Driver, err)
	}

	store, err := prepareSQLStore(ctx, db, cfg)
	if err != nil {
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"db_driver": cfg.Driver,
		"db_name":   cfg.Name,
	}).Info("Database initialized successfully")
	return store, nil
}

// prepareSQLStore checks the opened database and creates the documents table.
// The connection pool is closed when any step fails.
func prepareSQLStore(ctx context.Context, db *gorm.DB, cfg DatabaseConfig) (*SQLStore, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		closeSQLDB(sqlDB, cfg.Driver)
		return nil, fmt.Errorf("failed to ping %s database: %w", cfg.Driver, err)
	}

	configureConnectionPool(sqlDB, cfg.Driver)

	store, err := NewSQLStore(db, cfg.Name)
	if err != nil {
		closeSQLDB(sqlDB, cfg.Driver)
		return nil, err
	}
	return store, nil
}

func closeSQLDB(sqlDB *sql.DB, driver string) {
	if err := sqlDB.Close(); err != nil {
		log.WithError(err).WithField("db_driver", driver).Warn("Failed to close database after setup error")
	}
}

// configureConnectionPool sets up connection pool parameters for the SQL drivers
func configureConnectionPool(sqlDB *sql.DB, driver string) {
	if driver == DriverSQLite {
		// In-memory SQLite databases exist per connection
		sqlDB.SetMaxOpenConns(1)
		return
	}

	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	log.WithFields(logrus.Fields{
		"max_open_conns":    25,
		"max_idle_conns":    5,
		"conn_max_lifetime": "5m",
	}).Debug("Connection pool configured")
}
