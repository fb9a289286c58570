package database

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/franciscosanchezn/gin-recipe-api/internal/models"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
}

// SetLogLevel adjusts the package logger, normally from config.LogLevel
func SetLogLevel(level string) {
	if lvl, err := logrus.ParseLevel(level); err == nil {
		log.SetLevel(lvl)
	}
}

// dialector picks the gorm driver for cfg.Driver
func dialector(cfg DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case "postgres", "postgresql":
		return postgres.Open(cfg.DSN()), nil
	case "sqlite", "":
		return sqlite.Open(cfg.DSN()), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s (supported: postgres, sqlite)", cfg.Driver)
	}
}

// connect opens the pool and checks it answers a ping
func connect(dial gorm.Dialector, gormConfig *gorm.Config) (*gorm.DB, *sql.DB, error) {
	db, err := gorm.Open(dial, gormConfig)
	if err != nil {
		return nil, nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("get sql.DB: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, nil, fmt.Errorf("ping: %w", err)
	}
	return db, sqlDB, nil
}

// InitDatabase connects to postgres or sqlite, retrying with a doubling delay
// until cfg.ConnectAttempts is used up. In-memory sqlite never retries.
func InitDatabase(cfg DatabaseConfig) (*gorm.DB, error) {
	cfg.Driver = strings.ToLower(cfg.Driver)
	dial, err := dialector(cfg)
	if err != nil {
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"db_driver": cfg.Driver,
		"db_host":   cfg.Host,
		"db_name":   cfg.Name,
		"db_path":   cfg.Path,
	}).Info("Initializing database connection")

	gormConfig := &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)}
	if log.IsLevelEnabled(logrus.DebugLevel) {
		gormConfig.Logger = logger.Default.LogMode(logger.Info)
	}

	attempts, delay := cfg.retryPolicy()
	for attempt := 1; ; attempt++ {
		db, sqlDB, connErr := connect(dial, gormConfig)
		if connErr == nil {
			configureConnectionPool(sqlDB, cfg)
			log.WithFields(logrus.Fields{"db_driver": cfg.Driver, "attempt": attempt}).Info("Database initialized successfully")
			return db, nil
		}

		entry := log.WithError(connErr).WithField("attempt", attempt)
		if attempt >= attempts {
			entry.Error("Giving up on database connection")
			return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", attempt, connErr)
		}
		entry.WithField("delay", delay).Warn("Database connection failed, retrying")
		time.Sleep(delay)
		delay *= 2
	}
}

// configureConnectionPool sets up connection pool parameters
func configureConnectionPool(sqlDB *sql.DB, cfg DatabaseConfig) {
	// Every sqlite ":memory:" connection is a separate database, so pin the pool to one.
	if cfg.IsInMemory() {
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
		log.Debug("In-memory database, connection pool pinned to a single connection")
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

// Migrate creates or updates every table the service uses
func Migrate(db *gorm.DB) error {
	log.Info("Migrating database schema")
	err := db.AutoMigrate(
		&models.User{},
		&models.Tag{},
		&models.Ingredient{},
		&models.Recipe{},
		&models.OAuthClient{},
		&models.OAuthToken{},
	)
	if err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

// Open connects and migrates in one step
func Open(cfg DatabaseConfig) (*gorm.DB, error) {
	db, err := InitDatabase(cfg)
	if err != nil {
		return nil, err
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}
