package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"fleet-admin/internal/config"
	"fleet-admin/internal/models"

	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DB struct {
	*gorm.DB
	config *config.DatabaseConfig
}

func New(cfg *config.DatabaseConfig) (*DB, error) {
	logLevel := logger.Warn
	if cfg.LogQueries {
		logLevel = logger.Info
	}

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxConnections)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{
		DB:     db,
		config: cfg,
	}, nil
}

// OpenSQL opens a plain database/sql handle over lib/pq. The migrate command uses it so
// schema changes do not depend on the ORM connection pool.
func OpenSQL(cfg *config.DatabaseConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)
	return db, nil
}

func (db *DB) AutoMigrate() error {
	return db.DB.AutoMigrate(
		&models.Customer{},
		&models.UserRole{},
		&models.User{},
		&models.Account{},
		&models.UserAccount{},
	)
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// HealthCheck pings the database
func (db *DB) HealthCheck(ctx context.Context) error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (db *DB) CreateIndexes() error {
	queries := []string{
		"CREATE INDEX IF NOT EXISTS idx_accounts_customer_id ON accounts(customer_id)",
		"CREATE INDEX IF NOT EXISTS idx_accounts_parent_account_id ON accounts(parent_account_id) WHERE parent_account_id IS NOT NULL",
		"CREATE INDEX IF NOT EXISTS idx_accounts_live ON accounts(customer_id, account_id) WHERE is_deleted = false",
		"CREATE INDEX IF NOT EXISTS idx_accounts_account_name_lower ON accounts(LOWER(account_name))",
		"CREATE INDEX IF NOT EXISTS idx_accounts_account_number_lower ON accounts(LOWER(account_number))",
		"CREATE INDEX IF NOT EXISTS idx_users_customer_id ON users(customer_id)",
		"CREATE INDEX IF NOT EXISTS idx_users_first_name_lower ON users(LOWER(first_name))",
		"CREATE INDEX IF NOT EXISTS idx_users_last_name_lower ON users(LOWER(last_name))",
		"CREATE INDEX IF NOT EXISTS idx_users_email_lower ON users(LOWER(email))",
		"CREATE INDEX IF NOT EXISTS idx_user_accounts_account_id ON user_accounts(account_id)",
		"CREATE INDEX IF NOT EXISTS idx_customers_customer_name_lower ON customers(LOWER(customer_name))",
		"CREATE INDEX IF NOT EXISTS idx_customers_live ON customers(customer_id) WHERE is_deleted = false",
	}

	for _, query := range queries {
		if err := db.DB.Exec(query).Error; err != nil {
			slog.Warn("Failed to create index", "query", query, "error", err)
		}
	}

	return nil
}

// Initialize creates and configures the database connection
func Initialize(cfg *config.Config) (*DB, error) {
	db, err := New(&cfg.Database)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	if err := RunMigrationsIfEnabled(sqlDB); err != nil {
		slog.Warn("Migration runner failed, falling back to GORM AutoMigrate", "error", err)

		if err := db.AutoMigrate(); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	if err := db.CreateIndexes(); err != nil {
		slog.Warn("Failed to create some indexes", "error", err)
	}

	slog.Info("Database initialized successfully")

	return db, nil
}
