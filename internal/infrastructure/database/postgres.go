package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DBConfig centralizes everything needed to connect to PostgreSQL.
type DBConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	DBName   string

	// Connection pool tuning
	MaxConns          int32
	MinConns          int32
	MaxConnLifetime   time.Duration
	MaxConnIdleTime   time.Duration
	HealthCheckPeriod time.Duration

	// Retry behavior for the initial connect
	MaxRetries     int
	RetryDelay     time.Duration
	ConnectTimeout time.Duration
}

// PostgresDB wraps the connection pool and its lifecycle.
type PostgresDB struct {
	Pool   *pgxpool.Pool
	Config *DBConfig
}

// NewPostgresDB creates an unconnected instance; call Connect before use.
func NewPostgresDB(config *DBConfig) *PostgresDB {
	return &PostgresDB{
		Config: config,
		Pool:   nil,
	}
}

func (db *PostgresDB) buildConnectionString() string {
	return fmt.Sprintf(
		"postgresql://%s:%s@%s:%d/%s",
		db.Config.Username,
		db.Config.Password,
		db.Config.Host,
		db.Config.Port,
		db.Config.DBName,
	)
}

func (db *PostgresDB) configurePool(ctx context.Context) (*pgxpool.Config, error) {
	config, err := pgxpool.ParseConfig(db.buildConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	config.MaxConns = db.Config.MaxConns
	config.MinConns = db.Config.MinConns
	config.MaxConnLifetime = db.Config.MaxConnLifetime
	config.MaxConnIdleTime = db.Config.MaxConnIdleTime
	config.HealthCheckPeriod = db.Config.HealthCheckPeriod
	config.ConnConfig.ConnectTimeout = db.Config.ConnectTimeout

	return config, nil
}

// connectWithRetry retries the initial connect with exponential backoff
func (db *PostgresDB) connectWithRetry(ctx context.Context, config *pgxpool.Config) (*pgxpool.Pool, error) {
	var pool *pgxpool.Pool
	var lastErr error

	for attempt := 1; attempt <= db.Config.MaxRetries; attempt++ {
		log.Printf("[DATABASE] Connection attempt %d/%d", attempt, db.Config.MaxRetries)

		connectCtx, cancel := context.WithTimeout(ctx, db.Config.ConnectTimeout)
		pool, lastErr = pgxpool.NewWithConfig(connectCtx, config)
		cancel()

		if lastErr == nil {
			if err := pool.Ping(ctx); err != nil {
				pool.Close()
				lastErr = err
				log.Printf("[DATABASE] Ping failed: %v", err)
			} else {
				log.Printf("[DATABASE] Successfully connected on attempt %d", attempt)
				return pool, nil
			}
		}

		log.Printf("[DATABASE] Attempt %d failed: %v", attempt, lastErr)

		if attempt < db.Config.MaxRetries {
			delay := db.Config.RetryDelay * time.Duration(1<<uint(attempt-1))
			log.Printf("[DATABASE] Retrying in %v...", delay)

			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, fmt.Errorf("connection cancelled: %w", ctx.Err())
			}
		}
	}

	return nil, fmt.Errorf("failed to connect after %d attempts: %w",
		db.Config.MaxRetries, lastErr)
}

// Connect establishes the pool: configure -> retry -> verify
func (db *PostgresDB) Connect(ctx context.Context) error {
	log.Println("[DATABASE] Initializing PostgreSQL connection...")

	config, err := db.configurePool(ctx)
	if err != nil {
		return fmt.Errorf("pool configuration failed: %w", err)
	}

	pool, err := db.connectWithRetry(ctx, config)
	if err != nil {
		return fmt.Errorf("connection failed: %w", err)
	}

	db.Pool = pool

	log.Println("[DATABASE] PostgreSQL connection established successfully")
	return nil
}

// Ping verifies the database is reachable; used by health checks
func (db *PostgresDB) Ping(ctx context.Context) error {
	if db.Pool == nil {
		return fmt.Errorf("database pool is not initialized")
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.Pool.Ping(pingCtx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}

	return nil
}

// HealthCheck verifies connectivity and that the pool holds live connections
func (db *PostgresDB) HealthCheck(ctx context.Context) error {
	if err := db.Ping(ctx); err != nil {
		return err
	}

	stats := db.Pool.Stat()
	if stats.TotalConns() == 0 {
		return fmt.Errorf("no active database connections")
	}

	log.Printf("[DATABASE] Health check passed - Total connections: %d, Idle: %d, Acquired: %d",
		stats.TotalConns(),
		stats.IdleConns(),
		stats.AcquiredConns(),
	)

	return nil
}

// Close shuts the pool down; safe to call multiple times
func (db *PostgresDB) Close() error {
	if db.Pool == nil {
		return nil
	}

	log.Println("[DATABASE] Closing database connection pool...")
	db.Pool.Close()
	db.Pool = nil
	return nil
}
