// Command ledger-setup creates the ledger schema and optionally seeds the
// bootstrap admin account. It is idempotent and safe to run repeatedly.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"github.com/circulib/lending-ledger-go/config"
	"github.com/circulib/lending-ledger-go/ledger"
	"github.com/circulib/lending-ledger-go/ledger/postgresengine"
)

const connectTimeout = 10 * time.Second

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if err := run(context.Background(), logger); err != nil {
		logger.Error("setup failed", "error", err.Error())
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	pool, err := connect(ctx, cfg.Postgres)
	if err != nil {
		return err
	}
	defer pool.Close()

	store, err := postgresengine.NewLedgerStoreFromPGXPool(pool, postgresengine.WithLogger(logger))
	if err != nil {
		return err
	}

	if schemaErr := store.EnsureSchema(ctx); schemaErr != nil {
		return schemaErr
	}

	logger.Info("schema is up to date")

	if cfg.Admin.Password == "" {
		logger.Info("no admin password configured, skipping admin seed")
		return nil
	}

	return seedAdmin(ctx, logger, store, cfg.Admin)
}

func connect(ctx context.Context, cfg config.PostgresConfig) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, err
	}

	poolConfig.MaxConns = cfg.MaxConns
	poolConfig.MinConns = cfg.MinConns
	poolConfig.MaxConnLifetime = cfg.MaxConnLifetime
	poolConfig.MaxConnIdleTime = cfg.MaxConnIdleTime
	poolConfig.ConnConfig.ConnectTimeout = connectTimeout

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, err
	}

	if pingErr := pool.Ping(ctx); pingErr != nil {
		pool.Close()
		return nil, pingErr
	}

	return pool, nil
}

func seedAdmin(
	ctx context.Context,
	logger *slog.Logger,
	store postgresengine.LedgerStore,
	cfg config.AdminSeedConfig,
) error {

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := ledger.User{
		UserID:       uuid.New().String(),
		Username:     cfg.Username,
		PasswordHash: string(passwordHash),
		Role:         ledger.RoleAdmin,
	}

	inserted, err := store.SeedUser(ctx, admin)
	if err != nil {
		return err
	}

	if inserted {
		logger.Info("admin account seeded", "username", cfg.Username)
	} else {
		logger.Info("admin account already exists, nothing to do", "username", cfg.Username)
	}

	return nil
}
