package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/config"
	"github.com/SergeyBogomolovv/storefront-checkout/pkg/utils"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

const pingTimeout = 2 * time.Second

// DefaultConnectRetry covers a database container that is still starting.
var DefaultConnectRetry = utils.RetryConfig{
	MaxAttempts:  5,
	InitialDelay: 200 * time.Millisecond,
	MaxDelay:     3 * time.Second,
	Multiplier:   2,
}

// New opens the order store and waits until it answers a ping.
func New(ctx context.Context, logger *slog.Logger, cfg config.Postgres, retry utils.RetryConfig) (*sqlx.DB, error) {
	logger = logger.With(slog.String("component", "postgres"), slog.String("host", cfg.Host), slog.String("db", cfg.DBName))

	db, err := sqlx.Open("postgres", DSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	attempt := 0
	err = utils.Retry(ctx, retry, func() error {
		attempt++
		pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
		defer cancel()
		if err := db.PingContext(pingCtx); err != nil {
			logger.WarnContext(ctx, "db not ready", slog.Int("attempt", attempt), slog.Any("error", err))
			return err
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping db: %w", err)
	}

	logger.InfoContext(ctx, "postgres connected", slog.Int("attempts", attempt))
	return db, nil
}

// DSN renders a libpq keyword/value string. Values are quoted so passwords
// with spaces or quotes survive.
func DSN(cfg config.Postgres) string {
	pairs := [][2]string{
		{"host", cfg.Host},
		{"port", strconv.Itoa(cfg.Port)},
		{"user", cfg.User},
		{"password", cfg.Password},
		{"dbname", cfg.DBName},
		{"sslmode", cfg.SSLMode},
	}

	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		parts = append(parts, p[0]+"="+quote(p[1]))
	}
	return strings.Join(parts, " ")
}

func quote(v string) string {
	if v != "" && !strings.ContainsAny(v, ` '\`) {
		return v
	}
	r := strings.NewReplacer(`\`, `\\`, `'`, `\'`)
	return "'" + r.Replace(v) + "'"
}
