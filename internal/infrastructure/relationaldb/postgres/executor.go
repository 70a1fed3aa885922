// Package postgres executes generated bootstrap scripts against PostgreSQL.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const (
	connectTimeout = 10 * time.Second
	closeTimeout   = 5 * time.Second
)

// Executor implements ports.ScriptExecutor over a single pgx connection.
type Executor struct {
	conn   *pgx.Conn
	logger *zap.Logger
}

// NewExecutor connects to the database at databaseURL.
func NewExecutor(ctx context.Context, databaseURL string, logger *zap.Logger) (*Executor, error) {
	if databaseURL == "" {
		return nil, errors.New("database url is required (set database.url or DATABASE_URL)")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("postgres")

	connConfig, err := pgx.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse pgx config: %w", err)
	}
	// Scripts carry many statements; only the simple protocol accepts that in one Exec.
	connConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol

	connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	conn, err := pgx.ConnectConfig(connectCtx, connConfig)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if err := conn.Ping(connectCtx); err != nil {
		conn.Close(context.Background())
		return nil, fmt.Errorf("ping database: %w", err)
	}

	logger.Info("database connection opened",
		zap.String("url", Redact(databaseURL)),
		zap.String("database", connConfig.Database),
	)

	return &Executor{conn: conn, logger: logger}, nil
}

// Exec runs the whole script as one simple-protocol round trip.
func (e *Executor) Exec(ctx context.Context, script string) error {
	start := time.Now()
	tag, err := e.conn.Exec(ctx, script)
	if err != nil {
		return fmt.Errorf("executing script: %w", err)
	}
	e.logger.Info("script executed",
		zap.String("last_command", tag.String()),
		zap.Duration("elapsed", time.Since(start)),
	)
	return nil
}

// Close closes the database connection.
func (e *Executor) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()
	return e.conn.Close(ctx)
}

// Redact hides the password of a URL-form connection string.
func Redact(databaseURL string) string {
	u, err := url.Parse(databaseURL)
	if err != nil || u.Scheme == "" {
		return "<redacted>"
	}
	return u.Redacted()
}
