package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-chat-cipher/internal/config"
	"github.com/MKhiriev/go-chat-cipher/internal/logger"
	"github.com/MKhiriev/go-chat-cipher/migrations"
)

// DB is a database handle bound to one SQL dialect.
type DB struct {
	*sql.DB
	dialect            string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens the backend selected by cfg.DSN: PostgreSQL for
// "postgres://" and "postgresql://" URLs, SQLite for anything else.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch dialectFromDSN(cfg.DSN) {
	case migrations.DialectPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case migrations.DialectSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, ErrUnsupportedDSN
	}
}

func dialectFromDSN(dsn string) string {
	switch {
	case dsn == "":
		return ""
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return migrations.DialectPostgres
	default:
		return migrations.DialectSQLite
	}
}

func newDB(conn *sql.DB, dialect string, classifier ErrorClassificator, log *logger.Logger) *DB {
	var format sq.PlaceholderFormat = sq.Question
	if dialect == migrations.DialectPostgres {
		format = sq.Dollar
	}

	return &DB{
		DB:                 conn,
		dialect:            dialect,
		builder:            sq.StatementBuilder.PlaceholderFormat(format),
		errorClassificator: classifier,
		logger:             log,
	}
}

// Dialect returns the migrations dialect of the connection.
func (db *DB) Dialect() string {
	return db.dialect
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// unavailable wraps a driver error with ErrStoreUnavailable and the
// operation sentinel op.
func (db *DB) unavailable(op error, err error) error {
	if db.errorClassificator != nil && db.errorClassificator.Classify(err) == Retryable {
		db.logger.Warn().Err(err).Msg("transient database error")
	}

	return fmt.Errorf("%w: %w: %w", ErrStoreUnavailable, op, err)
}
