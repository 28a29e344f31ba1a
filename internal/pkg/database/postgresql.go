package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrResourceExhausted reports that the database refused work for capacity
// reasons (connection limit, memory, disk). Batch writers treat it as fatal.
var ErrResourceExhausted = errors.New("database resources exhausted")

type DB struct {
	*pgxpool.Pool
}

func NewPostgreSQLDB(dsn string, maxConns, minConns int32) (*DB, error) {
	config, err := pgxpool.ParseConfig(dsn)

	if err != nil {
		return nil, err
	}

	// Connection pool settings
	config.MaxConns = maxConns
	config.MinConns = minConns

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(context.Background()); err != nil {
		pool.Close()
		return nil, Classify(err)
	}

	return &DB{Pool: pool}, nil
}

func (db *DB) BeginTx(ctx context.Context) (pgx.Tx, error) {
	return db.Pool.Begin(ctx)
}

type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, arguments ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error)
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

// IsResourceExhausted reports whether err carries a PostgreSQL
// insufficient_resources class error (SQLSTATE 53xxx, e.g. 53300 too_many_connections).
func IsResourceExhausted(err error) bool {
	if errors.Is(err, ErrResourceExhausted) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return strings.HasPrefix(pgErr.Code, "53")
	}
	return false
}

// Classify wraps capacity failures with ErrResourceExhausted and returns other errors unchanged.
func Classify(err error) error {
	if err == nil || errors.Is(err, ErrResourceExhausted) {
		return err
	}
	if IsResourceExhausted(err) {
		return fmt.Errorf("%w: %w", ErrResourceExhausted, err)
	}
	return err
}
