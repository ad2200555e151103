package repositories

import (
	"context"

	"github.com/jackc/pgconn"
)

// DB is the slice of *pgxpool.Pool the repositories need.
type DB interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Ping(ctx context.Context) error
}
