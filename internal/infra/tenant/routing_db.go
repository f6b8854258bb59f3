package tenant

import (
	"context"

	sqlc "amenity-booking/internal/infra/sqlc/generated"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PoolResolver interface {
	Pool(ctx context.Context) (*pgxpool.Pool, error)
}

// RoutingDB sends each statement to the pool of the tenant in ctx.
type RoutingDB struct {
	pools PoolResolver
}

var _ sqlc.DBTX = (*RoutingDB)(nil)

func NewRoutingDB(pools PoolResolver) *RoutingDB {
	return &RoutingDB{pools: pools}
}

func (d *RoutingDB) Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error) {
	pool, err := d.pools.Pool(ctx)
	if err != nil {
		return pgconn.CommandTag{}, err
	}
	return pool.Exec(ctx, sql, args...)
}

func (d *RoutingDB) Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error) {
	pool, err := d.pools.Pool(ctx)
	if err != nil {
		return nil, err
	}
	return pool.Query(ctx, sql, args...)
}

func (d *RoutingDB) QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row {
	pool, err := d.pools.Pool(ctx)
	if err != nil {
		return errRow{err: err}
	}
	return pool.QueryRow(ctx, sql, args...)
}

type errRow struct {
	err error
}

func (r errRow) Scan(...any) error {
	return r.err
}
