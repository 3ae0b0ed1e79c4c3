package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier abstrae la ejecución de consultas: lo satisfacen *pgxpool.Pool
// (forma autónoma, autocommit implícito) y pgx.Tx (forma transaccional).
// Los repositorios se construyen sobre un Querier y funcionan igual en ambas.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}
