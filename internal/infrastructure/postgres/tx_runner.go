package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/legajos-pro/internal/application/usecase"
	"github.com/tu-usuario/legajos-pro/internal/domain/repository"
	"github.com/tu-usuario/legajos-pro/pkg/logger"
)

// Ensure TxRunner implements usecase.TxRunner.
var _ usecase.TxRunner = (*TxRunner)(nil)

// beginner lo satisfacen *pgxpool.Pool y el pool de pgxmock en tests.
type beginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	db  beginner
	log *logger.Logger
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(db beginner, log *logger.Logger) *TxRunner {
	return &TxRunner{db: db, log: log}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback. Un fallo del rollback se loguea pero nunca enmascara
// el error original.
func (r *TxRunner) Run(ctx context.Context, fn func(
	empleados repository.EmpleadoRepository,
	legajos repository.LegajoRepository,
) error) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	empleados := NewEmpleadoRepository(tx)
	legajos := NewLegajoRepository(tx)

	if err := fn(empleados, legajos); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			r.log.Error().Err(rbErr).Msg("fallo el rollback de la transacción")
		}
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
