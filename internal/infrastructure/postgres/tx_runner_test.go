package postgres

import (
	"context"
	"errors"
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/legajos-pro/internal/domain/repository"
	"github.com/tu-usuario/legajos-pro/pkg/logger"
)

func TestTxRunner_Commit(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	runner := NewTxRunner(mock, logger.Nop())

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE empleado SET eliminado = TRUE`).
		WithArgs(int64(7)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(`UPDATE legajo SET eliminado = TRUE`).
		WithArgs(int64(3)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()

	err = runner.Run(context.Background(), func(empleados repository.EmpleadoRepository, legajos repository.LegajoRepository) error {
		if err := empleados.Eliminar(context.Background(), 7); err != nil {
			return err
		}
		return legajos.Eliminar(context.Background(), 3)
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTxRunner_RollbackAnteFallo(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	runner := NewTxRunner(mock, logger.Nop())
	falloSimulado := errors.New("fallo simulado")

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE empleado SET eliminado = TRUE`).
		WithArgs(int64(7)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectRollback()

	err = runner.Run(context.Background(), func(empleados repository.EmpleadoRepository, legajos repository.LegajoRepository) error {
		if err := empleados.Eliminar(context.Background(), 7); err != nil {
			return err
		}
		return falloSimulado
	})
	require.ErrorIs(t, err, falloSimulado, "el error original nunca se enmascara")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTxRunner_ErrorAlIniciar(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	runner := NewTxRunner(mock, logger.Nop())

	mock.ExpectBegin().WillReturnError(errors.New("sin conexión"))

	err = runner.Run(context.Background(), func(repository.EmpleadoRepository, repository.LegajoRepository) error {
		t.Fatal("fn no debe ejecutarse si Begin falla")
		return nil
	})
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
