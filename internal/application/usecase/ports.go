package usecase

import (
	"context"

	"github.com/tu-usuario/legajos-pro/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción: los repos recibidos quedan
// atados a la misma conexión y el conjunto se confirma o revierte como unidad.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		empleados repository.EmpleadoRepository,
		legajos repository.LegajoRepository,
	) error) error
}
