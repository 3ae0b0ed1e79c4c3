package repository

import (
	"context"

	"github.com/tu-usuario/legajos-pro/internal/domain/entity"
)

// LegajoRepository define el puerto de persistencia para Legajo.
type LegajoRepository interface {
	// Crear inserta el legajo y escribe el ID generado sobre la entidad.
	Crear(ctx context.Context, l *entity.Legajo) error
	// ActualizarCategoria modifica únicamente la categoría.
	ActualizarCategoria(ctx context.Context, id int64, categoria string) error
	// CambiarEstado modifica únicamente el estado de un legajo no eliminado.
	CambiarEstado(ctx context.Context, id int64, estado entity.Estado) error
	// Eliminar marca la baja lógica; falla si la fila no existe o ya estaba eliminada.
	Eliminar(ctx context.Context, id int64) error
	// BuscarPorID devuelve el legajo activo, o (nil, nil) si no existe.
	BuscarPorID(ctx context.Context, id int64) (*entity.Legajo, error)
	// ListarActivos devuelve los legajos no eliminados con estado ACTIVO.
	ListarActivos(ctx context.Context) ([]*entity.Legajo, error)
}
