package repository

import (
	"context"

	"github.com/tu-usuario/legajos-pro/internal/domain/entity"
)

// EmpleadoRepository define el puerto de persistencia para Empleado.
// Las implementaciones no validan ni razonan sobre otras entidades; solo
// traducen operaciones a sentencias parametrizadas.
type EmpleadoRepository interface {
	// Crear inserta el empleado y escribe el ID generado sobre la entidad.
	Crear(ctx context.Context, e *entity.Empleado) error
	// ActualizarArea modifica únicamente el área (política de campos restringidos).
	ActualizarArea(ctx context.Context, id int64, area string) error
	// AsociarLegajo setea la FK legajo_id del empleado.
	AsociarLegajo(ctx context.Context, empleadoID, legajoID int64) error
	// Eliminar marca la baja lógica; falla si la fila no existe o ya estaba eliminada.
	Eliminar(ctx context.Context, id int64) error
	// BuscarPorID devuelve el empleado activo con su legajo, o (nil, nil) si no existe.
	BuscarPorID(ctx context.Context, id int64) (*entity.Empleado, error)
	// BuscarPorDNI devuelve el empleado activo con ese DNI, o (nil, nil).
	BuscarPorDNI(ctx context.Context, dni string) (*entity.Empleado, error)
	// ListarActivos devuelve los empleados no eliminados cuyo legajo está ACTIVO.
	ListarActivos(ctx context.Context) ([]*entity.Empleado, error)
}
