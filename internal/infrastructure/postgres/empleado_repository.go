package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/legajos-pro/internal/domain"
	"github.com/tu-usuario/legajos-pro/internal/domain/entity"
	"github.com/tu-usuario/legajos-pro/internal/domain/repository"
)

var _ repository.EmpleadoRepository = (*EmpleadoRepo)(nil)

// EmpleadoRepo implementación de EmpleadoRepository (usable con pool o tx).
type EmpleadoRepo struct {
	q Querier
}

// NewEmpleadoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEmpleadoRepository(q Querier) *EmpleadoRepo {
	return &EmpleadoRepo{q: q}
}

// columnas del SELECT con el legajo unido (LEFT JOIN).
const empleadoConLegajoCols = `
		e.id, e.nombre, e.apellido, e.dni, e.email, e.fecha_ingreso, e.area,
		l.id AS legajo_id, l.nro_legajo, l.categoria, l.estado, l.fecha_alta, l.observaciones`

// Crear persiste un nuevo empleado. Los campos opcionales ausentes se escriben
// como NULL explícito. El ID generado por la BD se asigna sobre la entidad.
func (r *EmpleadoRepo) Crear(ctx context.Context, e *entity.Empleado) error {
	query := `
		INSERT INTO empleado (nombre, apellido, dni, email, fecha_ingreso, area)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		e.Nombre, e.Apellido, e.DNI, e.Email, e.FechaIngreso, e.Area,
	).Scan(&e.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert empleado: %w", err)
	}
	if e.ID <= 0 {
		return fmt.Errorf("insert empleado: la base no devolvió un ID generado")
	}
	return nil
}

// ActualizarArea modifica solo el área de un empleado activo.
func (r *EmpleadoRepo) ActualizarArea(ctx context.Context, id int64, area string) error {
	query := `UPDATE empleado SET area = $2 WHERE id = $1 AND eliminado = FALSE`
	tag, err := r.q.Exec(ctx, query, id, area)
	if err != nil {
		return fmt.Errorf("update area empleado %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("empleado %d no existe o está eliminado: %w", id, domain.ErrNotFound)
	}
	return nil
}

// AsociarLegajo setea la FK legajo_id (paso final del alta transaccional).
func (r *EmpleadoRepo) AsociarLegajo(ctx context.Context, empleadoID, legajoID int64) error {
	query := `UPDATE empleado SET legajo_id = $2 WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, empleadoID, legajoID)
	if err != nil {
		return fmt.Errorf("asociar legajo %d a empleado %d: %w", legajoID, empleadoID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("empleado %d no existe: %w", empleadoID, domain.ErrNotFound)
	}
	return nil
}

// Eliminar marca la baja lógica. Falla si la fila no existe o ya estaba eliminada.
func (r *EmpleadoRepo) Eliminar(ctx context.Context, id int64) error {
	query := `UPDATE empleado SET eliminado = TRUE WHERE id = $1 AND eliminado = FALSE`
	tag, err := r.q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("eliminar empleado %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("empleado %d ya estaba eliminado o no existe: %w", id, domain.ErrNotFound)
	}
	return nil
}

// BuscarPorID obtiene un empleado activo con su legajo, o (nil, nil) si no existe.
func (r *EmpleadoRepo) BuscarPorID(ctx context.Context, id int64) (*entity.Empleado, error) {
	query := `
		SELECT ` + empleadoConLegajoCols + `
		FROM empleado e
		LEFT JOIN legajo l ON e.legajo_id = l.id
		WHERE e.id = $1 AND e.eliminado = FALSE`
	e, err := scanEmpleado(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get empleado %d: %w", id, err)
	}
	return e, nil
}

// BuscarPorDNI obtiene un empleado activo por su DNI, o (nil, nil) si no existe.
func (r *EmpleadoRepo) BuscarPorDNI(ctx context.Context, dni string) (*entity.Empleado, error) {
	query := `
		SELECT ` + empleadoConLegajoCols + `
		FROM empleado e
		LEFT JOIN legajo l ON e.legajo_id = l.id
		WHERE e.eliminado = FALSE AND e.dni = $1`
	e, err := scanEmpleado(r.q.QueryRow(ctx, query, dni))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get empleado por dni: %w", err)
	}
	return e, nil
}

// ListarActivos devuelve los empleados no eliminados cuyo legajo está ACTIVO.
// Un empleado sin legajo, o con legajo no activo, queda fuera del listado
// aunque su propio flag eliminado sea FALSE.
func (r *EmpleadoRepo) ListarActivos(ctx context.Context) ([]*entity.Empleado, error) {
	query := `
		SELECT ` + empleadoConLegajoCols + `
		FROM empleado e
		LEFT JOIN legajo l ON e.legajo_id = l.id
		WHERE e.eliminado = FALSE AND UPPER(l.estado) = 'ACTIVO'
		ORDER BY e.id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listar empleados: %w", err)
	}
	defer rows.Close()
	var list []*entity.Empleado
	for rows.Next() {
		e, err := scanEmpleado(rows)
		if err != nil {
			return nil, fmt.Errorf("scan empleado: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

// scanEmpleado mapea una fila del JOIN empleado+legajo. Un legajo_id NULL o
// cero deja la relación sin setear (Legajo == nil).
func scanEmpleado(row pgx.Row) (*entity.Empleado, error) {
	var (
		e             entity.Empleado
		legajoID      *int64
		nroLegajo     *string
		categoria     *string
		estado        *string
		fechaAlta     *time.Time
		observaciones *string
	)
	err := row.Scan(
		&e.ID, &e.Nombre, &e.Apellido, &e.DNI, &e.Email, &e.FechaIngreso, &e.Area,
		&legajoID, &nroLegajo, &categoria, &estado, &fechaAlta, &observaciones,
	)
	if err != nil {
		return nil, err
	}
	if legajoID != nil && *legajoID > 0 {
		l := &entity.Legajo{
			ID:            *legajoID,
			FechaAlta:     fechaAlta,
			Observaciones: observaciones,
		}
		if nroLegajo != nil {
			l.NroLegajo = *nroLegajo
		}
		if categoria != nil {
			l.Categoria = *categoria
		}
		if estado != nil {
			l.Estado = entity.Estado(*estado)
		}
		e.Legajo = l
	}
	return &e, nil
}
