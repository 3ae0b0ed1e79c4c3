package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/legajos-pro/internal/domain"
	"github.com/tu-usuario/legajos-pro/internal/domain/entity"
	"github.com/tu-usuario/legajos-pro/internal/domain/repository"
)

var _ repository.LegajoRepository = (*LegajoRepo)(nil)

// LegajoRepo implementación de LegajoRepository (usable con pool o tx).
type LegajoRepo struct {
	q Querier
}

// NewLegajoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLegajoRepository(q Querier) *LegajoRepo {
	return &LegajoRepo{q: q}
}

// Crear persiste un nuevo legajo y asigna el ID generado sobre la entidad.
func (r *LegajoRepo) Crear(ctx context.Context, l *entity.Legajo) error {
	query := `
		INSERT INTO legajo (nro_legajo, categoria, estado, fecha_alta, observaciones)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		l.NroLegajo, l.Categoria, string(l.Estado), l.FechaAlta, l.Observaciones,
	).Scan(&l.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert legajo: %w", err)
	}
	if l.ID <= 0 {
		return fmt.Errorf("insert legajo: la base no devolvió un ID generado")
	}
	return nil
}

// ActualizarCategoria modifica solo la categoría de un legajo activo.
// Ejecución única con control de filas afectadas.
func (r *LegajoRepo) ActualizarCategoria(ctx context.Context, id int64, categoria string) error {
	query := `UPDATE legajo SET categoria = $2 WHERE id = $1 AND eliminado = FALSE`
	tag, err := r.q.Exec(ctx, query, id, categoria)
	if err != nil {
		return fmt.Errorf("update categoria legajo %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("legajo %d no existe o está eliminado: %w", id, domain.ErrNotFound)
	}
	return nil
}

// CambiarEstado modifica solo el estado; operación dedicada, no forma parte
// de la actualización general.
func (r *LegajoRepo) CambiarEstado(ctx context.Context, id int64, estado entity.Estado) error {
	query := `UPDATE legajo SET estado = $2 WHERE id = $1 AND eliminado = FALSE`
	tag, err := r.q.Exec(ctx, query, id, string(estado))
	if err != nil {
		return fmt.Errorf("update estado legajo %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("legajo %d no existe o está eliminado: %w", id, domain.ErrNotFound)
	}
	return nil
}

// Eliminar marca la baja lógica. Falla si la fila no existe o ya estaba eliminada.
func (r *LegajoRepo) Eliminar(ctx context.Context, id int64) error {
	query := `UPDATE legajo SET eliminado = TRUE WHERE id = $1 AND eliminado = FALSE`
	tag, err := r.q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("eliminar legajo %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("legajo %d ya estaba eliminado o no existe: %w", id, domain.ErrNotFound)
	}
	return nil
}

// BuscarPorID obtiene un legajo activo por ID, o (nil, nil) si no existe.
func (r *LegajoRepo) BuscarPorID(ctx context.Context, id int64) (*entity.Legajo, error) {
	query := `
		SELECT id, nro_legajo, categoria, estado, fecha_alta, observaciones
		FROM legajo
		WHERE id = $1 AND eliminado = FALSE`
	l, err := scanLegajo(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get legajo %d: %w", id, err)
	}
	return l, nil
}

// ListarActivos devuelve los legajos no eliminados con estado ACTIVO.
func (r *LegajoRepo) ListarActivos(ctx context.Context) ([]*entity.Legajo, error) {
	query := `
		SELECT id, nro_legajo, categoria, estado, fecha_alta, observaciones
		FROM legajo
		WHERE eliminado = FALSE AND UPPER(estado) = 'ACTIVO'
		ORDER BY id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listar legajos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Legajo
	for rows.Next() {
		l, err := scanLegajo(rows)
		if err != nil {
			return nil, fmt.Errorf("scan legajo: %w", err)
		}
		list = append(list, l)
	}
	return list, rows.Err()
}

func scanLegajo(row pgx.Row) (*entity.Legajo, error) {
	var (
		l         entity.Legajo
		categoria *string
		estado    string
	)
	err := row.Scan(&l.ID, &l.NroLegajo, &categoria, &estado, &l.FechaAlta, &l.Observaciones)
	if err != nil {
		return nil, err
	}
	if categoria != nil {
		l.Categoria = *categoria
	}
	l.Estado = entity.Estado(estado)
	return &l, nil
}
