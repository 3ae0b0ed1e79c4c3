package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/tu-usuario/legajos-pro/internal/domain"
	"github.com/tu-usuario/legajos-pro/internal/domain/entity"
	"github.com/tu-usuario/legajos-pro/internal/domain/repository"
)

// fakeStore simula las dos tablas en memoria. Las filas se guardan por copia
// para que el snapshot/restore del runner falso reproduzca el rollback real.
type empleadoRow struct {
	entity.Empleado
	legajoID int64
}

type fakeStore struct {
	empleados      map[int64]*empleadoRow
	legajos        map[int64]*entity.Legajo
	nextEmpleadoID int64
	nextLegajoID   int64
	escrituras     int

	// fallos inyectados por operación, p.ej. "legajo.eliminar"
	fallos map[string]error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		empleados:      make(map[int64]*empleadoRow),
		legajos:        make(map[int64]*entity.Legajo),
		nextEmpleadoID: 1,
		nextLegajoID:   1,
		fallos:         make(map[string]error),
	}
}

func (s *fakeStore) fallo(op string) error {
	if err, ok := s.fallos[op]; ok {
		return err
	}
	return nil
}

func clonarLegajo(l *entity.Legajo) *entity.Legajo {
	if l == nil {
		return nil
	}
	copia := *l
	if l.FechaAlta != nil {
		f := *l.FechaAlta
		copia.FechaAlta = &f
	}
	if l.Observaciones != nil {
		o := *l.Observaciones
		copia.Observaciones = &o
	}
	return &copia
}

func clonarEmpleadoRow(r *empleadoRow) *empleadoRow {
	copia := *r
	if r.Email != nil {
		e := *r.Email
		copia.Email = &e
	}
	if r.FechaIngreso != nil {
		f := *r.FechaIngreso
		copia.FechaIngreso = &f
	}
	if r.Area != nil {
		a := *r.Area
		copia.Area = &a
	}
	copia.Legajo = nil
	return &copia
}

func (s *fakeStore) snapshot() (map[int64]*empleadoRow, map[int64]*entity.Legajo, int64, int64) {
	empleados := make(map[int64]*empleadoRow, len(s.empleados))
	for id, r := range s.empleados {
		empleados[id] = clonarEmpleadoRow(r)
	}
	legajos := make(map[int64]*entity.Legajo, len(s.legajos))
	for id, l := range s.legajos {
		legajos[id] = clonarLegajo(l)
	}
	return empleados, legajos, s.nextEmpleadoID, s.nextLegajoID
}

// fakeEmpleadoRepo implementa repository.EmpleadoRepository sobre fakeStore.
type fakeEmpleadoRepo struct {
	store *fakeStore
}

var _ repository.EmpleadoRepository = (*fakeEmpleadoRepo)(nil)

func (r *fakeEmpleadoRepo) Crear(_ context.Context, e *entity.Empleado) error {
	if err := r.store.fallo("empleado.crear"); err != nil {
		return err
	}
	e.ID = r.store.nextEmpleadoID
	r.store.nextEmpleadoID++
	row := &empleadoRow{Empleado: *e}
	r.store.empleados[e.ID] = clonarEmpleadoRow(row)
	r.store.escrituras++
	return nil
}

func (r *fakeEmpleadoRepo) ActualizarArea(_ context.Context, id int64, area string) error {
	if err := r.store.fallo("empleado.actualizarArea"); err != nil {
		return err
	}
	row, ok := r.store.empleados[id]
	if !ok || row.Eliminado {
		return fmt.Errorf("empleado %d no existe o está eliminado: %w", id, domain.ErrNotFound)
	}
	row.Area = &area
	r.store.escrituras++
	return nil
}

func (r *fakeEmpleadoRepo) AsociarLegajo(_ context.Context, empleadoID, legajoID int64) error {
	if err := r.store.fallo("empleado.asociarLegajo"); err != nil {
		return err
	}
	row, ok := r.store.empleados[empleadoID]
	if !ok {
		return fmt.Errorf("empleado %d no existe: %w", empleadoID, domain.ErrNotFound)
	}
	row.legajoID = legajoID
	r.store.escrituras++
	return nil
}

func (r *fakeEmpleadoRepo) Eliminar(_ context.Context, id int64) error {
	if err := r.store.fallo("empleado.eliminar"); err != nil {
		return err
	}
	row, ok := r.store.empleados[id]
	if !ok || row.Eliminado {
		return fmt.Errorf("empleado %d ya estaba eliminado o no existe: %w", id, domain.ErrNotFound)
	}
	row.Eliminado = true
	r.store.escrituras++
	return nil
}

// armarEmpleado arma la entidad con el legajo unido, como el LEFT JOIN real
// (une el legajo por FK aunque esté eliminado).
func (r *fakeEmpleadoRepo) armarEmpleado(row *empleadoRow) *entity.Empleado {
	e := clonarEmpleadoRow(row).Empleado
	if row.legajoID > 0 {
		if l, ok := r.store.legajos[row.legajoID]; ok {
			e.Legajo = clonarLegajo(l)
		}
	}
	return &e
}

func (r *fakeEmpleadoRepo) BuscarPorID(_ context.Context, id int64) (*entity.Empleado, error) {
	row, ok := r.store.empleados[id]
	if !ok || row.Eliminado {
		return nil, nil
	}
	return r.armarEmpleado(row), nil
}

func (r *fakeEmpleadoRepo) BuscarPorDNI(_ context.Context, dni string) (*entity.Empleado, error) {
	for _, row := range r.store.empleados {
		if !row.Eliminado && row.DNI == dni {
			return r.armarEmpleado(row), nil
		}
	}
	return nil, nil
}

func (r *fakeEmpleadoRepo) ListarActivos(_ context.Context) ([]*entity.Empleado, error) {
	var list []*entity.Empleado
	for _, row := range r.store.empleados {
		if row.Eliminado || row.legajoID <= 0 {
			continue
		}
		l, ok := r.store.legajos[row.legajoID]
		if !ok || !strings.EqualFold(string(l.Estado), string(entity.EstadoActivo)) {
			continue
		}
		list = append(list, r.armarEmpleado(row))
	}
	return list, nil
}

// fakeLegajoRepo implementa repository.LegajoRepository sobre fakeStore.
type fakeLegajoRepo struct {
	store *fakeStore
}

var _ repository.LegajoRepository = (*fakeLegajoRepo)(nil)

func (r *fakeLegajoRepo) Crear(_ context.Context, l *entity.Legajo) error {
	if err := r.store.fallo("legajo.crear"); err != nil {
		return err
	}
	l.ID = r.store.nextLegajoID
	r.store.nextLegajoID++
	r.store.legajos[l.ID] = clonarLegajo(l)
	r.store.escrituras++
	return nil
}

func (r *fakeLegajoRepo) ActualizarCategoria(_ context.Context, id int64, categoria string) error {
	if err := r.store.fallo("legajo.actualizarCategoria"); err != nil {
		return err
	}
	l, ok := r.store.legajos[id]
	if !ok || l.Eliminado {
		return fmt.Errorf("legajo %d no existe o está eliminado: %w", id, domain.ErrNotFound)
	}
	l.Categoria = categoria
	r.store.escrituras++
	return nil
}

func (r *fakeLegajoRepo) CambiarEstado(_ context.Context, id int64, estado entity.Estado) error {
	if err := r.store.fallo("legajo.cambiarEstado"); err != nil {
		return err
	}
	l, ok := r.store.legajos[id]
	if !ok || l.Eliminado {
		return fmt.Errorf("legajo %d no existe o está eliminado: %w", id, domain.ErrNotFound)
	}
	l.Estado = estado
	r.store.escrituras++
	return nil
}

func (r *fakeLegajoRepo) Eliminar(_ context.Context, id int64) error {
	if err := r.store.fallo("legajo.eliminar"); err != nil {
		return err
	}
	l, ok := r.store.legajos[id]
	if !ok || l.Eliminado {
		return fmt.Errorf("legajo %d ya estaba eliminado o no existe: %w", id, domain.ErrNotFound)
	}
	l.Eliminado = true
	r.store.escrituras++
	return nil
}

func (r *fakeLegajoRepo) BuscarPorID(_ context.Context, id int64) (*entity.Legajo, error) {
	l, ok := r.store.legajos[id]
	if !ok || l.Eliminado {
		return nil, nil
	}
	return clonarLegajo(l), nil
}

func (r *fakeLegajoRepo) ListarActivos(_ context.Context) ([]*entity.Legajo, error) {
	var list []*entity.Legajo
	for _, l := range r.store.legajos {
		if !l.Eliminado && strings.EqualFold(string(l.Estado), string(entity.EstadoActivo)) {
			list = append(list, clonarLegajo(l))
		}
	}
	return list, nil
}

// fakeTxRunner toma un snapshot del store antes de fn y lo restaura si fn
// falla: el equivalente en memoria del rollback.
type fakeTxRunner struct {
	store *fakeStore
}

var _ TxRunner = (*fakeTxRunner)(nil)

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	empleados repository.EmpleadoRepository,
	legajos repository.LegajoRepository,
) error) error {
	empleados, legajos, nextE, nextL := r.store.snapshot()
	err := fn(&fakeEmpleadoRepo{store: r.store}, &fakeLegajoRepo{store: r.store})
	if err != nil {
		r.store.empleados = empleados
		r.store.legajos = legajos
		r.store.nextEmpleadoID = nextE
		r.store.nextLegajoID = nextL
		return err
	}
	return nil
}

// entorno de prueba: store + repos autónomos + runner, como arma main.
type fixture struct {
	store     *fakeStore
	empleados *fakeEmpleadoRepo
	legajos   *fakeLegajoRepo
	tx        *fakeTxRunner
}

func newFixture() *fixture {
	store := newFakeStore()
	return &fixture{
		store:     store,
		empleados: &fakeEmpleadoRepo{store: store},
		legajos:   &fakeLegajoRepo{store: store},
		tx:        &fakeTxRunner{store: store},
	}
}
