package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/asaskevich/govalidator"
	"github.com/tu-usuario/legajos-pro/internal/application/dto"
	"github.com/tu-usuario/legajos-pro/internal/domain"
	"github.com/tu-usuario/legajos-pro/internal/domain/entity"
	"github.com/tu-usuario/legajos-pro/internal/domain/repository"
	"github.com/tu-usuario/legajos-pro/pkg/logger"
)

var dniPattern = regexp.MustCompile(`^[0-9]{7,8}$`)

const (
	prefijoNroLegajo    = "LEG"
	categoriaPorDefecto = "JUNIOR"
)

// EmpleadoUseCase aplica reglas de negocio y límites transaccionales sobre
// empleados. Es el único componente que conoce el invariante "un empleado,
// un legajo": alta y baja tocan ambas filas dentro de la misma transacción.
type EmpleadoUseCase struct {
	empleados repository.EmpleadoRepository
	legajos   repository.LegajoRepository
	tx        TxRunner
	log       *logger.Logger
	now       func() time.Time
}

// NewEmpleadoUseCase construye el caso de uso con los puertos de persistencia
// (forma autónoma, para lecturas) y el runner transaccional (para escrituras).
func NewEmpleadoUseCase(
	empleados repository.EmpleadoRepository,
	legajos repository.LegajoRepository,
	tx TxRunner,
	log *logger.Logger,
) *EmpleadoUseCase {
	return &EmpleadoUseCase{
		empleados: empleados,
		legajos:   legajos,
		tx:        tx,
		log:       log,
		now:       time.Now,
	}
}

// Crear da de alta un empleado junto con su legajo en una transacción atómica.
// Secuencia: 1) insertar empleado (obtiene ID), 2) generar nro de legajo a
// partir de ese ID, 3) insertar legajo, 4) asociarlo al empleado.
// Devuelve domain.ErrDuplicate si el DNI ya está registrado; en ese caso no
// se ejecuta ninguna escritura.
func (uc *EmpleadoUseCase) Crear(ctx context.Context, in dto.CrearEmpleadoRequest) (*dto.EmpleadoResponse, error) {
	if err := validarNuevoEmpleado(in); err != nil {
		return nil, err
	}

	dni := strings.TrimSpace(in.DNI)
	existente, err := uc.empleados.BuscarPorDNI(ctx, dni)
	if err != nil {
		return nil, fmt.Errorf("verificar DNI único: %w", err)
	}
	if existente != nil {
		return nil, fmt.Errorf("ya existe un empleado con el DNI %s: %w", dni, domain.ErrDuplicate)
	}

	empleado := &entity.Empleado{
		Nombre:       strings.TrimSpace(in.Nombre),
		Apellido:     strings.TrimSpace(in.Apellido),
		DNI:          dni,
		Email:        trimOpcional(in.Email),
		FechaIngreso: in.FechaIngreso,
		Area:         trimOpcional(in.Area),
	}

	categoria := categoriaPorDefecto
	if c := trimOpcional(in.CategoriaLegajo); c != nil {
		categoria = strings.ToUpper(*c)
	}

	uc.log.Info().Str("dni", dni).Msg("iniciando alta de empleado y legajo")

	err = uc.tx.Run(ctx, func(empleados repository.EmpleadoRepository, legajos repository.LegajoRepository) error {
		if err := empleados.Crear(ctx, empleado); err != nil {
			return fmt.Errorf("insertar empleado: %w", err)
		}

		fechaAlta := uc.now()
		legajo := &entity.Legajo{
			NroLegajo:     fmt.Sprintf("%s%06d", prefijoNroLegajo, empleado.ID),
			Categoria:     categoria,
			Estado:        entity.EstadoActivo,
			FechaAlta:     &fechaAlta,
			Observaciones: trimOpcional(in.Observaciones),
		}
		if err := legajos.Crear(ctx, legajo); err != nil {
			return fmt.Errorf("insertar legajo: %w", err)
		}

		if err := empleados.AsociarLegajo(ctx, empleado.ID, legajo.ID); err != nil {
			return fmt.Errorf("asociar legajo: %w", err)
		}

		empleado.Legajo = legajo
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("alta de empleado: %w", err)
	}

	uc.log.Info().
		Int64("empleado_id", empleado.ID).
		Str("nro_legajo", empleado.Legajo.NroLegajo).
		Msg("empleado y legajo creados")

	return entityToEmpleadoResponse(empleado), nil
}

// ActualizarArea cambia únicamente el área de un empleado existente.
// Devuelve domain.ErrNotFound si el empleado no existe.
func (uc *EmpleadoUseCase) ActualizarArea(ctx context.Context, id int64, area string) error {
	if id <= 0 {
		return fmt.Errorf("el ID del empleado debe ser mayor a 0: %w", domain.ErrInvalidInput)
	}
	area = strings.TrimSpace(area)
	if len(area) < 2 {
		return fmt.Errorf("el área debe tener al menos 2 caracteres: %w", domain.ErrInvalidInput)
	}

	existente, err := uc.empleados.BuscarPorID(ctx, id)
	if err != nil {
		return fmt.Errorf("verificar empleado: %w", err)
	}
	if existente == nil {
		return fmt.Errorf("el empleado con ID %d no existe: %w", id, domain.ErrNotFound)
	}

	err = uc.tx.Run(ctx, func(empleados repository.EmpleadoRepository, _ repository.LegajoRepository) error {
		return empleados.ActualizarArea(ctx, id, area)
	})
	if err != nil {
		return fmt.Errorf("actualizar área del empleado %d: %w", id, err)
	}

	uc.log.Info().Int64("empleado_id", id).Str("area", area).Msg("área actualizada")
	return nil
}

// Eliminar marca la baja lógica del empleado y de su legajo asociado en una
// transacción atómica: ambos quedan eliminados o ninguno.
func (uc *EmpleadoUseCase) Eliminar(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("el ID del empleado debe ser mayor a 0: %w", domain.ErrInvalidInput)
	}

	existente, err := uc.empleados.BuscarPorID(ctx, id)
	if err != nil {
		return fmt.Errorf("verificar empleado: %w", err)
	}
	if existente == nil {
		return fmt.Errorf("el empleado con ID %d no existe o ya está eliminado: %w", id, domain.ErrNotFound)
	}

	err = uc.tx.Run(ctx, func(empleados repository.EmpleadoRepository, legajos repository.LegajoRepository) error {
		if err := empleados.Eliminar(ctx, id); err != nil {
			return err
		}
		if existente.Legajo != nil && existente.Legajo.ID > 0 {
			if err := legajos.Eliminar(ctx, existente.Legajo.ID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("baja de empleado %d: %w", id, err)
	}

	uc.log.Info().Int64("empleado_id", id).Msg("empleado y legajo eliminados")
	return nil
}

// ActualizarCategoriaLegajo cambia la categoría del legajo de un empleado.
// Devuelve domain.ErrConflict si el empleado no tiene legajo asociado.
func (uc *EmpleadoUseCase) ActualizarCategoriaLegajo(ctx context.Context, empleadoID int64, categoria string) error {
	if empleadoID <= 0 {
		return fmt.Errorf("el ID del empleado debe ser mayor a 0: %w", domain.ErrInvalidInput)
	}
	categoria = strings.ToUpper(strings.TrimSpace(categoria))
	if categoria == "" {
		return fmt.Errorf("la categoría no puede estar vacía: %w", domain.ErrInvalidInput)
	}

	empleado, err := uc.empleados.BuscarPorID(ctx, empleadoID)
	if err != nil {
		return fmt.Errorf("verificar empleado: %w", err)
	}
	if empleado == nil {
		return fmt.Errorf("el empleado con ID %d no existe: %w", empleadoID, domain.ErrNotFound)
	}
	if empleado.Legajo == nil || empleado.Legajo.ID <= 0 {
		return fmt.Errorf("el empleado %d no tiene un legajo asociado: %w", empleadoID, domain.ErrConflict)
	}

	legajoID := empleado.Legajo.ID
	err = uc.tx.Run(ctx, func(_ repository.EmpleadoRepository, legajos repository.LegajoRepository) error {
		return legajos.ActualizarCategoria(ctx, legajoID, categoria)
	})
	if err != nil {
		return fmt.Errorf("actualizar categoría del legajo %d: %w", legajoID, err)
	}

	uc.log.Info().Int64("legajo_id", legajoID).Str("categoria", categoria).Msg("categoría de legajo actualizada")
	return nil
}

// BuscarPorID obtiene un empleado por ID. Devuelve (nil, nil) si no existe.
func (uc *EmpleadoUseCase) BuscarPorID(ctx context.Context, id int64) (*dto.EmpleadoResponse, error) {
	if id <= 0 {
		return nil, fmt.Errorf("el ID del empleado debe ser mayor a 0: %w", domain.ErrInvalidInput)
	}
	empleado, err := uc.empleados.BuscarPorID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("obtener empleado: %w", err)
	}
	return entityToEmpleadoResponse(empleado), nil
}

// BuscarPorDNI obtiene un empleado por DNI. Devuelve (nil, nil) si no existe.
func (uc *EmpleadoUseCase) BuscarPorDNI(ctx context.Context, dni string) (*dto.EmpleadoResponse, error) {
	dni = strings.TrimSpace(dni)
	if !dniPattern.MatchString(dni) {
		return nil, fmt.Errorf("el DNI debe tener 7 u 8 dígitos numéricos: %w", domain.ErrInvalidInput)
	}
	empleado, err := uc.empleados.BuscarPorDNI(ctx, dni)
	if err != nil {
		return nil, fmt.Errorf("buscar empleado por DNI: %w", err)
	}
	return entityToEmpleadoResponse(empleado), nil
}

// ListarActivos devuelve los empleados no eliminados con legajo ACTIVO.
func (uc *EmpleadoUseCase) ListarActivos(ctx context.Context) ([]*dto.EmpleadoResponse, error) {
	empleados, err := uc.empleados.ListarActivos(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar empleados: %w", err)
	}
	list := make([]*dto.EmpleadoResponse, 0, len(empleados))
	for _, e := range empleados {
		list = append(list, entityToEmpleadoResponse(e))
	}
	return list, nil
}

func validarNuevoEmpleado(in dto.CrearEmpleadoRequest) error {
	if len(strings.TrimSpace(in.Nombre)) < 2 {
		return fmt.Errorf("el nombre es obligatorio y debe tener al menos 2 caracteres: %w", domain.ErrInvalidInput)
	}
	if len(strings.TrimSpace(in.Apellido)) < 2 {
		return fmt.Errorf("el apellido es obligatorio y debe tener al menos 2 caracteres: %w", domain.ErrInvalidInput)
	}
	if !dniPattern.MatchString(strings.TrimSpace(in.DNI)) {
		return fmt.Errorf("el DNI debe tener 7 u 8 dígitos numéricos: %w", domain.ErrInvalidInput)
	}
	if email := trimOpcional(in.Email); email != nil && !govalidator.IsEmail(*email) {
		return fmt.Errorf("el formato del email no es válido: %w", domain.ErrInvalidInput)
	}
	if area := trimOpcional(in.Area); area != nil && len(*area) < 2 {
		return fmt.Errorf("el área debe tener al menos 2 caracteres: %w", domain.ErrInvalidInput)
	}
	return nil
}

// trimOpcional normaliza un campo opcional: recorta espacios y colapsa
// cadenas vacías a nil.
func trimOpcional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func entityToEmpleadoResponse(e *entity.Empleado) *dto.EmpleadoResponse {
	if e == nil {
		return nil
	}
	return &dto.EmpleadoResponse{
		ID:           e.ID,
		Nombre:       e.Nombre,
		Apellido:     e.Apellido,
		DNI:          e.DNI,
		Email:        e.Email,
		FechaIngreso: e.FechaIngreso,
		Area:         e.Area,
		Legajo:       entityToLegajoResponse(e.Legajo),
	}
}
