package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/tu-usuario/legajos-pro/internal/application/dto"
	"github.com/tu-usuario/legajos-pro/internal/domain"
	"github.com/tu-usuario/legajos-pro/internal/domain/entity"
	"github.com/tu-usuario/legajos-pro/internal/domain/repository"
	"github.com/tu-usuario/legajos-pro/pkg/logger"
)

// LegajoUseCase aplica reglas de negocio sobre legajos directamente, sin el
// emparejamiento con empleado (mismo patrón validar → verificar → transacción).
type LegajoUseCase struct {
	legajos repository.LegajoRepository
	tx      TxRunner
	log     *logger.Logger
}

// NewLegajoUseCase construye el caso de uso con el puerto de persistencia.
func NewLegajoUseCase(legajos repository.LegajoRepository, tx TxRunner, log *logger.Logger) *LegajoUseCase {
	return &LegajoUseCase{legajos: legajos, tx: tx, log: log}
}

// Crear da de alta un legajo suelto. Nro de legajo, categoría y estado son
// obligatorios.
func (uc *LegajoUseCase) Crear(ctx context.Context, in dto.CrearLegajoRequest) (*dto.LegajoResponse, error) {
	nro := strings.TrimSpace(in.NroLegajo)
	if nro == "" {
		return nil, fmt.Errorf("el número de legajo no puede estar vacío: %w", domain.ErrInvalidInput)
	}
	categoria := strings.ToUpper(strings.TrimSpace(in.Categoria))
	if categoria == "" {
		return nil, fmt.Errorf("la categoría no puede estar vacía: %w", domain.ErrInvalidInput)
	}
	estado, err := entity.ParseEstado(in.Estado)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, domain.ErrInvalidInput)
	}

	legajo := &entity.Legajo{
		NroLegajo:     nro,
		Categoria:     categoria,
		Estado:        estado,
		FechaAlta:     in.FechaAlta,
		Observaciones: trimOpcional(in.Observaciones),
	}

	err = uc.tx.Run(ctx, func(_ repository.EmpleadoRepository, legajos repository.LegajoRepository) error {
		return legajos.Crear(ctx, legajo)
	})
	if err != nil {
		return nil, fmt.Errorf("alta de legajo: %w", err)
	}

	uc.log.Info().Int64("legajo_id", legajo.ID).Str("nro_legajo", nro).Msg("legajo creado")
	return entityToLegajoResponse(legajo), nil
}

// ActualizarCategoria cambia únicamente la categoría de un legajo existente.
func (uc *LegajoUseCase) ActualizarCategoria(ctx context.Context, id int64, categoria string) error {
	if id <= 0 {
		return fmt.Errorf("el ID del legajo debe ser mayor a 0: %w", domain.ErrInvalidInput)
	}
	categoria = strings.ToUpper(strings.TrimSpace(categoria))
	if categoria == "" {
		return fmt.Errorf("la categoría no puede estar vacía: %w", domain.ErrInvalidInput)
	}

	existente, err := uc.legajos.BuscarPorID(ctx, id)
	if err != nil {
		return fmt.Errorf("verificar legajo: %w", err)
	}
	if existente == nil {
		return fmt.Errorf("el legajo con ID %d no existe: %w", id, domain.ErrNotFound)
	}

	err = uc.tx.Run(ctx, func(_ repository.EmpleadoRepository, legajos repository.LegajoRepository) error {
		return legajos.ActualizarCategoria(ctx, id, categoria)
	})
	if err != nil {
		return fmt.Errorf("actualizar categoría del legajo %d: %w", id, err)
	}

	uc.log.Info().Int64("legajo_id", id).Str("categoria", categoria).Msg("categoría actualizada")
	return nil
}

// CambiarEstado cambia únicamente el estado (operación dedicada, no parte de
// la actualización general).
func (uc *LegajoUseCase) CambiarEstado(ctx context.Context, id int64, estadoTexto string) error {
	if id <= 0 {
		return fmt.Errorf("el ID del legajo debe ser mayor a 0: %w", domain.ErrInvalidInput)
	}
	estado, err := entity.ParseEstado(estadoTexto)
	if err != nil {
		return fmt.Errorf("%v: %w", err, domain.ErrInvalidInput)
	}

	err = uc.tx.Run(ctx, func(_ repository.EmpleadoRepository, legajos repository.LegajoRepository) error {
		return legajos.CambiarEstado(ctx, id, estado)
	})
	if err != nil {
		return fmt.Errorf("cambiar estado del legajo %d: %w", id, err)
	}

	uc.log.Info().Int64("legajo_id", id).Str("estado", string(estado)).Msg("estado de legajo actualizado")
	return nil
}

// Eliminar marca la baja lógica de un legajo.
func (uc *LegajoUseCase) Eliminar(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("el ID del legajo debe ser mayor a 0: %w", domain.ErrInvalidInput)
	}

	err := uc.tx.Run(ctx, func(_ repository.EmpleadoRepository, legajos repository.LegajoRepository) error {
		return legajos.Eliminar(ctx, id)
	})
	if err != nil {
		return fmt.Errorf("baja de legajo %d: %w", id, err)
	}

	uc.log.Info().Int64("legajo_id", id).Msg("legajo eliminado")
	return nil
}

// BuscarPorID obtiene un legajo por ID. Devuelve (nil, nil) si no existe.
func (uc *LegajoUseCase) BuscarPorID(ctx context.Context, id int64) (*dto.LegajoResponse, error) {
	if id <= 0 {
		return nil, fmt.Errorf("el ID del legajo debe ser mayor a 0: %w", domain.ErrInvalidInput)
	}
	legajo, err := uc.legajos.BuscarPorID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("obtener legajo: %w", err)
	}
	return entityToLegajoResponse(legajo), nil
}

// ListarActivos devuelve los legajos no eliminados con estado ACTIVO.
func (uc *LegajoUseCase) ListarActivos(ctx context.Context) ([]*dto.LegajoResponse, error) {
	legajos, err := uc.legajos.ListarActivos(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar legajos: %w", err)
	}
	list := make([]*dto.LegajoResponse, 0, len(legajos))
	for _, l := range legajos {
		list = append(list, entityToLegajoResponse(l))
	}
	return list, nil
}

func entityToLegajoResponse(l *entity.Legajo) *dto.LegajoResponse {
	if l == nil {
		return nil
	}
	return &dto.LegajoResponse{
		ID:            l.ID,
		NroLegajo:     l.NroLegajo,
		Categoria:     l.Categoria,
		Estado:        string(l.Estado),
		FechaAlta:     l.FechaAlta,
		Observaciones: l.Observaciones,
	}
}
