package entity

import (
	"fmt"
	"strings"
	"time"
)

// Estado representa el estado del ciclo de vida de un legajo.
type Estado string

const (
	EstadoActivo   Estado = "ACTIVO"
	EstadoInactivo Estado = "INACTIVO"
)

// ParseEstado convierte texto libre (consola) en un Estado válido.
func ParseEstado(s string) (Estado, error) {
	switch Estado(strings.ToUpper(strings.TrimSpace(s))) {
	case EstadoActivo:
		return EstadoActivo, nil
	case EstadoInactivo:
		return EstadoInactivo, nil
	default:
		return "", fmt.Errorf("estado desconocido: %q", s)
	}
}

// Legajo representa el legajo de un empleado (clasificación laboral y estado).
// NroLegajo se genera a partir del ID del empleado al momento del alta.
type Legajo struct {
	ID            int64
	NroLegajo     string
	Categoria     string
	Estado        Estado
	FechaAlta     *time.Time
	Observaciones *string
	Eliminado     bool
}
