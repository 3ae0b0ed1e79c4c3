package dto

import "time"

// CrearLegajoRequest datos de alta de un legajo suelto (sin empleado asociado).
type CrearLegajoRequest struct {
	NroLegajo     string
	Categoria     string
	Estado        string
	FechaAlta     *time.Time
	Observaciones *string
}

// LegajoResponse representación de salida de un legajo.
type LegajoResponse struct {
	ID            int64
	NroLegajo     string
	Categoria     string
	Estado        string
	FechaAlta     *time.Time
	Observaciones *string
}
