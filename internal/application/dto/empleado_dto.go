package dto

import "time"

// CrearEmpleadoRequest datos de alta de un empleado. Los opcionales en nil se
// persisten como NULL. Los campos de legajo permiten editar los opcionales del
// legajo que se crea junto con el empleado; si CategoriaLegajo es nil se usa
// la categoría por defecto.
type CrearEmpleadoRequest struct {
	Nombre          string
	Apellido        string
	DNI             string
	Email           *string
	FechaIngreso    *time.Time
	Area            *string
	CategoriaLegajo *string
	Observaciones   *string
}

// EmpleadoResponse representación de salida de un empleado con su legajo.
type EmpleadoResponse struct {
	ID           int64
	Nombre       string
	Apellido     string
	DNI          string
	Email        *string
	FechaIngreso *time.Time
	Area         *string
	Legajo       *LegajoResponse
}
