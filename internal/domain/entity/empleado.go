package entity

import "time"

// Empleado representa un empleado registrado. Los campos opcionales son
// punteros: nil significa ausente, nunca cadena vacía ni fecha cero.
type Empleado struct {
	ID           int64
	Nombre       string
	Apellido     string
	DNI          string
	Email        *string
	FechaIngreso *time.Time
	Area         *string
	Eliminado    bool
	Legajo       *Legajo // relación 1:1; nil si la fila no tiene legajo asociado
}
