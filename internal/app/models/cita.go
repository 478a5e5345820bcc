package models

import (
	"citas-service/internal/pkg/constvars"
	"time"
)

// Cita is the normalized appointment the rest of the service works with. All
// wire-format quirks (split fecha/hora fields, nested cliente/empleado,
// inconsistent id names) are resolved by the gateway before a Cita exists.
type Cita struct {
	ID                string               `json:"id"`
	Inicio            time.Time            `json:"inicio"`
	Fin               time.Time            `json:"fin"`
	EstadoCita        string               `json:"estadoCita"`
	MotivoCancelacion string               `json:"motivoCancelacion,omitempty"`
	ClienteNombre     string               `json:"clienteNombre"`
	EmpleadoNombre    string               `json:"empleadoNombre"`
	Servicios         []ServicioProgramado `json:"servicios"`
	ServiciosNombres  string               `json:"serviciosNombres"`
}

type ServicioProgramado struct {
	ID     string  `json:"id,omitempty"`
	Nombre string  `json:"nombre"`
	Precio float64 `json:"precio"`
}

// EsEstadoTerminal reports whether a cita in the given estado admits no
// further transitions.
func EsEstadoTerminal(estado string) bool {
	return estado == constvars.EstadoCompletada || estado == constvars.EstadoCancelada
}

// PuedeTransicionar implements the estado machine:
// Programada -> En proceso -> Completada, and Programada|En proceso -> Cancelada.
func PuedeTransicionar(desde, hacia string) bool {
	if EsEstadoTerminal(desde) {
		return false
	}
	switch hacia {
	case constvars.EstadoEnProceso:
		return desde == constvars.EstadoProgramada
	case constvars.EstadoCompletada:
		return desde == constvars.EstadoProgramada || desde == constvars.EstadoEnProceso
	case constvars.EstadoCancelada:
		return desde == constvars.EstadoProgramada || desde == constvars.EstadoEnProceso
	default:
		return false
	}
}
