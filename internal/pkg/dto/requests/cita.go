package requests

// GuardarCita is the payload the agenda form submits. ID empty means create,
// otherwise it targets an update. JSON names match what the core API expects.
type GuardarCita struct {
	ID         string   `json:"id,omitempty"`
	Fecha      string   `json:"fecha" validate:"required,datetime=2006-01-02"`
	HoraInicio string   `json:"horaInicio" validate:"required,hora"`
	HoraFin    string   `json:"horaFin" validate:"required,hora"`
	IDCliente  string   `json:"idCliente" validate:"required"`
	IDEmpleado string   `json:"idEmpleado" validate:"required"`
	Servicios  []string `json:"servicios" validate:"required,min=1"`
	Notas      string   `json:"notas,omitempty"`
}

// CambiarEstado is the PATCH body for /citas/:id/estado.
type CambiarEstado struct {
	Estado            string `json:"estado" validate:"required,estado_cita"`
	MotivoCancelacion string `json:"motivoCancelacion,omitempty"`
}

// FiltrarAgenda updates the screen's derived view inputs.
type FiltrarAgenda struct {
	Busqueda     string `json:"busqueda"`
	EstadoFiltro string `json:"estadoFiltro"`
}
