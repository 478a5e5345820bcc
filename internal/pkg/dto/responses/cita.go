package responses

// Wire representation of a cita as the core API returns it. Field names follow
// the backend's JSON and must not leak past the gateway layer.
type CitaWire struct {
	ID                   interface{}              `json:"id,omitempty"`
	Fecha                string                   `json:"fecha"`
	HoraInicio           string                   `json:"horaInicio"`
	HoraFin              string                   `json:"horaFin"`
	EstadoCita           string                   `json:"estadoCita"`
	MotivoCancelacion    string                   `json:"motivoCancelacion,omitempty"`
	Cliente              *ClienteWire             `json:"cliente,omitempty"`
	Empleado             *EmpleadoWire            `json:"empleado,omitempty"`
	ServiciosProgramados []ServicioProgramadoWire `json:"serviciosProgramados,omitempty"`
}

type ServicioProgramadoWire struct {
	IDServicio interface{} `json:"idServicio,omitempty"`
	Nombre     string      `json:"nombre"`
	Precio     interface{} `json:"precio,omitempty"`
}

// The core API double-wraps payloads: `{"data":{"data":...}}`.
type CitaListEnvelope struct {
	Data struct {
		Data []CitaWire `json:"data"`
	} `json:"data"`
}

type CitaEnvelope struct {
	Data struct {
		Data CitaWire `json:"data"`
	} `json:"data"`
}

// CoreAPIError is the error body the core API sends on rejected requests.
type CoreAPIError struct {
	Message string            `json:"message"`
	Errores map[string]string `json:"errores,omitempty"`
}
