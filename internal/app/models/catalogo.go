package models

type Servicio struct {
	ID          string  `json:"id"`
	Nombre      string  `json:"nombre"`
	Descripcion string  `json:"descripcion,omitempty"`
	Precio      float64 `json:"precio"`
	Estado      bool    `json:"estado"`
}

type Cliente struct {
	ID       string `json:"id"`
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido,omitempty"`
	Telefono string `json:"telefono,omitempty"`
	Correo   string `json:"correo,omitempty"`
}

type Empleado struct {
	ID       string `json:"id"`
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido,omitempty"`
}

// Novedad is a schedule window the booking form offers as agendable.
type Novedad struct {
	ID         string `json:"id"`
	Fecha      string `json:"fecha"`
	HoraInicio string `json:"horaInicio"`
	HoraFin    string `json:"horaFin"`
	IDEmpleado string `json:"idEmpleado,omitempty"`
	Agendable  bool   `json:"agendable"`
}
