package responses

// Catalog wire formats. Note the inconsistent id field names upstream:
// servicios use `idServicio`, empleados use `idUsuario`.
type ServicioWire struct {
	IDServicio  interface{} `json:"idServicio,omitempty"`
	Nombre      string      `json:"nombre"`
	Descripcion string      `json:"descripcion,omitempty"`
	Precio      interface{} `json:"precio,omitempty"`
	Estado      bool        `json:"estado"`
}

type ClienteWire struct {
	ID       interface{} `json:"id,omitempty"`
	Nombre   string      `json:"nombre"`
	Apellido string      `json:"apellido,omitempty"`
	Telefono string      `json:"telefono,omitempty"`
	Correo   string      `json:"correo,omitempty"`
}

type EmpleadoWire struct {
	IDUsuario interface{} `json:"idUsuario,omitempty"`
	Nombre    string      `json:"nombre"`
	Apellido  string      `json:"apellido,omitempty"`
}

type NovedadWire struct {
	ID         interface{} `json:"id,omitempty"`
	Fecha      string      `json:"fecha"`
	HoraInicio string      `json:"horaInicio"`
	HoraFin    string      `json:"horaFin"`
	IDEmpleado interface{} `json:"idEmpleado,omitempty"`
	Agendable  bool        `json:"agendable,omitempty"`
}

type ServicioListEnvelope struct {
	Data struct {
		Data []ServicioWire `json:"data"`
	} `json:"data"`
}

type ClienteListEnvelope struct {
	Data struct {
		Data []ClienteWire `json:"data"`
	} `json:"data"`
}

type EmpleadoListEnvelope struct {
	Data struct {
		Data []EmpleadoWire `json:"data"`
	} `json:"data"`
}

type NovedadListEnvelope struct {
	Data struct {
		Data []NovedadWire `json:"data"`
	} `json:"data"`
}
