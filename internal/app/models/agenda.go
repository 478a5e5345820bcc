package models

// WorkflowKind enumerates the mutually exclusive modal workflows of the
// agenda screen. Exactly one is active at a time.
type WorkflowKind string

const (
	WorkflowNinguno           WorkflowKind = "ninguno"
	WorkflowFormulario        WorkflowKind = "formulario"
	WorkflowDetalle           WorkflowKind = "detalle"
	WorkflowConfirmarEliminar WorkflowKind = "confirmar-eliminar"
	WorkflowConfirmarCancelar WorkflowKind = "confirmar-cancelar"
	WorkflowAviso             WorkflowKind = "aviso"
)

// Workflow is the tagged union replacing the five independent modal flags the
// screen used to juggle: the kind says which modal is open, Cita is the
// appointment under operation (nil for creation and for plain notices).
type Workflow struct {
	Kind  WorkflowKind `json:"kind"`
	Cita  *Cita        `json:"cita,omitempty"`
	Aviso *Aviso       `json:"aviso,omitempty"`
}

// Aviso is a titled notice shown to the admin after a workflow resolves.
type Aviso struct {
	Titulo  string `json:"titulo"`
	Mensaje string `json:"mensaje"`
}

// AgendaView is the serializable snapshot of a screen handed to the SPA.
type AgendaView struct {
	Citas        []Cita   `json:"citas"`
	Busqueda     string   `json:"busqueda"`
	EstadoFiltro string   `json:"estadoFiltro"`
	Cargando     bool     `json:"cargando"`
	Workflow     Workflow `json:"workflow"`
}
