package constvars

// Estados of a cita as the core API reports them. The values travel on the
// wire in `estadoCita`, so they stay in Spanish.
const (
	EstadoProgramada = "Programada"
	EstadoEnProceso  = "En proceso"
	EstadoCompletada = "Completada"
	EstadoCancelada  = "Cancelada"
)

// EstadoFiltroTodos disables status filtering on the agenda.
const EstadoFiltroTodos = "Todos"

// MotivoCancelacionAdmin is attached to every cancellation confirmed from the
// admin agenda.
const MotivoCancelacionAdmin = "Cancelada por Administrador"

// Fallback display names used when the core API omits nested entities.
const (
	SinCliente  = "Sin cliente"
	SinEmpleado = "Sin empleado"
)

// Upstream core API resource paths, relative to the configured base URL.
const (
	ResourceCitas     = "/citas"
	ResourceClientes  = "/clientes"
	ResourceEmpleados = "/empleados"
	ResourceServicios = "/servicios"
	ResourceNovedades = "/novedades"
)

// Wire formats for the split date and time-of-day fields.
const (
	FormatoFecha     = "2006-01-02"
	FormatoHora      = "15:04"
	FormatoFechaHora = "2006-01-02 15:04"
)

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY ContextKey = "request_id"
	CONTEXT_SCREEN_ID_KEY  ContextKey = "screen_id"
)

// Redis cache keys for catalog listings.
const (
	CacheKeyServicios = "catalogo:servicios:activos"
	CacheKeyClientes  = "catalogo:clientes"
)

// Acciones recorded in the bitacora and published to the event queue.
const (
	AccionCrear        = "crear"
	AccionActualizar   = "actualizar"
	AccionEliminar     = "eliminar"
	AccionCambioEstado = "cambio_estado"
)
