package constvars

// Validation messages, mapped by validator tag.
var CustomValidationErrorMessages = map[string]string{
	"required":    "is required",
	"min":         "must be at least %s characters long",
	"max":         "maximum at %s characters long",
	"oneof":       "must be one of [%s]",
	"datetime":    "must match the format %s",
	"hora":        "must be a valid HH:MM time of day",
	"estado_cita": "must be a valid cita estado",
}

// Tags that require parameter substitution.
var TagsWithParams = map[string]bool{
	"min":      true,
	"max":      true,
	"oneof":    true,
	"datetime": true,
}

// Error messages for clients. The admin panel renders these verbatim, so they
// stay in Spanish like the rest of the product copy.
const (
	ErrClientCargarCitas           = "No se pudieron cargar las citas agendadas."
	ErrClientGuardarCita           = "No se pudo guardar la cita."
	ErrClientEliminarCita          = "No se pudo eliminar la cita."
	ErrClientCambiarEstado         = "No se pudo cambiar el estado de la cita."
	ErrClientTransicionEstado      = "La cita ya no admite cambios de estado."
	ErrClientCargarServicios       = "No se pudieron cargar los servicios."
	ErrClientCargarClientes        = "No se pudieron cargar los clientes."
	ErrClientCargarNovedades       = "No se pudieron cargar los horarios disponibles."
	ErrClientCitaNoEncontrada      = "La cita solicitada no existe."
	ErrClientSinWorkflowActivo     = "No hay ninguna operación pendiente de confirmar."
	ErrClientCannotProcessRequest  = "No se pudo procesar la solicitud."
	ErrClientSomethingWrongWithApp = "Ocurrió un error inesperado en la aplicación."
)

// Error messages for developers.
const (
	ErrDevCreateHTTPRequest  = "failed to create HTTP request"
	ErrDevSendHTTPRequest    = "failed to send HTTP request"
	ErrDevDecodeResponse     = "failed to decode core API response for %s"
	ErrDevCoreAPIStatus      = "core API returned status %d for %s"
	ErrDevCannotMarshalJSON  = "cannot marshal JSON"
	ErrDevCannotParseJSON    = "cannot parse JSON"
	ErrDevValidationFailed   = "validation failed"
	ErrDevCitaSinID          = "cita id is required for this operation"
	ErrDevEstadoTransition   = "estado transition %q -> %q is not allowed"
	ErrDevWorkflowMismatch   = "confirmation received while workflow %q is active"
	ErrDevCombinarFechaHora  = "cannot combine fecha %q with hora %q"
	ErrDevRedisSet           = "failed to set redis key"
	ErrDevRedisGet           = "failed to get redis key %s"
	ErrDevRedisDelete        = "failed to delete redis key"
	ErrDevMongoInsert        = "failed to insert mongo document"
	ErrDevMongoFind          = "failed to query mongo collection"
	ErrDevQueuePublish       = "failed to publish message to queue"
	ErrDevQueueNotConfirmed  = "queue publish was not confirmed by broker"
	ErrDevMissingRequestID   = "request id not found in context"
	ErrDevMissingScreenID    = "screen id not found in request"
	ErrDevServerDeadlineExcd = "server deadline exceeded"
)
