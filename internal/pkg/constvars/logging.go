package constvars

const (
	LoggingRequestIDKey   = "request_id"
	LoggingScreenIDKey    = "screen_id"
	LoggingCitaIDKey      = "cita_id"
	LoggingEstadoKey      = "estado"
	LoggingAccionKey      = "accion"
	LoggingCitaCountKey   = "cita_count"
	LoggingMethodKey      = "method"
	LoggingEndpointKey    = "endpoint"
	LoggingRemoteAddrKey  = "remote_addr"
	LoggingUserAgentKey   = "user_agent"
	LoggingQueryKey       = "query"
	LoggingStatusCodeKey  = "status_code"
	LoggingDurationKey    = "duration"
	LoggingSuccessKey     = "success"
	LoggingCacheHitKey    = "cache_hit"
	LoggingQueueKey       = "queue"
)
