package config

import (
	"citas-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                   utils.GetEnvString("APP_ENV", "development"),
			Port:                  utils.GetEnvString("APP_PORT", ":8080"),
			Version:               utils.GetEnvString("APP_VERSION", "v1"),
			Timezone:              utils.GetEnvString("APP_TIMEZONE", "America/Bogota"),
			EndpointPrefix:        utils.GetEnvString("APP_ENDPOINT_PREFIX", "admin"),
			MaxRequests:           utils.GetEnvInt("APP_MAX_REQUEST", 50),
			ShutdownTimeout:       utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestTimeoutSeconds: utils.GetEnvInt("APP_REQUEST_TIMEOUT_SECONDS", 10),
			CatalogoCacheTTLSecs:  utils.GetEnvInt("APP_CATALOGO_CACHE_TTL_SECONDS", 300),
			EventQueueName:        utils.GetEnvString("APP_EVENT_QUEUE_NAME", "citas_admin_events"),
			BitacoraDbName:        utils.GetEnvString("APP_BITACORA_DB_NAME", "citas_admin"),
			BitacoraCollection:    utils.GetEnvString("APP_BITACORA_COLLECTION", "bitacora"),
		},
		CoreAPI: CoreAPI{
			BaseUrl:        utils.GetEnvString("CORE_API_BASE_URL", "http://localhost:4000/api"),
			TimeoutSeconds: utils.GetEnvInt("CORE_API_TIMEOUT_SECONDS", 15),
		},
	}
}
