package config

import (
	"github.com/go-chi/chi/v5"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type (
	Bootstrap struct {
		Router         *chi.Mux
		Redis          *redis.Client
		Mongo          *mongo.Client
		RabbitMQ       *amqp091.Connection
		Logger         *zap.Logger
		DriverConfig   *DriverConfig
		InternalConfig *InternalConfig
	}

	InternalConfig struct {
		App     App
		CoreAPI CoreAPI
	}

	DriverConfig struct {
		Redis    Redis
		MongoDB  MongoDB
		RabbitMQ RabbitMQ
		Logger   Logger
	}

	App struct {
		Env                   string
		Port                  string
		Version               string
		Timezone              string
		EndpointPrefix        string
		MaxRequests           int
		ShutdownTimeout       int
		RequestTimeoutSeconds int
		CatalogoCacheTTLSecs  int
		EventQueueName        string
		BitacoraDbName        string
		BitacoraCollection    string
	}

	CoreAPI struct {
		BaseUrl        string
		TimeoutSeconds int
	}

	Redis struct {
		Host     string
		Port     string
		Password string
	}

	MongoDB struct {
		Port     string
		Host     string
		Username string
		Password string
	}

	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)
