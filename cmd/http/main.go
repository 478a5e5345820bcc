package main

import (
	"citas-service/internal/app/config"
	"citas-service/internal/app/delivery/http/controllers"
	"citas-service/internal/app/delivery/http/middlewares"
	"citas-service/internal/app/delivery/http/routers"
	"citas-service/internal/app/drivers/database"
	"citas-service/internal/app/drivers/logger"
	"citas-service/internal/app/drivers/messaging"
	"citas-service/internal/app/services/core/agenda"
	"citas-service/internal/app/services/core/bitacora"
	"citas-service/internal/app/services/core/catalogos"
	"citas-service/internal/app/services/core/citas"
	"citas-service/internal/app/services/shared/eventqueue"
	sharedredis "citas-service/internal/app/services/shared/redis"
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		logrus.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	log := logger.NewZapLogger(driverConfig, internalConfig)
	defer log.Sync()

	redisClient := database.NewRedisClient(driverConfig)
	mongoClient := database.NewMongoDB(driverConfig)
	rabbitMQConn := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrapingTheApp(config.Bootstrap{
		Router:         chiRouter,
		Redis:          redisClient,
		Mongo:          mongoClient,
		RabbitMQ:       rabbitMQConn,
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	})

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logrus.Fatalf("Server forced to shutdown: %v", err)
	}

	logrus.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) {
	// Redis
	redisRepository := sharedredis.NewRedisRepository(bootstrap.Redis)

	// Middlewares
	middlewares := middlewares.New(bootstrap.Logger, bootstrap.InternalConfig)

	// Event queue
	eventQueueService, err := eventqueue.NewService(bootstrap.RabbitMQ, bootstrap.Logger, bootstrap.InternalConfig.App.EventQueueName)
	if err != nil {
		logrus.Fatalf("Failed to initialize event queue: %v", err)
	}

	coreTimeout := time.Second * time.Duration(bootstrap.InternalConfig.CoreAPI.TimeoutSeconds)

	// Cita gateway
	citaRestClient := citas.NewCitaRestClient(bootstrap.InternalConfig.CoreAPI.BaseUrl, coreTimeout)

	// Catalogos
	catalogoRestClient := catalogos.NewCatalogoRestClient(bootstrap.InternalConfig.CoreAPI.BaseUrl, coreTimeout, bootstrap.Logger)
	catalogoUsecase := catalogos.NewCatalogoUsecase(
		catalogoRestClient,
		redisRepository,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	catalogoController := controllers.NewCatalogoController(bootstrap.Logger, catalogoUsecase, bootstrap.InternalConfig)

	// Bitacora
	bitacoraMongoRepository := bitacora.NewBitacoraMongoRepository(
		bootstrap.Mongo,
		bootstrap.InternalConfig.App.BitacoraDbName,
		bootstrap.InternalConfig.App.BitacoraCollection,
	)
	bitacoraUsecase := bitacora.NewBitacoraUsecase(bitacoraMongoRepository, bootstrap.Logger)
	bitacoraController := controllers.NewBitacoraController(bootstrap.Logger, bitacoraUsecase, bootstrap.InternalConfig)

	// Agenda
	agendaUsecase := agenda.NewAgendaUsecase(citaRestClient, eventQueueService, bitacoraUsecase, bootstrap.Logger)
	agendaController := controllers.NewAgendaController(bootstrap.Logger, agendaUsecase, bootstrap.InternalConfig)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		agendaController,
		catalogoController,
		bitacoraController,
	)
}
