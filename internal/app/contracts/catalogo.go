package contracts

import (
	"citas-service/internal/app/models"
	"context"
)

// CatalogoGateway lists the entities the agenda form needs to offer.
type CatalogoGateway interface {
	// FindServiciosDisponibles returns active servicios with ids and precios
	// normalized.
	FindServiciosDisponibles(ctx context.Context) ([]models.Servicio, error)
	FindClientes(ctx context.Context) ([]models.Cliente, error)
	// FindEmpleadosDisponibles degrades to an empty slice on failure; it never
	// returns an error.
	FindEmpleadosDisponibles(ctx context.Context) []models.Empleado
	FindNovedades(ctx context.Context) ([]models.Novedad, error)
}

// CatalogoUsecase fronts the gateway with the redis cache.
type CatalogoUsecase interface {
	GetServiciosDisponibles(ctx context.Context) ([]models.Servicio, error)
	GetClientes(ctx context.Context) ([]models.Cliente, error)
	GetEmpleadosDisponibles(ctx context.Context) []models.Empleado
	GetNovedades(ctx context.Context) ([]models.Novedad, error)
}
