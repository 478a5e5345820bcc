package catalogos

import (
	"citas-service/internal/app/config"
	"citas-service/internal/app/contracts"
	"citas-service/internal/app/models"
	"citas-service/internal/pkg/constvars"
	"context"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type catalogoUsecase struct {
	CatalogoGateway contracts.CatalogoGateway
	RedisRepository contracts.RedisRepository
	CacheTTL        time.Duration
	Log             *zap.Logger
}

func NewCatalogoUsecase(
	catalogoGateway contracts.CatalogoGateway,
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.CatalogoUsecase {
	return &catalogoUsecase{
		CatalogoGateway: catalogoGateway,
		RedisRepository: redisRepository,
		CacheTTL:        time.Duration(internalConfig.App.CatalogoCacheTTLSecs) * time.Second,
		Log:             logger,
	}
}

// GetServiciosDisponibles serves from the redis cache when possible. Cache
// failures fall through to the gateway; only the gateway error is fatal.
func (uc *catalogoUsecase) GetServiciosDisponibles(ctx context.Context) ([]models.Servicio, error) {
	var cached []models.Servicio
	if uc.readCache(ctx, constvars.CacheKeyServicios, &cached) {
		return cached, nil
	}

	servicios, err := uc.CatalogoGateway.FindServiciosDisponibles(ctx)
	if err != nil {
		return nil, err
	}
	uc.writeCache(ctx, constvars.CacheKeyServicios, servicios)
	return servicios, nil
}

func (uc *catalogoUsecase) GetClientes(ctx context.Context) ([]models.Cliente, error) {
	var cached []models.Cliente
	if uc.readCache(ctx, constvars.CacheKeyClientes, &cached) {
		return cached, nil
	}

	clientes, err := uc.CatalogoGateway.FindClientes(ctx)
	if err != nil {
		return nil, err
	}
	uc.writeCache(ctx, constvars.CacheKeyClientes, clientes)
	return clientes, nil
}

// GetEmpleadosDisponibles is never cached: the listing already degrades to an
// empty slice on failure and must reflect current availability.
func (uc *catalogoUsecase) GetEmpleadosDisponibles(ctx context.Context) []models.Empleado {
	return uc.CatalogoGateway.FindEmpleadosDisponibles(ctx)
}

func (uc *catalogoUsecase) GetNovedades(ctx context.Context) ([]models.Novedad, error) {
	return uc.CatalogoGateway.FindNovedades(ctx)
}

func (uc *catalogoUsecase) readCache(ctx context.Context, key string, dst interface{}) bool {
	raw, err := uc.RedisRepository.Get(ctx, key)
	if err != nil {
		uc.Log.Warn("catalogoUsecase cache read failed", zap.String("key", key), zap.Error(err))
		return false
	}
	if raw == "" {
		return false
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		uc.Log.Warn("catalogoUsecase cache entry corrupt", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (uc *catalogoUsecase) writeCache(ctx context.Context, key string, value interface{}) {
	if err := uc.RedisRepository.Set(ctx, key, value, uc.CacheTTL); err != nil {
		uc.Log.Warn("catalogoUsecase cache write failed", zap.String("key", key), zap.Error(err))
	}
}
