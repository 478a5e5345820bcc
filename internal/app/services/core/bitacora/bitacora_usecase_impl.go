package bitacora

import (
	"citas-service/internal/app/contracts"
	"citas-service/internal/app/models"
	"citas-service/internal/pkg/constvars"
	"context"

	"go.uber.org/zap"
)

type bitacoraUsecase struct {
	BitacoraRepository contracts.BitacoraRepository
	Log                *zap.Logger
}

func NewBitacoraUsecase(bitacoraRepository contracts.BitacoraRepository, logger *zap.Logger) contracts.BitacoraUsecase {
	return &bitacoraUsecase{
		BitacoraRepository: bitacoraRepository,
		Log:                logger,
	}
}

// Registrar writes the audit document. Failures are logged and swallowed so
// the agenda workflow outcome never depends on the bitacora.
func (uc *bitacoraUsecase) Registrar(ctx context.Context, registro *models.RegistroBitacora) {
	if err := uc.BitacoraRepository.Insert(ctx, registro); err != nil {
		uc.Log.Warn("bitacoraUsecase.Registrar insert failed",
			zap.String(constvars.LoggingRequestIDKey, registro.RequestID),
			zap.String(constvars.LoggingAccionKey, registro.Accion),
			zap.String(constvars.LoggingCitaIDKey, registro.CitaID),
			zap.Error(err))
	}
}

func (uc *bitacoraUsecase) FindRecent(ctx context.Context, limit int64) ([]models.RegistroBitacora, error) {
	return uc.BitacoraRepository.FindRecent(ctx, limit)
}
