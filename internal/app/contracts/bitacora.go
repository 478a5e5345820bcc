package contracts

import (
	"citas-service/internal/app/models"
	"context"
)

type BitacoraRepository interface {
	Insert(ctx context.Context, registro *models.RegistroBitacora) error
	FindRecent(ctx context.Context, limit int64) ([]models.RegistroBitacora, error)
}

type BitacoraUsecase interface {
	// Registrar records an admin mutation. Failures are logged by the
	// implementation and swallowed; the agenda never fails because of the
	// bitacora.
	Registrar(ctx context.Context, registro *models.RegistroBitacora)
	FindRecent(ctx context.Context, limit int64) ([]models.RegistroBitacora, error)
}
