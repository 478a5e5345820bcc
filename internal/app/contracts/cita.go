package contracts

import (
	"citas-service/internal/app/models"
	"citas-service/internal/pkg/dto/requests"
	"context"
)

// CitaGateway is the typed client for the core API's /citas resource. It owns
// every wire-format concern: envelope unwrapping, fecha/hora combination and
// derived display names.
type CitaGateway interface {
	// FindAll returns every cita, normalized. The caller decides ordering.
	FindAll(ctx context.Context) ([]models.Cita, error)
	// Save creates when request.ID is empty, updates otherwise. Backend
	// validation errors are re-raised with their original message and detail.
	Save(ctx context.Context, request *requests.GuardarCita) (*models.Cita, error)
	Delete(ctx context.Context, citaID string) error
	CambiarEstado(ctx context.Context, citaID, estado, motivo string) (*models.Cita, error)
}
