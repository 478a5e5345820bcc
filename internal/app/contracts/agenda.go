package contracts

import (
	"citas-service/internal/app/models"
	"citas-service/internal/pkg/dto/requests"
	"context"
)

// AgendaUsecase drives one agenda screen per screenID. Mutating operations
// follow the workflow pattern: open the corresponding workflow, then confirm;
// on success the full list is reloaded and a success aviso is set, on failure
// a titled error aviso is set and the previous list survives untouched.
type AgendaUsecase interface {
	// CargarAgenda reloads the screen's cita list from the core API, sorted by
	// Inicio descending, and returns the filtered view.
	CargarAgenda(ctx context.Context, screenID string) (*models.AgendaView, error)
	// Ver returns the current filtered view without touching the backend.
	Ver(ctx context.Context, screenID string) (*models.AgendaView, error)
	// Filtrar updates search term and estado filter, returning the new view.
	Filtrar(ctx context.Context, screenID string, request *requests.FiltrarAgenda) (*models.AgendaView, error)

	AbrirFormulario(ctx context.Context, screenID, citaID string) (*models.AgendaView, error)
	VerDetalle(ctx context.Context, screenID, citaID string) (*models.AgendaView, error)
	AbrirConfirmacionEliminar(ctx context.Context, screenID, citaID string) (*models.AgendaView, error)
	AbrirConfirmacionCancelar(ctx context.Context, screenID, citaID string) (*models.AgendaView, error)
	CerrarWorkflows(ctx context.Context, screenID string) (*models.AgendaView, error)

	GuardarCita(ctx context.Context, screenID string, request *requests.GuardarCita) (*models.AgendaView, error)
	ConfirmarEliminacion(ctx context.Context, screenID string) (*models.AgendaView, error)
	ConfirmarCancelacion(ctx context.Context, screenID string) (*models.AgendaView, error)
	MarcarCompletada(ctx context.Context, screenID, citaID string) (*models.AgendaView, error)
}
