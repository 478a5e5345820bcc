package agenda

import (
	"citas-service/internal/app/contracts"
	"citas-service/internal/app/models"
	"citas-service/internal/pkg/constvars"
	"citas-service/internal/pkg/dto/requests"
	"citas-service/internal/pkg/exceptions"
	"citas-service/internal/pkg/utils"
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type agendaUsecase struct {
	CitaGateway    contracts.CitaGateway
	EventPublisher contracts.CitaEventPublisher
	Bitacora       contracts.BitacoraUsecase
	Log            *zap.Logger

	mu      sync.RWMutex
	screens map[string]*Screen
}

func NewAgendaUsecase(
	citaGateway contracts.CitaGateway,
	eventPublisher contracts.CitaEventPublisher,
	bitacora contracts.BitacoraUsecase,
	logger *zap.Logger,
) contracts.AgendaUsecase {
	return &agendaUsecase{
		CitaGateway:    citaGateway,
		EventPublisher: eventPublisher,
		Bitacora:       bitacora,
		Log:            logger,
		screens:        make(map[string]*Screen),
	}
}

func (uc *agendaUsecase) screen(screenID string) *Screen {
	uc.mu.RLock()
	s, ok := uc.screens[screenID]
	uc.mu.RUnlock()
	if ok {
		return s
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	if s, ok = uc.screens[screenID]; ok {
		return s
	}
	s = NewScreen()
	uc.screens[screenID] = s
	return s
}

func (uc *agendaUsecase) CargarAgenda(ctx context.Context, screenID string) (*models.AgendaView, error) {
	s := uc.screen(screenID)
	s.SetCargando(true)

	if err := uc.recargar(ctx, s); err != nil {
		s.SetAviso(constvars.TituloErrorCarga, "No se pudieron cargar las citas: "+clientMessage(err))
		s.SetCargando(false)
		return s.View(), nil
	}
	s.SetCargando(false)
	return s.View(), nil
}

func (uc *agendaUsecase) Ver(ctx context.Context, screenID string) (*models.AgendaView, error) {
	return uc.screen(screenID).View(), nil
}

func (uc *agendaUsecase) Filtrar(ctx context.Context, screenID string, request *requests.FiltrarAgenda) (*models.AgendaView, error) {
	s := uc.screen(screenID)
	s.Filtrar(request.Busqueda, request.EstadoFiltro)
	return s.View(), nil
}

func (uc *agendaUsecase) AbrirFormulario(ctx context.Context, screenID, citaID string) (*models.AgendaView, error) {
	return uc.abrir(screenID, citaID, models.WorkflowFormulario, citaID == "")
}

func (uc *agendaUsecase) VerDetalle(ctx context.Context, screenID, citaID string) (*models.AgendaView, error) {
	return uc.abrir(screenID, citaID, models.WorkflowDetalle, false)
}

func (uc *agendaUsecase) AbrirConfirmacionEliminar(ctx context.Context, screenID, citaID string) (*models.AgendaView, error) {
	return uc.abrir(screenID, citaID, models.WorkflowConfirmarEliminar, false)
}

func (uc *agendaUsecase) AbrirConfirmacionCancelar(ctx context.Context, screenID, citaID string) (*models.AgendaView, error) {
	return uc.abrir(screenID, citaID, models.WorkflowConfirmarCancelar, false)
}

func (uc *agendaUsecase) abrir(screenID, citaID string, kind models.WorkflowKind, sinCita bool) (*models.AgendaView, error) {
	s := uc.screen(screenID)
	if sinCita {
		s.AbrirWorkflow(kind, nil)
		return s.View(), nil
	}
	cita, found := s.BuscarCita(citaID)
	if !found {
		return nil, exceptions.ErrCitaNoEncontrada(nil, citaID)
	}
	s.AbrirWorkflow(kind, &cita)
	return s.View(), nil
}

func (uc *agendaUsecase) CerrarWorkflows(ctx context.Context, screenID string) (*models.AgendaView, error) {
	s := uc.screen(screenID)
	s.CerrarWorkflows()
	return s.View(), nil
}

// GuardarCita validates locally, then lets the core API decide. A backend
// rejection surfaces as an "Error al Guardar" aviso carrying the backend's own
// message; the stored list stays untouched.
func (uc *agendaUsecase) GuardarCita(ctx context.Context, screenID string, request *requests.GuardarCita) (*models.AgendaView, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s := uc.screen(screenID)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	inicio, err := utils.CombinarFechaHora(request.Fecha, request.HoraInicio)
	if err != nil {
		return nil, exceptions.ErrRangoHorario(request.HoraInicio, request.HoraFin)
	}
	fin, err := utils.CombinarFechaHora(request.Fecha, request.HoraFin)
	if err != nil || !inicio.Before(fin) {
		return nil, exceptions.ErrRangoHorario(request.HoraInicio, request.HoraFin)
	}

	saved, err := uc.CitaGateway.Save(ctx, request)
	if err != nil {
		uc.Log.Error("agendaUsecase.GuardarCita save failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingScreenIDKey, screenID),
			zap.Error(err),
		)
		s.SetAviso(constvars.TituloErrorGuardar, clientMessage(err))
		return s.View(), nil
	}

	accion := constvars.AccionCrear
	mensaje := constvars.CitaCreatedSuccess
	if request.ID != "" {
		accion = constvars.AccionActualizar
		mensaje = constvars.CitaUpdatedSuccess
	}

	uc.afterMutation(ctx, s, screenID, requestID, saved.ID, accion, saved.EstadoCita, "")
	s.SetAviso(constvars.TituloExito, mensaje)
	return s.View(), nil
}

func (uc *agendaUsecase) ConfirmarEliminacion(ctx context.Context, screenID string) (*models.AgendaView, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s := uc.screen(screenID)

	kind, cita := s.CitaEnOperacion()
	if kind != models.WorkflowConfirmarEliminar || cita == nil {
		return nil, exceptions.ErrSinWorkflowActivo(string(kind))
	}

	if err := uc.CitaGateway.Delete(ctx, cita.ID); err != nil {
		uc.Log.Error("agendaUsecase.ConfirmarEliminacion delete failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingCitaIDKey, cita.ID),
			zap.Error(err),
		)
		s.SetAviso(constvars.TituloErrorEliminar, clientMessage(err))
		return s.View(), nil
	}

	uc.afterMutation(ctx, s, screenID, requestID, cita.ID, constvars.AccionEliminar, "", "")
	s.SetAviso(constvars.TituloExito, fmt.Sprintf(constvars.CitaDeletedSuccessFmt, cita.ClienteNombre))
	return s.View(), nil
}

// MarcarCompletada transitions directly, without a confirmation workflow. The
// estado machine is enforced locally: terminal citas are rejected before any
// backend call, which also makes a double click fail fast the second time.
func (uc *agendaUsecase) MarcarCompletada(ctx context.Context, screenID, citaID string) (*models.AgendaView, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s := uc.screen(screenID)

	cita, found := s.BuscarCita(citaID)
	if !found {
		return nil, exceptions.ErrCitaNoEncontrada(nil, citaID)
	}
	if !models.PuedeTransicionar(cita.EstadoCita, constvars.EstadoCompletada) {
		return nil, exceptions.ErrTransicionEstado(cita.EstadoCita, constvars.EstadoCompletada)
	}

	if _, err := uc.CitaGateway.CambiarEstado(ctx, citaID, constvars.EstadoCompletada, ""); err != nil {
		uc.Log.Error("agendaUsecase.MarcarCompletada estado change failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingCitaIDKey, citaID),
			zap.Error(err),
		)
		s.SetAviso(constvars.TituloError, clientMessage(err))
		return s.View(), nil
	}

	uc.afterMutation(ctx, s, screenID, requestID, citaID, constvars.AccionCambioEstado, constvars.EstadoCompletada, "")
	s.SetAviso(constvars.TituloExito, fmt.Sprintf(constvars.CitaCompletadaFmt, citaID))
	return s.View(), nil
}

func (uc *agendaUsecase) ConfirmarCancelacion(ctx context.Context, screenID string) (*models.AgendaView, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s := uc.screen(screenID)

	kind, cita := s.CitaEnOperacion()
	if kind != models.WorkflowConfirmarCancelar || cita == nil {
		return nil, exceptions.ErrSinWorkflowActivo(string(kind))
	}
	if !models.PuedeTransicionar(cita.EstadoCita, constvars.EstadoCancelada) {
		return nil, exceptions.ErrTransicionEstado(cita.EstadoCita, constvars.EstadoCancelada)
	}

	motivo := constvars.MotivoCancelacionAdmin
	if _, err := uc.CitaGateway.CambiarEstado(ctx, cita.ID, constvars.EstadoCancelada, motivo); err != nil {
		uc.Log.Error("agendaUsecase.ConfirmarCancelacion estado change failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingCitaIDKey, cita.ID),
			zap.Error(err),
		)
		s.SetAviso(constvars.TituloErrorCancelar, clientMessage(err))
		return s.View(), nil
	}

	uc.afterMutation(ctx, s, screenID, requestID, cita.ID, constvars.AccionCambioEstado, constvars.EstadoCancelada, motivo)
	s.SetAviso(constvars.TituloExito, fmt.Sprintf(constvars.CitaCanceladaFmt, cita.ID, cita.ClienteNombre))
	return s.View(), nil
}

// recargar pulls the full list from the core API and replaces the screen's
// copy, sorted by Inicio descending. Reload-after-mutation keeps the view
// consistent with backend-computed derived fields.
func (uc *agendaUsecase) recargar(ctx context.Context, s *Screen) error {
	citas, err := uc.CitaGateway.FindAll(ctx)
	if err != nil {
		return err
	}
	s.SetCitas(citas)
	return nil
}

// afterMutation runs the shared success path: reload, close workflows, record
// the bitacora entry and publish the event. Reload failures are logged only;
// the mutation already happened and its success aviso must win.
func (uc *agendaUsecase) afterMutation(ctx context.Context, s *Screen, screenID, requestID, citaID, accion, estado, motivo string) {
	if err := uc.recargar(ctx, s); err != nil {
		uc.Log.Warn("agendaUsecase reload after mutation failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAccionKey, accion),
			zap.Error(err),
		)
	}
	s.CerrarWorkflows()

	uc.Bitacora.Registrar(ctx, &models.RegistroBitacora{
		Accion:    accion,
		CitaID:    citaID,
		Estado:    estado,
		Motivo:    motivo,
		ScreenID:  screenID,
		RequestID: requestID,
		CreadoEn:  time.Now(),
	})

	if err := uc.EventPublisher.Publish(ctx, &contracts.CitaEvent{
		ID:         uuid.NewString(),
		CitaID:     citaID,
		Accion:     accion,
		Estado:     estado,
		Motivo:     motivo,
		ScreenID:   screenID,
		OccurredAt: time.Now().Format(time.RFC3339),
	}); err != nil {
		uc.Log.Warn("agendaUsecase event publish failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAccionKey, accion),
			zap.Error(err),
		)
	}
}

func clientMessage(err error) string {
	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		return customErr.ClientMessage
	}
	return err.Error()
}
