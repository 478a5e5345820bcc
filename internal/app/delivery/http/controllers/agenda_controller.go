package controllers

import (
	"citas-service/internal/app/config"
	"citas-service/internal/app/contracts"
	"citas-service/internal/app/models"
	"citas-service/internal/pkg/constvars"
	"citas-service/internal/pkg/dto/requests"
	"citas-service/internal/pkg/exceptions"
	"citas-service/internal/pkg/utils"
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AgendaController struct {
	Log           *zap.Logger
	AgendaUsecase contracts.AgendaUsecase
	Timeout       time.Duration
}

func NewAgendaController(logger *zap.Logger, agendaUsecase contracts.AgendaUsecase, internalConfig *config.InternalConfig) *AgendaController {
	return &AgendaController{
		Log:           logger,
		AgendaUsecase: agendaUsecase,
		Timeout:       time.Duration(internalConfig.App.RequestTimeoutSeconds) * time.Second,
	}
}

// ids pulls the request and screen identifiers the middlewares stored in the
// request context. Every agenda endpoint needs both.
func (ctrl *AgendaController) ids(w http.ResponseWriter, r *http.Request, op string) (requestID, screenID string, ok bool) {
	requestID, ok = r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error(op + " requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return "", "", false
	}
	screenID, ok = r.Context().Value(constvars.CONTEXT_SCREEN_ID_KEY).(string)
	if !ok || screenID == "" {
		ctrl.Log.Error(op+" screenID not found in context",
			zap.String(constvars.LoggingRequestIDKey, requestID))
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingScreenID(nil))
		return "", "", false
	}
	return requestID, screenID, true
}

func (ctrl *AgendaController) Ver(w http.ResponseWriter, r *http.Request) {
	requestID, screenID, ok := ctrl.ids(w, r, "AgendaController.Ver")
	if !ok {
		return
	}

	ctx, cancel := ctrl.operationContext(requestID, screenID)
	defer cancel()

	response, err := ctrl.AgendaUsecase.Ver(ctx, screenID)
	if err != nil {
		ctrl.respondError(w, "AgendaController.Ver", requestID, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AgendaGetSuccess, response)
}

func (ctrl *AgendaController) Cargar(w http.ResponseWriter, r *http.Request) {
	requestID, screenID, ok := ctrl.ids(w, r, "AgendaController.Cargar")
	if !ok {
		return
	}
	ctrl.Log.Info("AgendaController.Cargar called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingScreenIDKey, screenID))

	ctx, cancel := ctrl.operationContext(requestID, screenID)
	defer cancel()

	response, err := ctrl.AgendaUsecase.CargarAgenda(ctx, screenID)
	if err != nil {
		ctrl.respondError(w, "AgendaController.Cargar", requestID, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AgendaGetSuccess, response)
}

func (ctrl *AgendaController) Filtrar(w http.ResponseWriter, r *http.Request) {
	requestID, screenID, ok := ctrl.ids(w, r, "AgendaController.Filtrar")
	if !ok {
		return
	}

	request := new(requests.FiltrarAgenda)
	if err := utils.ParseRequestBody(r, request); err != nil {
		ctrl.Log.Error("AgendaController.Filtrar invalid request body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := ctrl.operationContext(requestID, screenID)
	defer cancel()

	response, err := ctrl.AgendaUsecase.Filtrar(ctx, screenID, request)
	if err != nil {
		ctrl.respondError(w, "AgendaController.Filtrar", requestID, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AgendaGetSuccess, response)
}

func (ctrl *AgendaController) AbrirFormulario(w http.ResponseWriter, r *http.Request) {
	requestID, screenID, ok := ctrl.ids(w, r, "AgendaController.AbrirFormulario")
	if !ok {
		return
	}

	// citaID is optional here: absent means a blank creation form.
	citaID := chi.URLParam(r, "citaID")

	ctx, cancel := ctrl.operationContext(requestID, screenID)
	defer cancel()

	response, err := ctrl.AgendaUsecase.AbrirFormulario(ctx, screenID, citaID)
	if err != nil {
		ctrl.respondError(w, "AgendaController.AbrirFormulario", requestID, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.WorkflowOpenedSuccess, response)
}

func (ctrl *AgendaController) VerDetalle(w http.ResponseWriter, r *http.Request) {
	ctrl.workflowOpener(w, r, "AgendaController.VerDetalle", ctrl.AgendaUsecase.VerDetalle)
}

func (ctrl *AgendaController) AbrirConfirmacionEliminar(w http.ResponseWriter, r *http.Request) {
	ctrl.workflowOpener(w, r, "AgendaController.AbrirConfirmacionEliminar", ctrl.AgendaUsecase.AbrirConfirmacionEliminar)
}

func (ctrl *AgendaController) AbrirConfirmacionCancelar(w http.ResponseWriter, r *http.Request) {
	ctrl.workflowOpener(w, r, "AgendaController.AbrirConfirmacionCancelar", ctrl.AgendaUsecase.AbrirConfirmacionCancelar)
}

// workflowOpener is the shared handler body for the operations that open a
// workflow over an existing cita identified in the URL.
func (ctrl *AgendaController) workflowOpener(
	w http.ResponseWriter,
	r *http.Request,
	op string,
	open func(ctx context.Context, screenID, citaID string) (*models.AgendaView, error),
) {
	requestID, screenID, ok := ctrl.ids(w, r, op)
	if !ok {
		return
	}

	citaID := chi.URLParam(r, "citaID")
	if citaID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCitaSinID(nil))
		return
	}

	ctx, cancel := ctrl.operationContext(requestID, screenID)
	defer cancel()

	response, err := open(ctx, screenID, citaID)
	if err != nil {
		ctrl.respondError(w, op, requestID, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.WorkflowOpenedSuccess, response)
}

func (ctrl *AgendaController) confirmacion(
	w http.ResponseWriter,
	r *http.Request,
	op string,
	confirm func(ctx context.Context, screenID string) (*models.AgendaView, error),
) {
	requestID, screenID, ok := ctrl.ids(w, r, op)
	if !ok {
		return
	}
	ctrl.Log.Info(op+" called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingScreenIDKey, screenID))

	ctx, cancel := ctrl.operationContext(requestID, screenID)
	defer cancel()

	response, err := confirm(ctx, screenID)
	if err != nil {
		ctrl.respondError(w, op, requestID, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AgendaMutationAccepted, response)
}

func (ctrl *AgendaController) CerrarWorkflows(w http.ResponseWriter, r *http.Request) {
	requestID, screenID, ok := ctrl.ids(w, r, "AgendaController.CerrarWorkflows")
	if !ok {
		return
	}

	ctx, cancel := ctrl.operationContext(requestID, screenID)
	defer cancel()

	response, err := ctrl.AgendaUsecase.CerrarWorkflows(ctx, screenID)
	if err != nil {
		ctrl.respondError(w, "AgendaController.CerrarWorkflows", requestID, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.WorkflowClosedSuccess, response)
}

func (ctrl *AgendaController) GuardarCita(w http.ResponseWriter, r *http.Request) {
	requestID, screenID, ok := ctrl.ids(w, r, "AgendaController.GuardarCita")
	if !ok {
		return
	}

	request := new(requests.GuardarCita)
	if err := utils.ParseRequestBody(r, request); err != nil {
		ctrl.Log.Error("AgendaController.GuardarCita invalid request body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	ctrl.Log.Info("AgendaController.GuardarCita called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingScreenIDKey, screenID),
		zap.String(constvars.LoggingCitaIDKey, request.ID))

	ctx, cancel := ctrl.operationContext(requestID, screenID)
	defer cancel()

	response, err := ctrl.AgendaUsecase.GuardarCita(ctx, screenID, request)
	if err != nil {
		ctrl.respondError(w, "AgendaController.GuardarCita", requestID, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AgendaMutationAccepted, response)
}

func (ctrl *AgendaController) ConfirmarEliminacion(w http.ResponseWriter, r *http.Request) {
	ctrl.confirmacion(w, r, "AgendaController.ConfirmarEliminacion", ctrl.AgendaUsecase.ConfirmarEliminacion)
}

func (ctrl *AgendaController) ConfirmarCancelacion(w http.ResponseWriter, r *http.Request) {
	ctrl.confirmacion(w, r, "AgendaController.ConfirmarCancelacion", ctrl.AgendaUsecase.ConfirmarCancelacion)
}

func (ctrl *AgendaController) MarcarCompletada(w http.ResponseWriter, r *http.Request) {
	requestID, screenID, ok := ctrl.ids(w, r, "AgendaController.MarcarCompletada")
	if !ok {
		return
	}

	citaID := chi.URLParam(r, "citaID")
	if citaID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCitaSinID(nil))
		return
	}
	ctrl.Log.Info("AgendaController.MarcarCompletada called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCitaIDKey, citaID))

	ctx, cancel := ctrl.operationContext(requestID, screenID)
	defer cancel()

	response, err := ctrl.AgendaUsecase.MarcarCompletada(ctx, screenID, citaID)
	if err != nil {
		ctrl.respondError(w, "AgendaController.MarcarCompletada", requestID, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AgendaMutationAccepted, response)
}

func (ctrl *AgendaController) operationContext(requestID, screenID string) (context.Context, context.CancelFunc) {
	ctx := context.WithValue(context.Background(), constvars.CONTEXT_REQUEST_ID_KEY, requestID)
	ctx = context.WithValue(ctx, constvars.CONTEXT_SCREEN_ID_KEY, screenID)
	return context.WithTimeout(ctx, ctrl.Timeout)
}

func (ctrl *AgendaController) respondError(w http.ResponseWriter, op, requestID string, err error) {
	ctrl.Log.Error(op+" failed",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Error(err))

	if err == context.DeadlineExceeded {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(ctrl.Log, w, err)
}
