package controllers

import (
	"citas-service/internal/app/config"
	"citas-service/internal/app/contracts"
	"citas-service/internal/pkg/constvars"
	"citas-service/internal/pkg/exceptions"
	"citas-service/internal/pkg/utils"
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type CatalogoController struct {
	Log             *zap.Logger
	CatalogoUsecase contracts.CatalogoUsecase
	Timeout         time.Duration
}

func NewCatalogoController(logger *zap.Logger, catalogoUsecase contracts.CatalogoUsecase, internalConfig *config.InternalConfig) *CatalogoController {
	return &CatalogoController{
		Log:             logger,
		CatalogoUsecase: catalogoUsecase,
		Timeout:         time.Duration(internalConfig.App.RequestTimeoutSeconds) * time.Second,
	}
}

func (ctrl *CatalogoController) FindServicios(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("CatalogoController.FindServicios requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), ctrl.Timeout)
	defer cancel()

	response, err := ctrl.CatalogoUsecase.GetServiciosDisponibles(ctx)
	if err != nil {
		ctrl.Log.Error("CatalogoController.FindServicios failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CatalogoGetSuccess, response)
}

func (ctrl *CatalogoController) FindClientes(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("CatalogoController.FindClientes requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), ctrl.Timeout)
	defer cancel()

	response, err := ctrl.CatalogoUsecase.GetClientes(ctx)
	if err != nil {
		ctrl.Log.Error("CatalogoController.FindClientes failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CatalogoGetSuccess, response)
}

// FindEmpleados never fails: the listing degrades to an empty slice so the
// booking form can still open without empleado options.
func (ctrl *CatalogoController) FindEmpleados(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), ctrl.Timeout)
	defer cancel()

	response := ctrl.CatalogoUsecase.GetEmpleadosDisponibles(ctx)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CatalogoGetSuccess, response)
}

func (ctrl *CatalogoController) FindNovedades(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("CatalogoController.FindNovedades requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), ctrl.Timeout)
	defer cancel()

	response, err := ctrl.CatalogoUsecase.GetNovedades(ctx)
	if err != nil {
		ctrl.Log.Error("CatalogoController.FindNovedades failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CatalogoGetSuccess, response)
}
