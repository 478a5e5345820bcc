package controllers

import (
	"citas-service/internal/app/config"
	"citas-service/internal/app/contracts"
	"citas-service/internal/pkg/constvars"
	"citas-service/internal/pkg/exceptions"
	"citas-service/internal/pkg/utils"
	"context"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"
)

const defaultBitacoraLimit = 50

type BitacoraController struct {
	Log             *zap.Logger
	BitacoraUsecase contracts.BitacoraUsecase
	Timeout         time.Duration
}

func NewBitacoraController(logger *zap.Logger, bitacoraUsecase contracts.BitacoraUsecase, internalConfig *config.InternalConfig) *BitacoraController {
	return &BitacoraController{
		Log:             logger,
		BitacoraUsecase: bitacoraUsecase,
		Timeout:         time.Duration(internalConfig.App.RequestTimeoutSeconds) * time.Second,
	}
}

func (ctrl *BitacoraController) FindRecent(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("BitacoraController.FindRecent requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	limit := int64(defaultBitacoraLimit)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed < 1 {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
			return
		}
		limit = parsed
	}

	ctx, cancel := context.WithTimeout(context.Background(), ctrl.Timeout)
	defer cancel()

	response, err := ctrl.BitacoraUsecase.FindRecent(ctx, limit)
	if err != nil {
		ctrl.Log.Error("BitacoraController.FindRecent failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.BitacoraGetSuccess, response)
}
