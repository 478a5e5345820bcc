package exceptions

import (
	"citas-service/internal/pkg/constvars"
	"fmt"
)

var (
	ErrCitaSinID = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCitaSinID)
	}
	ErrTransicionEstado = func(desde, hacia string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusConflict, constvars.ErrClientTransicionEstado, fmt.Sprintf(constvars.ErrDevEstadoTransition, desde, hacia))
	}
	ErrRangoHorario = func(horaInicio, horaFin string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, "La hora de inicio debe ser anterior a la hora de fin.", fmt.Sprintf("horaInicio %q is not before horaFin %q", horaInicio, horaFin))
	}
	ErrSinWorkflowActivo = func(activo string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusConflict, constvars.ErrClientSinWorkflowActivo, fmt.Sprintf(constvars.ErrDevWorkflowMismatch, activo))
	}
	ErrMissingRequestID = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApp, constvars.ErrDevMissingRequestID)
	}
	ErrMissingScreenID = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevMissingScreenID)
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusGatewayTimeout, constvars.ErrClientSomethingWrongWithApp, constvars.ErrDevServerDeadlineExcd)
	}
)
