package exceptions

import (
	"citas-service/internal/pkg/constvars"
	"fmt"
)

// Errors raised by the core API gateway layer. The client messages mirror the
// notices the admin agenda shows for each failed operation.
var (
	ErrCreateHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApp, constvars.ErrDevCreateHTTPRequest)
	}
	ErrSendHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientSomethingWrongWithApp, constvars.ErrDevSendHTTPRequest)
	}
	ErrDecodeResponse = func(err error, resource string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientSomethingWrongWithApp, fmt.Sprintf(constvars.ErrDevDecodeResponse, resource))
	}
	ErrCargarCitas = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientCargarCitas, fmt.Sprintf(constvars.ErrDevCoreAPIStatus, 0, constvars.ResourceCitas))
	}
	ErrEliminarCita = func(err error, detail string) *CustomError {
		clientMessage := constvars.ErrClientEliminarCita
		if detail != "" {
			clientMessage = detail
		}
		return BuildNewCustomError(err, constvars.StatusBadGateway, clientMessage, "core API rejected cita deletion")
	}
	ErrCambiarEstado = func(err error, detail string) *CustomError {
		clientMessage := constvars.ErrClientCambiarEstado
		if detail != "" {
			clientMessage = detail
		}
		return BuildNewCustomError(err, constvars.StatusBadGateway, clientMessage, "core API rejected estado change")
	}
	ErrCargarServicios = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientCargarServicios, fmt.Sprintf(constvars.ErrDevCoreAPIStatus, 0, constvars.ResourceServicios))
	}
	ErrCargarClientes = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientCargarClientes, fmt.Sprintf(constvars.ErrDevCoreAPIStatus, 0, constvars.ResourceClientes))
	}
	ErrCargarNovedades = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientCargarNovedades, fmt.Sprintf(constvars.ErrDevCoreAPIStatus, 0, constvars.ResourceNovedades))
	}
	ErrCitaNoEncontrada = func(err error, citaID string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientCitaNoEncontrada, fmt.Sprintf("cita %s not found upstream", citaID))
	}
	// ErrBackendValidation re-raises the backend's own validation payload so the
	// save workflow can surface per-field detail untouched.
	ErrBackendValidation = func(statusCode int, message string, detail string) *CustomError {
		if message == "" {
			message = constvars.ErrClientGuardarCita
		}
		return &CustomError{
			StatusCode:    statusCode,
			ClientMessage: message,
			DevMessage:    fmt.Sprintf("core API validation rejected cita: %s", detail),
		}
	}
	ErrCombinarFechaHora = func(err error, fecha, hora string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientCargarCitas, fmt.Sprintf(constvars.ErrDevCombinarFechaHora, fecha, hora))
	}
)
