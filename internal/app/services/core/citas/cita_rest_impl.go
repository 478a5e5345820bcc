package citas

import (
	"bytes"
	"citas-service/internal/app/contracts"
	"citas-service/internal/app/models"
	"citas-service/internal/pkg/constvars"
	"citas-service/internal/pkg/dto/requests"
	"citas-service/internal/pkg/dto/responses"
	"citas-service/internal/pkg/exceptions"
	"citas-service/internal/pkg/utils"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

type citaRestClient struct {
	BaseUrl    string
	HTTPClient *http.Client
}

func NewCitaRestClient(baseUrl string, timeout time.Duration) contracts.CitaGateway {
	return &citaRestClient{
		BaseUrl:    baseUrl + constvars.ResourceCitas,
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

func (c *citaRestClient) FindAll(ctx context.Context) ([]models.Cita, error) {
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, c.BaseUrl, nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, exceptions.ErrCargarCitas(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return nil, exceptions.ErrCargarCitas(fmt.Errorf("status %d", resp.StatusCode))
	}

	var envelope responses.CitaListEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceCitas)
	}

	result := make([]models.Cita, 0, len(envelope.Data.Data))
	for _, wire := range envelope.Data.Data {
		cita, err := normalizarCita(wire)
		if err != nil {
			return nil, err
		}
		result = append(result, *cita)
	}
	return result, nil
}

func (c *citaRestClient) Save(ctx context.Context, request *requests.GuardarCita) (*models.Cita, error) {
	requestJSON, err := json.Marshal(request)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	method := constvars.MethodPost
	url := c.BaseUrl
	expectedStatus := constvars.StatusCreated
	if request.ID != "" {
		method = constvars.MethodPut
		url = fmt.Sprintf("%s/%s", c.BaseUrl, request.ID)
		expectedStatus = constvars.StatusOK
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewBuffer(requestJSON))
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != expectedStatus && resp.StatusCode != constvars.StatusOK {
		// Save re-raises the backend's own validation payload so the form can
		// show per-field detail untouched.
		return nil, backendError(resp, "")
	}

	var envelope responses.CitaEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceCitas)
	}
	return normalizarCita(envelope.Data.Data)
}

func (c *citaRestClient) Delete(ctx context.Context, citaID string) error {
	req, err := http.NewRequestWithContext(ctx, constvars.MethodDelete, fmt.Sprintf("%s/%s", c.BaseUrl, citaID), nil)
	if err != nil {
		return exceptions.ErrCreateHTTPRequest(err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return exceptions.ErrEliminarCita(err, "")
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == constvars.StatusNotFound:
		return exceptions.ErrCitaNoEncontrada(nil, citaID)
	case resp.StatusCode >= constvars.StatusBadRequest:
		return exceptions.ErrEliminarCita(fmt.Errorf("status %d", resp.StatusCode), backendMessage(resp))
	}
	return nil
}

func (c *citaRestClient) CambiarEstado(ctx context.Context, citaID, estado, motivo string) (*models.Cita, error) {
	body := requests.CambiarEstado{Estado: estado, MotivoCancelacion: motivo}
	requestJSON, err := json.Marshal(body)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	url := fmt.Sprintf("%s/%s/estado", c.BaseUrl, citaID)
	req, err := http.NewRequestWithContext(ctx, constvars.MethodPatch, url, bytes.NewBuffer(requestJSON))
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, exceptions.ErrCambiarEstado(err, "")
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == constvars.StatusNotFound:
		return nil, exceptions.ErrCitaNoEncontrada(nil, citaID)
	case resp.StatusCode >= constvars.StatusBadRequest:
		return nil, exceptions.ErrCambiarEstado(fmt.Errorf("status %d", resp.StatusCode), backendMessage(resp))
	}

	var envelope responses.CitaEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceCitas)
	}
	return normalizarCita(envelope.Data.Data)
}

// normalizarCita resolves every wire-format quirk into the internal model:
// split fecha/hora fields become timestamps, nested entities become display
// names with fallbacks, service names get joined for the table view.
func normalizarCita(wire responses.CitaWire) (*models.Cita, error) {
	inicio, err := utils.CombinarFechaHora(wire.Fecha, wire.HoraInicio)
	if err != nil {
		return nil, exceptions.ErrCombinarFechaHora(err, wire.Fecha, wire.HoraInicio)
	}
	fin, err := utils.CombinarFechaHora(wire.Fecha, wire.HoraFin)
	if err != nil {
		return nil, exceptions.ErrCombinarFechaHora(err, wire.Fecha, wire.HoraFin)
	}

	clienteNombre := constvars.SinCliente
	if wire.Cliente != nil && wire.Cliente.Nombre != "" {
		clienteNombre = strings.TrimSpace(fmt.Sprintf("%s %s", wire.Cliente.Nombre, wire.Cliente.Apellido))
	}

	empleadoNombre := constvars.SinEmpleado
	if wire.Empleado != nil && wire.Empleado.Nombre != "" {
		empleadoNombre = wire.Empleado.Nombre
	}

	servicios := make([]models.ServicioProgramado, 0, len(wire.ServiciosProgramados))
	nombres := make([]string, 0, len(wire.ServiciosProgramados))
	for _, s := range wire.ServiciosProgramados {
		servicios = append(servicios, models.ServicioProgramado{
			ID:     utils.NormalizarID(s.IDServicio),
			Nombre: s.Nombre,
			Precio: utils.NormalizarPrecio(s.Precio),
		})
		nombres = append(nombres, s.Nombre)
	}

	return &models.Cita{
		ID:                utils.NormalizarID(wire.ID),
		Inicio:            inicio,
		Fin:               fin,
		EstadoCita:        wire.EstadoCita,
		MotivoCancelacion: wire.MotivoCancelacion,
		ClienteNombre:     clienteNombre,
		EmpleadoNombre:    empleadoNombre,
		Servicios:         servicios,
		ServiciosNombres:  strings.Join(nombres, ", "),
	}, nil
}

func backendMessage(resp *http.Response) string {
	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return ""
	}
	var coreErr responses.CoreAPIError
	if err := json.Unmarshal(bodyBytes, &coreErr); err != nil {
		return ""
	}
	return coreErr.Message
}

func backendError(resp *http.Response, fallback string) error {
	bodyBytes, _ := io.ReadAll(resp.Body)
	var coreErr responses.CoreAPIError
	message := fallback
	if json.Unmarshal(bodyBytes, &coreErr) == nil && coreErr.Message != "" {
		message = coreErr.Message
	}
	return exceptions.ErrBackendValidation(resp.StatusCode, message, string(bodyBytes))
}
