package catalogos

import (
	"citas-service/internal/app/contracts"
	"citas-service/internal/app/models"
	"citas-service/internal/pkg/constvars"
	"citas-service/internal/pkg/dto/responses"
	"citas-service/internal/pkg/exceptions"
	"citas-service/internal/pkg/utils"
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type catalogoRestClient struct {
	BaseUrl    string
	HTTPClient *http.Client
	Log        *zap.Logger
}

func NewCatalogoRestClient(baseUrl string, timeout time.Duration, logger *zap.Logger) contracts.CatalogoGateway {
	return &catalogoRestClient{
		BaseUrl:    baseUrl,
		HTTPClient: &http.Client{Timeout: timeout},
		Log:        logger,
	}
}

func (c *catalogoRestClient) FindServiciosDisponibles(ctx context.Context) ([]models.Servicio, error) {
	url := fmt.Sprintf("%s%s?estado=true", c.BaseUrl, constvars.ResourceServicios)
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, url, nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, exceptions.ErrCargarServicios(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return nil, exceptions.ErrCargarServicios(fmt.Errorf("status %d", resp.StatusCode))
	}

	var envelope responses.ServicioListEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceServicios)
	}

	servicios := make([]models.Servicio, 0, len(envelope.Data.Data))
	for _, wire := range envelope.Data.Data {
		servicios = append(servicios, models.Servicio{
			ID:          utils.NormalizarID(wire.IDServicio),
			Nombre:      wire.Nombre,
			Descripcion: wire.Descripcion,
			Precio:      utils.NormalizarPrecio(wire.Precio),
			Estado:      wire.Estado,
		})
	}
	return servicios, nil
}

func (c *catalogoRestClient) FindClientes(ctx context.Context) ([]models.Cliente, error) {
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, c.BaseUrl+constvars.ResourceClientes, nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, exceptions.ErrCargarClientes(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return nil, exceptions.ErrCargarClientes(fmt.Errorf("status %d", resp.StatusCode))
	}

	var envelope responses.ClienteListEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceClientes)
	}

	clientes := make([]models.Cliente, 0, len(envelope.Data.Data))
	for _, wire := range envelope.Data.Data {
		clientes = append(clientes, models.Cliente{
			ID:       utils.NormalizarID(wire.ID),
			Nombre:   wire.Nombre,
			Apellido: wire.Apellido,
			Telefono: wire.Telefono,
			Correo:   wire.Correo,
		})
	}
	return clientes, nil
}

// FindEmpleadosDisponibles tolerates every failure: a broken empleados
// endpoint must not take the agenda form down, so it degrades to an empty
// slice and leaves a warning in the log.
func (c *catalogoRestClient) FindEmpleadosDisponibles(ctx context.Context) []models.Empleado {
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, c.BaseUrl+constvars.ResourceEmpleados, nil)
	if err != nil {
		c.Log.Warn("catalogoRestClient.FindEmpleadosDisponibles failed to build request", zap.Error(err))
		return []models.Empleado{}
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Warn("catalogoRestClient.FindEmpleadosDisponibles request failed", zap.Error(err))
		return []models.Empleado{}
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		c.Log.Warn("catalogoRestClient.FindEmpleadosDisponibles unexpected status",
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode))
		return []models.Empleado{}
	}

	var envelope responses.EmpleadoListEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		c.Log.Warn("catalogoRestClient.FindEmpleadosDisponibles failed to decode response", zap.Error(err))
		return []models.Empleado{}
	}

	empleados := make([]models.Empleado, 0, len(envelope.Data.Data))
	for _, wire := range envelope.Data.Data {
		empleados = append(empleados, models.Empleado{
			ID:       utils.NormalizarID(wire.IDUsuario),
			Nombre:   wire.Nombre,
			Apellido: wire.Apellido,
		})
	}
	return empleados
}

func (c *catalogoRestClient) FindNovedades(ctx context.Context) ([]models.Novedad, error) {
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, c.BaseUrl+constvars.ResourceNovedades, nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, exceptions.ErrCargarNovedades(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return nil, exceptions.ErrCargarNovedades(fmt.Errorf("status %d", resp.StatusCode))
	}

	var envelope responses.NovedadListEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceNovedades)
	}

	novedades := make([]models.Novedad, 0, len(envelope.Data.Data))
	for _, wire := range envelope.Data.Data {
		novedades = append(novedades, models.Novedad{
			ID:         utils.NormalizarID(wire.ID),
			Fecha:      wire.Fecha,
			HoraInicio: wire.HoraInicio,
			HoraFin:    wire.HoraFin,
			IDEmpleado: utils.NormalizarID(wire.IDEmpleado),
			Agendable:  wire.Agendable,
		})
	}
	return novedades, nil
}
