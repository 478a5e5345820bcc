package agenda

import (
	"citas-service/internal/app/contracts"
	"citas-service/internal/app/models"
	"citas-service/internal/pkg/constvars"
	"citas-service/internal/pkg/dto/requests"
	"citas-service/internal/pkg/exceptions"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeCitaGateway struct {
	citas        []models.Cita
	findAllErr   error
	saveErr      error
	deleteErr    error
	cambiarErr   error
	savedRequest *requests.GuardarCita
	deletedID    string
	cambiadaID   string
	estado       string
	motivo       string
	findAllCalls int
}

func (f *fakeCitaGateway) FindAll(ctx context.Context) ([]models.Cita, error) {
	f.findAllCalls++
	if f.findAllErr != nil {
		return nil, f.findAllErr
	}
	return f.citas, nil
}

func (f *fakeCitaGateway) Save(ctx context.Context, request *requests.GuardarCita) (*models.Cita, error) {
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	f.savedRequest = request
	return &models.Cita{ID: "10", EstadoCita: constvars.EstadoProgramada}, nil
}

func (f *fakeCitaGateway) Delete(ctx context.Context, citaID string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletedID = citaID
	return nil
}

func (f *fakeCitaGateway) CambiarEstado(ctx context.Context, citaID, estado, motivo string) (*models.Cita, error) {
	if f.cambiarErr != nil {
		return nil, f.cambiarErr
	}
	f.cambiadaID = citaID
	f.estado = estado
	f.motivo = motivo
	return &models.Cita{ID: citaID, EstadoCita: estado}, nil
}

type fakePublisher struct {
	events []*contracts.CitaEvent
	err    error
}

func (f *fakePublisher) Publish(ctx context.Context, event *contracts.CitaEvent) error {
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, event)
	return nil
}

type fakeBitacora struct {
	registros []*models.RegistroBitacora
}

func (f *fakeBitacora) Registrar(ctx context.Context, registro *models.RegistroBitacora) {
	f.registros = append(f.registros, registro)
}

func (f *fakeBitacora) FindRecent(ctx context.Context, limit int64) ([]models.RegistroBitacora, error) {
	return nil, nil
}

func newTestUsecase(gateway *fakeCitaGateway) (contracts.AgendaUsecase, *fakePublisher, *fakeBitacora) {
	publisher := &fakePublisher{}
	registry := &fakeBitacora{}
	return NewAgendaUsecase(gateway, publisher, registry, zap.NewNop()), publisher, registry
}

func testContext() context.Context {
	return context.WithValue(context.Background(), constvars.CONTEXT_REQUEST_ID_KEY, "req-1")
}

func validGuardar() *requests.GuardarCita {
	return &requests.GuardarCita{
		Fecha:      "2024-05-01",
		HoraInicio: "09:00",
		HoraFin:    "10:00",
		IDCliente:  "7",
		IDEmpleado: "3",
		Servicios:  []string{"5"},
	}
}

func TestCargarAgenda(t *testing.T) {
	t.Run("stores the list sorted descending", func(t *testing.T) {
		gateway := &fakeCitaGateway{citas: buildCitas()}
		uc, _, _ := newTestUsecase(gateway)

		view, err := uc.CargarAgenda(testContext(), "tab-1")
		require.NoError(t, err)
		assert.False(t, view.Cargando)
		require.Len(t, view.Citas, 3)
		assert.Equal(t, "2", view.Citas[0].ID)
	})

	t.Run("failure keeps prior list and sets carga aviso", func(t *testing.T) {
		gateway := &fakeCitaGateway{citas: buildCitas()}
		uc, _, _ := newTestUsecase(gateway)

		_, err := uc.CargarAgenda(testContext(), "tab-1")
		require.NoError(t, err)

		gateway.findAllErr = errors.New("core api down")
		view, err := uc.CargarAgenda(testContext(), "tab-1")
		require.NoError(t, err)

		assert.Len(t, view.Citas, 3, "previous list survives a failed reload")
		assert.Equal(t, models.WorkflowAviso, view.Workflow.Kind)
		assert.Equal(t, constvars.TituloErrorCarga, view.Workflow.Aviso.Titulo)
		assert.False(t, view.Cargando, "loading flag is cleared before the view is returned")
	})

	t.Run("screens are isolated by id", func(t *testing.T) {
		gateway := &fakeCitaGateway{citas: buildCitas()}
		uc, _, _ := newTestUsecase(gateway)

		_, err := uc.CargarAgenda(testContext(), "tab-1")
		require.NoError(t, err)

		view, err := uc.Ver(testContext(), "tab-2")
		require.NoError(t, err)
		assert.Empty(t, view.Citas)
	})
}

func TestFiltrar(t *testing.T) {
	gateway := &fakeCitaGateway{citas: buildCitas()}
	uc, _, _ := newTestUsecase(gateway)

	_, err := uc.CargarAgenda(testContext(), "tab-1")
	require.NoError(t, err)

	view, err := uc.Filtrar(testContext(), "tab-1", &requests.FiltrarAgenda{Busqueda: "ana"})
	require.NoError(t, err)
	require.Len(t, view.Citas, 1)
	assert.Equal(t, "1", view.Citas[0].ID)
	assert.Equal(t, constvars.EstadoFiltroTodos, view.EstadoFiltro)
}

func TestGuardarCita(t *testing.T) {
	t.Run("create reloads, closes workflows and sets exito", func(t *testing.T) {
		gateway := &fakeCitaGateway{citas: buildCitas()}
		uc, publisher, registry := newTestUsecase(gateway)

		_, err := uc.CargarAgenda(testContext(), "tab-1")
		require.NoError(t, err)
		_, err = uc.AbrirFormulario(testContext(), "tab-1", "")
		require.NoError(t, err)

		view, err := uc.GuardarCita(testContext(), "tab-1", validGuardar())
		require.NoError(t, err)

		require.NotNil(t, gateway.savedRequest)
		assert.Equal(t, models.WorkflowAviso, view.Workflow.Kind)
		assert.Equal(t, constvars.TituloExito, view.Workflow.Aviso.Titulo)
		assert.Equal(t, constvars.CitaCreatedSuccess, view.Workflow.Aviso.Mensaje)
		assert.Equal(t, 2, gateway.findAllCalls, "mutation triggers a reload")

		require.Len(t, publisher.events, 1)
		assert.Equal(t, constvars.AccionCrear, publisher.events[0].Accion)
		require.Len(t, registry.registros, 1)
		assert.Equal(t, "req-1", registry.registros[0].RequestID)
	})

	t.Run("update uses actualizar accion and message", func(t *testing.T) {
		gateway := &fakeCitaGateway{citas: buildCitas()}
		uc, publisher, _ := newTestUsecase(gateway)

		request := validGuardar()
		request.ID = "1"
		view, err := uc.GuardarCita(testContext(), "tab-1", request)
		require.NoError(t, err)

		assert.Equal(t, constvars.CitaUpdatedSuccess, view.Workflow.Aviso.Mensaje)
		require.Len(t, publisher.events, 1)
		assert.Equal(t, constvars.AccionActualizar, publisher.events[0].Accion)
	})

	t.Run("invalid payload is rejected before the gateway", func(t *testing.T) {
		gateway := &fakeCitaGateway{}
		uc, _, _ := newTestUsecase(gateway)

		request := validGuardar()
		request.HoraInicio = "25:99"
		_, err := uc.GuardarCita(testContext(), "tab-1", request)

		require.Error(t, err)
		assert.Nil(t, gateway.savedRequest)
	})

	t.Run("inverted hora range is rejected", func(t *testing.T) {
		gateway := &fakeCitaGateway{}
		uc, _, _ := newTestUsecase(gateway)

		request := validGuardar()
		request.HoraInicio = "11:00"
		request.HoraFin = "10:00"
		_, err := uc.GuardarCita(testContext(), "tab-1", request)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	})

	t.Run("backend rejection becomes guardar aviso with backend message", func(t *testing.T) {
		gateway := &fakeCitaGateway{
			citas:   buildCitas(),
			saveErr: exceptions.ErrBackendValidation(422, "El empleado no está disponible", ""),
		}
		uc, publisher, _ := newTestUsecase(gateway)

		_, err := uc.CargarAgenda(testContext(), "tab-1")
		require.NoError(t, err)

		view, err := uc.GuardarCita(testContext(), "tab-1", validGuardar())
		require.NoError(t, err)

		assert.Equal(t, constvars.TituloErrorGuardar, view.Workflow.Aviso.Titulo)
		assert.Equal(t, "El empleado no está disponible", view.Workflow.Aviso.Mensaje)
		assert.Len(t, view.Citas, 3, "list untouched on failure")
		assert.Empty(t, publisher.events)
	})
}

func TestConfirmarEliminacion(t *testing.T) {
	t.Run("requires the eliminar workflow to be active", func(t *testing.T) {
		gateway := &fakeCitaGateway{citas: buildCitas()}
		uc, _, _ := newTestUsecase(gateway)

		_, err := uc.CargarAgenda(testContext(), "tab-1")
		require.NoError(t, err)

		_, err = uc.ConfirmarEliminacion(testContext(), "tab-1")
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
	})

	t.Run("success names the cliente in the aviso", func(t *testing.T) {
		gateway := &fakeCitaGateway{citas: buildCitas()}
		uc, publisher, _ := newTestUsecase(gateway)

		_, err := uc.CargarAgenda(testContext(), "tab-1")
		require.NoError(t, err)
		_, err = uc.AbrirConfirmacionEliminar(testContext(), "tab-1", "1")
		require.NoError(t, err)

		view, err := uc.ConfirmarEliminacion(testContext(), "tab-1")
		require.NoError(t, err)

		assert.Equal(t, "1", gateway.deletedID)
		assert.Equal(t, constvars.TituloExito, view.Workflow.Aviso.Titulo)
		assert.Equal(t, fmt.Sprintf(constvars.CitaDeletedSuccessFmt, "Ana Torres"), view.Workflow.Aviso.Mensaje)
		require.Len(t, publisher.events, 1)
		assert.Equal(t, constvars.AccionEliminar, publisher.events[0].Accion)
	})

	t.Run("gateway failure sets eliminar aviso and keeps list", func(t *testing.T) {
		gateway := &fakeCitaGateway{
			citas:     buildCitas(),
			deleteErr: exceptions.ErrEliminarCita(errors.New("status 500"), ""),
		}
		uc, _, _ := newTestUsecase(gateway)

		_, err := uc.CargarAgenda(testContext(), "tab-1")
		require.NoError(t, err)
		_, err = uc.AbrirConfirmacionEliminar(testContext(), "tab-1", "1")
		require.NoError(t, err)

		view, err := uc.ConfirmarEliminacion(testContext(), "tab-1")
		require.NoError(t, err)

		assert.Equal(t, constvars.TituloErrorEliminar, view.Workflow.Aviso.Titulo)
		assert.Len(t, view.Citas, 3)
	})
}

func TestMarcarCompletada(t *testing.T) {
	t.Run("transitions a programada cita", func(t *testing.T) {
		gateway := &fakeCitaGateway{citas: buildCitas()}
		uc, publisher, _ := newTestUsecase(gateway)

		_, err := uc.CargarAgenda(testContext(), "tab-1")
		require.NoError(t, err)

		view, err := uc.MarcarCompletada(testContext(), "tab-1", "1")
		require.NoError(t, err)

		assert.Equal(t, constvars.EstadoCompletada, gateway.estado)
		assert.Equal(t, constvars.TituloExito, view.Workflow.Aviso.Titulo)
		require.Len(t, publisher.events, 1)
		assert.Equal(t, constvars.AccionCambioEstado, publisher.events[0].Accion)
	})

	t.Run("terminal estados are rejected locally", func(t *testing.T) {
		gateway := &fakeCitaGateway{citas: buildCitas()}
		uc, _, _ := newTestUsecase(gateway)

		_, err := uc.CargarAgenda(testContext(), "tab-1")
		require.NoError(t, err)

		_, err = uc.MarcarCompletada(testContext(), "tab-1", "3")
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
		assert.Empty(t, gateway.cambiadaID, "no backend call for terminal estados")
	})

	t.Run("unknown cita yields not found", func(t *testing.T) {
		gateway := &fakeCitaGateway{citas: buildCitas()}
		uc, _, _ := newTestUsecase(gateway)

		_, err := uc.CargarAgenda(testContext(), "tab-1")
		require.NoError(t, err)

		_, err = uc.MarcarCompletada(testContext(), "tab-1", "99")
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})
}

func TestConfirmarCancelacion(t *testing.T) {
	t.Run("uses the fixed admin motivo", func(t *testing.T) {
		gateway := &fakeCitaGateway{citas: buildCitas()}
		uc, _, registry := newTestUsecase(gateway)

		_, err := uc.CargarAgenda(testContext(), "tab-1")
		require.NoError(t, err)
		_, err = uc.AbrirConfirmacionCancelar(testContext(), "tab-1", "1")
		require.NoError(t, err)

		view, err := uc.ConfirmarCancelacion(testContext(), "tab-1")
		require.NoError(t, err)

		assert.Equal(t, constvars.EstadoCancelada, gateway.estado)
		assert.Equal(t, constvars.MotivoCancelacionAdmin, gateway.motivo)
		assert.Equal(t, constvars.TituloExito, view.Workflow.Aviso.Titulo)
		assert.Equal(t, fmt.Sprintf(constvars.CitaCanceladaFmt, "1", "Ana Torres"), view.Workflow.Aviso.Mensaje)
		require.Len(t, registry.registros, 1)
		assert.Equal(t, constvars.MotivoCancelacionAdmin, registry.registros[0].Motivo)
	})

	t.Run("cancelling a cancelled cita is rejected", func(t *testing.T) {
		gateway := &fakeCitaGateway{citas: buildCitas()}
		uc, _, _ := newTestUsecase(gateway)

		_, err := uc.CargarAgenda(testContext(), "tab-1")
		require.NoError(t, err)
		_, err = uc.AbrirConfirmacionCancelar(testContext(), "tab-1", "2")
		require.NoError(t, err)

		_, err = uc.ConfirmarCancelacion(testContext(), "tab-1")
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
	})

	t.Run("publish failure never breaks the workflow", func(t *testing.T) {
		gateway := &fakeCitaGateway{citas: buildCitas()}
		publisher := &fakePublisher{err: errors.New("broker gone")}
		uc := NewAgendaUsecase(gateway, publisher, &fakeBitacora{}, zap.NewNop())

		_, err := uc.CargarAgenda(testContext(), "tab-1")
		require.NoError(t, err)
		_, err = uc.AbrirConfirmacionCancelar(testContext(), "tab-1", "1")
		require.NoError(t, err)

		view, err := uc.ConfirmarCancelacion(testContext(), "tab-1")
		require.NoError(t, err)
		assert.Equal(t, constvars.TituloExito, view.Workflow.Aviso.Titulo)
	})
}

func TestVerDetalleUnknownCita(t *testing.T) {
	gateway := &fakeCitaGateway{citas: buildCitas()}
	uc, _, _ := newTestUsecase(gateway)

	_, err := uc.CargarAgenda(testContext(), "tab-1")
	require.NoError(t, err)

	_, err = uc.VerDetalle(testContext(), "tab-1", "404")
	require.Error(t, err)
}
