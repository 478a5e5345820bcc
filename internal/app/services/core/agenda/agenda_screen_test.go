package agenda

import (
	"citas-service/internal/app/models"
	"citas-service/internal/pkg/constvars"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func buildCitas() []models.Cita {
	base := time.Date(2024, 5, 1, 9, 0, 0, 0, time.Local)
	return []models.Cita{
		{
			ID:               "1",
			Inicio:           base,
			Fin:              base.Add(time.Hour),
			EstadoCita:       constvars.EstadoProgramada,
			ClienteNombre:    "Ana Torres",
			EmpleadoNombre:   "Luis Mejía",
			ServiciosNombres: "Corte, Tinte",
		},
		{
			ID:               "2",
			Inicio:           base.Add(48 * time.Hour),
			Fin:              base.Add(49 * time.Hour),
			EstadoCita:       constvars.EstadoCancelada,
			ClienteNombre:    "Bruno Díaz",
			EmpleadoNombre:   "Marta Ruiz",
			ServiciosNombres: "Manicure",
		},
		{
			ID:               "3",
			Inicio:           base.Add(24 * time.Hour),
			Fin:              base.Add(25 * time.Hour),
			EstadoCita:       constvars.EstadoCompletada,
			ClienteNombre:    "Carla Gómez",
			EmpleadoNombre:   "Luis Mejía",
			ServiciosNombres: "Corte",
		},
	}
}

func TestSetCitasOrdersByInicioDescending(t *testing.T) {
	s := NewScreen()
	s.SetCitas(buildCitas())

	view := s.View()
	assert.Len(t, view.Citas, 3)
	assert.Equal(t, "2", view.Citas[0].ID)
	assert.Equal(t, "3", view.Citas[1].ID)
	assert.Equal(t, "1", view.Citas[2].ID)
}

func TestFiltrarCitas(t *testing.T) {
	citas := buildCitas()

	t.Run("empty search with Todos returns everything", func(t *testing.T) {
		result := FiltrarCitas(citas, "", constvars.EstadoFiltroTodos)
		assert.Len(t, result, 3)
	})

	t.Run("search matches cliente name case-insensitively", func(t *testing.T) {
		result := FiltrarCitas(citas, "  ANA ", constvars.EstadoFiltroTodos)
		assert.Len(t, result, 1)
		assert.Equal(t, "1", result[0].ID)
	})

	t.Run("search matches servicios names", func(t *testing.T) {
		result := FiltrarCitas(citas, "tinte", constvars.EstadoFiltroTodos)
		assert.Len(t, result, 1)
		assert.Equal(t, "1", result[0].ID)
	})

	t.Run("search matches empleado across several citas", func(t *testing.T) {
		result := FiltrarCitas(citas, "luis", constvars.EstadoFiltroTodos)
		assert.Len(t, result, 2)
	})

	t.Run("estado filter narrows exactly", func(t *testing.T) {
		result := FiltrarCitas(citas, "", constvars.EstadoCancelada)
		assert.Len(t, result, 1)
		assert.Equal(t, "2", result[0].ID)
	})

	t.Run("search term matching estado combines with Todos", func(t *testing.T) {
		// "cancel" matches the estado text of cita 2 through the search
		// predicate alone.
		result := FiltrarCitas(citas, "cancel", constvars.EstadoFiltroTodos)
		assert.Len(t, result, 1)
		assert.Equal(t, "2", result[0].ID)
	})

	t.Run("search and estado filter are conjunctive", func(t *testing.T) {
		result := FiltrarCitas(citas, "luis", constvars.EstadoCompletada)
		assert.Len(t, result, 1)
		assert.Equal(t, "3", result[0].ID)
	})

	t.Run("no matches yields empty slice", func(t *testing.T) {
		result := FiltrarCitas(citas, "zzz", constvars.EstadoFiltroTodos)
		assert.Empty(t, result)
	})
}

func TestFiltrarNeverMutatesStoredList(t *testing.T) {
	s := NewScreen()
	s.SetCitas(buildCitas())

	s.Filtrar("ana", constvars.EstadoProgramada)
	filtered := s.View()
	assert.Len(t, filtered.Citas, 1)

	s.Filtrar("", "")
	restored := s.View()
	assert.Len(t, restored.Citas, 3)
	assert.Equal(t, constvars.EstadoFiltroTodos, restored.EstadoFiltro)
	assert.Equal(t, "2", restored.Citas[0].ID, "order survives filtering round trips")
}

func TestWorkflowsAreMutuallyExclusive(t *testing.T) {
	s := NewScreen()
	citas := buildCitas()
	s.SetCitas(citas)

	cita, found := s.BuscarCita("1")
	assert.True(t, found)

	s.AbrirWorkflow(models.WorkflowDetalle, &cita)
	kind, enOperacion := s.CitaEnOperacion()
	assert.Equal(t, models.WorkflowDetalle, kind)
	assert.Equal(t, "1", enOperacion.ID)

	s.AbrirWorkflow(models.WorkflowConfirmarEliminar, &cita)
	kind, _ = s.CitaEnOperacion()
	assert.Equal(t, models.WorkflowConfirmarEliminar, kind)

	s.SetAviso(constvars.TituloExito, "listo")
	view := s.View()
	assert.Equal(t, models.WorkflowAviso, view.Workflow.Kind)
	assert.Nil(t, view.Workflow.Cita)
	assert.Equal(t, constvars.TituloExito, view.Workflow.Aviso.Titulo)

	s.CerrarWorkflows()
	view = s.View()
	assert.Equal(t, models.WorkflowNinguno, view.Workflow.Kind)
	assert.Nil(t, view.Workflow.Aviso)
}

func TestAbrirWorkflowSinCita(t *testing.T) {
	s := NewScreen()
	s.AbrirWorkflow(models.WorkflowFormulario, nil)

	kind, cita := s.CitaEnOperacion()
	assert.Equal(t, models.WorkflowFormulario, kind)
	assert.Nil(t, cita, "creation form carries no cita")
}
