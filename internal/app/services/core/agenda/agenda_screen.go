package agenda

import (
	"citas-service/internal/app/models"
	"citas-service/internal/pkg/constvars"
	"sort"
	"strings"
	"sync"
)

// Screen holds the state of one admin agenda tab: the full normalized cita
// list, the derived-view inputs and the single active workflow. A mutex
// serializes access so workflows stay mutually exclusive per screen.
type Screen struct {
	mu           sync.Mutex
	citas        []models.Cita
	busqueda     string
	estadoFiltro string
	cargando     bool
	workflow     models.Workflow
}

func NewScreen() *Screen {
	return &Screen{
		estadoFiltro: constvars.EstadoFiltroTodos,
		workflow:     models.Workflow{Kind: models.WorkflowNinguno},
	}
}

// SetCitas replaces the stored list, sorted by Inicio descending.
func (s *Screen) SetCitas(citas []models.Cita) {
	s.mu.Lock()
	defer s.mu.Unlock()
	OrdenarPorInicioDesc(citas)
	s.citas = citas
}

func (s *Screen) SetCargando(cargando bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cargando = cargando
}

func (s *Screen) Filtrar(busqueda, estadoFiltro string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.busqueda = busqueda
	if estadoFiltro == "" {
		estadoFiltro = constvars.EstadoFiltroTodos
	}
	s.estadoFiltro = estadoFiltro
}

// AbrirWorkflow closes whatever was open and activates kind over cita. Cita
// may be nil (creation form, plain notices).
func (s *Screen) AbrirWorkflow(kind models.WorkflowKind, cita *models.Cita) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.workflow = models.Workflow{Kind: kind, Cita: cita}
}

func (s *Screen) CerrarWorkflows() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.workflow = models.Workflow{Kind: models.WorkflowNinguno}
}

// SetAviso closes any open workflow and shows a titled notice.
func (s *Screen) SetAviso(titulo, mensaje string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.workflow = models.Workflow{
		Kind:  models.WorkflowAviso,
		Aviso: &models.Aviso{Titulo: titulo, Mensaje: mensaje},
	}
}

// CitaEnOperacion returns the appointment the active workflow points at.
func (s *Screen) CitaEnOperacion() (models.WorkflowKind, *models.Cita) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.workflow.Kind, s.workflow.Cita
}

// BuscarCita finds a cita in the stored list by id.
func (s *Screen) BuscarCita(citaID string) (models.Cita, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, cita := range s.citas {
		if cita.ID == citaID {
			return cita, true
		}
	}
	return models.Cita{}, false
}

// View snapshots the screen with the derived filtered list. The stored list
// is never mutated by filtering.
func (s *Screen) View() *models.AgendaView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return &models.AgendaView{
		Citas:        FiltrarCitas(s.citas, s.busqueda, s.estadoFiltro),
		Busqueda:     s.busqueda,
		EstadoFiltro: s.estadoFiltro,
		Cargando:     s.cargando,
		Workflow:     s.workflow,
	}
}

// OrdenarPorInicioDesc sorts in place, newest start first.
func OrdenarPorInicioDesc(citas []models.Cita) {
	sort.SliceStable(citas, func(i, j int) bool {
		return citas[i].Inicio.After(citas[j].Inicio)
	})
}

// FiltrarCitas applies the agenda's two predicates: a case-insensitive
// substring search across id, cliente, empleado, estado and servicios, and an
// exact (case-insensitive) estado filter, disabled by "Todos".
func FiltrarCitas(citas []models.Cita, busqueda, estadoFiltro string) []models.Cita {
	term := strings.ToLower(strings.TrimSpace(busqueda))

	filtradas := make([]models.Cita, 0, len(citas))
	for _, cita := range citas {
		matchesSearch := term == "" ||
			strings.Contains(strings.ToLower(cita.ID), term) ||
			strings.Contains(strings.ToLower(cita.ClienteNombre), term) ||
			strings.Contains(strings.ToLower(cita.EmpleadoNombre), term) ||
			strings.Contains(strings.ToLower(cita.EstadoCita), term) ||
			strings.Contains(strings.ToLower(cita.ServiciosNombres), term)

		matchesEstado := estadoFiltro == "" ||
			strings.EqualFold(estadoFiltro, constvars.EstadoFiltroTodos) ||
			strings.EqualFold(cita.EstadoCita, estadoFiltro)

		if matchesSearch && matchesEstado {
			filtradas = append(filtradas, cita)
		}
	}
	return filtradas
}
