package routers

import (
	"citas-service/internal/app/delivery/http/controllers"
	"citas-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAgendaRoutes(r chi.Router, m *middlewares.Middlewares, agendaController *controllers.AgendaController) {
	r.Use(m.ScreenIDMiddleware)

	r.Get("/", agendaController.Ver)
	r.Post("/cargar", agendaController.Cargar)
	r.Post("/filtro", agendaController.Filtrar)

	r.Post("/formulario", agendaController.AbrirFormulario)
	r.Post("/citas/{citaID}/formulario", agendaController.AbrirFormulario)
	r.Get("/citas/{citaID}/detalle", agendaController.VerDetalle)
	r.Post("/citas/{citaID}/eliminar", agendaController.AbrirConfirmacionEliminar)
	r.Post("/citas/{citaID}/cancelar", agendaController.AbrirConfirmacionCancelar)
	r.Post("/workflows/cerrar", agendaController.CerrarWorkflows)

	r.Post("/citas", agendaController.GuardarCita)
	r.Post("/eliminar/confirmar", agendaController.ConfirmarEliminacion)
	r.Post("/cancelar/confirmar", agendaController.ConfirmarCancelacion)
	r.Post("/citas/{citaID}/completar", agendaController.MarcarCompletada)
}
