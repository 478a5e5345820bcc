package routers

import (
	"citas-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachCatalogoRoutes(r chi.Router, catalogoController *controllers.CatalogoController) {
	r.Get("/servicios", catalogoController.FindServicios)
	r.Get("/clientes", catalogoController.FindClientes)
	r.Get("/empleados", catalogoController.FindEmpleados)
	r.Get("/novedades", catalogoController.FindNovedades)
}
