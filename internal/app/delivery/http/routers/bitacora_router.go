package routers

import (
	"citas-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachBitacoraRoutes(r chi.Router, bitacoraController *controllers.BitacoraController) {
	r.Get("/", bitacoraController.FindRecent)
}
