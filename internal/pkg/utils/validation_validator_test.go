package utils

import (
	"citas-service/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validGuardarCita() *requests.GuardarCita {
	return &requests.GuardarCita{
		Fecha:      "2024-05-01",
		HoraInicio: "09:00",
		HoraFin:    "10:00",
		IDCliente:  "7",
		IDEmpleado: "3",
		Servicios:  []string{"5"},
	}
}

func TestValidateGuardarCita(t *testing.T) {
	t.Run("valid payload passes", func(t *testing.T) {
		assert.NoError(t, ValidateStruct(validGuardarCita()))
	})

	t.Run("hora tag rejects malformed times", func(t *testing.T) {
		request := validGuardarCita()
		request.HoraInicio = "9 de la mañana"
		assert.Error(t, ValidateStruct(request))
	})

	t.Run("fecha must be ISO", func(t *testing.T) {
		request := validGuardarCita()
		request.Fecha = "01/05/2024"
		assert.Error(t, ValidateStruct(request))
	})

	t.Run("servicios cannot be empty", func(t *testing.T) {
		request := validGuardarCita()
		request.Servicios = nil
		assert.Error(t, ValidateStruct(request))
	})
}

func TestValidateCambiarEstado(t *testing.T) {
	t.Run("known estados pass", func(t *testing.T) {
		assert.NoError(t, ValidateStruct(&requests.CambiarEstado{Estado: "Completada"}))
		assert.NoError(t, ValidateStruct(&requests.CambiarEstado{Estado: "En proceso"}))
	})

	t.Run("unknown estado fails", func(t *testing.T) {
		assert.Error(t, ValidateStruct(&requests.CambiarEstado{Estado: "Pendiente"}))
	})
}
