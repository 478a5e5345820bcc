package utils

import (
	"citas-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("hora", validateHora)
	validate.RegisterValidation("estado_cita", validateEstadoCita)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateHora(fl validator.FieldLevel) bool {
	return EsHoraValida(fl.Field().String())
}

func validateEstadoCita(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case constvars.EstadoProgramada, constvars.EstadoEnProceso, constvars.EstadoCompletada, constvars.EstadoCancelada:
		return true
	}
	return false
}
