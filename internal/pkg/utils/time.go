package utils

import (
	"citas-service/internal/pkg/constvars"
	"fmt"
	"strings"
	"time"
)

// CombinarFechaHora combines the core API's split `fecha` (YYYY-MM-DD) and
// `hora` (HH:MM or HH:MM:SS) fields into a single timestamp in local time.
func CombinarFechaHora(fecha, hora string) (time.Time, error) {
	fecha = strings.TrimSpace(fecha)
	hora = strings.TrimSpace(hora)
	if len(hora) > len(constvars.FormatoHora) {
		hora = hora[:len(constvars.FormatoHora)]
	}
	combined, err := time.ParseInLocation(constvars.FormatoFechaHora, fmt.Sprintf("%s %s", fecha, hora), time.Local)
	if err != nil {
		return time.Time{}, err
	}
	return combined, nil
}

// SepararFechaHora splits a timestamp back into the wire's fecha and hora fields.
func SepararFechaHora(t time.Time) (fecha, hora string) {
	return t.Format(constvars.FormatoFecha), t.Format(constvars.FormatoHora)
}

func EsHoraValida(hora string) bool {
	_, err := time.Parse(constvars.FormatoHora, strings.TrimSpace(hora))
	return err == nil
}
