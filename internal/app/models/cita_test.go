package models

import (
	"citas-service/internal/pkg/constvars"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPuedeTransicionar(t *testing.T) {
	tests := []struct {
		name     string
		desde    string
		hacia    string
		expected bool
	}{
		{"programada puede iniciar", constvars.EstadoProgramada, constvars.EstadoEnProceso, true},
		{"programada puede completarse", constvars.EstadoProgramada, constvars.EstadoCompletada, true},
		{"programada puede cancelarse", constvars.EstadoProgramada, constvars.EstadoCancelada, true},
		{"en proceso puede completarse", constvars.EstadoEnProceso, constvars.EstadoCompletada, true},
		{"en proceso puede cancelarse", constvars.EstadoEnProceso, constvars.EstadoCancelada, true},
		{"en proceso no vuelve a programada", constvars.EstadoEnProceso, constvars.EstadoProgramada, false},
		{"completada es terminal", constvars.EstadoCompletada, constvars.EstadoCancelada, false},
		{"cancelada es terminal", constvars.EstadoCancelada, constvars.EstadoCompletada, false},
		{"cancelada no se reprograma", constvars.EstadoCancelada, constvars.EstadoProgramada, false},
		{"estado destino desconocido", constvars.EstadoProgramada, "Pendiente", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PuedeTransicionar(tt.desde, tt.hacia))
		})
	}
}

func TestEsEstadoTerminal(t *testing.T) {
	assert.True(t, EsEstadoTerminal(constvars.EstadoCompletada))
	assert.True(t, EsEstadoTerminal(constvars.EstadoCancelada))
	assert.False(t, EsEstadoTerminal(constvars.EstadoProgramada))
	assert.False(t, EsEstadoTerminal(constvars.EstadoEnProceso))
}
