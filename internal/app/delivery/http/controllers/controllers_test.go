package controllers

import (
	"citas-service/internal/app/config"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestControllersUseConfiguredRequestTimeout(t *testing.T) {
	internalConfig := &config.InternalConfig{}
	internalConfig.App.RequestTimeoutSeconds = 25

	agenda := NewAgendaController(zap.NewNop(), nil, internalConfig)
	catalogo := NewCatalogoController(zap.NewNop(), nil, internalConfig)
	bitacora := NewBitacoraController(zap.NewNop(), nil, internalConfig)

	assert.Equal(t, 25*time.Second, agenda.Timeout)
	assert.Equal(t, 25*time.Second, catalogo.Timeout)
	assert.Equal(t, 25*time.Second, bitacora.Timeout)

	ctx, cancel := agenda.operationContext("req-1", "tab-1")
	defer cancel()

	deadline, ok := ctx.Deadline()
	assert.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(25*time.Second), deadline, time.Second)
}
