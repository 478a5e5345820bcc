package catalogos

import (
	"citas-service/internal/pkg/constvars"
	"citas-service/internal/pkg/exceptions"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestFindServiciosDisponibles(t *testing.T) {
	t.Run("queries active servicios and normalizes ids", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, constvars.ResourceServicios, r.URL.Path)
			assert.Equal(t, "true", r.URL.Query().Get("estado"))
			w.Write([]byte(`{"data":{"data":[
				{"idServicio": 5, "nombre": "Corte", "precio": "25000", "estado": true},
				{"idServicio": "6", "nombre": "Tinte", "precio": 40000.5, "estado": true}
			]}}`))
		}))
		defer server.Close()

		client := NewCatalogoRestClient(server.URL, 5*time.Second, zap.NewNop())
		servicios, err := client.FindServiciosDisponibles(context.Background())
		require.NoError(t, err)
		require.Len(t, servicios, 2)
		assert.Equal(t, "5", servicios[0].ID)
		assert.Equal(t, 25000.0, servicios[0].Precio)
		assert.Equal(t, "6", servicios[1].ID)
		assert.Equal(t, 40000.5, servicios[1].Precio)
	})

	t.Run("invalid precio coerces to zero", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"data":{"data":[{"idServicio":1,"nombre":"Corte","precio":"gratis","estado":true}]}}`))
		}))
		defer server.Close()

		client := NewCatalogoRestClient(server.URL, 5*time.Second, zap.NewNop())
		servicios, err := client.FindServiciosDisponibles(context.Background())
		require.NoError(t, err)
		require.Len(t, servicios, 1)
		assert.Zero(t, servicios[0].Precio)
	})
}

func TestFindClientesRaisesOnFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewCatalogoRestClient(server.URL, 5*time.Second, zap.NewNop())
	_, err := client.FindClientes(context.Background())

	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.ErrClientCargarClientes, customErr.ClientMessage)
}

func TestFindEmpleadosDisponibles(t *testing.T) {
	t.Run("normalizes idUsuario", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, constvars.ResourceEmpleados, r.URL.Path)
			w.Write([]byte(`{"data":{"data":[{"idUsuario": 7, "nombre": "Luis", "apellido": "Mejía"}]}}`))
		}))
		defer server.Close()

		client := NewCatalogoRestClient(server.URL, 5*time.Second, zap.NewNop())
		empleados := client.FindEmpleadosDisponibles(context.Background())
		require.Len(t, empleados, 1)
		assert.Equal(t, "7", empleados[0].ID)
	})

	t.Run("degrades to empty slice on server failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := NewCatalogoRestClient(server.URL, 5*time.Second, zap.NewNop())
		empleados := client.FindEmpleadosDisponibles(context.Background())
		assert.NotNil(t, empleados)
		assert.Empty(t, empleados)
	})

	t.Run("degrades to empty slice on unreachable host", func(t *testing.T) {
		client := NewCatalogoRestClient("http://127.0.0.1:1", time.Second, zap.NewNop())
		empleados := client.FindEmpleadosDisponibles(context.Background())
		assert.Empty(t, empleados)
	})
}
