package backend

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ventaslive/internal/dto"
)

func TestListarClientesOK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/clientes", r.URL.Path)
		assert.Equal(t, "maria", r.URL.Query().Get("buscar"))
		assert.Equal(t, "instagram", r.URL.Query().Get("plataforma"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[{"id":"` + uuid.NewString() + `","usuario":"@maria.comprass","plataforma":"instagram","activo":true}],"total":1}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	clientes, err := c.ListarClientes(context.Background(), dto.ClienteFilter{
		Buscar: "maria", Plataforma: "instagram", Limite: 50,
	})
	require.NoError(t, err)
	require.Len(t, clientes, 1)
	assert.Equal(t, "@maria.comprass", clientes[0].Usuario)
}

func TestErrorConMensajeDelBackend(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"message":"Transición no permitida: pedido ya entregado"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	err := c.ActualizarEstado(context.Background(), uuid.New(), dto.ActualizarEstadoRequest{Estado: "enviado"})
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	// The backend message travels verbatim to the operator.
	assert.Equal(t, "Transición no permitida: pedido ya entregado", apiErr.Mensaje)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
}

func TestErrorConCuerpoIlegible(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>bad gateway</html>"))
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.ObtenerPedido(context.Background(), uuid.New())
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "Error 502", apiErr.Mensaje)
}

func TestFalloDeTransporte(t *testing.T) {
	// Point at a closed port: the transport error wraps, no APIError.
	c := New("http://127.0.0.1:1")
	_, err := c.EstadisticasPedidos(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
	assert.Contains(t, err.Error(), "backend inaccesible")
}
