package service

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ventaslive/internal/dto"
	"ventaslive/internal/estado"
	"ventaslive/internal/model"
	"ventaslive/internal/worker"
)

type stubPedidosAPI struct {
	pedido       *model.Pedido
	estadisticas *model.EstadisticasPedidos

	estadosPedidos []dto.ActualizarEstadoRequest
	obtenciones    int
	errActualizar  error
}

func (s *stubPedidosAPI) ListarPedidos(_ context.Context, _ dto.PedidoFilter) ([]model.Pedido, int, error) {
	return []model.Pedido{*s.pedido}, 1, nil
}

func (s *stubPedidosAPI) ObtenerPedido(_ context.Context, _ uuid.UUID) (*model.Pedido, error) {
	s.obtenciones++
	p := *s.pedido
	return &p, nil
}

func (s *stubPedidosAPI) EstadisticasPedidos(_ context.Context) (*model.EstadisticasPedidos, error) {
	return s.estadisticas, nil
}

func (s *stubPedidosAPI) CrearVentaEnVivo(_ context.Context, _ dto.CrearVentaEnVivoRequest) (*model.Pedido, error) {
	return s.pedido, nil
}

func (s *stubPedidosAPI) ActualizarEstado(_ context.Context, _ uuid.UUID, req dto.ActualizarEstadoRequest) error {
	if s.errActualizar != nil {
		return s.errActualizar
	}
	s.estadosPedidos = append(s.estadosPedidos, req)
	s.pedido.Estado = estado.Estado(req.Estado)
	return nil
}

func pedidoPrueba(e estado.Estado) *model.Pedido {
	nota := "confirmado por transferencia"
	return &model.Pedido{
		ID:             uuid.New(),
		Numero:         "PED-2026-0117",
		ClienteID:      uuid.New(),
		ClienteUsuario: "@maria.comprass",
		ClienteNombre:  "María Paredes",
		Plataforma:     "instagram",
		Estado:         e,
		Items: []model.PedidoItem{
			{SKUID: uuid.New(), NombreProducto: "Blusa flores", CodigoSKU: "BLU-001-M", Cantidad: 2, PrecioUnitario: decimal.NewFromInt(10)},
			{SKUID: uuid.New(), NombreProducto: "Correa cuero", CodigoSKU: "COR-002", Cantidad: 1, PrecioUnitario: decimal.NewFromInt(5)},
		},
		Subtotal:   decimal.NewFromInt(25),
		CostoEnvio: decimal.NewFromFloat(3.5),
		Total:      decimal.NewFromFloat(28.5),
		Historial: []model.CambioEstado{
			{De: estado.PendienteContacto, A: estado.PendientePago, Fecha: time.Now(), Nota: &nota},
		},
		CreatedAt: time.Now(),
	}
}

func TestSubtotalVentaEnVivo(t *testing.T) {
	items := []dto.ItemVentaRequest{
		{SKUID: uuid.NewString(), Cantidad: 2, PrecioUnitario: decimal.NewFromInt(10)},
		{SKUID: uuid.NewString(), Cantidad: 1, PrecioUnitario: decimal.NewFromInt(5)},
	}
	assert.True(t, Subtotal(items).Equal(decimal.NewFromInt(25)))
	assert.True(t, Subtotal(nil).Equal(decimal.Zero))
}

func TestObtenerAdjuntaTransiciones(t *testing.T) {
	api := &stubPedidosAPI{pedido: pedidoPrueba(estado.PendientePago)}
	svc := NewPedidoService(api, nil, "VentasLive", t.TempDir())

	resp, err := svc.Obtener(context.Background(), api.pedido.ID)
	require.NoError(t, err)

	assert.Equal(t, "pendiente_pago", resp.Estado)
	assert.Equal(t, "Pendiente de pago", resp.EstadoEtiqueta)
	require.Len(t, resp.Transiciones, 2)
	assert.Equal(t, "pago_confirmado", resp.Transiciones[0].Estado)
	assert.Equal(t, "cancelado", resp.Transiciones[1].Estado)
	require.NotNil(t, resp.Siguiente)
	assert.Equal(t, "pago_confirmado", resp.Siguiente.Estado)

	// item subtotals are derived for display
	assert.True(t, resp.Items[0].Subtotal.Equal(decimal.NewFromInt(20)))
	assert.True(t, resp.Items[1].Subtotal.Equal(decimal.NewFromInt(5)))
}

func TestObtenerEstadoTerminalSinTransiciones(t *testing.T) {
	api := &stubPedidosAPI{pedido: pedidoPrueba(estado.Cancelado)}
	svc := NewPedidoService(api, nil, "VentasLive", t.TempDir())

	resp, err := svc.Obtener(context.Background(), api.pedido.ID)
	require.NoError(t, err)
	assert.Empty(t, resp.Transiciones)
	assert.Nil(t, resp.Siguiente)
}

func TestActualizarEstadoReenviaYRefresca(t *testing.T) {
	api := &stubPedidosAPI{pedido: pedidoPrueba(estado.PendientePago)}
	svc := NewPedidoService(api, nil, "VentasLive", t.TempDir())

	nota := "pago por transferencia"
	resp, err := svc.ActualizarEstado(context.Background(), api.pedido.ID, dto.ActualizarEstadoRequest{
		Estado: "pago_confirmado",
		Nota:   &nota,
	})
	require.NoError(t, err)

	// the target state travels verbatim and the shown state comes from the
	// post-transition refetch, not a local mutation
	require.Len(t, api.estadosPedidos, 1)
	assert.Equal(t, "pago_confirmado", api.estadosPedidos[0].Estado)
	assert.Equal(t, 1, api.obtenciones)
	assert.Equal(t, "pago_confirmado", resp.Estado)
}

func TestAvanzarUsaSiguienteCanonico(t *testing.T) {
	api := &stubPedidosAPI{pedido: pedidoPrueba(estado.Empaquetado)}
	svc := NewPedidoService(api, nil, "VentasLive", t.TempDir())

	resp, err := svc.Avanzar(context.Background(), api.pedido.ID)
	require.NoError(t, err)
	require.Len(t, api.estadosPedidos, 1)
	assert.Equal(t, "enviado", api.estadosPedidos[0].Estado)
	assert.Equal(t, "enviado", resp.Estado)
}

func TestAvanzarRechazaEstadoFinal(t *testing.T) {
	api := &stubPedidosAPI{pedido: pedidoPrueba(estado.Devuelto)}
	svc := NewPedidoService(api, nil, "VentasLive", t.TempDir())

	_, err := svc.Avanzar(context.Background(), api.pedido.ID)
	require.Error(t, err)
	assert.Empty(t, api.estadosPedidos)
}

func TestEnviarReciboEncolaElTrabajo(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	api := &stubPedidosAPI{pedido: pedidoPrueba(estado.Enviado)}
	svc := NewPedidoService(api, worker.NewDispatcher(rdb), "VentasLive", t.TempDir())

	err := svc.EnviarRecibo(context.Background(), api.pedido.ID, "cliente@example.com")
	require.NoError(t, err)

	// existence is checked before queuing
	assert.Equal(t, 1, api.obtenciones)
	raw, err := mr.Lpop(worker.QueueRecibos)
	require.NoError(t, err)
	assert.Contains(t, raw, "cliente@example.com")
}

func TestReciboHTMLDelPedido(t *testing.T) {
	api := &stubPedidosAPI{pedido: pedidoPrueba(estado.PagoConfirmado)}
	svc := NewPedidoService(api, nil, "Moda Valentina", t.TempDir())

	html, err := svc.ReciboHTML(context.Background(), api.pedido.ID)
	require.NoError(t, err)
	assert.Contains(t, string(html), "Moda Valentina")
	assert.Contains(t, string(html), "PED-2026-0117")
}
