package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"ventaslive/internal/apierror"
	"ventaslive/internal/backend"
	"ventaslive/internal/dto"
	"ventaslive/internal/estado"
	"ventaslive/internal/model"
	"ventaslive/internal/recibo"
	"ventaslive/internal/worker"
)

type PedidoService interface {
	Listar(ctx context.Context, filter dto.PedidoFilter) (*dto.PedidoListResponse, error)
	Obtener(ctx context.Context, id uuid.UUID) (*dto.PedidoResponse, error)
	Estadisticas(ctx context.Context) (*dto.EstadisticasResponse, error)
	CrearVentaEnVivo(ctx context.Context, req dto.CrearVentaEnVivoRequest) (*dto.PedidoResponse, error)
	ActualizarEstado(ctx context.Context, id uuid.UUID, req dto.ActualizarEstadoRequest) (*dto.PedidoResponse, error)
	Avanzar(ctx context.Context, id uuid.UUID) (*dto.PedidoResponse, error)
	ReciboHTML(ctx context.Context, id uuid.UUID) ([]byte, error)
	ReciboPDF(ctx context.Context, id uuid.UUID) (string, error)
	EnviarRecibo(ctx context.Context, id uuid.UUID, email string) error
}

type pedidoService struct {
	api         backend.PedidosAPI
	dispatcher  *worker.Dispatcher
	negocio     string
	storagePath string
}

func NewPedidoService(api backend.PedidosAPI, dispatcher *worker.Dispatcher, negocio, storagePath string) PedidoService {
	return &pedidoService{
		api:         api,
		dispatcher:  dispatcher,
		negocio:     negocio,
		storagePath: storagePath,
	}
}

// Subtotal computes the running total shown while items are added to a live
// sale: Σ cantidad × precio_unitario.
func Subtotal(items []dto.ItemVentaRequest) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.PrecioUnitario.Mul(decimal.NewFromInt(int64(it.Cantidad))))
	}
	return total
}

func (s *pedidoService) Listar(ctx context.Context, filter dto.PedidoFilter) (*dto.PedidoListResponse, error) {
	pedidos, total, err := s.api.ListarPedidos(ctx, filter)
	if err != nil {
		return nil, err
	}
	resp := &dto.PedidoListResponse{
		Data:  make([]dto.PedidoResponse, 0, len(pedidos)),
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}
	for i := range pedidos {
		resp.Data = append(resp.Data, *pedidoToResponse(&pedidos[i]))
	}
	return resp, nil
}

func (s *pedidoService) Obtener(ctx context.Context, id uuid.UUID) (*dto.PedidoResponse, error) {
	p, err := s.api.ObtenerPedido(ctx, id)
	if err != nil {
		return nil, err
	}
	return pedidoToResponse(p), nil
}

func (s *pedidoService) Estadisticas(ctx context.Context) (*dto.EstadisticasResponse, error) {
	e, err := s.api.EstadisticasPedidos(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.EstadisticasResponse{
		TotalPedidos:   e.TotalPedidos,
		PendientesPago: e.PendientesPago,
		PorEmpaquetar:  e.PorEmpaquetar,
		EnviadosHoy:    e.EnviadosHoy,
		VentasHoy:      e.VentasHoy,
		VentasMes:      e.VentasMes,
	}, nil
}

func (s *pedidoService) CrearVentaEnVivo(ctx context.Context, req dto.CrearVentaEnVivoRequest) (*dto.PedidoResponse, error) {
	p, err := s.api.CrearVentaEnVivo(ctx, req)
	if err != nil {
		return nil, err
	}
	return pedidoToResponse(p), nil
}

// ActualizarEstado asks the backend for the transition and, on success,
// refetches the order: the state shown afterwards is always the backend's,
// never a local guess.
func (s *pedidoService) ActualizarEstado(ctx context.Context, id uuid.UUID, req dto.ActualizarEstadoRequest) (*dto.PedidoResponse, error) {
	if err := s.api.ActualizarEstado(ctx, id, req); err != nil {
		return nil, err
	}
	return s.Obtener(ctx, id)
}

// Avanzar is the one-click shortcut: it moves the order to its canonical next
// state. Orders in a terminal state cannot be advanced.
func (s *pedidoService) Avanzar(ctx context.Context, id uuid.UUID) (*dto.PedidoResponse, error) {
	p, err := s.api.ObtenerPedido(ctx, id)
	if err != nil {
		return nil, err
	}
	sig, ok := estado.Siguiente(p.Estado)
	if !ok {
		return nil, apierror.New("el pedido está en un estado final y no admite avance")
	}
	return s.ActualizarEstado(ctx, id, dto.ActualizarEstadoRequest{Estado: string(sig)})
}

func (s *pedidoService) ReciboHTML(ctx context.Context, id uuid.UUID) ([]byte, error) {
	p, err := s.api.ObtenerPedido(ctx, id)
	if err != nil {
		return nil, err
	}
	return recibo.RenderHTML(p, s.negocio)
}

func (s *pedidoService) ReciboPDF(ctx context.Context, id uuid.UUID) (string, error) {
	p, err := s.api.ObtenerPedido(ctx, id)
	if err != nil {
		return "", err
	}
	return recibo.GenerarPDF(p, s.negocio, s.storagePath)
}

// EnviarRecibo verifies the order exists and queues the email job; rendering
// and delivery happen in the worker pool.
func (s *pedidoService) EnviarRecibo(ctx context.Context, id uuid.UUID, email string) error {
	if _, err := s.api.ObtenerPedido(ctx, id); err != nil {
		return err
	}
	return s.dispatcher.EnqueueRecibo(ctx, worker.ReciboJobPayload{
		PedidoID: id.String(),
		Email:    email,
	})
}

func pedidoToResponse(p *model.Pedido) *dto.PedidoResponse {
	items := make([]dto.ItemPedidoResponse, 0, len(p.Items))
	for _, it := range p.Items {
		items = append(items, dto.ItemPedidoResponse{
			SKUID:          it.SKUID.String(),
			NombreProducto: it.NombreProducto,
			CodigoSKU:      it.CodigoSKU,
			Cantidad:       it.Cantidad,
			PrecioUnitario: it.PrecioUnitario,
			Subtotal:       it.PrecioUnitario.Mul(decimal.NewFromInt(int64(it.Cantidad))),
		})
	}

	historial := make([]dto.CambioEstadoResponse, 0, len(p.Historial))
	for _, h := range p.Historial {
		historial = append(historial, dto.CambioEstadoResponse{
			De:    string(h.De),
			A:     string(h.A),
			Fecha: h.Fecha.Format("2006-01-02 15:04"),
			Nota:  h.Nota,
		})
	}

	transiciones := make([]dto.TransicionResponse, 0, 2)
	for _, t := range estado.Transiciones(p.Estado) {
		transiciones = append(transiciones, transicionToResponse(t))
	}
	var siguiente *dto.TransicionResponse
	if sig, ok := estado.Siguiente(p.Estado); ok {
		t := transicionToResponse(sig)
		siguiente = &t
	}

	return &dto.PedidoResponse{
		ID:                p.ID.String(),
		Numero:            p.Numero,
		ClienteID:         p.ClienteID.String(),
		ClienteUsuario:    p.ClienteUsuario,
		ClienteNombre:     p.ClienteNombre,
		Plataforma:        p.Plataforma,
		Estado:            string(p.Estado),
		EstadoEtiqueta:    estado.Etiqueta(p.Estado),
		EstadoColor:       estado.Color(p.Estado),
		Transiciones:      transiciones,
		Siguiente:         siguiente,
		Items:             items,
		Subtotal:          p.Subtotal,
		CostoEnvio:        p.CostoEnvio,
		Total:             p.Total,
		EmpresaEnvio:      p.EmpresaEnvio,
		NumeroSeguimiento: p.NumeroSeguimiento,
		Historial:         historial,
		CreatedAt:         p.CreatedAt.Format("2006-01-02 15:04"),
	}
}

func transicionToResponse(e estado.Estado) dto.TransicionResponse {
	return dto.TransicionResponse{
		Estado:   string(e),
		Etiqueta: estado.Etiqueta(e),
		Color:    estado.Color(e),
	}
}
