package backend

import (
	"context"
	"strconv"

	"github.com/google/uuid"

	"ventaslive/internal/dto"
	"ventaslive/internal/model"
)

// PedidosAPI is the order surface of the backend. ActualizarEstado only
// requests the transition; callers refetch on success instead of mutating the
// local copy.
type PedidosAPI interface {
	ListarPedidos(ctx context.Context, filter dto.PedidoFilter) ([]model.Pedido, int, error)
	ObtenerPedido(ctx context.Context, id uuid.UUID) (*model.Pedido, error)
	EstadisticasPedidos(ctx context.Context) (*model.EstadisticasPedidos, error)
	CrearVentaEnVivo(ctx context.Context, req dto.CrearVentaEnVivoRequest) (*model.Pedido, error)
	ActualizarEstado(ctx context.Context, id uuid.UUID, req dto.ActualizarEstadoRequest) error
}

type listaPedidos struct {
	Data  []model.Pedido `json:"data"`
	Total int            `json:"total"`
}

func (c *Client) ListarPedidos(ctx context.Context, filter dto.PedidoFilter) ([]model.Pedido, int, error) {
	var out listaPedidos
	params := map[string]string{
		"page":  strconv.Itoa(filter.Page),
		"limit": strconv.Itoa(filter.Limit),
	}
	if filter.Estado != "" {
		params["estado"] = filter.Estado
	}
	if filter.ClienteID != "" {
		params["cliente_id"] = filter.ClienteID
	}
	if filter.Desde != "" {
		params["desde"] = filter.Desde
	}
	if filter.Hasta != "" {
		params["hasta"] = filter.Hasta
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(params).
		SetResult(&out).
		Get("/pedidos")
	if err := revisar(resp, err); err != nil {
		return nil, 0, err
	}
	return out.Data, out.Total, nil
}

func (c *Client) ObtenerPedido(ctx context.Context, id uuid.UUID) (*model.Pedido, error) {
	var out model.Pedido
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/pedidos/" + id.String())
	if err := revisar(resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) EstadisticasPedidos(ctx context.Context) (*model.EstadisticasPedidos, error) {
	var out model.EstadisticasPedidos
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/pedidos/estadisticas")
	if err := revisar(resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CrearVentaEnVivo(ctx context.Context, req dto.CrearVentaEnVivoRequest) (*model.Pedido, error) {
	var out model.Pedido
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&out).
		Post("/pedidos/venta-en-vivo")
	if err := revisar(resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

// ActualizarEstado forwards the target state verbatim. The backend decides
// whether the transition is legal; its error text travels back unchanged.
func (c *Client) ActualizarEstado(ctx context.Context, id uuid.UUID, req dto.ActualizarEstadoRequest) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		Patch("/pedidos/" + id.String() + "/estado")
	return revisar(resp, err)
}
