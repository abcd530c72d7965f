package backend

import (
	"context"
	"strconv"

	"github.com/google/uuid"

	"ventaslive/internal/dto"
	"ventaslive/internal/model"
)

// ClientesAPI is the customer surface of the backend consumed by the
// dashboard.
type ClientesAPI interface {
	ListarClientes(ctx context.Context, filter dto.ClienteFilter) ([]model.Cliente, error)
	ObtenerCliente(ctx context.Context, id uuid.UUID) (*model.Cliente, error)
	PerfilCliente(ctx context.Context, id uuid.UUID) (*model.PerfilCliente, error)
	BuscarOCrearCliente(ctx context.Context, usuario, plataforma string) (*model.Cliente, error)
	CrearCliente(ctx context.Context, req dto.CrearClienteRequest) (*model.Cliente, error)
	ActualizarCliente(ctx context.Context, id uuid.UUID, req dto.ActualizarClienteRequest) (*model.Cliente, error)
	DesactivarCliente(ctx context.Context, id uuid.UUID) error
	ReactivarCliente(ctx context.Context, id uuid.UUID) error
}

type listaClientes struct {
	Data  []model.Cliente `json:"data"`
	Total int             `json:"total"`
}

func (c *Client) ListarClientes(ctx context.Context, filter dto.ClienteFilter) ([]model.Cliente, error) {
	var out listaClientes
	params := map[string]string{"limite": strconv.Itoa(filter.Limite)}
	if filter.Buscar != "" {
		params["buscar"] = filter.Buscar
	}
	if filter.Plataforma != "" {
		params["plataforma"] = filter.Plataforma
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(params).
		SetResult(&out).
		Get("/clientes")
	if err := revisar(resp, err); err != nil {
		return nil, err
	}
	return out.Data, nil
}

func (c *Client) ObtenerCliente(ctx context.Context, id uuid.UUID) (*model.Cliente, error) {
	var out model.Cliente
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/clientes/" + id.String())
	if err := revisar(resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) PerfilCliente(ctx context.Context, id uuid.UUID) (*model.PerfilCliente, error) {
	var out model.PerfilCliente
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/clientes/" + id.String() + "/perfil")
	if err := revisar(resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) BuscarOCrearCliente(ctx context.Context, usuario, plataforma string) (*model.Cliente, error) {
	var out model.Cliente
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(dto.BuscarOCrearRequest{Usuario: usuario, Plataforma: plataforma}).
		SetResult(&out).
		Post("/clientes/buscar-o-crear")
	if err := revisar(resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CrearCliente(ctx context.Context, req dto.CrearClienteRequest) (*model.Cliente, error) {
	var out model.Cliente
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&out).
		Post("/clientes")
	if err := revisar(resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ActualizarCliente(ctx context.Context, id uuid.UUID, req dto.ActualizarClienteRequest) (*model.Cliente, error) {
	var out model.Cliente
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&out).
		Put("/clientes/" + id.String())
	if err := revisar(resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DesactivarCliente(ctx context.Context, id uuid.UUID) error {
	resp, err := c.http.R().SetContext(ctx).Delete("/clientes/" + id.String())
	return revisar(resp, err)
}

func (c *Client) ReactivarCliente(ctx context.Context, id uuid.UUID) error {
	resp, err := c.http.R().SetContext(ctx).Patch("/clientes/" + id.String() + "/reactivar")
	return revisar(resp, err)
}
