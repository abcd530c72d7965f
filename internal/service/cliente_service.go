package service

import (
	"context"

	"github.com/google/uuid"

	"ventaslive/internal/backend"
	"ventaslive/internal/busqueda"
	"ventaslive/internal/dto"
	"ventaslive/internal/model"
)

type ClienteService interface {
	Listar(ctx context.Context, filter dto.ClienteFilter) (*dto.ClienteListResponse, error)
	Obtener(ctx context.Context, id uuid.UUID) (*dto.ClienteResponse, error)
	Perfil(ctx context.Context, id uuid.UUID) (*dto.PerfilClienteResponse, error)
	BuscarOCrear(ctx context.Context, req dto.BuscarOCrearRequest) (*dto.ClienteResponse, error)
	Crear(ctx context.Context, req dto.CrearClienteRequest) (*dto.ClienteResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarClienteRequest) (*dto.ClienteResponse, error)
	Desactivar(ctx context.Context, id uuid.UUID) error
	Reactivar(ctx context.Context, id uuid.UUID) error
}

type clienteService struct {
	api backend.ClientesAPI
}

func NewClienteService(api backend.ClientesAPI) ClienteService {
	return &clienteService{api: api}
}

// Listar returns the matching customers plus the dropdown's create
// affordance: creating is offered only while searching, and never when an
// exact (handle, plataforma) match already exists.
func (s *clienteService) Listar(ctx context.Context, filter dto.ClienteFilter) (*dto.ClienteListResponse, error) {
	clientes, err := s.api.ListarClientes(ctx, filter)
	if err != nil {
		return nil, err
	}

	resp := &dto.ClienteListResponse{
		Data:  make([]dto.ClienteResponse, 0, len(clientes)),
		Total: len(clientes),
	}
	for i := range clientes {
		resp.Data = append(resp.Data, *clienteToResponse(&clientes[i]))
	}

	if filter.Buscar != "" {
		resultados := make([]busqueda.Resultado, 0, len(clientes))
		for _, c := range clientes {
			resultados = append(resultados, busqueda.Resultado{
				ID:         c.ID,
				Etiqueta:   c.Usuario,
				Plataforma: c.Plataforma,
			})
		}
		resp.OfreceCrear = busqueda.OfreceCrear(resultados, filter.Buscar, filter.Plataforma)
	}
	return resp, nil
}

func (s *clienteService) Obtener(ctx context.Context, id uuid.UUID) (*dto.ClienteResponse, error) {
	c, err := s.api.ObtenerCliente(ctx, id)
	if err != nil {
		return nil, err
	}
	return clienteToResponse(c), nil
}

func (s *clienteService) Perfil(ctx context.Context, id uuid.UUID) (*dto.PerfilClienteResponse, error) {
	perfil, err := s.api.PerfilCliente(ctx, id)
	if err != nil {
		return nil, err
	}
	pedidos := make([]dto.PedidoResponse, 0, len(perfil.Pedidos))
	for i := range perfil.Pedidos {
		pedidos = append(pedidos, *pedidoToResponse(&perfil.Pedidos[i]))
	}
	return &dto.PerfilClienteResponse{
		Cliente: *clienteToResponse(&perfil.Cliente),
		Pedidos: pedidos,
	}, nil
}

func (s *clienteService) BuscarOCrear(ctx context.Context, req dto.BuscarOCrearRequest) (*dto.ClienteResponse, error) {
	c, err := s.api.BuscarOCrearCliente(ctx, req.Usuario, req.Plataforma)
	if err != nil {
		return nil, err
	}
	return clienteToResponse(c), nil
}

func (s *clienteService) Crear(ctx context.Context, req dto.CrearClienteRequest) (*dto.ClienteResponse, error) {
	c, err := s.api.CrearCliente(ctx, req)
	if err != nil {
		return nil, err
	}
	return clienteToResponse(c), nil
}

func (s *clienteService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarClienteRequest) (*dto.ClienteResponse, error) {
	c, err := s.api.ActualizarCliente(ctx, id, req)
	if err != nil {
		return nil, err
	}
	return clienteToResponse(c), nil
}

func (s *clienteService) Desactivar(ctx context.Context, id uuid.UUID) error {
	return s.api.DesactivarCliente(ctx, id)
}

func (s *clienteService) Reactivar(ctx context.Context, id uuid.UUID) error {
	return s.api.ReactivarCliente(ctx, id)
}

func clienteToResponse(c *model.Cliente) *dto.ClienteResponse {
	return &dto.ClienteResponse{
		ID:             c.ID.String(),
		Usuario:        c.Usuario,
		Plataforma:     c.Plataforma,
		NombreCompleto: c.NombreCompleto,
		Telefono:       c.Telefono,
		Direccion:      c.Direccion,
		Referencia:     c.Referencia,
		Ciudad:         c.Ciudad,
		Provincia:      c.Provincia,
		MetodoContacto: c.MetodoContacto,
		Activo:         c.Activo,
		TotalPedidos:   c.TotalPedidos,
		TotalGastado:   c.TotalGastado,
	}
}
