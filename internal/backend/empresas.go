package backend

import (
	"context"

	"github.com/google/uuid"

	"ventaslive/internal/dto"
	"ventaslive/internal/model"
)

// EmpresasAPI is the tenant-admin surface, reachable only by super_admin.
type EmpresasAPI interface {
	ListarEmpresas(ctx context.Context) ([]model.Empresa, error)
	CrearEmpresa(ctx context.Context, req dto.CrearEmpresaRequest) (*model.Empresa, error)
	ActualizarEmpresa(ctx context.Context, id uuid.UUID, req dto.ActualizarEmpresaRequest) (*model.Empresa, error)
	CambiarActivoEmpresa(ctx context.Context, id uuid.UUID, activo bool) error
}

// UsuariosAPI manages tenant-scoped platform users.
type UsuariosAPI interface {
	ListarUsuariosPorEmpresa(ctx context.Context, empresaID uuid.UUID) ([]model.UsuarioPlataforma, error)
	CrearUsuario(ctx context.Context, req dto.CrearUsuarioRequest) (*model.UsuarioPlataforma, error)
	ActualizarUsuario(ctx context.Context, id uuid.UUID, req dto.ActualizarUsuarioRequest) (*model.UsuarioPlataforma, error)
	CambiarActivoUsuario(ctx context.Context, id uuid.UUID, activo bool) error
	EliminarUsuario(ctx context.Context, id uuid.UUID) error
}

func (c *Client) ListarEmpresas(ctx context.Context) ([]model.Empresa, error) {
	var out struct {
		Data []model.Empresa `json:"data"`
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/empresas")
	if err := revisar(resp, err); err != nil {
		return nil, err
	}
	return out.Data, nil
}

func (c *Client) CrearEmpresa(ctx context.Context, req dto.CrearEmpresaRequest) (*model.Empresa, error) {
	var out model.Empresa
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&out).
		Post("/empresas")
	if err := revisar(resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ActualizarEmpresa(ctx context.Context, id uuid.UUID, req dto.ActualizarEmpresaRequest) (*model.Empresa, error) {
	var out model.Empresa
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&out).
		Put("/empresas/" + id.String())
	if err := revisar(resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CambiarActivoEmpresa(ctx context.Context, id uuid.UUID, activo bool) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]bool{"activo": activo}).
		Patch("/empresas/" + id.String() + "/activo")
	return revisar(resp, err)
}

func (c *Client) ListarUsuariosPorEmpresa(ctx context.Context, empresaID uuid.UUID) ([]model.UsuarioPlataforma, error) {
	var out struct {
		Data []model.UsuarioPlataforma `json:"data"`
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/empresas/" + empresaID.String() + "/usuarios")
	if err := revisar(resp, err); err != nil {
		return nil, err
	}
	return out.Data, nil
}

func (c *Client) CrearUsuario(ctx context.Context, req dto.CrearUsuarioRequest) (*model.UsuarioPlataforma, error) {
	var out model.UsuarioPlataforma
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&out).
		Post("/usuarios")
	if err := revisar(resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ActualizarUsuario(ctx context.Context, id uuid.UUID, req dto.ActualizarUsuarioRequest) (*model.UsuarioPlataforma, error) {
	var out model.UsuarioPlataforma
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&out).
		Put("/usuarios/" + id.String())
	if err := revisar(resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CambiarActivoUsuario(ctx context.Context, id uuid.UUID, activo bool) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]bool{"activo": activo}).
		Patch("/usuarios/" + id.String() + "/activo")
	return revisar(resp, err)
}

func (c *Client) EliminarUsuario(ctx context.Context, id uuid.UUID) error {
	resp, err := c.http.R().SetContext(ctx).Delete("/usuarios/" + id.String())
	return revisar(resp, err)
}
