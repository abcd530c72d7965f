package service

import (
	"context"

	"github.com/google/uuid"

	"ventaslive/internal/backend"
	"ventaslive/internal/dto"
	"ventaslive/internal/model"
)

type UsuarioService interface {
	ListarPorEmpresa(ctx context.Context, empresaID uuid.UUID) ([]dto.UsuarioResponse, error)
	Crear(ctx context.Context, req dto.CrearUsuarioRequest) (*dto.UsuarioResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarUsuarioRequest) (*dto.UsuarioResponse, error)
	CambiarActivo(ctx context.Context, id uuid.UUID, activo bool) error
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type usuarioService struct {
	api backend.UsuariosAPI
}

func NewUsuarioService(api backend.UsuariosAPI) UsuarioService {
	return &usuarioService{api: api}
}

func (s *usuarioService) ListarPorEmpresa(ctx context.Context, empresaID uuid.UUID) ([]dto.UsuarioResponse, error) {
	usuarios, err := s.api.ListarUsuariosPorEmpresa(ctx, empresaID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UsuarioResponse, 0, len(usuarios))
	for i := range usuarios {
		out = append(out, *usuarioToResponse(&usuarios[i]))
	}
	return out, nil
}

func (s *usuarioService) Crear(ctx context.Context, req dto.CrearUsuarioRequest) (*dto.UsuarioResponse, error) {
	u, err := s.api.CrearUsuario(ctx, req)
	if err != nil {
		return nil, err
	}
	return usuarioToResponse(u), nil
}

func (s *usuarioService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarUsuarioRequest) (*dto.UsuarioResponse, error) {
	u, err := s.api.ActualizarUsuario(ctx, id, req)
	if err != nil {
		return nil, err
	}
	return usuarioToResponse(u), nil
}

func (s *usuarioService) CambiarActivo(ctx context.Context, id uuid.UUID, activo bool) error {
	return s.api.CambiarActivoUsuario(ctx, id, activo)
}

func (s *usuarioService) Eliminar(ctx context.Context, id uuid.UUID) error {
	return s.api.EliminarUsuario(ctx, id)
}

func usuarioToResponse(u *model.UsuarioPlataforma) *dto.UsuarioResponse {
	return &dto.UsuarioResponse{
		ID:        u.ID.String(),
		Nombre:    u.Nombre,
		Email:     u.Email,
		Rol:       u.Rol,
		Activo:    u.Activo,
		EmpresaID: u.EmpresaID.String(),
	}
}
