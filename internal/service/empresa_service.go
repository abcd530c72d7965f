package service

import (
	"context"

	"github.com/google/uuid"

	"ventaslive/internal/backend"
	"ventaslive/internal/dto"
	"ventaslive/internal/model"
)

type EmpresaService interface {
	Listar(ctx context.Context) ([]dto.EmpresaResponse, error)
	Crear(ctx context.Context, req dto.CrearEmpresaRequest) (*dto.EmpresaResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarEmpresaRequest) (*dto.EmpresaResponse, error)
	CambiarActivo(ctx context.Context, id uuid.UUID, activo bool) error
}

type empresaService struct {
	api backend.EmpresasAPI
}

func NewEmpresaService(api backend.EmpresasAPI) EmpresaService {
	return &empresaService{api: api}
}

func (s *empresaService) Listar(ctx context.Context) ([]dto.EmpresaResponse, error) {
	empresas, err := s.api.ListarEmpresas(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EmpresaResponse, 0, len(empresas))
	for i := range empresas {
		out = append(out, *empresaToResponse(&empresas[i]))
	}
	return out, nil
}

func (s *empresaService) Crear(ctx context.Context, req dto.CrearEmpresaRequest) (*dto.EmpresaResponse, error) {
	e, err := s.api.CrearEmpresa(ctx, req)
	if err != nil {
		return nil, err
	}
	return empresaToResponse(e), nil
}

func (s *empresaService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarEmpresaRequest) (*dto.EmpresaResponse, error) {
	e, err := s.api.ActualizarEmpresa(ctx, id, req)
	if err != nil {
		return nil, err
	}
	return empresaToResponse(e), nil
}

// CambiarActivo toggles the tenant. Deactivating never deletes anything:
// the backend keeps the company's data and can reactivate it later.
func (s *empresaService) CambiarActivo(ctx context.Context, id uuid.UUID, activo bool) error {
	return s.api.CambiarActivoEmpresa(ctx, id, activo)
}

func empresaToResponse(e *model.Empresa) *dto.EmpresaResponse {
	return &dto.EmpresaResponse{
		ID:        e.ID.String(),
		Nombre:    e.Nombre,
		Email:     e.Email,
		Telefono:  e.Telefono,
		Direccion: e.Direccion,
		Activo:    e.Activo,
	}
}
