package service

import (
	"context"
	"time"

	"ventaslive/internal/dto"
	"ventaslive/internal/identity"
	"ventaslive/internal/session"
)

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	Logout(ctx context.Context, token string) error
	Perfil(ctx context.Context, token string) (*dto.PerfilResponse, error)
}

type authService struct {
	provider identity.Provider
	sesiones *session.Store
	ttl      time.Duration
}

func NewAuthService(provider identity.Provider, sesiones *session.Store, ttl time.Duration) AuthService {
	return &authService{provider: provider, sesiones: sesiones, ttl: ttl}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	perfil, err := s.provider.Resolver(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}
	token, err := s.sesiones.Crear(ctx, perfil)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int(s.ttl.Seconds()),
		Perfil:      *perfilToResponse(perfil),
	}, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	return s.sesiones.Cerrar(ctx, token)
}

func (s *authService) Perfil(ctx context.Context, token string) (*dto.PerfilResponse, error) {
	perfil, err := s.sesiones.Validar(ctx, token)
	if err != nil {
		return nil, err
	}
	return perfilToResponse(perfil), nil
}

func perfilToResponse(p *identity.Perfil) *dto.PerfilResponse {
	resp := &dto.PerfilResponse{
		ID:     p.ID.String(),
		Nombre: p.Nombre,
		Email:  p.Email,
		Rol:    p.Rol,
	}
	if p.EmpresaID != nil {
		id := p.EmpresaID.String()
		resp.EmpresaID = &id
	}
	return resp
}
