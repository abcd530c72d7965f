// Package identity abstracts who is operating the dashboard. The shipped
// provider is a demo stub that resolves a fixed super-admin profile after a
// fixed delay and checks no credential; a real provider implements the same
// interface, so swapping it in requires no change to consumers.
package identity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Roles understood by the gateway's route gates.
const (
	RolSuperAdmin = "super_admin"
	RolAdmin      = "admin"
	RolVendedor   = "vendedor"
	RolInventario = "inventario"
)

// Perfil is the resolved operator identity.
type Perfil struct {
	ID        uuid.UUID  `json:"id"`
	Nombre    string     `json:"nombre"`
	Email     string     `json:"email"`
	Rol       string     `json:"rol"`
	EmpresaID *uuid.UUID `json:"empresa_id"` // nil for super_admin
}

// Provider resolves the operator's profile from whatever credentials the
// login form submitted.
type Provider interface {
	Resolver(ctx context.Context, email, password string) (*Perfil, error)
}

// StubProvider is the demo build's identity source: it ignores the submitted
// credentials entirely and resolves the fixed profile after the configured
// delay, mimicking a round trip to a real identity backend.
type StubProvider struct {
	demora time.Duration
	perfil Perfil
}

func NewStubProvider(demora time.Duration) *StubProvider {
	return &StubProvider{
		demora: demora,
		perfil: Perfil{
			ID:     uuid.MustParse("00000000-0000-0000-0000-000000000001"),
			Nombre: "Super Administrador",
			Email:  "admin@ventaslive.demo",
			Rol:    RolSuperAdmin,
		},
	}
}

func (p *StubProvider) Resolver(ctx context.Context, _, _ string) (*Perfil, error) {
	select {
	case <-time.After(p.demora):
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	perfil := p.perfil
	return &perfil, nil
}
