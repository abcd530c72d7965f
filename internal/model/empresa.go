package model

import (
	"time"

	"github.com/google/uuid"
)

// Empresa is a tenant organization, visible only to super-admin flows.
type Empresa struct {
	ID        uuid.UUID `json:"id"`
	Nombre    string    `json:"nombre"`
	Email     string    `json:"email"`
	Telefono  string    `json:"telefono"`
	Direccion string    `json:"direccion"`
	Activo    bool      `json:"activo"`
	CreatedAt time.Time `json:"created_at"`
}

// UsuarioPlataforma is a tenant-scoped platform user.
// Rol: "admin" | "vendedor" | "inventario" — plus "super_admin" for the
// cross-tenant operator, which is never created through these flows.
type UsuarioPlataforma struct {
	ID        uuid.UUID `json:"id"`
	Nombre    string    `json:"nombre"`
	Email     string    `json:"email"`
	Rol       string    `json:"rol"`
	Activo    bool      `json:"activo"`
	EmpresaID uuid.UUID `json:"empresa_id"`
	CreatedAt time.Time `json:"created_at"`
}
