package dto

// ─── Empresas (tenant admin, super_admin only) ───────────────────────────────

type CrearEmpresaRequest struct {
	Nombre    string `json:"nombre"    validate:"required,min=2,max=120"`
	Email     string `json:"email"     validate:"required,email"`
	Telefono  string `json:"telefono"  validate:"omitempty,min=7,max=20"`
	Direccion string `json:"direccion"`
}

type ActualizarEmpresaRequest struct {
	Nombre    *string `json:"nombre"    validate:"omitempty,min=2,max=120"`
	Email     *string `json:"email"     validate:"omitempty,email"`
	Telefono  *string `json:"telefono"  validate:"omitempty,min=7,max=20"`
	Direccion *string `json:"direccion"`
}

// CambiarActivoRequest toggles the active flag; a pointer keeps "false"
// distinguishable from "missing".
type CambiarActivoRequest struct {
	Activo *bool `json:"activo" validate:"required"`
}

type EmpresaResponse struct {
	ID        string `json:"id"`
	Nombre    string `json:"nombre"`
	Email     string `json:"email"`
	Telefono  string `json:"telefono"`
	Direccion string `json:"direccion"`
	Activo    bool   `json:"activo"`
}

// ─── Usuarios de plataforma ──────────────────────────────────────────────────

type CrearUsuarioRequest struct {
	Nombre    string `json:"nombre"     validate:"required,min=2,max=120"`
	Email     string `json:"email"      validate:"required,email"`
	Rol       string `json:"rol"        validate:"required,oneof=admin vendedor inventario"`
	EmpresaID string `json:"empresa_id" validate:"required,uuid"`
}

type ActualizarUsuarioRequest struct {
	Nombre *string `json:"nombre" validate:"omitempty,min=2,max=120"`
	Email  *string `json:"email"  validate:"omitempty,email"`
	Rol    *string `json:"rol"    validate:"omitempty,oneof=admin vendedor inventario"`
}

type UsuarioResponse struct {
	ID        string `json:"id"`
	Nombre    string `json:"nombre"`
	Email     string `json:"email"`
	Rol       string `json:"rol"`
	Activo    bool   `json:"activo"`
	EmpresaID string `json:"empresa_id"`
}
