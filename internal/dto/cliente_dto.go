package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearClienteRequest struct {
	Usuario        string  `json:"usuario"         validate:"required,min=2,max=80"`
	Plataforma     string  `json:"plataforma"      validate:"required,oneof=instagram tiktok facebook whatsapp"`
	NombreCompleto string  `json:"nombre_completo" validate:"omitempty,max=120"`
	Telefono       string  `json:"telefono"        validate:"omitempty,min=7,max=20"`
	Direccion      string  `json:"direccion"`
	Referencia     *string `json:"referencia"`
	Ciudad         string  `json:"ciudad"`
	Provincia      string  `json:"provincia"`
	MetodoContacto string  `json:"metodo_contacto" validate:"omitempty,oneof=telefono whatsapp mensaje_directo email"`
}

type ActualizarClienteRequest struct {
	NombreCompleto *string `json:"nombre_completo" validate:"omitempty,max=120"`
	Telefono       *string `json:"telefono"        validate:"omitempty,min=7,max=20"`
	Direccion      *string `json:"direccion"`
	Referencia     *string `json:"referencia"`
	Ciudad         *string `json:"ciudad"`
	Provincia      *string `json:"provincia"`
	MetodoContacto *string `json:"metodo_contacto" validate:"omitempty,oneof=telefono whatsapp mensaje_directo email"`
}

// BuscarOCrearRequest resolves a customer by (handle, plataforma), creating
// it when absent. The platform is mandatory: the handle alone does not
// uniquely identify a customer.
type BuscarOCrearRequest struct {
	Usuario    string `json:"usuario"    validate:"required,min=2,max=80"`
	Plataforma string `json:"plataforma" validate:"required,oneof=instagram tiktok facebook whatsapp"`
}

// ─── Filter / Pagination ─────────────────────────────────────────────────────

type ClienteFilter struct {
	Buscar     string `form:"buscar"`
	Plataforma string `form:"plataforma"`
	Limite     int    `form:"limite,default=50" validate:"min=1,max=200"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ClienteResponse struct {
	ID             string          `json:"id"`
	Usuario        string          `json:"usuario"`
	Plataforma     string          `json:"plataforma"`
	NombreCompleto string          `json:"nombre_completo"`
	Telefono       string          `json:"telefono"`
	Direccion      string          `json:"direccion"`
	Referencia     *string         `json:"referencia"`
	Ciudad         string          `json:"ciudad"`
	Provincia      string          `json:"provincia"`
	MetodoContacto string          `json:"metodo_contacto"`
	Activo         bool            `json:"activo"`
	TotalPedidos   int             `json:"total_pedidos"`
	TotalGastado   decimal.Decimal `json:"total_gastado"`
}

// ClienteListResponse carries the dropdown affordance flag alongside the
// rows: OfreceCrear is true when the current search allows creating a new
// customer (no exact handle+platform match).
type ClienteListResponse struct {
	Data        []ClienteResponse `json:"data"`
	Total       int               `json:"total"`
	OfreceCrear bool              `json:"ofrece_crear"`
}

type PerfilClienteResponse struct {
	Cliente ClienteResponse  `json:"cliente"`
	Pedidos []PedidoResponse `json:"pedidos"`
}
