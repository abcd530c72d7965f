package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type ItemVentaRequest struct {
	SKUID          string          `json:"sku_id"          validate:"required,uuid"`
	Cantidad       int             `json:"cantidad"        validate:"required,min=1"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario" validate:"required,min=0"`
}

// CrearVentaEnVivoRequest creates an order during a broadcast: the customer
// is addressed by (handle, plataforma) and resolved or created server-side.
type CrearVentaEnVivoRequest struct {
	ClienteUsuario string             `json:"cliente_usuario" validate:"required,min=2,max=80"`
	Plataforma     string             `json:"plataforma"      validate:"required,oneof=instagram tiktok facebook whatsapp"`
	Items          []ItemVentaRequest `json:"items"           validate:"required,min=1,dive"`
	CostoEnvio     decimal.Decimal    `json:"costo_envio"     validate:"min=0"`
	Nota           *string            `json:"nota"`
}

// ActualizarEstadoRequest carries the target state verbatim; the backend is
// the authority on whether the transition is legal.
type ActualizarEstadoRequest struct {
	Estado string  `json:"estado" validate:"required"`
	Nota   *string `json:"nota"`
}

type EnviarReciboRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ─── Filter / Pagination ─────────────────────────────────────────────────────

type PedidoFilter struct {
	Estado    string `form:"estado"`
	ClienteID string `form:"cliente_id" validate:"omitempty,uuid"`
	Desde     string `form:"desde"` // YYYY-MM-DD
	Hasta     string `form:"hasta"`
	Page      int    `form:"page,default=1"   validate:"min=1"`
	Limit     int    `form:"limit,default=20" validate:"min=1,max=100"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// TransicionResponse is one offered next state, ready to render as a button.
type TransicionResponse struct {
	Estado   string `json:"estado"`
	Etiqueta string `json:"etiqueta"`
	Color    string `json:"color"`
}

type ItemPedidoResponse struct {
	SKUID          string          `json:"sku_id"`
	NombreProducto string          `json:"nombre_producto"`
	CodigoSKU      string          `json:"codigo_sku"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}

type CambioEstadoResponse struct {
	De    string  `json:"de"`
	A     string  `json:"a"`
	Fecha string  `json:"fecha"`
	Nota  *string `json:"nota"`
}

type PedidoResponse struct {
	ID                string               `json:"id"`
	Numero            string               `json:"numero"`
	ClienteID         string               `json:"cliente_id"`
	ClienteUsuario    string               `json:"cliente_usuario"`
	ClienteNombre     string               `json:"cliente_nombre"`
	Plataforma        string               `json:"plataforma"`
	Estado            string               `json:"estado"`
	EstadoEtiqueta    string               `json:"estado_etiqueta"`
	EstadoColor       string               `json:"estado_color"`
	Transiciones      []TransicionResponse `json:"transiciones"`
	Siguiente         *TransicionResponse  `json:"siguiente"`
	Items             []ItemPedidoResponse `json:"items"`
	Subtotal          decimal.Decimal      `json:"subtotal"`
	CostoEnvio        decimal.Decimal      `json:"costo_envio"`
	Total             decimal.Decimal      `json:"total"`
	EmpresaEnvio      *string              `json:"empresa_envio"`
	NumeroSeguimiento *string              `json:"numero_seguimiento"`
	Historial         []CambioEstadoResponse `json:"historial"`
	CreatedAt         string               `json:"created_at"`
}

type PedidoListResponse struct {
	Data  []PedidoResponse `json:"data"`
	Total int              `json:"total"`
	Page  int              `json:"page"`
	Limit int              `json:"limit"`
}

type EstadisticasResponse struct {
	TotalPedidos   int             `json:"total_pedidos"`
	PendientesPago int             `json:"pendientes_pago"`
	PorEmpaquetar  int             `json:"por_empaquetar"`
	EnviadosHoy    int             `json:"enviados_hoy"`
	VentasHoy      decimal.Decimal `json:"ventas_hoy"`
	VentasMes      decimal.Decimal `json:"ventas_mes"`
}
