package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"ventaslive/internal/estado"
)

// PedidoItem is one order line. Cantidad is always ≥ 1 and SKUID always
// references an existing SKU (backend invariants).
type PedidoItem struct {
	SKUID          uuid.UUID       `json:"sku_id"`
	NombreProducto string          `json:"nombre_producto"`
	CodigoSKU      string          `json:"codigo_sku"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
}

// CambioEstado is one entry of an order's state-change history.
type CambioEstado struct {
	De    estado.Estado `json:"de"`
	A     estado.Estado `json:"a"`
	Fecha time.Time     `json:"fecha"`
	Nota  *string       `json:"nota"`
}

// Pedido is an order as served by the backend. Estado is never mutated
// locally; the dashboard requests a transition and refetches on success.
type Pedido struct {
	ID                uuid.UUID       `json:"id"`
	Numero            string          `json:"numero"`
	ClienteID         uuid.UUID       `json:"cliente_id"`
	ClienteUsuario    string          `json:"cliente_usuario"`
	ClienteNombre     string          `json:"cliente_nombre"`
	Plataforma        string          `json:"plataforma"`
	Estado            estado.Estado   `json:"estado"`
	Items             []PedidoItem    `json:"items"`
	Subtotal          decimal.Decimal `json:"subtotal"`
	CostoEnvio        decimal.Decimal `json:"costo_envio"`
	Total             decimal.Decimal `json:"total"`
	EmpresaEnvio      *string         `json:"empresa_envio"`
	NumeroSeguimiento *string         `json:"numero_seguimiento"`
	Historial         []CambioEstado  `json:"historial"`
	CreatedAt         time.Time       `json:"created_at"`
}

// EstadisticasPedidos are the dashboard cards, precomputed by the backend.
type EstadisticasPedidos struct {
	TotalPedidos   int             `json:"total_pedidos"`
	PendientesPago int             `json:"pendientes_pago"`
	PorEmpaquetar  int             `json:"por_empaquetar"`
	EnviadosHoy    int             `json:"enviados_hoy"`
	VentasHoy      decimal.Decimal `json:"ventas_hoy"`
	VentasMes      decimal.Decimal `json:"ventas_mes"`
}
