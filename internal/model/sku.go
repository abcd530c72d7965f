package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AtributoVariante is one variant axis of a SKU, e.g. {Nombre: "talla",
// Valores: ["M", "L"]}. An ordered list keeps the schema statically
// describable instead of an open-ended keyed map.
type AtributoVariante struct {
	Nombre  string   `json:"nombre"`
	Valores []string `json:"valores"`
}

// SKU is a sellable variant of a product with its own stock count.
// StockReservado is owned server-side; this layer only clamps the derived
// available figure for display.
type SKU struct {
	ID             uuid.UUID          `json:"id"`
	ProductoID     uuid.UUID          `json:"producto_id"`
	NombreProducto string             `json:"nombre_producto"`
	CodigoSKU      string             `json:"codigo_sku"`
	Categoria      string             `json:"categoria"`
	Atributos      []AtributoVariante `json:"atributos"`
	PrecioVenta    decimal.Decimal    `json:"precio_venta"`
	StockActual    int                `json:"stock_actual"`
	StockReservado int                `json:"stock_reservado"`
	StockMinimo    int                `json:"stock_minimo"`
	Activo         bool               `json:"activo"`
	CreatedAt      time.Time          `json:"created_at"`
}

// Disponible is the display-only available stock: max(0, actual − reservado).
// The authoritative reservation arithmetic lives in the backend.
func (s *SKU) Disponible() int {
	d := s.StockActual - s.StockReservado
	if d < 0 {
		return 0
	}
	return d
}
