package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type AtributoVarianteRequest struct {
	Nombre  string   `json:"nombre"  validate:"required"`
	Valores []string `json:"valores" validate:"required,min=1"`
}

type CrearProductoRequest struct {
	CodigoProducto string                    `json:"codigo_producto" validate:"required,min=2,max=40"`
	Nombre         string                    `json:"nombre"          validate:"required,min=2,max=120"`
	Categoria      string                    `json:"categoria"       validate:"required"`
	PrecioVenta    decimal.Decimal           `json:"precio_venta"    validate:"required,min=0"`
	Stock          int                       `json:"stock"           validate:"min=0"`
	StockMinimo    int                       `json:"stock_minimo"    validate:"min=0"`
	Atributos      []AtributoVarianteRequest `json:"atributos"       validate:"omitempty,dive"`
}

type ActualizarProductoRequest struct {
	Nombre      *string          `json:"nombre"       validate:"omitempty,min=2,max=120"`
	Categoria   *string          `json:"categoria"`
	PrecioVenta *decimal.Decimal `json:"precio_venta" validate:"omitempty,min=0"`
	StockMinimo *int             `json:"stock_minimo" validate:"omitempty,min=0"`
}

// AjustarStockRequest is a signed adjustment with a mandatory reason code.
type AjustarStockRequest struct {
	Cantidad int    `json:"cantidad" validate:"required,ne=0"`
	Motivo   string `json:"motivo"   validate:"required,oneof=recepcion correccion dano perdida devolucion"`
}

// ─── Filter / Pagination ─────────────────────────────────────────────────────

type SKUFilter struct {
	Buscar string `form:"buscar"`
	Activo *bool  `form:"activo"`
	Limite int    `form:"limite,default=100" validate:"min=1,max=500"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type SKUResponse struct {
	ID             string                    `json:"id"`
	ProductoID     string                    `json:"producto_id"`
	NombreProducto string                    `json:"nombre_producto"`
	CodigoSKU      string                    `json:"codigo_sku"`
	Categoria      string                    `json:"categoria"`
	Atributos      []AtributoVarianteRequest `json:"atributos"`
	PrecioVenta    decimal.Decimal           `json:"precio_venta"`
	StockActual    int                       `json:"stock_actual"`
	StockReservado int                       `json:"stock_reservado"`
	// StockDisponible is clamped at zero for display; the backend owns the
	// real reservation arithmetic.
	StockDisponible int  `json:"stock_disponible"`
	StockMinimo     int  `json:"stock_minimo"`
	BajoMinimo      bool `json:"bajo_minimo"`
	Activo          bool `json:"activo"`
}

type SKUListResponse struct {
	Data  []SKUResponse `json:"data"`
	Total int           `json:"total"`
}
