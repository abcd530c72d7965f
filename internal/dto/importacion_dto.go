package dto

import "github.com/shopspring/decimal"

// ProductoImportacion is one backend-ready creation payload produced by the
// spreadsheet validator.
type ProductoImportacion struct {
	CodigoProducto string                    `json:"codigo_producto"`
	Nombre         string                    `json:"nombre"`
	Categoria      string                    `json:"categoria"`
	PrecioVenta    decimal.Decimal           `json:"precio_venta"`
	Stock          int                       `json:"stock"`
	StockMinimo    int                       `json:"stock_minimo"`
	Atributos      []AtributoVarianteRequest `json:"atributos"`
}

// FalloImportacion is one per-item failure reported by the backend batch call
// (e.g. a code that already exists server-side).
type FalloImportacion struct {
	CodigoProducto string `json:"codigo_producto"`
	Motivo         string `json:"motivo"`
}

// ImportacionResponse distinguishes rows dropped by local validation from
// items the backend rejected, plus the success count.
type ImportacionResponse struct {
	FilasLeidas       int                `json:"filas_leidas"`
	Creados           int                `json:"creados"`
	Fallidos          []FalloImportacion `json:"fallidos"`
	ErroresValidacion []string           `json:"errores_validacion"`
}
