package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Cliente is a customer as served by the backend. Aggregates (TotalPedidos,
// TotalGastado) arrive precomputed and are displayed as-is.
type Cliente struct {
	ID             uuid.UUID       `json:"id"`
	Usuario        string          `json:"usuario"` // handle, e.g. "@maria.comprass"
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
	CreatedAt      time.Time       `json:"created_at"`
}

// PerfilCliente is the extended profile view: the customer plus their orders.
type PerfilCliente struct {
	Cliente Cliente  `json:"cliente"`
	Pedidos []Pedido `json:"pedidos"`
}
