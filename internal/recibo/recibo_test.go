package recibo

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ventaslive/internal/estado"
	"ventaslive/internal/model"
)

func pedidoDemo() *model.Pedido {
	seguimiento := "EC-448812"
	return &model.Pedido{
		ID:             uuid.New(),
		Numero:         "PED-2026-0042",
		ClienteUsuario: "@maria.comprass",
		ClienteNombre:  "María Campos",
		Plataforma:     "instagram",
		Estado:         estado.Enviado,
		Items: []model.PedidoItem{
			{NombreProducto: "Vestido floral", Cantidad: 2, PrecioUnitario: decimal.NewFromFloat(10)},
			{NombreProducto: "Blusa lisa", Cantidad: 1, PrecioUnitario: decimal.NewFromFloat(5)},
		},
		Subtotal:          decimal.NewFromInt(25),
		CostoEnvio:        decimal.NewFromFloat(3.50),
		Total:             decimal.NewFromFloat(28.50),
		NumeroSeguimiento: &seguimiento,
		CreatedAt:         time.Date(2026, 8, 14, 20, 30, 0, 0, time.UTC),
	}
}

func TestRenderHTML(t *testing.T) {
	html, err := RenderHTML(pedidoDemo(), "VentasLive")
	require.NoError(t, err)

	s := string(html)
	assert.Contains(t, s, "PED-2026-0042")
	assert.Contains(t, s, "@maria.comprass")
	assert.Contains(t, s, "Vestido floral")
	assert.Contains(t, s, "$20.00") // 2 × 10
	assert.Contains(t, s, "$28.50")
	assert.Contains(t, s, "EC-448812")
	assert.Contains(t, s, "window.print()")
}

func TestGenerarPDF(t *testing.T) {
	dir := t.TempDir()

	ruta, err := GenerarPDF(pedidoDemo(), "VentasLive", dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "recibo_PED-2026-0042.pdf"), ruta)

	info, err := os.Stat(ruta)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(500), "el PDF no debe estar vacío")
}
