package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"ventaslive/internal/backend"
	"ventaslive/internal/dto"
	"ventaslive/internal/model"
)

type stubInventarioAPI struct {
	skus       []model.SKU
	categorias []string

	importados [][]dto.ProductoImportacion
	resultado  *backend.ResultadoImportacion
}

func (s *stubInventarioAPI) ListarSKUs(_ context.Context, _ dto.SKUFilter) ([]model.SKU, error) {
	return s.skus, nil
}

func (s *stubInventarioAPI) ObtenerSKU(_ context.Context, _ uuid.UUID) (*model.SKU, error) {
	return &s.skus[0], nil
}

func (s *stubInventarioAPI) CrearProducto(_ context.Context, _ dto.CrearProductoRequest) (*model.SKU, error) {
	return &s.skus[0], nil
}

func (s *stubInventarioAPI) CrearProductoConVarianteDebug(_ context.Context, _ dto.CrearProductoRequest) (*model.SKU, error) {
	return &s.skus[0], nil
}

func (s *stubInventarioAPI) ActualizarProducto(_ context.Context, _ uuid.UUID, _ dto.ActualizarProductoRequest) (*model.SKU, error) {
	return &s.skus[0], nil
}

func (s *stubInventarioAPI) AjustarStock(_ context.Context, _ uuid.UUID, _ dto.AjustarStockRequest) (*model.SKU, error) {
	return &s.skus[0], nil
}

func (s *stubInventarioAPI) DesactivarProducto(_ context.Context, _ uuid.UUID) error { return nil }
func (s *stubInventarioAPI) ReactivarProducto(_ context.Context, _ uuid.UUID) error  { return nil }

func (s *stubInventarioAPI) ImportarProductos(_ context.Context, productos []dto.ProductoImportacion) (*backend.ResultadoImportacion, error) {
	s.importados = append(s.importados, productos)
	return s.resultado, nil
}

func (s *stubInventarioAPI) ListarCategorias(_ context.Context) ([]string, error) {
	return s.categorias, nil
}

func skuPrueba(actual, reservado, minimo int) model.SKU {
	return model.SKU{
		ID:             uuid.New(),
		ProductoID:     uuid.New(),
		NombreProducto: "Blusa flores",
		CodigoSKU:      "BLU-001-M",
		Categoria:      "blusas",
		PrecioVenta:    decimal.NewFromFloat(12.5),
		StockActual:    actual,
		StockReservado: reservado,
		StockMinimo:    minimo,
		Activo:         true,
	}
}

func TestListarClampaStockDisponible(t *testing.T) {
	api := &stubInventarioAPI{skus: []model.SKU{
		skuPrueba(10, 3, 2),
		skuPrueba(10, 12, 2), // sobre-reservado: nunca se muestra negativo
	}}
	svc := NewInventarioService(api)

	resp, err := svc.Listar(context.Background(), dto.SKUFilter{Limite: 100})
	require.NoError(t, err)
	require.Len(t, resp.Data, 2)

	assert.Equal(t, 7, resp.Data[0].StockDisponible)
	assert.False(t, resp.Data[0].BajoMinimo)

	assert.Equal(t, 0, resp.Data[1].StockDisponible)
	assert.True(t, resp.Data[1].BajoMinimo)
}

func archivoImportacion(t *testing.T, filas [][]any) *bytes.Reader {
	t.Helper()
	f := excelize.NewFile()
	hoja := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(hoja, "A1", &[]any{
		"codigo_producto", "nombre", "categoria", "precio_venta",
	}))
	for i, fila := range filas {
		celda, err := excelize.CoordinatesToCellName(1, i+2)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(hoja, celda, &fila))
	}
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return bytes.NewReader(buf.Bytes())
}

func TestImportarMezclaErroresLocalesYDelBackend(t *testing.T) {
	api := &stubInventarioAPI{
		categorias: []string{"Blusas"},
		resultado: &backend.ResultadoImportacion{
			Creados: 1,
			Fallidos: []dto.FalloImportacion{
				{CodigoProducto: "BLU-001", Motivo: "el código ya existe"},
			},
		},
	}
	svc := NewInventarioService(api)

	archivo := archivoImportacion(t, [][]any{
		{"BLU-001", "Blusa flores", "blusas", "12.50"},
		{"BLU-002", "", "blusas", "9.90"}, // rechazada localmente
		{"BLU-003", "Blusa rayas", "blusas", "11.00"},
	})

	resp, err := svc.Importar(context.Background(), archivo)
	require.NoError(t, err)

	assert.Equal(t, 3, resp.FilasLeidas)
	assert.Equal(t, 1, resp.Creados)
	require.Len(t, resp.ErroresValidacion, 1)
	assert.Contains(t, resp.ErroresValidacion[0], "Fila 3")
	require.Len(t, resp.Fallidos, 1)
	assert.Equal(t, "BLU-001", resp.Fallidos[0].CodigoProducto)

	// solo las filas válidas viajan al backend
	require.Len(t, api.importados, 1)
	assert.Len(t, api.importados[0], 2)
}

func TestImportarSinFilasValidasNoLlamaAlBackend(t *testing.T) {
	api := &stubInventarioAPI{categorias: []string{"blusas"}}
	svc := NewInventarioService(api)

	archivo := archivoImportacion(t, [][]any{
		{"", "Blusa flores", "blusas", "12.50"},
	})

	resp, err := svc.Importar(context.Background(), archivo)
	require.NoError(t, err)
	assert.Zero(t, resp.Creados)
	assert.Len(t, resp.ErroresValidacion, 1)
	assert.Empty(t, api.importados)
}

func TestExportarRegeneraLayoutDeImportacion(t *testing.T) {
	api := &stubInventarioAPI{skus: []model.SKU{skuPrueba(10, 0, 2)}}
	svc := NewInventarioService(api)

	datos, err := svc.Exportar(context.Background())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(datos))
	require.NoError(t, err)
	defer f.Close()

	filas, err := f.GetRows(f.GetSheetName(0))
	require.NoError(t, err)
	require.Len(t, filas, 2)
	assert.Equal(t, "codigo_producto", filas[0][0])
	assert.Equal(t, "BLU-001-M", filas[1][0])
}
