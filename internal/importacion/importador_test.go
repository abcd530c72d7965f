package importacion

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"ventaslive/internal/model"
)

var categoriasConocidas = map[string]bool{
	"vestidos": true,
	"blusas":   true,
	"zapatos":  true,
}

// construirArchivo builds an in-memory workbook: header row + the given rows.
func construirArchivo(t *testing.T, filas [][]any) *bytes.Reader {
	t.Helper()
	f := excelize.NewFile()
	hoja := f.GetSheetName(0)

	for i, h := range encabezados {
		celda, err := excelize.CoordinatesToCellName(i+1, 1)
		require.NoError(t, err)
		require.NoError(t, f.SetCellValue(hoja, celda, h))
	}
	for r, fila := range filas {
		for c, v := range fila {
			celda, err := excelize.CoordinatesToCellName(c+1, r+2)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(hoja, celda, v))
		}
	}

	var buf bytes.Buffer
	_, err := f.WriteTo(&buf)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return bytes.NewReader(buf.Bytes())
}

func TestFilaValidaConVariantes(t *testing.T) {
	archivo := construirArchivo(t, [][]any{
		{"VEST-001", "Vestido floral", "vestidos", "24.99", "10", "2", "S, M ,L", "verde,blanco", "algodón"},
	})

	res, err := Parsear(archivo, categoriasConocidas)
	require.NoError(t, err)
	assert.Empty(t, res.Errores)
	require.Len(t, res.Validos, 1)

	p := res.Validos[0]
	assert.Equal(t, "VEST-001", p.CodigoProducto)
	assert.Equal(t, "24.99", p.PrecioVenta.String())
	assert.Equal(t, 10, p.Stock)
	require.Len(t, p.Atributos, 3)
	assert.Equal(t, "talla", p.Atributos[0].Nombre)
	assert.Equal(t, []string{"S", "M", "L"}, p.Atributos[0].Valores)
	assert.Equal(t, []string{"verde", "blanco"}, p.Atributos[1].Valores)
}

func TestNombreFaltanteYDuplicado(t *testing.T) {
	archivo := construirArchivo(t, [][]any{
		{"VEST-001", "", "vestidos", "24.99", "", "", "", "", ""},          // fila 2: sin nombre
		{"BLU-002", "Blusa lisa", "blusas", "15.00", "", "", "", "", ""},   // fila 3: válida
		{"BLU-002", "Blusa repetida", "blusas", "9.00", "", "", "", "", ""}, // fila 4: código repetido
	})

	res, err := Parsear(archivo, categoriasConocidas)
	require.NoError(t, err)

	require.Len(t, res.Validos, 1)
	assert.Equal(t, "BLU-002", res.Validos[0].CodigoProducto)

	require.Len(t, res.Errores, 2)
	assert.Contains(t, res.Errores[0], "Fila 2")
	assert.Contains(t, res.Errores[0], "Nombre es requerido")
	assert.Contains(t, res.Errores[1], "Fila 4")
	assert.Contains(t, res.Errores[1], "duplicado")
}

func TestCategoriaDesconocidaYPrecioInvalido(t *testing.T) {
	archivo := construirArchivo(t, [][]any{
		{"ZAP-001", "Sandalias", "sombreros", "12.00", "", "", "", "", ""},
		{"ZAP-002", "Botines", "zapatos", "no-es-precio", "", "", "", "", ""},
		{"ZAP-003", "Tacones", "zapatos", "-5", "", "", "", "", ""},
	})

	res, err := Parsear(archivo, categoriasConocidas)
	require.NoError(t, err)
	assert.Empty(t, res.Validos)
	require.Len(t, res.Errores, 3)
	assert.Contains(t, res.Errores[0], "desconocida")
	assert.Contains(t, res.Errores[1], "no es numérico")
	assert.Contains(t, res.Errores[2], "negativo")
}

func TestColumnaRequeridaAusente(t *testing.T) {
	f := excelize.NewFile()
	hoja := f.GetSheetName(0)
	// Header without precio_venta.
	for i, h := range []string{ColCodigo, ColNombre, ColCategoria} {
		celda, _ := excelize.CoordinatesToCellName(i+1, 1)
		require.NoError(t, f.SetCellValue(hoja, celda, h))
	}
	var buf bytes.Buffer
	_, err := f.WriteTo(&buf)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	_, err = Parsear(bytes.NewReader(buf.Bytes()), categoriasConocidas)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "precio_venta")
}

func TestFilasVaciasSeIgnoran(t *testing.T) {
	archivo := construirArchivo(t, [][]any{
		{"VEST-009", "Vestido corto", "vestidos", "19.99", "", "", "", "", ""},
		{"", "", "", "", "", "", "", "", ""},
	})

	res, err := Parsear(archivo, categoriasConocidas)
	require.NoError(t, err)
	assert.Equal(t, 1, res.FilasLeidas)
	assert.Len(t, res.Validos, 1)
	assert.Empty(t, res.Errores)
}

func TestPlantillaSePuedeReimportar(t *testing.T) {
	plantilla, err := GenerarPlantilla()
	require.NoError(t, err)

	res, err := Parsear(bytes.NewReader(plantilla), map[string]bool{"vestidos": true, "blusas": true})
	require.NoError(t, err)
	assert.Empty(t, res.Errores)
	assert.Len(t, res.Validos, 2, "las filas de ejemplo deben ser válidas")
}

func TestExportacionRoundTrip(t *testing.T) {
	skus := []model.SKU{{
		CodigoSKU:      "VEST-001-M",
		NombreProducto: "Vestido floral",
		Categoria:      "vestidos",
		Atributos: []model.AtributoVariante{
			{Nombre: "talla", Valores: []string{"M", "L"}},
		},
		StockActual: 7,
		StockMinimo: 2,
	}}

	exportado, err := GenerarExportacion(skus)
	require.NoError(t, err)

	res, err := Parsear(bytes.NewReader(exportado), categoriasConocidas)
	require.NoError(t, err)
	require.Len(t, res.Validos, 1)
	assert.Equal(t, "VEST-001-M", res.Validos[0].CodigoProducto)
	assert.Equal(t, 7, res.Validos[0].Stock)
	require.Len(t, res.Validos[0].Atributos, 1)
	assert.Equal(t, []string{"M", "L"}, res.Validos[0].Atributos[0].Valores)
}
