package importacion

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"ventaslive/internal/model"
)

const nombreHoja = "Inventario"

var encabezados = []string{
	ColCodigo, ColNombre, ColCategoria, ColPrecio,
	ColStock, ColStockMinimo, ColTallas, ColColores, ColMateriales,
}

// Illustrative rows shipped with the template so the expected shape of each
// column is obvious.
var filasEjemplo = [][]any{
	{"VEST-001", "Vestido floral verano", "vestidos", 24.99, 10, 2, "S,M,L", "verde,blanco", "algodón"},
	{"BLU-014", "Blusa manga larga", "blusas", 15.50, 25, 5, "M,L", "negro", ""},
}

// GenerarPlantilla builds the downloadable import template: styled header row
// plus example rows.
func GenerarPlantilla() ([]byte, error) {
	return generarHoja(filasEjemplo)
}

// GenerarExportacion builds the inventory export: the same layout as the
// import template, filled with the live SKU rows, so an exported file can be
// corrected and re-imported as-is.
func GenerarExportacion(skus []model.SKU) ([]byte, error) {
	filas := make([][]any, 0, len(skus))
	for _, s := range skus {
		filas = append(filas, []any{
			s.CodigoSKU,
			s.NombreProducto,
			s.Categoria,
			s.PrecioVenta.InexactFloat64(),
			s.StockActual,
			s.StockMinimo,
			valoresDe(s.Atributos, "talla"),
			valoresDe(s.Atributos, "color"),
			valoresDe(s.Atributos, "material"),
		})
	}
	return generarHoja(filas)
}

func valoresDe(atributos []model.AtributoVariante, nombre string) string {
	for _, a := range atributos {
		if a.Nombre == nombre {
			return strings.Join(a.Valores, ",")
		}
	}
	return ""
}

func generarHoja(filas [][]any) ([]byte, error) {
	f := excelize.NewFile()
	// No defer: WriteTo needs the file open; Close runs after writing.

	idx, err := f.NewSheet(nombreHoja)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("crear hoja: %w", err)
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(idx)

	estiloEncabezado, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("crear estilo: %w", err)
	}

	for col, titulo := range encabezados {
		celda, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			f.Close()
			return nil, err
		}
		if err := f.SetCellValue(nombreHoja, celda, titulo); err != nil {
			f.Close()
			return nil, err
		}
		if err := f.SetCellStyle(nombreHoja, celda, celda, estiloEncabezado); err != nil {
			f.Close()
			return nil, err
		}
	}

	for i, fila := range filas {
		for j, valor := range fila {
			celda, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				f.Close()
				return nil, err
			}
			if err := f.SetCellValue(nombreHoja, celda, valor); err != nil {
				f.Close()
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		f.Close()
		return nil, fmt.Errorf("escribir archivo: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
