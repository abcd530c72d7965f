// Package importacion parses inventory bulk-create spreadsheets and produces
// two parallel outputs: backend-ready creation payloads and human-readable
// validation errors, one per offending row. Row numbers in errors are
// 1-indexed and account for the header row.
package importacion

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"ventaslive/internal/dto"
)

// Column headers of the import sheet. The first four are mandatory.
const (
	ColCodigo      = "codigo_producto"
	ColNombre      = "nombre"
	ColCategoria   = "categoria"
	ColPrecio      = "precio_venta"
	ColStock       = "stock"
	ColStockMinimo = "stock_minimo"
	ColTallas      = "tallas"
	ColColores     = "colores"
	ColMateriales  = "materiales"
)

var columnasRequeridas = []string{ColCodigo, ColNombre, ColCategoria, ColPrecio}

// Resultado separates rows that passed local validation from the per-row
// error strings of those that did not.
type Resultado struct {
	FilasLeidas int
	Validos     []dto.ProductoImportacion
	Errores     []string
}

// Parsear reads the first sheet of an Excel workbook, keyed by its header
// row, and validates every data row against the known category set. A
// missing mandatory column aborts with an error; row-level problems only
// exclude the row.
func Parsear(r io.Reader, categorias map[string]bool) (*Resultado, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("archivo ilegible: %w", err)
	}
	defer f.Close()

	hojas := f.GetSheetList()
	if len(hojas) == 0 {
		return nil, fmt.Errorf("el archivo no contiene hojas")
	}
	filas, err := f.GetRows(hojas[0])
	if err != nil {
		return nil, fmt.Errorf("no se pudo leer la hoja %q: %w", hojas[0], err)
	}
	if len(filas) == 0 {
		return nil, fmt.Errorf("el archivo está vacío")
	}

	columnas := make(map[string]int, len(filas[0]))
	for i, h := range filas[0] {
		columnas[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, req := range columnasRequeridas {
		if _, ok := columnas[req]; !ok {
			return nil, fmt.Errorf("falta la columna requerida %q", req)
		}
	}

	res := &Resultado{}
	vistos := make(map[string]bool)

	for i, fila := range filas[1:] {
		numFila := i + 2 // 1-indexed, header row included
		celda := func(col string) string {
			idx, ok := columnas[col]
			if !ok || idx >= len(fila) {
				return ""
			}
			return strings.TrimSpace(fila[idx])
		}

		// Fully empty rows (trailing padding) are skipped silently.
		if celda(ColCodigo) == "" && celda(ColNombre) == "" && celda(ColCategoria) == "" && celda(ColPrecio) == "" {
			continue
		}
		res.FilasLeidas++

		p, errs := validarFila(numFila, celda, categorias, vistos)
		if len(errs) > 0 {
			res.Errores = append(res.Errores, errs...)
			continue
		}
		vistos[strings.ToLower(p.CodigoProducto)] = true
		res.Validos = append(res.Validos, *p)
	}

	return res, nil
}

func validarFila(numFila int, celda func(string) string, categorias map[string]bool, vistos map[string]bool) (*dto.ProductoImportacion, []string) {
	var errs []string
	falla := func(formato string, args ...any) {
		errs = append(errs, fmt.Sprintf("Fila %d: ", numFila)+fmt.Sprintf(formato, args...))
	}

	codigo := celda(ColCodigo)
	if codigo == "" {
		falla("Código de producto es requerido")
	} else if vistos[strings.ToLower(codigo)] {
		falla("código %q duplicado en el archivo", codigo)
	}

	nombre := celda(ColNombre)
	if nombre == "" {
		falla("Nombre es requerido")
	}

	categoria := celda(ColCategoria)
	if categoria == "" {
		falla("Categoría es requerida")
	} else if len(categorias) > 0 && !categorias[strings.ToLower(categoria)] {
		falla("categoría %q desconocida", categoria)
	}

	var precio decimal.Decimal
	if bruto := celda(ColPrecio); bruto == "" {
		falla("Precio de venta es requerido")
	} else {
		var err error
		precio, err = decimal.NewFromString(bruto)
		if err != nil {
			falla("precio de venta %q no es numérico", bruto)
		} else if precio.IsNegative() {
			falla("precio de venta no puede ser negativo")
		}
	}

	stock, err := enteroOpcional(celda(ColStock))
	if err != nil || stock < 0 {
		falla("stock debe ser un entero no negativo")
	}
	stockMinimo, err := enteroOpcional(celda(ColStockMinimo))
	if err != nil || stockMinimo < 0 {
		falla("stock mínimo debe ser un entero no negativo")
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return &dto.ProductoImportacion{
		CodigoProducto: codigo,
		Nombre:         nombre,
		Categoria:      categoria,
		PrecioVenta:    precio,
		Stock:          stock,
		StockMinimo:    stockMinimo,
		Atributos:      atributosDe(celda),
	}, nil
}

// atributosDe folds the optional comma-separated columns into the ordered
// variant-attribute list. Empty columns contribute nothing.
func atributosDe(celda func(string) string) []dto.AtributoVarianteRequest {
	var atributos []dto.AtributoVarianteRequest
	for _, col := range []struct{ columna, atributo string }{
		{ColTallas, "talla"},
		{ColColores, "color"},
		{ColMateriales, "material"},
	} {
		valores := separarValores(celda(col.columna))
		if len(valores) > 0 {
			atributos = append(atributos, dto.AtributoVarianteRequest{
				Nombre:  col.atributo,
				Valores: valores,
			})
		}
	}
	return atributos
}

func separarValores(bruto string) []string {
	if bruto == "" {
		return nil
	}
	var out []string
	for _, v := range strings.Split(bruto, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func enteroOpcional(bruto string) (int, error) {
	if bruto == "" {
		return 0, nil
	}
	return strconv.Atoi(bruto)
}
