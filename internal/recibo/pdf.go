package recibo

// pdf.go — thermal receipt-style PDF generation using go-pdf/fpdf:
//   - Business name header
//   - Order number, timestamp, customer handle
//   - Item table (product name, quantity, subtotal)
//   - Shipping line and bold total
//
// The output file is saved to storagePath/recibo_{numero}.pdf.

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-pdf/fpdf"

	"ventaslive/internal/model"
)

// GenerarPDF writes the receipt PDF for pedido and returns its absolute path.
func GenerarPDF(pedido *model.Pedido, negocio, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	archivo := filepath.Join(storagePath, fmt.Sprintf("recibo_%s.pdf", pedido.Numero))

	// 74mm × 105mm ≈ thermal receipt paper
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: 74, Ht: 105},
	})
	pdf.SetMargins(4, 4, 4)
	pdf.AddPage()

	anchoPagina, _ := pdf.GetPageSize()
	anchoContenido := anchoPagina - 8

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(anchoContenido, 7, negocio, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(anchoContenido, 5, "Recibo de compra", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(anchoContenido, 5, "Pedido "+pedido.Numero, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 7)
	pdf.CellFormat(anchoContenido, 4, pedido.CreatedAt.Format("02/01/2006  15:04"), "", 1, "L", false, 0, "")
	pdf.CellFormat(anchoContenido, 4, pedido.ClienteUsuario+" · "+pedido.Plataforma, "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.Line(4, pdf.GetY(), anchoPagina-4, pdf.GetY())
	pdf.Ln(2)

	// ── Items ────────────────────────────────────────────────────────────────
	col1 := anchoContenido * 0.52
	col2 := anchoContenido * 0.16
	col3 := anchoContenido * 0.32

	pdf.SetFont("Helvetica", "B", 7)
	pdf.CellFormat(col1, 5, "Producto", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 5, "Cant", "B", 0, "C", false, 0, "")
	pdf.CellFormat(col3, 5, "Subtotal", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	for _, item := range pedido.Items {
		nombre := item.NombreProducto
		if r := []rune(nombre); len(r) > 22 {
			nombre = string(r[:21]) + "…"
		}
		pdf.CellFormat(col1, 5, nombre, "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 5, fmt.Sprintf("x%d", item.Cantidad), "", 0, "C", false, 0, "")
		pdf.CellFormat(col3, 5, "$"+subtotalItem(item).StringFixed(2), "", 1, "R", false, 0, "")
	}

	pdf.Ln(2)
	pdf.Line(4, pdf.GetY(), anchoPagina-4, pdf.GetY())
	pdf.Ln(2)

	// ── Totals ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "", 7)
	pdf.CellFormat(col1+col2, 5, "Subtotal:", "", 0, "L", false, 0, "")
	pdf.CellFormat(col3, 5, "$"+pedido.Subtotal.StringFixed(2), "", 1, "R", false, 0, "")
	if !pedido.CostoEnvio.IsZero() {
		pdf.CellFormat(col1+col2, 5, "Envío:", "", 0, "L", false, 0, "")
		pdf.CellFormat(col3, 5, "$"+pedido.CostoEnvio.StringFixed(2), "", 1, "R", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(col1+col2, 6, "TOTAL:", "", 0, "L", false, 0, "")
	pdf.CellFormat(col3, 6, "$"+pedido.Total.StringFixed(2), "", 1, "R", false, 0, "")

	// ── Footer ───────────────────────────────────────────────────────────────
	pdf.Ln(3)
	pdf.SetFont("Helvetica", "I", 7)
	pdf.CellFormat(anchoContenido, 4, "¡Gracias por su compra!", "", 1, "C", false, 0, "")

	if err := pdf.OutputFileAndClose(archivo); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}
	return archivo, nil
}
