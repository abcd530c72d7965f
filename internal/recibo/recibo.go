// Package recibo renders order receipts: a standalone printable HTML page
// for the browser's print dialog, and a thermal-ticket style PDF for
// download or email delivery.
package recibo

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/shopspring/decimal"

	"ventaslive/internal/model"
)

const plantillaHTML = `<!DOCTYPE html>
<html lang="es">
<head>
<meta charset="utf-8">
<title>Recibo {{.Pedido.Numero}}</title>
<style>
  body { font-family: monospace; max-width: 360px; margin: 2em auto; }
  h1 { font-size: 1.2em; text-align: center; }
  .centro { text-align: center; }
  table { width: 100%; border-collapse: collapse; }
  th { text-align: left; border-bottom: 1px solid #000; }
  td.num, th.num { text-align: right; }
  .total { font-weight: bold; border-top: 1px solid #000; }
  @media print { body { margin: 0; } }
</style>
</head>
<body onload="window.print()">
  <h1>{{.Negocio}}</h1>
  <p class="centro">Recibo de compra</p>
  <p>
    Pedido {{.Pedido.Numero}}<br>
    {{.Pedido.CreatedAt.Format "02/01/2006 15:04"}}<br>
    {{.Pedido.ClienteNombre}} ({{.Pedido.ClienteUsuario}} · {{.Pedido.Plataforma}})
  </p>
  <table>
    <tr><th>Producto</th><th class="num">Cant</th><th class="num">Subtotal</th></tr>
    {{range .Items}}
    <tr>
      <td>{{.Nombre}}</td>
      <td class="num">x{{.Cantidad}}</td>
      <td class="num">${{.Subtotal}}</td>
    </tr>
    {{end}}
    <tr><td colspan="2">Subtotal</td><td class="num">${{.Subtotal}}</td></tr>
    <tr><td colspan="2">Envío</td><td class="num">${{.Envio}}</td></tr>
    <tr class="total"><td colspan="2">TOTAL</td><td class="num">${{.Total}}</td></tr>
  </table>
  {{if .Pedido.NumeroSeguimiento}}
  <p>Seguimiento: {{.Pedido.NumeroSeguimiento}}{{if .Pedido.EmpresaEnvio}} ({{.Pedido.EmpresaEnvio}}){{end}}</p>
  {{end}}
  <p class="centro">¡Gracias por su compra!</p>
</body>
</html>
`

var tmpl = template.Must(template.New("recibo").Parse(plantillaHTML))

type itemRecibo struct {
	Nombre   string
	Cantidad int
	Subtotal string
}

// RenderHTML produces the printable receipt page for a single order.
func RenderHTML(pedido *model.Pedido, negocio string) ([]byte, error) {
	items := make([]itemRecibo, 0, len(pedido.Items))
	for _, it := range pedido.Items {
		items = append(items, itemRecibo{
			Nombre:   it.NombreProducto,
			Cantidad: it.Cantidad,
			Subtotal: subtotalItem(it).StringFixed(2),
		})
	}

	var buf bytes.Buffer
	err := tmpl.Execute(&buf, map[string]any{
		"Negocio":  negocio,
		"Pedido":   pedido,
		"Items":    items,
		"Subtotal": pedido.Subtotal.StringFixed(2),
		"Envio":    pedido.CostoEnvio.StringFixed(2),
		"Total":    pedido.Total.StringFixed(2),
	})
	if err != nil {
		return nil, fmt.Errorf("recibo: render html: %w", err)
	}
	return buf.Bytes(), nil
}

func subtotalItem(it model.PedidoItem) decimal.Decimal {
	return it.PrecioUnitario.Mul(decimal.NewFromInt(int64(it.Cantidad)))
}
