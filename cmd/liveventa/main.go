// liveventa is the quick-entry terminal used while a sale is being broadcast:
// type a handle to find the customer, pick products, and the order is created
// in one go. Typing is debounced the same way the dashboard pickers are.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"ventaslive/internal/backend"
	"ventaslive/internal/busqueda"
	"ventaslive/internal/config"
	"ventaslive/internal/dto"
	"ventaslive/internal/service"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(zerolog.WarnLevel)

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	cliente := backend.New(cfg.BackendURL)
	ctx := context.Background()
	lector := bufio.NewScanner(os.Stdin)

	fmt.Println("── VentasLive · venta en vivo ──")

	plataforma := leer(lector, "Plataforma (instagram/tiktok/facebook/whatsapp): ")
	usuario, nuevo := elegirCliente(ctx, lector, cliente, cfg, plataforma)

	items := capturarItems(ctx, lector, cliente, cfg)
	if len(items) == 0 {
		fmt.Println("Sin artículos; venta descartada.")
		return
	}

	envio := decimal.Zero
	if bruto := leer(lector, "Costo de envío (enter = 0): "); bruto != "" {
		if v, err := decimal.NewFromString(bruto); err == nil {
			envio = v
		}
	}

	fmt.Printf("Subtotal: $%s · Envío: $%s\n",
		service.Subtotal(items).StringFixed(2), envio.StringFixed(2))
	if nuevo {
		fmt.Printf("El cliente %s (%s) se creará junto con el pedido.\n", usuario, plataforma)
	}
	if leer(lector, "Confirmar venta? (s/n): ") != "s" {
		fmt.Println("Venta descartada.")
		return
	}

	pedido, err := cliente.CrearVentaEnVivo(ctx, dto.CrearVentaEnVivoRequest{
		ClienteUsuario: usuario,
		Plataforma:     plataforma,
		Items:          items,
		CostoEnvio:     envio,
	})
	if err != nil {
		fmt.Println("No se pudo crear la venta:", err)
		os.Exit(1)
	}
	fmt.Printf("Pedido %s creado · total $%s · estado %s\n",
		pedido.Numero, pedido.Total.StringFixed(2), pedido.Estado)
}

// elegirCliente runs the debounced customer picker. Every line typed counts
// as the field's current text; an empty line re-prompts. Returns the chosen
// handle and whether it is a brand-new customer.
func elegirCliente(ctx context.Context, lector *bufio.Scanner, cliente *backend.Client, cfg *config.Config, plataforma string) (string, bool) {
	demora := time.Duration(cfg.DebounceMS) * time.Millisecond
	listo := make(chan struct{}, 1)

	sel := busqueda.NewSelector(demora, func(ctx context.Context, texto string) ([]busqueda.Resultado, error) {
		clientes, err := cliente.ListarClientes(ctx, dto.ClienteFilter{
			Buscar: texto, Plataforma: plataforma, Limite: 10,
		})
		if err != nil {
			return nil, err
		}
		out := make([]busqueda.Resultado, 0, len(clientes))
		for _, c := range clientes {
			out = append(out, busqueda.Resultado{ID: c.ID, Etiqueta: c.Usuario, Plataforma: c.Plataforma})
		}
		return out, nil
	})
	sel.AlCompletar(func() {
		select {
		case listo <- struct{}{}:
		default:
		}
	})

	for {
		texto := leer(lector, "Cliente: ")
		if texto == "" {
			continue
		}
		sel.Teclear(ctx, texto)
		<-listo

		resultados, err := sel.Resultados()
		if err != nil {
			fmt.Println("Búsqueda falló:", err)
			continue
		}
		for i, r := range resultados {
			fmt.Printf("  %d) %s (%s)\n", i+1, r.Etiqueta, r.Plataforma)
		}
		if busqueda.OfreceCrear(resultados, texto, plataforma) {
			fmt.Printf("  0) crear cliente nuevo: %s en %s\n", texto, plataforma)
		}

		eleccion := leer(lector, "Número (enter = buscar de nuevo): ")
		if eleccion == "" {
			continue
		}
		n, err := strconv.Atoi(eleccion)
		switch {
		case err != nil:
			continue
		case n == 0 && busqueda.OfreceCrear(resultados, texto, plataforma):
			return texto, true
		case n >= 1 && n <= len(resultados):
			r, ok := sel.Seleccionar(resultados[n-1].ID)
			if ok {
				return r.Etiqueta, false
			}
		}
	}
}

// capturarItems picks products by search text and accumulates the order lines,
// echoing the running subtotal after every addition.
func capturarItems(ctx context.Context, lector *bufio.Scanner, cliente *backend.Client, cfg *config.Config) []dto.ItemVentaRequest {
	var items []dto.ItemVentaRequest
	for {
		texto := leer(lector, "Producto (enter = terminar): ")
		if texto == "" {
			return items
		}
		skus, err := cliente.ListarSKUs(ctx, dto.SKUFilter{Buscar: texto, Limite: 10})
		if err != nil {
			fmt.Println("Búsqueda falló:", err)
			continue
		}
		if len(skus) == 0 {
			fmt.Println("Sin resultados.")
			continue
		}
		for i := range skus {
			s := &skus[i]
			fmt.Printf("  %d) %s · %s · $%s · disp. %d\n",
				i+1, s.CodigoSKU, s.NombreProducto, s.PrecioVenta.StringFixed(2), s.Disponible())
		}
		n, err := strconv.Atoi(leer(lector, "Número: "))
		if err != nil || n < 1 || n > len(skus) {
			continue
		}
		sku := skus[n-1]
		cantidad, err := strconv.Atoi(leer(lector, "Cantidad: "))
		if err != nil || cantidad < 1 {
			continue
		}
		items = append(items, dto.ItemVentaRequest{
			SKUID:          sku.ID.String(),
			Cantidad:       cantidad,
			PrecioUnitario: sku.PrecioVenta,
		})
		fmt.Printf("Subtotal: $%s\n", service.Subtotal(items).StringFixed(2))
	}
}

func leer(lector *bufio.Scanner, prompt string) string {
	fmt.Print(prompt)
	if !lector.Scan() {
		os.Exit(0)
	}
	return strings.TrimSpace(lector.Text())
}
