package backend

import (
	"context"
	"strconv"

	"github.com/google/uuid"

	"ventaslive/internal/dto"
	"ventaslive/internal/model"
)

// ResultadoImportacion is the backend's answer to a bulk-import batch:
// success count plus per-item failures (e.g. codes that already exist).
type ResultadoImportacion struct {
	Creados  int                    `json:"creados"`
	Fallidos []dto.FalloImportacion `json:"fallidos"`
}

// InventarioAPI is the SKU surface of the backend.
type InventarioAPI interface {
	ListarSKUs(ctx context.Context, filter dto.SKUFilter) ([]model.SKU, error)
	ObtenerSKU(ctx context.Context, id uuid.UUID) (*model.SKU, error)
	CrearProducto(ctx context.Context, req dto.CrearProductoRequest) (*model.SKU, error)
	CrearProductoConVarianteDebug(ctx context.Context, req dto.CrearProductoRequest) (*model.SKU, error)
	ActualizarProducto(ctx context.Context, id uuid.UUID, req dto.ActualizarProductoRequest) (*model.SKU, error)
	AjustarStock(ctx context.Context, id uuid.UUID, req dto.AjustarStockRequest) (*model.SKU, error)
	DesactivarProducto(ctx context.Context, id uuid.UUID) error
	ReactivarProducto(ctx context.Context, id uuid.UUID) error
	ImportarProductos(ctx context.Context, productos []dto.ProductoImportacion) (*ResultadoImportacion, error)
	ListarCategorias(ctx context.Context) ([]string, error)
}

type listaSKUs struct {
	Data  []model.SKU `json:"data"`
	Total int         `json:"total"`
}

func (c *Client) ListarSKUs(ctx context.Context, filter dto.SKUFilter) ([]model.SKU, error) {
	var out listaSKUs
	params := map[string]string{"limite": strconv.Itoa(filter.Limite)}
	if filter.Buscar != "" {
		params["buscar"] = filter.Buscar
	}
	if filter.Activo != nil {
		params["activo"] = strconv.FormatBool(*filter.Activo)
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(params).
		SetResult(&out).
		Get("/inventario")
	if err := revisar(resp, err); err != nil {
		return nil, err
	}
	return out.Data, nil
}

func (c *Client) ObtenerSKU(ctx context.Context, id uuid.UUID) (*model.SKU, error) {
	var out model.SKU
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/inventario/" + id.String())
	if err := revisar(resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CrearProducto(ctx context.Context, req dto.CrearProductoRequest) (*model.SKU, error) {
	return c.crearProducto(ctx, "/inventario", req)
}

// CrearProductoConVarianteDebug hits the diagnostic endpoint that seeds a
// throwaway size/color variant alongside the product.
func (c *Client) CrearProductoConVarianteDebug(ctx context.Context, req dto.CrearProductoRequest) (*model.SKU, error) {
	return c.crearProducto(ctx, "/inventario/debug-variante", req)
}

func (c *Client) crearProducto(ctx context.Context, ruta string, req dto.CrearProductoRequest) (*model.SKU, error) {
	var out model.SKU
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&out).
		Post(ruta)
	if err := revisar(resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ActualizarProducto(ctx context.Context, id uuid.UUID, req dto.ActualizarProductoRequest) (*model.SKU, error) {
	var out model.SKU
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&out).
		Put("/inventario/" + id.String())
	if err := revisar(resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AjustarStock(ctx context.Context, id uuid.UUID, req dto.AjustarStockRequest) (*model.SKU, error) {
	var out model.SKU
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&out).
		Patch("/inventario/" + id.String() + "/stock")
	if err := revisar(resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DesactivarProducto(ctx context.Context, id uuid.UUID) error {
	resp, err := c.http.R().SetContext(ctx).Delete("/inventario/" + id.String())
	return revisar(resp, err)
}

func (c *Client) ReactivarProducto(ctx context.Context, id uuid.UUID) error {
	resp, err := c.http.R().SetContext(ctx).Patch("/inventario/" + id.String() + "/reactivar")
	return revisar(resp, err)
}

func (c *Client) ImportarProductos(ctx context.Context, productos []dto.ProductoImportacion) (*ResultadoImportacion, error) {
	var out ResultadoImportacion
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]any{"productos": productos}).
		SetResult(&out).
		Post("/inventario/importar")
	if err := revisar(resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListarCategorias(ctx context.Context) ([]string, error) {
	var out struct {
		Data []string `json:"data"`
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/inventario/categorias")
	if err := revisar(resp, err); err != nil {
		return nil, err
	}
	return out.Data, nil
}
