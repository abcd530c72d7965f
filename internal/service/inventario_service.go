package service

import (
	"context"
	"io"
	"strings"

	"github.com/google/uuid"

	"ventaslive/internal/backend"
	"ventaslive/internal/dto"
	"ventaslive/internal/importacion"
	"ventaslive/internal/model"
)

type InventarioService interface {
	Listar(ctx context.Context, filter dto.SKUFilter) (*dto.SKUListResponse, error)
	Obtener(ctx context.Context, id uuid.UUID) (*dto.SKUResponse, error)
	Crear(ctx context.Context, req dto.CrearProductoRequest) (*dto.SKUResponse, error)
	CrearConVarianteDebug(ctx context.Context, req dto.CrearProductoRequest) (*dto.SKUResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarProductoRequest) (*dto.SKUResponse, error)
	AjustarStock(ctx context.Context, id uuid.UUID, req dto.AjustarStockRequest) (*dto.SKUResponse, error)
	Desactivar(ctx context.Context, id uuid.UUID) error
	Reactivar(ctx context.Context, id uuid.UUID) error
	Importar(ctx context.Context, r io.Reader) (*dto.ImportacionResponse, error)
	Plantilla() ([]byte, error)
	Exportar(ctx context.Context) ([]byte, error)
}

type inventarioService struct {
	api backend.InventarioAPI
}

func NewInventarioService(api backend.InventarioAPI) InventarioService {
	return &inventarioService{api: api}
}

func (s *inventarioService) Listar(ctx context.Context, filter dto.SKUFilter) (*dto.SKUListResponse, error) {
	skus, err := s.api.ListarSKUs(ctx, filter)
	if err != nil {
		return nil, err
	}
	resp := &dto.SKUListResponse{
		Data:  make([]dto.SKUResponse, 0, len(skus)),
		Total: len(skus),
	}
	for i := range skus {
		resp.Data = append(resp.Data, *skuToResponse(&skus[i]))
	}
	return resp, nil
}

func (s *inventarioService) Obtener(ctx context.Context, id uuid.UUID) (*dto.SKUResponse, error) {
	sku, err := s.api.ObtenerSKU(ctx, id)
	if err != nil {
		return nil, err
	}
	return skuToResponse(sku), nil
}

func (s *inventarioService) Crear(ctx context.Context, req dto.CrearProductoRequest) (*dto.SKUResponse, error) {
	sku, err := s.api.CrearProducto(ctx, req)
	if err != nil {
		return nil, err
	}
	return skuToResponse(sku), nil
}

func (s *inventarioService) CrearConVarianteDebug(ctx context.Context, req dto.CrearProductoRequest) (*dto.SKUResponse, error) {
	sku, err := s.api.CrearProductoConVarianteDebug(ctx, req)
	if err != nil {
		return nil, err
	}
	return skuToResponse(sku), nil
}

func (s *inventarioService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarProductoRequest) (*dto.SKUResponse, error) {
	sku, err := s.api.ActualizarProducto(ctx, id, req)
	if err != nil {
		return nil, err
	}
	return skuToResponse(sku), nil
}

func (s *inventarioService) AjustarStock(ctx context.Context, id uuid.UUID, req dto.AjustarStockRequest) (*dto.SKUResponse, error) {
	sku, err := s.api.AjustarStock(ctx, id, req)
	if err != nil {
		return nil, err
	}
	return skuToResponse(sku), nil
}

func (s *inventarioService) Desactivar(ctx context.Context, id uuid.UUID) error {
	return s.api.DesactivarProducto(ctx, id)
}

func (s *inventarioService) Reactivar(ctx context.Context, id uuid.UUID) error {
	return s.api.ReactivarProducto(ctx, id)
}

// Importar validates the spreadsheet locally against the backend's category
// set, then sends only the rows that passed. Local validation errors and
// backend per-item failures are reported side by side.
func (s *inventarioService) Importar(ctx context.Context, r io.Reader) (*dto.ImportacionResponse, error) {
	categorias, err := s.api.ListarCategorias(ctx)
	if err != nil {
		return nil, err
	}
	conocidas := make(map[string]bool, len(categorias))
	for _, c := range categorias {
		conocidas[strings.ToLower(c)] = true
	}

	res, err := importacion.Parsear(r, conocidas)
	if err != nil {
		return nil, err
	}

	resp := &dto.ImportacionResponse{
		FilasLeidas:       res.FilasLeidas,
		Fallidos:          []dto.FalloImportacion{},
		ErroresValidacion: res.Errores,
	}
	if len(res.Validos) == 0 {
		return resp, nil
	}

	creados, err := s.api.ImportarProductos(ctx, res.Validos)
	if err != nil {
		return nil, err
	}
	resp.Creados = creados.Creados
	if creados.Fallidos != nil {
		resp.Fallidos = creados.Fallidos
	}
	return resp, nil
}

func (s *inventarioService) Plantilla() ([]byte, error) {
	return importacion.GenerarPlantilla()
}

// Exportar produces a workbook in the import layout, so an edited export can
// be re-imported directly.
func (s *inventarioService) Exportar(ctx context.Context) ([]byte, error) {
	skus, err := s.api.ListarSKUs(ctx, dto.SKUFilter{Limite: 500})
	if err != nil {
		return nil, err
	}
	return importacion.GenerarExportacion(skus)
}

func skuToResponse(sku *model.SKU) *dto.SKUResponse {
	atributos := make([]dto.AtributoVarianteRequest, 0, len(sku.Atributos))
	for _, a := range sku.Atributos {
		atributos = append(atributos, dto.AtributoVarianteRequest{Nombre: a.Nombre, Valores: a.Valores})
	}
	disponible := sku.Disponible()
	return &dto.SKUResponse{
		ID:              sku.ID.String(),
		ProductoID:      sku.ProductoID.String(),
		NombreProducto:  sku.NombreProducto,
		CodigoSKU:       sku.CodigoSKU,
		Categoria:       sku.Categoria,
		Atributos:       atributos,
		PrecioVenta:     sku.PrecioVenta,
		StockActual:     sku.StockActual,
		StockReservado:  sku.StockReservado,
		StockDisponible: disponible,
		StockMinimo:     sku.StockMinimo,
		BajoMinimo:      disponible < sku.StockMinimo,
		Activo:          sku.Activo,
	}
}
