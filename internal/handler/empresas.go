package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ventaslive/internal/dto"
	"ventaslive/internal/service"
)

type EmpresasHandler struct {
	svc      service.EmpresaService
	usuarios service.UsuarioService
}

func NewEmpresasHandler(svc service.EmpresaService, usuarios service.UsuarioService) *EmpresasHandler {
	return &EmpresasHandler{svc: svc, usuarios: usuarios}
}

func (h *EmpresasHandler) Listar(c *gin.Context) {
	empresas, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": empresas, "total": len(empresas)})
}

func (h *EmpresasHandler) Crear(c *gin.Context) {
	var req dto.CrearEmpresaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *EmpresasHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.ActualizarEmpresaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CambiarActivo toggles the tenant without deleting anything; a deactivated
// company keeps its data and can be reactivated later.
func (h *EmpresasHandler) CambiarActivo(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.CambiarActivoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.CambiarActivo(c.Request.Context(), id, *req.Activo); err != nil {
		responderError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *EmpresasHandler) ListarUsuarios(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	usuarios, err := h.usuarios.ListarPorEmpresa(c.Request.Context(), id)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": usuarios, "total": len(usuarios)})
}
