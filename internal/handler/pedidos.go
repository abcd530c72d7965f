package handler

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"ventaslive/internal/apierror"
	"ventaslive/internal/dto"
	"ventaslive/internal/service"
)

type PedidosHandler struct{ svc service.PedidoService }

func NewPedidosHandler(svc service.PedidoService) *PedidosHandler {
	return &PedidosHandler{svc: svc}
}

func (h *PedidosHandler) Listar(c *gin.Context) {
	var filter dto.PedidoFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.Listar(c.Request.Context(), filter)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PedidosHandler) Obtener(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PedidosHandler) Estadisticas(c *gin.Context) {
	resp, err := h.svc.Estadisticas(c.Request.Context())
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PedidosHandler) CrearVentaEnVivo(c *gin.Context) {
	var req dto.CrearVentaEnVivoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CrearVentaEnVivo(c.Request.Context(), req)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *PedidosHandler) ActualizarEstado(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.ActualizarEstadoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.ActualizarEstado(c.Request.Context(), id, req)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Avanzar moves the order to its canonical next state in one click.
func (h *PedidosHandler) Avanzar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.Avanzar(c.Request.Context(), id)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ReciboHTML serves the printable receipt page; the page triggers the
// browser's print dialog on load.
func (h *PedidosHandler) ReciboHTML(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	html, err := h.svc.ReciboHTML(c.Request.Context(), id)
	if err != nil {
		responderError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", html)
}

func (h *PedidosHandler) ReciboPDF(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	ruta, err := h.svc.ReciboPDF(c.Request.Context(), id)
	if err != nil {
		responderError(c, err)
		return
	}
	defer os.Remove(ruta)
	c.Header("Content-Disposition", `attachment; filename="recibo.pdf"`)
	c.File(ruta)
}

// EnviarRecibo queues the receipt email; delivery happens asynchronously in
// the worker pool.
func (h *PedidosHandler) EnviarRecibo(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.EnviarReciboRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.EnviarRecibo(c.Request.Context(), id, req.Email); err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"detail": "Recibo encolado para envío"})
}
