package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ventaslive/internal/apierror"
	"ventaslive/internal/dto"
	"ventaslive/internal/middleware"
	"ventaslive/internal/service"
)

type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(svc service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusUnauthorized, apierror.New("Credenciales inválidas"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	token := c.GetString(middleware.TokenKey)
	if err := h.svc.Logout(c.Request.Context(), token); err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("No se pudo cerrar la sesión"))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) Perfil(c *gin.Context) {
	perfil := middleware.GetPerfil(c)
	resp := dto.PerfilResponse{
		ID:     perfil.ID.String(),
		Nombre: perfil.Nombre,
		Email:  perfil.Email,
		Rol:    perfil.Rol,
	}
	if perfil.EmpresaID != nil {
		id := perfil.EmpresaID.String()
		resp.EmpresaID = &id
	}
	c.JSON(http.StatusOK, resp)
}
