package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"ventaslive/internal/apierror"
	"ventaslive/internal/identity"
	"ventaslive/internal/session"
)

const (
	PerfilKey = "perfil"
	TokenKey  = "token"
)

// SesionAuth validates the Bearer token against the session store. A token
// whose session was closed (logout) is rejected even if the JWT itself has
// not expired yet.
func SesionAuth(sesiones *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Autenticación requerida"))
			return
		}

		token := strings.TrimPrefix(header, "Bearer ")
		perfil, err := sesiones.Validar(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Sesión inválida o expirada"))
			return
		}

		c.Set(PerfilKey, perfil)
		c.Set(TokenKey, token)
		c.Next()
	}
}

// RequireRole rejects requests whose role is not in the allowed list.
// super_admin passes every gate.
func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *gin.Context) {
		perfil := GetPerfil(c)
		if perfil == nil || (!allowed[perfil.Rol] && perfil.Rol != identity.RolSuperAdmin) {
			c.AbortWithStatusJSON(http.StatusForbidden, apierror.New("Permisos insuficientes"))
			return
		}
		c.Next()
	}
}

// GetPerfil retrieves the authenticated operator from the Gin context.
func GetPerfil(c *gin.Context) *identity.Perfil {
	perfil, _ := c.MustGet(PerfilKey).(*identity.Perfil)
	return perfil
}
