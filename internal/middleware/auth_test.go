package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ventaslive/internal/identity"
	"ventaslive/internal/session"
)

func routerConSesiones(t *testing.T, rol string) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	sesiones := session.NewStore(rdb, "secreto-prueba", time.Hour)

	token, err := sesiones.Crear(context.Background(), &identity.Perfil{
		ID:     uuid.New(),
		Nombre: "Operadora",
		Email:  "op@example.com",
		Rol:    rol,
	})
	require.NoError(t, err)

	r := gin.New()
	r.GET("/protegido", SesionAuth(sesiones), RequireRole(identity.RolAdmin), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"rol": GetPerfil(c).Rol})
	})
	return r, token
}

func hacer(r *gin.Engine, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protegido", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestSinTokenEs401(t *testing.T) {
	r, _ := routerConSesiones(t, identity.RolAdmin)
	assert.Equal(t, http.StatusUnauthorized, hacer(r, "").Code)
}

func TestTokenValidoConRolPermitido(t *testing.T) {
	r, token := routerConSesiones(t, identity.RolAdmin)
	w := hacer(r, token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), identity.RolAdmin)
}

func TestRolNoPermitidoEs403(t *testing.T) {
	r, token := routerConSesiones(t, identity.RolVendedor)
	assert.Equal(t, http.StatusForbidden, hacer(r, token).Code)
}

func TestSuperAdminPasaCualquierPuerta(t *testing.T) {
	r, token := routerConSesiones(t, identity.RolSuperAdmin)
	assert.Equal(t, http.StatusOK, hacer(r, token).Code)
}

func TestTokenAjenoEs401(t *testing.T) {
	r, _ := routerConSesiones(t, identity.RolAdmin)
	assert.Equal(t, http.StatusUnauthorized, hacer(r, "token-falso").Code)
}
