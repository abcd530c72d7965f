package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ventaslive/internal/identity"
)

func nuevoStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewStore(rdb, "secreto-de-prueba", time.Hour), mr
}

func perfilDemo() *identity.Perfil {
	return &identity.Perfil{
		ID:     uuid.New(),
		Nombre: "Super Administrador",
		Email:  "admin@ventaslive.demo",
		Rol:    identity.RolSuperAdmin,
	}
}

func TestCicloDeVidaDeSesion(t *testing.T) {
	store, _ := nuevoStore(t)
	ctx := context.Background()

	perfil := perfilDemo()
	token, err := store.Crear(ctx, perfil)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	recuperado, err := store.Validar(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, perfil.ID, recuperado.ID)
	assert.Equal(t, identity.RolSuperAdmin, recuperado.Rol)

	// Logout revokes immediately, aunque el JWT siga vigente.
	require.NoError(t, store.Cerrar(ctx, token))
	_, err = store.Validar(ctx, token)
	assert.ErrorIs(t, err, ErrSesionInvalida)
}

func TestSesionExpiraPorTTL(t *testing.T) {
	store, mr := nuevoStore(t)
	ctx := context.Background()

	token, err := store.Crear(ctx, perfilDemo())
	require.NoError(t, err)

	mr.FastForward(2 * time.Hour)

	_, err = store.Validar(ctx, token)
	assert.ErrorIs(t, err, ErrSesionInvalida)
}

func TestTokenAjenoRechazado(t *testing.T) {
	store, _ := nuevoStore(t)

	_, err := store.Validar(context.Background(), "no-es-un-jwt")
	assert.ErrorIs(t, err, ErrSesionInvalida)

	otro, _ := nuevoStore(t)
	ajeno := NewStore(otro.rdb, "otro-secreto", time.Hour)
	token, err := ajeno.Crear(context.Background(), perfilDemo())
	require.NoError(t, err)

	_, err = store.Validar(context.Background(), token)
	assert.ErrorIs(t, err, ErrSesionInvalida)
}
