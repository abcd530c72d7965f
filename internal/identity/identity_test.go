package identity

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStubResuelvePerfilFijo(t *testing.T) {
	p := NewStubProvider(10 * time.Millisecond)

	inicio := time.Now()
	perfil, err := p.Resolver(context.Background(), "cualquiera@x.com", "ignorada")
	require.NoError(t, err)

	assert.GreaterOrEqual(t, time.Since(inicio), 10*time.Millisecond)
	assert.Equal(t, RolSuperAdmin, perfil.Rol)
	assert.Nil(t, perfil.EmpresaID)

	// Las credenciales no influyen: siempre el mismo perfil.
	otro, err := p.Resolver(context.Background(), "otra@x.com", "distinta")
	require.NoError(t, err)
	assert.Equal(t, perfil.ID, otro.ID)
}

func TestStubRespetaCancelacion(t *testing.T) {
	p := NewStubProvider(time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := p.Resolver(ctx, "", "")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
