package busqueda

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// contadorBusquedas records every search that actually fires.
type contadorBusquedas struct {
	mu      sync.Mutex
	textos  []string
	retorno []Resultado
}

func (c *contadorBusquedas) buscar(_ context.Context, texto string) ([]Resultado, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.textos = append(c.textos, texto)
	return c.retorno, nil
}

func (c *contadorBusquedas) llamadas() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.textos))
	copy(out, c.textos)
	return out
}

func TestDebouncerSoloUltimaLlamada(t *testing.T) {
	cont := &contadorBusquedas{}
	sel := NewSelector(30*time.Millisecond, cont.buscar)

	hecho := make(chan struct{}, 1)
	sel.AlCompletar(func() { hecho <- struct{}{} })

	// Five keystrokes inside the debounce window — only the last one fires.
	for _, texto := range []string{"m", "ma", "mar", "mari", "maria"} {
		sel.Teclear(context.Background(), texto)
		time.Sleep(2 * time.Millisecond)
	}

	select {
	case <-hecho:
	case <-time.After(time.Second):
		t.Fatal("la búsqueda nunca se ejecutó")
	}

	require.Equal(t, []string{"maria"}, cont.llamadas())
}

func TestTextoVacioCancelaPendiente(t *testing.T) {
	cont := &contadorBusquedas{}
	sel := NewSelector(20*time.Millisecond, cont.buscar)

	sel.Teclear(context.Background(), "algo")
	sel.Teclear(context.Background(), "")

	time.Sleep(80 * time.Millisecond)
	assert.Empty(t, cont.llamadas())

	res, err := sel.Resultados()
	require.NoError(t, err)
	assert.Empty(t, res)
}

func TestSeleccionarYLimpiar(t *testing.T) {
	id := uuid.New()
	cont := &contadorBusquedas{retorno: []Resultado{
		{ID: id, Etiqueta: "@maria.comprass", Plataforma: "instagram"},
	}}
	sel := NewSelector(5*time.Millisecond, cont.buscar)

	hecho := make(chan struct{}, 1)
	sel.AlCompletar(func() { hecho <- struct{}{} })
	sel.Teclear(context.Background(), "maria")
	<-hecho

	_, ok := sel.Seleccionar(uuid.New())
	assert.False(t, ok, "un id fuera del dropdown no se puede seleccionar")

	r, ok := sel.Seleccionar(id)
	require.True(t, ok)
	assert.Equal(t, "@maria.comprass", r.Etiqueta)

	_, ok = sel.Seleccion()
	assert.True(t, ok)

	sel.Limpiar()
	_, ok = sel.Seleccion()
	assert.False(t, ok)
	res, _ := sel.Resultados()
	assert.Empty(t, res)
}

func TestOfreceCrear(t *testing.T) {
	resultados := []Resultado{
		{Etiqueta: "@maria.comprass", Plataforma: "instagram"},
	}

	// Zero results + non-empty text: offer to create.
	assert.True(t, OfreceCrear(nil, "@nueva", "instagram"))

	// Exact case-insensitive match on handle AND platform suppresses it.
	assert.False(t, OfreceCrear(resultados, "@MARIA.comprass", "Instagram"))

	// Same handle on another platform is a different customer.
	assert.True(t, OfreceCrear(resultados, "@maria.comprass", "tiktok"))

	// Empty search text never offers creation.
	assert.False(t, OfreceCrear(nil, "   ", "instagram"))
}
