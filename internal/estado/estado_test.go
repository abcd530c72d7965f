package estado

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTablaDeTransiciones(t *testing.T) {
	esperado := map[Estado][]Estado{
		PendienteContacto: {PendientePago, Cancelado},
		PendientePago:     {PagoConfirmado, Cancelado},
		PagoConfirmado:    {Empaquetado, Cancelado},
		Empaquetado:       {Enviado, Cancelado},
		Enviado:           {Entregado, Devuelto},
		Entregado:         {Devuelto},
		Cancelado:         {},
		Devuelto:          {},
	}

	require.Len(t, Todos(), 8)
	for e, dst := range esperado {
		assert.Equal(t, dst, Transiciones(e), "transiciones de %s", e)
	}
}

func TestTerminalesSinTransiciones(t *testing.T) {
	assert.Empty(t, Transiciones(Cancelado))
	assert.Empty(t, Transiciones(Devuelto))
	assert.True(t, EsTerminal(Cancelado))
	assert.True(t, EsTerminal(Devuelto))
	assert.False(t, EsTerminal(Enviado))
}

func TestEstadoDesconocido(t *testing.T) {
	assert.Empty(t, Transiciones(Estado("reembolsado")))
	assert.False(t, Valido(Estado("reembolsado")))
	assert.False(t, EsTerminal(Estado("reembolsado")))

	_, ok := Siguiente(Estado("reembolsado"))
	assert.False(t, ok)
}

func TestSiguienteEsProyeccionDeLaTabla(t *testing.T) {
	for _, e := range Todos() {
		sig, ok := Siguiente(e)
		if EsTerminal(e) {
			assert.False(t, ok, "estado terminal %s no debe tener siguiente", e)
			continue
		}
		require.True(t, ok, "estado %s debe tener siguiente", e)
		assert.Equal(t, Transiciones(e)[0], sig)
		assert.Contains(t, Transiciones(e), sig)
	}
}

func TestEtiquetasYColores(t *testing.T) {
	assert.Equal(t, "Pendiente de pago", Etiqueta(PendientePago))
	assert.Equal(t, "red", Color(Cancelado))
	// Unknown states degrade to the raw value and a neutral color.
	assert.Equal(t, "algo_raro", Etiqueta(Estado("algo_raro")))
	assert.Equal(t, "gray", Color(Estado("algo_raro")))
}
