// Package estado describes the order status workflow as presented by the
// dashboard. The table below only drives which transitions are offered to the
// operator; the backend has final authority over every state change and this
// layer never mutates an order locally.
package estado

// Estado is one of the closed set of order states.
type Estado string

const (
	PendienteContacto Estado = "pendiente_contacto"
	PendientePago     Estado = "pendiente_pago"
	PagoConfirmado    Estado = "pago_confirmado"
	Empaquetado       Estado = "empaquetado"
	Enviado           Estado = "enviado"
	Entregado         Estado = "entregado"
	Cancelado         Estado = "cancelado"
	Devuelto          Estado = "devuelto"
)

// transiciones is the authoritative offered-transitions table. The "next
// state" shortcut below is derived from it (first listed destination) and is
// never maintained separately.
var transiciones = map[Estado][]Estado{
	PendienteContacto: {PendientePago, Cancelado},
	PendientePago:     {PagoConfirmado, Cancelado},
	PagoConfirmado:    {Empaquetado, Cancelado},
	Empaquetado:       {Enviado, Cancelado},
	Enviado:           {Entregado, Devuelto},
	Entregado:         {Devuelto},
	Cancelado:         {},
	Devuelto:          {},
}

type info struct {
	etiqueta string
	color    string
}

var etiquetas = map[Estado]info{
	PendienteContacto: {"Pendiente de contacto", "amber"},
	PendientePago:     {"Pendiente de pago", "orange"},
	PagoConfirmado:    {"Pago confirmado", "emerald"},
	Empaquetado:       {"Empaquetado", "blue"},
	Enviado:           {"Enviado", "indigo"},
	Entregado:         {"Entregado", "green"},
	Cancelado:         {"Cancelado", "red"},
	Devuelto:          {"Devuelto", "gray"},
}

// Todos lists every known state in workflow order.
func Todos() []Estado {
	return []Estado{
		PendienteContacto, PendientePago, PagoConfirmado, Empaquetado,
		Enviado, Entregado, Cancelado, Devuelto,
	}
}

// Valido reports whether e belongs to the closed set.
func Valido(e Estado) bool {
	_, ok := transiciones[e]
	return ok
}

// Transiciones returns the states offered from e. Unknown states yield an
// empty slice, as do the terminal states.
func Transiciones(e Estado) []Estado {
	dst, ok := transiciones[e]
	if !ok {
		return []Estado{}
	}
	out := make([]Estado, len(dst))
	copy(out, dst)
	return out
}

// Siguiente returns the canonical one-click advancement for e: the first
// listed destination of the full table. ok is false for terminal or unknown
// states.
func Siguiente(e Estado) (Estado, bool) {
	dst := transiciones[e]
	if len(dst) == 0 {
		return "", false
	}
	return dst[0], true
}

// EsTerminal reports whether e offers no further transitions.
func EsTerminal(e Estado) bool {
	return Valido(e) && len(transiciones[e]) == 0
}

// Etiqueta returns the display label for e, or the raw value when unknown.
func Etiqueta(e Estado) string {
	if i, ok := etiquetas[e]; ok {
		return i.etiqueta
	}
	return string(e)
}

// Color returns the display color token for e.
func Color(e Estado) string {
	if i, ok := etiquetas[e]; ok {
		return i.color
	}
	return "gray"
}
