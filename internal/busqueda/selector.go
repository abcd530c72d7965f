// Package busqueda implements the search-and-select contract shared by the
// customer and product pickers: keystrokes are debounced (trailing edge, one
// pending timer), results are a disposable list, and selecting commits an
// identifier into the caller's form. Requests already in flight are not
// aborted when a new search starts.
package busqueda

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Resultado is one row of a search dropdown.
type Resultado struct {
	ID         uuid.UUID
	Etiqueta   string
	Plataforma string
}

// BuscarFunc issues the actual search against the backend.
type BuscarFunc func(ctx context.Context, texto string) ([]Resultado, error)

// Selector owns one picker's lifecycle: Teclear on every keystroke,
// Seleccionar/Limpiar to commit or revert. It is safe for concurrent use.
type Selector struct {
	deb    *Debouncer
	buscar BuscarFunc

	mu         sync.Mutex
	texto      string
	resultados []Resultado
	seleccion  *Resultado
	err        error
	listo      func() // notified after each completed search, for the terminal UI
}

func NewSelector(demora time.Duration, buscar BuscarFunc) *Selector {
	return &Selector{deb: NewDebouncer(demora), buscar: buscar}
}

// AlCompletar registers a callback invoked after each search completes.
func (s *Selector) AlCompletar(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listo = fn
}

// Teclear records a keystroke. The search only fires after the debounce
// window closes without further keystrokes, and always uses the latest text.
// An empty text cancels the pending search and clears the dropdown.
func (s *Selector) Teclear(ctx context.Context, texto string) {
	s.mu.Lock()
	s.texto = texto
	s.mu.Unlock()

	if strings.TrimSpace(texto) == "" {
		s.deb.Cancelar()
		s.mu.Lock()
		s.resultados = nil
		s.err = nil
		s.mu.Unlock()
		return
	}

	s.deb.Programar(func() {
		s.mu.Lock()
		vigente := s.texto
		listo := s.listo
		s.mu.Unlock()

		res, err := s.buscar(ctx, vigente)

		s.mu.Lock()
		s.resultados = res
		s.err = err
		s.mu.Unlock()
		if listo != nil {
			listo()
		}
	})
}

// Resultados returns the current dropdown rows and the last search error.
func (s *Selector) Resultados() ([]Resultado, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Resultado, len(s.resultados))
	copy(out, s.resultados)
	return out, s.err
}

// Seleccionar commits the result with the given id. Returns false when the id
// is not in the current dropdown.
func (s *Selector) Seleccionar(id uuid.UUID) (Resultado, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.resultados {
		if r.ID == id {
			sel := r
			s.seleccion = &sel
			return sel, true
		}
	}
	return Resultado{}, false
}

// Seleccion returns the committed result, if any.
func (s *Selector) Seleccion() (Resultado, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.seleccion == nil {
		return Resultado{}, false
	}
	return *s.seleccion, true
}

// Limpiar reverts the picker to its empty state and drops any pending search.
func (s *Selector) Limpiar() {
	s.deb.Cancelar()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.texto = ""
	s.resultados = nil
	s.seleccion = nil
	s.err = nil
}

// OfreceCrear decides whether the "crear cliente nuevo" affordance is shown:
// the search text must be non-empty and no result may match (handle,
// plataforma) case-insensitively. Creation itself always requires an explicit
// platform, since the handle alone does not disambiguate.
func OfreceCrear(resultados []Resultado, texto, plataforma string) bool {
	if strings.TrimSpace(texto) == "" {
		return false
	}
	for _, r := range resultados {
		if strings.EqualFold(r.Etiqueta, texto) && strings.EqualFold(r.Plataforma, plataforma) {
			return false
		}
	}
	return true
}
