package events

import "slices"

// Timeline mantiene la colección completa de eventos de un animal junto con
// el filtro y el orden activos, y recalcula la lista visible sólo cuando
// alguno de los tres cambia.
type Timeline struct {
	source []Event
	filter string
	sort   SortMode

	derived    []Event
	dirty      bool
	recomputes int
}

// NewTimeline arranca con el filtro centinela y orden descendente.
func NewTimeline(source []Event) *Timeline {
	return &Timeline{
		source: source,
		filter: FilterAll,
		sort:   SortDescending,
		dirty:  true,
	}
}

// SetEvents reemplaza la colección (p.ej. cuando llega data nueva del repo).
// Si trae los mismos eventos que la actual no invalida.
func (t *Timeline) SetEvents(evts []Event) {
	if slices.Equal(t.source, evts) {
		return
	}
	t.source = evts
	t.dirty = true
}

func (t *Timeline) SetFilter(category string) {
	if category == "" {
		category = FilterAll
	}
	if category == t.filter {
		return
	}
	t.filter = category
	t.dirty = true
}

func (t *Timeline) SetSort(mode SortMode) {
	if mode == "" {
		mode = SortDescending
	}
	if mode == t.sort {
		return
	}
	t.sort = mode
	t.dirty = true
}

func (t *Timeline) Filter() string { return t.filter }
func (t *Timeline) Sort() SortMode { return t.sort }

// Events devuelve la lista derivada. El slice es compartido entre llamadas
// mientras nada cambie; no modificarlo.
func (t *Timeline) Events() []Event {
	if t.dirty {
		t.derived = Derive(t.source, t.filter, t.sort)
		t.dirty = false
		t.recomputes++
	}
	return t.derived
}

// Recomputes cuenta cuántas veces se recalculó la lista derivada.
func (t *Timeline) Recomputes() int { return t.recomputes }
