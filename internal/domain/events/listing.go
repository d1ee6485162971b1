package events

import (
	"sort"
	"strings"
)

// FilterAll es el filtro centinela: muestra todas las categorías.
const FilterAll = "ALL"

type SortMode string

const (
	SortDescending SortMode = "desc"
	SortAscending  SortMode = "asc"
)

// ParseSortMode acepta "asc"/"ascending" y "desc"/"descending".
// Vacío equivale a descendente (lo más reciente primero).
func ParseSortMode(s string) (SortMode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "desc", "descending":
		return SortDescending, true
	case "asc", "ascending":
		return SortAscending, true
	default:
		return "", false
	}
}

// FilterByCategory conserva el orden relativo y nunca modifica evts.
func FilterByCategory(evts []Event, category string) []Event {
	out := make([]Event, 0, len(evts))
	for _, e := range evts {
		if category == "" || category == FilterAll || e.Category == category {
			out = append(out, e)
		}
	}
	return out
}

// CompareByDate ordena por DateTime. Si alguna fecha es inválida devuelve 0
// (empate) en lugar de fallar.
func CompareByDate(mode SortMode) func(a, b Event) int {
	return func(a, b Event) int {
		d1, ok1 := a.DateTime.Millis()
		d2, ok2 := b.DateTime.Millis()
		if !ok1 || !ok2 {
			return 0
		}
		if mode == SortAscending {
			return cmpInt64(d1, d2)
		}
		return cmpInt64(d2, d1)
	}
}

// SortByDate ordena in-place y estable.
func SortByDate(evts []Event, mode SortMode) {
	cmp := CompareByDate(mode)
	sort.SliceStable(evts, func(i, j int) bool {
		return cmp(evts[i], evts[j]) < 0
	})
}

// Derive arma la lista visible: filtro y después orden. Devuelve un slice nuevo.
func Derive(evts []Event, category string, mode SortMode) []Event {
	out := FilterByCategory(evts, category)
	SortByDate(out, mode)
	return out
}

func cmpInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
