package eventform

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"animal-registry/internal/domain/events"
)

var amountPrefix = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// ParseAmount toma el prefijo numérico del texto ("12.5 EUR" -> 12.5).
// Sin prefijo numérico devuelve 0: el formulario acepta cualquier texto no vacío.
func ParseAmount(s string) float64 {
	m := amountPrefix.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0
	}
	return v
}

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseDate convierte la fecha del formulario a milisegundos epoch.
// Las formas sin zona se leen en UTC. Si no parsea, el Timestamp queda inválido.
func ParseDate(s string) events.Timestamp {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return events.TimestampFromTime(t)
		}
	}
	return events.Timestamp{}
}
