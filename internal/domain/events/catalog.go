package events

import "strings"

// Catalog agrupa las enumeraciones que definen qué tipos y categorías de
// evento acepta el registro. Las provee quien configura el servicio.
type Catalog struct {
	Types      []string
	Categories []string
}

var defaultTypes = []string{
	"Ženklinimas ir įregistravimas",
	"Laikytojo pasikeitimas",
	"Laikymo vietos pasikeitimas",
	"Savininko pasikeitimas",
	"Dingimas",
	"Suradimas",
	"Nugaišimas",
	"Nugaišinimas",
	"Išvežimas",
	"Vakcinavimas",
	"Augintinio agresyvumas",
}

var defaultCategories = []string{
	"REGISTRATION",
	"OWNERSHIP",
	"LOCATION",
	"STATUS",
	"HEALTH",
	"BEHAVIOUR",
}

// DefaultCatalog devuelve copias, así nadie modifica las listas base.
func DefaultCatalog() Catalog {
	return Catalog{
		Types:      append([]string(nil), defaultTypes...),
		Categories: append([]string(nil), defaultCategories...),
	}
}

// WithOverrides reemplaza las listas que vengan no vacías (p.ej. desde env).
func (c Catalog) WithOverrides(types, categories []string) Catalog {
	if t := cleanList(types); len(t) > 0 {
		c.Types = t
	}
	if cs := cleanList(categories); len(cs) > 0 {
		c.Categories = cs
	}
	return c
}

// TypeIndex es la posición de label en Types, o -1.
func (c Catalog) TypeIndex(label string) int {
	for i, t := range c.Types {
		if t == label {
			return i
		}
	}
	return -1
}

func (c Catalog) HasType(label string) bool {
	return c.TypeIndex(label) >= 0
}

func (c Catalog) HasCategory(category string) bool {
	for _, cat := range c.Categories {
		if cat == category {
			return true
		}
	}
	return false
}

func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, v := range in {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
