// Package eventform modela el diálogo "Create new event" como una máquina de
// estados pura: cada operación recibe el borrador actual y devuelve el nuevo,
// sin efectos laterales. Quien la usa decide qué hacer con el Result
// (persistir el evento, cerrar el diálogo, mostrar errores).
package eventform

import (
	"errors"
	"strings"

	"animal-registry/internal/domain/events"
)

// MessageIncomplete es el único error que puede producir el formulario.
const MessageIncomplete = "Please fill in all the fields"

var ErrUnknownField = errors.New("unknown field")

type Field string

const (
	FieldType     Field = "type"
	FieldCategory Field = "category"
	FieldExpenses Field = "expenses"
	FieldComments Field = "comments"
	FieldDate     Field = "date"
)

// Fields en el orden en que aparecen en el formulario.
var Fields = []Field{FieldType, FieldCategory, FieldExpenses, FieldComments, FieldDate}

func ParseField(s string) (Field, error) {
	f := Field(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Fields {
		if f == known {
			return f, nil
		}
	}
	return "", ErrUnknownField
}

// Options son las enumeraciones que configuran el formulario.
type Options struct {
	TypeOptions     []string
	CategoryOptions []string
}

func OptionsFromCatalog(c events.Catalog) Options {
	return Options{
		TypeOptions:     c.Types,
		CategoryOptions: c.Categories,
	}
}

type FieldState struct {
	Value   string `json:"value"`
	Invalid bool   `json:"invalid"`
}

// Draft es el estado del diálogo mientras está abierto.
type Draft struct {
	Type     FieldState `json:"type"`
	Category FieldState `json:"category"`
	Expenses FieldState `json:"expenses"`
	Comments FieldState `json:"comments"`
	Date     FieldState `json:"date"`

	Error   bool   `json:"error"`
	Message string `json:"message,omitempty"`
}

type Outcome string

const (
	OutcomeNone             Outcome = "none"
	OutcomeCreated          Outcome = "created"
	OutcomeCancelled        Outcome = "cancelled"
	OutcomeValidationFailed Outcome = "validation_failed"
)

// Result es lo que el diálogo reporta hacia afuera.
// Event sólo tiene sentido con OutcomeCreated y Missing con OutcomeValidationFailed.
type Result struct {
	Outcome Outcome
	Event   events.Event
	Missing []Field
}

// New devuelve un borrador vacío.
func New() Draft {
	return Draft{}
}

// Reset limpia los cinco valores, sus flags y el error general.
func Reset() Draft {
	return Draft{}
}

// Get devuelve el estado de un campo. Campos desconocidos devuelven el cero.
func (d Draft) Get(f Field) FieldState {
	if p := d.field(f); p != nil {
		return *p
	}
	return FieldState{}
}

// Missing lista los campos vacíos, en orden de formulario.
func (d Draft) Missing() []Field {
	var out []Field
	for _, f := range Fields {
		if d.Get(f).Value == "" {
			out = append(out, f)
		}
	}
	return out
}

// Change guarda el valor y limpia el flag del campo siempre, aunque el valor
// nuevo siga vacío. La revalidación queda para el próximo blur o submit.
func Change(d Draft, f Field, value string) Draft {
	p := d.field(f)
	if p == nil {
		return d
	}
	p.Value = value
	p.Invalid = false
	return d
}

// Blur marca el campo como inválido si está vacío. Nunca limpia el flag.
// La fecha no tiene validación al salir del campo.
func Blur(d Draft, f Field) Draft {
	if f == FieldDate {
		return d
	}
	p := d.field(f)
	if p == nil {
		return d
	}
	if p.Value == "" {
		p.Invalid = true
	}
	return d
}

// Submit valida que no falte ningún campo. Si falta alguno, marca todos los
// vacíos y deja el mensaje general; si no, arma el evento y resetea.
func Submit(d Draft, opts Options, animalID int64) (Draft, Result) {
	missing := d.Missing()
	if len(missing) > 0 {
		for _, f := range missing {
			d.field(f).Invalid = true
		}
		d.Error = true
		d.Message = MessageIncomplete
		return d, Result{Outcome: OutcomeValidationFailed, Missing: missing}
	}

	e := events.Event{
		Animal: animalID,
		Type: events.Type{
			Index: indexOf(opts.TypeOptions, d.Type.Value),
			Label: d.Type.Value,
		},
		Category: d.Category.Value,
		Expenses: ParseAmount(d.Expenses.Value),
		Comments: d.Comments.Value,
		DateTime: ParseDate(d.Date.Value),
	}
	return Reset(), Result{Outcome: OutcomeCreated, Event: e}
}

// Cancel resetea sin importar el estado y avisa que el diálogo se cierra.
func Cancel(Draft) (Draft, Result) {
	return Reset(), Result{Outcome: OutcomeCancelled}
}

func (d *Draft) field(f Field) *FieldState {
	switch f {
	case FieldType:
		return &d.Type
	case FieldCategory:
		return &d.Category
	case FieldExpenses:
		return &d.Expenses
	case FieldComments:
		return &d.Comments
	case FieldDate:
		return &d.Date
	default:
		return nil
	}
}

func indexOf(options []string, v string) int {
	for i, o := range options {
		if o == v {
			return i
		}
	}
	return -1
}
