package eventform

type ActionKind string

const (
	ActionChange ActionKind = "change"
	ActionBlur   ActionKind = "blur"
	ActionSubmit ActionKind = "submit"
	ActionCancel ActionKind = "cancel"
	ActionReset  ActionKind = "reset"
)

// Action es un evento de interfaz sobre el diálogo.
type Action struct {
	Kind  ActionKind
	Field Field
	Value string
}

// Machine fija las opciones y el animal, y aplica acciones sobre un borrador.
type Machine struct {
	Options  Options
	AnimalID int64
}

// Apply despacha la acción a la operación que corresponde.
// Acciones desconocidas devuelven el borrador sin cambios y OutcomeNone.
func (m Machine) Apply(d Draft, a Action) (Draft, Result) {
	switch a.Kind {
	case ActionChange:
		return Change(d, a.Field, a.Value), Result{Outcome: OutcomeNone}
	case ActionBlur:
		return Blur(d, a.Field), Result{Outcome: OutcomeNone}
	case ActionSubmit:
		return Submit(d, m.Options, m.AnimalID)
	case ActionCancel:
		return Cancel(d)
	case ActionReset:
		return Reset(), Result{Outcome: OutcomeNone}
	default:
		return d, Result{Outcome: OutcomeNone}
	}
}
