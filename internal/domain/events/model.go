package events

// Type es el tipo de evento elegido: la etiqueta y su posición en la lista
// de tipos permitidos (-1 si la etiqueta no está en la lista).
type Type struct {
	Index int
	Label string
}

// Event es un hecho registrado en la historia de un animal
// (registro, cambio de dueño, vacunación, etc.).
type Event struct {
	// ID lo asigna el repositorio al persistir; un evento recién armado tiene 0.
	ID     int64
	Animal int64

	Type     Type
	Category string

	Expenses float64
	Comments string

	DateTime Timestamp
}
