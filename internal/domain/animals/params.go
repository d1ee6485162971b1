package animals

import "strconv"

// Param es una fila título/valor de la ficha del animal.
type Param struct {
	Title string
	Value string
}

// Params arma la ficha del animal en orden fijo. Los valores ausentes quedan
// como string vacío, la fila se muestra igual.
func Params(a Animal) []Param {
	birth := ""
	if a.BirthDate != nil {
		birth = a.BirthDate.Format("2006-01-02")
	}

	return []Param{
		{Title: "ID", Value: strconv.FormatInt(a.ID, 10)},
		{Title: "Name", Value: a.Name},
		{Title: "Species", Value: string(a.Species)},
		{Title: "Breed", Value: a.Breed},
		{Title: "Sex", Value: string(a.Sex)},
		{Title: "Birth date", Value: birth},
		{Title: "Microchip", Value: a.Microchip},
		{Title: "Notes", Value: a.Notes},
	}
}
