package models

// Sexo codes as stored in the personas table
const (
	SexoHombre = "H"
	SexoMujer  = "M"
)

// SexoDescripcion maps a stored sex code to its display form.
// "H" is Hombre, anything else is reported as Mujer.
func SexoDescripcion(sexo string) string {
	if sexo == SexoHombre {
		return "Hombre"
	}
	return "Mujer"
}
