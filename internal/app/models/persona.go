package models

// Persona represents the identity attributes of a registered person
type Persona struct {
	ID              int64   `json:"id,omitempty"`
	Nombre          string  `json:"nombre"`
	ApellidoPaterno string  `json:"apellido_paterno"`
	ApellidoMaterno string  `json:"apellido_materno"`
	Sexo            string  `json:"sexo"`
	FechaNacimiento *string `json:"fecha_nacimiento"`
}

// NewPersona copies the persona fields out of a field set. The optional
// birth date stays nil when absent.
func NewPersona(nombre, apellidoPaterno, apellidoMaterno, sexo string, fechaNacimiento *string) *Persona {
	return &Persona{
		Nombre:          nombre,
		ApellidoPaterno: apellidoPaterno,
		ApellidoMaterno: apellidoMaterno,
		Sexo:            sexo,
		FechaNacimiento: fechaNacimiento,
	}
}

// NombreCompleto returns the three name fields joined with single spaces
func (p *Persona) NombreCompleto() string {
	return p.Nombre + " " + p.ApellidoPaterno + " " + p.ApellidoMaterno
}
