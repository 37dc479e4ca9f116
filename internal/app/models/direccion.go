package models

// Direccion represents the address linked one-to-one to a persona
type Direccion struct {
	PersonaID         int64   `json:"persona_id,omitempty"`
	DireccionCompleta string  `json:"direccion_completa"`
	Estado            string  `json:"estado"`
	Municipio         string  `json:"municipio"`
	Seccion           string  `json:"seccion"`
	CodigoPostal      *string `json:"codigo_postal"`
}

// NewDireccion copies the address fields out of a field set. The optional
// postal code stays nil when absent.
func NewDireccion(direccionCompleta, estado, municipio, seccion string, codigoPostal *string) *Direccion {
	return &Direccion{
		DireccionCompleta: direccionCompleta,
		Estado:            estado,
		Municipio:         municipio,
		Seccion:           seccion,
		CodigoPostal:      codigoPostal,
	}
}
