package models

// CredencialIne represents the voter credential linked one-to-one to a persona
type CredencialIne struct {
	PersonaID        int64   `json:"persona_id,omitempty"`
	CURP             string  `json:"curp"`
	ClaveElector     string  `json:"clave_elector"`
	AnioEmision      int     `json:"anio_emision"`
	Vigencia         int     `json:"vigencia"`
	NumeroCredencial *string `json:"numero_credencial"`
}

// NewCredencialIne copies the credential fields out of a field set. The
// optional credential number stays nil when absent.
func NewCredencialIne(curp, claveElector string, anioEmision, vigencia int, numeroCredencial *string) *CredencialIne {
	return &CredencialIne{
		CURP:             curp,
		ClaveElector:     claveElector,
		AnioEmision:      anioEmision,
		Vigencia:         vigencia,
		NumeroCredencial: numeroCredencial,
	}
}

// Vigente reports whether the credential is current relative to the given
// calendar year. Derived, never stored.
func (c *CredencialIne) Vigente(currentYear int) bool {
	return c.Vigencia > currentYear
}
