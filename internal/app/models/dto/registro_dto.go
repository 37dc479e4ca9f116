package dto

import "time"

// RegistrarPersonaRequest is the typed payload for creating a full registro
// (persona + direccion + credencial). Required and optional fields are
// enumerated explicitly instead of accepting a free-form field bag.
type RegistrarPersonaRequest struct {
	Nombre          string  `json:"nombre" binding:"required" validate:"required"`
	ApellidoPaterno string  `json:"apellido_paterno" binding:"required" validate:"required"`
	ApellidoMaterno string  `json:"apellido_materno" binding:"required" validate:"required"`
	Sexo            string  `json:"sexo" binding:"required" validate:"required,len=1"`
	FechaNacimiento *string `json:"fecha_nacimiento" validate:"omitempty"`

	DireccionCompleta string  `json:"direccion_completa" binding:"required" validate:"required"`
	Estado            string  `json:"estado" binding:"required" validate:"required"`
	Municipio         string  `json:"municipio" binding:"required" validate:"required"`
	Seccion           string  `json:"seccion" binding:"required" validate:"required"`
	CodigoPostal      *string `json:"codigo_postal" validate:"omitempty"`

	CURP             string  `json:"curp" binding:"required" validate:"required,len=18"`
	ClaveElector     string  `json:"clave_elector" binding:"required" validate:"required"`
	AnioEmision      int     `json:"anio_emision" binding:"required" validate:"required,gt=0"`
	Vigencia         int     `json:"vigencia" binding:"required" validate:"required,gt=0"`
	NumeroCredencial *string `json:"numero_credencial" validate:"omitempty"`
}

// Metadata carries response bookkeeping fields
type Metadata struct {
	Timestamp time.Time `json:"timestamp"`
}

// InformacionPersonal groups the derived personal fields of an aggregate
type InformacionPersonal struct {
	NombreCompleto  string  `json:"nombreCompleto"`
	Sexo            string  `json:"sexo"`
	FechaNacimiento *string `json:"fechaNacimiento"`
}

// DireccionInfo groups the address fields of an aggregate
type DireccionInfo struct {
	Completa     string  `json:"completa"`
	Estado       string  `json:"estado"`
	Municipio    string  `json:"municipio"`
	Seccion      string  `json:"seccion"`
	CodigoPostal *string `json:"codigoPostal"`
}

// CredencialInfo groups the credential fields of an aggregate. Vigente is
// derived at query time from vigencia and the current calendar year.
type CredencialInfo struct {
	CURP             string  `json:"curp"`
	ClaveElector     string  `json:"claveElector"`
	Vigencia         int     `json:"vigencia"`
	NumeroCredencial *string `json:"numeroCredencial"`
	AnioEmision      int     `json:"anioEmision"`
	Vigente          bool    `json:"vigente"`
}

// RegistroResponse is the denormalized aggregate returned by the list endpoint
type RegistroResponse struct {
	ID                  int64               `json:"id"`
	InformacionPersonal InformacionPersonal `json:"informacionPersonal"`
	Direccion           DireccionInfo       `json:"direccion"`
	Credencial          CredencialInfo      `json:"credencial"`
}

// BusquedaCurpResponse is the single-row result of a CURP lookup: the flat
// joined columns plus the computed fields.
type BusquedaCurpResponse struct {
	Nombre            string  `json:"nombre"`
	ApellidoPaterno   string  `json:"apellido_paterno"`
	ApellidoMaterno   string  `json:"apellido_materno"`
	Sexo              string  `json:"sexo"`
	FechaNacimiento   *string `json:"fecha_nacimiento"`
	DireccionCompleta string  `json:"direccion_completa"`
	Estado            string  `json:"estado"`
	Municipio         string  `json:"municipio"`
	Seccion           string  `json:"seccion"`
	CodigoPostal      *string `json:"codigo_postal"`
	CURP              string  `json:"curp"`
	ClaveElector      string  `json:"clave_elector"`
	AnioEmision       int     `json:"anio_emision"`
	Vigencia          int     `json:"vigencia"`
	NumeroCredencial  *string `json:"numero_credencial"`

	NombreCompleto    string `json:"nombreCompleto"`
	SexoDescripcion   string `json:"sexoDescripcion"`
	CredencialVigente bool   `json:"credencialVigente"`
}

// EliminacionCurpResponse reports a delete-by-CURP outcome
type EliminacionCurpResponse struct {
	FilasEliminadas int64  `json:"filasEliminadas"`
	Mensaje         string `json:"mensaje"`
	CurpEliminada   string `json:"curpEliminada"`
}

// EliminacionIDResponse reports a delete-by-id outcome
type EliminacionIDResponse struct {
	FilasEliminadas int64     `json:"filasEliminadas"`
	Mensaje         string    `json:"mensaje"`
	IDEliminado     int64     `json:"idEliminado"`
	Timestamp       time.Time `json:"timestamp"`
}
