package services

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/inemx/registro-ine/internal/app/models"
	"github.com/inemx/registro-ine/internal/app/models/dto"
	"github.com/inemx/registro-ine/internal/app/repositories"
	"github.com/inemx/registro-ine/internal/pkg/apperrors"
	"github.com/inemx/registro-ine/internal/pkg/helpers"
	"github.com/inemx/registro-ine/internal/pkg/validation"
)

// PersonaStore is the persistence surface the service depends on
type PersonaStore interface {
	CreateRegistro(ctx context.Context, persona *models.Persona, direccion *models.Direccion, credencial *models.CredencialIne) (int64, error)
	GetAll(ctx context.Context) ([]repositories.RegistroRow, error)
	GetByCURP(ctx context.Context, curp string) (*repositories.RegistroRow, error)
	DeleteByCURP(ctx context.Context, curp string) (int64, error)
	DeleteByID(ctx context.Context, id int64) (int64, error)
}

// RegistroCreado is the outcome of a successful create operation
type RegistroCreado struct {
	ID         int64                 `json:"id"`
	Persona    *models.Persona       `json:"persona"`
	Direccion  *models.Direccion     `json:"direccion"`
	Credencial *models.CredencialIne `json:"credencial"`
	Metadata   dto.Metadata          `json:"metadata"`
}

// PersonaService orchestrates multi-table reads and atomic writes over
// personas, direcciones and credenciales_ine.
type PersonaService interface {
	CrearPersona(ctx context.Context, req *dto.RegistrarPersonaRequest) (*RegistroCreado, error)
	ObtenerTodosLosRegistros(ctx context.Context) ([]dto.RegistroResponse, error)
	BuscarPorCurp(ctx context.Context, curp string) (*dto.BusquedaCurpResponse, error)
	EliminarPorCurp(ctx context.Context, curp string) (*dto.EliminacionCurpResponse, error)
	EliminarPorID(ctx context.Context, id int64) (*dto.EliminacionIDResponse, error)
}

type personaService struct {
	store  PersonaStore
	logger zerolog.Logger
}

// NewPersonaService creates a new persona service instance
func NewPersonaService(store PersonaStore, logger zerolog.Logger) PersonaService {
	return &personaService{
		store:  store,
		logger: logger,
	}
}

// CrearPersona validates the request, builds the three records and persists
// them as one transaction. Validation failures never reach the database.
func (s *personaService) CrearPersona(ctx context.Context, req *dto.RegistrarPersonaRequest) (*RegistroCreado, error) {
	if req == nil {
		return nil, apperrors.NewInvalidInputError("datos de persona no válidos")
	}

	if err := validation.ValidateStruct(req); err != nil {
		return nil, &apperrors.CustomError{
			Err:     apperrors.ErrInvalidInput,
			Message: "error en modelos: " + err.Error(),
		}
	}

	if !validation.IsValidCURP(req.CURP) {
		return nil, &apperrors.CustomError{
			Err:     apperrors.ErrInvalidCURP,
			Message: "formato de CURP inválido",
		}
	}

	persona := models.NewPersona(req.Nombre, req.ApellidoPaterno, req.ApellidoMaterno, req.Sexo, req.FechaNacimiento)
	direccion := models.NewDireccion(req.DireccionCompleta, req.Estado, req.Municipio, req.Seccion, req.CodigoPostal)
	credencial := models.NewCredencialIne(req.CURP, req.ClaveElector, req.AnioEmision, req.Vigencia, req.NumeroCredencial)

	personaID, err := s.store.CreateRegistro(ctx, persona, direccion, credencial)
	if err != nil {
		s.logger.Error().Err(err).Str("curp", req.CURP).Msg("Transaction failed while creating registro")
		return nil, apperrors.NewPersistenceError(err, "error al registrar persona")
	}

	persona.ID = personaID
	direccion.PersonaID = personaID
	credencial.PersonaID = personaID

	return &RegistroCreado{
		ID:         personaID,
		Persona:    persona,
		Direccion:  direccion,
		Credencial: credencial,
		Metadata:   dto.Metadata{Timestamp: time.Now()},
	}, nil
}

// ObtenerTodosLosRegistros returns every registro as a nested aggregate,
// most recently inserted first.
func (s *personaService) ObtenerTodosLosRegistros(ctx context.Context) ([]dto.RegistroResponse, error) {
	rows, err := s.store.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to retrieve registros")
		return nil, apperrors.NewPersistenceError(err, "error al recuperar los datos de personas")
	}

	currentYear := time.Now().Year()
	registros := make([]dto.RegistroResponse, 0, len(rows))
	for _, row := range rows {
		registros = append(registros, mapRegistro(row, currentYear))
	}

	return registros, nil
}

// BuscarPorCurp looks up a single registro by CURP. A missing registro is an
// explicit nil result; only malformed identifiers and database failures are
// errors.
func (s *personaService) BuscarPorCurp(ctx context.Context, curp string) (*dto.BusquedaCurpResponse, error) {
	if !validation.IsValidCURP(curp) {
		return nil, &apperrors.CustomError{
			Err:     apperrors.ErrInvalidCURP,
			Message: "formato de CURP inválido, debe tener 18 caracteres alfanuméricos",
		}
	}

	row, err := s.store.GetByCURP(ctx, curp)
	if err != nil {
		s.logger.Error().Err(err).Str("curp", curp).Msg("CURP lookup failed")
		return nil, apperrors.NewPersistenceError(err, "error en búsqueda por CURP")
	}

	if row == nil {
		return nil, nil
	}

	resp := mapBusqueda(*row, time.Now().Year())
	return &resp, nil
}

// EliminarPorCurp deletes the registro matching a CURP, relying on cascading
// delete for the dependent rows.
func (s *personaService) EliminarPorCurp(ctx context.Context, curp string) (*dto.EliminacionCurpResponse, error) {
	if !validation.IsValidCURP(curp) {
		return nil, &apperrors.CustomError{
			Err:     apperrors.ErrInvalidCURP,
			Message: "formato de CURP inválido",
		}
	}

	rowsAffected, err := s.store.DeleteByCURP(ctx, curp)
	if err != nil {
		if errors.Is(err, repositories.ErrPersonaNotFound) {
			return nil, apperrors.NewNotFoundError("no existe registro con esa CURP")
		}
		s.logger.Error().Err(err).Str("curp", curp).Msg("Delete by CURP failed")
		return nil, apperrors.NewPersistenceError(err, "error al eliminar por CURP")
	}

	return &dto.EliminacionCurpResponse{
		FilasEliminadas: rowsAffected,
		Mensaje:         "Registro eliminado exitosamente",
		CurpEliminada:   curp,
	}, nil
}

// EliminarPorID deletes the registro with the given persona identifier.
func (s *personaService) EliminarPorID(ctx context.Context, id int64) (*dto.EliminacionIDResponse, error) {
	if !validation.IsValidPersonaID(id) {
		return nil, &apperrors.CustomError{
			Err:     apperrors.ErrInvalidPersonaID,
			Message: "el ID debe ser un número positivo",
		}
	}

	rowsAffected, err := s.store.DeleteByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrPersonaNotFound) {
			return nil, apperrors.NewNotFoundError("no existe persona con el ID especificado")
		}
		s.logger.Error().Err(err).Int64("id", id).Msg("Delete by ID failed")
		return nil, apperrors.NewPersistenceError(err, "error al eliminar por ID")
	}

	return &dto.EliminacionIDResponse{
		FilasEliminadas: rowsAffected,
		Mensaje:         "Registro y sus relaciones eliminados exitosamente",
		IDEliminado:     id,
		Timestamp:       time.Now(),
	}, nil
}

// mapRegistro reshapes a flat joined row into the nested aggregate
func mapRegistro(row repositories.RegistroRow, currentYear int) dto.RegistroResponse {
	return dto.RegistroResponse{
		ID: row.ID,
		InformacionPersonal: dto.InformacionPersonal{
			NombreCompleto:  row.Nombre + " " + row.ApellidoPaterno + " " + row.ApellidoMaterno,
			Sexo:            models.SexoDescripcion(row.Sexo),
			FechaNacimiento: formatFecha(row.FechaNacimiento),
		},
		Direccion: dto.DireccionInfo{
			Completa:     row.DireccionCompleta,
			Estado:       row.Estado,
			Municipio:    row.Municipio,
			Seccion:      row.Seccion,
			CodigoPostal: helpers.GetStringPtr(row.CodigoPostal),
		},
		Credencial: dto.CredencialInfo{
			CURP:             row.CURP,
			ClaveElector:     row.ClaveElector,
			Vigencia:         row.Vigencia,
			NumeroCredencial: helpers.GetStringPtr(row.NumeroCredencial),
			AnioEmision:      row.AnioEmision,
			Vigente:          row.Vigencia > currentYear,
		},
	}
}

// mapBusqueda reshapes a joined row into the flat lookup response with its
// computed fields.
func mapBusqueda(row repositories.RegistroRow, currentYear int) dto.BusquedaCurpResponse {
	return dto.BusquedaCurpResponse{
		Nombre:            row.Nombre,
		ApellidoPaterno:   row.ApellidoPaterno,
		ApellidoMaterno:   row.ApellidoMaterno,
		Sexo:              row.Sexo,
		FechaNacimiento:   formatFecha(row.FechaNacimiento),
		DireccionCompleta: row.DireccionCompleta,
		Estado:            row.Estado,
		Municipio:         row.Municipio,
		Seccion:           row.Seccion,
		CodigoPostal:      helpers.GetStringPtr(row.CodigoPostal),
		CURP:              row.CURP,
		ClaveElector:      row.ClaveElector,
		AnioEmision:       row.AnioEmision,
		Vigencia:          row.Vigencia,
		NumeroCredencial:  helpers.GetStringPtr(row.NumeroCredencial),
		NombreCompleto:    row.Nombre + " " + row.ApellidoPaterno + " " + row.ApellidoMaterno,
		SexoDescripcion:   models.SexoDescripcion(row.Sexo),
		CredencialVigente: row.Vigencia > currentYear,
	}
}

// formatFecha renders an optional birth date in ISO date form
func formatFecha(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}
