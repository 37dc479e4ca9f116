package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/inemx/registro-ine/internal/app/models"
	"github.com/inemx/registro-ine/internal/db"
	"github.com/inemx/registro-ine/internal/pkg/helpers"
)

// Persona error types
var (
	ErrPersonaNotFound = errors.New("persona not found")
	ErrNoInsertID      = errors.New("persona insert returned no ID")
)

// RegistroRow is a flat row out of the three-table join
type RegistroRow struct {
	ID                int64
	Nombre            string
	ApellidoPaterno   string
	ApellidoMaterno   string
	Sexo              string
	FechaNacimiento   *time.Time
	DireccionCompleta string
	Estado            string
	Municipio         string
	Seccion           string
	CodigoPostal      sql.NullString
	CURP              string
	ClaveElector      string
	AnioEmision       int
	Vigencia          int
	NumeroCredencial  sql.NullString
}

// registroColumns is the shared column list of the three-table join
const registroColumns = `
	p.id,
	p.nombre,
	p.apellido_paterno,
	p.apellido_materno,
	p.sexo,
	p.fecha_nacimiento,
	d.direccion_completa,
	d.estado,
	d.municipio,
	d.seccion,
	d.codigo_postal,
	c.curp,
	c.clave_elector,
	c.anio_emision,
	c.vigencia,
	c.numero_credencial`

// PersonaRepository handles database operations for personas and their
// dependent direccion and credencial rows.
type PersonaRepository struct {
	db *pgxpool.Pool
}

// NewPersonaRepository creates a new persona repository
func NewPersonaRepository(db *pgxpool.Pool) *PersonaRepository {
	return &PersonaRepository{
		db: db,
	}
}

// CreateRegistro inserts persona, direccion and credencial as a single
// transaction and returns the generated persona ID. A failure at any step
// rolls everything back, so no partial registro ever persists.
func (r *PersonaRepository) CreateRegistro(ctx context.Context, persona *models.Persona, direccion *models.Direccion, credencial *models.CredencialIne) (int64, error) {
	var personaID int64

	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			INSERT INTO personas (nombre, apellido_paterno, apellido_materno, sexo, fecha_nacimiento)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id`,
			persona.Nombre,
			persona.ApellidoPaterno,
			persona.ApellidoMaterno,
			persona.Sexo,
			helpers.GetNullString(persona.FechaNacimiento),
		).Scan(&personaID)
		if err != nil {
			return fmt.Errorf("error inserting persona: %w", err)
		}

		if personaID == 0 {
			return ErrNoInsertID
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO direcciones (persona_id, direccion_completa, estado, municipio, seccion, codigo_postal)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			personaID,
			direccion.DireccionCompleta,
			direccion.Estado,
			direccion.Municipio,
			direccion.Seccion,
			helpers.GetNullString(direccion.CodigoPostal),
		)
		if err != nil {
			return fmt.Errorf("error inserting direccion: %w", err)
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO credenciales_ine (persona_id, curp, clave_elector, anio_emision, vigencia, numero_credencial)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			personaID,
			credencial.CURP,
			credencial.ClaveElector,
			credencial.AnioEmision,
			credencial.Vigencia,
			helpers.GetNullString(credencial.NumeroCredencial),
		)
		if err != nil {
			return fmt.Errorf("error inserting credencial: %w", err)
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return personaID, nil
}

// GetAll retrieves every registro as a joined row, most recent first.
// Ordering by ID descending stands in for insertion order.
func (r *PersonaRepository) GetAll(ctx context.Context) ([]RegistroRow, error) {
	query := `
		SELECT ` + registroColumns + `
		FROM personas p
		JOIN direcciones d ON p.id = d.persona_id
		JOIN credenciales_ine c ON p.id = c.persona_id
		ORDER BY p.id DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var registros []RegistroRow
	for rows.Next() {
		var row RegistroRow
		if err := scanRegistro(rows, &row); err != nil {
			return nil, err
		}
		registros = append(registros, row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return registros, nil
}

// GetByCURP retrieves the single joined row matching a CURP. A missing
// registro is an explicit nil result, not an error.
func (r *PersonaRepository) GetByCURP(ctx context.Context, curp string) (*RegistroRow, error) {
	query := `
		SELECT ` + registroColumns + `
		FROM personas p
		JOIN direcciones d ON p.id = d.persona_id
		JOIN credenciales_ine c ON p.id = c.persona_id
		WHERE c.curp = $1 LIMIT 1`

	rows, err := r.db.Query(ctx, query, curp)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, nil
	}

	var row RegistroRow
	if err := scanRegistro(rows, &row); err != nil {
		return nil, err
	}

	return &row, nil
}

// DeleteByCURP removes the persona whose credencial carries the given CURP.
// The direccion and credencial rows go with it through ON DELETE CASCADE.
func (r *PersonaRepository) DeleteByCURP(ctx context.Context, curp string) (int64, error) {
	var rowsAffected int64

	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		var personaID int64
		err := tx.QueryRow(ctx, `
			SELECT p.id
			FROM personas p
			JOIN credenciales_ine c ON p.id = c.persona_id
			WHERE c.curp = $1`,
			curp).Scan(&personaID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrPersonaNotFound
			}
			return fmt.Errorf("error looking up persona by CURP: %w", err)
		}

		cmdTag, err := tx.Exec(ctx, `DELETE FROM personas WHERE id = $1`, personaID)
		if err != nil {
			return fmt.Errorf("error deleting persona: %w", err)
		}

		rowsAffected = cmdTag.RowsAffected()
		return nil
	})
	if err != nil {
		return 0, err
	}

	return rowsAffected, nil
}

// DeleteByID removes a persona by its identifier, cascading to dependents.
func (r *PersonaRepository) DeleteByID(ctx context.Context, id int64) (int64, error) {
	var rowsAffected int64

	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		var exists bool
		err := tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM personas WHERE id = $1)`, id).Scan(&exists)
		if err != nil {
			return fmt.Errorf("error checking persona existence: %w", err)
		}

		if !exists {
			return ErrPersonaNotFound
		}

		cmdTag, err := tx.Exec(ctx, `DELETE FROM personas WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("error deleting persona: %w", err)
		}

		rowsAffected = cmdTag.RowsAffected()
		return nil
	})
	if err != nil {
		return 0, err
	}

	return rowsAffected, nil
}

// scanRegistro scans the joined column list into a RegistroRow
func scanRegistro(rows pgx.Rows, row *RegistroRow) error {
	return rows.Scan(
		&row.ID,
		&row.Nombre,
		&row.ApellidoPaterno,
		&row.ApellidoMaterno,
		&row.Sexo,
		&row.FechaNacimiento,
		&row.DireccionCompleta,
		&row.Estado,
		&row.Municipio,
		&row.Seccion,
		&row.CodigoPostal,
		&row.CURP,
		&row.ClaveElector,
		&row.AnioEmision,
		&row.Vigencia,
		&row.NumeroCredencial,
	)
}
