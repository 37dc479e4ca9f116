package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inemx/registro-ine/internal/app/models"
	"github.com/inemx/registro-ine/internal/app/models/dto"
	"github.com/inemx/registro-ine/internal/app/services"
	"github.com/inemx/registro-ine/internal/pkg/apperrors"
)

// fakePersonaService implements services.PersonaService with canned results
type fakePersonaService struct {
	calls int

	crearResult  *services.RegistroCreado
	crearErr     error
	registros    []dto.RegistroResponse
	registrosErr error
	busqueda     *dto.BusquedaCurpResponse
	busquedaErr  error
	elimCurp     *dto.EliminacionCurpResponse
	elimCurpErr  error
	elimID       *dto.EliminacionIDResponse
	elimIDErr    error
}

func (f *fakePersonaService) CrearPersona(ctx context.Context, req *dto.RegistrarPersonaRequest) (*services.RegistroCreado, error) {
	f.calls++
	return f.crearResult, f.crearErr
}

func (f *fakePersonaService) ObtenerTodosLosRegistros(ctx context.Context) ([]dto.RegistroResponse, error) {
	f.calls++
	return f.registros, f.registrosErr
}

func (f *fakePersonaService) BuscarPorCurp(ctx context.Context, curp string) (*dto.BusquedaCurpResponse, error) {
	f.calls++
	return f.busqueda, f.busquedaErr
}

func (f *fakePersonaService) EliminarPorCurp(ctx context.Context, curp string) (*dto.EliminacionCurpResponse, error) {
	f.calls++
	return f.elimCurp, f.elimCurpErr
}

func (f *fakePersonaService) EliminarPorID(ctx context.Context, id int64) (*dto.EliminacionIDResponse, error) {
	f.calls++
	return f.elimID, f.elimIDErr
}

func setupTestRouter(svc services.PersonaService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	controller := NewPersonaController(svc)
	personas := router.Group("/api/personas")
	{
		personas.POST("/registrar-ine", controller.RegistrarPersona)
		personas.GET("/obtener-usuarios", controller.ObtenerTodosLosRegistros)
		personas.GET("/buscar-curp/:curp", controller.BuscarPorCurp)
		personas.DELETE("/eliminar-curp/:curp", controller.EliminarPorCurp)
		personas.DELETE("/eliminar-id/:id", controller.EliminarPorID)
	}

	return router
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	return resp
}

const validCreateBody = `{
	"nombre": "Ana",
	"apellido_paterno": "Ruiz",
	"apellido_materno": "Lopez",
	"sexo": "H",
	"direccion_completa": "Calle 1",
	"estado": "CDMX",
	"municipio": "Benito Juarez",
	"seccion": "001",
	"curp": "RUAL900101HDFXYZ01",
	"clave_elector": "RUAL900101H1000000",
	"anio_emision": 2020,
	"vigencia": 2030
}`

func TestRegistrarPersona(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		svc := &fakePersonaService{
			crearResult: &services.RegistroCreado{
				ID:      42,
				Persona: &models.Persona{ID: 42, Nombre: "Ana"},
				Metadata: dto.Metadata{
					Timestamp: time.Now(),
				},
			},
		}
		router := setupTestRouter(svc)

		w := doRequest(router, http.MethodPost, "/api/personas/registrar-ine", validCreateBody)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 1, svc.calls)

		var resp dto.APIResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
	})

	t.Run("malformed body never reaches the service", func(t *testing.T) {
		svc := &fakePersonaService{}
		router := setupTestRouter(svc)

		w := doRequest(router, http.MethodPost, "/api/personas/registrar-ine", `{"nombre": "Ana"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Zero(t, svc.calls)
		resp := decodeError(t, w)
		assert.Equal(t, dto.ErrorCodeDatosInvalidos, resp.Error.Code)
	})

	t.Run("invalid input maps to 400", func(t *testing.T) {
		svc := &fakePersonaService{crearErr: apperrors.NewInvalidInputError("datos de persona no válidos")}
		router := setupTestRouter(svc)

		w := doRequest(router, http.MethodPost, "/api/personas/registrar-ine", validCreateBody)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeError(t, w)
		assert.Equal(t, dto.ErrorCodeDatosInvalidos, resp.Error.Code)
	})

	t.Run("persistence failure maps to 500", func(t *testing.T) {
		svc := &fakePersonaService{
			crearErr: apperrors.NewPersistenceError(errors.New("duplicate key value"), "error al registrar persona"),
		}
		router := setupTestRouter(svc)

		w := doRequest(router, http.MethodPost, "/api/personas/registrar-ine", validCreateBody)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		resp := decodeError(t, w)
		assert.Equal(t, dto.ErrorCodeErrorBaseDatos, resp.Error.Code)
	})
}

func TestObtenerTodosLosRegistros(t *testing.T) {
	t.Run("returns count and data", func(t *testing.T) {
		svc := &fakePersonaService{
			registros: []dto.RegistroResponse{
				{ID: 2}, {ID: 1},
			},
		}
		router := setupTestRouter(svc)

		w := doRequest(router, http.MethodGet, "/api/personas/obtener-usuarios", "")

		assert.Equal(t, http.StatusOK, w.Code)

		var resp dto.ListResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, 2, resp.Count)
	})

	t.Run("query failure maps to 500", func(t *testing.T) {
		svc := &fakePersonaService{
			registrosErr: apperrors.NewPersistenceError(errors.New("timeout"), "error al recuperar los datos de personas"),
		}
		router := setupTestRouter(svc)

		w := doRequest(router, http.MethodGet, "/api/personas/obtener-usuarios", "")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestBuscarPorCurp(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc := &fakePersonaService{
			busqueda: &dto.BusquedaCurpResponse{
				CURP:           "RUAL900101HDFXYZ01",
				NombreCompleto: "Ana Ruiz Lopez",
			},
		}
		router := setupTestRouter(svc)

		w := doRequest(router, http.MethodGet, "/api/personas/buscar-curp/RUAL900101HDFXYZ01", "")

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("absent registro maps to 404", func(t *testing.T) {
		svc := &fakePersonaService{}
		router := setupTestRouter(svc)

		w := doRequest(router, http.MethodGet, "/api/personas/buscar-curp/RUAL900101HDFXYZ09", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
		resp := decodeError(t, w)
		assert.Equal(t, dto.ErrorCodeNoEncontrado, resp.Error.Code)
	})

	t.Run("malformed CURP maps to 400", func(t *testing.T) {
		svc := &fakePersonaService{
			busquedaErr: &apperrors.CustomError{Err: apperrors.ErrInvalidCURP, Message: "formato de CURP inválido"},
		}
		router := setupTestRouter(svc)

		w := doRequest(router, http.MethodGet, "/api/personas/buscar-curp/bad", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeError(t, w)
		assert.Equal(t, dto.ErrorCodeCURPInvalida, resp.Error.Code)
	})
}

func TestEliminarPorCurp(t *testing.T) {
	t.Run("wrong length rejected before service", func(t *testing.T) {
		svc := &fakePersonaService{}
		router := setupTestRouter(svc)

		w := doRequest(router, http.MethodDelete, "/api/personas/eliminar-curp/SHORT", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Zero(t, svc.calls)
		resp := decodeError(t, w)
		assert.Equal(t, dto.ErrorCodeCURPInvalida, resp.Error.Code)
	})

	t.Run("unknown CURP maps to 404", func(t *testing.T) {
		svc := &fakePersonaService{elimCurpErr: apperrors.NewNotFoundError("no existe registro con esa CURP")}
		router := setupTestRouter(svc)

		w := doRequest(router, http.MethodDelete, "/api/personas/eliminar-curp/RUAL900101HDFXYZ01", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("success", func(t *testing.T) {
		svc := &fakePersonaService{
			elimCurp: &dto.EliminacionCurpResponse{
				FilasEliminadas: 1,
				Mensaje:         "Registro eliminado exitosamente",
				CurpEliminada:   "RUAL900101HDFXYZ01",
			},
		}
		router := setupTestRouter(svc)

		w := doRequest(router, http.MethodDelete, "/api/personas/eliminar-curp/RUAL900101HDFXYZ01", "")

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestEliminarPorID(t *testing.T) {
	t.Run("non-numeric id rejected before service", func(t *testing.T) {
		svc := &fakePersonaService{}
		router := setupTestRouter(svc)

		w := doRequest(router, http.MethodDelete, "/api/personas/eliminar-id/abc", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Zero(t, svc.calls)
		resp := decodeError(t, w)
		assert.Equal(t, dto.ErrorCodeIDInvalido, resp.Error.Code)
	})

	t.Run("non-positive id rejected before service", func(t *testing.T) {
		svc := &fakePersonaService{}
		router := setupTestRouter(svc)

		w := doRequest(router, http.MethodDelete, "/api/personas/eliminar-id/0", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Zero(t, svc.calls)
	})

	t.Run("unknown id maps to 404", func(t *testing.T) {
		svc := &fakePersonaService{elimIDErr: apperrors.NewNotFoundError("no existe persona con el ID especificado")}
		router := setupTestRouter(svc)

		w := doRequest(router, http.MethodDelete, "/api/personas/eliminar-id/99", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("success", func(t *testing.T) {
		svc := &fakePersonaService{
			elimID: &dto.EliminacionIDResponse{
				FilasEliminadas: 1,
				Mensaje:         "Registro y sus relaciones eliminados exitosamente",
				IDEliminado:     7,
				Timestamp:       time.Now(),
			},
		}
		router := setupTestRouter(svc)

		w := doRequest(router, http.MethodDelete, "/api/personas/eliminar-id/7", "")

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
