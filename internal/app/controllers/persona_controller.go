package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/inemx/registro-ine/internal/app/models/dto"
	"github.com/inemx/registro-ine/internal/app/services"
	"github.com/inemx/registro-ine/internal/middleware"
	"github.com/inemx/registro-ine/internal/pkg/validation"
)

// PersonaController handles registro-related HTTP operations
type PersonaController struct {
	personaService services.PersonaService
}

// NewPersonaController creates a new PersonaController
func NewPersonaController(personaService services.PersonaService) *PersonaController {
	return &PersonaController{
		personaService: personaService,
	}
}

// RegistrarPersona handles creation of a full registro
// @Summary Register a persona with its credencial INE
// @Description Creates persona, direccion and credencial records atomically
// @Tags personas
// @Accept json
// @Produce json
// @Param request body dto.RegistrarPersonaRequest true "Registro information"
// @Success 201 {object} dto.APIResponse{data=services.RegistroCreado} "Registro created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /personas/registrar-ine [post]
func (c *PersonaController) RegistrarPersona(ctx *gin.Context) {
	var req dto.RegistrarPersonaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeDatosInvalidos, "datos de persona no válidos")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	resultado, err := c.personaService.CrearPersona(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Success:   true,
		Data:      resultado,
		Timestamp: time.Now(),
	})
}

// ObtenerTodosLosRegistros lists every registro
// @Summary List all registros
// @Description Retrieves every persona with its direccion and credencial joined
// @Tags personas
// @Accept json
// @Produce json
// @Success 200 {object} dto.ListResponse{data=[]dto.RegistroResponse} "Registros retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /personas/obtener-usuarios [get]
func (c *PersonaController) ObtenerTodosLosRegistros(ctx *gin.Context) {
	registros, err := c.personaService.ObtenerTodosLosRegistros(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ListResponse{
		Success:   true,
		Count:     len(registros),
		Data:      registros,
		Timestamp: time.Now(),
	})
}

// BuscarPorCurp retrieves a registro by CURP
// @Summary Find registro by CURP
// @Description Retrieves the registro whose credencial carries the given CURP
// @Tags personas
// @Accept json
// @Produce json
// @Param curp path string true "CURP (18 characters)"
// @Success 200 {object} dto.APIResponse{data=dto.BusquedaCurpResponse} "Registro retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Malformed CURP"
// @Failure 404 {object} dto.ErrorResponse "Registro not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /personas/buscar-curp/{curp} [get]
func (c *PersonaController) BuscarPorCurp(ctx *gin.Context) {
	curp := ctx.Param("curp")

	resultado, err := c.personaService.BuscarPorCurp(ctx, curp)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if resultado == nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeNoEncontrado, "no existe registro con esa CURP")
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(errorDetail))
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success: true,
		Data:    resultado,
	})
}

// EliminarPorCurp deletes a registro by CURP
// @Summary Delete registro by CURP
// @Description Deletes the persona matching a CURP, cascading to direccion and credencial
// @Tags personas
// @Accept json
// @Produce json
// @Param curp path string true "CURP (18 characters)"
// @Success 200 {object} dto.APIResponse{data=dto.EliminacionCurpResponse} "Registro deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "CURP length is not 18"
// @Failure 404 {object} dto.ErrorResponse "Registro not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /personas/eliminar-curp/{curp} [delete]
func (c *PersonaController) EliminarPorCurp(ctx *gin.Context) {
	curp := ctx.Param("curp")

	if len(curp) != validation.CURPLength {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeCURPInvalida, "la CURP debe tener exactamente 18 caracteres")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	resultado, err := c.personaService.EliminarPorCurp(ctx, curp)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success: true,
		Data:    resultado,
	})
}

// EliminarPorID deletes a registro by persona identifier
// @Summary Delete registro by ID
// @Description Deletes the persona with the given identifier, cascading to direccion and credencial
// @Tags personas
// @Accept json
// @Produce json
// @Param id path int true "Persona ID" minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.EliminacionIDResponse} "Registro deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "ID is not a positive integer"
// @Failure 404 {object} dto.ErrorResponse "Registro not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /personas/eliminar-id/{id} [delete]
func (c *PersonaController) EliminarPorID(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeIDInvalido, "el ID debe ser un número positivo")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	resultado, err := c.personaService.EliminarPorID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success: true,
		Data:    resultado,
	})
}
