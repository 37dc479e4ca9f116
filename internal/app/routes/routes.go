package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/inemx/registro-ine/internal/app/controllers"
	"github.com/inemx/registro-ine/internal/app/models/dto"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	personaController *controllers.PersonaController,
) {
	// API group
	api := router.Group("/api")

	personas := api.Group("/personas")
	{
		personas.POST("/registrar-ine", personaController.RegistrarPersona)
		personas.GET("/obtener-usuarios", personaController.ObtenerTodosLosRegistros)
		personas.GET("/buscar-curp/:curp", personaController.BuscarPorCurp)
		personas.DELETE("/eliminar-curp/:curp", personaController.EliminarPorCurp)
		personas.DELETE("/eliminar-id/:id", personaController.EliminarPorID)
	}

	// Health check endpoint (public)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Success: true,
			Data:    gin.H{"status": "ok"},
		})
	})
}
