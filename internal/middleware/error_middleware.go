package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inemx/registro-ine/internal/app/models/dto"
	"github.com/inemx/registro-ine/internal/pkg/apperrors"
)

// HandleAPIError translates an error kind into an HTTP response. Errors are
// classified with errors.Is against the closed apperrors set, never by
// message content. Internal detail is attached only outside release mode.
func HandleAPIError(c *gin.Context, err error) {
	var status int
	var code dto.ErrorCode

	switch {
	case errors.Is(err, apperrors.ErrInvalidInput):
		status, code = http.StatusBadRequest, dto.ErrorCodeDatosInvalidos
	case errors.Is(err, apperrors.ErrInvalidCURP):
		status, code = http.StatusBadRequest, dto.ErrorCodeCURPInvalida
	case errors.Is(err, apperrors.ErrInvalidPersonaID):
		status, code = http.StatusBadRequest, dto.ErrorCodeIDInvalido
	case errors.Is(err, apperrors.ErrRegistroNotFound):
		status, code = http.StatusNotFound, dto.ErrorCodeNoEncontrado
	case errors.Is(err, apperrors.ErrPersistenceFailure):
		status, code = http.StatusInternalServerError, dto.ErrorCodeErrorBaseDatos
	default:
		status, code = http.StatusInternalServerError, dto.ErrorCodeErrorInterno
	}

	errorDetail := dto.NewErrorDetail(code, publicMessage(err, status))
	if gin.Mode() != gin.ReleaseMode {
		errorDetail = errorDetail.WithDebugInfo("%v", err)
	}

	c.JSON(status, dto.NewErrorResponse(errorDetail))
}

// publicMessage hides raw failure detail on server errors; client errors
// keep their descriptive message.
func publicMessage(err error, status int) string {
	if status >= http.StatusInternalServerError {
		var customErr *apperrors.CustomError
		if errors.As(err, &customErr) && customErr.Message != "" {
			return customErr.Message
		}
		return "error interno del servidor"
	}
	return err.Error()
}
