package dto

import (
	"fmt"
	"time"
)

// ErrorCode represents standardized error codes
type ErrorCode string

// Standard error codes for the application
const (
	// Validation errors
	ErrorCodeDatosInvalidos ErrorCode = "DATOS_INVALIDOS"
	ErrorCodeCURPInvalida   ErrorCode = "CURP_INVALIDA"
	ErrorCodeIDInvalido     ErrorCode = "ID_INVALIDO"

	// Resource errors
	ErrorCodeNoEncontrado ErrorCode = "NO_ENCONTRADO"

	// Server errors
	ErrorCodeErrorBaseDatos   ErrorCode = "ERROR_BASE_DATOS"
	ErrorCodeErrorEliminacion ErrorCode = "ERROR_ELIMINACION"
	ErrorCodeErrorInterno     ErrorCode = "ERROR_INTERNO"
)

// ErrorDetail represents detailed error information
type ErrorDetail struct {
	Code      ErrorCode   `json:"code" example:"CURP_INVALIDA"`
	Message   string      `json:"message" example:"Formato de CURP inválido"`
	Details   interface{} `json:"details,omitempty"`
	DebugInfo string      `json:"debugInfo,omitempty"`
}

// ErrorResponse represents the standard error response structure
type ErrorResponse struct {
	Success   bool         `json:"success" example:"false"`
	Error     *ErrorDetail `json:"error"`
	Timestamp time.Time    `json:"timestamp" example:"2026-08-29T12:01:05.123Z"`
}

// NewErrorDetail creates a new error detail
func NewErrorDetail(code ErrorCode, message string) *ErrorDetail {
	return &ErrorDetail{
		Code:    code,
		Message: message,
	}
}

// WithDetails adds additional details to the error
func (e *ErrorDetail) WithDetails(details interface{}) *ErrorDetail {
	e.Details = details
	return e
}

// WithDebugInfo adds debug information (attached in development mode only)
func (e *ErrorDetail) WithDebugInfo(format string, args ...interface{}) *ErrorDetail {
	e.DebugInfo = fmt.Sprintf(format, args...)
	return e
}

// NewErrorResponse creates a standard error response
func NewErrorResponse(errorDetail *ErrorDetail) *ErrorResponse {
	return &ErrorResponse{
		Success:   false,
		Error:     errorDetail,
		Timestamp: time.Now(),
	}
}
