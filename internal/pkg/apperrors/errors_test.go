package apperrors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomErrorClassification(t *testing.T) {
	err := NewInvalidInputError("datos de persona no válidos")

	assert.True(t, errors.Is(err, ErrInvalidInput))
	assert.False(t, errors.Is(err, ErrRegistroNotFound))
	assert.Equal(t, "datos de persona no válidos", err.Error())
}

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("no existe registro con esa CURP")

	assert.True(t, errors.Is(err, ErrRegistroNotFound))
	assert.False(t, errors.Is(err, ErrPersistenceFailure))
}

func TestPersistenceErrorKeepsCause(t *testing.T) {
	cause := errors.New("connection reset by peer")
	err := NewPersistenceError(cause, "error al registrar persona")

	// Classifiable as a persistence failure and still traceable to the cause
	assert.True(t, errors.Is(err, ErrPersistenceFailure))
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, "error al registrar persona", err.Error())
}

func TestCustomErrorFallbacks(t *testing.T) {
	withoutMessage := &CustomError{Err: ErrInvalidCURP}
	assert.Equal(t, ErrInvalidCURP.Error(), withoutMessage.Error())

	empty := &CustomError{}
	assert.Equal(t, "unknown error", empty.Error())
}

func TestWithCode(t *testing.T) {
	err := &CustomError{Err: ErrInvalidPersonaID, Message: "el ID debe ser un número positivo"}
	err = err.WithCode("ID_INVALIDO")

	require.Equal(t, "ID_INVALIDO", err.Code)
	assert.True(t, errors.Is(err, ErrInvalidPersonaID))
}
