package common

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithCause(t *testing.T) {
	kind := errors.New("Acceso denegado")

	err := WithCause(kind, io.ErrUnexpectedEOF)
	assert.Equal(t, "Acceso denegado", err.Error())
	assert.ErrorIs(t, err, kind)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)

	err = WithCause(kind, nil)
	assert.ErrorIs(t, err, kind)
	assert.NotErrorIs(t, err, io.ErrUnexpectedEOF)
}
