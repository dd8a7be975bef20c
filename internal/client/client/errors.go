package client

import (
	"errors"
	"net/http"
)

// User-facing transport messages.
const (
	MsgBadRequest         = "Solicitud incorrecta"
	MsgUnauthorized       = "No autorizado. Por favor, inicie sesión nuevamente"
	MsgForbidden          = "Acceso denegado"
	MsgNotFound           = "Recurso no encontrado"
	MsgServerError        = "Error del servidor"
	MsgRequestFailed      = "Error en la solicitud"
	MsgNoResponse         = "No se recibió respuesta del servidor"
	MsgRequestSetup       = "Error al realizar la solicitud"
	MsgUnexpectedResponse = "Formato de respuesta inesperado"
)

var (
	// ErrNoResponse means the request was sent but no response came back
	// (connection refused, timeout, cancelled context).
	ErrNoResponse = errors.New(MsgNoResponse)
	// ErrRequestSetup means the request could not be built or sent at all.
	ErrRequestSetup = errors.New(MsgRequestSetup)
	// ErrUnexpectedResponse means a 2xx body did not have the expected shape.
	ErrUnexpectedResponse = errors.New(MsgUnexpectedResponse)
)

// StatusError is returned for a response with a non-2xx status.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	return e.Message
}

// newStatusError maps a status code to its fixed message. serverMsg is the
// "message" field of the error body, used for 400 and unmapped codes.
func newStatusError(code int, serverMsg string) *StatusError {
	msg := ""
	switch code {
	case http.StatusBadRequest:
		msg = fallback(serverMsg, MsgBadRequest)
	case http.StatusUnauthorized:
		msg = MsgUnauthorized
	case http.StatusForbidden:
		msg = MsgForbidden
	case http.StatusNotFound:
		msg = MsgNotFound
	case http.StatusInternalServerError:
		msg = MsgServerError
	default:
		msg = fallback(serverMsg, MsgRequestFailed)
	}
	return &StatusError{StatusCode: code, Message: msg}
}

// StatusCode returns the HTTP status carried by err, or 0 when err did not
// come from a received response.
func StatusCode(err error) int {
	var se *StatusError
	if errors.As(err, &se) {
		return se.StatusCode
	}
	return 0
}

func fallback(s, def string) string {
	if s != "" {
		return s
	}
	return def
}
