package usecases

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/posclient/internal/client/models"
	"github.com/dmitrijs2005/posclient/internal/logging"
)

// Validation failures.
var (
	ErrFieldsRequired      = errors.New("Todos los campos son requeridos")
	ErrQuantityNotPositive = errors.New("La cantidad debe ser mayor a 0")
	ErrTotalNotPositive    = errors.New("El precio total debe ser mayor a 0")
	ErrClientIDRequired    = errors.New("El ID del cliente es requerido")
	ErrPriceNotPositive    = errors.New("El precio debe ser mayor a 0")
	ErrNegativeStock       = errors.New("El stock no puede ser negativo")
)

// Messages used when a failure carries no text of its own.
const (
	MsgCreateOrderFailed  = "Error al crear la orden"
	MsgClientOrdersFailed = "Error al obtener las órdenes del cliente"
	MsgListOrdersFailed   = "Error al obtener las órdenes"
	MsgCreateProductFail  = "Error al crear el producto"
	MsgGetProductsFailed  = "Error al obtener los productos"
)

// failure logs err and turns it into a failed Result carrying err's
// message, or def when the message is empty.
func failure[T any](ctx context.Context, log logging.Logger, err error, def string) models.Result[T] {
	msg := def
	if err != nil && err.Error() != "" {
		msg = err.Error()
	}
	log.Error(ctx, "use case failed", "error", err)
	return models.Failure[T](msg)
}

// rejected reports a validation failure. Nothing was sent to the server.
func rejected[T any](ctx context.Context, log logging.Logger, err error) models.Result[T] {
	log.Warn(ctx, "input rejected", "reason", err)
	return models.Failure[T](err.Error())
}
