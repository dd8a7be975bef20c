// Package orders reads and creates orders on the POS backend.
package orders

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/posclient/internal/client/models"
)

// ErrEmptyOrderEntry marks a history entry whose payload is JSON null.
var ErrEmptyOrderEntry = errors.New("empty order entry")

type Repository interface {
	CreateOrder(ctx context.Context, order models.Order) (*models.APIResponse, error)
	ListOrders(ctx context.Context) ([]models.Order, error)
	// OrdersByClientID returns the order history of one client. Entries
	// that cannot be decoded are counted in Skipped instead of failing the
	// whole listing.
	OrdersByClientID(ctx context.Context, clientID int64) (*models.OrderHistory, error)
}
