package demo

import (
	"context"

	"github.com/dmitrijs2005/posclient/internal/client/models"
	"github.com/dmitrijs2005/posclient/internal/client/repositories/orders"
	"github.com/dmitrijs2005/posclient/internal/client/repositories/products"
	"github.com/dmitrijs2005/posclient/internal/logging"
)

// ProductRepository serves the sample catalog when the catalog cannot be
// fetched. Product creation is never faked.
type ProductRepository struct {
	products.Repository
	log logging.Logger
}

func NewProductRepository(inner products.Repository, log logging.Logger) *ProductRepository {
	return &ProductRepository{Repository: inner, log: log.With("demo", "products")}
}

func (r *ProductRepository) Products(ctx context.Context) ([]models.Product, error) {
	list, err := r.Repository.Products(ctx)
	if err != nil {
		r.log.Warn(ctx, "catalog unavailable, using sample products", "error", err)
		return SampleProducts(), nil
	}
	return list, nil
}

// OrderRepository serves the sample history when a client's orders cannot
// be fetched. Order creation is never faked.
type OrderRepository struct {
	orders.Repository
	log logging.Logger
}

func NewOrderRepository(inner orders.Repository, log logging.Logger) *OrderRepository {
	return &OrderRepository{Repository: inner, log: log.With("demo", "orders")}
}

func (r *OrderRepository) OrdersByClientID(ctx context.Context, clientID int64) (*models.OrderHistory, error) {
	h, err := r.Repository.OrdersByClientID(ctx, clientID)
	if err != nil {
		r.log.Warn(ctx, "order history unavailable, using sample orders", "client_id", clientID, "error", err)
		return &models.OrderHistory{Orders: SampleOrders(clientID)}, nil
	}
	return h, nil
}
