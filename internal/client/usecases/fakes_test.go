package usecases

import (
	"context"

	"github.com/dmitrijs2005/posclient/internal/client/models"
)

type fakeOrders struct {
	created   []models.Order
	createErr error
	history   *models.OrderHistory
	list      []models.Order
	err       error
	calls     int
}

func (f *fakeOrders) CreateOrder(_ context.Context, o models.Order) (*models.APIResponse, error) {
	f.calls++
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, o)
	return &models.APIResponse{Success: true}, nil
}

func (f *fakeOrders) ListOrders(context.Context) ([]models.Order, error) {
	f.calls++
	return f.list, f.err
}

func (f *fakeOrders) OrdersByClientID(context.Context, int64) (*models.OrderHistory, error) {
	f.calls++
	return f.history, f.err
}

type fakeProducts struct {
	created []models.NewProduct
	list    []models.Product
	err     error
	calls   int
}

func (f *fakeProducts) Products(context.Context) ([]models.Product, error) {
	f.calls++
	return f.list, f.err
}

func (f *fakeProducts) CreateProduct(_ context.Context, p models.NewProduct) (*models.APIResponse, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	f.created = append(f.created, p)
	return &models.APIResponse{Success: true}, nil
}
