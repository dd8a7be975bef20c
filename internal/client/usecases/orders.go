package usecases

import (
	"context"

	"github.com/dmitrijs2005/posclient/internal/client/models"
	"github.com/dmitrijs2005/posclient/internal/client/repositories/orders"
	"github.com/dmitrijs2005/posclient/internal/logging"
	"github.com/shopspring/decimal"
)

type CreateOrderInput struct {
	ClientID   int64
	ProductID  int64
	Quantity   int
	TotalPrice decimal.Decimal
}

func (in CreateOrderInput) validate() error {
	if in.ClientID == 0 || in.ProductID == 0 || in.Quantity == 0 || in.TotalPrice.IsZero() {
		return ErrFieldsRequired
	}
	if in.Quantity < 0 {
		return ErrQuantityNotPositive
	}
	if !in.TotalPrice.IsPositive() {
		return ErrTotalNotPositive
	}
	return nil
}

// CreateOrder places a new order in Pending status.
type CreateOrder struct {
	orders orders.Repository
	log    logging.Logger
}

func NewCreateOrder(repo orders.Repository, log logging.Logger) *CreateOrder {
	return &CreateOrder{orders: repo, log: log.With("usecase", "create_order")}
}

func (uc *CreateOrder) Execute(ctx context.Context, in CreateOrderInput) models.Result[*models.APIResponse] {
	if err := in.validate(); err != nil {
		return rejected[*models.APIResponse](ctx, uc.log, err)
	}

	order := models.Order{
		ClientID:   in.ClientID,
		ProductID:  in.ProductID,
		Quantity:   in.Quantity,
		Status:     models.OrderStatusPending,
		TotalPrice: in.TotalPrice,
	}

	resp, err := uc.orders.CreateOrder(ctx, order)
	if err != nil {
		return failure[*models.APIResponse](ctx, uc.log, err, MsgCreateOrderFailed)
	}
	uc.log.Info(ctx, "order created", "client_id", in.ClientID, "product_id", in.ProductID, "total", in.TotalPrice)
	return models.Success(resp)
}

// GetClientOrders returns the order history of one client.
type GetClientOrders struct {
	orders orders.Repository
	log    logging.Logger
}

func NewGetClientOrders(repo orders.Repository, log logging.Logger) *GetClientOrders {
	return &GetClientOrders{orders: repo, log: log.With("usecase", "get_client_orders")}
}

func (uc *GetClientOrders) Execute(ctx context.Context, clientID int64) models.Result[*models.OrderHistory] {
	if clientID == 0 {
		return rejected[*models.OrderHistory](ctx, uc.log, ErrClientIDRequired)
	}

	h, err := uc.orders.OrdersByClientID(ctx, clientID)
	if err != nil {
		return failure[*models.OrderHistory](ctx, uc.log, err, MsgClientOrdersFailed)
	}
	return models.Success(h)
}

// ListOrders returns every order known to the backend.
type ListOrders struct {
	orders orders.Repository
	log    logging.Logger
}

func NewListOrders(repo orders.Repository, log logging.Logger) *ListOrders {
	return &ListOrders{orders: repo, log: log.With("usecase", "list_orders")}
}

func (uc *ListOrders) Execute(ctx context.Context) models.Result[[]models.Order] {
	list, err := uc.orders.ListOrders(ctx)
	if err != nil {
		return failure[[]models.Order](ctx, uc.log, err, MsgListOrdersFailed)
	}
	return models.Success(list)
}
