package orders

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/posclient/internal/client/client"
	"github.com/dmitrijs2005/posclient/internal/client/models"
	"github.com/dmitrijs2005/posclient/internal/common"
	"github.com/dmitrijs2005/posclient/internal/logging"
)

const orderPath = "/v1/order"

type HTTPRepository struct {
	client client.Client
	log    logging.Logger
}

func NewHTTPRepository(c client.Client, log logging.Logger) *HTTPRepository {
	return &HTTPRepository{client: c, log: log.With("repository", "orders")}
}

func (r *HTTPRepository) CreateOrder(ctx context.Context, order models.Order) (*models.APIResponse, error) {
	var resp models.APIResponse
	if err := r.client.Post(ctx, orderPath, order, &resp); err != nil {
		r.log.Error(ctx, "create order failed", "client_id", order.ClientID, "error", err)
		return nil, err
	}
	return &resp, nil
}

func (r *HTTPRepository) ListOrders(ctx context.Context) ([]models.Order, error) {
	var resp models.APIResponse
	if err := r.client.Get(ctx, orderPath, nil, &resp); err != nil {
		r.log.Error(ctx, "list orders failed", "error", err)
		return nil, err
	}

	orders := []models.Order{}
	if len(resp.Data) == 0 || string(resp.Data) == "null" {
		return orders, nil
	}
	if err := json.Unmarshal(resp.Data, &orders); err != nil {
		r.log.Error(ctx, "list orders: bad payload", "error", err)
		return nil, common.WithCause(client.ErrUnexpectedResponse, err)
	}
	return orders, nil
}

func (r *HTTPRepository) OrdersByClientID(ctx context.Context, clientID int64) (*models.OrderHistory, error) {
	path := orderPath + "/client/" + strconv.FormatInt(clientID, 10)

	var resp models.APIResponse
	if err := r.client.Get(ctx, path, nil, &resp); err != nil {
		r.log.Error(ctx, "client orders failed", "client_id", clientID, "error", err)
		return nil, err
	}

	history, err := ParseOrderMessages(resp.Messages)
	if err != nil {
		r.log.Warn(ctx, "skipped unreadable order entries",
			"client_id", clientID, "skipped", history.Skipped, "error", err)
	}
	return history, nil
}

// ParseOrderMessage decodes one history entry of the form
// "Orden recibida: {...}".
func ParseOrderMessage(msg string) (models.Order, error) {
	var o *models.Order
	raw := strings.TrimSpace(strings.TrimPrefix(msg, common.OrderMessagePrefix))
	if err := json.Unmarshal([]byte(raw), &o); err != nil {
		return models.Order{}, fmt.Errorf("order entry %q: %w", msg, err)
	}
	if o == nil {
		return models.Order{}, fmt.Errorf("order entry %q: %w", msg, ErrEmptyOrderEntry)
	}
	return *o, nil
}

// ParseOrderMessages decodes every entry it can. The returned history is
// never nil; the error joins the failures of the skipped entries.
func ParseOrderMessages(msgs []string) (*models.OrderHistory, error) {
	h := &models.OrderHistory{Orders: make([]models.Order, 0, len(msgs))}

	var errs []error
	for _, m := range msgs {
		o, err := ParseOrderMessage(m)
		if err != nil {
			h.Skipped++
			errs = append(errs, err)
			continue
		}
		h.Orders = append(h.Orders, o)
	}
	return h, errors.Join(errs...)
}
