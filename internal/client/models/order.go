package models

import "github.com/shopspring/decimal"

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "Pending"
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusCompleted  OrderStatus = "Completed"
	OrderStatusCancelled  OrderStatus = "Cancelled"
)

// Label returns the status as shown to the user.
func (s OrderStatus) Label() string {
	switch s {
	case OrderStatusPending:
		return "Pendiente"
	case OrderStatusProcessing:
		return "En proceso"
	case OrderStatusCompleted:
		return "Completada"
	case OrderStatusCancelled:
		return "Cancelada"
	default:
		return string(s)
	}
}

// Order is a purchase of one product. ID is assigned by the server and is
// zero for orders built on the client.
type Order struct {
	ID         int64           `json:"id,omitempty"`
	ClientID   int64           `json:"client_id"`
	ProductID  int64           `json:"product_id"`
	Quantity   int             `json:"quantity"`
	Status     OrderStatus     `json:"status"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

// OrderHistory is the decoded per-client listing. Skipped counts entries
// that could not be decoded and were left out of Orders.
type OrderHistory struct {
	Orders  []Order `json:"orders"`
	Skipped int     `json:"skipped"`
}
