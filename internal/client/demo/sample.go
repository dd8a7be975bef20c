package demo

import (
	"github.com/dmitrijs2005/posclient/internal/client/models"
	"github.com/shopspring/decimal"
)

const (
	MockUserID        int64 = 1
	MockUserName            = "Usuario de Prueba"
	MockLoginToken          = "token-simulado-123456"
	MockRegisterToken       = "token-registro-654321"
)

// SampleProducts returns the demo catalog. Each call returns a fresh slice.
func SampleProducts() []models.Product {
	return []models.Product{
		{ID: 1, Name: "Manzana", Description: "Manzana roja fresca", Price: decimal.RequireFromString("10.5"), Stock: 8},
		{ID: 2, Name: "Pera", Description: "Pera dulce y jugosa", Price: decimal.RequireFromString("14.5"), Stock: 5},
	}
}

// SampleOrders returns the demo order history of clientID.
func SampleOrders(clientID int64) []models.Order {
	statuses := []models.OrderStatus{models.OrderStatusPending, models.OrderStatusCompleted, models.OrderStatusPending}

	orders := make([]models.Order, 0, len(statuses))
	for i, st := range statuses {
		orders = append(orders, models.Order{
			ID:         int64(11 + i),
			ClientID:   clientID,
			ProductID:  1,
			Quantity:   2,
			Status:     st,
			TotalPrice: decimal.NewFromInt(21),
		})
	}
	return orders
}
