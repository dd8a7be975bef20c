// Package products reads and extends the product catalog of the POS backend.
package products

import (
	"context"

	"github.com/dmitrijs2005/posclient/internal/client/models"
)

type Repository interface {
	Products(ctx context.Context) ([]models.Product, error)
	CreateProduct(ctx context.Context, p models.NewProduct) (*models.APIResponse, error)
}
