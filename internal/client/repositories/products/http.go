package products

import (
	"context"
	"encoding/json"

	"github.com/dmitrijs2005/posclient/internal/client/client"
	"github.com/dmitrijs2005/posclient/internal/client/models"
	"github.com/dmitrijs2005/posclient/internal/common"
	"github.com/dmitrijs2005/posclient/internal/logging"
)

const productPath = "/v1/product"

type HTTPRepository struct {
	client client.Client
	log    logging.Logger
}

func NewHTTPRepository(c client.Client, log logging.Logger) *HTTPRepository {
	return &HTTPRepository{client: c, log: log.With("repository", "products")}
}

// Products returns the catalog. A response without data is an empty
// catalog, not an error.
func (r *HTTPRepository) Products(ctx context.Context) ([]models.Product, error) {
	var resp models.APIResponse
	if err := r.client.Get(ctx, productPath, nil, &resp); err != nil {
		r.log.Error(ctx, "get products failed", "error", err)
		return nil, err
	}

	items := []models.Product{}
	if len(resp.Data) == 0 || string(resp.Data) == "null" {
		return items, nil
	}
	if err := json.Unmarshal(resp.Data, &items); err != nil {
		r.log.Error(ctx, "get products: bad payload", "error", err)
		return nil, common.WithCause(client.ErrUnexpectedResponse, err)
	}
	return items, nil
}

func (r *HTTPRepository) CreateProduct(ctx context.Context, p models.NewProduct) (*models.APIResponse, error) {
	var resp models.APIResponse
	if err := r.client.Post(ctx, productPath, p, &resp); err != nil {
		r.log.Error(ctx, "create product failed", "name", p.Name, "error", err)
		return nil, err
	}
	return &resp, nil
}
