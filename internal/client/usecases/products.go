package usecases

import (
	"context"

	"github.com/dmitrijs2005/posclient/internal/client/models"
	"github.com/dmitrijs2005/posclient/internal/client/repositories/products"
	"github.com/dmitrijs2005/posclient/internal/logging"
	"github.com/shopspring/decimal"
)

// CreateProductInput uses pointers for Price and Stock so that an omitted
// value is distinguishable from zero.
type CreateProductInput struct {
	Name        string
	Description string
	Price       *decimal.Decimal
	Stock       *int
}

func (in CreateProductInput) validate() error {
	if in.Name == "" || in.Description == "" || in.Price == nil || in.Stock == nil {
		return ErrFieldsRequired
	}
	if !in.Price.IsPositive() {
		return ErrPriceNotPositive
	}
	if *in.Stock < 0 {
		return ErrNegativeStock
	}
	return nil
}

type CreateProduct struct {
	products products.Repository
	log      logging.Logger
}

func NewCreateProduct(repo products.Repository, log logging.Logger) *CreateProduct {
	return &CreateProduct{products: repo, log: log.With("usecase", "create_product")}
}

func (uc *CreateProduct) Execute(ctx context.Context, in CreateProductInput) models.Result[*models.APIResponse] {
	if err := in.validate(); err != nil {
		return rejected[*models.APIResponse](ctx, uc.log, err)
	}

	p := models.NewProduct{
		Name:        in.Name,
		Description: in.Description,
		Price:       *in.Price,
		Stock:       *in.Stock,
	}

	resp, err := uc.products.CreateProduct(ctx, p)
	if err != nil {
		return failure[*models.APIResponse](ctx, uc.log, err, MsgCreateProductFail)
	}
	uc.log.Info(ctx, "product created", "name", in.Name)
	return models.Success(resp)
}

type GetProducts struct {
	products products.Repository
	log      logging.Logger
}

func NewGetProducts(repo products.Repository, log logging.Logger) *GetProducts {
	return &GetProducts{products: repo, log: log.With("usecase", "get_products")}
}

func (uc *GetProducts) Execute(ctx context.Context) models.Result[[]models.Product] {
	list, err := uc.products.Products(ctx)
	if err != nil {
		return failure[[]models.Product](ctx, uc.log, err, MsgGetProductsFailed)
	}
	return models.Success(list)
}
