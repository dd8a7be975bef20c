package cli

import (
	"context"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/posclient/internal/client/models"
	"github.com/dmitrijs2005/posclient/internal/client/usecases"
	"github.com/shopspring/decimal"
)

// Products fetches and prints the catalog.
func (a *App) Products(ctx context.Context) error {
	if !a.refreshCatalog(ctx) {
		return nil
	}
	a.printCatalog()
	return nil
}

func (a *App) refreshCatalog(ctx context.Context) bool {
	res := a.getProducts.Execute(ctx)
	if !res.OK() {
		a.notify(res.Message())
		return false
	}
	a.catalog = res.Data()
	return true
}

func (a *App) printCatalog() {
	if len(a.catalog) == 0 {
		a.printf("No hay productos disponibles\n")
		return
	}
	for _, p := range a.catalog {
		a.printf("#%d %s - %s | $%s | %s\n", p.ID, p.Name, p.Description, p.Price.StringFixed(2), stockLabel(p))
	}
}

func stockLabel(p models.Product) string {
	if !p.InStock() {
		return "Agotado"
	}
	return "Disponible: " + strconv.Itoa(p.Stock)
}

// Buy orders units of one product. args may carry the product id and the
// quantity; whatever is missing is prompted for.
func (a *App) Buy(ctx context.Context, args []string) error {
	if a.catalog == nil && !a.refreshCatalog(ctx) {
		return nil
	}

	idText, err := a.argOrPrompt(args, 0, "ID del producto")
	if err != nil {
		return err
	}
	id, _ := strconv.ParseInt(idText, 10, 64)

	idx := a.catalogIndex(id)
	if idx < 0 {
		a.notify("Producto no encontrado")
		return nil
	}
	p := a.catalog[idx]
	if !p.InStock() {
		a.notify("Producto agotado")
		return nil
	}

	qtyText, err := a.argOrPrompt(args, 1, "Cantidad (1-"+strconv.Itoa(p.Stock)+")")
	if err != nil {
		return err
	}
	qty := clampQuantity(qtyText, p.Stock)
	total := p.Price.Mul(decimal.NewFromInt(int64(qty)))

	user := a.auth.User()
	if user == nil {
		a.notify("Inicie sesión primero (login)")
		return nil
	}

	res := a.createOrder.Execute(ctx, usecases.CreateOrderInput{
		ClientID:   user.ID,
		ProductID:  p.ID,
		Quantity:   qty,
		TotalPrice: total,
	})
	if !res.OK() {
		a.notify(res.Message())
		return nil
	}

	// the server owns stock; this only keeps the shown catalog plausible
	// until the next refresh
	a.catalog[idx].Stock -= qty
	a.printf("¡Compra realizada! %d %s(s) por $%s\n", qty, p.Name, total.StringFixed(2))
	return nil
}

func (a *App) catalogIndex(id int64) int {
	for i, p := range a.catalog {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// clampQuantity parses s and bounds it to [1, stock]. Unparseable input
// counts as 1.
func clampQuantity(s string, stock int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		n = 1
	}
	if n > stock {
		n = stock
	}
	return n
}

func (a *App) argOrPrompt(args []string, i int, prompt string) (string, error) {
	if i < len(args) {
		return args[i], nil
	}
	return getSimpleText(a.reader, prompt, a.out)
}

// AddProduct collects the product form and creates the product.
func (a *App) AddProduct(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Nombre", a.out)
	if err != nil {
		return err
	}
	description, err := getSimpleText(a.reader, "Descripción", a.out)
	if err != nil {
		return err
	}
	priceText, err := getSimpleText(a.reader, "Precio", a.out)
	if err != nil {
		return err
	}
	stockText, err := getSimpleText(a.reader, "Stock", a.out)
	if err != nil {
		return err
	}

	in := usecases.CreateProductInput{Name: name, Description: description}
	if priceText != "" {
		price, err := decimal.NewFromString(priceText)
		if err != nil {
			a.notify("El precio debe ser un número")
			return nil
		}
		in.Price = &price
	}
	if stockText != "" {
		stock, err := strconv.Atoi(stockText)
		if err != nil {
			a.notify("El stock debe ser un número entero")
			return nil
		}
		in.Stock = &stock
	}

	res := a.createProduct.Execute(ctx, in)
	if !res.OK() {
		a.notify(res.Message())
		return nil
	}

	a.catalog = nil
	a.printf("Producto creado exitosamente\n")
	return nil
}
