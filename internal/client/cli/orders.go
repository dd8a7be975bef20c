package cli

import (
	"context"
	"strconv"

	"github.com/dmitrijs2005/posclient/internal/client/models"
)

// Orders prints the order history of the current user.
func (a *App) Orders(ctx context.Context) error {
	u := a.auth.User()
	if u == nil {
		a.notify("Inicie sesión primero (login)")
		return nil
	}

	res := a.getClientOrders.Execute(ctx, u.ID)
	if !res.OK() {
		a.notify(res.Message())
		return nil
	}

	h := res.Data()
	a.printOrders(h.Orders)
	if h.Skipped > 0 {
		a.printf("(%d órdenes no se pudieron leer)\n", h.Skipped)
	}
	return nil
}

// AllOrders prints every order known to the server.
func (a *App) AllOrders(ctx context.Context) error {
	res := a.listOrders.Execute(ctx)
	if !res.OK() {
		a.notify(res.Message())
		return nil
	}
	a.printOrders(res.Data())
	return nil
}

func (a *App) printOrders(list []models.Order) {
	if len(list) == 0 {
		a.printf("No hay órdenes\n")
		return
	}

	a.printf("%-8s %-20s %-9s %-10s %s\n", "Orden #", "Producto", "Cantidad", "Total", "Estado")
	for _, o := range list {
		a.printf("%-8d %-20s %-9d $%-9s %s\n", o.ID, a.productName(o.ProductID), o.Quantity, o.TotalPrice.StringFixed(2), o.Status.Label())
	}
}

// productName returns the catalog name of id when known, else "#id".
func (a *App) productName(id int64) string {
	if i := a.catalogIndex(id); i >= 0 {
		return a.catalog[i].Name
	}
	return "#" + strconv.FormatInt(id, 10)
}
