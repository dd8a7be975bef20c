package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/posclient/internal/client/client"
	"github.com/dmitrijs2005/posclient/internal/client/config"
	"github.com/dmitrijs2005/posclient/internal/client/demo"
	"github.com/dmitrijs2005/posclient/internal/client/models"
	"github.com/dmitrijs2005/posclient/internal/client/repositories/auth"
	"github.com/dmitrijs2005/posclient/internal/client/repositories/orders"
	"github.com/dmitrijs2005/posclient/internal/client/repositories/products"
	"github.com/dmitrijs2005/posclient/internal/client/repositories/session"
	"github.com/dmitrijs2005/posclient/internal/client/services"
	"github.com/dmitrijs2005/posclient/internal/client/usecases"
	"github.com/dmitrijs2005/posclient/internal/filex"
	"github.com/dmitrijs2005/posclient/internal/logging"
)

const databaseFile = "posclient.db"

type App struct {
	config *config.Config
	log    logging.Logger

	auth *services.AuthState
	conn *services.Connectivity

	getProducts     *usecases.GetProducts
	createProduct   *usecases.CreateProduct
	createOrder     *usecases.CreateOrder
	getClientOrders *usecases.GetClientOrders
	listOrders      *usecases.ListOrders

	// catalog is the last product list shown to the user. Purchases adjust
	// its stock locally until the next refresh.
	catalog []models.Product

	reader  *bufio.Reader
	out     io.Writer
	closers []func() error
}

// repositories groups what NewApp builds so tests can inject fakes.
type repositories struct {
	auth     auth.Repository
	products products.Repository
	orders   orders.Repository
	sessions session.Store
}

// NewApp wires the application from c. Close must be called when done.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	a := &App{config: c, reader: bufio.NewReader(os.Stdin), out: os.Stdout}

	logFile := c.LogFile
	if c.DataDir != "" {
		dir, err := filex.EnsureDir(c.DataDir)
		if err != nil {
			return nil, err
		}
		c.DataDir = dir
		if logFile != "" && !filepath.IsAbs(logFile) {
			logFile = filepath.Join(dir, logFile)
		}
	}

	log, closeLog := logging.New(logging.Options{Backend: c.LogBackend, Level: c.LogLevel, File: logFile})
	a.log = log
	a.closers = append(a.closers, closeLog)

	var sessions session.Store = session.NewMemoryStore()
	if c.DataDir != "" {
		db, err := client.InitDatabase(ctx, filepath.Join(c.DataDir, databaseFile))
		if err != nil {
			log.Error(ctx, "error initializing database", "error", err)
			_ = a.Close()
			return nil, err
		}
		a.closers = append(a.closers, db.Close)
		sessions = session.NewSQLiteStore(db)
	}

	api, err := client.NewAPIClient(c.APIHost, c.RequestTimeout,
		client.WithRateLimit(c.RateLimit, c.RateBurst),
		client.WithLogger(log),
	)
	if err != nil {
		_ = a.Close()
		return nil, err
	}

	repos := repositories{
		auth:     auth.NewHTTPRepository(api, sessions, log),
		products: products.NewHTTPRepository(api, log),
		orders:   orders.NewHTTPRepository(api, log),
		sessions: sessions,
	}
	a.wire(repos, api)
	api.SetTokenSource(a.auth.Token)

	log.Info(ctx, "client started", "api_host", api.BaseURL(), "demo", c.DemoMode, "data_dir", c.DataDir)
	return a, nil
}

// wire builds the services and use cases on top of repos, wrapping them in
// the demo fallbacks when demo mode is on.
func (a *App) wire(repos repositories, pinger services.Pinger) {
	if a.config.DemoMode {
		repos.auth = demo.NewAuthRepository(repos.auth, repos.sessions, a.log)
		repos.products = demo.NewProductRepository(repos.products, a.log)
		repos.orders = demo.NewOrderRepository(repos.orders, a.log)
	}

	a.auth = services.NewAuthState(repos.auth, a.log)
	a.conn = services.NewConnectivity(pinger, a.log)

	a.getProducts = usecases.NewGetProducts(repos.products, a.log)
	a.createProduct = usecases.NewCreateProduct(repos.products, a.log)
	a.createOrder = usecases.NewCreateOrder(repos.orders, a.log)
	a.getClientOrders = usecases.NewGetClientOrders(repos.orders, a.log)
	a.listOrders = usecases.NewListOrders(repos.orders, a.log)
}

// Run restores the session, starts the connectivity watcher and blocks in
// the REPL until the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a.auth.Init(ctx)
	a.conn.Check(ctx)
	go a.conn.Watch(ctx, a.config.OnlineCheckInterval)

	a.printf("Bienvenido al punto de venta (escriba 'help' para ver los comandos)\n")
	if u := a.auth.User(); u != nil {
		a.printf("Sesión restaurada: %s\n", u.Name)
	}

	runREPL(ctx, a, a.getStatus, a.reader, a.out)
}

// Close releases the database and flushes the log.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		errs = append(errs, a.closers[i]())
	}
	a.closers = nil
	return errors.Join(errs...)
}

func (a *App) isLoggedIn() bool {
	return a.auth.IsAuthenticated()
}

// getStatus renders the prompt decoration, e.g. "(Ana online demo)".
func (a *App) getStatus() string {
	var parts []string
	if u := a.auth.User(); u != nil {
		parts = append(parts, u.Name)
	}
	if m := a.conn.Mode(); m != services.ModeUnknown {
		parts = append(parts, string(m))
	}
	if a.config.DemoMode {
		parts = append(parts, "demo")
	}
	if len(parts) == 0 {
		return ""
	}
	return "(" + strings.Join(parts, " ") + ")"
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

// notify prints a one-line failure message.
func (a *App) notify(msg string) {
	a.printf("✗ %s\n", msg)
}
