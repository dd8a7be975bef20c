package devserver

import (
	"errors"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/dmitrijs2005/posclient/internal/client/models"
	"github.com/dmitrijs2005/posclient/internal/common"
)

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// Client is a registered account. PasswordHash is a bcrypt hash.
type Client struct {
	ID           int64
	Name         string
	Email        string
	Address      string
	PasswordHash string
}

// Store keeps clients, products and orders in memory.
type Store struct {
	mu       sync.RWMutex
	clients  []Client
	products []models.Product
	orders   []models.Order
	nextID   struct{ client, product, order int64 }
}

func NewStore() *Store {
	return &Store{}
}

// Seed replaces the catalog with products and continues numbering after
// the largest id.
func (s *Store) Seed(products []models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.products = append([]models.Product(nil), products...)
	for _, p := range products {
		s.nextID.product = max(s.nextID.product, p.ID)
	}
}

// CreateClient registers c and returns it with its id set. Emails are
// compared case-insensitively.
func (s *Store) CreateClient(c Client) (Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.clients {
		if strings.EqualFold(existing.Email, c.Email) {
			return Client{}, common.ErrorAlreadyExists
		}
	}
	s.nextID.client++
	c.ID = s.nextID.client
	s.clients = append(s.clients, c)
	return c, nil
}

func (s *Store) ClientByEmail(email string) (Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.clients {
		if strings.EqualFold(c.Email, email) {
			return c, nil
		}
	}
	return Client{}, common.ErrorNotFound
}

func (s *Store) Products() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Product{}, s.products...)
}

func (s *Store) AddProduct(p models.NewProduct) models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID.product++
	product := models.Product{
		ID:          s.nextID.product,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
	}
	s.products = append(s.products, product)
	return product
}

// PlaceOrder records o and takes its quantity out of the product stock.
// A zero total is filled in from the catalog price.
func (s *Store) PlaceOrder(o models.Order) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, p := range s.products {
		if p.ID == o.ProductID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return models.Order{}, ErrProductNotFound
	}
	if s.products[idx].Stock < o.Quantity {
		return models.Order{}, ErrInsufficientStock
	}
	s.products[idx].Stock -= o.Quantity

	if o.TotalPrice.IsZero() {
		o.TotalPrice = s.products[idx].Price.Mul(decimal.NewFromInt(int64(o.Quantity)))
	}
	if o.Status == "" {
		o.Status = models.OrderStatusPending
	}
	s.nextID.order++
	o.ID = s.nextID.order
	s.orders = append(s.orders, o)
	return o, nil
}

func (s *Store) Orders() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Order{}, s.orders...)
}

func (s *Store) OrdersByClient(clientID int64) []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Order{}
	for _, o := range s.orders {
		if o.ClientID == clientID {
			out = append(out, o)
		}
	}
	return out
}
