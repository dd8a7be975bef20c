package devserver

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/dmitrijs2005/posclient/internal/client/models"
	"github.com/dmitrijs2005/posclient/internal/common"
)

// ClientsHandler serves login and registration.
type ClientsHandler struct {
	store      *Store
	tokens     *TokenManager
	bcryptCost int
	logger     *zap.Logger
}

func NewClientsHandler(store *Store, tokens *TokenManager, bcryptCost int, logger *zap.Logger) *ClientsHandler {
	return &ClientsHandler{store: store, tokens: tokens, bcryptCost: bcryptCost, logger: logger}
}

type registerRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Password    string `json:"password"`
	Address     string `json:"address"`
}

// Login checks the email/password query parameters and returns the
// client together with a fresh token.
func (h *ClientsHandler) Login(c *fiber.Ctx) error {
	email := strings.TrimSpace(c.Query("email"))
	password := c.Query("password")
	if email == "" || password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "email y contraseña son obligatorios"})
	}

	client, err := h.store.ClientByEmail(email)
	if err == nil {
		err = ComparePassword(client.PasswordHash, password)
	}
	if err != nil {
		h.logger.Info("login rejected", zap.String("email", email))
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "message": "credenciales inválidas"})
	}

	token, _, err := h.tokens.Generate(client.ID, client.Email)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data": models.User{
			ID:    client.ID,
			Name:  client.Name,
			Email: client.Email,
			Token: token,
		},
	})
}

// Register creates a client. The email travels in the description field.
func (h *ClientsHandler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "cuerpo inválido")
	}
	req.Description = strings.TrimSpace(req.Description)
	if req.Name == "" || req.Description == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "nombre, correo y contraseña son obligatorios"})
	}

	hash, err := HashPassword(req.Password, h.bcryptCost)
	if err != nil {
		return err
	}
	client, err := h.store.CreateClient(Client{
		Name:         req.Name,
		Email:        req.Description,
		Address:      req.Address,
		PasswordHash: hash,
	})
	if errors.Is(err, common.ErrorAlreadyExists) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "el correo ya está registrado"})
	}
	if err != nil {
		return err
	}

	h.logger.Info("client registered", zap.Int64("client_id", client.ID))
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"Id": client.ID, "Name": client.Name, "Email": client.Email},
	})
}

// ProductsHandler serves the catalog.
type ProductsHandler struct {
	store *Store
}

func NewProductsHandler(store *Store) *ProductsHandler {
	return &ProductsHandler{store: store}
}

func (h *ProductsHandler) List(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.store.Products()})
}

func (h *ProductsHandler) Create(c *fiber.Ctx) error {
	var req models.NewProduct
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "cuerpo inválido")
	}
	if strings.TrimSpace(req.Name) == "" || !req.Price.IsPositive() || req.Stock < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "producto inválido"})
	}

	product := h.store.AddProduct(req)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": product})
}

// OrdersHandler serves purchases and order history.
type OrdersHandler struct {
	store  *Store
	logger *zap.Logger
}

func NewOrdersHandler(store *Store, logger *zap.Logger) *OrdersHandler {
	return &OrdersHandler{store: store, logger: logger}
}

func (h *OrdersHandler) Create(c *fiber.Ctx) error {
	var req models.Order
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "cuerpo inválido")
	}
	if req.ClientID == 0 || req.ProductID == 0 || req.Quantity <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "orden inválida"})
	}

	order, err := h.store.PlaceOrder(req)
	switch {
	case errors.Is(err, ErrProductNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "producto no encontrado"})
	case errors.Is(err, ErrInsufficientStock):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "stock insuficiente"})
	case err != nil:
		return err
	}

	h.logger.Info("order placed",
		zap.Int64("order_id", order.ID),
		zap.Int64("client_id", order.ClientID),
		zap.String("total", order.TotalPrice.String()))
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": order})
}

func (h *OrdersHandler) List(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.store.Orders()})
}

// ByClient returns the client's orders as "Orden recibida: {...}" messages.
// Clients may only read their own history.
func (h *OrdersHandler) ByClient(c *fiber.Ctx) error {
	clientID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "id de cliente inválido")
	}
	if caller, _ := c.Locals(clientIDKey).(int64); caller != clientID {
		h.logger.Info("foreign history rejected", zap.Int64("caller", caller), zap.Int64("client_id", clientID))
		return fiber.NewError(fiber.StatusForbidden, "acceso denegado")
	}

	orders := h.store.OrdersByClient(clientID)
	messages := make([]string, 0, len(orders))
	for _, o := range orders {
		b, err := json.Marshal(o)
		if err != nil {
			return err
		}
		messages = append(messages, common.OrderMessagePrefix+string(b))
	}
	return c.JSON(fiber.Map{"messages": messages})
}

func Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
