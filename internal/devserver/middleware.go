package devserver

import (
	"errors"
	"runtime/debug"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dmitrijs2005/posclient/internal/common"
)

const clientIDKey = "client_id"

// RegisterMiddlewares attaches request logging and panic recovery. The
// logger runs outermost so recovered panics are logged with their status.
func RegisterMiddlewares(app *fiber.App, logger *zap.Logger) {
	app.Use(requestLogger(logger))
	app.Use(recoverMiddleware(logger))
}

func recoverMiddleware(logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered", zap.Any("panic", r), zap.ByteString("stack", debug.Stack()))
				err = fiber.NewError(fiber.StatusInternalServerError, "error interno")
			}
		}()
		return c.Next()
	}
}

// requestLogger echoes or assigns X-Request-ID and logs one line per request.
func requestLogger(logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get(common.RequestIDHeaderName)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(common.RequestIDHeaderName, requestID)

		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
		} else if err != nil {
			status = fiber.StatusInternalServerError
		}

		logger.Info("request",
			zap.String("request_id", requestID),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.Duration("elapsed", time.Since(start)))
		return err
	}
}

// ErrorHandler renders handler errors as {"message": ...}.
func ErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		msg := "error interno"

		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
			msg = fe.Message
		}
		if code >= fiber.StatusInternalServerError {
			logger.Error("request failed", zap.Error(err))
		}
		return c.Status(code).JSON(fiber.Map{"success": false, "message": msg})
	}
}

// AuthMiddleware requires a valid bearer token.
type AuthMiddleware struct {
	tokens *TokenManager
}

func NewAuthMiddleware(tokens *TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get(common.AuthorizationHeaderName)
	if authHeader == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "falta el encabezado de autorización")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return fiber.NewError(fiber.StatusUnauthorized, "encabezado de autorización inválido")
	}

	clientID, err := m.tokens.Parse(parts[1])
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "token inválido")
	}

	c.Locals(clientIDKey, clientID)
	return c.Next()
}
