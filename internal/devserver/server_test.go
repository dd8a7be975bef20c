package devserver

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/posclient/internal/client/demo"
	"github.com/dmitrijs2005/posclient/internal/common"
)

func testConfig() *Config {
	return &Config{
		Host:       "127.0.0.1",
		Port:       "0",
		JWTSecret:  "test-secret",
		TokenTTL:   time.Hour,
		BcryptCost: bcrypt.MinCost,
	}
}

func newTestApp(t *testing.T) (*fiber.App, *Store) {
	t.Helper()
	store := NewStore()
	store.Seed(demo.SampleProducts())
	return New(testConfig(), store, zap.NewNop()), store
}

func do(t *testing.T, app *fiber.App, method, target, body, token string) (int, map[string]any) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set(common.AuthorizationHeaderName, "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	out := map[string]any{}
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	}
	return resp.StatusCode, out
}

func registerAndLogin(t *testing.T, app *fiber.App) (int64, string) {
	t.Helper()
	status, _ := do(t, app, http.MethodPost, "/v1/client",
		`{"name":"Ana","description":"ana@example.com","password":"secreto123","address":"Calle 123"}`, "")
	require.Equal(t, http.StatusCreated, status)

	q := url.Values{"email": {"ana@example.com"}, "password": {"secreto123"}}
	status, body := do(t, app, http.MethodGet, "/v1/client?"+q.Encode(), "", "")
	require.Equal(t, http.StatusOK, status)
	data := body["data"].(map[string]any)
	return int64(data["Id"].(float64)), data["token"].(string)
}

func TestHealth(t *testing.T) {
	app, _ := newTestApp(t)

	status, body := do(t, app, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", body["status"])
}

func TestRequestID_EchoedOrAssigned(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(common.RequestIDHeaderName, "abc-123")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, "abc-123", resp.Header.Get(common.RequestIDHeaderName))

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Header.Get(common.RequestIDHeaderName))
}

func TestRegisterAndLogin(t *testing.T) {
	app, _ := newTestApp(t)

	id, token := registerAndLogin(t, app)
	assert.Equal(t, int64(1), id)
	assert.NotEmpty(t, token)

	t.Run("duplicate email", func(t *testing.T) {
		status, body := do(t, app, http.MethodPost, "/v1/client",
			`{"name":"Otra","description":"ANA@example.com","password":"secreto123","address":"x"}`, "")
		assert.Equal(t, http.StatusBadRequest, status)
		assert.NotEmpty(t, body["message"])
	})

	t.Run("wrong password", func(t *testing.T) {
		q := url.Values{"email": {"ana@example.com"}, "password": {"nope"}}
		status, body := do(t, app, http.MethodGet, "/v1/client?"+q.Encode(), "", "")
		assert.Equal(t, http.StatusUnauthorized, status)
		assert.Equal(t, false, body["success"])
	})

	t.Run("unknown email", func(t *testing.T) {
		q := url.Values{"email": {"nadie@example.com"}, "password": {"secreto123"}}
		status, _ := do(t, app, http.MethodGet, "/v1/client?"+q.Encode(), "", "")
		assert.Equal(t, http.StatusUnauthorized, status)
	})

	t.Run("missing fields", func(t *testing.T) {
		status, _ := do(t, app, http.MethodPost, "/v1/client", `{"name":"Sin correo"}`, "")
		assert.Equal(t, http.StatusBadRequest, status)
	})
}

func TestProducts(t *testing.T) {
	app, _ := newTestApp(t)
	_, token := registerAndLogin(t, app)

	status, body := do(t, app, http.MethodGet, "/v1/product", "", "")
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, body["data"], 2)

	status, _ = do(t, app, http.MethodPost, "/v1/product", `{"name":"Uva","price":3.25,"stock":4}`, "")
	assert.Equal(t, http.StatusUnauthorized, status, "creating products needs a token")

	status, body = do(t, app, http.MethodPost, "/v1/product", `{"name":"Uva","description":"morada","price":3.25,"stock":4}`, token)
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, true, body["success"])
	created := body["data"].(map[string]any)
	assert.Equal(t, float64(3), created["id"])
	assert.Equal(t, 3.25, created["price"])

	status, _ = do(t, app, http.MethodPost, "/v1/product", `{"name":"Gratis","price":0,"stock":1}`, token)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestOrders(t *testing.T) {
	app, store := newTestApp(t)
	clientID, token := registerAndLogin(t, app)

	status, _ := do(t, app, http.MethodGet, "/v1/order", "", "")
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = do(t, app, http.MethodGet, "/v1/order", "", "not-a-token")
	assert.Equal(t, http.StatusUnauthorized, status)

	status, body := do(t, app, http.MethodPost, "/v1/order",
		`{"client_id":1,"product_id":1,"quantity":2,"status":"Pending","total_price":21}`, token)
	require.Equal(t, http.StatusCreated, status)
	order := body["data"].(map[string]any)
	assert.Equal(t, float64(1), order["id"])
	assert.Equal(t, float64(21), order["total_price"])
	assert.Equal(t, 6, store.Products()[0].Stock)

	status, _ = do(t, app, http.MethodPost, "/v1/order",
		`{"client_id":1,"product_id":2,"quantity":50,"total_price":725}`, token)
	assert.Equal(t, http.StatusBadRequest, status, "more than the stock")

	status, _ = do(t, app, http.MethodPost, "/v1/order",
		`{"client_id":1,"product_id":99,"quantity":1,"total_price":1}`, token)
	assert.Equal(t, http.StatusNotFound, status)

	status, body = do(t, app, http.MethodGet, "/v1/order", "", token)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, body["data"], 1)

	status, body = do(t, app, http.MethodGet, "/v1/order/client/1", "", token)
	require.Equal(t, http.StatusOK, status)
	messages := body["messages"].([]any)
	require.Len(t, messages, 1)
	assert.True(t, strings.HasPrefix(messages[0].(string), common.OrderMessagePrefix))
	assert.Equal(t, int64(1), clientID)

	status, body = do(t, app, http.MethodGet, "/v1/order/client/7", "", token)
	assert.Equal(t, http.StatusForbidden, status, "another client's history")
	assert.Equal(t, "acceso denegado", body["message"])

	status, _ = do(t, app, http.MethodGet, "/v1/order/client/abc", "", token)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestRecoverMiddleware(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler(zap.NewNop())})
	RegisterMiddlewares(app, zap.NewNop())
	app.Get("/boom", func(*fiber.Ctx) error { panic("boom") })

	status, body := do(t, app, http.MethodGet, "/boom", "", "")
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "error interno", body["message"])
}
