package orders

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmitrijs2005/posclient/internal/client/client"
	"github.com/dmitrijs2005/posclient/internal/client/models"
	"github.com/dmitrijs2005/posclient/internal/common"
	"github.com/dmitrijs2005/posclient/internal/logging"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newRepo(t *testing.T, h http.HandlerFunc) *HTTPRepository {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c, err := client.NewAPIClient(srv.URL, 2*time.Second)
	require.NoError(t, err)
	return NewHTTPRepository(c, logging.NewNop())
}

func TestCreateOrder_PostsSnakeCaseBody(t *testing.T) {
	repo := newRepo(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/order", r.URL.Path)

		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"client_id":1,"product_id":2,"quantity":3,"status":"Pending","total_price":31.5}`, string(body))

		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"success":true,"data":{"id":44}}`)
	})

	resp, err := repo.CreateOrder(context.Background(), models.Order{
		ClientID: 1, ProductID: 2, Quantity: 3,
		Status:     models.OrderStatusPending,
		TotalPrice: decimal.RequireFromString("31.5"),
	})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.JSONEq(t, `{"id":44}`, string(resp.Data))
}

func TestCreateOrder_PropagatesTransportError(t *testing.T) {
	repo := newRepo(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	_, err := repo.CreateOrder(context.Background(), models.Order{})
	require.Error(t, err)
	assert.Equal(t, client.MsgForbidden, err.Error())
}

func TestListOrders(t *testing.T) {
	t.Run("data", func(t *testing.T) {
		repo := newRepo(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = io.WriteString(w, `{"data":[{"id":11,"client_id":1,"product_id":1,"quantity":2,"status":"Pending","total_price":21}]}`)
		})
		got, err := repo.ListOrders(context.Background())
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, int64(11), got[0].ID)
	})

	for name, body := range map[string]string{"missing": `{}`, "null": `{"data":null}`, "empty body": ``} {
		t.Run(name, func(t *testing.T) {
			repo := newRepo(t, func(w http.ResponseWriter, _ *http.Request) {
				_, _ = io.WriteString(w, body)
			})
			got, err := repo.ListOrders(context.Background())
			require.NoError(t, err)
			assert.NotNil(t, got)
			assert.Empty(t, got)
		})
	}

	t.Run("bad data", func(t *testing.T) {
		repo := newRepo(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = io.WriteString(w, `{"data":"nope"}`)
		})
		_, err := repo.ListOrders(context.Background())
		require.ErrorIs(t, err, client.ErrUnexpectedResponse)
	})
}

func TestOrdersByClientID_SkipsMalformedEntries(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/order/client/7", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string][]string{"messages": {
			`Orden recibida: {"client_id":7,"product_id":2,"quantity":1,"status":"Pending","total_price":14.5}`,
			"not json",
		}})
	}))
	defer srv.Close()

	c, err := client.NewAPIClient(srv.URL, time.Second)
	require.NoError(t, err)
	repo := NewHTTPRepository(c, logging.NewZapLogger(zap.New(core)))

	h, err := repo.OrdersByClientID(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, h.Orders, 1)
	assert.Equal(t, 1, h.Skipped)
	assert.Equal(t, int64(2), h.Orders[0].ProductID)
	assert.True(t, h.Orders[0].TotalPrice.Equal(decimal.RequireFromString("14.5")))

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "skipped unreadable order entries", logs.All()[0].Message)
}

func TestOrdersByClientID_NoMessages(t *testing.T) {
	repo := newRepo(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"success":true}`)
	})

	h, err := repo.OrdersByClientID(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, h.Orders)
	assert.Zero(t, h.Skipped)
}

func TestOrdersByClientID_NotFound(t *testing.T) {
	repo := newRepo(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := repo.OrdersByClientID(context.Background(), 1)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, client.StatusCode(err))
}

func TestParseOrderMessages(t *testing.T) {
	h, err := ParseOrderMessages([]string{
		`Orden recibida: {"id":1,"client_id":1,"product_id":1,"quantity":1,"status":"Completed","total_price":10.5}`,
		`{"id":2,"client_id":1,"product_id":2,"quantity":2,"status":"Pending","total_price":29}`,
		`Orden recibida: {broken`,
		``,
		`Orden recibida: null`,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyOrderEntry)
	assert.Equal(t, 3, h.Skipped)
	require.Len(t, h.Orders, 2)
	assert.Equal(t, models.OrderStatusCompleted, h.Orders[0].Status)
	assert.Equal(t, int64(2), h.Orders[1].ID)

	h, err = ParseOrderMessages(nil)
	require.NoError(t, err)
	assert.NotNil(t, h.Orders)
	assert.Zero(t, h.Skipped)
}

func TestParseOrderMessage_Null(t *testing.T) {
	_, err := ParseOrderMessage(common.OrderMessagePrefix + "null")
	require.ErrorIs(t, err, ErrEmptyOrderEntry)

	_, err = ParseOrderMessage("  null ")
	require.ErrorIs(t, err, ErrEmptyOrderEntry)
}
