// internal/adapters/httpapi/server_test.go
package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/egokay/storefront.git/internal/application"
	"github.com/egokay/storefront.git/internal/domain"
	"github.com/egokay/storefront.git/internal/ports"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type memoryCache struct {
	mu     sync.Mutex
	values map[string][]byte
}

func newMemoryCache() *memoryCache {
	return &memoryCache{values: make(map[string][]byte)}
}

func (m *memoryCache) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.values[key]
	if !ok {
		return nil, errors.New("cache miss")
	}
	return data, nil
}

func (m *memoryCache) Set(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = data
	return nil
}

func (m *memoryCache) DeleteByPrefix(ctx context.Context, prefix string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for key := range m.values {
		if len(key) >= len(prefix) && key[:len(prefix)] == prefix {
			delete(m.values, key)
		}
	}
	return nil
}

func (m *memoryCache) Ping(ctx context.Context) error { return nil }

type serverFixture struct {
	repo     *ports.MockStoreRepositoryPort
	authPort *ports.MockAuthPort
	router   *gin.Engine
	token    string
}

// newServerFixture builds a router over real services with mocked ports and
// opens a logged-in session.
func newServerFixture(t *testing.T) *serverFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &serverFixture{
		repo:     ports.NewMockStoreRepositoryPort(ctrl),
		authPort: ports.NewMockAuthPort(ctrl),
		token:    "token-abc",
	}

	cache := newMemoryCache()
	notices := application.NewNoticeCenter(application.SystemClock, time.Minute)
	sessions := application.NewSessionService(f.authPort, cache)
	server := NewServer(Services{
		Sessions:  sessions,
		Catalog:   application.NewCatalogService(f.repo, cache, notices),
		Cart:      application.NewCartService(f.repo, notices),
		Checkout:  application.NewCheckoutService(f.repo, nil, nil, notices, application.SystemClock),
		Favorites: application.NewFavoritesService(f.repo, notices),
		Account:   application.NewAccountService(f.repo),
		Notices:   notices,
	})
	f.router = server.Router()

	f.authPort.EXPECT().Login(gomock.Any(), "ada@example.com", "secret").
		Return(f.token, &domain.User{ID: 7, Username: "ada"}, nil)
	resp := f.do(t, http.MethodPost, "/auth/login", `{"identifier": "ada@example.com", "password": "secret"}`, false)
	require.Equal(t, http.StatusOK, resp.Code)
	return f
}

func (f *serverFixture) do(t *testing.T, method, path, body string, authed bool) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		req.Header.Set("Authorization", "Bearer "+f.token)
	}
	recorder := httptest.NewRecorder()
	f.router.ServeHTTP(recorder, req)
	return recorder
}

func TestServer_Health(t *testing.T) {
	f := newServerFixture(t)
	resp := f.do(t, http.MethodGet, "/health", "", false)
	assert.Equal(t, http.StatusOK, resp.Code)
}

func TestServer_RequiresBearerToken(t *testing.T) {
	f := newServerFixture(t)
	// No Authorization header at all.
	resp := f.do(t, http.MethodGet, "/products", "", false)
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestServer_ListProducts(t *testing.T) {
	f := newServerFixture(t)

	f.repo.EXPECT().ListProducts(gomock.Any(), f.token, int64(0)).Return([]domain.Product{
		{ID: 1, DocumentID: "doc-p1", Name: "Kavun", Price: decimal.RequireFromString("50.25"), StockQuantity: 5},
	}, nil)

	resp := f.do(t, http.MethodGet, "/products", "", true)
	require.Equal(t, http.StatusOK, resp.Code)

	var products []ProductResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &products))
	require.Len(t, products, 1)
	assert.Equal(t, "Kavun", products[0].Name)
	assert.True(t, products[0].Price.Equal(decimal.RequireFromString("50.25")))
}

func TestServer_ListProductsByCategory(t *testing.T) {
	f := newServerFixture(t)
	f.repo.EXPECT().ListProducts(gomock.Any(), f.token, int64(3)).Return(nil, nil)

	resp := f.do(t, http.MethodGet, "/products?category=3", "", true)
	assert.Equal(t, http.StatusOK, resp.Code)
}

func TestServer_CartRoundTrip(t *testing.T) {
	f := newServerFixture(t)

	product := &domain.Product{ID: 1, DocumentID: "doc-p1", Name: "Kavun", Price: decimal.RequireFromString("50.25"), StockQuantity: 5}
	f.repo.EXPECT().GetProduct(gomock.Any(), f.token, int64(1)).Return(product, nil)

	resp := f.do(t, http.MethodPost, "/cart/items", `{"product_id": 1, "quantity": 2}`, true)
	require.Equal(t, http.StatusOK, resp.Code)

	var cart CartResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &cart))
	require.Len(t, cart.Items, 1)
	assert.Equal(t, int64(2), cart.Items[0].Quantity)
	assert.True(t, cart.Total.Equal(decimal.RequireFromString("100.50")))

	// The add produced a success notice.
	notices := f.do(t, http.MethodGet, "/notices", "", true)
	require.Equal(t, http.StatusOK, notices.Code)
	var active []NoticeResponse
	require.NoError(t, json.Unmarshal(notices.Body.Bytes(), &active))
	require.Len(t, active, 1)
	assert.Equal(t, "2 adet Kavun sepete eklendi.", active[0].Message)

	// Remove empties the cart.
	removed := f.do(t, http.MethodDelete, "/cart/items/1", "", true)
	require.Equal(t, http.StatusOK, removed.Code)
	require.NoError(t, json.Unmarshal(removed.Body.Bytes(), &cart))
	assert.Empty(t, cart.Items)
}

func TestServer_CheckoutInsufficientBalance(t *testing.T) {
	f := newServerFixture(t)

	product := &domain.Product{ID: 1, DocumentID: "doc-p1", Name: "Kavun", Price: decimal.RequireFromString("50.25"), StockQuantity: 5}
	f.repo.EXPECT().GetProduct(gomock.Any(), f.token, int64(1)).Return(product, nil).Times(2)
	f.repo.EXPECT().FindPaymentMethodByCard(gomock.Any(), f.token, "4111", "123").
		Return(&domain.PaymentMethod{DocumentID: "doc-c1", Balance: decimal.NewFromInt(10)}, nil)

	require.Equal(t, http.StatusOK, f.do(t, http.MethodPost, "/cart/items", `{"product_id": 1, "quantity": 2}`, true).Code)

	resp := f.do(t, http.MethodPost, "/checkout", `{"card_number": "4111", "cvv": "123", "address_id": 11}`, true)
	require.Equal(t, http.StatusPaymentRequired, resp.Code)

	var errResp ErrorResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &errResp))
	assert.Equal(t, "INSUFFICIENT_BALANCE", errResp.Error)
}

func TestServer_CheckoutEmptyCart(t *testing.T) {
	f := newServerFixture(t)
	resp := f.do(t, http.MethodPost, "/checkout", `{"card_number": "4111", "cvv": "123", "address_id": 11}`, true)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestServer_PaymentMethodsMaskCardNumber(t *testing.T) {
	f := newServerFixture(t)

	f.repo.EXPECT().ListPaymentMethods(gomock.Any(), f.token, int64(7)).Return([]domain.PaymentMethod{
		{ID: 4, DocumentID: "doc-pm4", HolderName: "Ada", CardNumber: "4111111111111111", Balance: decimal.NewFromInt(10000)},
	}, nil)

	resp := f.do(t, http.MethodGet, "/payment-methods", "", true)
	require.Equal(t, http.StatusOK, resp.Code)

	var methods []PaymentMethodResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &methods))
	require.Len(t, methods, 1)
	assert.Equal(t, "**** **** **** 1111", methods[0].CardNumber)
}

func TestServer_SelectQuantityClamps(t *testing.T) {
	f := newServerFixture(t)

	product := &domain.Product{ID: 1, DocumentID: "doc-p1", Name: "Kavun", Price: decimal.NewFromInt(10), StockQuantity: 4}
	f.repo.EXPECT().GetProduct(gomock.Any(), f.token, int64(1)).Return(product, nil)

	resp := f.do(t, http.MethodPost, "/products/1/quantity", `{"quantity": 9}`, true)
	require.Equal(t, http.StatusOK, resp.Code)

	var out SelectQuantityResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))
	assert.Equal(t, int64(4), out.Quantity)
}

func TestServer_ConcurrentSessionRequests(t *testing.T) {
	f := newServerFixture(t)

	product := &domain.Product{ID: 1, DocumentID: "doc-p1", Name: "Kavun", Price: decimal.NewFromInt(2), StockQuantity: 10000}
	f.repo.EXPECT().GetProduct(gomock.Any(), f.token, int64(1)).Return(product, nil).AnyTimes()

	var wg sync.WaitGroup
	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 25; i++ {
				f.do(t, http.MethodPost, "/cart/items", `{"product_id": 1, "quantity": 1}`, true)
				f.do(t, http.MethodPost, "/products/1/quantity", `{"quantity": 2}`, true)
				f.do(t, http.MethodGet, "/cart", "", true)
			}
		}()
	}
	wg.Wait()

	resp := f.do(t, http.MethodGet, "/cart", "", true)
	require.Equal(t, http.StatusOK, resp.Code)

	var cart CartResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &cart))
	require.Len(t, cart.Items, 1)
	assert.Equal(t, int64(100), cart.Items[0].Quantity)
	assert.True(t, cart.Total.Equal(decimal.NewFromInt(200)))
}
