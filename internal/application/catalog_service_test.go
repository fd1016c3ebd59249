// internal/application/catalog_service_test.go
package application

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"

	"github.com/egokay/storefront.git/internal/domain"
	"github.com/egokay/storefront.git/internal/ports"
)

// memoryCache is an in-process ports.CachePort for tests.
type memoryCache struct {
	values map[string][]byte
}

func newMemoryCache() *memoryCache {
	return &memoryCache{values: make(map[string][]byte)}
}

func (m *memoryCache) Get(ctx context.Context, key string) ([]byte, error) {
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
	m.values[key] = data
	return nil
}

func (m *memoryCache) DeleteByPrefix(ctx context.Context, prefix string) error {
	for key := range m.values {
		if len(key) >= len(prefix) && key[:len(prefix)] == prefix {
			delete(m.values, key)
		}
	}
	return nil
}

func (m *memoryCache) Ping(ctx context.Context) error { return nil }

func TestCatalogService_ListCategoriesCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := ports.NewMockStoreRepositoryPort(ctrl)
	cache := newMemoryCache()
	notices := NewNoticeCenter(newFakeClock(), time.Minute)
	svc := NewCatalogService(repo, cache, notices)

	sess := testSession()
	categories := []domain.Category{{ID: 1, Name: "Meyve"}, {ID: 2, Name: "Sebze"}}
	repo.EXPECT().ListCategories(gomock.Any(), "token-1").Return(categories, nil).Times(1)

	for i := 0; i < 2; i++ {
		got, err := svc.ListCategories(context.Background(), sess)
		if err != nil {
			t.Fatalf("ListCategories() unexpected error: %v", err)
		}
		if len(got) != 2 || got[0].Name != "Meyve" {
			t.Errorf("ListCategories() = %v", got)
		}
	}
}

func TestCatalogService_GetProductNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := ports.NewMockStoreRepositoryPort(ctrl)
	svc := NewCatalogService(repo, nil, NewNoticeCenter(newFakeClock(), time.Minute))

	repo.EXPECT().GetProduct(gomock.Any(), "token-1", int64(9)).Return(nil, nil)

	_, err := svc.GetProduct(context.Background(), testSession(), 9)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("GetProduct() error = %v, want ErrNotFound", err)
	}
}

func TestCatalogService_SelectQuantity(t *testing.T) {
	sess := testSession()
	product := &domain.Product{ID: 1, Name: "Kavun", Price: decimal.NewFromInt(10), StockQuantity: 12}

	tests := []struct {
		name       string
		stock      int64
		inCart     int64
		requested  int64
		want       int64
		wantNotice string
		wantLevel  domain.NoticeLevel
	}{
		{"within bounds", 12, 0, 4, 4, "", ""},
		{"clamped to ten", 12, 0, 11, 10, "Sepetinizde 0 adet var. En fazla 10 adet daha ekleyebilirsiniz.", domain.NoticeInfo},
		{"clamped to remaining stock", 12, 9, 5, 3, "Sepetinizde 9 adet var. En fazla 3 adet daha ekleyebilirsiniz.", domain.NoticeInfo},
		{"below one", 12, 0, 0, 1, "", ""},
		{"stock exhausted", 4, 4, 1, 0, "Bu ürün için sepetinizde maksimum adete (4) ulaştınız.", domain.NoticeError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := ports.NewMockStoreRepositoryPort(ctrl)
			notices := NewNoticeCenter(newFakeClock(), time.Minute)
			svc := NewCatalogService(repo, nil, notices)

			p := *product
			p.StockQuantity = tt.stock
			repo.EXPECT().GetProduct(gomock.Any(), "token-1", int64(1)).Return(&p, nil)

			cart := domain.NewCart()
			if tt.inCart > 0 {
				cart.Add(domain.CartItem{ProductID: 1, Quantity: tt.inCart, Price: decimal.NewFromInt(10)})
			}

			got, err := svc.SelectQuantity(context.Background(), sess, cart, 1, tt.requested)
			if err != nil {
				t.Fatalf("SelectQuantity() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("SelectQuantity() = %d, want %d", got, tt.want)
			}

			active := notices.Active(sess.UserID)
			if tt.wantNotice == "" {
				if len(active) != 0 {
					t.Errorf("unexpected notices: %v", active)
				}
				return
			}
			if len(active) != 1 || active[0].Message != tt.wantNotice || active[0].Level != tt.wantLevel {
				t.Errorf("notices = %v, want %q (%s)", active, tt.wantNotice, tt.wantLevel)
			}
		})
	}
}
