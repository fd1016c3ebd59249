// internal/application/catalog_service.go
package application

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/egokay/storefront.git/internal/domain"
	"github.com/egokay/storefront.git/internal/ports"
)

// Quantity selector bounds: at most ten units per add, never more than the
// stock remaining after what is already in the cart.
const maxSelectableQuantity = 10

// CatalogService serves product, category and campaign reads. Product lists
// are always fetched fresh so a category re-selection re-reads current
// stock; categories and campaigns go through the cache.
type CatalogService struct {
	repo    ports.StoreRepositoryPort
	cache   ports.CachePort
	notices *NoticeCenter
}

func NewCatalogService(repo ports.StoreRepositoryPort, cache ports.CachePort, notices *NoticeCenter) *CatalogService {
	return &CatalogService{repo: repo, cache: cache, notices: notices}
}

// ListProducts lists products, filtered by category when categoryID is
// nonzero (zero is the "all" sentinel).
func (s *CatalogService) ListProducts(ctx context.Context, sess *domain.Session, categoryID int64) ([]domain.Product, error) {
	return s.repo.ListProducts(ctx, sess.Token, categoryID)
}

func (s *CatalogService) GetProduct(ctx context.Context, sess *domain.Session, id int64) (*domain.Product, error) {
	product, err := s.repo.GetProduct(ctx, sess.Token, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("product %d: %w", id, ErrNotFound)
	}
	return product, nil
}

func (s *CatalogService) ListCategories(ctx context.Context, sess *domain.Session) ([]domain.Category, error) {
	var cached []domain.Category
	if s.cacheGet(ctx, "catalog:categories", &cached) {
		return cached, nil
	}
	categories, err := s.repo.ListCategories(ctx, sess.Token)
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, "catalog:categories", categories)
	return categories, nil
}

func (s *CatalogService) ListCampaigns(ctx context.Context, sess *domain.Session) ([]domain.Campaign, error) {
	var cached []domain.Campaign
	if s.cacheGet(ctx, "catalog:campaigns", &cached) {
		return cached, nil
	}
	campaigns, err := s.repo.ListCampaigns(ctx, sess.Token)
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, "catalog:campaigns", campaigns)
	return campaigns, nil
}

func (s *CatalogService) GetCampaign(ctx context.Context, sess *domain.Session, documentID string) (*domain.Campaign, error) {
	campaign, err := s.repo.GetCampaign(ctx, sess.Token, documentID)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, fmt.Errorf("campaign %s: %w", documentID, ErrNotFound)
	}
	return campaign, nil
}

// SelectQuantity clamps a requested quantity-selector value to
// [1, min(remaining stock, 10)], where remaining accounts for units already
// in the cart. It re-reads stock from the store on every call. A product
// whose remaining stock is exhausted yields 0 with an error notice, matching
// the selector resetting itself.
func (s *CatalogService) SelectQuantity(ctx context.Context, sess *domain.Session, cart *domain.Cart, productID, requested int64) (int64, error) {
	product, err := s.repo.GetProduct(ctx, sess.Token, productID)
	if err != nil || product == nil {
		s.notices.Push(sess.UserID, domain.NoticeError, "Stok kontrolü sırasında bir hata oluştu.")
		if err == nil {
			err = fmt.Errorf("product %d: %w", productID, ErrNotFound)
		}
		return 0, err
	}

	inCart := cart.Quantity(productID)
	remaining := product.StockQuantity - inCart
	if remaining <= 0 {
		s.notices.Push(sess.UserID, domain.NoticeError,
			fmt.Sprintf("Bu ürün için sepetinizde maksimum adete (%d) ulaştınız.", product.StockQuantity))
		return 0, nil
	}

	maxAllowed := remaining
	if maxAllowed > maxSelectableQuantity {
		maxAllowed = maxSelectableQuantity
	}
	clamped := requested
	if clamped < 1 {
		clamped = 1
	}
	if clamped > maxAllowed {
		clamped = maxAllowed
	}
	if requested > maxAllowed {
		s.notices.Push(sess.UserID, domain.NoticeInfo,
			fmt.Sprintf("Sepetinizde %d adet var. En fazla %d adet daha ekleyebilirsiniz.", inCart, maxAllowed))
	}
	return clamped, nil
}

func (s *CatalogService) cacheGet(ctx context.Context, key string, out interface{}) bool {
	if s.cache == nil {
		return false
	}
	data, err := s.cache.Get(ctx, key)
	if err != nil {
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		log.Printf("failed to decode cached %s: %v", key, err)
		return false
	}
	return true
}

func (s *CatalogService) cacheSet(ctx context.Context, key string, value interface{}) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, value); err != nil {
		log.Printf("failed to cache %s: %v", key, err)
	}
}
