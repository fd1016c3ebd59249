// internal/application/favorites_service.go
package application

import (
	"context"
	"fmt"
	"hash/fnv"
	"sync"

	"github.com/egokay/storefront.git/internal/domain"
	"github.com/egokay/storefront.git/internal/ports"
)

// favoriteLockStripes bounds the toggle lock set; distinct pairs may share
// a stripe, which only costs contention, never correctness.
const favoriteLockStripes = 64

// FavoritesService toggles favorite records keyed by (user, product).
// Toggles are serialized per pair so two rapid toggles cannot interleave
// their lookup and mutation against the remote store.
type FavoritesService struct {
	repo    ports.StoreRepositoryPort
	notices *NoticeCenter
	locks   [favoriteLockStripes]sync.Mutex
}

func NewFavoritesService(repo ports.StoreRepositoryPort, notices *NoticeCenter) *FavoritesService {
	return &FavoritesService{repo: repo, notices: notices}
}

func (s *FavoritesService) List(ctx context.Context, sess *domain.Session) ([]domain.Favorite, error) {
	return s.repo.ListFavorites(ctx, sess.Token, sess.UserID)
}

// Toggle looks up the (user, product) favorite: present means delete, absent
// means create. Returns whether the product is favorited afterwards.
func (s *FavoritesService) Toggle(ctx context.Context, sess *domain.Session, productID int64) (bool, error) {
	lock := s.pairLock(sess.UserID, productID)
	lock.Lock()
	defer lock.Unlock()

	favorite, err := s.repo.FindFavorite(ctx, sess.Token, sess.UserID, productID)
	if err != nil {
		s.notices.Push(sess.UserID, domain.NoticeError, "Favori işlemi sırasında bir hata oluştu.")
		return false, err
	}

	if favorite != nil {
		if err := s.repo.DeleteFavorite(ctx, sess.Token, favorite.DocumentID); err != nil {
			s.notices.Push(sess.UserID, domain.NoticeError, "Favori işlemi sırasında bir hata oluştu.")
			return true, err
		}
		s.notices.Push(sess.UserID, domain.NoticeInfo, "Ürün favorilerden kaldırıldı!")
		return false, nil
	}

	if _, err := s.repo.CreateFavorite(ctx, sess.Token, sess.UserID, productID); err != nil {
		s.notices.Push(sess.UserID, domain.NoticeError, "Favori işlemi sırasında bir hata oluştu.")
		return false, err
	}
	s.notices.Push(sess.UserID, domain.NoticeSuccess, "Ürün favorilere eklendi!")
	return true, nil
}

// Remove deletes a favorite record directly by its document id.
func (s *FavoritesService) Remove(ctx context.Context, sess *domain.Session, documentID string) error {
	if err := s.repo.DeleteFavorite(ctx, sess.Token, documentID); err != nil {
		s.notices.Push(sess.UserID, domain.NoticeError, "Favori silinirken bir hata oluştu")
		return err
	}
	s.notices.Push(sess.UserID, domain.NoticeSuccess, "Ürün favorilerden kaldırıldı")
	return nil
}

func (s *FavoritesService) pairLock(userID, productID int64) *sync.Mutex {
	h := fnv.New64a()
	fmt.Fprintf(h, "%d:%d", userID, productID)
	return &s.locks[h.Sum64()%favoriteLockStripes]
}
