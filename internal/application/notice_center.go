// internal/application/notice_center.go
package application

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/egokay/storefront.git/internal/domain"
	"github.com/egokay/storefront.git/internal/ports"
)

// NoticeCenter collects transient user-visible notices, keyed by user so one
// user's toasts never surface in another's feed. Notices carry explicit
// show/dismiss timestamps instead of being driven by scattered timers;
// expired ones are pruned on read.
type NoticeCenter struct {
	mu      sync.Mutex
	clock   ports.Clock
	ttl     time.Duration
	notices map[int64][]domain.Notice
}

func NewNoticeCenter(clock ports.Clock, ttl time.Duration) *NoticeCenter {
	if ttl <= 0 {
		ttl = 3 * time.Second
	}
	return &NoticeCenter{clock: clock, ttl: ttl, notices: make(map[int64][]domain.Notice)}
}

func (n *NoticeCenter) Push(userID int64, level domain.NoticeLevel, message string) domain.Notice {
	now := n.clock.Now()
	notice := domain.Notice{
		ID:        uuid.NewString(),
		Message:   message,
		Level:     level,
		ShownAt:   now,
		DismissAt: now.Add(n.ttl),
	}
	n.mu.Lock()
	n.notices[userID] = append(n.notices[userID], notice)
	n.mu.Unlock()
	return notice
}

// Active returns the user's notices still visible at the current time and
// drops the rest.
func (n *NoticeCenter) Active(userID int64) []domain.Notice {
	now := n.clock.Now()
	n.mu.Lock()
	defer n.mu.Unlock()
	current := n.notices[userID]
	kept := current[:0]
	for _, notice := range current {
		if notice.Active(now) {
			kept = append(kept, notice)
		}
	}
	if len(kept) == 0 {
		delete(n.notices, userID)
		return nil
	}
	n.notices[userID] = kept
	out := make([]domain.Notice, len(kept))
	copy(out, kept)
	return out
}

// Dismiss hides one of the user's notices before its scheduled dismiss time.
func (n *NoticeCenter) Dismiss(userID int64, id string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	current := n.notices[userID]
	kept := current[:0]
	for _, notice := range current {
		if notice.ID != id {
			kept = append(kept, notice)
		}
	}
	if len(kept) == 0 {
		delete(n.notices, userID)
		return
	}
	n.notices[userID] = kept
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock is the wall-clock implementation used outside tests.
var SystemClock ports.Clock = systemClock{}
