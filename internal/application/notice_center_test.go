// internal/application/notice_center_test.go
package application

import (
	"testing"
	"time"

	"github.com/egokay/storefront.git/internal/domain"
)

// fakeClock is a manually advanced clock shared by the service tests.
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func TestNoticeCenter_ExpiresAfterTTL(t *testing.T) {
	clock := newFakeClock()
	center := NewNoticeCenter(clock, 3*time.Second)

	center.Push(1, domain.NoticeSuccess, "first")
	if got := len(center.Active(1)); got != 1 {
		t.Fatalf("Active() returned %d notices, want 1", got)
	}

	clock.Advance(2 * time.Second)
	center.Push(1, domain.NoticeInfo, "second")
	if got := len(center.Active(1)); got != 2 {
		t.Fatalf("Active() returned %d notices, want 2", got)
	}

	clock.Advance(time.Second + time.Millisecond)
	active := center.Active(1)
	if len(active) != 1 || active[0].Message != "second" {
		t.Errorf("Active() = %v, want only the second notice", active)
	}
}

func TestNoticeCenter_Dismiss(t *testing.T) {
	clock := newFakeClock()
	center := NewNoticeCenter(clock, time.Minute)

	kept := center.Push(1, domain.NoticeError, "kept")
	dropped := center.Push(1, domain.NoticeError, "dropped")
	center.Dismiss(1, dropped.ID)

	active := center.Active(1)
	if len(active) != 1 || active[0].ID != kept.ID {
		t.Errorf("Active() = %v, want only %s", active, kept.ID)
	}
}

func TestNoticeCenter_IsolatesUsers(t *testing.T) {
	clock := newFakeClock()
	center := NewNoticeCenter(clock, time.Minute)

	center.Push(1, domain.NoticeSuccess, "for user 1")
	if got := center.Active(2); len(got) != 0 {
		t.Errorf("Active(2) = %v, want empty", got)
	}
	if got := len(center.Active(1)); got != 1 {
		t.Errorf("Active(1) returned %d notices, want 1", got)
	}
}
