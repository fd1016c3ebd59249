// internal/domain/notice.go
package domain

import "time"

type NoticeLevel string

const (
	NoticeSuccess NoticeLevel = "success"
	NoticeInfo    NoticeLevel = "info"
	NoticeError   NoticeLevel = "error"
)

// Notice is a transient user-visible message with explicit show/dismiss
// timestamps, replacing ad-hoc timer-driven popups.
type Notice struct {
	ID        string
	Message   string
	Level     NoticeLevel
	ShownAt   time.Time
	DismissAt time.Time
}

// Active reports whether the notice should still be displayed at now.
func (n Notice) Active(now time.Time) bool {
	return !now.Before(n.ShownAt) && now.Before(n.DismissAt)
}
