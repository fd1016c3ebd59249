// internal/domain/notice_test.go
package domain

import (
	"testing"
	"time"
)

func TestNotice_Active(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	notice := Notice{
		ID:        "n1",
		Message:   "ok",
		Level:     NoticeSuccess,
		ShownAt:   base,
		DismissAt: base.Add(3 * time.Second),
	}

	tests := []struct {
		name string
		now  time.Time
		want bool
	}{
		{"before shown", base.Add(-time.Second), false},
		{"at shown", base, true},
		{"mid window", base.Add(time.Second), true},
		{"at dismiss", base.Add(3 * time.Second), false},
		{"after dismiss", base.Add(time.Minute), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := notice.Active(tt.now); got != tt.want {
				t.Errorf("Active(%s) = %v, want %v", tt.now, got, tt.want)
			}
		})
	}
}
