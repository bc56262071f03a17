package worker

import (
	"context"
	"testing"
	"time"
)

func TestLimiter_AllowWithinBurst(t *testing.T) {
	l := NewLimiter(1, 2)

	if !l.Allow() {
		t.Error("Expected first request to be allowed")
	}
	if !l.Allow() {
		t.Error("Expected second request within burst to be allowed")
	}
	if l.Allow() {
		t.Error("Expected third immediate request to be throttled")
	}
}

func TestLimiter_WaitHonorsContext(t *testing.T) {
	l := NewLimiter(0.001, 1)
	l.Allow() // drain the burst

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if err := l.Wait(ctx); err == nil {
		t.Error("Expected context deadline error while throttled")
	}
}

func TestNewLimiter_Defaults(t *testing.T) {
	l := NewLimiter(0, 0)
	if !l.Allow() {
		t.Error("Expected defaulted limiter to allow a request")
	}
}
