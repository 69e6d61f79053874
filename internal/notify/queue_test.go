package notify

import (
	"sync"
	"testing"
	"time"

	"github.com/pdftoolkit/pdf-toolkit/internal/model"
)

// manualClock collects scheduled callbacks so tests can fire them on demand
type manualClock struct {
	mu      sync.Mutex
	pending []*manualTimer
}

type manualTimer struct {
	d       time.Duration
	f       func()
	stopped bool
}

func (t *manualTimer) Stop() bool {
	was := !t.stopped
	t.stopped = true
	return was
}

func (c *manualClock) AfterFunc(d time.Duration, f func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &manualTimer{d: d, f: f}
	c.pending = append(c.pending, t)
	return t
}

// fireAll runs every timer that has not been stopped
func (c *manualClock) fireAll() {
	c.mu.Lock()
	timers := c.pending
	c.pending = nil
	c.mu.Unlock()

	for _, t := range timers {
		if !t.stopped {
			t.f()
		}
	}
}

func TestNewQueue(t *testing.T) {
	q := NewQueue(0)

	if q.Lifetime() != model.DefaultNotificationLifetime {
		t.Errorf("Expected default lifetime %v, got %v", model.DefaultNotificationLifetime, q.Lifetime())
	}
	if q.Len() != 0 {
		t.Errorf("Expected empty queue, got %d items", q.Len())
	}
}

func TestPush_AutoDismiss(t *testing.T) {
	clock := &manualClock{}
	q := NewQueue(3*time.Second, WithAfterFunc(clock.AfterFunc))

	n := q.Success("PDFs merged successfully!")
	q.Error("Please enter valid pages")

	if q.Len() != 2 {
		t.Fatalf("Expected 2 notifications, got %d", q.Len())
	}
	if n.Lifetime != 3*time.Second {
		t.Errorf("Expected lifetime 3s, got %v", n.Lifetime)
	}
	if clock.pending[0].d != 3*time.Second {
		t.Errorf("Expected timer for 3s, got %v", clock.pending[0].d)
	}

	clock.fireAll()

	if q.Len() != 0 {
		t.Errorf("Expected all notifications dismissed, got %d", q.Len())
	}
}

func TestDismiss(t *testing.T) {
	clock := &manualClock{}
	q := NewQueue(time.Second, WithAfterFunc(clock.AfterFunc))

	first := q.Success("one")
	second := q.Error("two")
	third := q.Success("three")

	if !q.Dismiss(second.ID) {
		t.Error("Expected Dismiss to report true for a visible notification")
	}
	if q.Dismiss(second.ID) {
		t.Error("Expected Dismiss to report false for an already dismissed notification")
	}

	items := q.List()
	if len(items) != 2 || items[0].ID != first.ID || items[1].ID != third.ID {
		t.Errorf("Expected [one three] in order, got %v", items)
	}

	// the dismissed notification's timer was stopped
	if !clock.pending[1].stopped {
		t.Error("Expected timer of dismissed notification to be stopped")
	}
}

func TestChangeCallback(t *testing.T) {
	clock := &manualClock{}
	q := NewQueue(time.Second, WithAfterFunc(clock.AfterFunc))

	calls := 0
	q.SetChangeCallback(func() { calls++ })

	n := q.Success("saved")
	q.Dismiss(n.ID)
	q.Clear()

	if calls != 3 {
		t.Errorf("Expected 3 change callbacks, got %d", calls)
	}
}

func TestSetLifetime(t *testing.T) {
	clock := &manualClock{}
	q := NewQueue(time.Second, WithAfterFunc(clock.AfterFunc))

	q.SetLifetime(10 * time.Second)
	q.SetLifetime(-1) // ignored

	n := q.Success("later")
	if n.Lifetime != 10*time.Second {
		t.Errorf("Expected lifetime 10s, got %v", n.Lifetime)
	}
}

func TestQueue_RealTimer(t *testing.T) {
	q := NewQueue(20 * time.Millisecond)
	q.Success("short lived")

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if q.Len() == 0 {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Error("Expected notification to be dismissed by its timer")
}

func TestList_IsACopy(t *testing.T) {
	q := NewQueue(time.Hour)
	q.Success("a")

	items := q.List()
	items[0] = nil

	if q.List()[0] == nil {
		t.Error("Mutating List() result must not change the queue")
	}
	q.Clear()
}
