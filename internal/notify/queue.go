// Package notify keeps the queue of transient toast notifications. Every
// notification is dismissed automatically once its lifetime elapses; the UI
// only renders what List returns and subscribes to changes.
package notify

import (
	"log"
	"sync"
	"time"

	"github.com/pdftoolkit/pdf-toolkit/internal/model"
)

// Notifier is what the workspace needs to report outcomes
type Notifier interface {
	Success(message string) *model.Notification
	Error(message string) *model.Notification
}

// Timer is the part of *time.Timer the queue relies on
type Timer interface {
	Stop() bool
}

// AfterFunc schedules f after d, like time.AfterFunc
type AfterFunc func(d time.Duration, f func()) Timer

// Option configures a Queue
type Option func(*Queue)

// WithAfterFunc replaces the timer factory (tests use a manual clock)
func WithAfterFunc(fn AfterFunc) Option {
	return func(q *Queue) {
		q.afterFunc = fn
	}
}

// Queue holds visible notifications, oldest first
type Queue struct {
	mu        sync.Mutex
	items     []*model.Notification
	timers    map[string]Timer
	lifetime  time.Duration
	afterFunc AfterFunc
	onChange  func() // callback for UI updates
}

// NewQueue creates a queue whose notifications live for lifetime
func NewQueue(lifetime time.Duration, opts ...Option) *Queue {
	if lifetime <= 0 {
		lifetime = model.DefaultNotificationLifetime
	}
	q := &Queue{
		timers:   make(map[string]Timer),
		lifetime: lifetime,
		afterFunc: func(d time.Duration, f func()) Timer {
			return time.AfterFunc(d, f)
		},
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// SetChangeCallback sets the function called after every queue change
func (q *Queue) SetChangeCallback(callback func()) {
	q.mu.Lock()
	q.onChange = callback
	q.mu.Unlock()
}

// SetLifetime changes the lifetime of notifications pushed from now on
func (q *Queue) SetLifetime(d time.Duration) {
	if d <= 0 {
		return
	}
	q.mu.Lock()
	q.lifetime = d
	q.mu.Unlock()
}

// Lifetime returns the current notification lifetime
func (q *Queue) Lifetime() time.Duration {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.lifetime
}

// Push appends a notification and schedules its dismissal
func (q *Queue) Push(message string, severity model.Severity) *model.Notification {
	q.mu.Lock()
	n := model.NewNotification(message, severity, q.lifetime)
	q.items = append(q.items, n)
	id := n.ID
	q.timers[id] = q.afterFunc(n.Lifetime, func() {
		q.Dismiss(id)
	})
	q.mu.Unlock()

	log.Printf("Toast [%s]: %s", severity, message)
	q.notifyChange()
	return n
}

// Success pushes a success notification
func (q *Queue) Success(message string) *model.Notification {
	return q.Push(message, model.SeveritySuccess)
}

// Error pushes an error notification
func (q *Queue) Error(message string) *model.Notification {
	return q.Push(message, model.SeverityError)
}

// Dismiss removes a notification; it reports false if id is unknown
func (q *Queue) Dismiss(id string) bool {
	q.mu.Lock()
	index := -1
	for i, n := range q.items {
		if n.ID == id {
			index = i
			break
		}
	}
	if index < 0 {
		q.mu.Unlock()
		return false
	}

	q.items = append(q.items[:index], q.items[index+1:]...)
	if timer, ok := q.timers[id]; ok {
		timer.Stop()
		delete(q.timers, id)
	}
	q.mu.Unlock()

	q.notifyChange()
	return true
}

// Clear dismisses everything
func (q *Queue) Clear() {
	q.mu.Lock()
	for id, timer := range q.timers {
		timer.Stop()
		delete(q.timers, id)
	}
	q.items = nil
	q.mu.Unlock()

	q.notifyChange()
}

// List returns a copy of visible notifications, oldest first
func (q *Queue) List() []*model.Notification {
	q.mu.Lock()
	defer q.mu.Unlock()

	items := make([]*model.Notification, len(q.items))
	copy(items, q.items)
	return items
}

// Len returns the number of visible notifications
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// notifyChange calls the change callback if set
func (q *Queue) notifyChange() {
	q.mu.Lock()
	cb := q.onChange
	q.mu.Unlock()
	if cb != nil {
		cb()
	}
}
