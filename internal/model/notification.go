package model

import "time"

// Severity tags a notification as good or bad news
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// DefaultNotificationLifetime is how long a toast stays visible
const DefaultNotificationLifetime = 5 * time.Second

// Notification is an ephemeral user-facing message
type Notification struct {
	ID        string
	Message   string
	Severity  Severity
	CreatedAt time.Time
	Lifetime  time.Duration
}

// NewNotification creates a notification that lives for lifetime
func NewNotification(message string, severity Severity, lifetime time.Duration) *Notification {
	if lifetime <= 0 {
		lifetime = DefaultNotificationLifetime
	}
	return &Notification{
		ID:        NewID(NotificationIDPrefix),
		Message:   message,
		Severity:  severity,
		CreatedAt: time.Now(),
		Lifetime:  lifetime,
	}
}

// ExpiresAt returns the moment the notification should disappear
func (n *Notification) ExpiresAt() time.Time {
	return n.CreatedAt.Add(n.Lifetime)
}

// Expired reports whether the notification lifetime has elapsed at now
func (n *Notification) Expired(now time.Time) bool {
	return !now.Before(n.ExpiresAt())
}

// IsError is a convenience for rendering
func (n *Notification) IsError() bool {
	return n.Severity == SeverityError
}
