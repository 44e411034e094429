package ports

import "time"

// NotificationVariant distinguishes success toasts from failure toasts
type NotificationVariant string

const (
	NotificationDefault     NotificationVariant = "default"
	NotificationDestructive NotificationVariant = "destructive"
)

// Notification is a transient message produced by a user-triggered mutation
type Notification struct {
	ID          string              `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Variant     NotificationVariant `json:"variant"`
	CreatedAt   time.Time           `json:"created_at"`
}

// Notifier publishes transient notifications to whoever renders them
type Notifier interface {
	Notify(title, description string, variant NotificationVariant)
}

// NotificationFeed hands pending notifications to the presentation layer
type NotificationFeed interface {
	Drain() []Notification
}
