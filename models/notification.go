package models

// NotificationType drives the icon shown next to a notification
type NotificationType string

const (
	NotificationInfo    NotificationType = "info"
	NotificationSuccess NotificationType = "success"
	NotificationWarning NotificationType = "warning"
)

// Notification is one entry of the in-app notification list
type Notification struct {
	ID      string           `json:"id"`
	Title   string           `json:"title"`
	Message string           `json:"message"`
	Time    string           `json:"time"`
	Type    NotificationType `json:"type"`
	Read    bool             `json:"read"`
}
