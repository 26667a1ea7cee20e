package domain

import "time"

// NotificationType represents the category of a notification
type NotificationType string

const (
	NotificationBooking  NotificationType = "booking"
	NotificationReview   NotificationType = "review"
	NotificationPayment  NotificationType = "payment"
	NotificationReminder NotificationType = "reminder"
)

// Notification represents a dashboard notification. Created only as a side
// effect of booking and review mutations; only the read flag is mutable.
type Notification struct {
	ID        int64
	Type      NotificationType
	Title     string
	Message   string
	Timestamp time.Time
	Read      bool
}
