package notification

import "errors"

var (
	// ErrNotificationNotFound возвращается, когда уведомление не найдено
	ErrNotificationNotFound = errors.New("notification.repository: notification not found")
)
