package models

import (
	"time"

	"github.com/m04kA/SMC-CourtService/internal/domain"
)

// NotificationResponse ответ с данными уведомления
type NotificationResponse struct {
	ID        int64     `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Read      bool      `json:"read"`
}

// NotificationListResponse список уведомлений со счетчиком непрочитанных
type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	UnreadCount   int                    `json:"unreadCount"`
}

// FromDomainNotification конвертирует domain модель в DTO
func FromDomainNotification(n *domain.Notification) *NotificationResponse {
	if n == nil {
		return nil
	}

	return &NotificationResponse{
		ID:        n.ID,
		Type:      string(n.Type),
		Title:     n.Title,
		Message:   n.Message,
		Timestamp: n.Timestamp,
		Read:      n.Read,
	}
}

// FromDomainNotificationList конвертирует список domain моделей в DTO
func FromDomainNotificationList(notifications []*domain.Notification, unread int) *NotificationListResponse {
	resp := &NotificationListResponse{
		Notifications: make([]NotificationResponse, 0, len(notifications)),
		UnreadCount:   unread,
	}

	for _, n := range notifications {
		if nResp := FromDomainNotification(n); nResp != nil {
			resp.Notifications = append(resp.Notifications, *nResp)
		}
	}

	return resp
}
