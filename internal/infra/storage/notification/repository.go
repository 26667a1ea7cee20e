package notification

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/SMC-CourtService/internal/domain"
)

// Repository репозиторий уведомлений в памяти процесса.
// Коллекция append-only, мутируется только флаг прочтения.
type Repository struct {
	mu            sync.RWMutex
	notifications []*domain.Notification
	nextID        int64
}

// NewRepository создает пустой репозиторий уведомлений
func NewRepository() *Repository {
	return &Repository{nextID: 1}
}

// Create создает уведомление с read=false и добавляет его в начало коллекции
func (r *Repository) Create(_ context.Context, typ domain.NotificationType, title, message string, now time.Time) (*domain.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := &domain.Notification{
		ID:        r.nextID,
		Type:      typ,
		Title:     title,
		Message:   message,
		Timestamp: now,
		Read:      false,
	}
	r.nextID++

	r.notifications = append([]*domain.Notification{stored}, r.notifications...)

	result := *stored
	return &result, nil
}

// MarkRead помечает уведомление прочитанным.
// Отсутствующий ID - это no-op, а не ошибка (поведение витрины)
func (r *Repository) MarkRead(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, n := range r.notifications {
		if n.ID == id {
			n.Read = true
			return nil
		}
	}
	return nil
}

// MarkAllRead помечает все уведомления прочитанными. Идемпотентна.
func (r *Repository) MarkAllRead(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, n := range r.notifications {
		n.Read = true
	}
	return nil
}

// UnreadCount возвращает количество непрочитанных уведомлений
func (r *Repository) UnreadCount(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, n := range r.notifications {
		if !n.Read {
			count++
		}
	}
	return count, nil
}

// List возвращает все уведомления (свежие в начале)
func (r *Repository) List(_ context.Context) ([]*domain.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Notification, 0, len(r.notifications))
	for _, n := range r.notifications {
		result := *n
		out = append(out, &result)
	}
	return out, nil
}
