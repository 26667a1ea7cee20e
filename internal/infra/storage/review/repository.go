package review

import (
	"context"
	"sync"

	"github.com/m04kA/SMC-CourtService/internal/domain"
)

// Repository репозиторий отзывов в памяти процесса.
// Отзывы неизменяемы: операций обновления и удаления нет.
type Repository struct {
	mu      sync.RWMutex
	reviews []*domain.Review
	nextID  int64
}

// NewRepository создает пустой репозиторий отзывов
func NewRepository() *Repository {
	return &Repository{nextID: 1}
}

// Create создает отзыв, присваивает ID и добавляет его в начало коллекции
func (r *Repository) Create(_ context.Context, rev *domain.Review) (*domain.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *rev
	stored.ID = r.nextID
	r.nextID++

	r.reviews = append([]*domain.Review{&stored}, r.reviews...)

	result := stored
	return &result, nil
}

// GetByCourtID получает отзывы корта по точному совпадению идентификатора
func (r *Repository) GetByCourtID(_ context.Context, courtID string) ([]*domain.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Review, 0)
	for _, rev := range r.reviews {
		if rev.CourtID == courtID {
			result := *rev
			out = append(out, &result)
		}
	}
	return out, nil
}

// List возвращает все отзывы (свежие в начале)
func (r *Repository) List(_ context.Context) ([]*domain.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Review, 0, len(r.reviews))
	for _, rev := range r.reviews {
		result := *rev
		out = append(out, &result)
	}
	return out, nil
}
