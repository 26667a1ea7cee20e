package booking

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/SMC-CourtService/internal/domain"
)

// Repository репозиторий бронирований в памяти процесса.
// Хранит записи в порядке "свежие в начале" (display-конвенция витрины).
// Все операции идут под одним мьютексом: проверка пересечения и вставка
// в CreateIfFree выполняются атомарно, что заменяет сериализуемую
// транзакцию серверной реализации.
type Repository struct {
	mu       sync.RWMutex
	bookings []*domain.Booking
	nextID   int64
}

// NewRepository создает пустой репозиторий бронирований
func NewRepository() *Repository {
	return &Repository{nextID: 1}
}

// Create создает бронирование без проверки пересечений.
// Используется сидером демо-данных; боевой путь создания - CreateIfFree.
func (r *Repository) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.insert(b), nil
}

// CreateIfFree атомарно проверяет, что интервал [start, start+duration)
// не пересекается ни с одним активным (не finished) бронированием того же
// корта на ту же дату, и только тогда вставляет запись.
func (r *Repository) CreateIfFree(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	startMin, err := b.StartTime.Minutes()
	if err != nil {
		return nil, err
	}
	endMin := startMin + b.DurationMinutes

	for _, existing := range r.bookings {
		if existing.CourtID != b.CourtID || !sameDay(existing.Date, b.Date) {
			continue
		}
		if !existing.BlocksSlots() {
			continue
		}

		exStart, err := existing.StartTime.Minutes()
		if err != nil {
			continue
		}
		exEnd := exStart + existing.DurationMinutes

		// Полуоткрытые интервалы: пересечение есть при strict-неравенствах,
		// граничащие интервалы не конфликтуют
		if startMin < exEnd && exStart < endMin {
			return nil, ErrSlotTaken
		}
	}

	return r.insert(b), nil
}

// insert вызывается только под write-lock
func (r *Repository) insert(b *domain.Booking) *domain.Booking {
	stored := *b
	stored.ID = r.nextID
	r.nextID++

	r.bookings = append([]*domain.Booking{&stored}, r.bookings...)

	result := stored
	return &result
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, b := range r.bookings {
		if b.ID == id {
			result := *b
			return &result, nil
		}
	}
	return nil, ErrBookingNotFound
}

// GetByClientEmail получает бронирования клиента по точному совпадению email
// (сравнение чувствительно к регистру)
func (r *Repository) GetByClientEmail(_ context.Context, email string) ([]*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Booking, 0)
	for _, b := range r.bookings {
		if b.ClientEmail == email {
			result := *b
			out = append(out, &result)
		}
	}
	return out, nil
}

// GetByCourtAndDate получает все бронирования корта на дату
func (r *Repository) GetByCourtAndDate(_ context.Context, courtID string, date time.Time) ([]*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Booking, 0)
	for _, b := range r.bookings {
		if b.CourtID == courtID && sameDay(b.Date, date) {
			result := *b
			out = append(out, &result)
		}
	}
	return out, nil
}

// List возвращает все бронирования (свежие в начале)
func (r *Repository) List(_ context.Context) ([]*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Booking, 0, len(r.bookings))
	for _, b := range r.bookings {
		result := *b
		out = append(out, &result)
	}
	return out, nil
}

// UpdateStatus заменяет статус бронирования
func (r *Repository) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, b := range r.bookings {
		if b.ID == id {
			b.Status = status
			result := *b
			return &result, nil
		}
	}
	return nil, ErrBookingNotFound
}

// Delete удаляет бронирование (отмена)
func (r *Repository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, b := range r.bookings {
		if b.ID == id {
			r.bookings = append(r.bookings[:i], r.bookings[i+1:]...)
			return nil
		}
	}
	return ErrBookingNotFound
}

// sameDay проверяет, что две даты относятся к одному календарному дню
func sameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
