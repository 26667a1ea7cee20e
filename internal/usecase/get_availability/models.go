package get_availability

import (
	"time"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	"github.com/m04kA/SMC-CourtService/pkg/types"
)

// Request модель запроса доступности слотов
type Request struct {
	CourtID         string    // ID корта
	Date            time.Time // Дата, на которую запрашивается сетка
	DurationMinutes int       // Выбранная длительность брони
}

// Response модель ответа с классифицированной сеткой слотов
type Response struct {
	CourtID         string        // ID корта
	Date            time.Time     // Дата сетки
	DurationMinutes int           // Длительность, для которой считалась доступность
	Slots           []domain.Slot // Полная сетка с классификацией
}

// SlotStatusAt возвращает статус слота с данным временем начала.
// Кандидат (start, duration) доступен тогда и только тогда,
// когда его слот классифицирован как available.
func (r *Response) SlotStatusAt(start types.TimeString) (domain.SlotStatus, bool) {
	for i := range r.Slots {
		if r.Slots[i].StartTime == start {
			return r.Slots[i].Status, true
		}
	}
	return "", false
}
