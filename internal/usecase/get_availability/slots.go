package get_availability

import (
	"github.com/m04kA/SMC-CourtService/internal/domain"
	"github.com/m04kA/SMC-CourtService/pkg/types"
)

// generateSlotGrid генерирует каноническую сетку слотов операционного дня:
// от OpeningTime до ClosingTime включительно с шагом SlotStepMinutes.
// Сетка одинакова для любой даты. Для 08:00-22:00 и шага 30 это 29 меток.
func generateSlotGrid() ([]types.TimeString, error) {
	openMin, err := domain.OpeningTime.Minutes()
	if err != nil {
		return nil, err
	}
	closeMin, err := domain.ClosingTime.Minutes()
	if err != nil {
		return nil, err
	}

	grid := make([]types.TimeString, 0, (closeMin-openMin)/domain.SlotStepMinutes+1)
	for m := openMin; m <= closeMin; m += domain.SlotStepMinutes {
		label, err := types.NewTimeStringFromMinutes(m)
		if err != nil {
			return nil, err
		}
		grid = append(grid, label)
	}
	return grid, nil
}

// occupiedSlots отмечает слоты сетки, занятые активными бронированиями.
// Бронь занимает ceil(duration/step) слотов начиная со своего стартового;
// finished бронирования слоты не блокируют.
func occupiedSlots(grid []types.TimeString, bookings []*domain.Booking) map[int]bool {
	index := make(map[types.TimeString]int, len(grid))
	for i, label := range grid {
		index[label] = i
	}

	occupied := make(map[int]bool)
	for _, b := range bookings {
		if !b.BlocksSlots() {
			continue
		}

		start, ok := index[b.StartTime]
		if !ok {
			continue
		}

		blocked := (b.DurationMinutes + domain.SlotStepMinutes - 1) / domain.SlotStepMinutes
		for i := 0; i < blocked; i++ {
			if start+i < len(grid) {
				occupied[start+i] = true
			}
		}
	}
	return occupied
}

// classifySlots классифицирует каждый слот сетки для выбранной длительности:
//   - booked: слот занят активной бронью;
//   - partial: слот свободен, но окно длительности задевает занятый слот
//     либо выходит за конец сетки (выбрать такой слот нельзя);
//   - available: все слоты окна свободны.
func classifySlots(grid []types.TimeString, occupied map[int]bool, durationMinutes int) []domain.Slot {
	needed := (durationMinutes + domain.SlotStepMinutes - 1) / domain.SlotStepMinutes

	slots := make([]domain.Slot, len(grid))
	for i, label := range grid {
		slots[i] = domain.Slot{StartTime: label, Status: slotStatus(i, needed, len(grid), occupied)}
	}
	return slots
}

func slotStatus(i, needed, gridLen int, occupied map[int]bool) domain.SlotStatus {
	if occupied[i] {
		return domain.SlotBooked
	}

	for k := 1; k < needed; k++ {
		if i+k >= gridLen || occupied[i+k] {
			return domain.SlotPartial
		}
	}
	return domain.SlotAvailable
}
