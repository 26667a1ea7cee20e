package domain

import "github.com/m04kA/SMC-CourtService/pkg/types"

// SlotStatus classifies a grid slot for the picker
type SlotStatus string

const (
	// SlotAvailable слот свободен для выбранной длительности
	SlotAvailable SlotStatus = "available"

	// SlotPartial слот сам по себе свободен, но бронь выбранной длительности
	// с этим началом уперлась бы в занятый слот или в конец сетки
	SlotPartial SlotStatus = "partial"

	// SlotBooked начало слота совпадает с занятым слотом активной брони
	SlotBooked SlotStatus = "booked"
)

// Slot represents one entry of the daily slot grid with its availability
type Slot struct {
	StartTime types.TimeString
	Status    SlotStatus
}

// IsSelectable reports whether a booking may start at this slot
func (s *Slot) IsSelectable() bool {
	return s.Status == SlotAvailable
}
