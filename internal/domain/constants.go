package domain

import "github.com/m04kA/SMC-CourtService/pkg/types"

// Operating day constants. The grid is identical for every date: no holiday
// or seasonal variation.
const (
	OpeningTime     types.TimeString = "08:00"
	ClosingTime     types.TimeString = "22:00"
	SlotStepMinutes                  = 30
)

// Business validation constants
const (
	MinRating = 1
	MaxRating = 5

	MinDurationMinutes = 30
	MaxDurationMinutes = 240
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
