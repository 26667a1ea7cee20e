package domain

// CourtType represents the category of a court
type CourtType string

const (
	CourtPadel       CourtType = "padel"
	CourtTennis      CourtType = "tennis"
	CourtBeachTennis CourtType = "beach_tennis"
	CourtFutsal      CourtType = "futsal"
	CourtGrass       CourtType = "grass"
)

// Court represents a bookable court. Reference data: immutable for the
// lifetime of the process, supplied by the catalog.
type Court struct {
	ID           string
	Name         string
	Type         CourtType
	PricePerHour int // integer currency units
	Rating       float64
	ReviewCount  int
	Available    bool
}

// DurationsByType набор разрешенных длительностей (в минутах) по типу корта
var DurationsByType = map[CourtType][]int{
	CourtPadel:       {60, 90, 120},
	CourtTennis:      {60, 90, 120},
	CourtBeachTennis: {60, 90},
	CourtFutsal:      {60, 90, 120},
	CourtGrass:       {60, 90, 120},
}

// AllowedDurations returns the set of bookable durations for the court's type
func (c *Court) AllowedDurations() []int {
	return DurationsByType[c.Type]
}

// DurationAllowed reports whether minutes is a permitted booking length
func (c *Court) DurationAllowed(minutes int) bool {
	for _, d := range c.AllowedDurations() {
		if d == minutes {
			return true
		}
	}
	return false
}
