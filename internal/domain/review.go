package domain

import "time"

// Review represents a client review for a court.
// Immutable once created: no edit or delete operation exists.
type Review struct {
	ID         int64
	CourtID    string
	ClientName string
	Rating     int // 1..5 inclusive
	Comment    string
	Date       time.Time // calendar day, assigned at creation
}
