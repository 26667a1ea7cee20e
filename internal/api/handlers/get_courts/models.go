package get_courts

import "github.com/m04kA/SMC-CourtService/internal/domain"

// CourtResponse HTTP response model
type CourtResponse struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Type             string  `json:"type"`
	PricePerHour     int     `json:"pricePerHour"`
	Rating           float64 `json:"rating"`
	ReviewCount      int     `json:"reviewCount"`
	Available        bool    `json:"available"`
	AllowedDurations []int   `json:"allowedDurations"`
}

// CourtListResponse список кортов комплекса
type CourtListResponse struct {
	Courts []CourtResponse `json:"courts"`
}

// FromDomainCourts конвертирует domain модели в HTTP response
func FromDomainCourts(courts []domain.Court) *CourtListResponse {
	resp := &CourtListResponse{
		Courts: make([]CourtResponse, 0, len(courts)),
	}

	for i := range courts {
		c := &courts[i]
		resp.Courts = append(resp.Courts, CourtResponse{
			ID:               c.ID,
			Name:             c.Name,
			Type:             string(c.Type),
			PricePerHour:     c.PricePerHour,
			Rating:           c.Rating,
			ReviewCount:      c.ReviewCount,
			Available:        c.Available,
			AllowedDurations: c.AllowedDurations(),
		})
	}

	return resp
}
