package catalog

import "github.com/m04kA/SMC-CourtService/internal/domain"

// defaultCourts статический набор кортов комплекса
func defaultCourts() []domain.Court {
	return []domain.Court{
		{
			ID:           "court-1",
			Name:         "Padel Court Central",
			Type:         domain.CourtPadel,
			PricePerHour: 2500,
			Rating:       4.8,
			ReviewCount:  45,
			Available:    true,
		},
		{
			ID:           "court-2",
			Name:         "Padel Court VIP",
			Type:         domain.CourtPadel,
			PricePerHour: 3500,
			Rating:       4.9,
			ReviewCount:  38,
			Available:    true,
		},
		{
			ID:           "court-3",
			Name:         "Padel Court Pro",
			Type:         domain.CourtPadel,
			PricePerHour: 2800,
			Rating:       4.7,
			ReviewCount:  52,
			Available:    true,
		},
		{
			ID:           "court-4",
			Name:         "Grand Slam Court",
			Type:         domain.CourtTennis,
			PricePerHour: 3000,
			Rating:       4.9,
			ReviewCount:  67,
			Available:    true,
		},
		{
			ID:           "court-5",
			Name:         "Beach Arena",
			Type:         domain.CourtBeachTennis,
			PricePerHour: 2800,
			Rating:       4.6,
			ReviewCount:  34,
			Available:    true,
		},
		{
			ID:           "court-6",
			Name:         "Futsal Indoor A",
			Type:         domain.CourtFutsal,
			PricePerHour: 4500,
			Rating:       4.5,
			ReviewCount:  89,
			Available:    true,
		},
		{
			ID:           "court-7",
			Name:         "Futsal Indoor B",
			Type:         domain.CourtFutsal,
			PricePerHour: 4000,
			Rating:       4.4,
			ReviewCount:  56,
			Available:    true,
		},
		{
			ID:           "court-8",
			Name:         "Stadium Field",
			Type:         domain.CourtGrass,
			PricePerHour: 6000,
			Rating:       4.8,
			ReviewCount:  42,
			Available:    true,
		},
	}
}
