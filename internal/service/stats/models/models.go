package models

// DashboardStats агрегированные метрики для дашборда менеджера
type DashboardStats struct {
	TotalBookings   int            `json:"totalBookings"`
	TodayBookings   int            `json:"todayBookings"`
	TotalRevenue    float64        `json:"totalRevenue"`
	PendingBookings int            `json:"pendingBookings"`
	StatusCounts    map[string]int `json:"statusCounts"`
	AvgRating       float64        `json:"avgRating"`
	TotalReviews    int            `json:"totalReviews"`
}
