package create_booking

import (
	"time"

	"github.com/m04kA/SMC-CourtService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	CourtID         string           // ID корта из каталога
	ClientName      string           // Имя клиента
	ClientEmail     string           // Email клиента
	ClientPhone     string           // Телефон клиента
	Date            time.Time        // Дата бронирования (без времени)
	StartTime       types.TimeString // Время начала слота (например, "10:00")
	DurationMinutes int              // Длительность в минутах
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              int64            // ID созданного бронирования
	CourtID         string           // ID корта
	CourtName       string           // Название корта (денормализация)
	ClientName      string           // Имя клиента
	ClientEmail     string           // Email клиента
	ClientPhone     string           // Телефон клиента
	Date            time.Time        // Дата бронирования
	StartTime       types.TimeString // Время начала
	DurationMinutes int              // Длительность в минутах
	Status          string           // Статус бронирования (requested)
	TotalPrice      float64          // Итоговая цена, зафиксированная при создании

	CreatedAt time.Time // Время создания
}
