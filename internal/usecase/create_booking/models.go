package create_booking

import (
	"time"

	"github.com/salonbook/booking-service/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	ProviderID int64  // ID поставщика услуг
	SalonID    *int64 // ID салона (опционально)
	ServiceID  *int64 // ID услуги (опционально)
	UserID     int64  // ID пользователя

	CustomerName  string  // Имя клиента
	CustomerPhone *string // Телефон клиента (опционально)
	CustomerEmail *string // Email клиента (опционально)
	ServiceName   string  // Название услуги

	Date            time.Time        // Дата бронирования (без времени)
	StartTime       types.TimeString // Время начала слота (например, "10:00")
	DurationMinutes int              // Длительность услуги (0 = по умолчанию)

	Price int64 // Цена услуги (JPY)

	Notes           *string // Дополнительные заметки (опционально)
	PaymentIntentID *string // Ссылка на платёж в леджере (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID         int64
	ProviderID int64
	SalonID    *int64
	ServiceID  *int64
	UserID     int64

	CustomerName  string
	CustomerPhone *string
	CustomerEmail *string
	ServiceName   string

	BookingDate     time.Time
	StartTime       types.TimeString
	DurationMinutes int
	EndTime         types.TimeString

	Price  int64
	Amount int64

	Status string
	Notes  *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
