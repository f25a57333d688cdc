package domain

import (
	"time"

	"github.com/salonbook/booking-service/pkg/types"
)

// AvailabilitySlot объявленное провайдером часовое окно доступности.
// Уникально по (provider_id, date, time_slot); никогда не удаляется,
// только переключается флаг is_available.
type AvailabilitySlot struct {
	ID         int64
	ProviderID int64
	Date       time.Time
	// TimeSlot хранится как "HH:MM" или "HH:MM-HH:MM".
	// Парсится в types.TimeRange один раз на границе чтения.
	TimeSlot    string
	IsAvailable bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Range парсит TimeSlot в структурированный интервал.
// Некорректное хранимое значение - нарушение целостности данных.
func (s *AvailabilitySlot) Range() (types.TimeRange, error) {
	return types.NewTimeRangeFromSlot(s.TimeSlot, SlotBlockMinutes)
}

// AvailableSlot стартовое время, с которого может начаться новое
// бронирование запрошенной длительности
type AvailableSlot struct {
	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int
}

// Provider провайдер услуг (салон/мастер)
type Provider struct {
	ID    int64
	Name  string
	Email string
	// LedgerAccountID ссылка на connected account в платёжном леджере,
	// nil до онбординга
	LedgerAccountID *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
