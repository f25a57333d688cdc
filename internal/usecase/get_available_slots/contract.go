package get_available_slots

import (
	"context"
	"time"

	"github.com/salonbook/booking-service/internal/domain"
)

// AvailabilityRepository интерфейс репозитория календаря доступности
type AvailabilityRepository interface {
	GetAvailable(ctx context.Context, providerID int64, date *time.Time, fromDate time.Time) ([]*domain.AvailabilitySlot, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetActiveByProvider(ctx context.Context, providerID int64, date *time.Time, fromDate time.Time) ([]*domain.Booking, error)
}

// ProviderRepository интерфейс репозитория поставщиков услуг
type ProviderRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Provider, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
