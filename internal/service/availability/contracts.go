package availability

import (
	"context"

	"github.com/salonbook/booking-service/internal/domain"
)

// AvailabilityRepository интерфейс репозитория календаря доступности
type AvailabilityRepository interface {
	Upsert(ctx context.Context, slot *domain.AvailabilitySlot) (*domain.AvailabilitySlot, error)
}

// ProviderRepository интерфейс репозитория поставщиков услуг
type ProviderRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Provider, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
