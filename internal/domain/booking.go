package domain

import (
	"time"

	"github.com/salonbook/booking-service/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a customer reservation of one or more contiguous
// hourly blocks of a provider's schedule
type Booking struct {
	ID         int64
	ProviderID int64
	SalonID    *int64
	ServiceID  *int64
	UserID     int64

	// Denormalized customer and service data for history
	CustomerName  string
	CustomerPhone *string
	CustomerEmail *string
	ServiceName   string

	BookingDate     time.Time
	StartTime       types.TimeString
	DurationMinutes int
	// EndTime всегда равен StartTime + DurationMinutes.
	// Бронирование занимает полуоткрытый интервал [StartTime, EndTime).
	EndTime types.TimeString

	Price  int64 // цена услуги (JPY)
	Amount int64 // полная сумма платежа (JPY)

	Status BookingStatus
	Notes  *string

	// Ссылки на платёжный леджер
	PaymentIntentID *string
	LedgerAccountID *string

	RefundedAmount     int64
	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking occupies the provider's time
func (b *Booking) IsActive() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// CanTransitionTo validates a status transition. Cancellation is excluded:
// it goes through the cancel flow, never through a plain status update.
func (b *Booking) CanTransitionTo(next BookingStatus) bool {
	switch b.Status {
	case StatusPending:
		return next == StatusConfirmed
	case StatusConfirmed:
		return next == StatusCompleted
	default:
		return false
	}
}

// OccupiedRange возвращает занятый интервал [StartTime, EndTime).
// Если EndTime не сохранён, он вычисляется из StartTime и длительности
// ровно так же, как при создании бронирования.
func (b *Booking) OccupiedRange() (types.TimeRange, error) {
	duration := b.DurationMinutes
	if duration <= 0 {
		duration = DefaultDurationMinutes
	}

	if !b.EndTime.IsZero() {
		return types.NewTimeRange(b.StartTime, b.EndTime)
	}
	return types.NewTimeRangeFromSlot(b.StartTime.String(), duration)
}

// StartInstant возвращает абсолютный момент начала брони:
// booking_date + time_slot, секунды и миллисекунды обнулены
func (b *Booking) StartInstant() (time.Time, error) {
	minutes, err := b.StartTime.Minutes()
	if err != nil {
		return time.Time{}, err
	}
	day := time.Date(b.BookingDate.Year(), b.BookingDate.Month(), b.BookingDate.Day(),
		0, 0, 0, 0, b.BookingDate.Location())
	return day.Add(time.Duration(minutes) * time.Minute), nil
}

// ProviderBookingsFilter фильтр для получения бронирований провайдера
type ProviderBookingsFilter struct {
	ProviderID      int64          // Обязательный параметр
	StartDate       *time.Time     // Начало периода (опционально)
	EndDate         *time.Time     // Конец периода (опционально)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли отменённые и завершённые бронирования
}
