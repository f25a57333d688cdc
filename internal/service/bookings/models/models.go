package models

import (
	"errors"
	"time"

	"github.com/salonbook/booking-service/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// GetUserBookingsRequest запрос на получение бронирований пользователя
type GetUserBookingsRequest struct {
	UserID int64   `json:"userId"`
	Status *string `json:"status,omitempty"`
}

// GetProviderBookingsRequest запрос на получение бронирований поставщика
type GetProviderBookingsRequest struct {
	ProviderID      int64      `json:"providerId"`
	StartDate       *time.Time `json:"startDate,omitempty"`       // Начало периода (опционально)
	EndDate         *time.Time `json:"endDate,omitempty"`         // Конец периода (опционально)
	Status          *string    `json:"status,omitempty"`          // Фильтр по статусу (опционально)
	IncludeInactive bool       `json:"includeInactive,omitempty"` // Включить отменённые и завершённые
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetProviderBookingsRequest) ToDomainFilter() (domain.ProviderBookingsFilter, error) {
	filter := domain.ProviderBookingsFilter{
		ProviderID:      r.ProviderID,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// UpdateStatusRequest запрос на обновление статуса бронирования
type UpdateStatusRequest struct {
	ProviderID int64  `json:"providerId"`
	Status     string `json:"status"`
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID         int64  `json:"id"`
	ProviderID int64  `json:"providerId"`
	SalonID    *int64 `json:"salonId,omitempty"`
	ServiceID  *int64 `json:"serviceId,omitempty"`
	UserID     int64  `json:"userId"`

	CustomerName  string  `json:"customerName"`
	CustomerPhone *string `json:"customerPhone,omitempty"`
	CustomerEmail *string `json:"customerEmail,omitempty"`
	ServiceName   string  `json:"serviceName"`

	BookingDate     string `json:"bookingDate"` // "2026-01-25"
	TimeSlot        string `json:"timeSlot"`    // "10:00"
	DurationMinutes int    `json:"durationMinutes"`
	EndTimeSlot     string `json:"endTimeSlot"` // "11:30"

	Price  int64 `json:"price"`
	Amount int64 `json:"amount"`

	Status string  `json:"status"`
	Notes  *string `json:"notes,omitempty"`

	RefundedAmount     int64   `json:"refundedAmount"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:              b.ID,
		ProviderID:      b.ProviderID,
		SalonID:         b.SalonID,
		ServiceID:       b.ServiceID,
		UserID:          b.UserID,
		CustomerName:    b.CustomerName,
		CustomerPhone:   b.CustomerPhone,
		CustomerEmail:   b.CustomerEmail,
		ServiceName:     b.ServiceName,
		BookingDate:     b.BookingDate.Format(domain.DateFormat),
		TimeSlot:        b.StartTime.String(),
		DurationMinutes: b.DurationMinutes,
		EndTimeSlot:     b.EndTime.String(),
		Price:           b.Price,
		Amount:          b.Amount,
		Status:          string(b.Status),
		Notes:           b.Notes,
		RefundedAmount:  b.RefundedAmount,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}

	resp.CancellationReason = b.CancellationReason
	if b.CancelledAt != nil {
		cancelledAt := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledAt
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	result := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, b := range bookings {
		result.Bookings = append(result.Bookings, *FromDomainBooking(b))
	}

	return result
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	switch domain.BookingStatus(status) {
	case domain.StatusPending, domain.StatusConfirmed, domain.StatusCompleted, domain.StatusCancelled:
		return domain.BookingStatus(status), nil
	default:
		return "", ErrInvalidStatus
	}
}
