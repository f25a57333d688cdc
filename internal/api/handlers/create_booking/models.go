package create_booking

import (
	"time"

	"github.com/salonbook/booking-service/internal/domain"
	createBooking "github.com/salonbook/booking-service/internal/usecase/create_booking"
	"github.com/salonbook/booking-service/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ProviderID int64  `json:"providerId"`
	SalonID    *int64 `json:"salonId,omitempty"`
	ServiceID  *int64 `json:"serviceId,omitempty"`

	CustomerName  string  `json:"customerName"`
	CustomerPhone *string `json:"customerPhone,omitempty"`
	CustomerEmail *string `json:"customerEmail,omitempty"`
	ServiceName   string  `json:"serviceName"`

	BookingDate     string `json:"bookingDate"` // "2026-01-25"
	TimeSlot        string `json:"timeSlot"`    // "10:00"
	DurationMinutes int    `json:"durationMinutes,omitempty"`

	Price int64 `json:"price"`

	Notes           *string `json:"notes,omitempty"`
	PaymentIntentID *string `json:"paymentIntentId,omitempty"`
}

// BookingResponse HTTP response model
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

	BookingDate     string `json:"bookingDate"`
	TimeSlot        string `json:"timeSlot"`
	DurationMinutes int    `json:"durationMinutes"`
	EndTimeSlot     string `json:"endTimeSlot"`

	Price  int64 `json:"price"`
	Amount int64 `json:"amount"`

	Status string  `json:"status"`
	Notes  *string `json:"notes,omitempty"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.TimeSlot)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		ProviderID:      r.ProviderID,
		SalonID:         r.SalonID,
		ServiceID:       r.ServiceID,
		UserID:          userID,
		CustomerName:    r.CustomerName,
		CustomerPhone:   r.CustomerPhone,
		CustomerEmail:   r.CustomerEmail,
		ServiceName:     r.ServiceName,
		Date:            bookingDate,
		StartTime:       startTime,
		DurationMinutes: r.DurationMinutes,
		Price:           r.Price,
		Notes:           r.Notes,
		PaymentIntentID: r.PaymentIntentID,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		ProviderID:      resp.ProviderID,
		SalonID:         resp.SalonID,
		ServiceID:       resp.ServiceID,
		UserID:          resp.UserID,
		CustomerName:    resp.CustomerName,
		CustomerPhone:   resp.CustomerPhone,
		CustomerEmail:   resp.CustomerEmail,
		ServiceName:     resp.ServiceName,
		BookingDate:     resp.BookingDate.Format(domain.DateFormat),
		TimeSlot:        resp.StartTime.String(),
		DurationMinutes: resp.DurationMinutes,
		EndTimeSlot:     resp.EndTime.String(),
		Price:           resp.Price,
		Amount:          resp.Amount,
		Status:          resp.Status,
		Notes:           resp.Notes,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
