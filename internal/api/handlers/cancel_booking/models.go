package cancel_booking

import (
	cancelBooking "github.com/salonbook/booking-service/internal/usecase/cancel_booking"
)

// CancelBookingRequest HTTP request model
type CancelBookingRequest struct {
	Reason *string `json:"reason,omitempty"`
}

// CancelBookingResponse HTTP response model
type CancelBookingResponse struct {
	BookingID int64  `json:"bookingId"`
	Status    string `json:"status"`

	CanRefund       bool  `json:"canRefund"`
	RefundAmount    int64 `json:"refundAmount"`
	CancellationFee int64 `json:"cancellationFee"`

	RefundedAmount int64   `json:"refundedAmount"`
	RefundError    *string `json:"refundError,omitempty"`

	Message string `json:"message"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *cancelBooking.Response) *CancelBookingResponse {
	return &CancelBookingResponse{
		BookingID:       resp.BookingID,
		Status:          resp.Status,
		CanRefund:       resp.CanRefund,
		RefundAmount:    resp.RefundAmount,
		CancellationFee: resp.CancellationFee,
		RefundedAmount:  resp.RefundedAmount,
		RefundError:     resp.RefundError,
		Message:         resp.Message,
	}
}
