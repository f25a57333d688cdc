package update_booking_status

import (
	"github.com/salonbook/booking-service/internal/service/bookings/models"
)

// UpdateBookingStatusRequest тело запроса на смену статуса
type UpdateBookingStatusRequest struct {
	Status string `json:"status"`
}

// ToServiceRequest формирует запрос к сервису
// providerID берётся из контекста аутентификации, не из тела запроса
func (r *UpdateBookingStatusRequest) ToServiceRequest(providerID int64) *models.UpdateStatusRequest {
	return &models.UpdateStatusRequest{
		ProviderID: providerID,
		Status:     r.Status,
	}
}
