package update_availability

import (
	"github.com/salonbook/booking-service/internal/service/availability/models"
)

// UpsertSlotRequest тело запроса на объявление/отзыв слота
type UpsertSlotRequest struct {
	Date        string `json:"date"`     // "2026-01-25"
	TimeSlot    string `json:"timeSlot"` // "10:00" или "10:00-11:00"
	IsAvailable bool   `json:"isAvailable"`
}

// ToServiceRequest формирует запрос к сервису
func (r *UpsertSlotRequest) ToServiceRequest(providerID int64) *models.UpsertSlotRequest {
	return &models.UpsertSlotRequest{
		ProviderID:  providerID,
		Date:        r.Date,
		TimeSlot:    r.TimeSlot,
		IsAvailable: r.IsAvailable,
	}
}
