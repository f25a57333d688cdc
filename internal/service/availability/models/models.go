package models

import (
	"time"

	"github.com/salonbook/booking-service/internal/domain"
)

// UpsertSlotRequest запрос на объявление/отзыв слота доступности
type UpsertSlotRequest struct {
	ProviderID  int64  `json:"providerId"`
	Date        string `json:"date"`     // "2026-01-25"
	TimeSlot    string `json:"timeSlot"` // "10:00" или "10:00-11:00"
	IsAvailable bool   `json:"isAvailable"`
}

// SlotResponse ответ с данными слота доступности
type SlotResponse struct {
	ID          int64     `json:"id"`
	ProviderID  int64     `json:"providerId"`
	Date        string    `json:"date"`
	TimeSlot    string    `json:"timeSlot"`
	IsAvailable bool      `json:"isAvailable"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// FromDomainSlot конвертирует domain модель в DTO
func FromDomainSlot(s *domain.AvailabilitySlot) *SlotResponse {
	if s == nil {
		return nil
	}

	return &SlotResponse{
		ID:          s.ID,
		ProviderID:  s.ProviderID,
		Date:        s.Date.Format(domain.DateFormat),
		TimeSlot:    s.TimeSlot,
		IsAvailable: s.IsAvailable,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}
