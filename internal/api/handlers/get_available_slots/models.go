package get_available_slots

import (
	getAvailableSlots "github.com/salonbook/booking-service/internal/usecase/get_available_slots"
)

// SlotResponse HTTP модель доступного слота
type SlotResponse struct {
	Date        string `json:"date"`
	TimeSlot    string `json:"timeSlot"`
	EndTimeSlot string `json:"endTimeSlot"`
}

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	ProviderID      int64          `json:"providerId"`
	DurationMinutes int            `json:"durationMinutes"`
	Slots           []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{
			Date:        s.Date,
			TimeSlot:    s.TimeSlot,
			EndTimeSlot: s.EndTimeSlot,
		})
	}

	return &AvailableSlotsResponse{
		ProviderID:      resp.ProviderID,
		DurationMinutes: resp.DurationMinutes,
		Slots:           slots,
	}
}
