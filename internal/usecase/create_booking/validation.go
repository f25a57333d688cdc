package create_booking

import (
	"fmt"
	"time"

	"github.com/salonbook/booking-service/internal/domain"
	"github.com/salonbook/booking-service/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ProviderID <= 0 {
		return fmt.Errorf("%w: providerID must be positive", ErrInvalidInput)
	}

	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.CustomerName == "" {
		return fmt.Errorf("%w: customerName is required", ErrInvalidInput)
	}

	if req.ServiceName == "" {
		return fmt.Errorf("%w: serviceName is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.DurationMinutes < 0 {
		return fmt.Errorf("%w: durationMinutes must not be negative", ErrInvalidInput)
	}

	if req.DurationMinutes != 0 && req.DurationMinutes < domain.MinDurationMinutes {
		return fmt.Errorf("%w: durationMinutes must be at least %d", ErrInvalidInput, domain.MinDurationMinutes)
	}

	if req.DurationMinutes > domain.MaxDurationMinutes {
		return fmt.Errorf("%w: durationMinutes must not exceed %d", ErrInvalidInput, domain.MaxDurationMinutes)
	}

	if req.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateDate проверяет, что дата бронирования не в прошлом
func validateDate(bookingDate time.Time, now time.Time) error {
	dateOnly := time.Date(bookingDate.Year(), bookingDate.Month(), bookingDate.Day(), 0, 0, 0, 0, bookingDate.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if dateOnly.Before(nowOnly) {
		return ErrInvalidDate
	}

	return nil
}

// checkSlotFits проверяет, что услуга длительностью durationMinutes,
// начинающаяся в candidate.Start, помещается в расписание дня:
// все ceil(duration/60) часовых блоков объявлены доступными и интервал
// [start, start+duration) не пересекается с активными бронированиями.
func checkSlotFits(
	candidate types.TimeRange,
	durationMinutes int,
	slots []*domain.AvailabilitySlot,
	bookings []*domain.Booking,
) error {
	declared := make(map[int]bool, len(slots))
	for _, slot := range slots {
		r, err := slot.Range()
		if err != nil {
			return fmt.Errorf("%w: availability slot id=%d value=%q: %v",
				ErrCorruptTimeSlot, slot.ID, slot.TimeSlot, err)
		}
		declared[r.Start] = true
	}

	blocks := (durationMinutes + domain.SlotBlockMinutes - 1) / domain.SlotBlockMinutes
	for k := 0; k < blocks; k++ {
		if !declared[candidate.Start+k*domain.SlotBlockMinutes] {
			return ErrSlotNotAvailable
		}
	}

	for _, booking := range bookings {
		busy, err := booking.OccupiedRange()
		if err != nil {
			return fmt.Errorf("%w: booking id=%d start=%q: %v",
				ErrCorruptTimeSlot, booking.ID, booking.StartTime, err)
		}
		if candidate.Overlaps(busy) {
			return ErrSlotNotAvailable
		}
	}

	return nil
}
