package get_available_slots

import (
	"fmt"
	"sort"
	"time"

	"github.com/salonbook/booking-service/internal/domain"
	"github.com/salonbook/booking-service/pkg/types"
)

// daySchedule расписание поставщика на одну дату: объявленные часовые
// блоки и интервалы, занятые активными бронированиями
type daySchedule struct {
	date           time.Time
	declaredStarts map[int]bool // минуты от полуночи стартов объявленных блоков
	starts         []int        // те же старты, отсортированные
	occupied       []types.TimeRange
}

// buildSchedules группирует объявленные слоты и активные бронирования по датам.
// Слоты и бронирования приходят отсортированными по (date, time_slot),
// порядок дат сохраняется.
func buildSchedules(slots []*domain.AvailabilitySlot, bookings []*domain.Booking) ([]*daySchedule, error) {
	byDate := make(map[string]*daySchedule)
	order := make([]string, 0)

	scheduleFor := func(date time.Time) *daySchedule {
		key := date.Format(domain.DateFormat)
		if s, ok := byDate[key]; ok {
			return s
		}
		s := &daySchedule{
			date:           date,
			declaredStarts: make(map[int]bool),
		}
		byDate[key] = s
		order = append(order, key)
		return s
	}

	for _, slot := range slots {
		r, err := slot.Range()
		if err != nil {
			return nil, fmt.Errorf("%w: availability slot id=%d value=%q: %v",
				ErrCorruptTimeSlot, slot.ID, slot.TimeSlot, err)
		}

		s := scheduleFor(slot.Date)
		if !s.declaredStarts[r.Start] {
			s.declaredStarts[r.Start] = true
			s.starts = append(s.starts, r.Start)
		}
	}

	for _, booking := range bookings {
		r, err := booking.OccupiedRange()
		if err != nil {
			return nil, fmt.Errorf("%w: booking id=%d start=%q: %v",
				ErrCorruptTimeSlot, booking.ID, booking.StartTime, err)
		}

		s, ok := byDate[booking.BookingDate.Format(domain.DateFormat)]
		if !ok {
			// Бронирование на дату без объявленных слотов никак
			// не влияет на выдачу
			continue
		}
		s.occupied = append(s.occupied, r)
	}

	schedules := make([]*daySchedule, 0, len(order))
	for _, key := range order {
		s := byDate[key]
		sort.Ints(s.starts)
		schedules = append(schedules, s)
	}

	return schedules, nil
}

// availableStarts возвращает старты (в минутах от полуночи), с которых
// услуга длительностью durationMinutes помещается в расписание дня.
//
// Старт подходит, когда:
//   - все ceil(duration/60) часовых блоков кандидата объявлены доступными;
//   - интервал [start, start+duration) не пересекается ни с одним
//     активным бронированием (полуоткрытые интервалы, стык не конфликт);
//   - интервал не выходит за границу суток.
func (s *daySchedule) availableStarts(durationMinutes int) []int {
	blocks := (durationMinutes + domain.SlotBlockMinutes - 1) / domain.SlotBlockMinutes

	result := make([]int, 0, len(s.starts))

	for _, start := range s.starts {
		if start+durationMinutes > 24*60 {
			continue
		}

		declared := true
		for k := 0; k < blocks; k++ {
			if !s.declaredStarts[start+k*domain.SlotBlockMinutes] {
				declared = false
				break
			}
		}
		if !declared {
			continue
		}

		candidate := types.TimeRange{Start: start, End: start + durationMinutes}
		conflict := false
		for _, busy := range s.occupied {
			if candidate.Overlaps(busy) {
				conflict = true
				break
			}
		}
		if conflict {
			continue
		}

		result = append(result, start)
	}

	return result
}
