package types

import (
	"fmt"
	"strings"
)

// TimeRange полуоткрытый интервал [Start, End) в минутах от полуночи.
// Конструируется один раз на границе из строкового представления слота
// и дальше передаётся как данные, без повторного парсинга при сравнениях.
type TimeRange struct {
	Start int
	End   int
}

// NewTimeRange создает интервал из двух TimeString
func NewTimeRange(start, end TimeString) (TimeRange, error) {
	s, err := start.Minutes()
	if err != nil {
		return TimeRange{}, err
	}
	e, err := end.Minutes()
	if err != nil {
		return TimeRange{}, err
	}
	if e <= s {
		return TimeRange{}, fmt.Errorf("%w: end %q is not after start %q", ErrInvalidTimeFormat, end, start)
	}
	return TimeRange{Start: s, End: e}, nil
}

// NewTimeRangeFromSlot парсит слот в одном из двух форматов:
// "HH:MM" (конец = начало + durationMinutes) или "HH:MM-HH:MM".
func NewTimeRangeFromSlot(slot string, durationMinutes int) (TimeRange, error) {
	if idx := strings.Index(slot, "-"); idx >= 0 {
		start, err := NewTimeStringFromString(slot[:idx])
		if err != nil {
			return TimeRange{}, err
		}
		end, err := NewTimeStringFromString(slot[idx+1:])
		if err != nil {
			return TimeRange{}, err
		}
		return NewTimeRange(start, end)
	}

	start, err := NewTimeStringFromString(slot)
	if err != nil {
		return TimeRange{}, err
	}
	s, err := start.Minutes()
	if err != nil {
		return TimeRange{}, err
	}
	if durationMinutes <= 0 || s+durationMinutes > minutesPerDay {
		return TimeRange{}, fmt.Errorf("%w: slot %q with duration %d", ErrTimeOutOfRange, slot, durationMinutes)
	}
	return TimeRange{Start: s, End: s + durationMinutes}, nil
}

// StartTime возвращает начало интервала как TimeString
func (r TimeRange) StartTime() TimeString {
	ts, _ := NewTimeStringFromMinutes(r.Start)
	return ts
}

// EndTime возвращает конец интервала как TimeString
func (r TimeRange) EndTime() TimeString {
	ts, _ := NewTimeStringFromMinutes(r.End)
	return ts
}

// Overlaps проверяет реальное пересечение полуоткрытых интервалов.
// Граничащие интервалы (end == start) пересечением не считаются.
func (r TimeRange) Overlaps(other TimeRange) bool {
	return r.Start < other.End && r.End > other.Start
}

// Contains возвращает true, если other целиком лежит внутри r
func (r TimeRange) Contains(other TimeRange) bool {
	return r.Start <= other.Start && other.End <= r.End
}

func (r TimeRange) String() string {
	return fmt.Sprintf("%s-%s", r.StartTime(), r.EndTime())
}
