package get_available_slots

import "time"

// Request модель запроса доступных слотов
type Request struct {
	ProviderID      int64      // ID поставщика услуг
	Date            *time.Time // Конкретная дата (опционально, иначе все даты с сегодняшнего дня)
	DurationMinutes int        // Запрошенная длительность услуги (0 = длительность по умолчанию)
}

// Slot стартовое время, с которого услуга запрошенной длительности
// помещается в расписание поставщика
type Slot struct {
	Date        string // "2026-01-25"
	TimeSlot    string // "10:00"
	EndTimeSlot string // "11:30"
}

// Response модель ответа с доступными слотами
type Response struct {
	ProviderID      int64
	DurationMinutes int
	Slots           []Slot
}
