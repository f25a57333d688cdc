package get_available_slots

import "errors"

var (
	// ErrProviderNotFound возвращается, когда поставщик не найден
	ErrProviderNotFound = errors.New("get_available_slots: provider not found")

	// ErrCorruptTimeSlot возвращается, когда хранимый слот или бронирование
	// содержит неразбираемое время. Это нарушение целостности данных:
	// движок не угадывает занятость, а честно отказывает.
	ErrCorruptTimeSlot = errors.New("get_available_slots: corrupt stored time slot")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
