package create_booking

import "errors"

var (
	// ErrProviderNotFound возвращается, когда поставщик не найден
	ErrProviderNotFound = errors.New("create_booking: provider not found")

	// ErrSlotNotAvailable возвращается, когда запрошенный слот не объявлен
	// доступным, занят или лишён нужных смежных блоков. Тот же ответ
	// получает проигравший конкурентной гонки за слот.
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrInvalidDate возвращается при попытке бронирования на прошедшую дату
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrCorruptTimeSlot возвращается при неразбираемом хранимом времени
	ErrCorruptTimeSlot = errors.New("create_booking: corrupt stored time slot")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
