package cancel_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("cancel_booking: booking not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав на отмену
	ErrAccessDenied = errors.New("cancel_booking: access denied")

	// ErrAlreadyCancelled возвращается при повторной отмене
	ErrAlreadyCancelled = errors.New("cancel_booking: booking is already cancelled")

	// ErrCannotCancel возвращается, когда бронирование нельзя отменить
	// (например, услуга уже оказана)
	ErrCannotCancel = errors.New("cancel_booking: booking cannot be cancelled")

	// ErrCorruptTimeSlot возвращается при неразбираемом хранимом времени
	ErrCorruptTimeSlot = errors.New("cancel_booking: corrupt stored time slot")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("cancel_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("cancel_booking: internal error")
)
