package onboard_provider

import "errors"

var (
	// ErrProviderNotFound возвращается, когда поставщик не найден
	ErrProviderNotFound = errors.New("onboard_provider: provider not found")

	// ErrAlreadyOnboarded возвращается, когда у поставщика уже есть
	// леджер-аккаунт
	ErrAlreadyOnboarded = errors.New("onboard_provider: provider already has a ledger account")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("onboard_provider: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("onboard_provider: internal error")
)
