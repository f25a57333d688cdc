package paymentledger

import "errors"

var (
	// ErrRefundFailed возвращается при отказе леджера выполнить возврат.
	// Отмена бронирования при этом НЕ откатывается - ошибка прикрепляется
	// к результату отмены.
	ErrRefundFailed = errors.New("paymentledger: refund failed")

	// ErrAuthorizeFailed возвращается при отказе создать платёж
	ErrAuthorizeFailed = errors.New("paymentledger: authorize failed")

	// ErrBalanceUnavailable возвращается, когда баланс аккаунта недоступен
	ErrBalanceUnavailable = errors.New("paymentledger: balance unavailable")

	// ErrChargeFailed возвращается при отказе списать комиссию с аккаунта
	ErrChargeFailed = errors.New("paymentledger: charge failed")

	// ErrAccountCreateFailed возвращается при отказе создать connected account
	ErrAccountCreateFailed = errors.New("paymentledger: account creation failed")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("paymentledger: internal error")
)
