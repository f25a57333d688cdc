package cancel_booking

// Request модель запроса на отмену бронирования
type Request struct {
	BookingID int64   // ID бронирования
	UserID    int64   // ID инициатора отмены
	Reason    *string // Причина отмены (опционально)
}

// Response модель ответа на отмену бронирования
type Response struct {
	BookingID int64
	Status    string

	// Решение политики возврата
	CanRefund       bool  // Уведомление за 180 и более минут до начала
	RefundAmount    int64 // Сумма к возврату (JPY)
	CancellationFee int64 // Штраф за позднюю отмену (JPY)

	// Фактический результат возврата
	RefundedAmount int64   // Сколько реально вернул леджер
	RefundError    *string // Ошибка леджера, если возврат не прошёл

	Message string
}
