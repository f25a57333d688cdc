package domain

// Дефолтные значения бронирования
const (
	// DefaultDurationMinutes длительность бронирования, если не указана
	DefaultDurationMinutes = 60

	// SlotBlockMinutes атомарный блок объявленной доступности.
	// Календарь провайдера ведётся только в часовых блоках.
	SlotBlockMinutes = 60
)

// Политика отмены и комиссии
const (
	// RefundNoticeMinutes минимальное время до начала брони для полного возврата.
	// Порог включительный: ровно 180 минут до начала - ещё возврат.
	RefundNoticeMinutes = 180

	// TransferFeeAmount фиксированная комиссия за перевод (JPY),
	// списываемая с доступного баланса провайдера раз в месяц
	TransferFeeAmount = 250

	// ApplicationFeeRate доля платформы от полной суммы платежа
	ApplicationFeeRate = 0.20

	// ServiceFeeRate сервисный сбор от промежуточной суммы
	ServiceFeeRate = 0.23
)

// Валидация входных данных
const (
	MinDurationMinutes = 5
	MaxDurationMinutes = 480 // 8 часов
	MaxNotesLength     = 500
)

// Форматы времени
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses статусы бронирований, занимающих время провайдера.
// Используются при вычислении доступных слотов и проверке конфликтов.
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}
