package domain

import "time"

// RefundDecision результат применения политики отмены к бронированию
// в конкретный момент времени. Не персистится как отдельная сущность.
type RefundDecision struct {
	Eligible        bool
	RefundAmount    int64
	CancellationFee int64
}

// EvaluateCancellation применяет правило 180 минут.
//
// diffMinutes - время от now до момента начала брони. Ровно 180 минут -
// граница принадлежит стороне возврата; 179 и меньше (включая прошедшие
// брони с отрицательным diff) - возврата нет, удерживается полная сумма.
func EvaluateCancellation(b *Booking, now time.Time) (RefundDecision, error) {
	instant, err := b.StartInstant()
	if err != nil {
		return RefundDecision{}, err
	}

	diffMinutes := instant.Sub(now).Minutes()
	if diffMinutes >= RefundNoticeMinutes {
		return RefundDecision{
			Eligible:        true,
			RefundAmount:    b.Amount,
			CancellationFee: 0,
		}, nil
	}

	return RefundDecision{
		Eligible:        false,
		RefundAmount:    0,
		CancellationFee: b.Amount,
	}, nil
}
