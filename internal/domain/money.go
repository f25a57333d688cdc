package domain

import "math"

// RoundHalfUp округляет до ближайшего целого, 0.5 всегда вверх
func RoundHalfUp(v float64) int64 {
	return int64(math.Floor(v + 0.5))
}

// ApplicationFee комиссия платформы с полной суммы платежа
func ApplicationFee(total int64) int64 {
	return RoundHalfUp(float64(total) * ApplicationFeeRate)
}

// ServiceFee сервисный сбор с промежуточной суммы (услуга + транспорт)
func ServiceFee(subtotal int64) int64 {
	return RoundHalfUp(float64(subtotal) * ServiceFeeRate)
}
