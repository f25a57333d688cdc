package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplicationFee(t *testing.T) {
	// 20% от полной суммы
	assert.Equal(t, int64(1476), ApplicationFee(7380))
	assert.Equal(t, int64(0), ApplicationFee(0))
	assert.Equal(t, int64(20), ApplicationFee(100))
}

func TestServiceFee(t *testing.T) {
	// 23% от промежуточной суммы
	assert.Equal(t, int64(1380), ServiceFee(6000))
	assert.Equal(t, int64(23), ServiceFee(100))
}

func TestRoundHalfUp(t *testing.T) {
	assert.Equal(t, int64(2), RoundHalfUp(1.5))
	assert.Equal(t, int64(1), RoundHalfUp(1.49))
	assert.Equal(t, int64(1), RoundHalfUp(0.5))
	assert.Equal(t, int64(0), RoundHalfUp(0.49))
}

func TestFeeChain(t *testing.T) {
	// Сценарий из платёжного потока: услуга 5000 + транспорт 1000
	subtotal := int64(6000)
	serviceFee := ServiceFee(subtotal)
	assert.Equal(t, int64(1380), serviceFee)

	total := subtotal + serviceFee
	assert.Equal(t, int64(7380), total)

	appFee := ApplicationFee(total)
	assert.Equal(t, int64(1476), appFee)

	// Провайдер получает остаток после комиссии платформы
	assert.Equal(t, int64(5904), total-appFee)
}
