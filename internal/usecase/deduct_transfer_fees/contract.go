package deduct_transfer_fees

import (
	"context"
	"time"

	"github.com/salonbook/booking-service/internal/domain"
	"github.com/salonbook/booking-service/internal/integrations/paymentledger"
)

// ProviderRepository интерфейс репозитория поставщиков услуг
type ProviderRepository interface {
	ListWithLedgerAccounts(ctx context.Context) ([]*domain.Provider, error)
}

// LedgerClient интерфейс клиента платёжного леджера
type LedgerClient interface {
	AvailableBalance(ctx context.Context, accountRef string) (int64, error)
	DeductTransferFee(ctx context.Context, accountRef string, amount int64, period time.Time) (*paymentledger.ChargeResult, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
