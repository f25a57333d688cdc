package onboard_provider

import (
	"context"

	"github.com/salonbook/booking-service/internal/domain"
	"github.com/salonbook/booking-service/internal/integrations/paymentledger"
)

// ProviderRepository интерфейс репозитория поставщиков услуг
type ProviderRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Provider, error)
	SetLedgerAccount(ctx context.Context, id int64, accountRef string) error
}

// LedgerClient интерфейс клиента платёжного леджера
type LedgerClient interface {
	CreateAccount(ctx context.Context, email string) (*paymentledger.AccountResult, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
