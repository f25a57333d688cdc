package onboard_provider

import (
	"context"
	"errors"
	"fmt"
	"strings"

	providerRepo "github.com/salonbook/booking-service/internal/infra/storage/provider"
)

// UseCase use case подключения поставщика к платёжному леджеру:
// создаёт connected аккаунт с ежемесячной выплатой и привязывает
// его к поставщику
type UseCase struct {
	providerRepo ProviderRepository
	ledgerClient LedgerClient
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	providerRepo ProviderRepository,
	ledgerClient LedgerClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		providerRepo: providerRepo,
		ledgerClient: ledgerClient,
		logger:       logger,
	}
}

// Execute выполняет use case подключения поставщика
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("OnboardProvider: provider=%d", req.ProviderID)

	// 1. Валидация входных данных
	if req.ProviderID <= 0 {
		return nil, fmt.Errorf("%w: providerID must be positive", ErrInvalidInput)
	}
	if req.Email == "" || !strings.Contains(req.Email, "@") {
		return nil, fmt.Errorf("%w: valid email is required", ErrInvalidInput)
	}

	// 2. Получаем поставщика
	provider, err := uc.providerRepo.GetByID(ctx, req.ProviderID)
	if err != nil {
		if errors.Is(err, providerRepo.ErrProviderNotFound) {
			uc.logger.Warn("OnboardProvider: provider id=%d not found", req.ProviderID)
			return nil, ErrProviderNotFound
		}
		uc.logger.Error("OnboardProvider: failed to get provider id=%d: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: failed to get provider: %v", ErrInternal, err)
	}

	// 3. Повторное подключение запрещено: существующий аккаунт
	// держит историю балансов и выплат
	if provider.LedgerAccountID != nil && *provider.LedgerAccountID != "" {
		uc.logger.Warn("OnboardProvider: provider id=%d already has account %s",
			req.ProviderID, *provider.LedgerAccountID)
		return nil, ErrAlreadyOnboarded
	}

	// 4. Создаем connected аккаунт
	account, err := uc.ledgerClient.CreateAccount(ctx, req.Email)
	if err != nil {
		uc.logger.Error("OnboardProvider: failed to create ledger account for provider=%d: %v",
			req.ProviderID, err)
		return nil, fmt.Errorf("%w: failed to create ledger account: %v", ErrInternal, err)
	}

	// 5. Привязываем аккаунт к поставщику
	if err := uc.providerRepo.SetLedgerAccount(ctx, req.ProviderID, account.AccountID); err != nil {
		// Аккаунт создан, но не привязан - оставляем след в логах
		// для ручного восстановления связи
		uc.logger.Error("OnboardProvider: failed to link account %s to provider=%d: %v",
			account.AccountID, req.ProviderID, err)
		return nil, fmt.Errorf("%w: failed to link ledger account: %v", ErrInternal, err)
	}

	uc.logger.Info("OnboardProvider: provider=%d linked to account %s", req.ProviderID, account.AccountID)

	return &Response{
		ProviderID: req.ProviderID,
		AccountRef: account.AccountID,
	}, nil
}
