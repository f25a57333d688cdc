package deduct_transfer_fees

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/salonbook/booking-service/internal/domain"
)

// UseCase use case ежемесячного списания комиссии за перевод со всех
// поставщиков с привязанными леджер-аккаунтами. Комиссия фиксированная
// (250 JPY); аккаунты с балансом меньше комиссии пропускаются, отказ
// по одному поставщику не прерывает обработку остальных.
type UseCase struct {
	providerRepo ProviderRepository
	ledgerClient LedgerClient
	workers      int
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case.
// workers ограничивает число одновременных обращений к леджеру.
func NewUseCase(
	providerRepo ProviderRepository,
	ledgerClient LedgerClient,
	workers int,
	logger Logger,
) *UseCase {
	if workers <= 0 {
		workers = 1
	}
	return &UseCase{
		providerRepo: providerRepo,
		ledgerClient: ledgerClient,
		workers:      workers,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет батч списания комиссий за перевод
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	period := uc.timeProvider.Now()
	if req.Period != nil {
		period = *req.Period
	}

	uc.logger.Info("DeductTransferFees: starting batch for period=%s", period.Format("2006-01"))

	providers, err := uc.providerRepo.ListWithLedgerAccounts(ctx)
	if err != nil {
		uc.logger.Error("DeductTransferFees: failed to list providers: %v", err)
		return nil, fmt.Errorf("%w: failed to list providers: %v", ErrInternal, err)
	}

	results := make([]ProviderResult, len(providers))

	// Ограниченный параллелизм: не больше workers одновременных
	// обращений к леджеру
	var wg sync.WaitGroup
	sem := make(chan struct{}, uc.workers)

	for i, provider := range providers {
		wg.Add(1)
		go func(i int, provider *domain.Provider) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			results[i] = uc.processProvider(ctx, provider, period)
		}(i, provider)
	}

	wg.Wait()

	resp := &Response{
		Period:  period.Format("2006-01"),
		Total:   len(results),
		Results: results,
	}
	for _, r := range results {
		switch r.Status {
		case StatusSuccess:
			resp.Success++
		case StatusSkipped:
			resp.Skipped++
		case StatusFailed:
			resp.Failed++
		}
	}

	uc.logger.Info("DeductTransferFees: batch finished, total=%d, success=%d, skipped=%d, failed=%d",
		resp.Total, resp.Success, resp.Skipped, resp.Failed)

	return resp, nil
}

// processProvider списывает комиссию с одного поставщика.
// Любая ошибка превращается в failed-результат и не влияет на остальных.
func (uc *UseCase) processProvider(ctx context.Context, provider *domain.Provider, period time.Time) ProviderResult {
	result := ProviderResult{ProviderID: provider.ID}

	if provider.LedgerAccountID == nil || *provider.LedgerAccountID == "" {
		// ListWithLedgerAccounts такого не отдаёт, но подстрахуемся
		errMsg := "provider has no ledger account"
		result.Status = StatusFailed
		result.Error = &errMsg
		return result
	}
	result.AccountRef = *provider.LedgerAccountID

	balance, err := uc.ledgerClient.AvailableBalance(ctx, result.AccountRef)
	if err != nil {
		uc.logger.Error("DeductTransferFees: balance check failed for provider=%d: %v", provider.ID, err)
		errMsg := err.Error()
		result.Status = StatusFailed
		result.Error = &errMsg
		return result
	}
	result.Balance = balance

	if balance < domain.TransferFeeAmount {
		uc.logger.Info("DeductTransferFees: skipping provider=%d, balance=%d < fee=%d",
			provider.ID, balance, domain.TransferFeeAmount)
		result.Status = StatusSkipped
		return result
	}

	charge, err := uc.ledgerClient.DeductTransferFee(ctx, result.AccountRef, domain.TransferFeeAmount, period)
	if err != nil {
		uc.logger.Error("DeductTransferFees: charge failed for provider=%d: %v", provider.ID, err)
		errMsg := err.Error()
		result.Status = StatusFailed
		result.Error = &errMsg
		return result
	}

	uc.logger.Info("DeductTransferFees: charged provider=%d, charge=%s", provider.ID, charge.ChargeID)
	result.Status = StatusSuccess
	result.ChargeID = charge.ChargeID
	return result
}
