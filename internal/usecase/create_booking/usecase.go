package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/salonbook/booking-service/internal/domain"
	providerRepo "github.com/salonbook/booking-service/internal/infra/storage/provider"
	"github.com/salonbook/booking-service/pkg/types"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo      BookingRepository
	availabilityRepo AvailabilityRepository
	providerRepo     ProviderRepository
	txManager        TransactionManager
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	availabilityRepo AvailabilityRepository,
	providerRepo ProviderRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:      bookingRepo,
		availabilityRepo: availabilityRepo,
		providerRepo:     providerRepo,
		txManager:        txManager,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверка доступности и вставка выполняются в одной сериализуемой
// транзакции с блокировкой бронирований провайдера на дату (FOR UPDATE):
// из двух конкурентных запросов на один слот ровно один получает
// ErrSlotNotAvailable.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, provider=%d, date=%s, time=%s, duration=%d",
		req.UserID, req.ProviderID, req.Date.Format(domain.DateFormat), req.StartTime, req.DurationMinutes)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Дата не в прошлом
	now := uc.timeProvider.Now()
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateBooking: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, err
	}

	duration := req.DurationMinutes
	if duration == 0 {
		duration = domain.DefaultDurationMinutes
	}

	// 3. Интервал бронирования: конец не должен выходить за сутки
	candidate, err := types.NewTimeRangeFromSlot(req.StartTime.String(), duration)
	if err != nil {
		uc.logger.Warn("CreateBooking: invalid start time %s for duration %d: %v", req.StartTime, duration, err)
		return nil, fmt.Errorf("%w: booking does not fit into the day: %v", ErrInvalidInput, err)
	}

	// 4. Получаем поставщика (для привязки леджер-аккаунта)
	provider, err := uc.providerRepo.GetByID(ctx, req.ProviderID)
	if err != nil {
		if errors.Is(err, providerRepo.ErrProviderNotFound) {
			uc.logger.Warn("CreateBooking: provider id=%d not found", req.ProviderID)
			return nil, ErrProviderNotFound
		}
		uc.logger.Error("CreateBooking: failed to get provider id=%d: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: failed to get provider: %v", ErrInternal, err)
	}

	var result *domain.Booking

	// 5. Проверка доступности и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Объявленные слоты на дату
		slots, err := uc.availabilityRepo.GetAvailable(txCtx, req.ProviderID, &req.Date, req.Date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get availability: %v", err)
			return fmt.Errorf("%w: failed to get availability: %w", ErrInternal, err)
		}

		// 5.2. Активные бронирования на дату с блокировкой строк
		bookings, err := uc.bookingRepo.GetActiveByProvider(txCtx, req.ProviderID, &req.Date, req.Date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %w", ErrInternal, err)
		}

		// 5.3. Повторная проверка занятости внутри транзакции
		if err := checkSlotFits(candidate, duration, slots, bookings); err != nil {
			if errors.Is(err, ErrSlotNotAvailable) {
				uc.logger.Warn("CreateBooking: slot %s not available for provider=%d on %s",
					req.StartTime, req.ProviderID, req.Date.Format(domain.DateFormat))
			}
			return err
		}

		// 5.4. Создаем бронирование
		booking := &domain.Booking{
			ProviderID:      req.ProviderID,
			SalonID:         req.SalonID,
			ServiceID:       req.ServiceID,
			UserID:          req.UserID,
			CustomerName:    req.CustomerName,
			CustomerPhone:   req.CustomerPhone,
			CustomerEmail:   req.CustomerEmail,
			ServiceName:     req.ServiceName,
			BookingDate:     req.Date,
			StartTime:       candidate.StartTime(),
			DurationMinutes: duration,
			EndTime:         candidate.EndTime(),
			Price:           req.Price,
			Amount:          req.Price + domain.ServiceFee(req.Price),
			Status:          domain.StatusPending,
			Notes:           req.Notes,
			PaymentIntentID: req.PaymentIntentID,
			LedgerAccountID: provider.LedgerAccountID,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d, occupies %s-%s",
		result.ID, result.StartTime, result.EndTime)

	return &Response{
		ID:              result.ID,
		ProviderID:      result.ProviderID,
		SalonID:         result.SalonID,
		ServiceID:       result.ServiceID,
		UserID:          result.UserID,
		CustomerName:    result.CustomerName,
		CustomerPhone:   result.CustomerPhone,
		CustomerEmail:   result.CustomerEmail,
		ServiceName:     result.ServiceName,
		BookingDate:     result.BookingDate,
		StartTime:       result.StartTime,
		DurationMinutes: result.DurationMinutes,
		EndTime:         result.EndTime,
		Price:           result.Price,
		Amount:          result.Amount,
		Status:          string(result.Status),
		Notes:           result.Notes,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}
