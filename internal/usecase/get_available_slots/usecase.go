package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/salonbook/booking-service/internal/domain"
	providerRepo "github.com/salonbook/booking-service/internal/infra/storage/provider"
	"github.com/salonbook/booking-service/pkg/types"
)

// UseCase use case для получения доступных слотов для бронирования.
// Слот попадает в выдачу, только если услуга запрошенной длительности
// целиком помещается в объявленные и незанятые часовые блоки.
type UseCase struct {
	availabilityRepo AvailabilityRepository
	bookingRepo      BookingRepository
	providerRepo     ProviderRepository
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	availabilityRepo AvailabilityRepository,
	bookingRepo BookingRepository,
	providerRepo ProviderRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		availabilityRepo: availabilityRepo,
		bookingRepo:      bookingRepo,
		providerRepo:     providerRepo,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: provider=%d, date=%v, duration=%d",
		req.ProviderID, formatDate(req.Date), req.DurationMinutes)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	duration := req.DurationMinutes
	if duration == 0 {
		duration = domain.DefaultDurationMinutes
	}

	// 2. Проверяем существование поставщика
	if _, err := uc.providerRepo.GetByID(ctx, req.ProviderID); err != nil {
		if errors.Is(err, providerRepo.ErrProviderNotFound) {
			uc.logger.Warn("GetAvailableSlots: provider id=%d not found", req.ProviderID)
			return nil, ErrProviderNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get provider id=%d: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: failed to get provider: %v", ErrInternal, err)
	}

	// 3. Без явной даты выдаём слоты начиная с сегодняшнего дня
	now := uc.timeProvider.Now()
	fromDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	// 4. Получаем объявленные слоты доступности
	slots, err := uc.availabilityRepo.GetAvailable(ctx, req.ProviderID, req.Date, fromDate)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get availability: %v", err)
		return nil, fmt.Errorf("%w: failed to get availability: %v", ErrInternal, err)
	}

	// 5. Получаем активные бронирования на те же даты
	bookings, err := uc.bookingRepo.GetActiveByProvider(ctx, req.ProviderID, req.Date, fromDate)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 6. Собираем расписания по датам и фильтруем старты
	schedules, err := buildSchedules(slots, bookings)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: %v", err)
		return nil, err
	}

	result := make([]Slot, 0)
	for _, schedule := range schedules {
		for _, start := range schedule.availableStarts(duration) {
			startTime, err := types.NewTimeStringFromMinutes(start)
			if err != nil {
				return nil, fmt.Errorf("%w: failed to format slot start: %v", ErrInternal, err)
			}
			endTime, err := types.NewTimeStringFromMinutes(start + duration)
			if err != nil {
				return nil, fmt.Errorf("%w: failed to format slot end: %v", ErrInternal, err)
			}

			result = append(result, Slot{
				Date:        schedule.date.Format(domain.DateFormat),
				TimeSlot:    startTime.String(),
				EndTimeSlot: endTime.String(),
			})
		}
	}

	uc.logger.Info("GetAvailableSlots: %d slots available for provider=%d, duration=%d",
		len(result), req.ProviderID, duration)

	return &Response{
		ProviderID:      req.ProviderID,
		DurationMinutes: duration,
		Slots:           result,
	}, nil
}

func formatDate(date *time.Time) string {
	if date == nil {
		return "all"
	}
	return date.Format(domain.DateFormat)
}
