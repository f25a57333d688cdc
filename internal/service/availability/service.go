package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/salonbook/booking-service/internal/domain"
	providerRepo "github.com/salonbook/booking-service/internal/infra/storage/provider"
	"github.com/salonbook/booking-service/internal/service/availability/models"
	"github.com/salonbook/booking-service/pkg/types"
)

// Service сервис управления календарём доступности провайдеров
type Service struct {
	availabilityRepo AvailabilityRepository
	providerRepo     ProviderRepository
	logger           Logger
}

// NewService создает новый экземпляр сервиса доступности
func NewService(
	availabilityRepo AvailabilityRepository,
	providerRepo ProviderRepository,
	logger Logger,
) *Service {
	return &Service{
		availabilityRepo: availabilityRepo,
		providerRepo:     providerRepo,
		logger:           logger,
	}
}

// UpsertSlot объявляет или отзывает слот доступности провайдера.
// Слот идентифицируется ключом (provider_id, date, time_slot) и при
// повторном объявлении только переключает флаг is_available.
func (s *Service) UpsertSlot(ctx context.Context, req *models.UpsertSlotRequest) (*models.SlotResponse, error) {
	s.logger.Info("UpsertSlot: provider=%d, date=%s, slot=%s, available=%t",
		req.ProviderID, req.Date, req.TimeSlot, req.IsAvailable)

	if req.ProviderID <= 0 {
		return nil, fmt.Errorf("%w: provider id is required", ErrInvalidInput)
	}

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		s.logger.Warn("UpsertSlot: invalid date=%s for provider=%d", req.Date, req.ProviderID)
		return nil, fmt.Errorf("%w: date must be in YYYY-MM-DD format", ErrInvalidInput)
	}

	// Проверяем формат слота до записи: хранится сырая строка,
	// но невалидная строка ломает движок доступности при чтении
	if _, err := types.NewTimeRangeFromSlot(req.TimeSlot, domain.SlotBlockMinutes); err != nil {
		s.logger.Warn("UpsertSlot: invalid time_slot=%s for provider=%d: %v", req.TimeSlot, req.ProviderID, err)
		return nil, fmt.Errorf("%w: time slot must be HH:MM or HH:MM-HH:MM", ErrInvalidInput)
	}

	if _, err := s.providerRepo.GetByID(ctx, req.ProviderID); err != nil {
		if errors.Is(err, providerRepo.ErrProviderNotFound) {
			s.logger.Warn("UpsertSlot: provider id=%d not found", req.ProviderID)
			return nil, ErrProviderNotFound
		}
		s.logger.Error("UpsertSlot: failed to get provider id=%d: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: UpsertSlot - failed to get provider: %v", ErrInternal, err)
	}

	slot := &domain.AvailabilitySlot{
		ProviderID:  req.ProviderID,
		Date:        date,
		TimeSlot:    req.TimeSlot,
		IsAvailable: req.IsAvailable,
	}

	saved, err := s.availabilityRepo.Upsert(ctx, slot)
	if err != nil {
		s.logger.Error("UpsertSlot: repository error for provider=%d: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: UpsertSlot - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpsertSlot: saved slot id=%d for provider=%d", saved.ID, saved.ProviderID)
	return models.FromDomainSlot(saved), nil
}
