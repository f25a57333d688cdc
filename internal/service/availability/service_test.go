package availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/salonbook/booking-service/internal/domain"
	providerRepo "github.com/salonbook/booking-service/internal/infra/storage/provider"
	"github.com/salonbook/booking-service/internal/service/availability/models"
)

type MockAvailabilityRepo struct{ mock.Mock }

func (m *MockAvailabilityRepo) Upsert(ctx context.Context, slot *domain.AvailabilitySlot) (*domain.AvailabilitySlot, error) {
	args := m.Called(ctx, slot)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AvailabilitySlot), args.Error(1)
}

type MockProviderRepo struct{ mock.Mock }

func (m *MockProviderRepo) GetByID(ctx context.Context, id int64) (*domain.Provider, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Provider), args.Error(1)
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func TestService_UpsertSlot(t *testing.T) {
	ctx := context.Background()

	t.Run("declares slot", func(t *testing.T) {
		availRepo := new(MockAvailabilityRepo)
		provRepo := new(MockProviderRepo)
		svc := NewService(availRepo, provRepo, noopLogger{})

		provRepo.On("GetByID", ctx, int64(7)).Return(&domain.Provider{ID: 7}, nil)
		availRepo.On("Upsert", ctx, mock.MatchedBy(func(s *domain.AvailabilitySlot) bool {
			return s.ProviderID == 7 && s.TimeSlot == "10:00" && s.IsAvailable
		})).Return(&domain.AvailabilitySlot{
			ID:          1,
			ProviderID:  7,
			Date:        time.Date(2026, 1, 25, 0, 0, 0, 0, time.UTC),
			TimeSlot:    "10:00",
			IsAvailable: true,
		}, nil)

		resp, err := svc.UpsertSlot(ctx, &models.UpsertSlotRequest{
			ProviderID:  7,
			Date:        "2026-01-25",
			TimeSlot:    "10:00",
			IsAvailable: true,
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(1), resp.ID)
		assert.Equal(t, "2026-01-25", resp.Date)
		availRepo.AssertExpectations(t)
	})

	t.Run("accepts range form", func(t *testing.T) {
		availRepo := new(MockAvailabilityRepo)
		provRepo := new(MockProviderRepo)
		svc := NewService(availRepo, provRepo, noopLogger{})

		provRepo.On("GetByID", ctx, int64(7)).Return(&domain.Provider{ID: 7}, nil)
		availRepo.On("Upsert", ctx, mock.Anything).Return(&domain.AvailabilitySlot{
			ID:          2,
			ProviderID:  7,
			Date:        time.Date(2026, 1, 25, 0, 0, 0, 0, time.UTC),
			TimeSlot:    "10:00-11:00",
			IsAvailable: false,
		}, nil)

		resp, err := svc.UpsertSlot(ctx, &models.UpsertSlotRequest{
			ProviderID:  7,
			Date:        "2026-01-25",
			TimeSlot:    "10:00-11:00",
			IsAvailable: false,
		})

		assert.NoError(t, err)
		assert.False(t, resp.IsAvailable)
	})

	t.Run("rejects invalid date", func(t *testing.T) {
		svc := NewService(new(MockAvailabilityRepo), new(MockProviderRepo), noopLogger{})

		_, err := svc.UpsertSlot(ctx, &models.UpsertSlotRequest{
			ProviderID: 7,
			Date:       "25.01.2026",
			TimeSlot:   "10:00",
		})

		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("rejects invalid time slot", func(t *testing.T) {
		svc := NewService(new(MockAvailabilityRepo), new(MockProviderRepo), noopLogger{})

		_, err := svc.UpsertSlot(ctx, &models.UpsertSlotRequest{
			ProviderID: 7,
			Date:       "2026-01-25",
			TimeSlot:   "10am",
		})

		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("provider not found", func(t *testing.T) {
		availRepo := new(MockAvailabilityRepo)
		provRepo := new(MockProviderRepo)
		svc := NewService(availRepo, provRepo, noopLogger{})

		provRepo.On("GetByID", ctx, int64(404)).Return(nil, providerRepo.ErrProviderNotFound)

		_, err := svc.UpsertSlot(ctx, &models.UpsertSlotRequest{
			ProviderID: 404,
			Date:       "2026-01-25",
			TimeSlot:   "10:00",
		})

		assert.ErrorIs(t, err, ErrProviderNotFound)
		availRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	})
}
