package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/salonbook/booking-service/internal/domain"
	providerRepo "github.com/salonbook/booking-service/internal/infra/storage/provider"
)

type MockAvailabilityRepo struct{ mock.Mock }

func (m *MockAvailabilityRepo) GetAvailable(ctx context.Context, providerID int64, date *time.Time, fromDate time.Time) ([]*domain.AvailabilitySlot, error) {
	args := m.Called(ctx, providerID, date, fromDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.AvailabilitySlot), args.Error(1)
}

type MockBookingRepo struct{ mock.Mock }

func (m *MockBookingRepo) GetActiveByProvider(ctx context.Context, providerID int64, date *time.Time, fromDate time.Time) ([]*domain.Booking, error) {
	args := m.Called(ctx, providerID, date, fromDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Booking), args.Error(1)
}

type MockProviderRepo struct{ mock.Mock }

func (m *MockProviderRepo) GetByID(ctx context.Context, id int64) (*domain.Provider, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Provider), args.Error(1)
}

type fixedTimeProvider struct{ now time.Time }

func (p fixedTimeProvider) Now() time.Time { return p.now }

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func newTestUseCase(ar *MockAvailabilityRepo, br *MockBookingRepo, pr *MockProviderRepo) *UseCase {
	uc := NewUseCase(ar, br, pr, noopLogger{})
	uc.timeProvider = fixedTimeProvider{now: time.Date(2026, 1, 20, 9, 0, 0, 0, time.UTC)}
	return uc
}

func TestExecute_ContiguityScenario(t *testing.T) {
	// Поставщик объявил 10:00 и 11:00 на 2026-01-25.
	// Для 90 минут подходит только 10:00; после бронирования 10:00 на 90
	// минут (занято до 11:30) не остаётся места даже для 60 минут.
	date := time.Date(2026, 1, 25, 0, 0, 0, 0, time.UTC)
	declared := []*domain.AvailabilitySlot{
		declaredSlot(1, "10:00"),
		declaredSlot(2, "11:00"),
	}

	t.Run("90 minutes before booking", func(t *testing.T) {
		ar := new(MockAvailabilityRepo)
		br := new(MockBookingRepo)
		pr := new(MockProviderRepo)

		pr.On("GetByID", mock.Anything, int64(7)).Return(&domain.Provider{ID: 7}, nil)
		ar.On("GetAvailable", mock.Anything, int64(7), &date, mock.Anything).Return(declared, nil)
		br.On("GetActiveByProvider", mock.Anything, int64(7), &date, mock.Anything).Return([]*domain.Booking{}, nil)

		resp, err := newTestUseCase(ar, br, pr).Execute(context.Background(), &Request{
			ProviderID:      7,
			Date:            &date,
			DurationMinutes: 90,
		})

		require.NoError(t, err)
		require.Len(t, resp.Slots, 1)
		assert.Equal(t, "10:00", resp.Slots[0].TimeSlot)
		assert.Equal(t, "11:30", resp.Slots[0].EndTimeSlot)
		assert.Equal(t, "2026-01-25", resp.Slots[0].Date)
	})

	t.Run("60 minutes after 90-minute booking", func(t *testing.T) {
		ar := new(MockAvailabilityRepo)
		br := new(MockBookingRepo)
		pr := new(MockProviderRepo)

		pr.On("GetByID", mock.Anything, int64(7)).Return(&domain.Provider{ID: 7}, nil)
		ar.On("GetAvailable", mock.Anything, int64(7), &date, mock.Anything).Return(declared, nil)
		br.On("GetActiveByProvider", mock.Anything, int64(7), &date, mock.Anything).
			Return([]*domain.Booking{activeBooking(1, "10:00", 90)}, nil)

		resp, err := newTestUseCase(ar, br, pr).Execute(context.Background(), &Request{
			ProviderID:      7,
			Date:            &date,
			DurationMinutes: 60,
		})

		require.NoError(t, err)
		assert.Empty(t, resp.Slots)
	})
}

func TestExecute_DefaultDuration(t *testing.T) {
	date := time.Date(2026, 1, 25, 0, 0, 0, 0, time.UTC)

	ar := new(MockAvailabilityRepo)
	br := new(MockBookingRepo)
	pr := new(MockProviderRepo)

	pr.On("GetByID", mock.Anything, int64(7)).Return(&domain.Provider{ID: 7}, nil)
	ar.On("GetAvailable", mock.Anything, int64(7), &date, mock.Anything).
		Return([]*domain.AvailabilitySlot{declaredSlot(1, "10:00")}, nil)
	br.On("GetActiveByProvider", mock.Anything, int64(7), &date, mock.Anything).
		Return([]*domain.Booking{}, nil)

	resp, err := newTestUseCase(ar, br, pr).Execute(context.Background(), &Request{
		ProviderID: 7,
		Date:       &date,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultDurationMinutes, resp.DurationMinutes)
	require.Len(t, resp.Slots, 1)
	assert.Equal(t, "11:00", resp.Slots[0].EndTimeSlot)
}

func TestExecute_ProviderNotFound(t *testing.T) {
	ar := new(MockAvailabilityRepo)
	br := new(MockBookingRepo)
	pr := new(MockProviderRepo)

	pr.On("GetByID", mock.Anything, int64(99)).Return(nil, providerRepo.ErrProviderNotFound)

	resp, err := newTestUseCase(ar, br, pr).Execute(context.Background(), &Request{ProviderID: 99})

	assert.ErrorIs(t, err, ErrProviderNotFound)
	assert.Nil(t, resp)
}

func TestExecute_CorruptStoredSlot(t *testing.T) {
	date := time.Date(2026, 1, 25, 0, 0, 0, 0, time.UTC)

	ar := new(MockAvailabilityRepo)
	br := new(MockBookingRepo)
	pr := new(MockProviderRepo)

	pr.On("GetByID", mock.Anything, int64(7)).Return(&domain.Provider{ID: 7}, nil)
	ar.On("GetAvailable", mock.Anything, int64(7), &date, mock.Anything).
		Return([]*domain.AvailabilitySlot{declaredSlot(1, "not-a-time")}, nil)
	br.On("GetActiveByProvider", mock.Anything, int64(7), &date, mock.Anything).
		Return([]*domain.Booking{}, nil)

	resp, err := newTestUseCase(ar, br, pr).Execute(context.Background(), &Request{
		ProviderID: 7,
		Date:       &date,
	})

	assert.ErrorIs(t, err, ErrCorruptTimeSlot)
	assert.Nil(t, resp)
}

func TestExecute_Validation(t *testing.T) {
	uc := newTestUseCase(new(MockAvailabilityRepo), new(MockBookingRepo), new(MockProviderRepo))

	_, err := uc.Execute(context.Background(), &Request{ProviderID: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{ProviderID: 7, DurationMinutes: -30})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
