package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/salonbook/booking-service/internal/domain"
	bookingRepo "github.com/salonbook/booking-service/internal/infra/storage/booking"
	providerRepo "github.com/salonbook/booking-service/internal/infra/storage/provider"
	"github.com/salonbook/booking-service/internal/service/bookings/models"
	"github.com/salonbook/booking-service/pkg/types"
)

type MockBookingRepo struct{ mock.Mock }

func (m *MockBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepo) GetByUserID(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	args := m.Called(ctx, userID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Booking), args.Error(1)
}

func (m *MockBookingRepo) GetByProviderWithFilter(ctx context.Context, filter domain.ProviderBookingsFilter) ([]*domain.Booking, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Booking), args.Error(1)
}

func (m *MockBookingRepo) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	return m.Called(ctx, id, status).Error(0)
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

func testBooking(status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:              42,
		ProviderID:      7,
		UserID:          100,
		CustomerName:    "Tanaka Yuki",
		ServiceName:     "Cut & Color",
		BookingDate:     time.Date(2026, 1, 25, 0, 0, 0, 0, time.UTC),
		StartTime:       types.TimeString("10:00"),
		DurationMinutes: 90,
		EndTime:         types.TimeString("11:30"),
		Price:           7380,
		Amount:          7380,
		Status:          status,
	}
}

func TestService_GetByID(t *testing.T) {
	tests := []struct {
		name       string
		userID     int64
		setupMocks func(*MockBookingRepo, *MockProviderRepo)
		wantErr    error
	}{
		{
			name:   "owner can view own booking",
			userID: 100,
			setupMocks: func(br *MockBookingRepo, pr *MockProviderRepo) {
				br.On("GetByID", mock.Anything, int64(42)).Return(testBooking(domain.StatusPending), nil)
			},
		},
		{
			name:   "provider can view booking",
			userID: 7,
			setupMocks: func(br *MockBookingRepo, pr *MockProviderRepo) {
				br.On("GetByID", mock.Anything, int64(42)).Return(testBooking(domain.StatusPending), nil)
			},
		},
		{
			name:   "stranger is denied",
			userID: 999,
			setupMocks: func(br *MockBookingRepo, pr *MockProviderRepo) {
				br.On("GetByID", mock.Anything, int64(42)).Return(testBooking(domain.StatusPending), nil)
			},
			wantErr: ErrAccessDenied,
		},
		{
			name:   "not found",
			userID: 100,
			setupMocks: func(br *MockBookingRepo, pr *MockProviderRepo) {
				br.On("GetByID", mock.Anything, int64(42)).Return(nil, bookingRepo.ErrBookingNotFound)
			},
			wantErr: ErrBookingNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			br := new(MockBookingRepo)
			pr := new(MockProviderRepo)
			tt.setupMocks(br, pr)

			service := NewService(br, pr, noopLogger{})
			resp, err := service.GetByID(context.Background(), 42, tt.userID)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, resp)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, int64(42), resp.ID)
				assert.Equal(t, "10:00", resp.TimeSlot)
				assert.Equal(t, "11:30", resp.EndTimeSlot)
			}
		})
	}
}

func TestService_UpdateStatus(t *testing.T) {
	tests := []struct {
		name       string
		req        *models.UpdateStatusRequest
		setupMocks func(*MockBookingRepo)
		wantErr    error
	}{
		{
			name: "pending to confirmed",
			req:  &models.UpdateStatusRequest{ProviderID: 7, Status: "confirmed"},
			setupMocks: func(br *MockBookingRepo) {
				br.On("GetByID", mock.Anything, int64(42)).Return(testBooking(domain.StatusPending), nil)
				br.On("UpdateStatus", mock.Anything, int64(42), domain.StatusConfirmed).Return(nil)
			},
		},
		{
			name: "confirmed to completed",
			req:  &models.UpdateStatusRequest{ProviderID: 7, Status: "completed"},
			setupMocks: func(br *MockBookingRepo) {
				br.On("GetByID", mock.Anything, int64(42)).Return(testBooking(domain.StatusConfirmed), nil)
				br.On("UpdateStatus", mock.Anything, int64(42), domain.StatusCompleted).Return(nil)
			},
		},
		{
			name: "pending to completed is rejected",
			req:  &models.UpdateStatusRequest{ProviderID: 7, Status: "completed"},
			setupMocks: func(br *MockBookingRepo) {
				br.On("GetByID", mock.Anything, int64(42)).Return(testBooking(domain.StatusPending), nil)
			},
			wantErr: ErrInvalidTransition,
		},
		{
			name: "cancellation via status update is rejected",
			req:  &models.UpdateStatusRequest{ProviderID: 7, Status: "cancelled"},
			setupMocks: func(br *MockBookingRepo) {
				br.On("GetByID", mock.Anything, int64(42)).Return(testBooking(domain.StatusPending), nil)
			},
			wantErr: ErrInvalidTransition,
		},
		{
			name: "unknown status",
			req:  &models.UpdateStatusRequest{ProviderID: 7, Status: "paused"},
			setupMocks: func(br *MockBookingRepo) {
				br.On("GetByID", mock.Anything, int64(42)).Return(testBooking(domain.StatusPending), nil)
			},
			wantErr: ErrInvalidStatus,
		},
		{
			name: "foreign provider is denied",
			req:  &models.UpdateStatusRequest{ProviderID: 8, Status: "confirmed"},
			setupMocks: func(br *MockBookingRepo) {
				br.On("GetByID", mock.Anything, int64(42)).Return(testBooking(domain.StatusPending), nil)
			},
			wantErr: ErrAccessDenied,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			br := new(MockBookingRepo)
			tt.setupMocks(br)

			service := NewService(br, new(MockProviderRepo), noopLogger{})
			err := service.UpdateStatus(context.Background(), 42, tt.req)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			br.AssertExpectations(t)
		})
	}
}

func TestService_GetProviderBookings(t *testing.T) {
	t.Run("provider not found", func(t *testing.T) {
		br := new(MockBookingRepo)
		pr := new(MockProviderRepo)
		pr.On("GetByID", mock.Anything, int64(7)).Return(nil, providerRepo.ErrProviderNotFound)

		service := NewService(br, pr, noopLogger{})
		resp, err := service.GetProviderBookings(context.Background(), &models.GetProviderBookingsRequest{ProviderID: 7})

		assert.ErrorIs(t, err, ErrProviderNotFound)
		assert.Nil(t, resp)
	})

	t.Run("passes filter through", func(t *testing.T) {
		br := new(MockBookingRepo)
		pr := new(MockProviderRepo)
		pr.On("GetByID", mock.Anything, int64(7)).Return(&domain.Provider{ID: 7}, nil)

		status := "confirmed"
		confirmedStatus := domain.StatusConfirmed
		br.On("GetByProviderWithFilter", mock.Anything, domain.ProviderBookingsFilter{
			ProviderID: 7,
			Status:     &confirmedStatus,
		}).Return([]*domain.Booking{testBooking(domain.StatusConfirmed)}, nil)

		service := NewService(br, pr, noopLogger{})
		resp, err := service.GetProviderBookings(context.Background(), &models.GetProviderBookingsRequest{
			ProviderID: 7,
			Status:     &status,
		})

		assert.NoError(t, err)
		assert.Len(t, resp.Bookings, 1)
	})
}
